package user

import (
	"github.com/bpandhare/VA-REPORTS-WEB-APPLICATION-sub001/internal/middleware"
	"github.com/bpandhare/VA-REPORTS-WEB-APPLICATION-sub001/internal/rbac"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes expects r to already run the auth and context middleware.
func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbacService middleware.RBACService) {
	users := r.Group("/users")
	{
		users.GET("",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, rbac.ResourceUser, rbac.ActionRead),
			handler.GetAll,
		)

		users.GET("/:id",
			middleware.RBACAuthorize(rbacService, rbac.ResourceUser, rbac.ActionRead),
			handler.GetByID,
		)

		users.POST("",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, rbac.ResourceUser, rbac.ActionManage),
			handler.Create,
		)

		users.PATCH("/:id/status",
			middleware.RBACAuthorize(rbacService, rbac.ResourceUser, rbac.ActionManage),
			handler.ToggleStatus,
		)

		users.POST("/me/password",
			middleware.RateLimitByUser(0.2, 2),
			handler.ChangePassword,
		)
	}
}
