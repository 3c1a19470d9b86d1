package leave

import (
	"github.com/bpandhare/VA-REPORTS-WEB-APPLICATION-sub001/internal/middleware"
	"github.com/bpandhare/VA-REPORTS-WEB-APPLICATION-sub001/internal/rbac"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// RegisterRoutes expects r to already run the auth and context middleware.
func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbacService middleware.RBACService, rdb *redis.Client) {
	leaves := r.Group("/leaves")
	{
		read := middleware.RBACAuthorize(rbacService, rbac.ResourceLeave, rbac.ActionRead)
		approve := middleware.RBACAuthorize(rbacService, rbac.ResourceLeave, rbac.ActionApprove)

		leaves.GET("", read, handler.GetAll)
		leaves.GET("/:id", read, handler.GetByID)
		leaves.POST("",
			middleware.RateLimitByUser(1, 3),
			middleware.RBACAuthorize(rbacService, rbac.ResourceLeave, rbac.ActionCreate),
			middleware.Idempotency(rdb),
			handler.Apply,
		)
		leaves.POST("/:id/approve", approve, handler.Approve)
		leaves.POST("/:id/reject", approve, handler.Reject)
		leaves.POST("/:id/cancel",
			middleware.RBACAuthorize(rbacService, rbac.ResourceLeave, rbac.ActionCreate),
			handler.Cancel,
		)
	}
}
