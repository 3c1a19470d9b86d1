package dailyreport

import (
	"github.com/bpandhare/VA-REPORTS-WEB-APPLICATION-sub001/internal/middleware"
	"github.com/bpandhare/VA-REPORTS-WEB-APPLICATION-sub001/internal/rbac"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes expects r to already run the auth and context middleware.
func RegisterRoutes(r *gin.RouterGroup, h *Handler, rbacService middleware.RBACService) {
	reports := r.Group("/reports")
	{
		write := middleware.RBACAuthorize(rbacService, rbac.ResourceReport, rbac.ActionWrite)
		read := middleware.RBACAuthorize(rbacService, rbac.ResourceReport, rbac.ActionRead)

		reports.POST("/hourly", middleware.RateLimitByUser(2, 5), write, h.CreateHourly)
		reports.GET("/hourly", read, h.ListHourly)

		reports.POST("/daily", middleware.RateLimitByUser(2, 5), write, h.CreateDaily)
		reports.PUT("/daily/:id", write, h.UpdateDaily)
		reports.GET("/daily", read, h.ListDaily)
	}
}
