package timetracking

import (
	"github.com/bpandhare/VA-REPORTS-WEB-APPLICATION-sub001/internal/middleware"
	"github.com/bpandhare/VA-REPORTS-WEB-APPLICATION-sub001/internal/rbac"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes expects r to already run the auth and context middleware.
func RegisterRoutes(r *gin.RouterGroup, h *Handler, rbacService middleware.RBACService) {
	attendance := r.Group("/attendance")
	attendance.Use(middleware.RateLimitByUser(5, 10))
	{
		write := middleware.RBACAuthorize(rbacService, rbac.ResourceAttendance, rbac.ActionWrite)
		read := middleware.RBACAuthorize(rbacService, rbac.ResourceAttendance, rbac.ActionRead)

		attendance.POST("/clock-in", write, h.ClockIn)
		attendance.POST("/clock-out", write, h.ClockOut)
		attendance.POST("/activity/start", write, h.StartActivity)
		attendance.POST("/activity/stop", write, h.StopActivity)
		attendance.POST("/break/start", write, h.StartBreak)
		attendance.POST("/break/end", write, h.EndBreak)

		attendance.GET("/today-summary", read, h.TodaySummary)
		attendance.GET("/weekly-report", read, h.WeeklyReport)
		attendance.GET("/team",
			middleware.RBACAuthorize(rbacService, rbac.ResourceAttendance, rbac.ActionReadTeam),
			h.TeamAttendance,
		)
	}
}
