package rbac

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts under a group that already runs AuthMiddleware.
func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	group := r.Group("/rbac")
	{
		group.GET("/permissions", handler.MyPermissions)
		group.POST("/enforce", handler.Enforce)
	}
}
