package middleware

import (
	"net/http"

	"github.com/bpandhare/VA-REPORTS-WEB-APPLICATION-sub001/internal/rbac"
	"github.com/bpandhare/VA-REPORTS-WEB-APPLICATION-sub001/internal/shared/apperror"
	"github.com/bpandhare/VA-REPORTS-WEB-APPLICATION-sub001/internal/shared/response"

	"github.com/gin-gonic/gin"
)

// RBACService is satisfied by rbac.Service.
type RBACService interface {
	Enforce(req rbac.EnforceRequest) (bool, error)
}

func RBACAuthorize(service RBACService, resource, action string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString("role")
		if c.GetString("user_id") == "" || role == "" {
			response.Abort(c, http.StatusUnauthorized, apperror.CodeUnauthorized, "Missing auth context")
			return
		}

		allowed, err := service.Enforce(rbac.EnforceRequest{
			Role:     role,
			Resource: resource,
			Action:   action,
		})
		if err != nil {
			abortWith(c, apperror.ErrInternal.WithCause(err))
			return
		}

		if !allowed {
			response.Error(c, http.StatusForbidden, apperror.CodeForbidden,
				apperror.ErrForbidden.Message,
				map[string]string{"required": resource + ":" + action},
			)
			c.Abort()
			return
		}
		c.Next()
	}
}
