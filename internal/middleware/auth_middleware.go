package middleware

import (
	"strings"

	autherrors "github.com/bpandhare/VA-REPORTS-WEB-APPLICATION-sub001/internal/auth/errors"
	"github.com/bpandhare/VA-REPORTS-WEB-APPLICATION-sub001/internal/auth/token"
	"github.com/bpandhare/VA-REPORTS-WEB-APPLICATION-sub001/internal/shared/apperror"
	"github.com/bpandhare/VA-REPORTS-WEB-APPLICATION-sub001/internal/shared/contextutil"
	"github.com/bpandhare/VA-REPORTS-WEB-APPLICATION-sub001/internal/shared/response"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware accepts a Bearer token or the access_token cookie and sets
// user_id and role on both the gin context and the request context.
func AuthMiddleware(tokens *token.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, found := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
		if !found {
			tokenString = ""
		}

		if tokenString == "" {
			if cookie, err := c.Cookie("access_token"); err == nil {
				tokenString = cookie
			}
		}

		if tokenString == "" {
			abortWith(c, autherrors.ErrTokenNotFound)
			return
		}

		claims, err := tokens.Parse(tokenString)
		if err != nil {
			abortWith(c, err)
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("role", claims.Role)

		ctx := contextutil.WithUserID(c.Request.Context(), claims.UserID)
		ctx = contextutil.WithRole(ctx, claims.Role)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

func abortWith(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	response.Abort(c, httpErr.Status, httpErr.Code, httpErr.Message)
}
