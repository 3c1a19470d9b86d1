package middleware

import (
	"github.com/bpandhare/VA-REPORTS-WEB-APPLICATION-sub001/internal/shared/contextutil"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ContextLogger puts a logger tagged with request_id and user_id into the
// request context. Mount it after RequestID and AuthMiddleware.
func ContextLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		rid := contextutil.GetRequestID(ctx)
		if rid == "" {
			rid = uuid.New().String()
			c.Header(HeaderRequestID, rid)
			ctx = contextutil.WithRequestID(ctx, rid)
		}

		reqLogger := logger.With(
			zap.String("request_id", rid),
			zap.String("user_id", c.GetString("user_id")),
			zap.String("route", c.FullPath()),
		)

		ctx = contextutil.WithLogger(ctx, reqLogger)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
