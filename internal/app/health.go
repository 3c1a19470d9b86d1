package app

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	"github.com/bpandhare/VA-REPORTS-WEB-APPLICATION-sub001/internal/shared/apperror"
	"github.com/bpandhare/VA-REPORTS-WEB-APPLICATION-sub001/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// healthHandler reports 503 when the database or a configured redis is down.
func healthHandler(db *sql.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		checks := gin.H{"database": "ok"}
		healthy := true

		if err := db.PingContext(ctx); err != nil {
			checks["database"] = err.Error()
			healthy = false
		}
		if rdb != nil {
			checks["redis"] = "ok"
			if err := rdb.Ping(ctx).Err(); err != nil {
				checks["redis"] = err.Error()
				healthy = false
			}
		}

		if !healthy {
			response.Error(c, http.StatusServiceUnavailable, apperror.CodeServiceUnavailable, "Service unavailable", checks)
			return
		}
		response.Success(c, http.StatusOK, checks, nil)
	}
}
