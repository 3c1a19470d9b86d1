package middleware

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/bpandhare/VA-REPORTS-WEB-APPLICATION-sub001/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	HeaderIdempotencyKey = "Idempotency-Key"

	ctxIdempotencyCacheKey = "idempotency_cache_key"
	ctxIdempotencyLockKey  = "idempotency_lock_key"

	idempotencyLockTTL   = 30 * time.Second
	idempotencyResultTTL = 24 * time.Hour
)

// Idempotency replays the stored result of a POST that carried the same
// Idempotency-Key, and rejects a duplicate while the first is in flight.
// Handlers call StoreIdempotentResult on success and ReleaseIdempotency always.
func Idempotency(rdb *redis.Client) gin.HandlerFunc {
	log := zap.L().Named("middleware.idempotency")

	return func(c *gin.Context) {
		idempKey := c.GetHeader(HeaderIdempotencyKey)
		if rdb == nil || idempKey == "" || c.Request.Method != http.MethodPost {
			c.Next()
			return
		}

		userID := c.GetString("user_id")
		cacheKey := fmt.Sprintf("idemp:%s:%s:%s", c.FullPath(), userID, idempKey)
		lockKey := cacheKey + ":lock"
		ctx := c.Request.Context()

		val, err := rdb.Get(ctx, cacheKey).Result()
		if err == nil {
			var cached any
			if jsonErr := json.Unmarshal([]byte(val), &cached); jsonErr == nil {
				log.Debug("idempotent replay", zap.String("key", cacheKey))
				response.Success(c, http.StatusOK, cached, nil)
				c.Abort()
				return
			}
		}

		// the lock expires on its own if the process dies mid-request
		isNew, err := rdb.SetNX(ctx, lockKey, "locked", idempotencyLockTTL).Result()
		if err != nil {
			log.Warn("idempotency lock unavailable, continuing", zap.Error(err))
			c.Next()
			return
		}
		if !isNew {
			response.Abort(c, http.StatusConflict, "PROCESSING", "Your request is still being processed, please wait")
			return
		}

		c.Set(ctxIdempotencyCacheKey, cacheKey)
		c.Set(ctxIdempotencyLockKey, lockKey)

		c.Next()
	}
}

func StoreIdempotentResult(c *gin.Context, rdb *redis.Client, result any) {
	cacheKey := c.GetString(ctxIdempotencyCacheKey)
	if rdb == nil || cacheKey == "" {
		return
	}
	payload, err := json.Marshal(result)
	if err != nil {
		return
	}
	_ = rdb.Set(c.Request.Context(), cacheKey, payload, idempotencyResultTTL).Err()
}

func ReleaseIdempotency(c *gin.Context, rdb *redis.Client) {
	lockKey := c.GetString(ctxIdempotencyLockKey)
	if rdb == nil || lockKey == "" {
		return
	}
	_ = rdb.Del(c.Request.Context(), lockKey).Err()
}
