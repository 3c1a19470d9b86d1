package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

func TestIdempotency(t *testing.T) {
	const cacheKey = "idemp:/leaves:user-1:key-1"
	const lockKey = cacheKey + ":lock"

	newRouter := func(rdb *redis.Client, handlerCalls *int) *gin.Engine {
		r := gin.New()
		r.POST("/leaves",
			func(c *gin.Context) { c.Set("user_id", "user-1") },
			Idempotency(rdb),
			func(c *gin.Context) {
				defer ReleaseIdempotency(c, rdb)
				*handlerCalls++
				StoreIdempotentResult(c, rdb, map[string]string{"id": "leave-1"})
				c.Status(http.StatusCreated)
			},
		)
		return r
	}

	t.Run("first request runs handler and caches result", func(t *testing.T) {
		db, mock := redismock.NewClientMock()
		calls := 0

		mock.ExpectGet(cacheKey).RedisNil()
		mock.ExpectSetNX(lockKey, "locked", 30*time.Second).SetVal(true)
		mock.ExpectSet(cacheKey, []byte(`{"id":"leave-1"}`), 24*time.Hour).SetVal("OK")
		mock.ExpectDel(lockKey).SetVal(1)

		req := httptest.NewRequest(http.MethodPost, "/leaves", nil)
		req.Header.Set(HeaderIdempotencyKey, "key-1")
		w := httptest.NewRecorder()
		newRouter(db, &calls).ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, 1, calls)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("replay returns cached result", func(t *testing.T) {
		db, mock := redismock.NewClientMock()
		calls := 0

		mock.ExpectGet(cacheKey).SetVal(`{"id":"leave-1"}`)

		req := httptest.NewRequest(http.MethodPost, "/leaves", nil)
		req.Header.Set(HeaderIdempotencyKey, "key-1")
		w := httptest.NewRecorder()
		newRouter(db, &calls).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, 0, calls)
		assert.JSONEq(t, `{"success":true,"data":{"id":"leave-1"}}`, w.Body.String())
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("in-flight duplicate is rejected", func(t *testing.T) {
		db, mock := redismock.NewClientMock()
		calls := 0

		mock.ExpectGet(cacheKey).RedisNil()
		mock.ExpectSetNX(lockKey, "locked", 30*time.Second).SetVal(false)

		req := httptest.NewRequest(http.MethodPost, "/leaves", nil)
		req.Header.Set(HeaderIdempotencyKey, "key-1")
		w := httptest.NewRecorder()
		newRouter(db, &calls).ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Equal(t, 0, calls)
	})

	t.Run("no header passes through", func(t *testing.T) {
		db, mock := redismock.NewClientMock()
		calls := 0

		w := httptest.NewRecorder()
		newRouter(db, &calls).ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/leaves", nil))

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, 1, calls)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
