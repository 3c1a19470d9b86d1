package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/bpandhare/VA-REPORTS-WEB-APPLICATION-sub001/internal/auth/token"
	"github.com/bpandhare/VA-REPORTS-WEB-APPLICATION-sub001/internal/rbac"
	"github.com/bpandhare/VA-REPORTS-WEB-APPLICATION-sub001/internal/shared/contextutil"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func decodeCode(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body.Error.Code
}

func TestAuthMiddleware(t *testing.T) {
	tokens := token.NewManager("test-secret", time.Hour)
	valid, _, err := tokens.Issue("user-1", rbac.RoleEngineer)
	assert.NoError(t, err)

	r := gin.New()
	r.GET("/me", AuthMiddleware(tokens), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"user_id": c.GetString("user_id"),
			"role":    c.GetString("role"),
			"ctx_uid": contextutil.GetUserID(c.Request.Context()),
		})
	})

	t.Run("bearer token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Bearer "+valid)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"user_id":"user-1","role":"engineer","ctx_uid":"user-1"}`, w.Body.String())
	})

	t.Run("cookie token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.AddCookie(&http.Cookie{Name: "access_token", Value: valid})
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("missing token", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/me", nil))

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "UNAUTHORIZED", decodeCode(t, w))
	})

	t.Run("garbage token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Bearer not.a.jwt")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "INVALID_TOKEN", decodeCode(t, w))
	})
}

type stubRBAC struct {
	allowed bool
	err     error
	got     rbac.EnforceRequest
}

func (s *stubRBAC) Enforce(req rbac.EnforceRequest) (bool, error) {
	s.got = req
	return s.allowed, s.err
}

func TestRBACAuthorize(t *testing.T) {
	withAuth := func(c *gin.Context) {
		c.Set("user_id", "user-1")
		c.Set("role", rbac.RoleEngineer)
	}

	t.Run("allowed", func(t *testing.T) {
		stub := &stubRBAC{allowed: true}
		r := gin.New()
		r.GET("/x", withAuth, RBACAuthorize(stub, "attendance", "write"), func(c *gin.Context) { c.Status(http.StatusNoContent) })

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Equal(t, rbac.EnforceRequest{Role: "engineer", Resource: "attendance", Action: "write"}, stub.got)
	})

	t.Run("denied", func(t *testing.T) {
		r := gin.New()
		r.GET("/x", withAuth, RBACAuthorize(&stubRBAC{}, "leave", "approve"), func(c *gin.Context) { c.Status(http.StatusNoContent) })

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))

		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Equal(t, "FORBIDDEN", decodeCode(t, w))
	})

	t.Run("enforcer error", func(t *testing.T) {
		r := gin.New()
		r.GET("/x", withAuth, RBACAuthorize(&stubRBAC{err: errors.New("boom")}, "leave", "read"), func(c *gin.Context) {})

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})

	t.Run("no auth context", func(t *testing.T) {
		r := gin.New()
		r.GET("/x", RBACAuthorize(&stubRBAC{allowed: true}, "leave", "read"), func(c *gin.Context) {})

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestRateLimitByUser(t *testing.T) {
	r := gin.New()
	r.GET("/x", func(c *gin.Context) { c.Set("user_id", "user-1") }, RateLimitByUser(0.001, 1), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "TOO_MANY_REQUESTS", decodeCode(t, w))
}

func TestRequestIDAndContextLogger(t *testing.T) {
	r := gin.New()
	r.Use(RequestID(), ContextLogger(zap.NewNop()))
	r.GET("/x", func(c *gin.Context) {
		c.String(http.StatusOK, contextutil.GetRequestID(c.Request.Context()))
	})

	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set(HeaderRequestID, "rid-123")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, "rid-123", w.Body.String())
	assert.Equal(t, "rid-123", w.Header().Get(HeaderRequestID))
}
