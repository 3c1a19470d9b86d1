package rbac

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestHandler_Enforce_UsesCallerRole(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := NewHandler(newTestService(t))

	r := gin.New()
	r.POST("/rbac/enforce", func(c *gin.Context) { c.Set("role", RoleEngineer) }, h.Enforce)

	body, _ := json.Marshal(EnforceRequest{Resource: ResourceLeave, Action: ActionApprove})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/rbac/enforce", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var res struct {
		Success bool            `json:"success"`
		Data    EnforceResponse `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.True(t, res.Success)
	assert.False(t, res.Data.Allowed)
}

func TestHandler_Enforce_ValidationError(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := NewHandler(newTestService(t))

	r := gin.New()
	r.POST("/rbac/enforce", h.Enforce)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/rbac/enforce", bytes.NewBufferString(`{}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
