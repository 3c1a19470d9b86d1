package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMiddleware_CountsByRoute(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Middleware())
	r.GET("/ping/:id", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	before := testutil.ToFloat64(httpRequests.WithLabelValues("/ping/:id", "GET", "204"))

	for i := 0; i < 2; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping/42", nil))
	}

	after := testutil.ToFloat64(httpRequests.WithLabelValues("/ping/:id", "GET", "204"))
	assert.Equal(t, float64(2), after-before)
}

func TestObserveTransition(t *testing.T) {
	c := attendanceTransitions.WithLabelValues("clock_in", "INVALID_STATE")
	before := testutil.ToFloat64(c)
	ObserveTransition("clock_in", "INVALID_STATE")
	assert.Equal(t, float64(1), testutil.ToFloat64(c)-before)
}
