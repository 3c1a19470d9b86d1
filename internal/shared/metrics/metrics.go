package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "va",
		Name:      "http_requests_total",
		Help:      "HTTP requests by route, method and status.",
	}, []string{"route", "method", "status"})

	httpDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "va",
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latency by route.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"route", "method"})

	attendanceTransitions = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "va",
		Name:      "attendance_transitions_total",
		Help:      "Attendance state transitions by operation and outcome.",
	}, []string{"operation", "outcome"})

	outboxPublished = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "va",
		Name:      "outbox_events_total",
		Help:      "Outbox events handled by the publisher, by result.",
	}, []string{"result"})
)

// Middleware records request count and latency keyed by the route template.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		method := c.Request.Method

		httpRequests.WithLabelValues(route, method, strconv.Itoa(c.Writer.Status())).Inc()
		httpDuration.WithLabelValues(route, method).Observe(time.Since(start).Seconds())
	}
}

// ObserveTransition counts one attendance operation; outcome is "ok" or an error code.
func ObserveTransition(operation, outcome string) {
	attendanceTransitions.WithLabelValues(operation, outcome).Inc()
}

func ObserveOutbox(result string) {
	outboxPublished.WithLabelValues(result).Inc()
}
