package bootstrap

import (
	"context"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

type recordingAudit struct {
	mu      sync.Mutex
	actions []string
}

func (r *recordingAudit) Log(_ context.Context, entry AuditLog) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.actions = append(r.actions, entry.Action)
}

func TestServe_ShutsDownOnCancel(t *testing.T) {
	audit := &recordingAudit{}
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() {
		done <- Serve(ctx, http.NotFoundHandler(), ServerConfig{Port: "0", ShutdownTimeout: time.Second}, audit)
	}()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("server did not stop")
	}

	audit.mu.Lock()
	defer audit.mu.Unlock()
	assert.Equal(t, []string{"SERVER_START", "SERVER_SHUTDOWN"}, audit.actions)
}

func TestStdoutAuditLogger_Fields(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	l := NewStdoutAuditLogger(zap.New(core))
	l.now = func() time.Time { return time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC) }

	l.Log(context.Background(), AuditLog{Action: "USER_LOGIN", Message: "ok", Meta: map[string]any{"id": "u1"}})

	entries := logs.All()
	assert.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "USER_LOGIN", fields["action"])
	assert.Equal(t, "2026-03-02T09:00:00Z", fields["timestamp"])
	assert.Equal(t, "audit", entries[0].LoggerName)
}
