package apperror_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/bpandhare/VA-REPORTS-WEB-APPLICATION-sub001/internal/shared/apperror"

	"github.com/stretchr/testify/assert"
)

func TestToHTTP(t *testing.T) {
	conflict := apperror.New(apperror.CodeInvalidState, "already clocked in", http.StatusBadRequest)

	t.Run("app error keeps status and code", func(t *testing.T) {
		got := apperror.ToHTTP(fmt.Errorf("clock in: %w", conflict))
		assert.Equal(t, http.StatusBadRequest, got.Status)
		assert.Equal(t, apperror.CodeInvalidState, got.Code)
		assert.Equal(t, "already clocked in", got.Message)
		assert.Nil(t, got.Details)
	})

	t.Run("unknown error becomes internal", func(t *testing.T) {
		apperror.SetExposeDetails(true)
		got := apperror.ToHTTP(errors.New("connection refused"))
		assert.Equal(t, http.StatusInternalServerError, got.Status)
		assert.Equal(t, apperror.CodeInternalError, got.Code)
		assert.Equal(t, "connection refused", got.Details)
	})

	t.Run("details hidden in production", func(t *testing.T) {
		apperror.SetExposeDetails(false)
		defer apperror.SetExposeDetails(true)

		got := apperror.ToHTTP(errors.New("pq: relation does not exist"))
		assert.Nil(t, got.Details)

		wrapped := apperror.ToHTTP(conflict.WithCause(errors.New("duplicate key")))
		assert.Nil(t, wrapped.Details)
	})
}

func TestAppError_WithCauseStillMatchesSentinel(t *testing.T) {
	sentinel := apperror.New(apperror.CodeConflict, "duplicate", http.StatusConflict)
	cause := errors.New("23505")

	err := sentinel.WithCause(cause)

	assert.True(t, errors.Is(err, sentinel))
	assert.True(t, errors.Is(err, cause))
	assert.Nil(t, sentinel.Err)
}
