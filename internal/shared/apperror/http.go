package apperror

import (
	"errors"
	"net/http"
	"sync/atomic"
)

// HTTPError is the transport view of an error, consumed by response.Error.
type HTTPError struct {
	Status  int
	Code    string
	Message string
	Details any
}

var exposeDetails atomic.Bool

func init() {
	exposeDetails.Store(true)
}

// SetExposeDetails toggles whether wrapped causes (SQL errors and the like)
// are returned to clients. Disabled in production.
func SetExposeDetails(v bool) {
	exposeDetails.Store(v)
}

func ToHTTP(err error) HTTPError {
	if err == nil {
		return HTTPError{Status: http.StatusOK}
	}

	var appErr *AppError
	if errors.As(err, &appErr) {
		out := HTTPError{
			Status:  appErr.HTTPStatus,
			Code:    appErr.Code,
			Message: appErr.Message,
		}
		if out.Status == 0 {
			out.Status = http.StatusInternalServerError
		}
		if appErr.Err != nil && exposeDetails.Load() {
			out.Details = appErr.Err.Error()
		}
		return out
	}

	out := HTTPError{
		Status:  ErrInternal.HTTPStatus,
		Code:    ErrInternal.Code,
		Message: ErrInternal.Message,
	}
	if exposeDetails.Load() {
		out.Details = err.Error()
	}
	return out
}
