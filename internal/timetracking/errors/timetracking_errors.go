package timetrackingerrors

import (
	"net/http"

	"github.com/bpandhare/VA-REPORTS-WEB-APPLICATION-sub001/internal/shared/apperror"
)

var (
	ErrAlreadyClockedIn = apperror.New(
		apperror.CodeInvalidState,
		"You are already clocked in",
		http.StatusBadRequest,
	)

	ErrNoActiveSession = apperror.New(
		apperror.CodeInvalidState,
		"No active session to clock out from",
		http.StatusBadRequest,
	)

	ErrNotClockedIn = apperror.New(
		apperror.CodeInvalidState,
		"You must clock in first",
		http.StatusBadRequest,
	)

	ErrNoActiveActivity = apperror.New(
		apperror.CodeInvalidState,
		"No running activity to stop",
		http.StatusBadRequest,
	)

	ErrActivityAlreadyRunning = apperror.New(
		apperror.CodeInvalidState,
		"Another activity was started at the same time",
		http.StatusBadRequest,
	)

	ErrNoActiveBreak = apperror.New(
		apperror.CodeInvalidState,
		"No active break to end",
		http.StatusBadRequest,
	)

	ErrAlreadyOnBreak = apperror.New(
		apperror.CodeInvalidState,
		"You are already on a break",
		http.StatusBadRequest,
	)

	ErrInvalidUserID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid user ID",
		http.StatusBadRequest,
	)

	ErrInvalidDate = apperror.New(
		apperror.CodeInvalidInput,
		"Dates must use the YYYY-MM-DD format",
		http.StatusBadRequest,
	)

	ErrInvalidDateRange = apperror.New(
		apperror.CodeInvalidInput,
		"startDate must not be after endDate and the range must not exceed one year",
		http.StatusBadRequest,
	)
)
