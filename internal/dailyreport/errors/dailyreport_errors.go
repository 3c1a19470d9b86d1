package dailyreporterrors

import (
	"net/http"

	"github.com/bpandhare/VA-REPORTS-WEB-APPLICATION-sub001/internal/shared/apperror"
)

var (
	ErrInvalidUserID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid user id",
		http.StatusBadRequest,
	)

	ErrInvalidDate = apperror.New(
		apperror.CodeInvalidInput,
		"invalid date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)

	ErrInvalidDateRange = apperror.New(
		apperror.CodeInvalidInput,
		"from must not be after to",
		http.StatusBadRequest,
	)

	ErrDuplicateHourlyReport = apperror.New(
		apperror.CodeConflict,
		"an hourly report for this slot already exists",
		http.StatusConflict,
	)

	ErrDuplicateDailyReport = apperror.New(
		apperror.CodeConflict,
		"a daily report for this project and date already exists",
		http.StatusConflict,
	)

	ErrReportNotFound = apperror.New(
		apperror.CodeNotFound,
		"report not found",
		http.StatusNotFound,
	)

	ErrNotReportOwner = apperror.New(
		apperror.CodeForbidden,
		"only the author can edit this report",
		http.StatusForbidden,
	)

	ErrCannotViewOthers = apperror.New(
		apperror.CodeForbidden,
		"you can only view your own reports",
		http.StatusForbidden,
	)
)
