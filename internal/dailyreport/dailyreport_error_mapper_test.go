package dailyreport

import (
	"errors"
	"testing"

	dailyreporterrors "github.com/bpandhare/VA-REPORTS-WEB-APPLICATION-sub001/internal/dailyreport/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestMapRepositoryError(t *testing.T) {
	other := errors.New("boom")

	tests := []struct {
		name string
		in   error
		want error
	}{
		{"nil", nil, nil},
		{"not found", gorm.ErrRecordNotFound, dailyreporterrors.ErrReportNotFound},
		{"pg hourly", &pgconn.PgError{Code: "23505", ConstraintName: constraintHourlyReport}, dailyreporterrors.ErrDuplicateHourlyReport},
		{"pg daily", &pgconn.PgError{Code: "23505", ConstraintName: constraintDailyReport}, dailyreporterrors.ErrDuplicateDailyReport},
		{"sqlite hourly", errors.New("UNIQUE constraint failed: hourly_reports.user_id, hourly_reports.report_date"), dailyreporterrors.ErrDuplicateHourlyReport},
		{"sqlite daily", errors.New("UNIQUE constraint failed: daily_target_reports.user_id"), dailyreporterrors.ErrDuplicateDailyReport},
		{"passthrough", other, other},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MapRepositoryError(tt.in)
			if tt.want == nil {
				assert.NoError(t, got)
				return
			}
			assert.ErrorIs(t, got, tt.want)
		})
	}
}
