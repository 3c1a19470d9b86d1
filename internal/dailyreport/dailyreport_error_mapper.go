package dailyreport

import (
	"errors"
	"strings"

	dailyreporterrors "github.com/bpandhare/VA-REPORTS-WEB-APPLICATION-sub001/internal/dailyreport/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const (
	constraintHourlyReport = "uq_hourly_report"
	constraintDailyReport  = "uq_daily_target_report"
)

func MapRepositoryError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return dailyreporterrors.ErrReportNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		switch pgErr.ConstraintName {
		case constraintHourlyReport:
			return dailyreporterrors.ErrDuplicateHourlyReport.WithCause(err)
		case constraintDailyReport:
			return dailyreporterrors.ErrDuplicateDailyReport.WithCause(err)
		}
		return err
	}

	msg := err.Error()
	if !strings.Contains(msg, "UNIQUE constraint failed") {
		return err
	}
	switch {
	case strings.Contains(msg, "hourly_reports."):
		return dailyreporterrors.ErrDuplicateHourlyReport.WithCause(err)
	case strings.Contains(msg, "daily_target_reports."):
		return dailyreporterrors.ErrDuplicateDailyReport.WithCause(err)
	}
	return err
}
