package timetracking

import (
	"errors"
	"strings"

	timetrackingerrors "github.com/bpandhare/VA-REPORTS-WEB-APPLICATION-sub001/internal/timetracking/errors"

	"github.com/jackc/pgx/v5/pgconn"
)

const (
	constraintOpenSession  = "uq_attendance_open_session"
	constraintOpenActivity = "uq_activity_open"
	constraintOpenBreak    = "uq_break_open"
)

// MapRepositoryError turns a unique violation on one of the open-interval
// indexes into the state error a racing caller would have seen had it
// arrived second. Other errors pass through.
func MapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		switch pgErr.ConstraintName {
		case constraintOpenSession:
			return timetrackingerrors.ErrAlreadyClockedIn.WithCause(err)
		case constraintOpenActivity:
			return timetrackingerrors.ErrActivityAlreadyRunning.WithCause(err)
		case constraintOpenBreak:
			return timetrackingerrors.ErrAlreadyOnBreak.WithCause(err)
		}
		return err
	}

	// SQLite reports the table and column instead of the index name.
	msg := err.Error()
	if !strings.Contains(msg, "UNIQUE constraint failed") {
		return err
	}
	switch {
	case strings.Contains(msg, "attendance_sessions."):
		return timetrackingerrors.ErrAlreadyClockedIn.WithCause(err)
	case strings.Contains(msg, "activity_sessions."):
		return timetrackingerrors.ErrActivityAlreadyRunning.WithCause(err)
	case strings.Contains(msg, "break_records."):
		return timetrackingerrors.ErrAlreadyOnBreak.WithCause(err)
	}
	return err
}
