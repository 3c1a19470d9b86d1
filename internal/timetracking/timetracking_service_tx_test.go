package timetracking

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	timetrackingerrors "github.com/bpandhare/VA-REPORTS-WEB-APPLICATION-sub001/internal/timetracking/errors"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

// fakeRepo overrides the methods a test needs; the embedded interface
// panics on anything else.
type fakeRepo struct {
	Repository
	lockFn            func(ctx context.Context, userID string) error
	findOpenSessionFn func(ctx context.Context, userID string) (*AttendanceSession, error)
	createSessionFn   func(ctx context.Context, s *AttendanceSession) error
}

func (f *fakeRepo) WithTx(*sql.Tx) Repository { return f }

func (f *fakeRepo) LockUser(ctx context.Context, userID string) error {
	if f.lockFn == nil {
		return nil
	}
	return f.lockFn(ctx, userID)
}

func (f *fakeRepo) FindOpenSession(ctx context.Context, userID string) (*AttendanceSession, error) {
	return f.findOpenSessionFn(ctx, userID)
}

func (f *fakeRepo) CreateSession(ctx context.Context, s *AttendanceSession) error {
	return f.createSessionFn(ctx, s)
}

func TestService_ClockIn_CommitsTransaction(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	var created *AttendanceSession
	repo := &fakeRepo{
		findOpenSessionFn: func(context.Context, string) (*AttendanceSession, error) { return nil, nil },
		createSessionFn: func(_ context.Context, s *AttendanceSession) error {
			created = s
			return nil
		},
	}
	svc := NewService(db, repo, WithLogger(zap.NewNop()))

	mock.ExpectBegin()
	mock.ExpectCommit()

	resp, err := svc.ClockIn(context.Background(), uuid.NewString(), ClockRequest{})
	assert.NoError(t, err)
	assert.Equal(t, created.ID.String(), resp.SessionID)
	assert.Equal(t, StatusClockedIn, created.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_ClockIn_RollsBackOnStoreFailure(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	repo := &fakeRepo{
		findOpenSessionFn: func(context.Context, string) (*AttendanceSession, error) { return nil, nil },
		createSessionFn: func(context.Context, *AttendanceSession) error {
			return errors.New("connection reset by peer")
		},
	}
	svc := NewService(db, repo, WithLogger(zap.NewNop()))

	mock.ExpectBegin()
	mock.ExpectRollback()

	_, err := svc.ClockIn(context.Background(), uuid.NewString(), ClockRequest{})
	assert.EqualError(t, err, "connection reset by peer")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_ClockIn_LockFailureStopsTransition(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	repo := &fakeRepo{
		lockFn: func(context.Context, string) error { return errors.New("lock timeout") },
	}
	svc := NewService(db, repo, WithLogger(zap.NewNop()))

	mock.ExpectBegin()
	mock.ExpectRollback()

	_, err := svc.ClockIn(context.Background(), uuid.NewString(), ClockRequest{})
	assert.EqualError(t, err, "lock timeout")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_ClockIn_AlreadyOpenRollsBack(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	repo := &fakeRepo{
		findOpenSessionFn: func(context.Context, string) (*AttendanceSession, error) {
			return &AttendanceSession{ID: uuid.New(), Status: StatusOnBreak}, nil
		},
	}
	svc := NewService(db, repo, WithLogger(zap.NewNop()))

	mock.ExpectBegin()
	mock.ExpectRollback()

	_, err := svc.ClockIn(context.Background(), uuid.NewString(), ClockRequest{})
	assert.ErrorIs(t, err, timetrackingerrors.ErrAlreadyClockedIn)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_BeginFailure(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	svc := NewService(db, &fakeRepo{}, WithLogger(zap.NewNop()))
	mock.ExpectBegin().WillReturnError(errors.New("too many connections"))

	_, err := svc.StopActivity(context.Background(), uuid.NewString())
	assert.EqualError(t, err, "too many connections")
	assert.NoError(t, mock.ExpectationsWereMet())
}
