package timetracking

import (
	"context"
	"testing"
	"time"

	"github.com/bpandhare/VA-REPORTS-WEB-APPLICATION-sub001/internal/shared/connection"
	timetrackingerrors "github.com/bpandhare/VA-REPORTS-WEB-APPLICATION-sub001/internal/timetracking/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepo(t *testing.T) Repository {
	t.Helper()
	db, err := connection.OpenSQLite(":memory:")
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&UserRef{}, &AttendanceSession{}, &ActivitySession{}, &BreakRecord{}))
	return NewRepository(db)
}

func TestRepository_OpenSessionIndex(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	userID := uuid.New()
	now := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)

	first := &AttendanceSession{ID: uuid.New(), UserID: userID, WorkDate: "2026-03-02", ClockInTime: now, Status: StatusClockedIn}
	require.NoError(t, repo.CreateSession(ctx, first))

	dup := &AttendanceSession{ID: uuid.New(), UserID: userID, WorkDate: "2026-03-02", ClockInTime: now, Status: StatusClockedIn}
	err := MapRepositoryError(repo.CreateSession(ctx, dup))
	assert.ErrorIs(t, err, timetrackingerrors.ErrAlreadyClockedIn)

	first.Status = StatusClockedOut
	require.NoError(t, repo.UpdateSession(ctx, first))

	// closed sessions are outside the partial index
	require.NoError(t, repo.CreateSession(ctx, dup))

	open, err := repo.FindOpenSession(ctx, userID.String())
	require.NoError(t, err)
	assert.Equal(t, dup.ID, open.ID)
}

func TestRepository_OpenBreakAndActivityIndexes(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	userID := uuid.New()
	sessionID := uuid.New()
	now := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)

	require.NoError(t, repo.CreateBreak(ctx, &BreakRecord{ID: uuid.New(), AttendanceSessionID: sessionID, UserID: userID, BreakType: "lunch", StartTime: now}))
	err := repo.CreateBreak(ctx, &BreakRecord{ID: uuid.New(), AttendanceSessionID: sessionID, UserID: userID, BreakType: "tea", StartTime: now})
	assert.ErrorIs(t, MapRepositoryError(err), timetrackingerrors.ErrAlreadyOnBreak)

	require.NoError(t, repo.CreateActivity(ctx, &ActivitySession{ID: uuid.New(), AttendanceSessionID: sessionID, UserID: userID, ActivityType: "wiring", StartTime: now}))
	err = repo.CreateActivity(ctx, &ActivitySession{ID: uuid.New(), AttendanceSessionID: sessionID, UserID: userID, ActivityType: "survey", StartTime: now})
	assert.ErrorIs(t, MapRepositoryError(err), timetrackingerrors.ErrActivityAlreadyRunning)
}

func TestRepository_FindOpenReturnsNilWhenAbsent(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	sess, err := repo.FindOpenSession(ctx, uuid.NewString())
	assert.NoError(t, err)
	assert.Nil(t, sess)

	br, err := repo.FindOpenBreak(ctx, uuid.NewString())
	assert.NoError(t, err)
	assert.Nil(t, br)

	acts, err := repo.FindActivitiesBySessions(ctx, nil)
	assert.NoError(t, err)
	assert.Empty(t, acts)

	assert.NoError(t, repo.LockUser(ctx, uuid.NewString()))
}
