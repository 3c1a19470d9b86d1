package timetracking

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

//go:generate mockgen -source=timetracking_repo.go -destination=mock/timetracking_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	LockUser(ctx context.Context, userID string) error

	CreateSession(ctx context.Context, s *AttendanceSession) error
	UpdateSession(ctx context.Context, s *AttendanceSession) error
	FindOpenSession(ctx context.Context, userID string) (*AttendanceSession, error)
	FindSessionsByDateRange(ctx context.Context, userID, from, to string) ([]AttendanceSession, error)
	FindSessionsByWorkDate(ctx context.Context, workDate string) ([]AttendanceSession, error)

	CreateActivity(ctx context.Context, a *ActivitySession) error
	UpdateActivity(ctx context.Context, a *ActivitySession) error
	FindOpenActivity(ctx context.Context, userID string) (*ActivitySession, error)
	FindActivitiesBySessions(ctx context.Context, sessionIDs []string) ([]ActivitySession, error)

	CreateBreak(ctx context.Context, b *BreakRecord) error
	UpdateBreak(ctx context.Context, b *BreakRecord) error
	FindOpenBreak(ctx context.Context, sessionID string) (*BreakRecord, error)
	FindBreaksBySessions(ctx context.Context, sessionIDs []string) ([]BreakRecord, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	// Context forces a statement clone, so the shared handle keeps its pool.
	db := r.db.Session(&gorm.Session{NewDB: true, Context: context.Background()})
	db.Statement.ConnPool = tx
	return &repository{db: db}
}

// LockUser serialises state transitions of one user for the rest of the
// transaction. SQLite already serialises writers, so it is a no-op there.
func (r *repository) LockUser(ctx context.Context, userID string) error {
	if r.db.Dialector.Name() != "postgres" {
		return nil
	}
	return r.db.WithContext(ctx).Exec("SELECT pg_advisory_xact_lock(hashtext(?))", userID).Error
}

func (r *repository) CreateSession(ctx context.Context, s *AttendanceSession) error {
	return r.db.WithContext(ctx).Omit("User").Create(s).Error
}

func (r *repository) UpdateSession(ctx context.Context, s *AttendanceSession) error {
	return r.db.WithContext(ctx).Omit("User").Save(s).Error
}

// FindOpenSession returns the most recent non-closed session, or nil.
func (r *repository) FindOpenSession(ctx context.Context, userID string) (*AttendanceSession, error) {
	var rows []AttendanceSession
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Where("status <> ?", StatusClockedOut).
		Order("clock_in_time DESC").
		Limit(1).
		Find(&rows).Error
	if err != nil || len(rows) == 0 {
		return nil, err
	}
	return &rows[0], nil
}

func (r *repository) FindSessionsByDateRange(ctx context.Context, userID, from, to string) ([]AttendanceSession, error) {
	var rows []AttendanceSession
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Where("work_date BETWEEN ? AND ?", from, to).
		Order("work_date ASC, clock_in_time ASC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) FindSessionsByWorkDate(ctx context.Context, workDate string) ([]AttendanceSession, error) {
	var rows []AttendanceSession
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("work_date = ?", workDate).
		Order("clock_in_time ASC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) CreateActivity(ctx context.Context, a *ActivitySession) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *repository) UpdateActivity(ctx context.Context, a *ActivitySession) error {
	return r.db.WithContext(ctx).Save(a).Error
}

func (r *repository) FindOpenActivity(ctx context.Context, userID string) (*ActivitySession, error) {
	var rows []ActivitySession
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND end_time IS NULL", userID).
		Order("start_time DESC").
		Limit(1).
		Find(&rows).Error
	if err != nil || len(rows) == 0 {
		return nil, err
	}
	return &rows[0], nil
}

func (r *repository) FindActivitiesBySessions(ctx context.Context, sessionIDs []string) ([]ActivitySession, error) {
	if len(sessionIDs) == 0 {
		return nil, nil
	}
	var rows []ActivitySession
	err := r.db.WithContext(ctx).
		Where("attendance_session_id IN ?", sessionIDs).
		Order("start_time ASC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) CreateBreak(ctx context.Context, b *BreakRecord) error {
	return r.db.WithContext(ctx).Create(b).Error
}

func (r *repository) UpdateBreak(ctx context.Context, b *BreakRecord) error {
	return r.db.WithContext(ctx).Save(b).Error
}

func (r *repository) FindOpenBreak(ctx context.Context, sessionID string) (*BreakRecord, error) {
	var rows []BreakRecord
	err := r.db.WithContext(ctx).
		Where("attendance_session_id = ? AND end_time IS NULL", sessionID).
		Order("start_time DESC").
		Limit(1).
		Find(&rows).Error
	if err != nil || len(rows) == 0 {
		return nil, err
	}
	return &rows[0], nil
}

func (r *repository) FindBreaksBySessions(ctx context.Context, sessionIDs []string) ([]BreakRecord, error) {
	if len(sessionIDs) == 0 {
		return nil, nil
	}
	var rows []BreakRecord
	err := r.db.WithContext(ctx).
		Where("attendance_session_id IN ?", sessionIDs).
		Order("start_time ASC").
		Find(&rows).Error
	return rows, err
}
