package counter

import (
	"context"
	"database/sql"
	"time"

	"gorm.io/gorm"
)

// Counter is a named monotonically increasing sequence, e.g. ("2026", "LEAVE").
type Counter struct {
	Scope       string    `gorm:"primaryKey;size:64"`
	CounterType string    `gorm:"primaryKey;size:64"`
	LastValue   int64     `gorm:"not null;default:0"`
	UpdatedAt   time.Time `gorm:"not null"`
}

func (Counter) TableName() string {
	return "sequence_counters"
}

//go:generate mockgen -destination=mock/counter_repo_mock.go -package=mock . Repository
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	GetNextValue(ctx context.Context, scope string, counterType string) (int64, error)
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

func (r *repository) GetNextValue(ctx context.Context, scope string, counterType string) (int64, error) {
	var nextValue int64

	// single-statement upsert, safe under concurrent callers on both postgres and sqlite
	err := r.db.WithContext(ctx).Raw(`
		INSERT INTO sequence_counters (scope, counter_type, last_value, updated_at)
		VALUES (?, ?, 1, CURRENT_TIMESTAMP)
		ON CONFLICT (scope, counter_type) DO UPDATE
		SET last_value = sequence_counters.last_value + 1, updated_at = CURRENT_TIMESTAMP
		RETURNING last_value
	`, scope, counterType).Scan(&nextValue).Error

	if err != nil {
		return 0, err
	}

	return nextValue, nil
}
