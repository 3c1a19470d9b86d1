package counter

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestGetNextValue_IncrementsPerScope(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	assert.NoError(t, err)
	assert.NoError(t, db.AutoMigrate(&Counter{}))

	repo := NewRepository(db)
	ctx := context.Background()

	for want := int64(1); want <= 3; want++ {
		got, err := repo.GetNextValue(ctx, "2026", "LEAVE")
		assert.NoError(t, err)
		assert.Equal(t, want, got)
	}

	other, err := repo.GetNextValue(ctx, "2027", "LEAVE")
	assert.NoError(t, err)
	assert.Equal(t, int64(1), other)
}

func TestWithTx_LeavesBaseHandleUsable(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(&Counter{}))

	repo := NewRepository(db)
	ctx := context.Background()

	tx, err := sqlDB.BeginTx(ctx, nil)
	require.NoError(t, err)
	got, err := repo.WithTx(tx).GetNextValue(ctx, "2026", "LEAVE")
	require.NoError(t, err)
	assert.Equal(t, int64(1), got)
	require.NoError(t, tx.Commit())

	got, err = repo.GetNextValue(ctx, "2026", "LEAVE")
	require.NoError(t, err)
	assert.Equal(t, int64(2), got)
}
