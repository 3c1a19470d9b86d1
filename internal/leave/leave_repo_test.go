package leave

import (
	"context"
	"testing"

	"github.com/bpandhare/VA-REPORTS-WEB-APPLICATION-sub001/internal/shared/connection"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepository_HasOverlappingPeriod(t *testing.T) {
	db, err := connection.OpenSQLite(":memory:")
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&Leave{}))

	repo := NewRepository(db)
	ctx := context.Background()
	userID := uuid.New()

	seed := []Leave{
		{StartDate: "2026-03-10", EndDate: "2026-03-12", Status: StatusApproved},
		{StartDate: "2026-03-20", EndDate: "2026-03-20", Status: StatusRejected},
		{StartDate: "2026-03-25", EndDate: "2026-03-26", Status: StatusCancelled},
	}
	for i := range seed {
		seed[i].ID = uuid.New()
		seed[i].ReferenceNo = uuid.NewString()[:12]
		seed[i].UserID = userID
		seed[i].LeaveType = "ANNUAL"
		require.NoError(t, repo.Create(ctx, &seed[i]))
	}

	tests := []struct {
		name       string
		start, end string
		want       bool
	}{
		{"touches start", "2026-03-08", "2026-03-10", true},
		{"touches end", "2026-03-12", "2026-03-14", true},
		{"inside", "2026-03-11", "2026-03-11", true},
		{"covers", "2026-03-01", "2026-03-31", true},
		{"before", "2026-03-01", "2026-03-09", false},
		{"after", "2026-03-13", "2026-03-15", false},
		{"rejected ignored", "2026-03-20", "2026-03-20", false},
		{"cancelled ignored", "2026-03-25", "2026-03-26", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := repo.HasOverlappingPeriod(ctx, userID.String(), tt.start, tt.end)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	got, err := repo.HasOverlappingPeriod(ctx, uuid.NewString(), "2026-03-10", "2026-03-12")
	require.NoError(t, err)
	assert.False(t, got)
}

func TestRepository_FindAll_Filters(t *testing.T) {
	db, err := connection.OpenSQLite(":memory:")
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&Leave{}))

	repo := NewRepository(db)
	ctx := context.Background()
	alice, bob := uuid.New(), uuid.New()

	for i, l := range []Leave{
		{UserID: alice, StartDate: "2026-01-05", EndDate: "2026-01-05", Status: StatusPending},
		{UserID: alice, StartDate: "2026-02-05", EndDate: "2026-02-05", Status: StatusApproved},
		{UserID: bob, StartDate: "2026-01-07", EndDate: "2026-01-07", Status: StatusPending},
	} {
		l.ID = uuid.New()
		l.ReferenceNo = "LV-TEST-" + string(rune('A'+i))
		l.LeaveType = "SICK"
		require.NoError(t, repo.Create(ctx, &l))
	}

	all, err := repo.FindAll(ctx, ListLeavesFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 3)

	mine, err := repo.FindAll(ctx, ListLeavesFilter{UserID: alice.String()})
	require.NoError(t, err)
	require.Len(t, mine, 2)
	assert.Equal(t, "2026-02-05", mine[0].StartDate)

	pending, err := repo.FindAll(ctx, ListLeavesFilter{Status: StatusPending})
	require.NoError(t, err)
	assert.Len(t, pending, 2)
}

func TestRepository_WithTxLeavesBaseHandleUsable(t *testing.T) {
	db, err := connection.OpenSQLite(":memory:")
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&Leave{}))
	sqlDB, err := db.DB()
	require.NoError(t, err)

	repo := NewRepository(db)
	ctx := context.Background()
	userID := uuid.New()

	tx, err := sqlDB.BeginTx(ctx, nil)
	require.NoError(t, err)
	require.NoError(t, repo.WithTx(tx).Create(ctx, &Leave{
		ID:          uuid.New(),
		ReferenceNo: "LV-2026-000001",
		UserID:      userID,
		LeaveType:   "ANNUAL",
		StartDate:   "2026-04-06",
		EndDate:     "2026-04-07",
		Status:      StatusPending,
	}))
	require.NoError(t, tx.Commit())

	found, err := repo.FindAll(ctx, ListLeavesFilter{UserID: userID.String()})
	require.NoError(t, err)
	assert.Len(t, found, 1)
}
