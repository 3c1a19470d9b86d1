package timetracking

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
)

func TestTeamCache(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	cache := NewTeamCache(rdb)
	ctx := context.Background()

	rows := []TeamAttendanceRow{{UserID: "u-1", FullName: "Asha Patil", Status: StatusClockedIn}}
	payload, _ := json.Marshal(rows)

	mock.ExpectGet("attendance:team:2026-03-02").RedisNil()
	_, ok := cache.Get(ctx, "2026-03-02")
	assert.False(t, ok)

	mock.ExpectSet("attendance:team:2026-03-02", payload, teamAttendanceTTL).SetVal("OK")
	assert.NoError(t, cache.Set(ctx, "2026-03-02", rows))

	mock.ExpectGet("attendance:team:2026-03-02").SetVal(string(payload))
	got, ok := cache.Get(ctx, "2026-03-02")
	assert.True(t, ok)
	assert.Equal(t, rows, got)

	mock.ExpectDel("attendance:team:2026-03-02").SetVal(1)
	assert.NoError(t, cache.InvalidateTeamAttendance(ctx, "2026-03-02"))

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTeamCache_NilClientIsMiss(t *testing.T) {
	var cache *TeamCache
	_, ok := cache.Get(context.Background(), "2026-03-02")
	assert.False(t, ok)
	assert.NoError(t, cache.Set(context.Background(), "2026-03-02", nil))
	assert.NoError(t, NewTeamCache(nil).InvalidateTeamAttendance(context.Background(), "2026-03-02"))
}
