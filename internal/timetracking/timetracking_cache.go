package timetracking

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	TeamAttendanceKeyPrefix = "attendance:team:"
	teamAttendanceTTL       = 5 * time.Minute
)

func TeamAttendanceKey(workDate string) string {
	return TeamAttendanceKeyPrefix + workDate
}

// TeamCache stores the per-date team attendance view. A nil client turns
// every call into a miss.
type TeamCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewTeamCache(rdb *redis.Client) *TeamCache {
	return &TeamCache{rdb: rdb, ttl: teamAttendanceTTL}
}

func (c *TeamCache) Get(ctx context.Context, workDate string) ([]TeamAttendanceRow, bool) {
	if c == nil || c.rdb == nil {
		return nil, false
	}
	cached, err := c.rdb.Get(ctx, TeamAttendanceKey(workDate)).Result()
	if err != nil {
		return nil, false
	}
	var rows []TeamAttendanceRow
	if err := json.Unmarshal([]byte(cached), &rows); err != nil {
		return nil, false
	}
	return rows, true
}

func (c *TeamCache) Set(ctx context.Context, workDate string, rows []TeamAttendanceRow) error {
	if c == nil || c.rdb == nil {
		return nil
	}
	payload, err := json.Marshal(rows)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, TeamAttendanceKey(workDate), payload, c.ttl).Err()
}

func (c *TeamCache) InvalidateTeamAttendance(ctx context.Context, workDate string) error {
	if c == nil || c.rdb == nil {
		return nil
	}
	return c.rdb.Del(ctx, TeamAttendanceKey(workDate)).Err()
}
