package cli

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bpandhare/VA-REPORTS-WEB-APPLICATION-sub001/internal/config"
	"github.com/bpandhare/VA-REPORTS-WEB-APPLICATION-sub001/internal/timetracking"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sqliteLoader(t *testing.T) ConfigLoader {
	t.Helper()
	path := filepath.Join(t.TempDir(), "vactl.db")
	return func() (*config.Config, error) {
		cfg := config.Default()
		cfg.Database.Driver = "sqlite"
		cfg.Database.SQLitePath = path
		return cfg, nil
	}
}

func run(t *testing.T, load ConfigLoader, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := NewRootCmd(load)
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestCLI_MigrateAndCreateUser(t *testing.T) {
	load := sqliteLoader(t)

	out, err := run(t, load, "migrate")
	require.NoError(t, err)
	assert.Contains(t, out, "schema is up to date (sqlite)")

	out, err = run(t, load, "create-user", "--name", "Asha Rao", "--email", "Asha@Example.com", "--password", "changeme1", "--role", "manager")
	require.NoError(t, err)
	assert.Contains(t, out, "created manager asha@example.com")

	_, err = run(t, load, "create-user", "--name", "Asha Again", "--email", "asha@example.com", "--password", "changeme1")
	assert.Error(t, err)

	_, err = run(t, load, "create-user", "--name", "Short", "--email", "s@example.com", "--password", "short")
	assert.EqualError(t, err, "password must be at least 8 characters")
}

func TestCLI_WeeklyReport(t *testing.T) {
	load := sqliteLoader(t)
	_, err := run(t, load, "migrate")
	require.NoError(t, err)

	out, err := run(t, load, "weekly-report", "--user", uuid.NewString(), "--from", "2026-03-01", "--to", "2026-03-07")
	require.NoError(t, err)
	assert.Contains(t, out, "no attendance in range")

	_, err = run(t, load, "weekly-report", "--user", "not-a-uuid")
	assert.Error(t, err)

	_, err = run(t, load, "weekly-report")
	assert.Error(t, err)
}

func TestRenderWeeklyReport(t *testing.T) {
	var buf bytes.Buffer
	renderWeeklyReport(&buf, []timetracking.DailyAggregate{
		{Date: "2026-03-02", DaysWorked: 1, TotalHours: 9.5, OvertimeHours: 0.5, BreakMinutes: 30, ActivityCount: 3, BreakCount: 1},
		{Date: "2026-03-03", DaysWorked: 1, TotalHours: 7, BreakMinutes: 60, ActivityCount: 2, BreakCount: 2},
	})

	out := buf.String()
	assert.Contains(t, out, "DATE")
	assert.Contains(t, out, "2026-03-02")
	assert.Contains(t, out, "9.50")
	assert.Contains(t, out, "16.50")
	assert.Equal(t, 1, strings.Count(out, "total"))
}
