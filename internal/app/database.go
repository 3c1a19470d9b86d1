package app

import (
	"fmt"

	"github.com/bpandhare/VA-REPORTS-WEB-APPLICATION-sub001/internal/config"
	"github.com/bpandhare/VA-REPORTS-WEB-APPLICATION-sub001/internal/dailyreport"
	"github.com/bpandhare/VA-REPORTS-WEB-APPLICATION-sub001/internal/leave"
	"github.com/bpandhare/VA-REPORTS-WEB-APPLICATION-sub001/internal/messaging/kafka"
	"github.com/bpandhare/VA-REPORTS-WEB-APPLICATION-sub001/internal/shared/connection"
	"github.com/bpandhare/VA-REPORTS-WEB-APPLICATION-sub001/internal/shared/counter"
	"github.com/bpandhare/VA-REPORTS-WEB-APPLICATION-sub001/internal/timetracking"
	"github.com/bpandhare/VA-REPORTS-WEB-APPLICATION-sub001/internal/user"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// OpenDatabase connects to the configured driver.
func OpenDatabase(cfg *config.Config) (*gorm.DB, error) {
	switch cfg.Database.Driver {
	case "sqlite":
		return connection.OpenSQLite(cfg.Database.SQLitePath)
	case "postgres":
		return connection.ConnectGORMWithRetry(connection.PostgresConfig{
			Host:     cfg.Database.Host,
			User:     cfg.Database.User,
			Password: cfg.Database.Password,
			DBName:   cfg.Database.Name,
			Port:     cfg.Database.Port,
			SSLMode:  cfg.Database.SSLMode,
		}, cfg.Database.MaxRetries)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Database.Driver)
	}
}

// Migrate creates or updates every table. users goes first because the
// attendance models read it through a narrower struct.
func Migrate(db *gorm.DB) error {
	log := zap.L().Named("app.migrate")

	if err := db.AutoMigrate(&user.User{}); err != nil {
		return fmt.Errorf("migrate users: %w", err)
	}

	models := []any{
		&timetracking.AttendanceSession{},
		&timetracking.ActivitySession{},
		&timetracking.BreakRecord{},
		&leave.Leave{},
		&dailyreport.HourlyReport{},
		&dailyreport.DailyTargetReport{},
		&kafka.OutboxEvent{},
		&counter.Counter{},
	}
	if err := db.AutoMigrate(models...); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	log.Info("schema migrated", zap.Int("tables", len(models)+1))
	return nil
}
