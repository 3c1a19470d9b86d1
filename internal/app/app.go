package app

import (
	"github.com/bpandhare/VA-REPORTS-WEB-APPLICATION-sub001/internal/config"
	"github.com/bpandhare/VA-REPORTS-WEB-APPLICATION-sub001/internal/shared/connection"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// BuildApp opens the infrastructure, registers every module on router and
// returns a func that releases the connections.
func BuildApp(router *gin.Engine, cfg *config.Config) (func(), error) {
	log := zap.L().Named("app")

	gormDB, err := OpenDatabase(cfg)
	if err != nil {
		return nil, err
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, err
	}
	log.Info("database connection established", zap.String("driver", cfg.Database.Driver))

	if cfg.Database.AutoMigrate {
		if err := Migrate(gormDB); err != nil {
			_ = sqlDB.Close()
			return nil, err
		}
	}

	// Redis is optional; without it idempotent replay and the team cache are off.
	var rdb *redis.Client
	if cfg.Redis.Addr != "" {
		rdb, err = connection.ConnectRedisWithRetry(cfg.Redis.Addr, cfg.Database.MaxRetries)
		if err != nil {
			_ = sqlDB.Close()
			return nil, err
		}
		log.Info("redis connection established")
	}

	if err := registerModules(router, cfg, sqlDB, gormDB, rdb); err != nil {
		_ = sqlDB.Close()
		if rdb != nil {
			_ = rdb.Close()
		}
		return nil, err
	}

	cleanup := func() {
		_ = sqlDB.Close()
		if rdb != nil {
			_ = rdb.Close()
		}
	}
	return cleanup, nil
}
