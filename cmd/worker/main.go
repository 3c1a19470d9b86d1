package main

import (
	"github.com/bpandhare/VA-REPORTS-WEB-APPLICATION-sub001/internal/app"
	"github.com/bpandhare/VA-REPORTS-WEB-APPLICATION-sub001/internal/config"
	"github.com/bpandhare/VA-REPORTS-WEB-APPLICATION-sub001/internal/shared/apperror"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger, err := zap.NewDevelopment()
	if cfg.IsProduction() {
		logger, err = zap.NewProduction()
	}
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	apperror.Init()

	if err := app.RunWorker(cfg); err != nil {
		logger.Fatal("run worker failed", zap.Error(err))
	}
}
