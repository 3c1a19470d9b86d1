package main

import (
	"fmt"
	"os"

	"github.com/bpandhare/VA-REPORTS-WEB-APPLICATION-sub001/internal/cli"
	"github.com/bpandhare/VA-REPORTS-WEB-APPLICATION-sub001/internal/config"
	"github.com/bpandhare/VA-REPORTS-WEB-APPLICATION-sub001/internal/shared/apperror"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load()

	logger, err := zap.NewDevelopment(zap.IncreaseLevel(zap.WarnLevel))
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	apperror.Init()

	if err := cli.NewRootCmd(config.Load).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
