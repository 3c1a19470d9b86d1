package app

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/bpandhare/VA-REPORTS-WEB-APPLICATION-sub001/internal/config"
	"github.com/bpandhare/VA-REPORTS-WEB-APPLICATION-sub001/internal/messaging/kafka"
	"github.com/bpandhare/VA-REPORTS-WEB-APPLICATION-sub001/internal/messaging/kafka/producer"
	"github.com/bpandhare/VA-REPORTS-WEB-APPLICATION-sub001/internal/shared/connection"

	"go.uber.org/zap"
)

// RunWorker relays outbox rows to Kafka until SIGINT/SIGTERM.
func RunWorker(cfg *config.Config) error {
	logger := zap.L().Named("app.worker")

	gormDB, err := OpenDatabase(cfg)
	if err != nil {
		return err
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	kafkaWriter, err := connection.ConnectKafkaWithRetry(cfg.Kafka.Broker, cfg.Database.MaxRetries)
	if err != nil {
		return err
	}
	defer kafkaWriter.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	producer.ProcessOutboxEvents(
		ctx,
		kafka.NewOutboxRepository(gormDB),
		kafkaWriter,
		logger,
		cfg.Kafka.OutboxPollInterval,
	)

	logger.Info("worker shutting down")
	return nil
}
