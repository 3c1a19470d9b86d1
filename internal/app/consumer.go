package app

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/bpandhare/VA-REPORTS-WEB-APPLICATION-sub001/internal/config"
	"github.com/bpandhare/VA-REPORTS-WEB-APPLICATION-sub001/internal/events"
	"github.com/bpandhare/VA-REPORTS-WEB-APPLICATION-sub001/internal/messaging/kafka/consumer"
	"github.com/bpandhare/VA-REPORTS-WEB-APPLICATION-sub001/internal/shared/connection"
	"github.com/bpandhare/VA-REPORTS-WEB-APPLICATION-sub001/internal/timetracking"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

const teamCacheConsumerGroup = "va-reports-team-cache"

// RunConsumer drops cached team attendance whenever a lifecycle event for
// that work date arrives.
func RunConsumer(cfg *config.Config) error {
	logger := zap.L().Named("app.consumer")

	rdb, err := connection.ConnectRedisWithRetry(cfg.Redis.Addr, cfg.Database.MaxRetries)
	if err != nil {
		return err
	}
	defer rdb.Close()

	reader := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:        []string{cfg.Kafka.Broker},
		Topic:          events.AttendanceLifecycleTopic,
		GroupID:        teamCacheConsumerGroup,
		CommitInterval: 0,
		StartOffset:    kafkago.FirstOffset,
	})
	defer reader.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	consumer.ConsumeAttendanceLifecycle(ctx, reader, timetracking.NewTeamCache(rdb), logger)

	logger.Info("consumer shutting down")
	return nil
}
