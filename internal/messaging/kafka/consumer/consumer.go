package consumer

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/bpandhare/VA-REPORTS-WEB-APPLICATION-sub001/internal/events"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

var (
	// invalidateBackoff is the wait before each retry of a failed invalidation.
	invalidateBackoff = []time.Duration{200 * time.Millisecond, time.Second, 5 * time.Second}
	fetchErrorBackoff = time.Second
)

// MessageReader is satisfied by *kafkago.Reader.
type MessageReader interface {
	FetchMessage(ctx context.Context) (kafkago.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafkago.Message) error
}

// TeamCacheInvalidator drops cached team attendance for a work date.
type TeamCacheInvalidator interface {
	InvalidateTeamAttendance(ctx context.Context, workDate string) error
}

func ConsumeAttendanceLifecycle(
	ctx context.Context,
	reader MessageReader,
	cache TeamCacheInvalidator,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.attendance_lifecycle")
	log.Info("attendance lifecycle consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("attendance lifecycle consumer stopped")
				return
			}
			log.Error("fetch attendance lifecycle message failed", zap.Error(err))
			if !sleepCtx(ctx, fetchErrorBackoff) {
				log.Info("attendance lifecycle consumer stopped")
				return
			}
			continue
		}

		if err := handleWithRetry(ctx, msg, cache, log); err != nil {
			if ctx.Err() != nil {
				log.Info("attendance lifecycle consumer stopped")
				return
			}
			// the group offset moves past this message either way; the cache TTL
			// bounds how long the stale entry survives
			log.Error("handle attendance event failed, skipping",
				zap.Int64("offset", msg.Offset),
				zap.Error(err),
			)
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit attendance lifecycle message failed", zap.Error(err))
		}
	}
}

func handleWithRetry(ctx context.Context, msg kafkago.Message, cache TeamCacheInvalidator, log *zap.Logger) error {
	for attempt := 0; ; attempt++ {
		err := handleAttendanceEvent(ctx, msg, cache, log)
		if err == nil || attempt >= len(invalidateBackoff) {
			return err
		}
		log.Warn("handle attendance event failed, retrying",
			zap.Int("attempt", attempt+1),
			zap.Int64("offset", msg.Offset),
			zap.Error(err),
		)
		if !sleepCtx(ctx, invalidateBackoff[attempt]) {
			return ctx.Err()
		}
	}
}

func sleepCtx(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}

// handleAttendanceEvent returns an error only for retryable failures.
// Undecodable payloads are logged and skipped.
func handleAttendanceEvent(ctx context.Context, msg kafkago.Message, cache TeamCacheInvalidator, log *zap.Logger) error {
	var event events.AttendanceEvent
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		log.Warn("decode attendance event failed, skipping", zap.Int64("offset", msg.Offset), zap.Error(err))
		return nil
	}
	if event.WorkDate == "" {
		log.Warn("attendance event without work_date, skipping", zap.String("session_id", event.SessionID))
		return nil
	}

	if err := cache.InvalidateTeamAttendance(ctx, event.WorkDate); err != nil {
		return fmt.Errorf("invalidate team attendance %s: %w", event.WorkDate, err)
	}

	log.Debug("team attendance cache invalidated",
		zap.String("event_type", event.EventType),
		zap.String("request_id", event.RequestID),
		zap.String("user_id", event.UserID),
		zap.String("work_date", event.WorkDate),
	)
	return nil
}
