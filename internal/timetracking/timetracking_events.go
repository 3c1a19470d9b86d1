package timetracking

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/bpandhare/VA-REPORTS-WEB-APPLICATION-sub001/internal/events"
	"github.com/bpandhare/VA-REPORTS-WEB-APPLICATION-sub001/internal/messaging/kafka"
	"github.com/bpandhare/VA-REPORTS-WEB-APPLICATION-sub001/internal/shared/contextutil"

	"github.com/google/uuid"
)

// enqueueEvent writes the transition into the outbox inside tx so it is
// published only if the transition commits.
func (s *service) enqueueEvent(ctx context.Context, tx *sql.Tx, eventType string, sess *AttendanceSession) error {
	if s.outbox == nil {
		return nil
	}

	requestID := contextutil.GetRequestID(ctx)
	payload, err := json.Marshal(events.AttendanceEvent{
		EventType:     eventType,
		RequestID:     requestID,
		SessionID:     sess.ID.String(),
		UserID:        sess.UserID.String(),
		WorkDate:      sess.WorkDate,
		Status:        sess.Status,
		TotalHours:    sess.TotalHours,
		OvertimeHours: sess.OvertimeHours,
		BreakMinutes:  sess.BreakMinutes,
		OccurredAt:    s.now(),
	})
	if err != nil {
		return err
	}

	return s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
		ID:            uuid.NewString(),
		RequestID:     requestID,
		AggregateType: events.AttendanceAggregateType,
		AggregateID:   sess.UserID.String(),
		EventType:     eventType,
		Topic:         events.AttendanceLifecycleTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	})
}
