package events

import "time"

const AttendanceLifecycleTopic = "va.attendance.lifecycle.v1"

const (
	AttendanceClockedIn     = "attendance.clocked_in"
	AttendanceClockedOut    = "attendance.clocked_out"
	AttendanceBreakStart    = "attendance.break_started"
	AttendanceBreakEnd      = "attendance.break_ended"
	AttendanceAggregateType = "attendance_session"
)

// AttendanceEvent is published for every session status transition.
type AttendanceEvent struct {
	EventType     string    `json:"event_type"`
	RequestID     string    `json:"request_id,omitempty"`
	SessionID     string    `json:"session_id"`
	UserID        string    `json:"user_id"`
	WorkDate      string    `json:"work_date"`
	Status        string    `json:"status"`
	TotalHours    float64   `json:"total_hours,omitempty"`
	OvertimeHours float64   `json:"overtime_hours,omitempty"`
	BreakMinutes  int       `json:"break_minutes,omitempty"`
	OccurredAt    time.Time `json:"occurred_at"`
}
