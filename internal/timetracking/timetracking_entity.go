package timetracking

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusClockedIn  = "clocked_in"
	StatusOnBreak    = "on_break"
	StatusClockedOut = "clocked_out"

	dateLayout = "2006-01-02"
)

// AttendanceSession is one clock-in to clock-out window. The partial unique
// index keeps a single non-closed session per user.
type AttendanceSession struct {
	ID                   uuid.UUID  `gorm:"column:id;type:uuid;primaryKey"`
	UserID               uuid.UUID  `gorm:"column:user_id;type:uuid;not null;index:idx_attendance_user_date,priority:1;uniqueIndex:uq_attendance_open_session,where:status <> 'clocked_out'"`
	WorkDate             string     `gorm:"column:work_date;type:varchar(10);not null;index:idx_attendance_user_date,priority:2;index:idx_attendance_work_date"`
	ClockInTime          time.Time  `gorm:"column:clock_in_time;not null"`
	ClockInLatitude      *float64   `gorm:"column:clock_in_latitude"`
	ClockInLongitude     *float64   `gorm:"column:clock_in_longitude"`
	ClockInLocationName  *string    `gorm:"column:clock_in_location_name;type:varchar(255)"`
	ClockOutTime         *time.Time `gorm:"column:clock_out_time"`
	ClockOutLatitude     *float64   `gorm:"column:clock_out_latitude"`
	ClockOutLongitude    *float64   `gorm:"column:clock_out_longitude"`
	ClockOutLocationName *string    `gorm:"column:clock_out_location_name;type:varchar(255)"`
	TotalHours           float64    `gorm:"column:total_hours;type:numeric(6,2);not null;default:0"`
	OvertimeHours        float64    `gorm:"column:overtime_hours;type:numeric(6,2);not null;default:0"`
	BreakMinutes         int        `gorm:"column:break_minutes;not null;default:0"`
	Status               string     `gorm:"column:status;type:varchar(16);not null"`
	CreatedAt            time.Time  `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt            time.Time  `gorm:"column:updated_at;autoUpdateTime"`
	User                 *UserRef   `gorm:"foreignKey:UserID;references:ID"`
}

func (AttendanceSession) TableName() string {
	return "attendance_sessions"
}

func (s AttendanceSession) IsOpen() bool {
	return s.Status != StatusClockedOut
}

type ActivitySession struct {
	ID                  uuid.UUID  `gorm:"column:id;type:uuid;primaryKey"`
	AttendanceSessionID uuid.UUID  `gorm:"column:attendance_session_id;type:uuid;not null;index"`
	UserID              uuid.UUID  `gorm:"column:user_id;type:uuid;not null;uniqueIndex:uq_activity_open,where:end_time IS NULL"`
	ProjectID           *string    `gorm:"column:project_id;type:varchar(64)"`
	ActivityType        string     `gorm:"column:activity_type;type:varchar(64);not null"`
	TaskDescription     *string    `gorm:"column:task_description;type:text"`
	StartTime           time.Time  `gorm:"column:start_time;not null"`
	EndTime             *time.Time `gorm:"column:end_time"`
	DurationMinutes     *int       `gorm:"column:duration_minutes"`
	CreatedAt           time.Time  `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt           time.Time  `gorm:"column:updated_at;autoUpdateTime"`
}

func (ActivitySession) TableName() string {
	return "activity_sessions"
}

type BreakRecord struct {
	ID                  uuid.UUID  `gorm:"column:id;type:uuid;primaryKey"`
	AttendanceSessionID uuid.UUID  `gorm:"column:attendance_session_id;type:uuid;not null;index;uniqueIndex:uq_break_open,where:end_time IS NULL"`
	UserID              uuid.UUID  `gorm:"column:user_id;type:uuid;not null;index"`
	BreakType           string     `gorm:"column:break_type;type:varchar(32);not null"`
	StartTime           time.Time  `gorm:"column:start_time;not null"`
	EndTime             *time.Time `gorm:"column:end_time"`
	DurationMinutes     *int       `gorm:"column:duration_minutes"`
	Notes               *string    `gorm:"column:notes;type:text"`
	CreatedAt           time.Time  `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt           time.Time  `gorm:"column:updated_at;autoUpdateTime"`
}

func (BreakRecord) TableName() string {
	return "break_records"
}

// UserRef is the read-only slice of users needed by the team view.
type UserRef struct {
	ID        uuid.UUID  `gorm:"column:id;type:uuid;primaryKey"`
	FullName  string     `gorm:"column:full_name"`
	Role      string     `gorm:"column:role"`
	ManagerID *uuid.UUID `gorm:"column:manager_id;type:uuid"`
}

func (UserRef) TableName() string {
	return "users"
}
