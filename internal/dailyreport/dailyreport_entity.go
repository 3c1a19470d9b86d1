package dailyreport

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusInProgress = "IN_PROGRESS"
	StatusCompleted  = "COMPLETED"
	StatusPending    = "PENDING"
)

type HourlyReport struct {
	ID         uuid.UUID `gorm:"column:id;type:uuid;primaryKey"`
	UserID     uuid.UUID `gorm:"column:user_id;type:uuid;not null;uniqueIndex:uq_hourly_report,priority:1"`
	ReportDate string    `gorm:"column:report_date;type:varchar(10);not null;uniqueIndex:uq_hourly_report,priority:2"`
	HourSlot   string    `gorm:"column:hour_slot;type:varchar(11);not null;uniqueIndex:uq_hourly_report,priority:3"`
	ProjectID  *string   `gorm:"column:project_id;type:varchar(64)"`
	Activity   string    `gorm:"column:activity;type:text;not null"`
	Target     string    `gorm:"column:target;type:text"`
	Achieved   string    `gorm:"column:achieved;type:text"`
	Notes      *string   `gorm:"column:notes;type:text"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt  time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (HourlyReport) TableName() string {
	return "hourly_reports"
}

type DailyTargetReport struct {
	ID           uuid.UUID `gorm:"column:id;type:uuid;primaryKey"`
	UserID       uuid.UUID `gorm:"column:user_id;type:uuid;not null;uniqueIndex:uq_daily_target_report,priority:1"`
	ReportDate   string    `gorm:"column:report_date;type:varchar(10);not null;uniqueIndex:uq_daily_target_report,priority:2"`
	ProjectID    string    `gorm:"column:project_id;type:varchar(64);not null;uniqueIndex:uq_daily_target_report,priority:3"`
	CustomerName *string   `gorm:"column:customer_name;type:varchar(255)"`
	Location     *string   `gorm:"column:location;type:varchar(255)"`
	DailyTarget  string    `gorm:"column:daily_target;type:text;not null"`
	Achieved     string    `gorm:"column:achieved;type:text"`
	Status       string    `gorm:"column:status;type:varchar(16);not null;default:'PENDING'"`
	Remarks      *string   `gorm:"column:remarks;type:text"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt    time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (DailyTargetReport) TableName() string {
	return "daily_target_reports"
}
