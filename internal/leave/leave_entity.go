package leave

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Leave struct {
	ID          uuid.UUID `gorm:"column:id;type:uuid;primaryKey"`
	ReferenceNo string    `gorm:"column:reference_no;type:varchar(32);not null;uniqueIndex"`
	UserID      uuid.UUID `gorm:"column:user_id;type:uuid;not null;index:idx_leaves_user_dates"`

	LeaveType string `gorm:"column:leave_type;type:varchar(16);not null"`
	StartDate string `gorm:"column:start_date;type:varchar(10);not null;index:idx_leaves_user_dates"`
	EndDate   string `gorm:"column:end_date;type:varchar(10);not null;index:idx_leaves_user_dates"`
	TotalDays int    `gorm:"column:total_days;not null;default:1"`
	Reason    string `gorm:"column:reason;type:text"`

	Status          string     `gorm:"column:status;type:varchar(16);not null;index"`
	ReviewedBy      *uuid.UUID `gorm:"column:reviewed_by;type:uuid"`
	ReviewedAt      *time.Time `gorm:"column:reviewed_at"`
	RejectionReason *string    `gorm:"column:rejection_reason;type:text"`

	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index"`
}

func (Leave) TableName() string {
	return "leaves"
}
