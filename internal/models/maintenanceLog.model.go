package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// MaintenanceLog is an immutable record of one completed task occurrence.
// TaskID and ItemID are denormalized (no foreign keys) so logs survive task
// and item deletion; ItemName is a snapshot taken at completion time.
type MaintenanceLog struct {
	BaseUUIDModel
	TaskID      uuid.UUID        `gorm:"type:uuid;not null;index:idx_maintenance_logs_task" json:"taskId"   validate:"required"`
	ItemID      uuid.UUID        `gorm:"type:uuid;not null;index:idx_maintenance_logs_item" json:"itemId"   validate:"required"`
	UserID      uuid.UUID        `gorm:"type:uuid;not null;index:idx_maintenance_logs_user" json:"userId"   validate:"required"`
	ItemName    string           `gorm:"type:text;not null" json:"itemName"`
	TaskName    string           `gorm:"type:text;not null" json:"taskName"`
	CompletedAt time.Time        `gorm:"type:timestamp;not null;index:idx_maintenance_logs_completed_at" json:"completedAt" validate:"required"`
	Cost        *decimal.Decimal `gorm:"type:decimal(10,2)" json:"cost,omitempty"`
	Provider    *string          `gorm:"type:text" json:"provider,omitempty"`
	Notes       *string          `gorm:"type:text" json:"notes,omitempty"`
}

func (ml *MaintenanceLog) BeforeCreate(tx *gorm.DB) (err error) {
	if ml.TaskID == uuid.Nil {
		return gorm.ErrInvalidValue
	}
	if ml.ItemID == uuid.Nil {
		return gorm.ErrInvalidValue
	}
	if ml.UserID == uuid.Nil {
		return gorm.ErrInvalidValue
	}
	if ml.CompletedAt.IsZero() {
		ml.CompletedAt = time.Now()
	}
	return nil
}

// BeforeUpdate blocks mutation; logs are append-only.
func (ml *MaintenanceLog) BeforeUpdate(tx *gorm.DB) (err error) {
	return gorm.ErrInvalidValue
}
