package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ScheduledReminder is one pending notification derived from a task's due
// date. The full set for a user is rebuilt wholesale on every reschedule,
// so rows carry no mutable state.
type ScheduledReminder struct {
	BaseUUIDModel
	TaskID  uuid.UUID      `gorm:"type:uuid;not null;index:idx_scheduled_reminders_task" json:"taskId" validate:"required"`
	ItemID  uuid.UUID      `gorm:"type:uuid;not null"                                    json:"itemId" validate:"required"`
	UserID  uuid.UUID      `gorm:"type:uuid;not null;index:idx_scheduled_reminders_user" json:"userId" validate:"required"`
	FireAt  time.Time      `gorm:"type:timestamp;not null;index:idx_scheduled_reminders_fire_at" json:"fireAt" validate:"required"`
	Title   string         `gorm:"type:text;not null" json:"title"`
	Body    string         `gorm:"type:text;not null" json:"body"`
	Payload datatypes.JSON `gorm:"type:jsonb" json:"payload,omitempty"`
}

func (sr *ScheduledReminder) BeforeCreate(tx *gorm.DB) (err error) {
	if sr.TaskID == uuid.Nil {
		return gorm.ErrInvalidValue
	}
	if sr.UserID == uuid.Nil {
		return gorm.ErrInvalidValue
	}
	if sr.FireAt.IsZero() {
		return gorm.ErrInvalidValue
	}
	return nil
}
