package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type TaskPriority string

const (
	TaskPriorityLow      TaskPriority = "low"
	TaskPriorityMedium   TaskPriority = "medium"
	TaskPriorityHigh     TaskPriority = "high"
	TaskPriorityCritical TaskPriority = "critical"
)

// Rank gives the total order used for sorting and tie-breaking:
// low < medium < high < critical. Unknown priorities sort first.
func (p TaskPriority) Rank() int {
	switch p {
	case TaskPriorityLow:
		return 1
	case TaskPriorityMedium:
		return 2
	case TaskPriorityHigh:
		return 3
	case TaskPriorityCritical:
		return 4
	}
	return 0
}

func (p TaskPriority) IsValid() bool {
	return p.Rank() > 0
}

// MaintenanceTask is a recurring (or one-time, IntervalDays == 0) unit of
// work tied to exactly one Item. NextDue is always set.
type MaintenanceTask struct {
	BaseUUIDModel
	ItemID             uuid.UUID        `gorm:"type:uuid;not null;index:idx_maintenance_tasks_item" json:"itemId"   validate:"required"`
	UserID             uuid.UUID        `gorm:"type:uuid;not null;index:idx_maintenance_tasks_user" json:"userId"   validate:"required"`
	Name               string           `gorm:"type:text;not null"                                  json:"name"     validate:"required"`
	Description        *string          `gorm:"type:text" json:"description,omitempty"`
	IntervalDays       int              `gorm:"type:int;not null;default:0" json:"intervalDays"`
	LastCompleted      *time.Time       `gorm:"type:timestamp" json:"lastCompleted,omitempty"`
	NextDue            time.Time        `gorm:"type:timestamp;not null;index:idx_maintenance_tasks_next_due" json:"nextDue" validate:"required"`
	ReminderDaysBefore int              `gorm:"type:int;not null;default:3" json:"reminderDaysBefore"`
	Priority           TaskPriority     `gorm:"type:text;not null;default:'medium'" json:"priority"`
	EstimatedCost      *decimal.Decimal `gorm:"type:decimal(10,2)" json:"estimatedCost,omitempty"`
	Notes              *string          `gorm:"type:text" json:"notes,omitempty"`
	IsActive           bool             `gorm:"type:boolean;not null;default:true" json:"isActive"`

	// Relationships
	Item *Item `gorm:"foreignKey:ItemID" json:"item,omitempty"`
	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (t *MaintenanceTask) BeforeCreate(tx *gorm.DB) (err error) {
	if t.ItemID == uuid.Nil {
		return gorm.ErrInvalidValue
	}
	if t.UserID == uuid.Nil {
		return gorm.ErrInvalidValue
	}
	if t.Name == "" {
		return gorm.ErrInvalidValue
	}
	if t.IntervalDays < 0 {
		return gorm.ErrInvalidValue
	}
	if t.NextDue.IsZero() {
		return gorm.ErrInvalidValue
	}
	if t.Priority == "" {
		t.Priority = TaskPriorityMedium
	}
	if !t.Priority.IsValid() {
		return gorm.ErrInvalidValue
	}
	return nil
}

func (t *MaintenanceTask) BeforeUpdate(tx *gorm.DB) (err error) {
	if t.IntervalDays < 0 {
		return gorm.ErrInvalidValue
	}
	if t.Priority != "" && !t.Priority.IsValid() {
		return gorm.ErrInvalidValue
	}
	return nil
}
