package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	DefaultReminderDays      = 3
	DefaultDueSoonWindowDays = 7
)

// UserSettings is the single per-user configuration row, created with the
// user and persisted on every preference change.
type UserSettings struct {
	BaseUUIDModel
	UserID               uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_user_settings_user" json:"userId" validate:"required"`
	NotificationsEnabled bool      `gorm:"type:boolean;not null;default:true" json:"notificationsEnabled"`
	DefaultReminderDays  int       `gorm:"type:int;not null;default:3"        json:"defaultReminderDays"`
	DueSoonWindowDays    int       `gorm:"type:int;not null;default:7"        json:"dueSoonWindowDays"`
	DarkMode             bool      `gorm:"type:boolean;not null;default:false" json:"darkMode"`
}

func (us *UserSettings) BeforeCreate(tx *gorm.DB) (err error) {
	if us.UserID == uuid.Nil {
		return gorm.ErrInvalidValue
	}
	if us.DefaultReminderDays <= 0 {
		us.DefaultReminderDays = DefaultReminderDays
	}
	if us.DueSoonWindowDays <= 0 {
		us.DueSoonWindowDays = DefaultDueSoonWindowDays
	}
	return nil
}
