package models

import (
	"gorm.io/gorm"
)

type User struct {
	BaseUUIDModel
	Email        string `gorm:"type:text;not null;uniqueIndex:idx_users_email" json:"email"    validate:"required,email"`
	DisplayName  string `gorm:"type:text;not null"                             json:"displayName" validate:"required"`
	PasswordHash string `gorm:"type:text;not null"                             json:"-"`
	IsActive     bool   `gorm:"type:boolean;not null;default:true"             json:"isActive"`

	// Relationships
	Settings *UserSettings `gorm:"foreignKey:UserID" json:"settings,omitempty"`
}

func (u *User) BeforeCreate(tx *gorm.DB) (err error) {
	if u.Email == "" {
		return gorm.ErrInvalidValue
	}
	if u.PasswordHash == "" {
		return gorm.ErrInvalidValue
	}
	if u.DisplayName == "" {
		u.DisplayName = u.Email
	}
	return nil
}
