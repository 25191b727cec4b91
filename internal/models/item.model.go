package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ItemCategory string

const (
	ItemCategoryVehicle   ItemCategory = "vehicle"
	ItemCategoryHome      ItemCategory = "home"
	ItemCategoryAppliance ItemCategory = "appliance"
	ItemCategoryOther     ItemCategory = "other"
)

// IsValid reports whether the category is one of the closed set.
func (c ItemCategory) IsValid() bool {
	switch c {
	case ItemCategoryVehicle, ItemCategoryHome, ItemCategoryAppliance, ItemCategoryOther:
		return true
	}
	return false
}

type Item struct {
	BaseUUIDModel
	UserID         uuid.UUID    `gorm:"type:uuid;not null;index:idx_items_user" json:"userId"   validate:"required"`
	Name           string       `gorm:"type:text;not null"                      json:"name"     validate:"required"`
	Category       ItemCategory `gorm:"type:text;not null;index:idx_items_category" json:"category" validate:"required"`
	Subtype        *string      `gorm:"type:text" json:"subtype,omitempty"`
	Brand          *string      `gorm:"type:text" json:"brand,omitempty"`
	Model          *string      `gorm:"type:text" json:"model,omitempty"`
	Location       *string      `gorm:"type:text" json:"location,omitempty"`
	PurchaseDate   *time.Time   `gorm:"type:timestamp" json:"purchaseDate,omitempty"`
	WarrantyExpiry *time.Time   `gorm:"type:timestamp" json:"warrantyExpiry,omitempty"`
	Notes          *string      `gorm:"type:text" json:"notes,omitempty"`

	// Relationships
	User  *User             `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Tasks []MaintenanceTask `gorm:"foreignKey:ItemID" json:"tasks,omitempty"`
}

func (i *Item) BeforeCreate(tx *gorm.DB) (err error) {
	if i.UserID == uuid.Nil {
		return gorm.ErrInvalidValue
	}
	if i.Name == "" {
		return gorm.ErrInvalidValue
	}
	if !i.Category.IsValid() {
		return gorm.ErrInvalidValue
	}
	return nil
}

func (i *Item) BeforeUpdate(tx *gorm.DB) (err error) {
	if i.Category != "" && !i.Category.IsValid() {
		return gorm.ErrInvalidValue
	}
	return nil
}
