package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProviderType string

const (
	ProviderTypeMechanic    ProviderType = "mechanic"
	ProviderTypePlumber     ProviderType = "plumber"
	ProviderTypeElectrician ProviderType = "electrician"
	ProviderTypeHVAC        ProviderType = "hvac"
	ProviderTypeHandyman    ProviderType = "handyman"
	ProviderTypeOther       ProviderType = "other"
)

func (p ProviderType) IsValid() bool {
	switch p {
	case ProviderTypeMechanic, ProviderTypePlumber, ProviderTypeElectrician,
		ProviderTypeHVAC, ProviderTypeHandyman, ProviderTypeOther:
		return true
	}
	return false
}

// ServiceProvider is an address-book entry for the people who do the work.
// Logs reference providers by free-text name only, so deleting a provider
// never touches history.
type ServiceProvider struct {
	BaseUUIDModel
	UserID  uuid.UUID    `gorm:"type:uuid;not null;index:idx_service_providers_user" json:"userId" validate:"required"`
	Name    string       `gorm:"type:text;not null"                                  json:"name"   validate:"required"`
	Type    ProviderType `gorm:"type:text;not null;default:'other'"                  json:"type"`
	Phone   *string      `gorm:"type:text" json:"phone,omitempty"`
	Email   *string      `gorm:"type:text" json:"email,omitempty"`
	Address *string      `gorm:"type:text" json:"address,omitempty"`
	Website *string      `gorm:"type:text" json:"website,omitempty"`
	Notes   *string      `gorm:"type:text" json:"notes,omitempty"`
	Rating  *int         `gorm:"type:int"  json:"rating,omitempty"`
}

func (sp *ServiceProvider) BeforeCreate(tx *gorm.DB) (err error) {
	if sp.UserID == uuid.Nil {
		return gorm.ErrInvalidValue
	}
	if sp.Name == "" {
		return gorm.ErrInvalidValue
	}
	if sp.Type == "" {
		sp.Type = ProviderTypeOther
	}
	if !sp.Type.IsValid() {
		return gorm.ErrInvalidValue
	}
	if sp.Rating != nil && (*sp.Rating < 1 || *sp.Rating > 5) {
		return gorm.ErrInvalidValue
	}
	return nil
}

func (sp *ServiceProvider) BeforeUpdate(tx *gorm.DB) (err error) {
	if sp.Type != "" && !sp.Type.IsValid() {
		return gorm.ErrInvalidValue
	}
	if sp.Rating != nil && (*sp.Rating < 1 || *sp.Rating > 5) {
		return gorm.ErrInvalidValue
	}
	return nil
}
