package providerController

import (
	"context"
	"errors"
	"strings"
	"upkeep/internal/database"
	"upkeep/internal/logger"
	. "upkeep/internal/models"
	"upkeep/internal/repositories"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrValidation = errors.New("validation error")
	ErrNotFound   = errors.New("not found")
)

type ProviderController struct {
	providerRepo repositories.ProviderRepository
	db           database.DB
	log          logger.Logger
}

type CreateProviderRequest struct {
	Name    string       `json:"name"`
	Type    ProviderType `json:"type"`
	Phone   *string      `json:"phone,omitempty"`
	Email   *string      `json:"email,omitempty"`
	Address *string      `json:"address,omitempty"`
	Website *string      `json:"website,omitempty"`
	Notes   *string      `json:"notes,omitempty"`
	Rating  *int         `json:"rating,omitempty"`
}

type UpdateProviderRequest struct {
	Name    *string       `json:"name,omitempty"`
	Type    *ProviderType `json:"type,omitempty"`
	Phone   *string       `json:"phone,omitempty"`
	Email   *string       `json:"email,omitempty"`
	Address *string       `json:"address,omitempty"`
	Website *string       `json:"website,omitempty"`
	Notes   *string       `json:"notes,omitempty"`
	Rating  *int          `json:"rating,omitempty"`
}

type ProviderControllerInterface interface {
	GetProviders(ctx context.Context, user *User) ([]*ServiceProvider, error)
	GetProvider(ctx context.Context, user *User, providerID uuid.UUID) (*ServiceProvider, error)
	CreateProvider(
		ctx context.Context,
		user *User,
		request *CreateProviderRequest,
	) (*ServiceProvider, error)
	UpdateProvider(
		ctx context.Context,
		user *User,
		providerID uuid.UUID,
		request *UpdateProviderRequest,
	) (*ServiceProvider, error)
	DeleteProvider(ctx context.Context, user *User, providerID uuid.UUID) error
}

func New(repos repositories.Repository, db database.DB) ProviderControllerInterface {
	return &ProviderController{
		providerRepo: repos.Provider,
		db:           db,
		log:          logger.New("providerController"),
	}
}

func (c *ProviderController) GetProviders(
	ctx context.Context,
	user *User,
) ([]*ServiceProvider, error) {
	log := c.log.Function("GetProviders")

	providers, err := c.providerRepo.GetByUser(ctx, c.db.SQL, user.ID)
	if err != nil {
		return nil, log.Err("failed to get providers", err, "userID", user.ID)
	}

	return providers, nil
}

func (c *ProviderController) GetProvider(
	ctx context.Context,
	user *User,
	providerID uuid.UUID,
) (*ServiceProvider, error) {
	log := c.log.Function("GetProvider")

	provider, err := c.providerRepo.GetByID(ctx, c.db.SQL, user.ID, providerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, log.ErrorWithType(ErrNotFound, "provider not found", "providerID", providerID)
		}
		return nil, log.Err("failed to get provider", err, "providerID", providerID)
	}

	return provider, nil
}

func (c *ProviderController) CreateProvider(
	ctx context.Context,
	user *User,
	request *CreateProviderRequest,
) (*ServiceProvider, error) {
	log := c.log.Function("CreateProvider")

	name := strings.TrimSpace(request.Name)
	if name == "" {
		return nil, log.ErrorWithType(ErrValidation, "name is required")
	}

	providerType := request.Type
	if providerType == "" {
		providerType = ProviderTypeOther
	}
	if !providerType.IsValid() {
		return nil, log.ErrorWithType(ErrValidation, "invalid provider type", "type", request.Type)
	}

	if request.Rating != nil && (*request.Rating < 1 || *request.Rating > 5) {
		return nil, log.ErrorWithType(ErrValidation, "rating must be between 1 and 5")
	}

	provider := &ServiceProvider{
		UserID:  user.ID,
		Name:    name,
		Type:    providerType,
		Phone:   request.Phone,
		Email:   request.Email,
		Address: request.Address,
		Website: request.Website,
		Notes:   request.Notes,
		Rating:  request.Rating,
	}

	if err := c.providerRepo.Create(ctx, c.db.SQL, provider); err != nil {
		return nil, log.Err("failed to create provider", err, "userID", user.ID)
	}

	return provider, nil
}

func (c *ProviderController) UpdateProvider(
	ctx context.Context,
	user *User,
	providerID uuid.UUID,
	request *UpdateProviderRequest,
) (*ServiceProvider, error) {
	log := c.log.Function("UpdateProvider")

	provider, err := c.providerRepo.GetByID(ctx, c.db.SQL, user.ID, providerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, log.ErrorWithType(ErrNotFound, "provider not found", "providerID", providerID)
		}
		return nil, log.Err("failed to get provider", err, "providerID", providerID)
	}

	if request.Name != nil {
		name := strings.TrimSpace(*request.Name)
		if name == "" {
			return nil, log.ErrorWithType(ErrValidation, "name cannot be empty")
		}
		provider.Name = name
	}

	if request.Type != nil {
		if !request.Type.IsValid() {
			return nil, log.ErrorWithType(ErrValidation, "invalid provider type", "type", *request.Type)
		}
		provider.Type = *request.Type
	}

	if request.Rating != nil {
		if *request.Rating < 1 || *request.Rating > 5 {
			return nil, log.ErrorWithType(ErrValidation, "rating must be between 1 and 5")
		}
		provider.Rating = request.Rating
	}

	if request.Phone != nil {
		provider.Phone = request.Phone
	}
	if request.Email != nil {
		provider.Email = request.Email
	}
	if request.Address != nil {
		provider.Address = request.Address
	}
	if request.Website != nil {
		provider.Website = request.Website
	}
	if request.Notes != nil {
		provider.Notes = request.Notes
	}

	if err := c.providerRepo.Update(ctx, c.db.SQL, provider); err != nil {
		return nil, log.Err("failed to update provider", err, "providerID", providerID)
	}

	return provider, nil
}

func (c *ProviderController) DeleteProvider(
	ctx context.Context,
	user *User,
	providerID uuid.UUID,
) error {
	log := c.log.Function("DeleteProvider")

	if err := c.providerRepo.Delete(ctx, c.db.SQL, user.ID, providerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return log.ErrorWithType(ErrNotFound, "provider not found", "providerID", providerID)
		}
		return log.Err("failed to delete provider", err, "providerID", providerID)
	}

	return nil
}
