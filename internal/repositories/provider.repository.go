package repositories

import (
	"context"
	"upkeep/internal/logger"
	. "upkeep/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProviderRepository interface {
	GetByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*ServiceProvider, error)
	GetByID(ctx context.Context, tx *gorm.DB, userID, providerID uuid.UUID) (*ServiceProvider, error)
	Create(ctx context.Context, tx *gorm.DB, provider *ServiceProvider) error
	Update(ctx context.Context, tx *gorm.DB, provider *ServiceProvider) error
	Delete(ctx context.Context, tx *gorm.DB, userID, providerID uuid.UUID) error
}

type providerRepository struct{}

func NewProviderRepository() ProviderRepository {
	return &providerRepository{}
}

func (r *providerRepository) GetByUser(
	ctx context.Context,
	tx *gorm.DB,
	userID uuid.UUID,
) ([]*ServiceProvider, error) {
	log := logger.NewWithContext(ctx, "providerRepository").Function("GetByUser")

	providers, err := gorm.G[*ServiceProvider](tx).
		Where(ServiceProvider{UserID: userID}).
		Order("name ASC").
		Find(ctx)
	if err != nil {
		return nil, log.Err("failed to get user providers", err, "userID", userID)
	}

	return providers, nil
}

func (r *providerRepository) GetByID(
	ctx context.Context,
	tx *gorm.DB,
	userID, providerID uuid.UUID,
) (*ServiceProvider, error) {
	log := logger.NewWithContext(ctx, "providerRepository").Function("GetByID")

	var provider ServiceProvider
	if err := tx.WithContext(ctx).
		Where("id = ? AND user_id = ?", providerID, userID).
		First(&provider).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, gorm.ErrRecordNotFound
		}
		return nil, log.Err("failed to get provider", err, "providerID", providerID, "userID", userID)
	}

	return &provider, nil
}

func (r *providerRepository) Create(
	ctx context.Context,
	tx *gorm.DB,
	provider *ServiceProvider,
) error {
	log := logger.NewWithContext(ctx, "providerRepository").Function("Create")

	if err := tx.WithContext(ctx).Create(provider).Error; err != nil {
		return log.Err("failed to create provider", err, "userID", provider.UserID, "name", provider.Name)
	}

	return nil
}

func (r *providerRepository) Update(
	ctx context.Context,
	tx *gorm.DB,
	provider *ServiceProvider,
) error {
	log := logger.NewWithContext(ctx, "providerRepository").Function("Update")

	if err := tx.WithContext(ctx).Save(provider).Error; err != nil {
		return log.Err("failed to update provider", err, "providerID", provider.ID)
	}

	return nil
}

func (r *providerRepository) Delete(
	ctx context.Context,
	tx *gorm.DB,
	userID, providerID uuid.UUID,
) error {
	log := logger.NewWithContext(ctx, "providerRepository").Function("Delete")

	result := tx.WithContext(ctx).
		Where("id = ? AND user_id = ?", providerID, userID).
		Delete(&ServiceProvider{})
	if result.Error != nil {
		return log.Err("failed to delete provider", result.Error, "providerID", providerID, "userID", userID)
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}
