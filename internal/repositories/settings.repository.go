package repositories

import (
	"context"
	"upkeep/internal/logger"
	. "upkeep/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SettingsRepository interface {
	GetByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) (*UserSettings, error)
	Create(ctx context.Context, tx *gorm.DB, settings *UserSettings) error
	Save(ctx context.Context, tx *gorm.DB, settings *UserSettings) error
}

type settingsRepository struct{}

func NewSettingsRepository() SettingsRepository {
	return &settingsRepository{}
}

func (r *settingsRepository) GetByUser(
	ctx context.Context,
	tx *gorm.DB,
	userID uuid.UUID,
) (*UserSettings, error) {
	log := logger.NewWithContext(ctx, "settingsRepository").Function("GetByUser")

	var settings UserSettings
	if err := tx.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&settings).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, gorm.ErrRecordNotFound
		}
		return nil, log.Err("failed to get user settings", err, "userID", userID)
	}

	return &settings, nil
}

func (r *settingsRepository) Create(
	ctx context.Context,
	tx *gorm.DB,
	settings *UserSettings,
) error {
	log := logger.NewWithContext(ctx, "settingsRepository").Function("Create")

	if err := tx.WithContext(ctx).Create(settings).Error; err != nil {
		return log.Err("failed to create user settings", err, "userID", settings.UserID)
	}

	return nil
}

// Save writes every column so toggles can be turned off, not just on.
func (r *settingsRepository) Save(
	ctx context.Context,
	tx *gorm.DB,
	settings *UserSettings,
) error {
	log := logger.NewWithContext(ctx, "settingsRepository").Function("Save")

	if err := tx.WithContext(ctx).Save(settings).Error; err != nil {
		return log.Err("failed to save user settings", err, "userID", settings.UserID)
	}

	return nil
}
