package settingsController

import (
	"context"
	"errors"
	"time"
	"upkeep/internal/database"
	"upkeep/internal/logger"
	. "upkeep/internal/models"
	"upkeep/internal/repositories"
	"upkeep/internal/services"

	"gorm.io/gorm"
)

const (
	MaxReminderDays = 60
	MaxWindowDays   = 90
)

var (
	ErrValidation = errors.New("validation error")
)

type SettingsController struct {
	settingsRepo       repositories.SettingsRepository
	reminderService    *services.ReminderService
	transactionService *services.TransactionService
	db                 database.DB
	log                logger.Logger
}

type UpdateSettingsRequest struct {
	NotificationsEnabled *bool `json:"notificationsEnabled,omitempty"`
	DefaultReminderDays  *int  `json:"defaultReminderDays,omitempty"`
	DueSoonWindowDays    *int  `json:"dueSoonWindowDays,omitempty"`
	DarkMode             *bool `json:"darkMode,omitempty"`
}

type SettingsControllerInterface interface {
	GetSettings(ctx context.Context, user *User) (*UserSettings, error)
	UpdateSettings(
		ctx context.Context,
		user *User,
		request *UpdateSettingsRequest,
	) (*UserSettings, error)
}

func New(
	repos repositories.Repository,
	services services.Service,
	db database.DB,
) SettingsControllerInterface {
	return &SettingsController{
		settingsRepo:       repos.Settings,
		reminderService:    services.Reminder,
		transactionService: services.Transaction,
		db:                 db,
		log:                logger.New("settingsController"),
	}
}

// GetSettings returns the user's settings, creating the default row on first
// access.
func (c *SettingsController) GetSettings(ctx context.Context, user *User) (*UserSettings, error) {
	log := c.log.Function("GetSettings")

	settings, err := c.settingsRepo.GetByUser(ctx, c.db.SQL, user.ID)
	if err == nil {
		return settings, nil
	}

	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, log.Err("failed to get settings", err, "userID", user.ID)
	}

	settings = &UserSettings{
		UserID:               user.ID,
		NotificationsEnabled: true,
		DefaultReminderDays:  DefaultReminderDays,
		DueSoonWindowDays:    DefaultDueSoonWindowDays,
	}

	if err := c.settingsRepo.Create(ctx, c.db.SQL, settings); err != nil {
		return nil, log.Err("failed to create default settings", err, "userID", user.ID)
	}

	log.Info("Default settings created", "userID", user.ID)

	return settings, nil
}

// UpdateSettings applies the change and rebuilds reminders, because both the
// notification toggle and the default lead time affect what is scheduled.
func (c *SettingsController) UpdateSettings(
	ctx context.Context,
	user *User,
	request *UpdateSettingsRequest,
) (*UserSettings, error) {
	log := c.log.Function("UpdateSettings")

	if request.DefaultReminderDays != nil &&
		(*request.DefaultReminderDays < 1 || *request.DefaultReminderDays > MaxReminderDays) {
		return nil, log.ErrorWithType(
			ErrValidation,
			"defaultReminderDays out of range",
			"defaultReminderDays",
			*request.DefaultReminderDays,
		)
	}

	if request.DueSoonWindowDays != nil &&
		(*request.DueSoonWindowDays < 1 || *request.DueSoonWindowDays > MaxWindowDays) {
		return nil, log.ErrorWithType(
			ErrValidation,
			"dueSoonWindowDays out of range",
			"dueSoonWindowDays",
			*request.DueSoonWindowDays,
		)
	}

	settings, err := c.GetSettings(ctx, user)
	if err != nil {
		return nil, err
	}

	if request.NotificationsEnabled != nil {
		settings.NotificationsEnabled = *request.NotificationsEnabled
	}
	if request.DefaultReminderDays != nil {
		settings.DefaultReminderDays = *request.DefaultReminderDays
	}
	if request.DueSoonWindowDays != nil {
		settings.DueSoonWindowDays = *request.DueSoonWindowDays
	}
	if request.DarkMode != nil {
		settings.DarkMode = *request.DarkMode
	}

	err = c.transactionService.Execute(ctx, func(ctx context.Context, tx *gorm.DB) error {
		if err := c.settingsRepo.Save(ctx, tx, settings); err != nil {
			return err
		}

		return c.reminderService.RescheduleAll(ctx, tx, user.ID, time.Now())
	})
	if err != nil {
		return nil, log.Err("failed to update settings", err, "userID", user.ID)
	}

	log.Info("Settings updated", "userID", user.ID)

	return settings, nil
}
