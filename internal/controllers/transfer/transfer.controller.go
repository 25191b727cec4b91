package transferController

import (
	"context"
	"errors"
	"time"
	"upkeep/internal/database"
	"upkeep/internal/logger"
	. "upkeep/internal/models"
	"upkeep/internal/repositories"
	"upkeep/internal/services"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	ExportVersion = 1
)

var (
	ErrInvalidFormat = errors.New("invalid import format")
)

type TransferController struct {
	itemRepo           repositories.ItemRepository
	taskRepo           repositories.TaskRepository
	logRepo            repositories.LogRepository
	settingsRepo       repositories.SettingsRepository
	reminderService    *services.ReminderService
	transactionService *services.TransactionService
	db                 database.DB
	log                logger.Logger
}

// ExportPayload is the complete portable snapshot of a user's data.
// Reminders are excluded, they are derived state and rebuilt on import.
type ExportPayload struct {
	Version    int                `json:"version"`
	ExportedAt time.Time          `json:"exportedAt"`
	Items      []*Item            `json:"items"`
	Tasks      []*MaintenanceTask `json:"tasks"`
	Logs       []*MaintenanceLog  `json:"logs"`
	Settings   *UserSettings      `json:"settings,omitempty"`
}

type TransferControllerInterface interface {
	Export(ctx context.Context, user *User) (*ExportPayload, error)
	Import(ctx context.Context, user *User, payload *ExportPayload) error
}

func New(
	repos repositories.Repository,
	services services.Service,
	db database.DB,
) TransferControllerInterface {
	return &TransferController{
		itemRepo:           repos.Item,
		taskRepo:           repos.Task,
		logRepo:            repos.Log,
		settingsRepo:       repos.Settings,
		reminderService:    services.Reminder,
		transactionService: services.Transaction,
		db:                 db,
		log:                logger.New("transferController"),
	}
}

func (c *TransferController) Export(ctx context.Context, user *User) (*ExportPayload, error) {
	log := c.log.Function("Export")

	payload := &ExportPayload{
		Version:    ExportVersion,
		ExportedAt: time.Now().UTC(),
	}

	items, err := c.itemRepo.GetByUser(ctx, c.db.SQL, user.ID)
	if err != nil {
		return nil, log.Err("failed to export items", err, "userID", user.ID)
	}
	payload.Items = items

	tasks, err := c.taskRepo.GetByUser(ctx, c.db.SQL, user.ID)
	if err != nil {
		return nil, log.Err("failed to export tasks", err, "userID", user.ID)
	}
	payload.Tasks = tasks

	logs, err := c.logRepo.GetByUser(ctx, c.db.SQL, user.ID, repositories.LogFilter{})
	if err != nil {
		return nil, log.Err("failed to export logs", err, "userID", user.ID)
	}
	payload.Logs = logs

	settings, err := c.settingsRepo.GetByUser(ctx, c.db.SQL, user.ID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, log.Err("failed to export settings", err, "userID", user.ID)
	}
	payload.Settings = settings

	if payload.Items == nil {
		payload.Items = []*Item{}
	}
	if payload.Tasks == nil {
		payload.Tasks = []*MaintenanceTask{}
	}
	if payload.Logs == nil {
		payload.Logs = []*MaintenanceLog{}
	}

	log.Info(
		"Data exported",
		"userID",
		user.ID,
		"items",
		len(payload.Items),
		"tasks",
		len(payload.Tasks),
		"logs",
		len(payload.Logs),
	)

	return payload, nil
}

// Import replaces the user's items, tasks and logs with the payload contents
// and rebuilds reminders. The whole operation is one transaction, a bad
// payload leaves existing data untouched.
func (c *TransferController) Import(
	ctx context.Context,
	user *User,
	payload *ExportPayload,
) error {
	log := c.log.Function("Import")

	if err := validatePayload(payload); err != nil {
		return log.ErrorWithType(ErrInvalidFormat, err.Error())
	}

	now := time.Now()

	err := c.transactionService.Execute(ctx, func(ctx context.Context, tx *gorm.DB) error {
		if err := c.logRepo.DeleteByUser(ctx, tx, user.ID); err != nil {
			return err
		}
		if err := c.taskRepo.DeleteByUser(ctx, tx, user.ID); err != nil {
			return err
		}
		if err := c.itemRepo.DeleteByUser(ctx, tx, user.ID); err != nil {
			return err
		}

		for _, item := range payload.Items {
			item.UserID = user.ID
			if err := c.itemRepo.Create(ctx, tx, item); err != nil {
				return err
			}
		}

		for _, task := range payload.Tasks {
			task.UserID = user.ID
			if err := c.taskRepo.Create(ctx, tx, task); err != nil {
				return err
			}
		}

		entries := payload.Logs
		for _, entry := range entries {
			entry.UserID = user.ID
		}
		if err := c.logRepo.CreateBatch(ctx, tx, entries); err != nil {
			return err
		}

		if payload.Settings != nil {
			if err := c.importSettings(ctx, tx, user.ID, payload.Settings); err != nil {
				return err
			}
		}

		return c.reminderService.RescheduleAll(ctx, tx, user.ID, now)
	})
	if err != nil {
		return log.Err("failed to import data", err, "userID", user.ID)
	}

	log.Info(
		"Data imported",
		"userID",
		user.ID,
		"items",
		len(payload.Items),
		"tasks",
		len(payload.Tasks),
		"logs",
		len(payload.Logs),
	)

	return nil
}

func (c *TransferController) importSettings(
	ctx context.Context,
	tx *gorm.DB,
	userID uuid.UUID,
	incoming *UserSettings,
) error {
	existing, err := c.settingsRepo.GetByUser(ctx, tx, userID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		incoming.ID = uuid.Nil
		incoming.UserID = userID
		return c.settingsRepo.Create(ctx, tx, incoming)
	}

	existing.NotificationsEnabled = incoming.NotificationsEnabled
	existing.DefaultReminderDays = incoming.DefaultReminderDays
	existing.DueSoonWindowDays = incoming.DueSoonWindowDays
	existing.DarkMode = incoming.DarkMode

	return c.settingsRepo.Save(ctx, tx, existing)
}

// validatePayload rejects payloads that are structurally wrong rather than
// merely empty. Empty arrays are a valid "wipe my data" import.
func validatePayload(payload *ExportPayload) error {
	if payload == nil {
		return errors.New("payload is required")
	}

	if payload.Version <= 0 || payload.Version > ExportVersion {
		return errors.New("unsupported export version")
	}

	if payload.Items == nil || payload.Tasks == nil || payload.Logs == nil {
		return errors.New("items, tasks and logs must all be present")
	}

	itemIDs := make(map[uuid.UUID]struct{}, len(payload.Items))
	for _, item := range payload.Items {
		if item == nil {
			return errors.New("items cannot contain nulls")
		}
		if item.Name == "" || !item.Category.IsValid() {
			return errors.New("every item needs a name and a valid category")
		}
		if item.ID != uuid.Nil {
			itemIDs[item.ID] = struct{}{}
		}
	}

	for _, task := range payload.Tasks {
		if task == nil {
			return errors.New("tasks cannot contain nulls")
		}
		if task.Name == "" || task.IntervalDays < 0 || task.NextDue.IsZero() {
			return errors.New("every task needs a name, interval and due date")
		}
		if _, ok := itemIDs[task.ItemID]; !ok {
			return errors.New("task references an item missing from the payload")
		}
	}

	for _, entry := range payload.Logs {
		if entry == nil {
			return errors.New("logs cannot contain nulls")
		}
		if entry.CompletedAt.IsZero() {
			return errors.New("every log needs a completion time")
		}
	}

	return nil
}
