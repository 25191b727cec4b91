package itemController

import (
	"context"
	"errors"
	"strings"
	"time"
	"upkeep/internal/database"
	"upkeep/internal/logger"
	. "upkeep/internal/models"
	"upkeep/internal/repositories"
	"upkeep/internal/schedule"
	"upkeep/internal/services"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrValidation = errors.New("validation error")
	ErrNotFound   = errors.New("not found")
)

type ItemController struct {
	itemRepo           repositories.ItemRepository
	taskRepo           repositories.TaskRepository
	settingsRepo       repositories.SettingsRepository
	reminderService    *services.ReminderService
	transactionService *services.TransactionService
	db                 database.DB
	log                logger.Logger
}

type CreateItemRequest struct {
	Name           string       `json:"name"`
	Category       ItemCategory `json:"category"`
	Subtype        *string      `json:"subtype,omitempty"`
	Brand          *string      `json:"brand,omitempty"`
	Model          *string      `json:"model,omitempty"`
	Location       *string      `json:"location,omitempty"`
	PurchaseDate   *time.Time   `json:"purchaseDate,omitempty"`
	WarrantyExpiry *time.Time   `json:"warrantyExpiry,omitempty"`
	Notes          *string      `json:"notes,omitempty"`
}

type UpdateItemRequest struct {
	Name           *string       `json:"name,omitempty"`
	Category       *ItemCategory `json:"category,omitempty"`
	Subtype        *string       `json:"subtype,omitempty"`
	Brand          *string       `json:"brand,omitempty"`
	Model          *string       `json:"model,omitempty"`
	Location       *string       `json:"location,omitempty"`
	PurchaseDate   *time.Time    `json:"purchaseDate,omitempty"`
	WarrantyExpiry *time.Time    `json:"warrantyExpiry,omitempty"`
	Notes          *string       `json:"notes,omitempty"`
}

type QuickAddResponse struct {
	Item  *Item              `json:"item"`
	Tasks []*MaintenanceTask `json:"tasks"`
}

type ItemControllerInterface interface {
	GetItems(ctx context.Context, user *User) ([]*Item, error)
	GetItem(ctx context.Context, user *User, itemID uuid.UUID) (*Item, error)
	CreateItem(ctx context.Context, user *User, request *CreateItemRequest) (*Item, error)
	UpdateItem(
		ctx context.Context,
		user *User,
		itemID uuid.UUID,
		request *UpdateItemRequest,
	) (*Item, error)
	DeleteItem(ctx context.Context, user *User, itemID uuid.UUID) error
	QuickAdd(ctx context.Context, user *User, itemID uuid.UUID) (*QuickAddResponse, error)
}

func New(
	repos repositories.Repository,
	services services.Service,
	db database.DB,
) ItemControllerInterface {
	return &ItemController{
		itemRepo:           repos.Item,
		taskRepo:           repos.Task,
		settingsRepo:       repos.Settings,
		reminderService:    services.Reminder,
		transactionService: services.Transaction,
		db:                 db,
		log:                logger.New("itemController"),
	}
}

func (c *ItemController) GetItems(ctx context.Context, user *User) ([]*Item, error) {
	log := c.log.Function("GetItems")

	items, err := c.itemRepo.GetByUser(ctx, c.db.SQL, user.ID)
	if err != nil {
		return nil, log.Err("failed to get items", err, "userID", user.ID)
	}

	return items, nil
}

func (c *ItemController) GetItem(
	ctx context.Context,
	user *User,
	itemID uuid.UUID,
) (*Item, error) {
	log := c.log.Function("GetItem")

	item, err := c.itemRepo.GetByID(ctx, c.db.SQL, user.ID, itemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, log.ErrorWithType(ErrNotFound, "item not found", "itemID", itemID)
		}
		return nil, log.Err("failed to get item", err, "itemID", itemID, "userID", user.ID)
	}

	return item, nil
}

func (c *ItemController) CreateItem(
	ctx context.Context,
	user *User,
	request *CreateItemRequest,
) (*Item, error) {
	log := c.log.Function("CreateItem")

	name := strings.TrimSpace(request.Name)
	if name == "" {
		return nil, log.ErrorWithType(ErrValidation, "name is required")
	}

	if !request.Category.IsValid() {
		return nil, log.ErrorWithType(ErrValidation, "invalid category", "category", request.Category)
	}

	item := &Item{
		UserID:         user.ID,
		Name:           name,
		Category:       request.Category,
		Subtype:        request.Subtype,
		Brand:          request.Brand,
		Model:          request.Model,
		Location:       request.Location,
		PurchaseDate:   request.PurchaseDate,
		WarrantyExpiry: request.WarrantyExpiry,
		Notes:          request.Notes,
	}

	if err := c.itemRepo.Create(ctx, c.db.SQL, item); err != nil {
		return nil, log.Err("failed to create item", err, "userID", user.ID)
	}

	log.Info("Item created successfully", "userID", user.ID, "itemID", item.ID)

	return item, nil
}

func (c *ItemController) UpdateItem(
	ctx context.Context,
	user *User,
	itemID uuid.UUID,
	request *UpdateItemRequest,
) (*Item, error) {
	log := c.log.Function("UpdateItem")

	item, err := c.itemRepo.GetByID(ctx, c.db.SQL, user.ID, itemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, log.ErrorWithType(ErrNotFound, "item not found", "itemID", itemID)
		}
		return nil, log.Err("failed to get item", err, "itemID", itemID)
	}

	if request.Name != nil {
		name := strings.TrimSpace(*request.Name)
		if name == "" {
			return nil, log.ErrorWithType(ErrValidation, "name cannot be empty")
		}
		item.Name = name
	}

	if request.Category != nil {
		if !request.Category.IsValid() {
			return nil, log.ErrorWithType(
				ErrValidation,
				"invalid category",
				"category",
				*request.Category,
			)
		}
		item.Category = *request.Category
	}

	if request.Subtype != nil {
		item.Subtype = request.Subtype
	}
	if request.Brand != nil {
		item.Brand = request.Brand
	}
	if request.Model != nil {
		item.Model = request.Model
	}
	if request.Location != nil {
		item.Location = request.Location
	}
	if request.PurchaseDate != nil {
		item.PurchaseDate = request.PurchaseDate
	}
	if request.WarrantyExpiry != nil {
		item.WarrantyExpiry = request.WarrantyExpiry
	}
	if request.Notes != nil {
		item.Notes = request.Notes
	}

	if err := c.itemRepo.Update(ctx, c.db.SQL, user.ID, itemID, item); err != nil {
		return nil, log.Err("failed to update item", err, "itemID", itemID)
	}

	log.Info("Item updated successfully", "userID", user.ID, "itemID", itemID)

	return item, nil
}

// DeleteItem removes the item along with its tasks and pending reminders.
// Completion history is kept, it carries its own name snapshots.
func (c *ItemController) DeleteItem(ctx context.Context, user *User, itemID uuid.UUID) error {
	log := c.log.Function("DeleteItem")

	err := c.transactionService.Execute(ctx, func(ctx context.Context, tx *gorm.DB) error {
		if err := c.reminderService.CancelForItem(ctx, tx, itemID); err != nil {
			return err
		}

		if err := c.taskRepo.DeleteByItem(ctx, tx, user.ID, itemID); err != nil {
			return err
		}

		return c.itemRepo.Delete(ctx, tx, user.ID, itemID)
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return log.ErrorWithType(ErrNotFound, "item not found", "itemID", itemID)
		}
		return log.Err("failed to delete item", err, "itemID", itemID, "userID", user.ID)
	}

	log.Info("Item deleted successfully", "userID", user.ID, "itemID", itemID)

	return nil
}

// QuickAdd seeds an item with the starter task set for its category.
func (c *ItemController) QuickAdd(
	ctx context.Context,
	user *User,
	itemID uuid.UUID,
) (*QuickAddResponse, error) {
	log := c.log.Function("QuickAdd")

	item, err := c.itemRepo.GetByID(ctx, c.db.SQL, user.ID, itemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, log.ErrorWithType(ErrNotFound, "item not found", "itemID", itemID)
		}
		return nil, log.Err("failed to get item", err, "itemID", itemID)
	}

	drafts := schedule.ExpandTemplates(item.Category, c.reminderDays(ctx, user.ID), time.Now())
	if len(drafts) == 0 {
		return nil, log.ErrorWithType(
			ErrValidation,
			"no starter tasks for category",
			"category",
			item.Category,
		)
	}

	tasks := make([]*MaintenanceTask, 0, len(drafts))
	err = c.transactionService.Execute(ctx, func(ctx context.Context, tx *gorm.DB) error {
		for _, draft := range drafts {
			description := draft.Description
			task := &MaintenanceTask{
				ItemID:             item.ID,
				UserID:             user.ID,
				Name:               draft.Name,
				Description:        &description,
				IntervalDays:       draft.IntervalDays,
				NextDue:            draft.NextDue,
				ReminderDaysBefore: draft.ReminderDaysBefore,
				Priority:           draft.Priority,
				IsActive:           true,
			}

			if err := c.taskRepo.Create(ctx, tx, task); err != nil {
				return err
			}

			tasks = append(tasks, task)
		}

		return c.reminderService.RescheduleAll(ctx, tx, user.ID, time.Now())
	})
	if err != nil {
		return nil, log.Err("failed to quick add tasks", err, "itemID", itemID, "userID", user.ID)
	}

	log.Info(
		"Starter tasks created",
		"userID",
		user.ID,
		"itemID",
		itemID,
		"taskCount",
		len(tasks),
	)

	return &QuickAddResponse{Item: item, Tasks: tasks}, nil
}

func (c *ItemController) reminderDays(ctx context.Context, userID uuid.UUID) int {
	settings, err := c.settingsRepo.GetByUser(ctx, c.db.SQL, userID)
	if err != nil {
		return DefaultReminderDays
	}
	return settings.DefaultReminderDays
}
