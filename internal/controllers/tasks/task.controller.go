package taskController

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
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	MaxDeferDays = 365
)

var (
	ErrValidation = errors.New("validation error")
	ErrNotFound   = errors.New("not found")
)

type TaskController struct {
	taskRepo           repositories.TaskRepository
	itemRepo           repositories.ItemRepository
	logRepo            repositories.LogRepository
	settingsRepo       repositories.SettingsRepository
	reminderRepo       repositories.ReminderRepository
	reminderService    *services.ReminderService
	transactionService *services.TransactionService
	db                 database.DB
	log                logger.Logger
}

type CreateTaskRequest struct {
	ItemID             uuid.UUID        `json:"itemId"`
	Name               string           `json:"name"`
	Description        *string          `json:"description,omitempty"`
	IntervalDays       int              `json:"intervalDays"`
	NextDue            *time.Time       `json:"nextDue,omitempty"`
	ReminderDaysBefore int              `json:"reminderDaysBefore"`
	Priority           TaskPriority     `json:"priority"`
	EstimatedCost      *decimal.Decimal `json:"estimatedCost,omitempty"`
	Notes              *string          `json:"notes,omitempty"`
}

type UpdateTaskRequest struct {
	Name               *string          `json:"name,omitempty"`
	Description        *string          `json:"description,omitempty"`
	IntervalDays       *int             `json:"intervalDays,omitempty"`
	NextDue            *time.Time       `json:"nextDue,omitempty"`
	ReminderDaysBefore *int             `json:"reminderDaysBefore,omitempty"`
	Priority           *TaskPriority    `json:"priority,omitempty"`
	EstimatedCost      *decimal.Decimal `json:"estimatedCost,omitempty"`
	Notes              *string          `json:"notes,omitempty"`
	IsActive           *bool            `json:"isActive,omitempty"`
}

type CompleteTaskRequest struct {
	CompletedAt *time.Time       `json:"completedAt,omitempty"`
	Cost        *decimal.Decimal `json:"cost,omitempty"`
	Provider    *string          `json:"provider,omitempty"`
	Notes       *string          `json:"notes,omitempty"`
}

type CompleteTaskResponse struct {
	Task *MaintenanceTask `json:"task"`
	Log  *MaintenanceLog  `json:"log"`
}

type DeferTaskRequest struct {
	Days int `json:"days"`
}

type TaskQuery struct {
	Due    string
	ItemID *uuid.UUID
}

type TaskControllerInterface interface {
	GetTasks(ctx context.Context, user *User, query TaskQuery) ([]*MaintenanceTask, error)
	GetTask(ctx context.Context, user *User, taskID uuid.UUID) (*MaintenanceTask, error)
	CreateTask(ctx context.Context, user *User, request *CreateTaskRequest) (*MaintenanceTask, error)
	UpdateTask(
		ctx context.Context,
		user *User,
		taskID uuid.UUID,
		request *UpdateTaskRequest,
	) (*MaintenanceTask, error)
	CompleteTask(
		ctx context.Context,
		user *User,
		taskID uuid.UUID,
		request *CompleteTaskRequest,
	) (*CompleteTaskResponse, error)
	DeferTask(
		ctx context.Context,
		user *User,
		taskID uuid.UUID,
		request *DeferTaskRequest,
	) (*MaintenanceTask, error)
	DeleteTask(ctx context.Context, user *User, taskID uuid.UUID) error
	GetReminders(ctx context.Context, user *User) ([]*ScheduledReminder, error)
}

func New(
	repos repositories.Repository,
	services services.Service,
	db database.DB,
) TaskControllerInterface {
	return &TaskController{
		taskRepo:           repos.Task,
		itemRepo:           repos.Item,
		logRepo:            repos.Log,
		settingsRepo:       repos.Settings,
		reminderRepo:       repos.Reminder,
		reminderService:    services.Reminder,
		transactionService: services.Transaction,
		db:                 db,
		log:                logger.New("taskController"),
	}
}

// GetTasks returns the user's tasks, optionally narrowed to one item and
// one due status: "overdue", "due_soon" or "upcoming".
func (c *TaskController) GetTasks(
	ctx context.Context,
	user *User,
	query TaskQuery,
) ([]*MaintenanceTask, error) {
	log := c.log.Function("GetTasks")

	tasks, err := c.taskRepo.GetByUser(ctx, c.db.SQL, user.ID)
	if err != nil {
		return nil, log.Err("failed to get tasks", err, "userID", user.ID)
	}

	if query.ItemID != nil {
		scoped := make([]*MaintenanceTask, 0, len(tasks))
		for _, task := range tasks {
			if task.ItemID == *query.ItemID {
				scoped = append(scoped, task)
			}
		}
		tasks = scoped
	}

	if query.Due == "" {
		return tasks, nil
	}

	wanted, ok := parseDueFilter(query.Due)
	if !ok {
		return nil, log.ErrorWithType(ErrValidation, "invalid due filter", "due", query.Due)
	}

	window := c.dueSoonWindow(ctx, user.ID)
	now := time.Now()

	filtered := make([]*MaintenanceTask, 0, len(tasks))
	for _, task := range tasks {
		if !task.IsActive {
			continue
		}
		if schedule.Status(task.NextDue, now, window) == wanted {
			filtered = append(filtered, task)
		}
	}

	return filtered, nil
}

// parseDueFilter resolves the due query value to a status; "soon" is
// accepted as shorthand for "due_soon".
func parseDueFilter(raw string) (schedule.DueStatus, bool) {
	if raw == "soon" {
		return schedule.StatusDueSoon, true
	}

	status := schedule.DueStatus(raw)
	switch status {
	case schedule.StatusOverdue, schedule.StatusDueSoon, schedule.StatusUpcoming:
		return status, true
	}

	return "", false
}

func (c *TaskController) GetTask(
	ctx context.Context,
	user *User,
	taskID uuid.UUID,
) (*MaintenanceTask, error) {
	log := c.log.Function("GetTask")

	task, err := c.taskRepo.GetByID(ctx, c.db.SQL, user.ID, taskID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, log.ErrorWithType(ErrNotFound, "task not found", "taskID", taskID)
		}
		return nil, log.Err("failed to get task", err, "taskID", taskID)
	}

	return task, nil
}

func (c *TaskController) CreateTask(
	ctx context.Context,
	user *User,
	request *CreateTaskRequest,
) (*MaintenanceTask, error) {
	log := c.log.Function("CreateTask")

	if request.ItemID == uuid.Nil {
		return nil, log.ErrorWithType(ErrValidation, "itemId is required")
	}

	name := strings.TrimSpace(request.Name)
	if name == "" {
		return nil, log.ErrorWithType(ErrValidation, "name is required")
	}

	if request.IntervalDays < 0 {
		return nil, log.ErrorWithType(
			ErrValidation,
			"intervalDays cannot be negative",
			"intervalDays",
			request.IntervalDays,
		)
	}

	priority := request.Priority
	if priority == "" {
		priority = TaskPriorityMedium
	}
	if !priority.IsValid() {
		return nil, log.ErrorWithType(ErrValidation, "invalid priority", "priority", priority)
	}

	if _, err := c.itemRepo.GetByID(ctx, c.db.SQL, user.ID, request.ItemID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, log.ErrorWithType(ErrNotFound, "item not found", "itemID", request.ItemID)
		}
		return nil, log.Err("failed to get item", err, "itemID", request.ItemID)
	}

	// A one-time task with no explicit due date is due immediately.
	nextDue := time.Now()
	if request.NextDue != nil {
		nextDue = *request.NextDue
	} else if request.IntervalDays > 0 {
		nextDue = time.Now().AddDate(0, 0, request.IntervalDays)
	}

	reminderDays := request.ReminderDaysBefore
	if reminderDays <= 0 {
		reminderDays = c.defaultReminderDays(ctx, user.ID)
	}

	task := &MaintenanceTask{
		ItemID:             request.ItemID,
		UserID:             user.ID,
		Name:               name,
		Description:        request.Description,
		IntervalDays:       request.IntervalDays,
		NextDue:            nextDue,
		ReminderDaysBefore: reminderDays,
		Priority:           priority,
		EstimatedCost:      request.EstimatedCost,
		Notes:              request.Notes,
		IsActive:           true,
	}

	err := c.transactionService.Execute(ctx, func(ctx context.Context, tx *gorm.DB) error {
		if err := c.taskRepo.Create(ctx, tx, task); err != nil {
			return err
		}

		return c.reminderService.RescheduleAll(ctx, tx, user.ID, time.Now())
	})
	if err != nil {
		return nil, log.Err("failed to create task", err, "userID", user.ID)
	}

	log.Info("Task created successfully", "userID", user.ID, "taskID", task.ID)

	return task, nil
}

func (c *TaskController) UpdateTask(
	ctx context.Context,
	user *User,
	taskID uuid.UUID,
	request *UpdateTaskRequest,
) (*MaintenanceTask, error) {
	log := c.log.Function("UpdateTask")

	task, err := c.taskRepo.GetByID(ctx, c.db.SQL, user.ID, taskID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, log.ErrorWithType(ErrNotFound, "task not found", "taskID", taskID)
		}
		return nil, log.Err("failed to get task", err, "taskID", taskID)
	}

	if request.Name != nil {
		name := strings.TrimSpace(*request.Name)
		if name == "" {
			return nil, log.ErrorWithType(ErrValidation, "name cannot be empty")
		}
		task.Name = name
	}

	if request.IntervalDays != nil {
		if *request.IntervalDays < 0 {
			return nil, log.ErrorWithType(
				ErrValidation,
				"intervalDays cannot be negative",
				"intervalDays",
				*request.IntervalDays,
			)
		}
		task.IntervalDays = *request.IntervalDays
	}

	if request.Priority != nil {
		if !request.Priority.IsValid() {
			return nil, log.ErrorWithType(ErrValidation, "invalid priority", "priority", *request.Priority)
		}
		task.Priority = *request.Priority
	}

	if request.Description != nil {
		task.Description = request.Description
	}
	if request.NextDue != nil {
		task.NextDue = *request.NextDue
	}
	if request.ReminderDaysBefore != nil {
		task.ReminderDaysBefore = *request.ReminderDaysBefore
	}
	if request.EstimatedCost != nil {
		task.EstimatedCost = request.EstimatedCost
	}
	if request.Notes != nil {
		task.Notes = request.Notes
	}
	if request.IsActive != nil {
		task.IsActive = *request.IsActive
	}

	err = c.transactionService.Execute(ctx, func(ctx context.Context, tx *gorm.DB) error {
		if err := c.taskRepo.Save(ctx, tx, task); err != nil {
			return err
		}

		return c.reminderService.RescheduleAll(ctx, tx, user.ID, time.Now())
	})
	if err != nil {
		return nil, log.Err("failed to update task", err, "taskID", taskID)
	}

	log.Info("Task updated successfully", "userID", user.ID, "taskID", taskID)

	return task, nil
}

// CompleteTask records a completion, rolls the due date forward, and rebuilds
// reminders. One-time tasks are deactivated instead of rescheduled.
func (c *TaskController) CompleteTask(
	ctx context.Context,
	user *User,
	taskID uuid.UUID,
	request *CompleteTaskRequest,
) (*CompleteTaskResponse, error) {
	log := c.log.Function("CompleteTask")

	now := time.Now()
	completedAt := now
	if request.CompletedAt != nil {
		completedAt = *request.CompletedAt
	}

	if completedAt.After(now) {
		return nil, log.ErrorWithType(ErrValidation, "completedAt cannot be in the future")
	}

	if request.Cost != nil && request.Cost.IsNegative() {
		return nil, log.ErrorWithType(ErrValidation, "cost cannot be negative")
	}

	var task *MaintenanceTask
	var entry *MaintenanceLog

	err := c.transactionService.Execute(ctx, func(ctx context.Context, tx *gorm.DB) error {
		var err error
		task, err = c.taskRepo.GetByID(ctx, tx, user.ID, taskID)
		if err != nil {
			return err
		}

		item, err := c.itemRepo.GetByID(ctx, tx, user.ID, task.ItemID)
		if err != nil {
			return err
		}

		// Name snapshots keep history readable after item or task deletion.
		entry = &MaintenanceLog{
			TaskID:      task.ID,
			ItemID:      item.ID,
			UserID:      user.ID,
			ItemName:    item.Name,
			TaskName:    task.Name,
			CompletedAt: completedAt,
			Cost:        request.Cost,
			Provider:    request.Provider,
			Notes:       request.Notes,
		}

		if err := c.logRepo.Create(ctx, tx, entry); err != nil {
			return err
		}

		nextDue, err := schedule.NextDue(task.IntervalDays, completedAt, task.NextDue)
		if err != nil {
			return err
		}

		task.LastCompleted = &completedAt
		task.NextDue = nextDue
		if task.IntervalDays == 0 {
			task.IsActive = false
		}

		if err := c.taskRepo.Save(ctx, tx, task); err != nil {
			return err
		}

		return c.reminderService.RescheduleAll(ctx, tx, user.ID, now)
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, log.ErrorWithType(ErrNotFound, "task not found", "taskID", taskID)
		}
		return nil, log.Err("failed to complete task", err, "taskID", taskID, "userID", user.ID)
	}

	log.Info(
		"Task completed",
		"userID",
		user.ID,
		"taskID",
		taskID,
		"nextDue",
		task.NextDue,
		"active",
		task.IsActive,
	)

	return &CompleteTaskResponse{Task: task, Log: entry}, nil
}

// DeferTask pushes the due date N days out from today without logging a
// completion.
func (c *TaskController) DeferTask(
	ctx context.Context,
	user *User,
	taskID uuid.UUID,
	request *DeferTaskRequest,
) (*MaintenanceTask, error) {
	log := c.log.Function("DeferTask")

	if request.Days <= 0 || request.Days > MaxDeferDays {
		return nil, log.ErrorWithType(
			ErrValidation,
			"days must be between 1 and 365",
			"days",
			request.Days,
		)
	}

	var task *MaintenanceTask
	now := time.Now()

	err := c.transactionService.Execute(ctx, func(ctx context.Context, tx *gorm.DB) error {
		var err error
		task, err = c.taskRepo.GetByID(ctx, tx, user.ID, taskID)
		if err != nil {
			return err
		}

		task.NextDue = now.AddDate(0, 0, request.Days)

		if err := c.taskRepo.Save(ctx, tx, task); err != nil {
			return err
		}

		return c.reminderService.RescheduleAll(ctx, tx, user.ID, now)
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, log.ErrorWithType(ErrNotFound, "task not found", "taskID", taskID)
		}
		return nil, log.Err("failed to defer task", err, "taskID", taskID)
	}

	log.Info("Task deferred", "userID", user.ID, "taskID", taskID, "days", request.Days)

	return task, nil
}

func (c *TaskController) DeleteTask(ctx context.Context, user *User, taskID uuid.UUID) error {
	log := c.log.Function("DeleteTask")

	err := c.transactionService.Execute(ctx, func(ctx context.Context, tx *gorm.DB) error {
		if err := c.reminderService.CancelForTask(ctx, tx, taskID); err != nil {
			return err
		}

		return c.taskRepo.Delete(ctx, tx, user.ID, taskID)
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return log.ErrorWithType(ErrNotFound, "task not found", "taskID", taskID)
		}
		return log.Err("failed to delete task", err, "taskID", taskID, "userID", user.ID)
	}

	log.Info("Task deleted successfully", "userID", user.ID, "taskID", taskID)

	return nil
}

func (c *TaskController) GetReminders(
	ctx context.Context,
	user *User,
) ([]*ScheduledReminder, error) {
	log := c.log.Function("GetReminders")

	reminders, err := c.reminderRepo.GetByUser(ctx, c.db.SQL, user.ID)
	if err != nil {
		return nil, log.Err("failed to get reminders", err, "userID", user.ID)
	}

	return reminders, nil
}

func (c *TaskController) dueSoonWindow(ctx context.Context, userID uuid.UUID) int {
	settings, err := c.settingsRepo.GetByUser(ctx, c.db.SQL, userID)
	if err != nil {
		return schedule.DefaultDueSoonWindowDays
	}
	return settings.DueSoonWindowDays
}

func (c *TaskController) defaultReminderDays(ctx context.Context, userID uuid.UUID) int {
	settings, err := c.settingsRepo.GetByUser(ctx, c.db.SQL, userID)
	if err != nil {
		return DefaultReminderDays
	}
	return settings.DefaultReminderDays
}
