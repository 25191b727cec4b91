package repositories

import (
	"context"
	"time"
	"upkeep/internal/database"
	"upkeep/internal/logger"
	. "upkeep/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	USER_TASKS_CACHE_PREFIX = "user_tasks"
	USER_TASKS_CACHE_EXPIRY = 24 * time.Hour
)

type TaskRepository interface {
	GetByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*MaintenanceTask, error)
	GetActiveByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*MaintenanceTask, error)
	GetByItem(ctx context.Context, tx *gorm.DB, userID, itemID uuid.UUID) ([]*MaintenanceTask, error)
	GetByID(ctx context.Context, tx *gorm.DB, userID, taskID uuid.UUID) (*MaintenanceTask, error)
	Create(ctx context.Context, tx *gorm.DB, task *MaintenanceTask) error
	Save(ctx context.Context, tx *gorm.DB, task *MaintenanceTask) error
	Update(
		ctx context.Context,
		tx *gorm.DB,
		userID, taskID uuid.UUID,
		updated *MaintenanceTask,
	) error
	Delete(ctx context.Context, tx *gorm.DB, userID, taskID uuid.UUID) error
	DeleteByItem(ctx context.Context, tx *gorm.DB, userID, itemID uuid.UUID) error
	DeleteByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) error
	ClearUserTaskCache(ctx context.Context, userID uuid.UUID)
}

type taskRepository struct {
	cache database.CacheClient
}

func NewTaskRepository(cache database.CacheClient) TaskRepository {
	return &taskRepository{
		cache: cache,
	}
}

func (r *taskRepository) GetByUser(
	ctx context.Context,
	tx *gorm.DB,
	userID uuid.UUID,
) ([]*MaintenanceTask, error) {
	log := logger.NewWithContext(ctx, "taskRepository").Function("GetByUser")

	var cached []*MaintenanceTask
	found, err := database.NewCacheBuilder(r.cache, userID.String()).
		WithContext(ctx).
		WithHash(USER_TASKS_CACHE_PREFIX).
		Get(&cached)
	if err != nil {
		log.Warn("failed to get user tasks from cache", "userID", userID, "error", err)
	}

	if found {
		return cached, nil
	}

	tasks, err := gorm.G[*MaintenanceTask](tx).
		Where(MaintenanceTask{UserID: userID}).
		Order("next_due ASC").
		Find(ctx)
	if err != nil {
		return nil, log.Err("failed to get user tasks", err, "userID", userID)
	}

	err = database.NewCacheBuilder(r.cache, userID.String()).
		WithContext(ctx).
		WithHash(USER_TASKS_CACHE_PREFIX).
		WithStruct(tasks).
		WithTTL(USER_TASKS_CACHE_EXPIRY).
		Set()
	if err != nil {
		log.Warn("failed to set user tasks in cache", "userID", userID, "error", err)
	}

	return tasks, nil
}

func (r *taskRepository) GetActiveByUser(
	ctx context.Context,
	tx *gorm.DB,
	userID uuid.UUID,
) ([]*MaintenanceTask, error) {
	log := logger.NewWithContext(ctx, "taskRepository").Function("GetActiveByUser")

	tasks, err := gorm.G[*MaintenanceTask](tx).
		Where("user_id = ? AND is_active = ?", userID, true).
		Order("next_due ASC").
		Find(ctx)
	if err != nil {
		return nil, log.Err("failed to get active user tasks", err, "userID", userID)
	}

	return tasks, nil
}

func (r *taskRepository) GetByItem(
	ctx context.Context,
	tx *gorm.DB,
	userID, itemID uuid.UUID,
) ([]*MaintenanceTask, error) {
	log := logger.NewWithContext(ctx, "taskRepository").Function("GetByItem")

	tasks, err := gorm.G[*MaintenanceTask](tx).
		Where("user_id = ? AND item_id = ?", userID, itemID).
		Order("next_due ASC").
		Find(ctx)
	if err != nil {
		return nil, log.Err("failed to get item tasks", err, "itemID", itemID, "userID", userID)
	}

	return tasks, nil
}

func (r *taskRepository) GetByID(
	ctx context.Context,
	tx *gorm.DB,
	userID, taskID uuid.UUID,
) (*MaintenanceTask, error) {
	log := logger.NewWithContext(ctx, "taskRepository").Function("GetByID")

	var task MaintenanceTask
	if err := tx.WithContext(ctx).
		Where("id = ? AND user_id = ?", taskID, userID).
		First(&task).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, gorm.ErrRecordNotFound
		}
		return nil, log.Err("failed to get task", err, "taskID", taskID, "userID", userID)
	}

	return &task, nil
}

func (r *taskRepository) Create(ctx context.Context, tx *gorm.DB, task *MaintenanceTask) error {
	log := logger.NewWithContext(ctx, "taskRepository").Function("Create")

	if err := tx.WithContext(ctx).Create(task).Error; err != nil {
		return log.Err("failed to create task", err, "userID", task.UserID, "name", task.Name)
	}

	r.ClearUserTaskCache(ctx, task.UserID)

	return nil
}

// Save persists the full task row, used after due-date recalculation where
// zero-valued fields like IsActive=false must be written.
func (r *taskRepository) Save(ctx context.Context, tx *gorm.DB, task *MaintenanceTask) error {
	log := logger.NewWithContext(ctx, "taskRepository").Function("Save")

	if err := tx.WithContext(ctx).Save(task).Error; err != nil {
		return log.Err("failed to save task", err, "taskID", task.ID, "userID", task.UserID)
	}

	r.ClearUserTaskCache(ctx, task.UserID)

	return nil
}

func (r *taskRepository) Update(
	ctx context.Context,
	tx *gorm.DB,
	userID, taskID uuid.UUID,
	updated *MaintenanceTask,
) error {
	log := logger.NewWithContext(ctx, "taskRepository").Function("Update")

	result := tx.WithContext(ctx).
		Model(&MaintenanceTask{}).
		Where("id = ? AND user_id = ?", taskID, userID).
		Updates(updated)
	if result.Error != nil {
		return log.Err("failed to update task", result.Error, "taskID", taskID, "userID", userID)
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.ClearUserTaskCache(ctx, userID)

	return nil
}

func (r *taskRepository) Delete(
	ctx context.Context,
	tx *gorm.DB,
	userID, taskID uuid.UUID,
) error {
	log := logger.NewWithContext(ctx, "taskRepository").Function("Delete")

	result := tx.WithContext(ctx).
		Where("id = ? AND user_id = ?", taskID, userID).
		Delete(&MaintenanceTask{})
	if result.Error != nil {
		return log.Err("failed to delete task", result.Error, "taskID", taskID, "userID", userID)
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.ClearUserTaskCache(ctx, userID)

	return nil
}

func (r *taskRepository) DeleteByItem(
	ctx context.Context,
	tx *gorm.DB,
	userID, itemID uuid.UUID,
) error {
	log := logger.NewWithContext(ctx, "taskRepository").Function("DeleteByItem")

	if err := tx.WithContext(ctx).
		Where("user_id = ? AND item_id = ?", userID, itemID).
		Delete(&MaintenanceTask{}).Error; err != nil {
		return log.Err("failed to delete item tasks", err, "itemID", itemID, "userID", userID)
	}

	r.ClearUserTaskCache(ctx, userID)

	return nil
}

func (r *taskRepository) DeleteByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) error {
	log := logger.NewWithContext(ctx, "taskRepository").Function("DeleteByUser")

	if err := tx.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&MaintenanceTask{}).Error; err != nil {
		return log.Err("failed to delete user tasks", err, "userID", userID)
	}

	r.ClearUserTaskCache(ctx, userID)

	return nil
}

func (r *taskRepository) ClearUserTaskCache(ctx context.Context, userID uuid.UUID) {
	log := logger.NewWithContext(ctx, "taskRepository").Function("ClearUserTaskCache")

	err := database.NewCacheBuilder(r.cache, userID.String()).
		WithContext(ctx).
		WithHash(USER_TASKS_CACHE_PREFIX).
		Delete()
	if err != nil {
		log.Warn("failed to clear user task cache", "userID", userID, "error", err)
	}
}
