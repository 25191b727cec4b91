package repositories

import (
	"context"
	"upkeep/internal/logger"
	. "upkeep/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ReminderRepository interface {
	GetByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*ScheduledReminder, error)
	Create(ctx context.Context, tx *gorm.DB, reminder *ScheduledReminder) error
	CreateBatch(ctx context.Context, tx *gorm.DB, reminders []*ScheduledReminder) error
	DeleteByTask(ctx context.Context, tx *gorm.DB, taskID uuid.UUID) error
	DeleteByItem(ctx context.Context, tx *gorm.DB, itemID uuid.UUID) error
	DeleteByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) error
}

type reminderRepository struct{}

func NewReminderRepository() ReminderRepository {
	return &reminderRepository{}
}

func (r *reminderRepository) GetByUser(
	ctx context.Context,
	tx *gorm.DB,
	userID uuid.UUID,
) ([]*ScheduledReminder, error) {
	log := logger.NewWithContext(ctx, "reminderRepository").Function("GetByUser")

	reminders, err := gorm.G[*ScheduledReminder](tx).
		Where(ScheduledReminder{UserID: userID}).
		Order("fire_at ASC").
		Find(ctx)
	if err != nil {
		return nil, log.Err("failed to get scheduled reminders", err, "userID", userID)
	}

	return reminders, nil
}

func (r *reminderRepository) Create(
	ctx context.Context,
	tx *gorm.DB,
	reminder *ScheduledReminder,
) error {
	log := logger.NewWithContext(ctx, "reminderRepository").Function("Create")

	if err := tx.WithContext(ctx).Create(reminder).Error; err != nil {
		return log.Err(
			"failed to create scheduled reminder",
			err,
			"userID",
			reminder.UserID,
			"taskID",
			reminder.TaskID,
		)
	}

	return nil
}

func (r *reminderRepository) CreateBatch(
	ctx context.Context,
	tx *gorm.DB,
	reminders []*ScheduledReminder,
) error {
	log := logger.NewWithContext(ctx, "reminderRepository").Function("CreateBatch")

	if len(reminders) == 0 {
		return nil
	}

	if err := tx.WithContext(ctx).CreateInBatches(reminders, 100).Error; err != nil {
		return log.Err("failed to create scheduled reminders", err, "count", len(reminders))
	}

	return nil
}

func (r *reminderRepository) DeleteByTask(ctx context.Context, tx *gorm.DB, taskID uuid.UUID) error {
	log := logger.NewWithContext(ctx, "reminderRepository").Function("DeleteByTask")

	if err := tx.WithContext(ctx).
		Where("task_id = ?", taskID).
		Delete(&ScheduledReminder{}).Error; err != nil {
		return log.Err("failed to delete task reminders", err, "taskID", taskID)
	}

	return nil
}

func (r *reminderRepository) DeleteByItem(ctx context.Context, tx *gorm.DB, itemID uuid.UUID) error {
	log := logger.NewWithContext(ctx, "reminderRepository").Function("DeleteByItem")

	if err := tx.WithContext(ctx).
		Where("item_id = ?", itemID).
		Delete(&ScheduledReminder{}).Error; err != nil {
		return log.Err("failed to delete item reminders", err, "itemID", itemID)
	}

	return nil
}

func (r *reminderRepository) DeleteByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) error {
	log := logger.NewWithContext(ctx, "reminderRepository").Function("DeleteByUser")

	if err := tx.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&ScheduledReminder{}).Error; err != nil {
		return log.Err("failed to delete user reminders", err, "userID", userID)
	}

	return nil
}
