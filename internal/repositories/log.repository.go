package repositories

import (
	"context"
	"upkeep/internal/logger"
	. "upkeep/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LogFilter narrows history queries. Nil fields match everything.
type LogFilter struct {
	ItemID *uuid.UUID
	TaskID *uuid.UUID
}

type LogRepository interface {
	GetByUser(
		ctx context.Context,
		tx *gorm.DB,
		userID uuid.UUID,
		filter LogFilter,
	) ([]*MaintenanceLog, error)
	Create(ctx context.Context, tx *gorm.DB, entry *MaintenanceLog) error
	CreateBatch(ctx context.Context, tx *gorm.DB, entries []*MaintenanceLog) error
	DeleteByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) error
}

type logRepository struct{}

func NewLogRepository() LogRepository {
	return &logRepository{}
}

func (r *logRepository) GetByUser(
	ctx context.Context,
	tx *gorm.DB,
	userID uuid.UUID,
	filter LogFilter,
) ([]*MaintenanceLog, error) {
	log := logger.NewWithContext(ctx, "logRepository").Function("GetByUser")

	query := tx.WithContext(ctx).Where("user_id = ?", userID)

	if filter.ItemID != nil {
		query = query.Where("item_id = ?", *filter.ItemID)
	}

	if filter.TaskID != nil {
		query = query.Where("task_id = ?", *filter.TaskID)
	}

	var entries []*MaintenanceLog
	if err := query.
		Order("completed_at DESC").
		Find(&entries).Error; err != nil {
		return nil, log.Err("failed to get maintenance logs", err, "userID", userID)
	}

	return entries, nil
}

func (r *logRepository) Create(ctx context.Context, tx *gorm.DB, entry *MaintenanceLog) error {
	log := logger.NewWithContext(ctx, "logRepository").Function("Create")

	if err := tx.WithContext(ctx).Create(entry).Error; err != nil {
		return log.Err(
			"failed to create maintenance log",
			err,
			"userID",
			entry.UserID,
			"taskID",
			entry.TaskID,
		)
	}

	return nil
}

func (r *logRepository) CreateBatch(
	ctx context.Context,
	tx *gorm.DB,
	entries []*MaintenanceLog,
) error {
	log := logger.NewWithContext(ctx, "logRepository").Function("CreateBatch")

	if len(entries) == 0 {
		return nil
	}

	if err := tx.WithContext(ctx).CreateInBatches(entries, 100).Error; err != nil {
		return log.Err("failed to create maintenance logs", err, "count", len(entries))
	}

	return nil
}

func (r *logRepository) DeleteByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) error {
	log := logger.NewWithContext(ctx, "logRepository").Function("DeleteByUser")

	if err := tx.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&MaintenanceLog{}).Error; err != nil {
		return log.Err("failed to delete user maintenance logs", err, "userID", userID)
	}

	return nil
}
