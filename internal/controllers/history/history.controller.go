package historyController

import (
	"context"
	"errors"
	"upkeep/internal/database"
	"upkeep/internal/logger"
	. "upkeep/internal/models"
	"upkeep/internal/repositories"

	"github.com/google/uuid"
)

var (
	ErrValidation = errors.New("validation error")
)

type HistoryController struct {
	logRepo repositories.LogRepository
	db      database.DB
	log     logger.Logger
}

type LogQuery struct {
	ItemID string
	TaskID string
}

type HistoryControllerInterface interface {
	GetLogs(ctx context.Context, user *User, query LogQuery) ([]*MaintenanceLog, error)
}

func New(repos repositories.Repository, db database.DB) HistoryControllerInterface {
	return &HistoryController{
		logRepo: repos.Log,
		db:      db,
		log:     logger.New("historyController"),
	}
}

// GetLogs returns the user's completion history, newest first, optionally
// narrowed to one item or one task.
func (c *HistoryController) GetLogs(
	ctx context.Context,
	user *User,
	query LogQuery,
) ([]*MaintenanceLog, error) {
	log := c.log.Function("GetLogs")

	filter := repositories.LogFilter{}

	if query.ItemID != "" {
		itemID, err := uuid.Parse(query.ItemID)
		if err != nil {
			return nil, log.ErrorWithType(ErrValidation, "invalid itemId", "itemId", query.ItemID)
		}
		filter.ItemID = &itemID
	}

	if query.TaskID != "" {
		taskID, err := uuid.Parse(query.TaskID)
		if err != nil {
			return nil, log.ErrorWithType(ErrValidation, "invalid taskId", "taskId", query.TaskID)
		}
		filter.TaskID = &taskID
	}

	entries, err := c.logRepo.GetByUser(ctx, c.db.SQL, user.ID, filter)
	if err != nil {
		return nil, log.Err("failed to get maintenance logs", err, "userID", user.ID)
	}

	return entries, nil
}
