package statsController

import (
	"context"
	"time"
	"upkeep/internal/database"
	"upkeep/internal/logger"
	. "upkeep/internal/models"
	"upkeep/internal/repositories"
	"upkeep/internal/schedule"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type StatsController struct {
	itemRepo     repositories.ItemRepository
	taskRepo     repositories.TaskRepository
	logRepo      repositories.LogRepository
	settingsRepo repositories.SettingsRepository
	db           database.DB
	log          logger.Logger
}

type StatsResponse struct {
	ItemCount         int                        `json:"itemCount"`
	ActiveTaskCount   int                        `json:"activeTaskCount"`
	OverdueCount      int                        `json:"overdueCount"`
	DueSoonCount      int                        `json:"dueSoonCount"`
	CompletionCount   int                        `json:"completionCount"`
	CompletionsLast30 int                        `json:"completionsLast30"`
	TotalSpend        decimal.Decimal            `json:"totalSpend"`
	SpendByCategory   map[string]decimal.Decimal `json:"spendByCategory"`
}

type StatsControllerInterface interface {
	GetStats(ctx context.Context, user *User) (*StatsResponse, error)
}

func New(repos repositories.Repository, db database.DB) StatsControllerInterface {
	return &StatsController{
		itemRepo:     repos.Item,
		taskRepo:     repos.Task,
		logRepo:      repos.Log,
		settingsRepo: repos.Settings,
		db:           db,
		log:          logger.New("statsController"),
	}
}

func (c *StatsController) GetStats(ctx context.Context, user *User) (*StatsResponse, error) {
	log := c.log.Function("GetStats")

	items, err := c.itemRepo.GetByUser(ctx, c.db.SQL, user.ID)
	if err != nil {
		return nil, log.Err("failed to get items for stats", err, "userID", user.ID)
	}

	tasks, err := c.taskRepo.GetByUser(ctx, c.db.SQL, user.ID)
	if err != nil {
		return nil, log.Err("failed to get tasks for stats", err, "userID", user.ID)
	}

	logs, err := c.logRepo.GetByUser(ctx, c.db.SQL, user.ID, repositories.LogFilter{})
	if err != nil {
		return nil, log.Err("failed to get logs for stats", err, "userID", user.ID)
	}

	window := schedule.DefaultDueSoonWindowDays
	settings, err := c.settingsRepo.GetByUser(ctx, c.db.SQL, user.ID)
	if err == nil {
		window = settings.DueSoonWindowDays
	} else if err != gorm.ErrRecordNotFound {
		return nil, log.Err("failed to get settings for stats", err, "userID", user.ID)
	}

	return buildStats(items, tasks, logs, window, time.Now()), nil
}

// buildStats is pure so the aggregation is testable without a database.
func buildStats(
	items []*Item,
	tasks []*MaintenanceTask,
	logs []*MaintenanceLog,
	windowDays int,
	now time.Time,
) *StatsResponse {
	stats := &StatsResponse{
		ItemCount:       len(items),
		CompletionCount: len(logs),
		TotalSpend:      decimal.Zero,
		SpendByCategory: make(map[string]decimal.Decimal),
	}

	itemCategories := make(map[string]string, len(items))
	for _, item := range items {
		itemCategories[item.ID.String()] = string(item.Category)
	}

	for _, task := range tasks {
		if !task.IsActive {
			continue
		}
		stats.ActiveTaskCount++

		switch schedule.Status(task.NextDue, now, windowDays) {
		case schedule.StatusOverdue:
			stats.OverdueCount++
		case schedule.StatusDueSoon:
			stats.DueSoonCount++
		}
	}

	cutoff := now.AddDate(0, 0, -30)
	for _, entry := range logs {
		if entry.CompletedAt.After(cutoff) {
			stats.CompletionsLast30++
		}

		if entry.Cost == nil {
			continue
		}

		stats.TotalSpend = stats.TotalSpend.Add(*entry.Cost)

		category := itemCategories[entry.ItemID.String()]
		if category == "" {
			// Item was deleted after the work was logged
			category = "other"
		}
		stats.SpendByCategory[category] = stats.SpendByCategory[category].Add(*entry.Cost)
	}

	return stats
}
