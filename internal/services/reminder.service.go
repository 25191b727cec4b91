package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"
	"upkeep/internal/logger"
	"upkeep/internal/models"
	"upkeep/internal/repositories"
	"upkeep/internal/schedule"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ReminderService owns the scheduled reminder table. Reminders are always
// derived from task state, so every mutation path rebuilds the affected
// user's reminders from scratch rather than patching individual rows.
type ReminderService struct {
	repos repositories.Repository
	log   logger.Logger
}

func NewReminderService(repos repositories.Repository) *ReminderService {
	return &ReminderService{
		repos: repos,
		log:   logger.New("reminderService"),
	}
}

type reminderPayload struct {
	TaskID uuid.UUID `json:"taskId"`
	ItemID uuid.UUID `json:"itemId"`
	DueAt  time.Time `json:"dueAt"`
}

// RescheduleAll rebuilds every reminder for the user from their active tasks.
// It is idempotent: calling it twice with the same state yields the same rows.
// When the user has notifications disabled all reminders are removed.
func (s *ReminderService) RescheduleAll(
	ctx context.Context,
	tx *gorm.DB,
	userID uuid.UUID,
	now time.Time,
) error {
	log := s.log.Function("RescheduleAll")

	if err := s.repos.Reminder.DeleteByUser(ctx, tx, userID); err != nil {
		return err
	}

	settings, err := s.repos.Settings.GetByUser(ctx, tx, userID)
	if err != nil {
		if err != gorm.ErrRecordNotFound {
			return err
		}
		settings = &models.UserSettings{
			UserID:               userID,
			NotificationsEnabled: true,
			DefaultReminderDays:  models.DefaultReminderDays,
			DueSoonWindowDays:    models.DefaultDueSoonWindowDays,
		}
	}

	if !settings.NotificationsEnabled {
		log.Info("Notifications disabled, reminders cleared", "userID", userID)
		return nil
	}

	tasks, err := s.repos.Task.GetActiveByUser(ctx, tx, userID)
	if err != nil {
		return err
	}

	items, err := s.repos.Item.GetByUser(ctx, tx, userID)
	if err != nil {
		return err
	}

	itemNames := make(map[uuid.UUID]string, len(items))
	for _, item := range items {
		itemNames[item.ID] = item.Name
	}

	reminders := make([]*models.ScheduledReminder, 0, len(tasks))
	for _, task := range tasks {
		leadDays := task.ReminderDaysBefore
		if leadDays <= 0 {
			leadDays = settings.DefaultReminderDays
		}

		fireAt := schedule.ReminderFireDate(task.NextDue, leadDays)
		if schedule.ReminderElapsed(fireAt, now) {
			continue
		}

		payload, err := json.Marshal(reminderPayload{
			TaskID: task.ID,
			ItemID: task.ItemID,
			DueAt:  task.NextDue,
		})
		if err != nil {
			return log.Err("failed to marshal reminder payload", err, "taskID", task.ID)
		}

		reminders = append(reminders, &models.ScheduledReminder{
			TaskID:  task.ID,
			ItemID:  task.ItemID,
			UserID:  userID,
			FireAt:  fireAt,
			Title:   fmt.Sprintf("%s Due Soon", task.Name),
			Body:    reminderBody(itemNames[task.ItemID], task.Name, leadDays),
			Payload: payload,
		})
	}

	if err := s.repos.Reminder.CreateBatch(ctx, tx, reminders); err != nil {
		return err
	}

	log.Info(
		"Reminders rescheduled",
		"userID",
		userID,
		"taskCount",
		len(tasks),
		"reminderCount",
		len(reminders),
	)

	return nil
}

// CancelForTask removes pending reminders for a single task, used when a task
// is deleted outside a full reschedule.
func (s *ReminderService) CancelForTask(ctx context.Context, tx *gorm.DB, taskID uuid.UUID) error {
	return s.repos.Reminder.DeleteByTask(ctx, tx, taskID)
}

// CancelForItem removes pending reminders for every task under an item.
func (s *ReminderService) CancelForItem(ctx context.Context, tx *gorm.DB, itemID uuid.UUID) error {
	return s.repos.Reminder.DeleteByItem(ctx, tx, itemID)
}

func reminderBody(itemName, taskName string, daysBefore int) string {
	if daysBefore == 1 {
		return fmt.Sprintf("%s: %s is due in 1 day", itemName, taskName)
	}
	return fmt.Sprintf("%s: %s is due in %d days", itemName, taskName, daysBefore)
}
