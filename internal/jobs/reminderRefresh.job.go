package jobs

import (
	"context"
	"time"
	"upkeep/internal/logger"
	"upkeep/internal/repositories"
	"upkeep/internal/services"

	"gorm.io/gorm"
)

// ReminderRefreshJob rebuilds every user's scheduled reminders once a day so
// that drift from missed events or clock changes self-heals.
type ReminderRefreshJob struct {
	reminderService    *services.ReminderService
	transactionService *services.TransactionService
	repos              repositories.Repository
	log                logger.Logger
	schedule           services.Schedule
}

func NewReminderRefreshJob(
	reminderService *services.ReminderService,
	transactionService *services.TransactionService,
	repos repositories.Repository,
	schedule services.Schedule,
) *ReminderRefreshJob {
	log := logger.New("reminderRefreshJob")
	log.Info("Creating new reminder refresh job", "schedule", schedule)

	return &ReminderRefreshJob{
		reminderService:    reminderService,
		transactionService: transactionService,
		repos:              repos,
		log:                log,
		schedule:           schedule,
	}
}

func (j *ReminderRefreshJob) Name() string {
	return "ReminderRefresh"
}

func (j *ReminderRefreshJob) Execute(ctx context.Context) error {
	log := j.log.Function("Execute")

	log.Info("Starting reminder refresh")

	now := time.Now()
	failures := 0

	err := j.transactionService.Execute(ctx, func(ctx context.Context, tx *gorm.DB) error {
		users, err := j.repos.User.GetAllActive(ctx, tx)
		if err != nil {
			return err
		}

		for _, user := range users {
			if err := j.reminderService.RescheduleAll(ctx, tx, user.ID, now); err != nil {
				// One bad user must not block the rest of the refresh
				log.Warn("failed to reschedule reminders", "userID", user.ID, "error", err)
				failures++
			}
		}

		return nil
	})
	if err != nil {
		return log.Err("reminder refresh failed", err)
	}

	log.Info("Reminder refresh completed", "failures", failures)
	return nil
}

func (j *ReminderRefreshJob) Schedule() services.Schedule {
	return j.schedule
}
