package services

import (
	"upkeep/config"
	"upkeep/internal/database"
	"upkeep/internal/repositories"
)

type Service struct {
	Auth        *AuthService
	Transaction *TransactionService
	Scheduler   *SchedulerService
	Reminder    *ReminderService
}

func New(db database.DB, config config.Config, repos repositories.Repository) (Service, error) {
	transactionService := NewTransactionService(db)
	authService := NewAuthService(config)
	schedulerService := NewSchedulerService()
	reminderService := NewReminderService(repos)

	return Service{
		Auth:        authService,
		Transaction: transactionService,
		Scheduler:   schedulerService,
		Reminder:    reminderService,
	}, nil
}
