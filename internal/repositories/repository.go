package repositories

import (
	"upkeep/internal/database"
)

type Repository struct {
	User     UserRepository
	Item     ItemRepository
	Task     TaskRepository
	Log      LogRepository
	Settings SettingsRepository
	Reminder ReminderRepository
	Provider ProviderRepository
}

func New(db database.DB) Repository {
	return Repository{
		User:     NewUserRepository(db),
		Item:     NewItemRepository(db.Cache.User),
		Task:     NewTaskRepository(db.Cache.User),
		Log:      NewLogRepository(),
		Settings: NewSettingsRepository(),
		Reminder: NewReminderRepository(),
		Provider: NewProviderRepository(),
	}
}
