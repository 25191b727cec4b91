package controllers

import (
	"upkeep/internal/database"
	"upkeep/internal/repositories"
	"upkeep/internal/services"

	authController "upkeep/internal/controllers/auth"
	historyController "upkeep/internal/controllers/history"
	itemController "upkeep/internal/controllers/items"
	providerController "upkeep/internal/controllers/providers"
	settingsController "upkeep/internal/controllers/settings"
	statsController "upkeep/internal/controllers/stats"
	taskController "upkeep/internal/controllers/tasks"
	transferController "upkeep/internal/controllers/transfer"
)

type Controllers struct {
	Auth     authController.AuthControllerInterface
	Item     itemController.ItemControllerInterface
	Task     taskController.TaskControllerInterface
	History  historyController.HistoryControllerInterface
	Settings settingsController.SettingsControllerInterface
	Transfer transferController.TransferControllerInterface
	Stats    statsController.StatsControllerInterface
	Provider providerController.ProviderControllerInterface
}

func New(
	services services.Service,
	repos repositories.Repository,
	db database.DB,
) Controllers {
	return Controllers{
		Auth:     authController.New(repos, services, db),
		Item:     itemController.New(repos, services, db),
		Task:     taskController.New(repos, services, db),
		History:  historyController.New(repos, db),
		Settings: settingsController.New(repos, services, db),
		Transfer: transferController.New(repos, services, db),
		Stats:    statsController.New(repos, db),
		Provider: providerController.New(repos, db),
	}
}
