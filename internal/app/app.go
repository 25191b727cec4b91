package app

import (
	"context"
	"upkeep/config"
	"upkeep/internal/controllers"
	"upkeep/internal/database"
	"upkeep/internal/handlers/middleware"
	"upkeep/internal/jobs"
	"upkeep/internal/logger"
	"upkeep/internal/repositories"
	"upkeep/internal/services"
)

type App struct {
	Database    database.DB
	Middleware  middleware.Middleware
	Config      config.Config
	Services    services.Service
	Repos       repositories.Repository
	Controllers controllers.Controllers
}

func New() (*App, error) {
	log := logger.New("app").Function("New")

	config, err := config.New()
	if err != nil {
		return &App{}, log.Err("failed to initialize config", err)
	}

	db, err := database.New(config)
	if err != nil {
		return &App{}, log.Err("failed to create database", err)
	}

	repos := repositories.New(db)

	appServices, err := services.New(db, config, repos)
	if err != nil {
		return &App{}, log.Err("failed to create services", err)
	}

	appMiddleware := middleware.New(db, config, repos)
	appControllers := controllers.New(appServices, repos, db)

	// Register jobs with scheduler if enabled
	if config.SchedulerEnabled {
		reminderRefreshJob := jobs.NewReminderRefreshJob(
			appServices.Reminder,
			appServices.Transaction,
			repos,
			services.DailyReminders,
		)
		if err := appServices.Scheduler.AddJob(reminderRefreshJob); err != nil {
			return &App{}, log.Err("failed to register reminder refresh job", err)
		}
		log.Info("Registered reminder refresh job with scheduler")
	}

	app := &App{
		Database:    db,
		Config:      config,
		Middleware:  appMiddleware,
		Services:    appServices,
		Repos:       repos,
		Controllers: appControllers,
	}

	if err := app.validate(); err != nil {
		return &App{}, log.Err("failed to validate app", err)
	}

	return app, nil
}

func (a *App) validate() error {
	log := logger.New("app").Function("validate")
	if a.Database.SQL == nil {
		return log.ErrMsg("database is nil")
	}

	if a.Config == (config.Config{}) {
		return log.ErrMsg("config is nil")
	}

	nilChecks := []any{
		a.Services.Auth,
		a.Services.Transaction,
		a.Services.Scheduler,
		a.Services.Reminder,
		a.Controllers.Auth,
		a.Controllers.Item,
		a.Controllers.Task,
		a.Controllers.History,
		a.Controllers.Settings,
		a.Controllers.Transfer,
		a.Controllers.Stats,
		a.Controllers.Provider,
		a.Repos.User,
		a.Repos.Item,
		a.Repos.Task,
		a.Repos.Log,
		a.Repos.Settings,
		a.Repos.Reminder,
		a.Repos.Provider,
	}

	for _, check := range nilChecks {
		if check == nil {
			return log.ErrMsg("nil check failed")
		}
	}

	return nil
}

func (a *App) StartScheduler(ctx context.Context) error {
	return a.Services.Scheduler.Start(ctx)
}

func (a *App) Close() (err error) {
	if a.Services.Scheduler != nil {
		if closeErr := a.Services.Scheduler.Stop(context.Background()); closeErr != nil {
			err = closeErr
		}
	}

	if dbErr := a.Database.Close(); dbErr != nil {
		err = dbErr
	}

	return err
}
