package handlers

import (
	"upkeep/internal/app"
	"upkeep/internal/handlers/middleware"

	logger "github.com/Bparsons0904/goLogger"

	"github.com/gofiber/fiber/v2"
)

type Handler struct {
	middleware middleware.Middleware
	log        logger.Logger
	router     fiber.Router
}

func Router(router fiber.Router, app *app.App) (err error) {
	api := router.Group("/api")

	HealthHandler(api, app.Config)
	NewAuthHandler(*app, api).Register()
	NewItemHandler(*app, api).Register()
	NewTaskHandler(*app, api).Register()
	NewHistoryHandler(*app, api).Register()
	NewSettingsHandler(*app, api).Register()
	NewTransferHandler(*app, api).Register()
	NewStatsHandler(*app, api).Register()
	NewProviderHandler(*app, api).Register()

	return nil
}
