package handlers

import (
	"errors"
	"upkeep/internal/app"
	settingsController "upkeep/internal/controllers/settings"
	"upkeep/internal/handlers/middleware"
	"upkeep/internal/services"

	logger "github.com/Bparsons0904/goLogger"

	"github.com/gofiber/fiber/v2"
)

type SettingsHandler struct {
	Handler
	settingsController settingsController.SettingsControllerInterface
	authService        *services.AuthService
}

func NewSettingsHandler(app app.App, router fiber.Router) *SettingsHandler {
	log := logger.New("handlers").File("settings_handler")
	return &SettingsHandler{
		settingsController: app.Controllers.Settings,
		authService:        app.Services.Auth,
		Handler: Handler{
			log:        log,
			router:     router,
			middleware: app.Middleware,
		},
	}
}

func (h *SettingsHandler) Register() {
	settings := h.router.Group("/settings", h.middleware.RequireAuth(h.authService))

	settings.Get("", h.getSettings)
	settings.Put("", h.updateSettings)
}

func (h *SettingsHandler) getSettings(c *fiber.Ctx) error {
	log := logger.New("handlers").TraceFromContext(c.UserContext()).File("settings_handler").Function("getSettings")

	user := middleware.GetUser(c)
	if user == nil {
		log.Warn("Unauthorized access attempt")
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Authentication required",
		})
	}

	settings, err := h.settingsController.GetSettings(c.Context(), user)
	if err != nil {
		_ = log.Err("Failed to retrieve settings", err, "userID", user.ID)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to retrieve settings",
		})
	}

	return c.JSON(fiber.Map{
		"settings": settings,
	})
}

func (h *SettingsHandler) updateSettings(c *fiber.Ctx) error {
	log := logger.New("handlers").TraceFromContext(c.UserContext()).File("settings_handler").Function("updateSettings")

	user := middleware.GetUser(c)
	if user == nil {
		log.Warn("Unauthorized access attempt")
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Authentication required",
		})
	}

	var req settingsController.UpdateSettingsRequest
	if err := c.BodyParser(&req); err != nil {
		log.Warn("Invalid request body", "error", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	settings, err := h.settingsController.UpdateSettings(c.Context(), user, &req)
	if err != nil {
		if errors.Is(err, settingsController.ErrValidation) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		_ = log.Err("Failed to update settings", err, "userID", user.ID)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update settings",
		})
	}

	return c.JSON(fiber.Map{
		"settings": settings,
	})
}
