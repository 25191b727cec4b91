package handlers

import (
	"errors"
	"upkeep/internal/app"
	historyController "upkeep/internal/controllers/history"
	"upkeep/internal/handlers/middleware"
	"upkeep/internal/services"

	logger "github.com/Bparsons0904/goLogger"

	"github.com/gofiber/fiber/v2"
)

type HistoryHandler struct {
	Handler
	historyController historyController.HistoryControllerInterface
	authService       *services.AuthService
}

func NewHistoryHandler(app app.App, router fiber.Router) *HistoryHandler {
	log := logger.New("handlers").File("history_handler")
	return &HistoryHandler{
		historyController: app.Controllers.History,
		authService:       app.Services.Auth,
		Handler: Handler{
			log:        log,
			router:     router,
			middleware: app.Middleware,
		},
	}
}

func (h *HistoryHandler) Register() {
	logs := h.router.Group("/logs", h.middleware.RequireAuth(h.authService))

	logs.Get("", h.getLogs)
}

func (h *HistoryHandler) getLogs(c *fiber.Ctx) error {
	log := logger.New("handlers").TraceFromContext(c.UserContext()).File("history_handler").Function("getLogs")

	user := middleware.GetUser(c)
	if user == nil {
		log.Warn("Unauthorized access attempt")
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Authentication required",
		})
	}

	query := historyController.LogQuery{
		ItemID: c.Query("itemId"),
		TaskID: c.Query("taskId"),
	}

	entries, err := h.historyController.GetLogs(c.Context(), user, query)
	if err != nil {
		if errors.Is(err, historyController.ErrValidation) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		_ = log.Err("Failed to retrieve logs", err, "userID", user.ID)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to retrieve logs",
		})
	}

	return c.JSON(fiber.Map{
		"logs": entries,
	})
}
