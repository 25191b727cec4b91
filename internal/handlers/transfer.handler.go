package handlers

import (
	"errors"
	"upkeep/internal/app"
	transferController "upkeep/internal/controllers/transfer"
	"upkeep/internal/handlers/middleware"
	"upkeep/internal/services"

	logger "github.com/Bparsons0904/goLogger"

	"github.com/gofiber/fiber/v2"
)

type TransferHandler struct {
	Handler
	transferController transferController.TransferControllerInterface
	authService        *services.AuthService
}

func NewTransferHandler(app app.App, router fiber.Router) *TransferHandler {
	log := logger.New("handlers").File("transfer_handler")
	return &TransferHandler{
		transferController: app.Controllers.Transfer,
		authService:        app.Services.Auth,
		Handler: Handler{
			log:        log,
			router:     router,
			middleware: app.Middleware,
		},
	}
}

func (h *TransferHandler) Register() {
	protected := h.router.Group("", h.middleware.RequireAuth(h.authService))

	protected.Get("/export", h.exportData)
	protected.Post("/import", h.importData)
}

func (h *TransferHandler) exportData(c *fiber.Ctx) error {
	log := logger.New("handlers").TraceFromContext(c.UserContext()).File("transfer_handler").Function("exportData")

	user := middleware.GetUser(c)
	if user == nil {
		log.Warn("Unauthorized access attempt")
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Authentication required",
		})
	}

	payload, err := h.transferController.Export(c.Context(), user)
	if err != nil {
		_ = log.Err("Failed to export data", err, "userID", user.ID)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to export data",
		})
	}

	return c.JSON(payload)
}

func (h *TransferHandler) importData(c *fiber.Ctx) error {
	log := logger.New("handlers").TraceFromContext(c.UserContext()).File("transfer_handler").Function("importData")

	user := middleware.GetUser(c)
	if user == nil {
		log.Warn("Unauthorized access attempt")
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Authentication required",
		})
	}

	var payload transferController.ExportPayload
	if err := c.BodyParser(&payload); err != nil {
		log.Warn("Invalid request body", "error", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if err := h.transferController.Import(c.Context(), user, &payload); err != nil {
		if errors.Is(err, transferController.ErrInvalidFormat) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		_ = log.Err("Failed to import data", err, "userID", user.ID)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to import data",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
	})
}
