package handlers

import (
	"errors"
	"upkeep/internal/app"
	providerController "upkeep/internal/controllers/providers"
	"upkeep/internal/handlers/middleware"
	"upkeep/internal/services"

	logger "github.com/Bparsons0904/goLogger"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ProviderHandler struct {
	Handler
	providerController providerController.ProviderControllerInterface
	authService        *services.AuthService
}

func NewProviderHandler(app app.App, router fiber.Router) *ProviderHandler {
	log := logger.New("handlers").File("provider_handler")
	return &ProviderHandler{
		providerController: app.Controllers.Provider,
		authService:        app.Services.Auth,
		Handler: Handler{
			log:        log,
			router:     router,
			middleware: app.Middleware,
		},
	}
}

func (h *ProviderHandler) Register() {
	providers := h.router.Group("/providers", h.middleware.RequireAuth(h.authService))

	providers.Get("", h.getProviders)
	providers.Post("", h.createProvider)
	providers.Get("/:id", h.getProvider)
	providers.Put("/:id", h.updateProvider)
	providers.Delete("/:id", h.deleteProvider)
}

func (h *ProviderHandler) getProviders(c *fiber.Ctx) error {
	log := logger.New("handlers").TraceFromContext(c.UserContext()).File("provider_handler").Function("getProviders")

	user := middleware.GetUser(c)
	if user == nil {
		log.Warn("Unauthorized access attempt")
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Authentication required",
		})
	}

	providers, err := h.providerController.GetProviders(c.Context(), user)
	if err != nil {
		_ = log.Err("Failed to retrieve providers", err, "userID", user.ID)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to retrieve providers",
		})
	}

	return c.JSON(fiber.Map{
		"providers": providers,
	})
}

func (h *ProviderHandler) getProvider(c *fiber.Ctx) error {
	log := logger.New("handlers").TraceFromContext(c.UserContext()).File("provider_handler").Function("getProvider")

	user := middleware.GetUser(c)
	if user == nil {
		log.Warn("Unauthorized access attempt")
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Authentication required",
		})
	}

	providerID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		log.Warn("Invalid provider ID", "id", c.Params("id"))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid provider ID",
		})
	}

	provider, err := h.providerController.GetProvider(c.Context(), user, providerID)
	if err != nil {
		if errors.Is(err, providerController.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Provider not found",
			})
		}
		_ = log.Err("Failed to retrieve provider", err, "providerID", providerID)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to retrieve provider",
		})
	}

	return c.JSON(fiber.Map{
		"provider": provider,
	})
}

func (h *ProviderHandler) createProvider(c *fiber.Ctx) error {
	log := logger.New("handlers").TraceFromContext(c.UserContext()).File("provider_handler").Function("createProvider")

	user := middleware.GetUser(c)
	if user == nil {
		log.Warn("Unauthorized access attempt")
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Authentication required",
		})
	}

	var req providerController.CreateProviderRequest
	if err := c.BodyParser(&req); err != nil {
		log.Warn("Invalid request body", "error", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	provider, err := h.providerController.CreateProvider(c.Context(), user, &req)
	if err != nil {
		if errors.Is(err, providerController.ErrValidation) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		_ = log.Err("Failed to create provider", err, "userID", user.ID)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create provider",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"provider": provider,
	})
}

func (h *ProviderHandler) updateProvider(c *fiber.Ctx) error {
	log := logger.New("handlers").TraceFromContext(c.UserContext()).File("provider_handler").Function("updateProvider")

	user := middleware.GetUser(c)
	if user == nil {
		log.Warn("Unauthorized access attempt")
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Authentication required",
		})
	}

	providerID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		log.Warn("Invalid provider ID", "id", c.Params("id"))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid provider ID",
		})
	}

	var req providerController.UpdateProviderRequest
	if err := c.BodyParser(&req); err != nil {
		log.Warn("Invalid request body", "error", err, "providerID", providerID)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	provider, err := h.providerController.UpdateProvider(c.Context(), user, providerID, &req)
	if err != nil {
		if errors.Is(err, providerController.ErrValidation) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		if errors.Is(err, providerController.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Provider not found",
			})
		}
		_ = log.Err("Failed to update provider", err, "providerID", providerID)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update provider",
		})
	}

	return c.JSON(fiber.Map{
		"provider": provider,
	})
}

func (h *ProviderHandler) deleteProvider(c *fiber.Ctx) error {
	log := logger.New("handlers").TraceFromContext(c.UserContext()).File("provider_handler").Function("deleteProvider")

	user := middleware.GetUser(c)
	if user == nil {
		log.Warn("Unauthorized access attempt")
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Authentication required",
		})
	}

	providerID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		log.Warn("Invalid provider ID", "id", c.Params("id"))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid provider ID",
		})
	}

	if err := h.providerController.DeleteProvider(c.Context(), user, providerID); err != nil {
		if errors.Is(err, providerController.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Provider not found",
			})
		}
		_ = log.Err("Failed to delete provider", err, "providerID", providerID)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete provider",
		})
	}

	return c.Status(fiber.StatusNoContent).Send(nil)
}
