package handlers

import (
	"errors"
	"upkeep/internal/app"
	itemController "upkeep/internal/controllers/items"
	"upkeep/internal/handlers/middleware"
	"upkeep/internal/services"

	logger "github.com/Bparsons0904/goLogger"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ItemHandler struct {
	Handler
	itemController itemController.ItemControllerInterface
	authService    *services.AuthService
}

func NewItemHandler(app app.App, router fiber.Router) *ItemHandler {
	log := logger.New("handlers").File("item_handler")
	return &ItemHandler{
		itemController: app.Controllers.Item,
		authService:    app.Services.Auth,
		Handler: Handler{
			log:        log,
			router:     router,
			middleware: app.Middleware,
		},
	}
}

func (h *ItemHandler) Register() {
	items := h.router.Group("/items", h.middleware.RequireAuth(h.authService))

	items.Get("", h.getItems)
	items.Post("", h.createItem)
	items.Get("/:id", h.getItem)
	items.Put("/:id", h.updateItem)
	items.Delete("/:id", h.deleteItem)
	items.Post("/:id/quick-add", h.quickAdd)
}

func (h *ItemHandler) getItems(c *fiber.Ctx) error {
	log := logger.New("handlers").TraceFromContext(c.UserContext()).File("item_handler").Function("getItems")

	user := middleware.GetUser(c)
	if user == nil {
		log.Warn("Unauthorized access attempt")
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Authentication required",
		})
	}

	items, err := h.itemController.GetItems(c.Context(), user)
	if err != nil {
		_ = log.Err("Failed to retrieve items", err, "userID", user.ID)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to retrieve items",
		})
	}

	return c.JSON(fiber.Map{
		"items": items,
	})
}

func (h *ItemHandler) getItem(c *fiber.Ctx) error {
	log := logger.New("handlers").TraceFromContext(c.UserContext()).File("item_handler").Function("getItem")

	user := middleware.GetUser(c)
	if user == nil {
		log.Warn("Unauthorized access attempt")
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Authentication required",
		})
	}

	itemID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		log.Warn("Invalid item ID", "id", c.Params("id"))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid item ID",
		})
	}

	item, err := h.itemController.GetItem(c.Context(), user, itemID)
	if err != nil {
		if errors.Is(err, itemController.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Item not found",
			})
		}
		_ = log.Err("Failed to retrieve item", err, "itemID", itemID)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to retrieve item",
		})
	}

	return c.JSON(fiber.Map{
		"item": item,
	})
}

func (h *ItemHandler) createItem(c *fiber.Ctx) error {
	log := logger.New("handlers").TraceFromContext(c.UserContext()).File("item_handler").Function("createItem")

	user := middleware.GetUser(c)
	if user == nil {
		log.Warn("Unauthorized access attempt")
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Authentication required",
		})
	}

	var req itemController.CreateItemRequest
	if err := c.BodyParser(&req); err != nil {
		log.Warn("Invalid request body", "error", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	item, err := h.itemController.CreateItem(c.Context(), user, &req)
	if err != nil {
		if errors.Is(err, itemController.ErrValidation) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		_ = log.Err("Failed to create item", err, "userID", user.ID)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create item",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"item": item,
	})
}

func (h *ItemHandler) updateItem(c *fiber.Ctx) error {
	log := logger.New("handlers").TraceFromContext(c.UserContext()).File("item_handler").Function("updateItem")

	user := middleware.GetUser(c)
	if user == nil {
		log.Warn("Unauthorized access attempt")
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Authentication required",
		})
	}

	itemID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		log.Warn("Invalid item ID", "id", c.Params("id"))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid item ID",
		})
	}

	var req itemController.UpdateItemRequest
	if err := c.BodyParser(&req); err != nil {
		log.Warn("Invalid request body", "error", err, "itemID", itemID)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	item, err := h.itemController.UpdateItem(c.Context(), user, itemID, &req)
	if err != nil {
		if errors.Is(err, itemController.ErrValidation) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		if errors.Is(err, itemController.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Item not found",
			})
		}
		_ = log.Err("Failed to update item", err, "itemID", itemID)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update item",
		})
	}

	return c.JSON(fiber.Map{
		"item": item,
	})
}

func (h *ItemHandler) deleteItem(c *fiber.Ctx) error {
	log := logger.New("handlers").TraceFromContext(c.UserContext()).File("item_handler").Function("deleteItem")

	user := middleware.GetUser(c)
	if user == nil {
		log.Warn("Unauthorized access attempt")
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Authentication required",
		})
	}

	itemID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		log.Warn("Invalid item ID", "id", c.Params("id"))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid item ID",
		})
	}

	if err := h.itemController.DeleteItem(c.Context(), user, itemID); err != nil {
		if errors.Is(err, itemController.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Item not found",
			})
		}
		_ = log.Err("Failed to delete item", err, "itemID", itemID)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete item",
		})
	}

	return c.Status(fiber.StatusNoContent).Send(nil)
}

func (h *ItemHandler) quickAdd(c *fiber.Ctx) error {
	log := logger.New("handlers").TraceFromContext(c.UserContext()).File("item_handler").Function("quickAdd")

	user := middleware.GetUser(c)
	if user == nil {
		log.Warn("Unauthorized access attempt")
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Authentication required",
		})
	}

	itemID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		log.Warn("Invalid item ID", "id", c.Params("id"))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid item ID",
		})
	}

	response, err := h.itemController.QuickAdd(c.Context(), user, itemID)
	if err != nil {
		if errors.Is(err, itemController.ErrValidation) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		if errors.Is(err, itemController.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Item not found",
			})
		}
		_ = log.Err("Failed to quick add tasks", err, "itemID", itemID)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to add starter tasks",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(response)
}
