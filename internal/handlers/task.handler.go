package handlers

import (
	"errors"
	"upkeep/internal/app"
	taskController "upkeep/internal/controllers/tasks"
	"upkeep/internal/handlers/middleware"
	"upkeep/internal/services"

	logger "github.com/Bparsons0904/goLogger"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type TaskHandler struct {
	Handler
	taskController taskController.TaskControllerInterface
	authService    *services.AuthService
}

func NewTaskHandler(app app.App, router fiber.Router) *TaskHandler {
	log := logger.New("handlers").File("task_handler")
	return &TaskHandler{
		taskController: app.Controllers.Task,
		authService:    app.Services.Auth,
		Handler: Handler{
			log:        log,
			router:     router,
			middleware: app.Middleware,
		},
	}
}

func (h *TaskHandler) Register() {
	tasks := h.router.Group("/tasks", h.middleware.RequireAuth(h.authService))

	tasks.Get("", h.getTasks)
	tasks.Post("", h.createTask)
	tasks.Get("/:id", h.getTask)
	tasks.Put("/:id", h.updateTask)
	tasks.Delete("/:id", h.deleteTask)
	tasks.Post("/:id/complete", h.completeTask)
	tasks.Post("/:id/defer", h.deferTask)

	reminders := h.router.Group("/reminders", h.middleware.RequireAuth(h.authService))
	reminders.Get("", h.getReminders)
}

func (h *TaskHandler) getTasks(c *fiber.Ctx) error {
	log := logger.New("handlers").TraceFromContext(c.UserContext()).File("task_handler").Function("getTasks")

	user := middleware.GetUser(c)
	if user == nil {
		log.Warn("Unauthorized access attempt")
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Authentication required",
		})
	}

	query := taskController.TaskQuery{Due: c.Query("due")}
	if raw := c.Query("itemId"); raw != "" {
		itemID, err := uuid.Parse(raw)
		if err != nil {
			log.Warn("Invalid item ID filter", "itemId", raw)
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid item ID filter",
			})
		}
		query.ItemID = &itemID
	}

	tasks, err := h.taskController.GetTasks(c.Context(), user, query)
	if err != nil {
		if errors.Is(err, taskController.ErrValidation) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		_ = log.Err("Failed to retrieve tasks", err, "userID", user.ID)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to retrieve tasks",
		})
	}

	return c.JSON(fiber.Map{
		"tasks": tasks,
	})
}

func (h *TaskHandler) getTask(c *fiber.Ctx) error {
	log := logger.New("handlers").TraceFromContext(c.UserContext()).File("task_handler").Function("getTask")

	user := middleware.GetUser(c)
	if user == nil {
		log.Warn("Unauthorized access attempt")
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Authentication required",
		})
	}

	taskID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		log.Warn("Invalid task ID", "id", c.Params("id"))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid task ID",
		})
	}

	task, err := h.taskController.GetTask(c.Context(), user, taskID)
	if err != nil {
		if errors.Is(err, taskController.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Task not found",
			})
		}
		_ = log.Err("Failed to retrieve task", err, "taskID", taskID)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to retrieve task",
		})
	}

	return c.JSON(fiber.Map{
		"task": task,
	})
}

func (h *TaskHandler) createTask(c *fiber.Ctx) error {
	log := logger.New("handlers").TraceFromContext(c.UserContext()).File("task_handler").Function("createTask")

	user := middleware.GetUser(c)
	if user == nil {
		log.Warn("Unauthorized access attempt")
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Authentication required",
		})
	}

	var req taskController.CreateTaskRequest
	if err := c.BodyParser(&req); err != nil {
		log.Warn("Invalid request body", "error", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	task, err := h.taskController.CreateTask(c.Context(), user, &req)
	if err != nil {
		if errors.Is(err, taskController.ErrValidation) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		if errors.Is(err, taskController.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Item not found",
			})
		}
		_ = log.Err("Failed to create task", err, "userID", user.ID)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create task",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"task": task,
	})
}

func (h *TaskHandler) updateTask(c *fiber.Ctx) error {
	log := logger.New("handlers").TraceFromContext(c.UserContext()).File("task_handler").Function("updateTask")

	user := middleware.GetUser(c)
	if user == nil {
		log.Warn("Unauthorized access attempt")
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Authentication required",
		})
	}

	taskID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		log.Warn("Invalid task ID", "id", c.Params("id"))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid task ID",
		})
	}

	var req taskController.UpdateTaskRequest
	if err := c.BodyParser(&req); err != nil {
		log.Warn("Invalid request body", "error", err, "taskID", taskID)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	task, err := h.taskController.UpdateTask(c.Context(), user, taskID, &req)
	if err != nil {
		if errors.Is(err, taskController.ErrValidation) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		if errors.Is(err, taskController.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Task not found",
			})
		}
		_ = log.Err("Failed to update task", err, "taskID", taskID)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update task",
		})
	}

	return c.JSON(fiber.Map{
		"task": task,
	})
}

func (h *TaskHandler) deleteTask(c *fiber.Ctx) error {
	log := logger.New("handlers").TraceFromContext(c.UserContext()).File("task_handler").Function("deleteTask")

	user := middleware.GetUser(c)
	if user == nil {
		log.Warn("Unauthorized access attempt")
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Authentication required",
		})
	}

	taskID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		log.Warn("Invalid task ID", "id", c.Params("id"))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid task ID",
		})
	}

	if err := h.taskController.DeleteTask(c.Context(), user, taskID); err != nil {
		if errors.Is(err, taskController.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Task not found",
			})
		}
		_ = log.Err("Failed to delete task", err, "taskID", taskID)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete task",
		})
	}

	return c.Status(fiber.StatusNoContent).Send(nil)
}

func (h *TaskHandler) completeTask(c *fiber.Ctx) error {
	log := logger.New("handlers").TraceFromContext(c.UserContext()).File("task_handler").Function("completeTask")

	user := middleware.GetUser(c)
	if user == nil {
		log.Warn("Unauthorized access attempt")
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Authentication required",
		})
	}

	taskID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		log.Warn("Invalid task ID", "id", c.Params("id"))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid task ID",
		})
	}

	req := taskController.CompleteTaskRequest{}
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			log.Warn("Invalid request body", "error", err, "taskID", taskID)
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid request body",
			})
		}
	}

	response, err := h.taskController.CompleteTask(c.Context(), user, taskID, &req)
	if err != nil {
		if errors.Is(err, taskController.ErrValidation) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		if errors.Is(err, taskController.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Task not found",
			})
		}
		_ = log.Err("Failed to complete task", err, "taskID", taskID)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to complete task",
		})
	}

	return c.JSON(response)
}

func (h *TaskHandler) deferTask(c *fiber.Ctx) error {
	log := logger.New("handlers").TraceFromContext(c.UserContext()).File("task_handler").Function("deferTask")

	user := middleware.GetUser(c)
	if user == nil {
		log.Warn("Unauthorized access attempt")
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Authentication required",
		})
	}

	taskID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		log.Warn("Invalid task ID", "id", c.Params("id"))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid task ID",
		})
	}

	var req taskController.DeferTaskRequest
	if err := c.BodyParser(&req); err != nil {
		log.Warn("Invalid request body", "error", err, "taskID", taskID)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	task, err := h.taskController.DeferTask(c.Context(), user, taskID, &req)
	if err != nil {
		if errors.Is(err, taskController.ErrValidation) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		if errors.Is(err, taskController.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Task not found",
			})
		}
		_ = log.Err("Failed to defer task", err, "taskID", taskID)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to defer task",
		})
	}

	return c.JSON(fiber.Map{
		"task": task,
	})
}

func (h *TaskHandler) getReminders(c *fiber.Ctx) error {
	log := logger.New("handlers").TraceFromContext(c.UserContext()).File("task_handler").Function("getReminders")

	user := middleware.GetUser(c)
	if user == nil {
		log.Warn("Unauthorized access attempt")
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Authentication required",
		})
	}

	reminders, err := h.taskController.GetReminders(c.Context(), user)
	if err != nil {
		_ = log.Err("Failed to retrieve reminders", err, "userID", user.ID)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to retrieve reminders",
		})
	}

	return c.JSON(fiber.Map{
		"reminders": reminders,
	})
}
