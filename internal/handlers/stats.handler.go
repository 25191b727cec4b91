package handlers

import (
	"upkeep/internal/app"
	statsController "upkeep/internal/controllers/stats"
	"upkeep/internal/handlers/middleware"
	"upkeep/internal/services"

	logger "github.com/Bparsons0904/goLogger"

	"github.com/gofiber/fiber/v2"
)

type StatsHandler struct {
	Handler
	statsController statsController.StatsControllerInterface
	authService     *services.AuthService
}

func NewStatsHandler(app app.App, router fiber.Router) *StatsHandler {
	log := logger.New("handlers").File("stats_handler")
	return &StatsHandler{
		statsController: app.Controllers.Stats,
		authService:     app.Services.Auth,
		Handler: Handler{
			log:        log,
			router:     router,
			middleware: app.Middleware,
		},
	}
}

func (h *StatsHandler) Register() {
	stats := h.router.Group("/stats", h.middleware.RequireAuth(h.authService))

	stats.Get("", h.getStats)
}

func (h *StatsHandler) getStats(c *fiber.Ctx) error {
	log := logger.New("handlers").TraceFromContext(c.UserContext()).File("stats_handler").Function("getStats")

	user := middleware.GetUser(c)
	if user == nil {
		log.Warn("Unauthorized access attempt")
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Authentication required",
		})
	}

	stats, err := h.statsController.GetStats(c.Context(), user)
	if err != nil {
		_ = log.Err("Failed to retrieve stats", err, "userID", user.ID)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to retrieve stats",
		})
	}

	return c.JSON(stats)
}
