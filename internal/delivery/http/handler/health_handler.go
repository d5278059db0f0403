package handler

import (
	"jobboard/internal/database"
	"jobboard/internal/infrastructure/cache"
	"jobboard/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

type HealthHandler struct {
	db    database.DB
	cache *cache.Redis
}

func NewHealthHandler(db database.DB, cacheClient *cache.Redis) *HealthHandler {
	return &HealthHandler{db: db, cache: cacheClient}
}

func (h *HealthHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/health", h.Health)
}

// Health reports component status. A dead cache does not fail the check; the
// cache is best-effort everywhere else too.
func (h *HealthHandler) Health(c fiber.Ctx) error {
	components := fiber.Map{"database": "up", "cache": "up"}
	status := fiber.StatusOK

	if h.db == nil || h.db.Ping(c.Context()) != nil {
		components["database"] = "down"
		status = fiber.StatusServiceUnavailable
	}
	if h.cache == nil || h.cache.Ping(c.Context()) != nil {
		components["cache"] = "down"
	}

	if status != fiber.StatusOK {
		return response.Error(c, status, response.MessageError, components)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, components)
}
