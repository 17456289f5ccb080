package handler

import (
	"context"
	"time"

	"crewcall/internal/database"
	"crewcall/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

type pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	db    database.DB
	cache pinger
}

func NewHealthHandler(db database.DB, cache pinger) *HealthHandler {
	return &HealthHandler{db: db, cache: cache}
}

func (h *HealthHandler) RegisterRoutes(r fiber.Router) {
	r.Get("/health", h.Health)
}

func (h *HealthHandler) Health(c fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 2*time.Second)
	defer cancel()

	dbStatus := "ok"
	if err := h.db.Ping(ctx); err != nil {
		dbStatus = "down"
	}

	cacheStatus := "ok"
	if h.cache == nil {
		cacheStatus = "disabled"
	} else if err := h.cache.Ping(ctx); err != nil {
		cacheStatus = "down"
	}

	status := fiber.StatusOK
	if dbStatus != "ok" {
		status = fiber.StatusServiceUnavailable
	}

	return response.Success(c, status, response.DefaultMessageForStatus(status), map[string]string{
		"database": dbStatus,
		"cache":    cacheStatus,
	})
}
