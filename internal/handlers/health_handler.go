package handlers

import (
	"time"

	"github.com/ahmetcoskunkizilkaya/music-catalog/internal/database"
	"github.com/ahmetcoskunkizilkaya/music-catalog/internal/dto"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type HealthHandler struct {
	db *gorm.DB
}

func NewHealthHandler(db *gorm.DB) *HealthHandler {
	return &HealthHandler{db: db}
}

func (h *HealthHandler) Check(c *fiber.Ctx) error {
	code, status, dbStatus := fiber.StatusOK, "ok", "ok"
	if err := database.Ping(h.db); err != nil {
		code, status = fiber.StatusServiceUnavailable, "degraded"
		dbStatus = "unhealthy: " + err.Error()
	}

	return c.Status(code).JSON(dto.HealthResponse{
		Status:    status,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		DB:        dbStatus,
	})
}
