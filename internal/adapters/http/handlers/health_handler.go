package handlers

import (
	"evote-backend/internal/config"
	"evote-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// HealthHandler handles health check endpoints
type HealthHandler struct{}

// NewHealthHandler creates a new health handler
func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

// Root godoc
// @Summary API root
// @Description Returns API information
// @Tags health
// @Produce json
// @Success 200 {object} response.Response
// @Router / [get]
func (h *HealthHandler) Root(c *fiber.Ctx) error {
	return response.Success(c, "E-Vote API is running", fiber.Map{
		"name":    "evote-backend",
		"version": "1.0.0",
	})
}

// HealthCheck godoc
// @Summary Health check
// @Description Returns service and database health
// @Tags health
// @Produce json
// @Success 200 {object} response.Response
// @Failure 503 {object} response.Response
// @Router /health [get]
func (h *HealthHandler) HealthCheck(c *fiber.Ctx) error {
	if err := config.HealthCheck(); err != nil {
		return response.Error(c, fiber.StatusServiceUnavailable, "database unreachable")
	}
	return response.Success(c, "healthy", fiber.Map{
		"database": "up",
	})
}
