package handler

import (
	"question-bank/internal/dto"

	"github.com/gofiber/fiber/v2"
)

// Version is set at build time via -ldflags.
var Version = "dev"

// HealthHandler handles liveness probes
type HealthHandler struct{}

// NewHealthHandler creates a new HealthHandler instance
func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

// Check godoc
// @Summary Health check
// @Description Returns service liveness and version
// @Tags health
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Router /health [get]
func (h *HealthHandler) Check(c *fiber.Ctx) error {
	return c.JSON(dto.HealthResponse{
		Status:  "healthy",
		Version: Version,
	})
}
