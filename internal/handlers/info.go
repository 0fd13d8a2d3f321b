package handlers

import (
	"github.com/gofiber/fiber/v3"

	"wellnesstips/internal/models"
)

// Info handles the root status endpoint.
func Info(c fiber.Ctx) error {
	return c.JSON(models.InfoResponse{
		Message:     "Wellness MCP Server is running.",
		RestExample: "/tips/happy",
		MCPEndpoint: "/mcp",
	})
}
