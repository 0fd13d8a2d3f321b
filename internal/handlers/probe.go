package handlers

import (
	"context"

	"github.com/gofiber/fiber/v3"

	"wellnesstips/internal/models"
	"wellnesstips/internal/tips"
)

// Pinger is implemented by dependencies that can report reachability.
type Pinger interface {
	Ping(ctx context.Context) error
}

// ProbeHandler handles Kubernetes health probe endpoints.
type ProbeHandler struct {
	catalog *tips.Catalog
	db      Pinger
}

// NewProbeHandler creates a new probe handler. database may be nil.
func NewProbeHandler(catalog *tips.Catalog, database Pinger) *ProbeHandler {
	return &ProbeHandler{catalog: catalog, db: database}
}

// Liveness handles the /healthz endpoint for Kubernetes liveness probes.
// Returns 200 OK if the application is running.
func (h *ProbeHandler) Liveness(c fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status": "ok",
	})
}

// Readiness handles the /readyz endpoint for Kubernetes readiness probes.
// An empty catalog is reported as degraded but still ready; only an
// unreachable configured database fails the probe.
func (h *ProbeHandler) Readiness(c fiber.Ctx) error {
	resp := models.ReadinessResponse{
		Status:      "ok",
		CatalogSize: h.catalog.Len(),
		Degraded:    h.catalog.Len() == 0,
	}

	if h.db != nil {
		if err := h.db.Ping(c.Context()); err != nil {
			resp.Status = "error"
			resp.Error = "database unavailable"
			return c.Status(fiber.StatusServiceUnavailable).JSON(resp)
		}
	}

	return c.JSON(resp)
}
