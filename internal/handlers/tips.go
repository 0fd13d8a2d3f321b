package handlers

import (
	"github.com/gofiber/fiber/v3"

	"wellnesstips/internal/metrics"
	"wellnesstips/internal/models"
	"wellnesstips/internal/tips"
)

// TipsHandler serves catalog lookups over REST.
type TipsHandler struct {
	catalog *tips.Catalog
}

// NewTipsHandler creates a new tips handler.
func NewTipsHandler(catalog *tips.Catalog) *TipsHandler {
	return &TipsHandler{catalog: catalog}
}

// Get returns the tips for the :mood path parameter. Unknown moods get the
// fallback tips with a 200, never an error.
func (h *TipsHandler) Get(c fiber.Ctx) error {
	res := h.catalog.Resolve(c.Params("mood"))
	metrics.RecordLookup(models.AdapterREST, res)

	return c.JSON(models.TipsResponse{
		Mood: res.Mood,
		Tips: res.Tips,
	})
}

// Moods lists the moods the catalog has tips for.
func (h *TipsHandler) Moods(c fiber.Ctx) error {
	moods := h.catalog.Moods()
	return c.JSON(models.MoodsResponse{
		Moods: moods,
		Count: len(moods),
	})
}
