package server

import (
	"log"

	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"wellnesstips/internal/handlers"
	"wellnesstips/internal/mcpserver"
	"wellnesstips/internal/tips"
)

// RegisterRoutes registers all application routes. database may be nil when
// lookup statistics are disabled.
func (s *Server) RegisterRoutes(catalog *tips.Catalog, database handlers.Pinger) {
	tipsHandler := handlers.NewTipsHandler(catalog)
	probeHandler := handlers.NewProbeHandler(catalog, database)
	mcpServer := mcpserver.New(s.Cfg.MCPServerName, catalog)

	// Status
	s.App.Get("/", handlers.Info)

	// Probes
	s.App.Get("/healthz", probeHandler.Liveness)
	s.App.Get("/readyz", probeHandler.Readiness)

	// REST
	s.App.Get("/moods", tipsHandler.Moods)
	s.App.Get("/tips/:mood", tipsHandler.Get)

	// MCP streamable HTTP endpoint (tools/list, tools/call, resources/read)
	s.App.All("/mcp", adaptor.HTTPHandler(mcpServer.HTTPHandler()))

	if s.Cfg.MetricsEnabled {
		s.App.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
	} else {
		log.Println("Metrics endpoint disabled")
	}
}
