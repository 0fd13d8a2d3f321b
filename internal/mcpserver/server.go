// Package mcpserver exposes the tips catalog as an MCP tool over streamable HTTP.
package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"wellnesstips/internal/metrics"
	"wellnesstips/internal/models"
	"wellnesstips/internal/tips"
)

const (
	// ToolName is the tool clients invoke with tools/call.
	ToolName = "get_wellness_tips"

	// MoodsURI is the resource listing every known mood.
	MoodsURI = "wellness://moods"

	version = "1.0.0"
)

// Server wraps the MCP server and the catalog it serves.
type Server struct {
	mcp     *server.MCPServer
	catalog *tips.Catalog
}

// New builds an MCP server with the tips tool and moods resource registered.
func New(name string, catalog *tips.Catalog) *Server {
	s := &Server{
		mcp: server.NewMCPServer(
			name,
			version,
			server.WithToolCapabilities(false),
			server.WithResourceCapabilities(false, false),
		),
		catalog: catalog,
	}

	s.mcp.AddTool(
		mcp.NewTool(ToolName,
			mcp.WithDescription("Return wellness tips for a mood. Unknown moods get a short fallback message."),
			mcp.WithString("mood",
				mcp.Required(),
				mcp.Description("How the user feels, e.g. happy, sad, stressed, angry, anxious"),
			),
		),
		s.handleGetTips,
	)

	s.mcp.AddResource(
		mcp.NewResource(
			MoodsURI,
			"Known moods",
			mcp.WithResourceDescription("Moods that have tips in the catalog."),
			mcp.WithMIMEType("application/json"),
		),
		s.handleReadMoods,
	)

	return s
}

// MCP returns the underlying MCP server.
func (s *Server) MCP() *server.MCPServer {
	return s.mcp
}

// HTTPHandler returns a stateless streamable HTTP handler answering with
// plain JSON responses.
func (s *Server) HTTPHandler() http.Handler {
	return server.NewStreamableHTTPServer(s.mcp, server.WithStateLess(true))
}

// handleGetTips returns the tips for the requested mood, one text block per
// tip, with the full list as structured content.
func (s *Server) handleGetTips(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	mood, err := request.RequireString("mood")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	res := s.catalog.Resolve(mood)
	metrics.RecordLookup(models.AdapterMCP, res)

	content := make([]mcp.Content, 0, len(res.Tips))
	for _, tip := range res.Tips {
		content = append(content, mcp.NewTextContent(tip))
	}

	return &mcp.CallToolResult{
		Content:           content,
		StructuredContent: map[string]any{"result": res.Tips},
	}, nil
}

func (s *Server) handleReadMoods(_ context.Context, _ mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	data, err := json.Marshal(s.catalog.Moods())
	if err != nil {
		return nil, fmt.Errorf("marshal moods: %w", err)
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      MoodsURI,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
