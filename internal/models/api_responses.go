package models

// TipsResponse is the REST payload for a mood lookup.
type TipsResponse struct {
	Mood string   `json:"mood"`
	Tips []string `json:"tips"`
}

// MoodsResponse lists the moods the catalog knows about.
type MoodsResponse struct {
	Moods []string `json:"moods"`
	Count int      `json:"count"`
}

// InfoResponse is the static status payload served at the root path.
type InfoResponse struct {
	Message     string `json:"message"`
	RestExample string `json:"rest_example"`
	MCPEndpoint string `json:"mcp_endpoint"`
}

// ReadinessResponse reports whether the service can take traffic.
type ReadinessResponse struct {
	Status      string `json:"status"`
	CatalogSize int    `json:"catalog_size"`
	Degraded    bool   `json:"degraded"`
	Error       string `json:"error,omitempty"`
}
