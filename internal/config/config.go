package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	// Environment
	Env string // "development", "production", etc.

	// Server
	ServerAddr string
	BaseURL    string

	// Catalog
	TipsFile       string // JSON or YAML file mapping moods to tips
	RequireCatalog bool   // Fail startup instead of serving an empty catalog

	// MCP
	MCPServerName string

	// Database (optional, lookup statistics only)
	DatabaseURL    string
	StatsRetention time.Duration

	// Redis (optional, shared rate limiter storage)
	RedisURL string

	// Rate limiting
	RateLimitMax int // Requests per minute per IP, 0 disables

	// Metrics
	MetricsEnabled bool

	// TLS/mTLS
	TLSEnabled  bool
	TLSCertFile string
	TLSKeyFile  string
	TLSCAFile   string // CA for verifying client certs (mTLS)

	// CORS
	CORSOrigins string // Comma-separated allowed origins, "*" allows any
}

// Load reads configuration from environment variables with sensible defaults.
func Load() *Config {
	return &Config{
		Env:            getEnv("ENV", "development"),
		ServerAddr:     getEnv("SERVER_ADDR", ":8000"),
		BaseURL:        getEnv("BASE_URL", "http://localhost:8000"),
		TipsFile:       getEnv("TIPS_FILE", "data/wellness_tips.json"),
		RequireCatalog: getEnv("REQUIRE_CATALOG", "") != "",
		MCPServerName:  getEnv("MCP_SERVER_NAME", "WellnessTipsServer"),
		DatabaseURL:    getEnv("DATABASE_URL", ""),
		StatsRetention: getEnvDuration("STATS_RETENTION", 30*24*time.Hour),
		RedisURL:       getEnv("REDIS_URL", ""),
		RateLimitMax:   getEnvInt("RATE_LIMIT_MAX", 100),
		MetricsEnabled: getEnvBool("METRICS_ENABLED", true),
		TLSEnabled:     getEnv("TLS_ENABLED", "") != "",
		TLSCertFile:    getEnv("TLS_CERT_FILE", ""),
		TLSKeyFile:     getEnv("TLS_KEY_FILE", ""),
		TLSCAFile:      getEnv("TLS_CA_FILE", ""),
		CORSOrigins:    getEnv("CORS_ORIGINS", "*"),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	n, err := strconv.Atoi(getEnv(key, ""))
	if err != nil {
		return fallback
	}
	return n
}

func getEnvBool(key string, fallback bool) bool {
	b, err := strconv.ParseBool(getEnv(key, ""))
	if err != nil {
		return fallback
	}
	return b
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(getEnv(key, ""))
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}

// IsDev returns true if the environment is set to development.
func (c *Config) IsDev() bool {
	return c.Env == "development" || c.Env == "dev"
}

// IsMTLSEnabled returns true if mTLS is configured with a CA file.
func (c *Config) IsMTLSEnabled() bool {
	return c.TLSEnabled && c.TLSCAFile != ""
}

// StatsEnabled reports whether lookup statistics are persisted.
func (c *Config) StatsEnabled() bool {
	return c.DatabaseURL != ""
}

// AllowedOrigins splits CORSOrigins into trimmed, non-empty entries.
func (c *Config) AllowedOrigins() []string {
	var origins []string
	for _, o := range strings.Split(c.CORSOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

// AllowsAnyOrigin reports whether CORS is configured with a wildcard origin.
func (c *Config) AllowsAnyOrigin() bool {
	for _, o := range c.AllowedOrigins() {
		if o == "*" {
			return true
		}
	}
	return false
}
