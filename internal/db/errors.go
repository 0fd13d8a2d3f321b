package db

import "errors"

// Domain-level database error sentinels.
var (
	// ErrNotConfigured is returned when no connection string is provided.
	ErrNotConfigured = errors.New("database not configured")
)
