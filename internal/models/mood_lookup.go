package models

import "time"

// Mood lookup outcome constants
const (
	OutcomeHit      = "hit"
	OutcomeFallback = "fallback"
)

// UnknownMood is the label recorded for lookups that fell back, so arbitrary
// user input never becomes a metric label.
const UnknownMood = "unknown"

// Adapter names used when recording lookups.
const (
	AdapterREST = "rest"
	AdapterMCP  = "mcp"
)

// MoodLookup represents a per-mood lookup count by outcome.
type MoodLookup struct {
	Mood       string
	Outcome    string
	Count      int64
	LastSeenAt time.Time
}
