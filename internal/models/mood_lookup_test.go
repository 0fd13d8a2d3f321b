package models

import "testing"

func TestOutcomeConstants(t *testing.T) {
	if OutcomeHit != "hit" {
		t.Errorf("OutcomeHit = %q, want %q", OutcomeHit, "hit")
	}
	if OutcomeFallback != "fallback" {
		t.Errorf("OutcomeFallback = %q, want %q", OutcomeFallback, "fallback")
	}
	if UnknownMood != "unknown" {
		t.Errorf("UnknownMood = %q, want %q", UnknownMood, "unknown")
	}
	if AdapterREST != "rest" || AdapterMCP != "mcp" {
		t.Errorf("adapter names = %q, %q", AdapterREST, AdapterMCP)
	}
}
