package metrics

import (
	"context"
	"testing"

	promtestutil "github.com/prometheus/client_golang/prometheus/testutil"

	"wellnesstips/internal/models"
	"wellnesstips/internal/testutil"
)

func TestMoodCollector_Database(t *testing.T) {
	database, cleanup := testutil.TestDB(t)
	defer cleanup()

	ctx := context.Background()
	if err := database.IncrementMoodLookup(ctx, "happy", models.OutcomeHit); err != nil {
		t.Fatalf("IncrementMoodLookup() error = %v", err)
	}
	if err := database.IncrementMoodLookup(ctx, models.UnknownMood, models.OutcomeFallback); err != nil {
		t.Fatalf("IncrementMoodLookup() error = %v", err)
	}

	if n := promtestutil.CollectAndCount(&MoodCollector{store: database}, "wellness_mood_lookups_total"); n != 2 {
		t.Errorf("CollectAndCount() = %d, want 2", n)
	}
}
