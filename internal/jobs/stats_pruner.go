package jobs

import (
	"context"
	"log"
	"time"
)

// StaleDeleter removes lookup statistics not seen since a cutoff. *db.DB satisfies it.
type StaleDeleter interface {
	DeleteStaleMoodLookups(ctx context.Context, before time.Time) (int64, error)
}

// StatsPruner periodically deletes old mood lookup statistics.
type StatsPruner struct {
	store     StaleDeleter
	interval  time.Duration
	retention time.Duration
	now       func() time.Time
}

// NewStatsPruner creates a new stats pruner.
func NewStatsPruner(store StaleDeleter, interval, retention time.Duration) *StatsPruner {
	return &StatsPruner{
		store:     store,
		interval:  interval,
		retention: retention,
		now:       time.Now,
	}
}

// Start begins the background prune loop. It returns when ctx is cancelled.
func (p *StatsPruner) Start(ctx context.Context) {
	log.Printf("Stats pruner started (interval: %v, retention: %v)", p.interval, p.retention)

	// Run immediately on start
	p.prune(ctx)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Println("Stats pruner stopped")
			return
		case <-ticker.C:
			p.prune(ctx)
		}
	}
}

// prune deletes rows older than the retention window.
func (p *StatsPruner) prune(ctx context.Context) int64 {
	cutoff := p.now().Add(-p.retention)

	deleted, err := p.store.DeleteStaleMoodLookups(ctx, cutoff)
	if err != nil {
		log.Printf("Stats pruner: failed to delete stale lookups: %v", err)
		return 0
	}

	if deleted > 0 {
		log.Printf("Stats pruner: deleted %d stale lookup rows", deleted)
	}
	return deleted
}
