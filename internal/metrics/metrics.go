package metrics

import (
	"context"
	"log/slog"
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"wellnesstips/internal/models"
	"wellnesstips/internal/tips"
)

var (
	moodLookupDesc = prometheus.NewDesc(
		"wellness_mood_lookups_total",
		"Total persisted mood lookup count by outcome",
		[]string{"mood", "outcome"},
		nil,
	)

	tipLookups = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wellness_tip_lookups_total",
			Help: "Tip lookups served by this process, by adapter and outcome",
		},
		[]string{"adapter", "outcome"},
	)
)

// Store persists mood lookup counts. *db.DB satisfies it.
type Store interface {
	IncrementMoodLookup(ctx context.Context, mood, outcome string) error
	GetAllMoodLookups(ctx context.Context) ([]models.MoodLookup, error)
}

// MoodCollector is a custom Prometheus collector that reads mood lookup
// counts from the store on each scrape.
type MoodCollector struct {
	store Store
}

// Describe sends the metric descriptor to the channel.
func (c *MoodCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- moodLookupDesc
}

// Collect queries the store for all mood lookups and emits them as counters.
func (c *MoodCollector) Collect(ch chan<- prometheus.Metric) {
	lookups, err := c.store.GetAllMoodLookups(context.Background())
	if err != nil {
		slog.Error("failed to collect mood lookup metrics", "error", err)
		return
	}
	for _, l := range lookups {
		ch <- prometheus.MustNewConstMetric(
			moodLookupDesc,
			prometheus.CounterValue,
			float64(l.Count),
			l.Mood,
			l.Outcome,
		)
	}
}

// Recorder provides async mood lookup recording.
type Recorder struct {
	store Store
	wg    sync.WaitGroup
}

var (
	recorder     *Recorder
	recorderOnce sync.Once
)

// Init registers the collectors and initializes the recorder.
// Must be called once at startup; store may be nil when statistics are not persisted.
func Init(store Store) {
	recorderOnce.Do(func() {
		recorder = &Recorder{store: store}
		prometheus.MustRegister(tipLookups)
		if store != nil {
			prometheus.MustRegister(&MoodCollector{store: store})
		}
	})
}

// Outcome maps a lookup result to the mood label and outcome recorded for it.
func Outcome(res tips.Result) (mood, outcome string) {
	if res.Found {
		return res.Mood, models.OutcomeHit
	}
	return models.UnknownMood, models.OutcomeFallback
}

// RecordLookup counts a lookup served by adapter and, when a store is
// configured, asynchronously persists it.
func RecordLookup(adapter string, res tips.Result) {
	mood, outcome := Outcome(res)
	tipLookups.WithLabelValues(adapter, outcome).Inc()

	if recorder == nil || recorder.store == nil {
		return
	}
	recorder.wg.Add(1)
	go func() {
		defer recorder.wg.Done()
		if err := recorder.store.IncrementMoodLookup(context.Background(), mood, outcome); err != nil {
			slog.Error("failed to record mood lookup", "mood", mood, "outcome", outcome, "error", err)
		}
	}()
}

// Flush waits for in-flight lookup writes to finish.
func Flush() {
	if recorder == nil {
		return
	}
	recorder.wg.Wait()
}
