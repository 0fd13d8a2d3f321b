package db

import (
	"context"
	"time"

	"wellnesstips/internal/models"
)

// IncrementMoodLookup upserts a mood lookup count by outcome.
func (d *DB) IncrementMoodLookup(ctx context.Context, mood, outcome string) error {
	_, err := d.Pool.Exec(ctx, `
		INSERT INTO mood_lookups (mood, outcome, count, last_seen_at)
		VALUES ($1, $2, 1, NOW())
		ON CONFLICT (mood, outcome) DO UPDATE
		SET count = mood_lookups.count + 1, last_seen_at = NOW()
	`, mood, outcome)
	return err
}

// GetAllMoodLookups returns all mood lookup rows for metrics export.
func (d *DB) GetAllMoodLookups(ctx context.Context) ([]models.MoodLookup, error) {
	rows, err := d.Pool.Query(ctx, `
		SELECT mood, outcome, count, last_seen_at
		FROM mood_lookups
		ORDER BY mood, outcome
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var lookups []models.MoodLookup
	for rows.Next() {
		var l models.MoodLookup
		if err := rows.Scan(&l.Mood, &l.Outcome, &l.Count, &l.LastSeenAt); err != nil {
			return nil, err
		}
		lookups = append(lookups, l)
	}
	return lookups, rows.Err()
}

// DeleteStaleMoodLookups removes rows not seen since the given time and
// returns how many were deleted.
func (d *DB) DeleteStaleMoodLookups(ctx context.Context, before time.Time) (int64, error) {
	tag, err := d.Pool.Exec(ctx, `DELETE FROM mood_lookups WHERE last_seen_at < $1`, before)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
