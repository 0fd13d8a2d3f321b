// Package tips holds the mood-to-tips catalog and the lookup shared by every adapter.
package tips

import (
	"slices"
	"sort"
	"strings"
)

// fallbackTips is returned for any mood missing from the catalog.
var fallbackTips = []string{
	"No tips available for this mood.",
	"Try another mood like happy, sad, stressed, angry, anxious, frustrated, confused, or neutral.",
}

// Result is the outcome of resolving a raw mood against the catalog.
type Result struct {
	Mood  string   // normalized mood
	Tips  []string // catalog tips, or the fallback sequence
	Found bool
}

// Catalog maps normalized moods to ordered tip lists.
// It is immutable after construction and safe for concurrent use.
type Catalog struct {
	entries map[string][]string
	moods   []string
}

// New builds a catalog from raw entries. Keys are normalized; keys that
// normalize to the empty string are dropped. When two raw keys normalize to
// the same mood, the one sorting last wins.
func New(entries map[string][]string) *Catalog {
	raw := make([]string, 0, len(entries))
	for k := range entries {
		raw = append(raw, k)
	}
	sort.Strings(raw)

	c := &Catalog{entries: make(map[string][]string, len(entries))}
	for _, k := range raw {
		mood := Normalize(k)
		if mood == "" {
			continue
		}
		list := slices.Clone(entries[k])
		if list == nil {
			list = []string{}
		}
		c.entries[mood] = list
	}

	c.moods = make([]string, 0, len(c.entries))
	for mood := range c.entries {
		c.moods = append(c.moods, mood)
	}
	sort.Strings(c.moods)

	return c
}

// Empty returns a catalog with no entries. Every lookup falls back.
func Empty() *Catalog {
	return New(nil)
}

// Normalize trims surrounding whitespace and lowercases a mood.
func Normalize(mood string) string {
	return strings.ToLower(strings.TrimSpace(mood))
}

// Fallback returns a copy of the fallback sequence.
func Fallback() []string {
	return slices.Clone(fallbackTips)
}

// Lookup returns the tips for mood, or the fallback sequence when the
// normalized mood is not in the catalog. It never fails.
func (c *Catalog) Lookup(mood string) []string {
	return c.Resolve(mood).Tips
}

// Resolve is Lookup plus the normalized mood and whether it matched.
func (c *Catalog) Resolve(mood string) Result {
	norm := Normalize(mood)
	if c != nil {
		if tips, ok := c.entries[norm]; ok {
			return Result{Mood: norm, Tips: slices.Clone(tips), Found: true}
		}
	}
	return Result{Mood: norm, Tips: Fallback()}
}

// Moods returns the catalog keys in sorted order.
func (c *Catalog) Moods() []string {
	if c == nil {
		return []string{}
	}
	return slices.Clone(c.moods)
}

// Len returns the number of moods in the catalog.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.entries)
}
