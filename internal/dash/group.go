package dash

import (
	"sort"

	"github.com/jask/contentdeck/internal/content"
)

// counter is a string-keyed tally that preserves first-encountered key
// order. The leaderboards' tie-break ("stable, first seen wins") depends on
// this deterministic iteration order.
type counter struct {
	keys []string
	n    map[string]int
}

func newCounter() *counter {
	return &counter{n: map[string]int{}}
}

func (c *counter) add(key string, delta int) {
	if _, ok := c.n[key]; !ok {
		c.keys = append(c.keys, key)
	}
	c.n[key] += delta
}

// LeaderboardEntry is one creator row of the leaderboard.
type LeaderboardEntry struct {
	Creator   string
	Total     int
	Completed int
	SharePct  int // share of all completed items in the subset
}

// CreatorLeaderboard groups the subset by creator and sorts descending by
// completed count. Equal counts keep first-encountered order. The share
// percentage is of the total completed count across all creators.
func CreatorLeaderboard(rows []content.Item) []LeaderboardEntry {
	totals := newCounter()
	completed := newCounter()
	for _, it := range rows {
		name := it.CreatorLabel()
		totals.add(name, 1)
		if content.ClassOf(it.Status) == content.ClassCompleted {
			completed.add(name, 1)
		}
	}

	out := make([]LeaderboardEntry, 0, len(totals.keys))
	allCompleted := 0
	for _, name := range totals.keys {
		out = append(out, LeaderboardEntry{
			Creator:   name,
			Total:     totals.n[name],
			Completed: completed.n[name],
		})
		allCompleted += completed.n[name]
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Completed > out[j].Completed })
	for i := range out {
		out[i].SharePct = pct(out[i].Completed, allCompleted)
	}
	return out
}

// BreakdownEntry is one row of a status/platform/type breakdown.
type BreakdownEntry struct {
	Key      string
	Count    int
	SharePct int
}

// StatusBreakdown groups by the raw status string (not the derived class),
// defaulting empty statuses to "Unknown", sorted descending by count.
func StatusBreakdown(rows []content.Item) []BreakdownEntry {
	return breakdown(rows, func(it content.Item) string {
		if it.Status == "" {
			return "Unknown"
		}
		return it.Status
	})
}

// PlatformBreakdown groups by platform with the Unassigned fallback.
func PlatformBreakdown(rows []content.Item) []BreakdownEntry {
	return breakdown(rows, content.Item.PlatformLabel)
}

// VideoTypeBreakdown groups by video type, defaulting to "Other".
func VideoTypeBreakdown(rows []content.Item) []BreakdownEntry {
	return breakdown(rows, func(it content.Item) string {
		if it.VideoType == "" {
			return "Other"
		}
		return it.VideoType
	})
}

func breakdown(rows []content.Item, key func(content.Item) string) []BreakdownEntry {
	c := newCounter()
	for _, it := range rows {
		c.add(key(it), 1)
	}
	out := make([]BreakdownEntry, 0, len(c.keys))
	for _, k := range c.keys {
		out = append(out, BreakdownEntry{Key: k, Count: c.n[k], SharePct: pct(c.n[k], len(rows))})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Count > out[j].Count })
	return out
}
