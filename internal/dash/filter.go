package dash

import (
	"sort"
	"strings"

	"github.com/jask/contentdeck/internal/content"
)

// FilterResult carries the filtered subset plus the (possibly corrected)
// view. The engine never mutates the caller's View; when the selected day
// falls outside the active month the correction is returned here and the
// host persists it.
type FilterResult struct {
	Rows       []content.Item
	View       View // effective view: month defaulted, stale day cleared
	DayCleared bool
}

// Filter returns the subset of rows matching every active criterion of the
// view. An unset month defaults to the latest month present in rows.
func Filter(rows []content.Item, view View) FilterResult {
	if view.Month == "" {
		view.Month = LatestMonth(rows)
	}
	// self-healing invariant: a selected day must lie inside the month
	cleared := false
	if view.Day != "" && !strings.HasPrefix(view.Day, view.Month+"-") {
		view.Day = ""
		cleared = true
	}

	wantClass, filterByClass := content.ClassForToken(view.Status)

	var out []content.Item
	for _, it := range rows {
		if it.MonthKey() != view.Month {
			continue
		}
		if view.Day != "" && it.DayKey() != view.Day {
			continue
		}
		if view.Creator != "" && it.CreatorLabel() != view.Creator {
			continue
		}
		if view.Platform != "" && it.PlatformLabel() != view.Platform {
			continue
		}
		if filterByClass && content.ClassOf(it.Status) != wantClass {
			continue
		}
		if view.Search != "" && !matchesSearch(it, view.Search) {
			continue
		}
		out = append(out, it)
	}
	return FilterResult{Rows: out, View: view, DayCleared: cleared}
}

// matchesSearch reports whether the case-folded term is a substring of the
// space-joined searchable fields of the row.
func matchesSearch(it content.Item, term string) bool {
	haystack := strings.ToLower(strings.Join([]string{
		it.Topic, it.Platform, it.Location, it.VideoType, it.Creator, it.Status, it.Caption,
	}, " "))
	return strings.Contains(haystack, term)
}

// MonthRows returns all rows in the given month regardless of any other
// filter. This is the heat-intensity denominator for the calendar.
func MonthRows(rows []content.Item, monthKey string) []content.Item {
	var out []content.Item
	for _, it := range rows {
		if it.MonthKey() == monthKey {
			out = append(out, it)
		}
	}
	return out
}

// LatestMonth returns the lexicographically largest month key in rows, which
// by key construction is the most recent month. Empty when rows is empty.
func LatestMonth(rows []content.Item) string {
	latest := ""
	for _, it := range rows {
		if k := it.MonthKey(); k > latest {
			latest = k
		}
	}
	return latest
}

// Options are the distinct filter choices derived from the full row set.
type Options struct {
	Months    []string // ascending; the last entry is the default month
	Creators  []string
	Platforms []string
}

// BuildOptions collects the sorted distinct months, creators and platforms
// across all rows, with the Unassigned fallback applied.
func BuildOptions(rows []content.Item) Options {
	months := map[string]struct{}{}
	creators := map[string]struct{}{}
	platforms := map[string]struct{}{}
	for _, it := range rows {
		months[it.MonthKey()] = struct{}{}
		creators[it.CreatorLabel()] = struct{}{}
		platforms[it.PlatformLabel()] = struct{}{}
	}
	return Options{
		Months:    sortedKeys(months),
		Creators:  sortedKeys(creators),
		Platforms: sortedKeys(platforms),
	}
}

func sortedKeys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
