package dash

import (
	"time"

	"github.com/jask/contentdeck/internal/content"
)

// DayCell is one real day of the calendar grid.
type DayCell struct {
	Day        int    // day of month, 1-based
	Key        string // day key
	Count      int    // rows in the filtered subset on this day
	MonthCount int    // rows in the whole month on this day (heat denominator)
	Intensity  float64
}

// MonthGrid is a Monday-first calendar month. LeadingBlanks cells pad the
// first week so day 1 falls under its weekday column.
type MonthGrid struct {
	MonthKey      string
	LeadingBlanks int
	Days          []DayCell
}

// Calendar builds the month grid. Count comes from the filtered subset and
// drives the visible badge; MonthCount comes from the month-scoped rows and
// drives heat intensity, so creator/platform/search/status filters do not
// dim the heat map. Intensity is normalized against the busiest day of the
// month with a minimum denominator of 1.
func Calendar(filtered, monthRows []content.Item, monthKey string) MonthGrid {
	grid := MonthGrid{MonthKey: monthKey}
	y, m, ok := content.ParseMonthKey(monthKey)
	if !ok {
		return grid
	}
	first := time.Date(y, m, 1, 0, 0, 0, 0, time.UTC)
	// native weekday is Sunday=0; shift so Monday=0
	grid.LeadingBlanks = (int(first.Weekday()) + 6) % 7

	byDay := map[string]int{}
	for _, it := range filtered {
		byDay[it.DayKey()]++
	}
	monthByDay := map[string]int{}
	maxCount := 1
	for _, it := range monthRows {
		k := it.DayKey()
		monthByDay[k]++
		if monthByDay[k] > maxCount {
			maxCount = monthByDay[k]
		}
	}

	days := content.DaysInMonth(monthKey)
	grid.Days = make([]DayCell, 0, days)
	for d := 1; d <= days; d++ {
		key := content.DayKey(time.Date(y, m, d, 0, 0, 0, 0, time.UTC))
		cell := DayCell{
			Day:        d,
			Key:        key,
			Count:      byDay[key],
			MonthCount: monthByDay[key],
		}
		cell.Intensity = clamp01(float64(cell.MonthCount) / float64(maxCount))
		grid.Days = append(grid.Days, cell)
	}
	return grid
}

// DayBreakdown is the per-day status detail shown on demand. Unlike the
// summary tally, Other is counted explicitly here.
type DayBreakdown struct {
	Completed  int
	InProgress int
	Pending    int
	Other      int
}

// DayStatuses computes the status breakdown of the filtered rows falling on
// one day. Not cached; callers invoke it when a cell is inspected.
func DayStatuses(filtered []content.Item, dayKey string) DayBreakdown {
	var b DayBreakdown
	for _, it := range filtered {
		if it.DayKey() != dayKey {
			continue
		}
		switch content.ClassOf(it.Status) {
		case content.ClassCompleted:
			b.Completed++
		case content.ClassInProgress:
			b.InProgress++
		case content.ClassPending:
			b.Pending++
		default:
			b.Other++
		}
	}
	return b
}

func clamp01(f float64) float64 {
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}
