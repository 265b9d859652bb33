package dash

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/jask/contentdeck/internal/content"
)

// Tally holds status counts and their rounded percentage shares over a
// filtered subset. Other is implicit: total minus the three named buckets.
// Percentages use a max(total,1) divisor so they are defined (all zero) on
// an empty subset.
type Tally struct {
	Total      int
	Completed  int
	InProgress int
	Pending    int
	Other      int

	CompletedPct  int
	InProgressPct int
	PendingPct    int
	OtherPct      int
}

// CountStatuses tallies the subset by status class.
func CountStatuses(rows []content.Item) Tally {
	var t Tally
	t.Total = len(rows)
	for _, it := range rows {
		switch content.ClassOf(it.Status) {
		case content.ClassCompleted:
			t.Completed++
		case content.ClassInProgress:
			t.InProgress++
		case content.ClassPending:
			t.Pending++
		}
	}
	t.Other = t.Total - t.Completed - t.InProgress - t.Pending
	t.CompletedPct = pct(t.Completed, t.Total)
	t.InProgressPct = pct(t.InProgress, t.Total)
	t.PendingPct = pct(t.Pending, t.Total)
	t.OtherPct = pct(t.Other, t.Total)
	return t
}

// pct is the guarded rounded percentage used throughout the engine.
func pct(count, total int) int {
	if total < 1 {
		total = 1
	}
	return int(math.Round(float64(count) / float64(total) * 100))
}

// PerDayAverage is the subset total spread over the full month, one decimal
// of precision in display. 0 when the subset is empty.
func PerDayAverage(total int, monthKey string) float64 {
	days := content.DaysInMonth(monthKey)
	if total == 0 || days == 0 {
		return 0
	}
	return float64(total) / float64(days)
}

// Pacing is the monthly-target projection for the current view.
type Pacing struct {
	Target        int
	Remaining     int     // items still needed, never negative
	ProgressPct   int     // 0 when the target is unset
	RemainingDays int     // days left incl. today for the real current month
	NeededPerDay  float64 // remaining spread over remaining days
}

// TargetPacing computes target progress for a month. now decides whether the
// viewed month is the real current month; remaining days then count from
// today inclusive, otherwise the whole month counts.
func TargetPacing(total, target int, monthKey string, now time.Time) Pacing {
	p := Pacing{Target: target}
	p.Remaining = target - total
	if p.Remaining < 0 {
		p.Remaining = 0
	}
	if target > 0 {
		p.ProgressPct = int(math.Round(float64(total) / float64(target) * 100))
	}

	daysInMonth := content.DaysInMonth(monthKey)
	p.RemainingDays = daysInMonth
	if y, m, ok := content.ParseMonthKey(monthKey); ok && now.Year() == y && now.Month() == m {
		p.RemainingDays = daysInMonth - now.Day() + 1
		if p.RemainingDays < 0 {
			p.RemainingDays = 0
		}
	}
	if p.RemainingDays > 0 {
		p.NeededPerDay = float64(p.Remaining) / float64(p.RemainingDays)
	} else {
		// no days left: report the full remaining count as the rate
		// rather than dividing by zero
		p.NeededPerDay = float64(p.Remaining)
	}
	return p
}

// Label renders the pacing summary line, e.g. "12/30 • 40% • 18 left (0.9/day)".
func (p Pacing) Label(total int) string {
	return fmt.Sprintf("%d/%d • %d%% • %d left (%.1f/day)", total, p.Target, p.ProgressPct, p.Remaining, p.NeededPerDay)
}

// Consistency summarizes posting cadence within one month.
type Consistency struct {
	PostingDays   int // distinct days with at least one row
	LongestStreak int // longest run of consecutive calendar days
	DaysInMonth   int
}

// ConsistencyFor computes posting days and the longest same-month streak of
// the subset. The streak never spans month boundaries because only
// day-of-month values inside the active month are considered.
func ConsistencyFor(rows []content.Item, monthKey string) Consistency {
	c := Consistency{DaysInMonth: content.DaysInMonth(monthKey)}
	seen := map[int]struct{}{}
	for _, it := range rows {
		seen[it.Date.Day()] = struct{}{}
	}
	c.PostingDays = len(seen)

	days := make([]int, 0, len(seen))
	for d := range seen {
		days = append(days, d)
	}
	sort.Ints(days)

	run := 0
	prev := -1
	for _, d := range days {
		if prev >= 0 && d == prev+1 {
			run++
		} else {
			run = 1
		}
		if run > c.LongestStreak {
			c.LongestStreak = run
		}
		prev = d
	}
	return c
}

// Label renders the consistency line with singular/plural streak text.
func (c Consistency) Label() string {
	unit := "days"
	if c.LongestStreak == 1 {
		unit = "day"
	}
	return fmt.Sprintf("Consistency: %d/%d days • Streak %d %s.", c.PostingDays, c.DaysInMonth, c.LongestStreak, unit)
}

// Health is the summary-card pipeline classification.
type Health int

const (
	HealthNoData Health = iota
	HealthHealthy
	HealthBacklogRisk
	HealthMixed
)

// ClassifyHealth applies the fixed thresholds in their documented order:
// no-data first, then healthy, then backlog risk, then mixed.
func ClassifyHealth(t Tally) Health {
	if t.Total == 0 {
		return HealthNoData
	}
	completedRate := float64(t.Completed) / float64(t.Total)
	pendingRate := float64(t.Pending) / float64(t.Total)
	switch {
	case completedRate >= 0.6 && pendingRate <= 0.25:
		return HealthHealthy
	case pendingRate >= 0.4:
		return HealthBacklogRisk
	default:
		return HealthMixed
	}
}

func (h Health) String() string {
	switch h {
	case HealthHealthy:
		return "healthy"
	case HealthBacklogRisk:
		return "backlog-risk"
	case HealthMixed:
		return "mixed"
	default:
		return "no-data"
	}
}

// Label renders the alert line for a tally under this classification.
func (h Health) Label(t Tally) string {
	switch h {
	case HealthHealthy:
		return fmt.Sprintf("Healthy pipeline. Done %d%% • Pending %d%%.", t.CompletedPct, t.PendingPct)
	case HealthBacklogRisk:
		return fmt.Sprintf("Backlog risk. Pending %d%% — push edits.", t.PendingPct)
	case HealthMixed:
		return fmt.Sprintf("Mixed state. Done %d%% • In edit %d%%.", t.CompletedPct, t.InProgressPct)
	default:
		return "No items match this view. Try reset."
	}
}
