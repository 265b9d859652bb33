package dash

import (
	"fmt"
	"math"
	"strings"

	"github.com/jask/contentdeck/internal/content"
)

// RiskTier is the three-tier backlog risk label of the insights panel. Its
// cut points (0.30 / 0.45) are deliberately different from the summary-card
// health thresholds; the two models coexist and must not be unified.
type RiskTier int

const (
	RiskLow RiskTier = iota
	RiskMedium
	RiskHigh
)

func (r RiskTier) String() string {
	switch r {
	case RiskHigh:
		return "High"
	case RiskMedium:
		return "Medium"
	default:
		return "Low"
	}
}

// Insights are the narrative signals derived from the filtered subset.
type Insights struct {
	TopCreator       string
	TopCreatorDone   int
	TopPlatform      string
	TopPlatformCount int
	Velocity         float64 // completed per active day
	CompletionPct    int
	PendingPct       int
	Risk             RiskTier
}

// BuildInsights derives the insight panel values. ok is false when the
// subset is empty; ties for top creator/platform keep first-encountered
// order, the same rule as the leaderboards.
func BuildInsights(rows []content.Item) (Insights, bool) {
	if len(rows) == 0 {
		return Insights{}, false
	}

	var completed, pending int
	creatorDone := newCounter()
	platforms := newCounter()
	activeDays := map[string]struct{}{}
	for _, it := range rows {
		cls := content.ClassOf(it.Status)
		switch cls {
		case content.ClassCompleted:
			completed++
		case content.ClassPending:
			pending++
		}
		cr := it.CreatorLabel()
		creatorDone.add(cr, 0)
		if cls == content.ClassCompleted {
			creatorDone.add(cr, 1)
		}
		platforms.add(it.PlatformLabel(), 1)
		activeDays[it.DayKey()] = struct{}{}
	}

	total := len(rows)
	days := len(activeDays)
	if days < 1 {
		days = 1
	}
	pendingRate := float64(pending) / float64(total)

	ins := Insights{
		Velocity:      float64(completed) / float64(days),
		CompletionPct: int(math.Round(float64(completed) / float64(total) * 100)),
		PendingPct:    int(math.Round(pendingRate * 100)),
	}
	ins.TopCreator, ins.TopCreatorDone = topOf(creatorDone)
	ins.TopPlatform, ins.TopPlatformCount = topOf(platforms)
	switch {
	case pendingRate >= 0.45:
		ins.Risk = RiskHigh
	case pendingRate >= 0.30:
		ins.Risk = RiskMedium
	default:
		ins.Risk = RiskLow
	}
	return ins, true
}

// topOf picks the highest-count key, first-encountered winning ties.
func topOf(c *counter) (string, int) {
	best, bestN := "", -1
	for _, k := range c.keys {
		if c.n[k] > bestN {
			best, bestN = k, c.n[k]
		}
	}
	if bestN < 0 {
		return "", 0
	}
	return best, bestN
}

// statusFilterLabel renders the status token for the auto-summary sentence.
func statusFilterLabel(token string) string {
	switch token {
	case content.TokenCompleted:
		return "completed"
	case content.TokenInProgress:
		return "in-edit"
	case content.TokenPending:
		return "pending"
	case content.TokenOther:
		return "other"
	default:
		return "all"
	}
}

// SummaryText composes the one-line narrative summary of the current view.
func SummaryText(rows []content.Item, view View) string {
	if len(rows) == 0 {
		return "No content found for these filters."
	}

	completed := 0
	platforms := newCounter()
	topics := newCounter()
	for _, it := range rows {
		if content.ClassOf(it.Status) == content.ClassCompleted {
			completed++
		}
		platforms.add(it.PlatformLabel(), 1)
		topic := it.Topic
		if topic == "" {
			topic = "Unspecified"
		}
		topics.add(topic, 1)
	}
	mainPlatform, _ := topOf(platforms)
	topTopic, _ := topOf(topics)

	var b strings.Builder
	fmt.Fprintf(&b, "In %s", content.MonthLabel(view.Month))
	if view.Creator != "" {
		fmt.Fprintf(&b, " for %s", view.Creator)
	}
	fmt.Fprintf(&b, ": %d items, %d done (%d%%).", len(rows), completed, pct(completed, len(rows)))
	fmt.Fprintf(&b, " Filters: %s", statusFilterLabel(view.Status))
	if view.Platform != "" {
		fmt.Fprintf(&b, " on %s", view.Platform)
	} else if mainPlatform != "" {
		fmt.Fprintf(&b, " • mostly %s", mainPlatform)
	}
	if view.Day != "" {
		fmt.Fprintf(&b, " • day %s", view.Day)
	}
	b.WriteString(".")
	if topTopic != "" {
		fmt.Fprintf(&b, " Top topic: %s.", topTopic)
	}
	return b.String()
}
