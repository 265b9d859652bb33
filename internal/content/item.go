// Package content defines the canonical shape of one row of the production
// log and the derived keys used for bucketing everywhere else.
package content

import (
	"fmt"
	"time"
)

// Unassigned is the canonical label substituted for a missing creator or
// platform. It is a grouping key, not just display text: every creator and
// platform aggregate buckets unset values under it.
const Unassigned = "Unassigned"

// Item is one row of the content log. Rows are validated at ingestion (a row
// without a parseable date never reaches this type) and never mutated after.
type Item struct {
	Date       time.Time
	VideoType  string
	Location   string
	Topic      string
	ScriptLink string
	Platform   string
	Status     string
	Creator    string
	Caption    string
}

// MonthKey returns the item's grouping key, e.g. "2026-02".
func (it Item) MonthKey() string { return MonthKey(it.Date) }

// DayKey returns the item's calendar-cell key, e.g. "2026-02-03".
func (it Item) DayKey() string { return DayKey(it.Date) }

// CreatorLabel returns the creator with the Unassigned fallback applied.
func (it Item) CreatorLabel() string { return Label(it.Creator) }

// PlatformLabel returns the platform with the Unassigned fallback applied.
func (it Item) PlatformLabel() string { return Label(it.Platform) }

// Label applies the canonical Unassigned fallback to a free-text field.
func Label(s string) string {
	if s == "" {
		return Unassigned
	}
	return s
}

// MonthKey formats a date as a zero-padded month key. Lexicographic order on
// month keys equals chronological order.
func MonthKey(t time.Time) string { return t.Format("2006-01") }

// DayKey formats a date as a zero-padded day key.
func DayKey(t time.Time) string { return t.Format("2006-01-02") }

// ParseMonthKey splits a "YYYY-MM" key into year and month.
func ParseMonthKey(key string) (int, time.Month, bool) {
	t, err := time.Parse("2006-01", key)
	if err != nil {
		return 0, 0, false
	}
	return t.Year(), t.Month(), true
}

// DaysInMonth returns the day count of the month named by key, using
// calendar arithmetic so leap years fall out naturally. Returns 0 for a
// malformed key.
func DaysInMonth(key string) int {
	y, m, ok := ParseMonthKey(key)
	if !ok {
		return 0
	}
	// day 0 of the following month is the last day of this one
	return time.Date(y, m+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// MonthLabel renders a month key for display, e.g. "Feb 2026".
func MonthLabel(key string) string {
	y, m, ok := ParseMonthKey(key)
	if !ok {
		return key
	}
	return time.Date(y, m, 1, 0, 0, 0, 0, time.UTC).Format("Jan 2006")
}

// FormatDate renders a date for table display, e.g. "03 Feb 26".
func FormatDate(t time.Time) string { return t.Format("02 Jan 06") }

// MonthKeyOf builds a key directly from year and month.
func MonthKeyOf(year int, month time.Month) string {
	return fmt.Sprintf("%04d-%02d", year, int(month))
}
