package content

import (
	"testing"
	"time"
)

func TestClassOf(t *testing.T) {
	cases := []struct {
		status string
		want   Class
	}{
		{"completed", ClassCompleted},
		{"Done", ClassCompleted},
		{"  published ", ClassCompleted},
		{"POSTED", ClassCompleted},
		{"in progress", ClassInProgress},
		{"Draft", ClassInProgress},
		{"In Edit", ClassInProgress},
		{"edit", ClassInProgress},
		{"editing", ClassInProgress},
		{"pending", ClassPending},
		{"TODO", ClassPending},
		{"backlog", ClassPending},
		{"Not Started", ClassPending},
		{"assign", ClassPending},
		{"", ClassOther},
		{"scheduled", ClassOther},
		{"done-ish", ClassOther},
	}
	for _, c := range cases {
		if got := ClassOf(c.status); got != c.want {
			t.Errorf("ClassOf(%q) = %v, want %v", c.status, got, c.want)
		}
	}
}

func TestClassForToken(t *testing.T) {
	if _, ok := ClassForToken(TokenAll); ok {
		t.Error("empty token should not map to a class")
	}
	if cls, ok := ClassForToken(TokenOther); !ok || cls != ClassOther {
		t.Errorf("other token: got %v, %v", cls, ok)
	}
	if cls, ok := ClassForToken(TokenInProgress); !ok || cls != ClassInProgress {
		t.Errorf("in-progress token: got %v, %v", cls, ok)
	}
	if _, ok := ClassForToken("bogus"); ok {
		t.Error("unknown token should not map to a class")
	}
}

func TestKeys(t *testing.T) {
	d := time.Date(2024, time.June, 3, 15, 4, 5, 0, time.UTC)
	if got := MonthKey(d); got != "2024-06" {
		t.Errorf("MonthKey = %q", got)
	}
	if got := DayKey(d); got != "2024-06-03" {
		t.Errorf("DayKey = %q", got)
	}
	if got := MonthKeyOf(2024, time.June); got != "2024-06" {
		t.Errorf("MonthKeyOf = %q", got)
	}
}

func TestKeyOrderingMatchesChronology(t *testing.T) {
	// zero padding makes string order equal date order across year and
	// month boundaries
	a := DayKey(time.Date(2023, time.December, 31, 0, 0, 0, 0, time.UTC))
	b := DayKey(time.Date(2024, time.February, 9, 0, 0, 0, 0, time.UTC))
	c := DayKey(time.Date(2024, time.October, 1, 0, 0, 0, 0, time.UTC))
	if !(a < b && b < c) {
		t.Errorf("day keys out of order: %q %q %q", a, b, c)
	}
}

func TestDaysInMonth(t *testing.T) {
	cases := []struct {
		key  string
		want int
	}{
		{"2024-02", 29}, // leap year
		{"2023-02", 28},
		{"2100-02", 28}, // century, not a leap year
		{"2000-02", 29}, // divisible by 400
		{"2024-04", 30},
		{"2024-12", 31},
		{"garbage", 0},
	}
	for _, c := range cases {
		if got := DaysInMonth(c.key); got != c.want {
			t.Errorf("DaysInMonth(%q) = %d, want %d", c.key, got, c.want)
		}
	}
}

func TestLabels(t *testing.T) {
	it := Item{Date: time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)}
	if it.CreatorLabel() != Unassigned || it.PlatformLabel() != Unassigned {
		t.Error("empty creator/platform should fall back to Unassigned")
	}
	it.Creator = "Alice"
	if it.CreatorLabel() != "Alice" {
		t.Errorf("CreatorLabel = %q", it.CreatorLabel())
	}
	if got := MonthLabel("2026-02"); got != "Feb 2026" {
		t.Errorf("MonthLabel = %q", got)
	}
	if got := MonthLabel("oops"); got != "oops" {
		t.Errorf("MonthLabel fallback = %q", got)
	}
}
