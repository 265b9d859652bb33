package dash

import (
	"testing"
	"time"

	"github.com/jask/contentdeck/internal/content"
)

// ---------------------------------------------------------------------------
// Test fixtures
// ---------------------------------------------------------------------------

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func testItems() []content.Item {
	return []content.Item{
		{Date: day(2024, time.June, 1), Status: "Done", Creator: "Alice", Platform: "TikTok", Topic: "gym routine", VideoType: "Reel"},
		{Date: day(2024, time.June, 2), Status: "pending", Creator: "Bob", Platform: "YouTube", Topic: "meal prep"},
		{Date: day(2024, time.June, 2), Status: "editing", Creator: "Alice", Platform: "TikTok", Topic: "supplements", Caption: "coming soon"},
		{Date: day(2024, time.June, 9), Status: "published", Creator: "Cara", Topic: "stretching"},
		{Date: day(2024, time.May, 28), Status: "done", Creator: "Alice", Platform: "TikTok", Topic: "warmup"},
	}
}

// ---------------------------------------------------------------------------
// Filter
// ---------------------------------------------------------------------------

func TestFilterMonthOnly(t *testing.T) {
	res := Filter(testItems(), View{Month: "2024-06"})
	if len(res.Rows) != 4 {
		t.Fatalf("month filter: got %d rows, want 4", len(res.Rows))
	}
	for _, it := range res.Rows {
		if it.MonthKey() != "2024-06" {
			t.Errorf("row outside month: %s", it.DayKey())
		}
	}
}

func TestFilterDefaultsToLatestMonth(t *testing.T) {
	res := Filter(testItems(), View{})
	if res.View.Month != "2024-06" {
		t.Fatalf("default month = %q, want 2024-06", res.View.Month)
	}
	if len(res.Rows) != 4 {
		t.Errorf("got %d rows, want 4", len(res.Rows))
	}
}

func TestFilterCreatorPlatformStatus(t *testing.T) {
	rows := testItems()

	res := Filter(rows, View{Month: "2024-06", Creator: "Alice"})
	if len(res.Rows) != 2 {
		t.Errorf("creator filter: got %d, want 2", len(res.Rows))
	}

	res = Filter(rows, View{Month: "2024-06", Platform: content.Unassigned})
	if len(res.Rows) != 1 || res.Rows[0].Creator != "Cara" {
		t.Errorf("unassigned platform filter: got %+v", res.Rows)
	}

	res = Filter(rows, View{Month: "2024-06", Status: content.TokenCompleted})
	if len(res.Rows) != 2 {
		t.Errorf("status filter: got %d, want 2 (Done + published)", len(res.Rows))
	}

	res = Filter(rows, View{Month: "2024-06", Status: content.TokenOther})
	if len(res.Rows) != 0 {
		t.Errorf("other filter: got %d, want 0", len(res.Rows))
	}
}

func TestFilterSearch(t *testing.T) {
	rows := testItems()
	res := Filter(rows, View{Month: "2024-06", Search: "meal"})
	if len(res.Rows) != 1 || res.Rows[0].Creator != "Bob" {
		t.Fatalf("search: got %+v", res.Rows)
	}
	// search spans caption and creator fields too
	res = Filter(rows, View{Month: "2024-06", Search: "coming soon"})
	if len(res.Rows) != 1 {
		t.Errorf("caption search: got %d, want 1", len(res.Rows))
	}
	res = Filter(rows, View{Month: "2024-06", Search: "alice"})
	if len(res.Rows) != 2 {
		t.Errorf("creator search: got %d, want 2", len(res.Rows))
	}
}

func TestFilterDaySelection(t *testing.T) {
	rows := testItems()
	res := Filter(rows, View{Month: "2024-06", Day: "2024-06-02"})
	if len(res.Rows) != 2 {
		t.Errorf("day filter: got %d, want 2", len(res.Rows))
	}
	if res.DayCleared {
		t.Error("valid day should not be cleared")
	}
}

func TestFilterSelfHealsStaleDay(t *testing.T) {
	rows := testItems()
	res := Filter(rows, View{Month: "2024-06", Day: "2024-05-28"})
	if !res.DayCleared {
		t.Fatal("stale day should be cleared")
	}
	if res.View.Day != "" {
		t.Errorf("cleared day still set: %q", res.View.Day)
	}
	if len(res.Rows) != 4 {
		t.Errorf("after clearing, got %d rows, want the whole month (4)", len(res.Rows))
	}
}

func TestFilterIdempotent(t *testing.T) {
	rows := testItems()
	v := View{Month: "2024-06", Creator: "Alice", Search: "gym"}
	a := Filter(rows, v)
	b := Filter(rows, v)
	if len(a.Rows) != len(b.Rows) {
		t.Fatalf("filter not deterministic: %d vs %d", len(a.Rows), len(b.Rows))
	}
	for i := range a.Rows {
		if a.Rows[i] != b.Rows[i] {
			t.Errorf("row %d differs between runs", i)
		}
	}
}

func TestBuildOptions(t *testing.T) {
	opts := BuildOptions(testItems())
	wantMonths := []string{"2024-05", "2024-06"}
	if len(opts.Months) != 2 || opts.Months[0] != wantMonths[0] || opts.Months[1] != wantMonths[1] {
		t.Errorf("months = %v", opts.Months)
	}
	wantCreators := []string{"Alice", "Bob", "Cara"}
	if len(opts.Creators) != 3 {
		t.Fatalf("creators = %v", opts.Creators)
	}
	for i, c := range wantCreators {
		if opts.Creators[i] != c {
			t.Errorf("creators[%d] = %q, want %q", i, opts.Creators[i], c)
		}
	}
	// Cara has no platform, so Unassigned appears as an option
	found := false
	for _, p := range opts.Platforms {
		if p == content.Unassigned {
			found = true
		}
	}
	if !found {
		t.Errorf("platforms missing Unassigned: %v", opts.Platforms)
	}
}

func TestLatestMonthEmpty(t *testing.T) {
	if LatestMonth(nil) != "" {
		t.Error("latest month of no rows should be empty")
	}
}

func TestMonthRowsIgnoresOtherFilters(t *testing.T) {
	rows := MonthRows(testItems(), "2024-06")
	if len(rows) != 4 {
		t.Errorf("month rows: got %d, want 4", len(rows))
	}
}
