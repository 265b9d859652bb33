package tui

import (
	"context"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/contentdeck/internal/config"
	"github.com/jask/contentdeck/internal/content"
	"github.com/jask/contentdeck/internal/dash"
	"github.com/jask/contentdeck/internal/llm"
	"github.com/jask/contentdeck/internal/sheets"
)

func testApp(t *testing.T) *App {
	t.Helper()
	app := New(context.Background(), config.Config{UI: config.UIConfig{Target: 30, Theme: "mocha"}},
		sheets.NewClient("", ""), llm.NewOfflineProvider(), dash.View{})
	app.snapshot = sheets.Snapshot{
		ID:        "test",
		FetchedAt: time.Now(),
		Items: []content.Item{
			{Date: time.Date(2024, 6, 14, 0, 0, 0, 0, time.UTC), Creator: "Alice", Platform: "TikTok", Status: "Completed", Topic: "gym"},
			{Date: time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC), Creator: "Bob", Platform: "YouTube", Status: "Pending", Topic: "meal prep"},
			{Date: time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC), Creator: "Alice", Platform: "TikTok", Status: "Draft", Topic: "stretching"},
		},
	}
	app.loaded = true
	app.persistFn = func(dash.View) error { return nil }
	return app
}

func key(s string) tea.KeyMsg {
	if s == "enter" {
		return tea.KeyMsg{Type: tea.KeyEnter}
	}
	if s == "esc" {
		return tea.KeyMsg{Type: tea.KeyEsc}
	}
	if s == "tab" {
		return tea.KeyMsg{Type: tea.KeyTab}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestCycleOption(t *testing.T) {
	values := []string{"Alice", "Bob"}
	if got := cycleOption(values, "", 1); got != "Alice" {
		t.Errorf("first step = %q, want Alice", got)
	}
	if got := cycleOption(values, "Bob", 1); got != "" {
		t.Errorf("wrap around = %q, want all", got)
	}
	if got := cycleOption(values, "", -1); got != "Bob" {
		t.Errorf("backwards = %q, want Bob", got)
	}
	if got := cycleOption(nil, "", 1); got != "" {
		t.Errorf("empty values = %q, want all", got)
	}
}

func TestCycleStatusToken(t *testing.T) {
	order := []string{"", "completed", "in-progress", "pending", "other", ""}
	cur := ""
	for i := 1; i < len(order); i++ {
		cur = cycleStatusToken(cur)
		if cur != order[i] {
			t.Fatalf("step %d = %q, want %q", i, cur, order[i])
		}
	}
	if got := cycleStatusToken("garbage"); got != "" {
		t.Errorf("unknown token cycles to %q, want all", got)
	}
}

func TestNextTab(t *testing.T) {
	if got := nextTab(tabDashboard, 1); got != tabCalendar {
		t.Errorf("forward = %q", got)
	}
	if got := nextTab(tabDashboard, -1); got != tabAssistant {
		t.Errorf("backward wrap = %q", got)
	}
	if got := nextTab(appTab("bogus"), 1); got != tabDashboard {
		t.Errorf("unknown tab = %q", got)
	}
}

func TestMonthCycleClearsDay(t *testing.T) {
	app := testApp(t)
	app.view.Month = "2024-06"
	app.view.Day = "2024-06-14"

	app.cycleMonth(-1)
	if app.view.Month != "2024-05" {
		t.Fatalf("month = %q, want 2024-05", app.view.Month)
	}
	if app.view.Day != "" {
		t.Errorf("day should clear on month change, got %q", app.view.Day)
	}
}

func TestDerivedHealsView(t *testing.T) {
	app := testApp(t)
	app.view.Month = "2024-06"
	app.view.Day = "2024-05-02" // stale, from another month

	res := app.derived()
	if !res.DayCleared {
		t.Fatal("expected stale day to be cleared")
	}
	if app.view.Day != "" {
		t.Errorf("owned view should absorb the healed day, got %q", app.view.Day)
	}
}

func TestSnapshotKeptOnRefreshError(t *testing.T) {
	app := testApp(t)
	before := app.snapshot.ID

	model, _ := app.Update(errMsg{contextErr()})
	app = model.(*App)
	if app.snapshot.ID != before {
		t.Error("snapshot replaced on error")
	}
	if !strings.HasPrefix(app.status, "error") {
		t.Errorf("status = %q, want error prefix", app.status)
	}
}

func contextErr() error {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	return ctx.Err()
}

func TestResetKey(t *testing.T) {
	app := testApp(t)
	app.view = dash.View{Month: "2024-06", Creator: "Alice", Status: "pending", Target: 30, Theme: "mocha"}.Normalize()

	model, _ := app.handleKey(key("x"))
	app = model.(*App)
	if app.view.Creator != "" || app.view.Status != "" {
		t.Error("reset should clear filters")
	}
	if app.view.Target != dash.ResetTarget {
		t.Errorf("target = %d, want %d", app.view.Target, dash.ResetTarget)
	}
	if app.view.Month != "2024-06" || app.view.Theme != "mocha" {
		t.Error("reset should keep month and theme")
	}
}

func TestSearchCommit(t *testing.T) {
	app := testApp(t)
	app.view.Month = "2024-06"

	model, _ := app.handleKey(key("/"))
	app = model.(*App)
	if !app.searchInput.Focused() {
		t.Fatal("search should focus")
	}
	app.searchInput.SetValue("  Gym  ")
	model, _ = app.handleSearchKey(key("enter"))
	app = model.(*App)
	if app.view.Search != "gym" {
		t.Errorf("search = %q, want folded %q", app.view.Search, "gym")
	}
	if app.searchInput.Focused() {
		t.Error("search should blur on commit")
	}
}

func TestApplyContextCommand(t *testing.T) {
	app := testApp(t)

	app.applyContextCommand("/niche fitness coaching")
	if app.aiContext.Niche != "fitness coaching" {
		t.Errorf("niche = %q", app.aiContext.Niche)
	}
	app.applyContextCommand("/length long")
	if app.aiContext.Length != "long" {
		t.Errorf("length = %q", app.aiContext.Length)
	}
	if msg := app.applyContextCommand("/length enormous"); !strings.Contains(msg, "must be") {
		t.Errorf("bad length msg = %q", msg)
	}
	app.applyContextCommand("/clear")
	if app.aiContext.Niche != "" || app.aiContext.Length != "medium" {
		t.Error("clear should restore the default context")
	}
	if msg := app.applyContextCommand("/bogus"); !strings.Contains(msg, "unknown") {
		t.Errorf("unknown cmd msg = %q", msg)
	}
}

func TestCalendarDayToggle(t *testing.T) {
	app := testApp(t)
	app.view.Month = "2024-06"
	app.tab = tabCalendar
	app.dayCursor = 13 // June 14th

	model, _ := app.handleCalendarKey(key("enter"))
	app = model.(*App)
	if app.view.Day != "2024-06-14" {
		t.Fatalf("day = %q, want 2024-06-14", app.view.Day)
	}
	model, _ = app.handleCalendarKey(key("enter"))
	app = model.(*App)
	if app.view.Day != "" {
		t.Errorf("second enter should toggle off, got %q", app.view.Day)
	}
}

func TestViewRendersAllTabs(t *testing.T) {
	app := testApp(t)
	app.view.Month = "2024-06"
	for _, tab := range tabOrder {
		app.tab = tab
		out := app.View()
		if out == "" {
			t.Errorf("tab %s rendered empty", tab)
		}
	}
}
