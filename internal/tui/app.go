// Package tui is the terminal front end. It owns the single mutable view
// state, feeds it through the dash engine on every frame, and persists it
// after each mutation.
package tui

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/contentdeck/internal/config"
	"github.com/jask/contentdeck/internal/content"
	"github.com/jask/contentdeck/internal/dash"
	"github.com/jask/contentdeck/internal/llm"
	"github.com/jask/contentdeck/internal/prefs"
	"github.com/jask/contentdeck/internal/sheets"
)

// App ties together views.
type App struct {
	ctx      context.Context
	cfg      config.Config
	client   *sheets.Client
	provider llm.Provider

	view     dash.View
	snapshot sheets.Snapshot
	loaded   bool

	tab        appTab
	itemCursor int
	dayCursor  int
	status     string
	loading    bool
	width      int

	persistFn func(dash.View) error

	searchInput textinput.Model

	// assistant panel
	promptInput textinput.Model
	aiModeIdx   int
	aiContext   llm.Request
	transcript  []chatEntry
	generating  bool
}

type appTab string

const (
	tabDashboard appTab = "dashboard"
	tabCalendar  appTab = "calendar"
	tabItems     appTab = "items"
	tabAssistant appTab = "assistant"
)

var tabOrder = []appTab{tabDashboard, tabCalendar, tabItems, tabAssistant}

type chatEntry struct {
	role string // "user" or "assistant"
	text string
}

func New(ctx context.Context, cfg config.Config, client *sheets.Client, provider llm.Provider, view dash.View) *App {
	search := textinput.New()
	search.Placeholder = "search topic, creator, caption..."
	search.CharLimit = 120
	search.SetValue(view.Search)

	prompt := textinput.New()
	prompt.Placeholder = "describe what you need..."
	prompt.CharLimit = 500

	if view.Target <= 0 {
		view.Target = cfg.UI.Target
	}
	if view.Theme == "" {
		view.Theme = cfg.UI.Theme
	}

	return &App{
		ctx:         ctx,
		cfg:         cfg,
		client:      client,
		provider:    provider,
		view:        view.Normalize(),
		persistFn:   prefs.Save,
		tab:         tabDashboard,
		searchInput: search,
		promptInput: prompt,
		aiContext:   llm.Request{Length: "medium"},
	}
}

func (a *App) Init() tea.Cmd {
	a.loading = true
	return a.fetchCmd()
}

// derived runs the engine over the current snapshot and writes any
// self-healing corrections (defaulted month, cleared stale day) back into
// the owned view.
func (a *App) derived() dash.FilterResult {
	res := dash.Filter(a.snapshot.Items, a.view)
	if res.View != a.view {
		a.view = res.View
	}
	return res
}

func (a *App) persist() {
	if err := a.persistFn(a.view); err != nil {
		a.status = "could not save prefs: " + err.Error()
	}
}

// ---------------------------------------------------------------------------
// Update
// ---------------------------------------------------------------------------

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = m.Width
		return a, nil

	case tea.KeyMsg:
		if a.searchInput.Focused() {
			return a.handleSearchKey(m)
		}
		if a.promptInput.Focused() {
			return a.handlePromptKey(m)
		}
		return a.handleKey(m)

	case snapshotMsg:
		a.loading = false
		a.snapshot = sheets.Snapshot(m)
		a.loaded = true
		a.status = fmt.Sprintf("loaded %d items", len(a.snapshot.Items))
		a.derived()
		a.persist()

	case errMsg:
		a.loading = false
		a.generating = false
		// keep the previous snapshot; stale data beats no data
		a.status = "error: " + m.Error()

	case statusMsg:
		a.status = string(m)

	case exportedMsg:
		a.status = "exported " + m.path

	case generatedMsg:
		a.generating = false
		a.transcript = append(a.transcript, chatEntry{role: "assistant", text: m.text})
	}
	return a, nil
}

func (a *App) handleKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.String() {
	case "q", "ctrl+c":
		return a, tea.Quit

	case "tab":
		a.tab = nextTab(a.tab, 1)
	case "shift+tab":
		a.tab = nextTab(a.tab, -1)
	case "1":
		a.tab = tabDashboard
	case "2":
		a.tab = tabCalendar
	case "3":
		a.tab = tabItems
	case "4":
		a.tab = tabAssistant

	case "r":
		if !a.loading {
			a.loading = true
			a.status = "refreshing..."
			return a, a.fetchCmd()
		}

	case "[":
		a.cycleMonth(-1)
		a.persist()
	case "]":
		a.cycleMonth(1)
		a.persist()
	case "c":
		a.view.Creator = cycleOption(a.options().Creators, a.view.Creator, 1)
		a.persist()
	case "p":
		a.view.Platform = cycleOption(a.options().Platforms, a.view.Platform, 1)
		a.persist()
	case "f":
		a.view.Status = cycleStatusToken(a.view.Status)
		a.persist()
	case "/":
		a.searchInput.SetValue(a.view.Search)
		a.searchInput.Focus()
		return a, textinput.Blink
	case "s":
		a.view.Sort = cycleOption(dash.SortModes, a.view.Sort, 1)
		a.persist()
	case "+", "=":
		a.view.Target += 5
		a.persist()
	case "-":
		if a.view.Target > 5 {
			a.view.Target -= 5
			a.persist()
		}
	case "x":
		a.view = a.view.Reset()
		a.searchInput.SetValue("")
		a.itemCursor, a.dayCursor = 0, 0
		a.status = "filters reset"
		a.persist()
	case "t":
		if a.view.Theme == "latte" {
			a.view.Theme = "mocha"
		} else {
			a.view.Theme = "latte"
		}
		a.persist()

	case "e":
		return a, a.exportCmd()
	}

	switch a.tab {
	case tabItems:
		return a.handleItemsKey(m)
	case tabCalendar:
		return a.handleCalendarKey(m)
	case tabAssistant:
		return a.handleAssistantKey(m)
	}
	return a, nil
}

func (a *App) handleItemsKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	rows := dash.SortRows(a.derived().Rows, a.view.Sort)
	switch m.String() {
	case "up", "k":
		if a.itemCursor > 0 {
			a.itemCursor--
		}
	case "down", "j":
		if a.itemCursor < len(rows)-1 {
			a.itemCursor++
		}
	case "g":
		a.itemCursor = 0
	case "G":
		if len(rows) > 0 {
			a.itemCursor = len(rows) - 1
		}
	}
	return a, nil
}

func (a *App) handleCalendarKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	res := a.derived()
	grid := dash.Calendar(res.Rows, dash.MonthRows(a.snapshot.Items, a.view.Month), a.view.Month)
	if len(grid.Days) == 0 {
		return a, nil
	}
	if a.dayCursor >= len(grid.Days) {
		a.dayCursor = len(grid.Days) - 1
	}
	switch m.String() {
	case "left", "h":
		if a.dayCursor > 0 {
			a.dayCursor--
		}
	case "right", "l":
		if a.dayCursor < len(grid.Days)-1 {
			a.dayCursor++
		}
	case "up", "k":
		if a.dayCursor >= 7 {
			a.dayCursor -= 7
		}
	case "down", "j":
		if a.dayCursor+7 < len(grid.Days) {
			a.dayCursor += 7
		}
	case "enter", " ":
		key := grid.Days[a.dayCursor].Key
		if a.view.Day == key {
			a.view.Day = "" // toggle off
		} else {
			a.view.Day = key
		}
		a.persist()
	case "esc":
		if a.view.Day != "" {
			a.view.Day = ""
			a.persist()
		}
	}
	return a, nil
}

func (a *App) handleAssistantKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.String() {
	case "m":
		a.aiModeIdx = (a.aiModeIdx + 1) % len(llm.Modes)
	case "i", "enter":
		a.promptInput.Focus()
		return a, textinput.Blink
	}
	return a, nil
}

func (a *App) handleSearchKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.String() {
	case "esc":
		a.searchInput.Blur()
		return a, nil
	case "enter":
		a.view.Search = strings.TrimSpace(a.searchInput.Value())
		a.view = a.view.Normalize()
		a.searchInput.Blur()
		a.itemCursor = 0
		a.persist()
		if res := a.derived(); len(res.Rows) == 0 && a.view.Search != "" {
			if name, ok := dash.SuggestCreator(a.options().Creators, a.view.Search); ok {
				a.status = fmt.Sprintf("no matches — did you mean creator %q?", name)
			}
		}
		return a, nil
	}
	var cmd tea.Cmd
	a.searchInput, cmd = a.searchInput.Update(m)
	return a, cmd
}

func (a *App) handlePromptKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.String() {
	case "esc":
		a.promptInput.Blur()
		return a, nil
	case "enter":
		prompt := strings.TrimSpace(a.promptInput.Value())
		if prompt == "" {
			a.status = "enter a prompt"
			return a, nil
		}
		a.promptInput.SetValue("")
		a.promptInput.Blur()
		if strings.HasPrefix(prompt, "/") {
			a.status = a.applyContextCommand(prompt)
			return a, nil
		}
		a.transcript = append(a.transcript, chatEntry{role: "user", text: prompt})
		a.generating = true
		return a, a.generateCmd(prompt)
	}
	var cmd tea.Cmd
	a.promptInput, cmd = a.promptInput.Update(m)
	return a, cmd
}

// applyContextCommand handles the /niche, /platform, /tone, /length, /brand
// and /clear setters typed into the assistant prompt.
func (a *App) applyContextCommand(input string) string {
	cmd, value, _ := strings.Cut(strings.TrimPrefix(input, "/"), " ")
	value = strings.TrimSpace(value)
	switch strings.ToLower(cmd) {
	case "niche":
		a.aiContext.Niche = value
		return "niche set"
	case "platform":
		a.aiContext.Platform = value
		return "platform set"
	case "tone":
		a.aiContext.Tone = value
		return "tone set"
	case "length":
		switch value {
		case "short", "medium", "long":
			a.aiContext.Length = value
			return "length set"
		}
		return "length must be short, medium or long"
	case "brand":
		a.aiContext.Brand = value
		return "brand memory set"
	case "clear":
		a.aiContext = llm.Request{Length: "medium"}
		return "assistant context cleared"
	}
	return "unknown command: /" + cmd
}

// ---------------------------------------------------------------------------
// Filter cycling helpers
// ---------------------------------------------------------------------------

func (a *App) options() dash.Options {
	return dash.BuildOptions(a.snapshot.Items)
}

// cycleMonth steps through the available months; changing month drops the
// day selection immediately rather than waiting for the engine to heal it.
func (a *App) cycleMonth(step int) {
	months := a.options().Months
	if len(months) == 0 {
		return
	}
	cur := a.view.Month
	idx := -1
	for i, mth := range months {
		if mth == cur {
			idx = i
			break
		}
	}
	if idx < 0 {
		idx = len(months) - 1
	} else {
		idx = (idx + step + len(months)) % len(months)
	}
	a.view.Month = months[idx]
	a.view.Day = ""
	a.itemCursor, a.dayCursor = 0, 0
}

// cycleOption steps through "" (all) followed by the given values.
func cycleOption(values []string, current string, step int) string {
	all := append([]string{""}, values...)
	idx := 0
	for i, v := range all {
		if v == current {
			idx = i
			break
		}
	}
	idx = (idx + step + len(all)) % len(all)
	return all[idx]
}

func cycleStatusToken(current string) string {
	tokens := []string{
		content.TokenAll,
		content.TokenCompleted,
		content.TokenInProgress,
		content.TokenPending,
		content.TokenOther,
	}
	for i, tok := range tokens {
		if tok == current {
			return tokens[(i+1)%len(tokens)]
		}
	}
	return content.TokenAll
}

func nextTab(cur appTab, step int) appTab {
	for i, t := range tabOrder {
		if t == cur {
			return tabOrder[(i+step+len(tabOrder))%len(tabOrder)]
		}
	}
	return tabOrder[0]
}

// ---------------------------------------------------------------------------
// Commands
// ---------------------------------------------------------------------------

func (a *App) fetchCmd() tea.Cmd {
	return func() tea.Msg {
		snap, err := a.client.Fetch(a.ctx)
		if err != nil {
			return errMsg{err}
		}
		return snapshotMsg(snap)
	}
}

func (a *App) exportCmd() tea.Cmd {
	res := a.derived()
	rows := res.Rows
	view := a.view
	return func() tea.Msg {
		data, err := dash.ExportCSV(rows, view.Sort)
		if err != nil {
			return errMsg{err}
		}
		name := dash.ExportFilename(view.Month, view.Day)
		dir, err := os.Getwd()
		if err != nil {
			dir = "."
		}
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return errMsg{fmt.Errorf("write export: %w", err)}
		}
		return exportedMsg{path: path}
	}
}

func (a *App) generateCmd(prompt string) tea.Cmd {
	req := a.aiContext
	req.Mode = llm.Modes[a.aiModeIdx]
	req.Prompt = prompt
	return func() tea.Msg {
		text, err := a.provider.Generate(a.ctx, req)
		if err != nil {
			return errMsg{err}
		}
		return generatedMsg{text: text}
	}
}

// messages
type snapshotMsg sheets.Snapshot

type statusMsg string

type errMsg struct{ error }

type exportedMsg struct{ path string }

type generatedMsg struct{ text string }
