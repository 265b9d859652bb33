package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/jask/contentdeck/internal/content"
	"github.com/jask/contentdeck/internal/dash"
	"github.com/jask/contentdeck/internal/llm"
)

func (a *App) View() string {
	res := a.derived()

	var body string
	switch a.tab {
	case tabCalendar:
		body = a.renderCalendar(res)
	case tabItems:
		body = a.renderItems(res)
	case tabAssistant:
		body = a.renderAssistant()
	default:
		body = a.renderDashboard(res)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		a.renderHeader(),
		a.renderFilterBar(res),
		body,
		a.renderFooter(),
	)
}

// ---------------------------------------------------------------------------
// Chrome
// ---------------------------------------------------------------------------

func accentFor(theme string) lipgloss.Color {
	if theme == "latte" {
		return colorBlue
	}
	return colorAccent
}

func (a *App) renderHeader() string {
	accent := accentFor(a.view.Theme)
	title := titleStyle.Foreground(accent).Render("ContentDeck")

	var tabs []string
	for _, t := range tabOrder {
		label := strings.ToUpper(string(t)[:1]) + string(t)[1:]
		if t == a.tab {
			tabs = append(tabs, tabActiveStyle.Background(accent).Render(label))
		} else {
			tabs = append(tabs, tabStyle.Render(label))
		}
	}
	line := lipgloss.JoinHorizontal(lipgloss.Center, tabs...)

	month := mutedStyle.Render(content.MonthLabel(a.view.Month))
	return lipgloss.JoinHorizontal(lipgloss.Center, title, "  ", line, "  ", month)
}

func (a *App) renderFilterBar(res dash.FilterResult) string {
	var parts []string
	add := func(label, value string, color lipgloss.Color) {
		if value == "" {
			return
		}
		parts = append(parts, labelStyle.Render(label+":")+lipgloss.NewStyle().Foreground(color).Render(value))
	}
	add("creator", a.view.Creator, colorSapphire)
	add("platform", a.view.Platform, colorMauve)
	add("status", a.view.Status, StatusColor(a.view.Status))
	add("search", a.view.Search, colorTeal)
	if a.view.Day != "" {
		add("day", a.view.Day, colorPeach)
	}
	add("sort", a.view.Sort, colorOverlay1)

	bar := mutedStyle.Render(fmt.Sprintf("%d items", len(res.Rows)))
	if len(parts) > 0 {
		bar += "  " + strings.Join(parts, "  ")
	}
	if res.DayCleared {
		bar += "  " + warnStyle.Render("day selection cleared (outside month)")
	}
	if a.loading {
		bar += "  " + warnStyle.Render("refreshing...")
	}
	return bar
}

func (a *App) renderFooter() string {
	help := "[tab] switch  [ ] month  [c]reator  [p]latform  [f] status  [/] search  [s]ort  [+/-] target  [e]xport  [r]efresh  [x] reset  [q]uit"
	out := helpStyle.Render(help)
	if a.status != "" {
		style := labelStyle
		if strings.HasPrefix(a.status, "error") {
			style = errorStyle
		}
		out += "\n" + style.Render(a.status)
	}
	return out
}

// ---------------------------------------------------------------------------
// Dashboard tab
// ---------------------------------------------------------------------------

func (a *App) renderDashboard(res dash.FilterResult) string {
	rows := res.Rows
	tally := dash.CountStatuses(rows)
	pacing := dash.TargetPacing(tally.Total, a.view.Target, a.view.Month, time.Now())
	consistency := dash.ConsistencyFor(rows, a.view.Month)
	health := dash.ClassifyHealth(tally)

	cards := lipgloss.JoinHorizontal(lipgloss.Top,
		card("Total", fmt.Sprintf("%d", tally.Total), mutedStyle.Render(fmt.Sprintf("%.1f/day avg", dash.PerDayAverage(tally.Total, a.view.Month)))),
		card("Done", fmt.Sprintf("%d", tally.Completed), okStyle.Render(fmt.Sprintf("%d%%", tally.CompletedPct))),
		card("In Edit", fmt.Sprintf("%d", tally.InProgress), warnStyle.Render(fmt.Sprintf("%d%%", tally.InProgressPct))),
		card("Pending", fmt.Sprintf("%d", tally.Pending), errorStyle.Render(fmt.Sprintf("%d%%", tally.PendingPct))),
	)

	healthStyle := okStyle
	switch health {
	case dash.HealthBacklogRisk:
		healthStyle = errorStyle
	case dash.HealthMixed, dash.HealthNoData:
		healthStyle = warnStyle
	}
	statusLines := []string{
		labelStyle.Render("Pacing      ") + cardValueStyle.Render(pacing.Label(tally.Total)),
		labelStyle.Render("Consistency ") + cardValueStyle.Render(consistency.Label()),
		labelStyle.Render("Health      ") + healthStyle.Render(health.Label(tally)),
	}

	left := lipgloss.JoinVertical(lipgloss.Left,
		cardTitleStyle.Render("Creators"),
		a.renderLeaderboard(rows),
		"",
		cardTitleStyle.Render("Platforms"),
		renderBreakdown(dash.PlatformBreakdown(rows), colorMauve),
	)
	right := lipgloss.JoinVertical(lipgloss.Left,
		cardTitleStyle.Render("Statuses"),
		renderBreakdown(dash.StatusBreakdown(rows), colorSapphire),
		"",
		cardTitleStyle.Render("Video Types"),
		renderBreakdown(dash.VideoTypeBreakdown(rows), colorTeal),
	)
	columns := lipgloss.JoinHorizontal(lipgloss.Top,
		lipgloss.NewStyle().MarginRight(4).Render(left), right)

	return lipgloss.JoinVertical(lipgloss.Left,
		cards,
		strings.Join(statusLines, "\n"),
		"",
		columns,
		"",
		a.renderInsights(rows),
	)
}

func card(title, value, sub string) string {
	inner := lipgloss.JoinVertical(lipgloss.Left,
		cardTitleStyle.Render(title),
		cardValueStyle.Render(value)+" "+sub,
	)
	return cardStyle.Render(inner)
}

func (a *App) renderLeaderboard(rows []content.Item) string {
	entries := dash.CreatorLeaderboard(rows)
	if len(entries) == 0 {
		return mutedStyle.Render("  no creators")
	}
	var b strings.Builder
	for i, e := range entries {
		if i >= 8 {
			fmt.Fprintf(&b, "  %s\n", mutedStyle.Render(fmt.Sprintf("+%d more", len(entries)-i)))
			break
		}
		fmt.Fprintf(&b, "  %-18s %s %s\n",
			e.Creator,
			okStyle.Render(fmt.Sprintf("%d/%d done", e.Completed, e.Total)),
			mutedStyle.Render(fmt.Sprintf("%d%%", e.SharePct)))
	}
	return strings.TrimRight(b.String(), "\n")
}

func renderBreakdown(entries []dash.BreakdownEntry, color lipgloss.Color) string {
	if len(entries) == 0 {
		return mutedStyle.Render("  no data")
	}
	barStyle := lipgloss.NewStyle().Foreground(color)
	var b strings.Builder
	for i, e := range entries {
		if i >= 6 {
			fmt.Fprintf(&b, "  %s\n", mutedStyle.Render(fmt.Sprintf("+%d more", len(entries)-i)))
			break
		}
		width := e.SharePct / 5 // 20 cells at 100%
		fmt.Fprintf(&b, "  %-14s %s %d (%d%%)\n",
			e.Key, barStyle.Render(strings.Repeat("█", width)), e.Count, e.SharePct)
	}
	return strings.TrimRight(b.String(), "\n")
}

func (a *App) renderInsights(rows []content.Item) string {
	ins, ok := dash.BuildInsights(rows)
	if !ok {
		return mutedStyle.Render(dash.SummaryText(rows, a.view))
	}
	riskStyle := okStyle
	switch ins.Risk {
	case dash.RiskHigh:
		riskStyle = errorStyle
	case dash.RiskMedium:
		riskStyle = warnStyle
	}
	line := fmt.Sprintf("Top: %s (%d done) • %s (%d) • %.1f done/active day • ",
		ins.TopCreator, ins.TopCreatorDone, ins.TopPlatform, ins.TopPlatformCount, ins.Velocity)
	return lipgloss.JoinVertical(lipgloss.Left,
		cardTitleStyle.Render("Insights"),
		"  "+labelStyle.Render(line)+riskStyle.Render("risk "+ins.Risk.String()),
		"  "+mutedStyle.Render(dash.SummaryText(rows, a.view)),
	)
}

// ---------------------------------------------------------------------------
// Calendar tab
// ---------------------------------------------------------------------------

func (a *App) renderCalendar(res dash.FilterResult) string {
	grid := dash.Calendar(res.Rows, dash.MonthRows(a.snapshot.Items, a.view.Month), a.view.Month)
	if len(grid.Days) == 0 {
		return mutedStyle.Render("no calendar for " + a.view.Month)
	}

	header := "  Mon  Tue  Wed  Thu  Fri  Sat  Sun"
	var b strings.Builder
	b.WriteString(labelStyle.Render(header) + "\n")

	col := 0
	for i := 0; i < grid.LeadingBlanks; i++ {
		b.WriteString("     ")
		col++
	}
	for i, cell := range grid.Days {
		text := fmt.Sprintf(" %2d ", cell.Day)
		style := lipgloss.NewStyle().Foreground(colorText).Background(HeatColor(cell.Intensity))
		if cell.Intensity <= 0 {
			style = lipgloss.NewStyle().Foreground(colorOverlay0)
		}
		switch {
		case a.view.Day == cell.Key:
			style = selectStyle
		case i == a.dayCursor:
			style = style.Underline(true).Bold(true)
		}
		b.WriteString(style.Render(text) + " ")
		col++
		if col == 7 {
			b.WriteString("\n")
			col = 0
		}
	}
	out := strings.TrimRight(b.String(), "\n")

	cursorKey := grid.Days[min(a.dayCursor, len(grid.Days)-1)].Key
	day := dash.DayStatuses(res.Rows, cursorKey)
	detail := fmt.Sprintf("%s — %s %s %s %s",
		cursorKey,
		okStyle.Render(fmt.Sprintf("%d done", day.Completed)),
		warnStyle.Render(fmt.Sprintf("%d in edit", day.InProgress)),
		errorStyle.Render(fmt.Sprintf("%d pending", day.Pending)),
		mutedStyle.Render(fmt.Sprintf("%d other", day.Other)))

	return lipgloss.JoinVertical(lipgloss.Left,
		out,
		"",
		detail,
		helpStyle.Render("[arrows] move  [enter] select/clear day  [esc] clear"),
	)
}

// ---------------------------------------------------------------------------
// Items tab
// ---------------------------------------------------------------------------

func (a *App) renderItems(res dash.FilterResult) string {
	rows := dash.SortRows(res.Rows, a.view.Sort)
	if len(rows) == 0 {
		return mutedStyle.Render("no items for these filters")
	}
	if a.itemCursor >= len(rows) {
		a.itemCursor = len(rows) - 1
	}

	var b strings.Builder
	head := fmt.Sprintf("  %-10s %-14s %-12s %-10s %-28s %-6s", "Date", "Creator", "Platform", "Status", "Topic", "Script")
	b.WriteString(labelStyle.Render(head) + "\n")
	for i, it := range rows {
		script := mutedStyle.Render("—")
		if scriptReady(it.ScriptLink) {
			script = okStyle.Render("ready")
		}
		line := fmt.Sprintf("%-10s %-14s %-12s %-10s %-28s %-6s",
			content.FormatDate(it.Date),
			truncate(it.CreatorLabel(), 14),
			truncate(it.PlatformLabel(), 12),
			truncate(it.Status, 10),
			truncate(it.Topic, 28),
			script)
		if i == a.itemCursor {
			b.WriteString(selectStyle.Render("▶ "+line) + "\n")
		} else {
			statusStyle := lipgloss.NewStyle().Foreground(statusClassColor(it.Status))
			b.WriteString("  " + statusStyle.Render(line) + "\n")
		}
	}

	sel := rows[a.itemCursor]
	detail := mutedStyle.Render("caption: "+orDash(sel.Caption)) + "\n" +
		mutedStyle.Render("script:  "+orDash(shortLink(sel.ScriptLink))+"   location: "+orDash(sel.Location)+"   type: "+orDash(sel.VideoType))

	return lipgloss.JoinVertical(lipgloss.Left,
		strings.TrimRight(b.String(), "\n"),
		"",
		detail,
	)
}

func statusClassColor(status string) lipgloss.Color {
	switch content.ClassOf(status) {
	case content.ClassCompleted:
		return colorSuccess
	case content.ClassInProgress:
		return colorWarning
	case content.ClassPending:
		return colorRed
	default:
		return colorText
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	if n <= 1 {
		return s[:n]
	}
	return s[:n-1] + "…"
}

func orDash(s string) string {
	if s == "" {
		return "—"
	}
	return s
}

// scriptReady reports whether the script column holds a usable value: a
// literal yes or anything link-shaped.
func scriptReady(s string) bool {
	s = strings.ToLower(strings.TrimSpace(s))
	return s == "yes" || strings.HasPrefix(s, "http")
}

// shortLink truncates long URLs for the detail line.
func shortLink(s string) string {
	if !strings.HasPrefix(strings.ToLower(s), "http") || len(s) <= 48 {
		return s
	}
	return s[:47] + "…"
}

// ---------------------------------------------------------------------------
// Assistant tab
// ---------------------------------------------------------------------------

func (a *App) renderAssistant() string {
	mode := llm.Modes[a.aiModeIdx]
	header := labelStyle.Render("mode: ") + cardValueStyle.Render(mode) +
		"  " + mutedStyle.Render("provider: "+a.provider.Name())

	var ctxParts []string
	addCtx := func(label, v string) {
		if v != "" {
			ctxParts = append(ctxParts, label+"="+v)
		}
	}
	addCtx("niche", a.aiContext.Niche)
	addCtx("platform", a.aiContext.Platform)
	addCtx("tone", a.aiContext.Tone)
	addCtx("length", a.aiContext.Length)
	addCtx("brand", truncate(a.aiContext.Brand, 30))
	ctxLine := mutedStyle.Render("context: " + strings.Join(ctxParts, "  "))

	var chat strings.Builder
	if len(a.transcript) == 0 {
		chat.WriteString(mutedStyle.Render("no messages yet — press enter to type a prompt") + "\n")
	}
	for _, entry := range a.transcript {
		if entry.role == "user" {
			chat.WriteString(lipgloss.NewStyle().Foreground(colorSapphire).Render("you: "+entry.text) + "\n")
		} else {
			chat.WriteString(labelStyle.Render(entry.text) + "\n")
		}
	}
	if a.generating {
		chat.WriteString(warnStyle.Render("generating...") + "\n")
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		ctxLine,
		"",
		strings.TrimRight(chat.String(), "\n"),
		"",
		a.promptInput.View(),
		helpStyle.Render("[m] mode  [enter] prompt  /niche /platform /tone /length /brand /clear set context"),
	)
}
