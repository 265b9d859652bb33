package tui

import "github.com/charmbracelet/lipgloss"

// ---------------------------------------------------------------------------
// Catppuccin Mocha palette — true-color hex values
// https://catppuccin.com/palette
// ---------------------------------------------------------------------------

const (
	colorRosewater lipgloss.Color = "#f5e0dc"
	colorFlamingo  lipgloss.Color = "#f2cdcd"
	colorPink      lipgloss.Color = "#f5c2e7"
	colorMauve     lipgloss.Color = "#cba6f7"
	colorRed       lipgloss.Color = "#f38ba8"
	colorMaroon    lipgloss.Color = "#eba0ac"
	colorPeach     lipgloss.Color = "#fab387"
	colorYellow    lipgloss.Color = "#f9e2af"
	colorGreen     lipgloss.Color = "#a6e3a1"
	colorTeal      lipgloss.Color = "#94e2d5"
	colorSky       lipgloss.Color = "#89dceb"
	colorSapphire  lipgloss.Color = "#74c7ec"
	colorBlue      lipgloss.Color = "#89b4fa"
	colorLavender  lipgloss.Color = "#b4befe"

	colorText     lipgloss.Color = "#cdd6f4"
	colorSubtext1 lipgloss.Color = "#bac2de"
	colorSubtext0 lipgloss.Color = "#a6adc8"
	colorOverlay1 lipgloss.Color = "#7f849c"
	colorOverlay0 lipgloss.Color = "#6c7086"
	colorSurface2 lipgloss.Color = "#585b70"
	colorSurface1 lipgloss.Color = "#45475a"
	colorSurface0 lipgloss.Color = "#313244"
	colorBase     lipgloss.Color = "#1e1e2e"
)

// ---------------------------------------------------------------------------
// Semantic color aliases
// ---------------------------------------------------------------------------

const (
	colorAccent  = colorPink
	colorFocus   = colorLavender
	colorSuccess = colorGreen
	colorError   = colorRed
	colorWarning = colorYellow
	colorInfo    = colorTeal
)

// heatRamp orders the calendar heat colors from coolest to hottest. Intensity
// in [0,1] indexes into it; zero-count days render on the surface color.
var heatRamp = []lipgloss.Color{colorSurface1, colorTeal, colorGreen, colorYellow, colorPeach, colorRed}

// HeatColor maps a normalized intensity to its ramp color.
func HeatColor(intensity float64) lipgloss.Color {
	if intensity <= 0 {
		return colorSurface0
	}
	idx := int(intensity * float64(len(heatRamp)))
	if idx >= len(heatRamp) {
		idx = len(heatRamp) - 1
	}
	return heatRamp[idx]
}

// StatusColor maps a status-filter token to its accent.
func StatusColor(token string) lipgloss.Color {
	switch token {
	case "completed":
		return colorSuccess
	case "in-progress":
		return colorWarning
	case "pending":
		return colorError
	default:
		return colorSubtext0
	}
}

// ---------------------------------------------------------------------------
// Styles
// ---------------------------------------------------------------------------

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)

	tabStyle       = lipgloss.NewStyle().Padding(0, 1).Foreground(colorSubtext0)
	tabActiveStyle = lipgloss.NewStyle().Padding(0, 1).Bold(true).Foreground(colorBase).Background(colorAccent)

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorSurface2).
			Padding(0, 1)

	cardTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(colorLavender)
	cardValueStyle = lipgloss.NewStyle().Bold(true).Foreground(colorText)

	mutedStyle  = lipgloss.NewStyle().Foreground(colorOverlay1)
	labelStyle  = lipgloss.NewStyle().Foreground(colorSubtext1)
	errorStyle  = lipgloss.NewStyle().Foreground(colorError)
	okStyle     = lipgloss.NewStyle().Foreground(colorSuccess)
	warnStyle   = lipgloss.NewStyle().Foreground(colorWarning)
	selectStyle = lipgloss.NewStyle().Bold(true).Foreground(colorBase).Background(colorFocus)

	helpStyle = lipgloss.NewStyle().Foreground(colorOverlay0)
)
