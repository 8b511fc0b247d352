package render

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/rileyhilliard/sidebar/internal/status"
)

// Sidebar palette, matched to the in-car display.
const (
	ColorBackground = lipgloss.Color("#393939")
	ColorBorder     = lipgloss.Color("#8C8C8C")
	ColorText       = lipgloss.Color("#FFFFFF")
	ColorMuted      = lipgloss.Color("#A6A6A6")

	ColorGood    = lipgloss.Color("#FFFFFF")
	ColorWarning = lipgloss.Color("#DACA25")
	ColorDanger  = lipgloss.Color("#C92231")

	ColorBatteryFill = lipgloss.Color("#149948")
)

// SeverityColor returns the strip colour for a severity tier.
func SeverityColor(sev status.Severity) lipgloss.Color {
	switch sev {
	case status.Good:
		return ColorGood
	case status.Warning:
		return ColorWarning
	default:
		return ColorDanger
	}
}

// metricBorder is a rounded border with a heavy left edge that carries the
// severity colour.
var metricBorder = func() lipgloss.Border {
	b := lipgloss.RoundedBorder()
	b.Left = "┃"
	return b
}()

var (
	settingsStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Foreground(ColorText).
			Align(lipgloss.Center).
			Width(settingsInnerWidth)

	metricStyle = lipgloss.NewStyle().
			Border(metricBorder).
			BorderForeground(ColorBorder).
			Foreground(ColorText).
			Padding(0, 1).
			Width(metricInnerWidth)

	valueStyle = lipgloss.NewStyle().
			Foreground(ColorText).
			Bold(true)

	labelStyle = lipgloss.NewStyle().
			Foreground(ColorText)

	mutedStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	signalOnStyle  = lipgloss.NewStyle().Foreground(ColorText)
	signalOffStyle = lipgloss.NewStyle().Foreground(ColorBorder)

	batteryFillStyle  = lipgloss.NewStyle().Foreground(ColorBatteryFill)
	batteryEmptyStyle = lipgloss.NewStyle().Foreground(ColorBorder)

	indentStyle = lipgloss.NewStyle().MarginLeft(leftMargin)
)

// ColorMode values accepted by ConfigureColor.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// ConfigureColor sets the global lipgloss colour profile. "auto" leaves
// terminal detection alone.
func ConfigureColor(mode string) {
	switch mode {
	case ColorAlways:
		lipgloss.SetColorProfile(termenv.TrueColor)
	case ColorNever:
		lipgloss.SetColorProfile(termenv.Ascii)
	}
}
