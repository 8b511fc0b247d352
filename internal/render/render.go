// Package render draws a panel snapshot as a fixed-width terminal sidebar.
// It only reads snapshots; it never touches panel state.
package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rileyhilliard/sidebar/internal/panel"
	"github.com/rileyhilliard/sidebar/internal/status"
)

// Geometry, in terminal cells.
const (
	Width              = 30
	leftMargin         = 1
	settingsInnerWidth = 16
	metricInnerWidth   = 24
	batteryCells       = 6
)

// signalIcons is indexed by signal strength.
var signalIcons = [5][4]bool{
	{false, false, false, false},
	{true, false, false, false},
	{true, true, false, false},
	{true, true, true, false},
	{true, true, true, true},
}

var signalBars = [4]string{"▂", "▄", "▆", "█"}

// batteryIcons is indexed by the snapshot's battery icon variant.
var batteryIcons = [2]string{" ", "⚡"}

// Layout is where interactive regions land on screen, in panel-local cells.
type Layout struct {
	Settings panel.Rect
}

// Renderer turns snapshots into text.
type Renderer struct{}

// New returns a renderer.
func New() Renderer {
	return Renderer{}
}

// Layout returns the fixed regions of the sidebar. The settings button is
// always the first block, so its position never depends on the snapshot.
func (Renderer) Layout() Layout {
	return Layout{
		Settings: panel.Rect{X: leftMargin, Y: 0, W: settingsInnerWidth + 2, H: 3},
	}
}

// Render draws snap. The battery/IP region is omitted entirely when the
// snapshot has no battery reading; nothing else is ever suppressed.
func (r Renderer) Render(snap panel.Snapshot) string {
	blocks := []string{
		indentStyle.Render(settingsStyle.Render("⚙ SETTINGS")),
		"",
		indentStyle.Render(r.networkRow(snap)),
	}
	if snap.ShowBattery() {
		blocks = append(blocks, indentStyle.Render(labelStyle.Render(snap.IPAddress)))
	}
	blocks = append(blocks,
		"",
		indentStyle.Render(r.metric("TEMP", fmt.Sprintf("%d°C", snap.TemperatureC), snap.TemperatureSeverity)),
		indentStyle.Render(r.metric(snap.InterfaceLabel, "", snap.InterfaceSeverity)),
		indentStyle.Render(r.metric("CONNECT\n"+snap.ConnectivityLabel, "", snap.ConnectivitySeverity)),
		"",
		indentStyle.Render(mutedStyle.Render("⌂ HOME")),
	)
	return lipgloss.JoinVertical(lipgloss.Left, blocks...)
}

func (r Renderer) networkRow(snap panel.Snapshot) string {
	row := signal(snap.SignalIcon) + " " + labelStyle.Render(fmt.Sprintf("%-4s", snap.NetworkLabel))
	if snap.ShowBattery() {
		row += "  " + battery(snap.BatteryIcon, snap.BatteryPercent)
	}
	return row
}

func signal(icon int) string {
	var b strings.Builder
	for i, on := range signalIcons[icon] {
		if on {
			b.WriteString(signalOnStyle.Render(signalBars[i]))
		} else {
			b.WriteString(signalOffStyle.Render(signalBars[i]))
		}
	}
	return b.String()
}

func battery(icon, percent int) string {
	filled := percent * batteryCells / 100
	if filled > batteryCells {
		filled = batteryCells
	}
	bar := batteryFillStyle.Render(strings.Repeat("█", filled)) +
		batteryEmptyStyle.Render(strings.Repeat("░", batteryCells-filled))
	return batteryIcons[icon] + "▕" + bar + "▏" + labelStyle.Render(fmt.Sprintf("%d%%", percent))
}

// metric draws a card. With a value the value sits above the label;
// otherwise the (possibly multi-line) label is centred.
func (r Renderer) metric(label, value string, sev status.Severity) string {
	style := metricStyle.BorderLeftForeground(SeverityColor(sev))
	if value == "" {
		return style.Align(lipgloss.Center).Render(labelStyle.Render(label))
	}
	return style.Render(valueStyle.Render(value) + "\n" + labelStyle.Render(label))
}
