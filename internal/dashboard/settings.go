package dashboard

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/huh"
)

// preferences are the values the settings form edits. The form holds
// pointers into it, so it lives behind a pointer in the model.
type preferences struct {
	SatelliteTelemetry bool
}

func newSettingsForm(p *preferences) *huh.Form {
	keys := huh.NewDefaultKeyMap()
	keys.Quit = key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close"))

	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Show satellite count while driving?").
				Description("Replaces VEHICLE ONLINE with the GNSS satellite count").
				Affirmative("Show").
				Negative("Hide").
				Value(&p.SatelliteTelemetry),
		),
	).
		WithKeyMap(keys).
		WithWidth(settingsWidth).
		WithShowHelp(true)
}
