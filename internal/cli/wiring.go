package cli

import (
	"github.com/rileyhilliard/sidebar/internal/config"
	"github.com/rileyhilliard/sidebar/internal/hardware"
	"github.com/rileyhilliard/sidebar/internal/logger"
	"github.com/rileyhilliard/sidebar/internal/panel"
	"github.com/rileyhilliard/sidebar/internal/params"
	"github.com/rileyhilliard/sidebar/internal/status"
	"github.com/rileyhilliard/sidebar/internal/telemetry"
)

// newPanelState builds the panel and its classifier collaborators from cfg.
func newPanelState(cfg *config.Config, log logger.Logger) *panel.State {
	classifier := status.Classifier{
		Params:       params.NewFileStore(cfg.Params.Dir, log),
		Capabilities: cfg.Hardware.Capabilities(),
		Clock:        hardware.BootClock{},
	}
	return panel.New(classifier, panel.NewCadence(cfg.UI.Frequency), log)
}

// newSource returns the replay named by path, or the synthetic generator
// when path is empty.
func newSource(cfg *config.Config, path string, loop bool, log logger.Logger) (telemetry.Source, error) {
	if path == "" {
		log.Info("no recording configured, using synthetic telemetry")
		return telemetry.NewSynthetic(cfg.UI.Frequency), nil
	}
	rec, err := telemetry.LoadRecording(path)
	if err != nil {
		return nil, err
	}
	log.Info("replaying %s (%d cycles, loop=%t)", path, rec.TotalCycles(), loop)
	return telemetry.NewReplay(rec, loop, log), nil
}
