package cli

import (
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rileyhilliard/sidebar/internal/config"
	"github.com/rileyhilliard/sidebar/internal/dashboard"
	"github.com/rileyhilliard/sidebar/internal/errors"
	"github.com/rileyhilliard/sidebar/internal/logger"
	"github.com/rileyhilliard/sidebar/internal/render"
	"github.com/rileyhilliard/sidebar/internal/ui"
	"github.com/spf13/cobra"
)

var runReplayFlag string

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Show the sidebar dashboard",
	Long: `Open the full-screen sidebar. Telemetry comes from --replay, then
telemetry.replay in the config, then the synthetic generator.

Click the settings button or press 's' to change display settings.

Examples:
  sidebar run
  sidebar run --replay drive.yaml`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		return runDashboard(cfg, runReplayFlag)
	},
}

func init() {
	runCmd.Flags().StringVar(&runReplayFlag, "replay", "", "recording to play instead of telemetry.replay")
	rootCmd.AddCommand(runCmd)
}

func runDashboard(cfg *config.Config, replay string) error {
	if !ui.IsTerminal(os.Stdout) {
		return errors.New(errors.ErrUI,
			"sidebar run needs an interactive terminal",
			"Use 'sidebar replay <file>' to print redraws without a terminal")
	}

	logFile, err := tea.LogToFile(cfg.Log.File, "sidebar")
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrUI,
			"Cannot open log file "+cfg.Log.File,
			"Set log.file in your config to a writable path")
	}
	defer logFile.Close()

	log := logger.NewEnvLogger("sidebar")
	logger.SetDefault(log)
	render.ConfigureColor(cfg.Output.Color)

	if replay == "" {
		replay = cfg.Telemetry.Replay
	}
	source, err := newSource(cfg, replay, cfg.Telemetry.Loop, log)
	if err != nil {
		return err
	}

	model := dashboard.NewModel(dashboard.Options{
		State:    newPanelState(cfg, log),
		Source:   source,
		Renderer: render.New(),
		Log:      log,
	})

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return errors.WrapWithCode(err, errors.ErrUI,
			"Dashboard exited with an error",
			"See "+cfg.Log.File+" for details")
	}
	return nil
}
