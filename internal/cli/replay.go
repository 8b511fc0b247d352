package cli

import (
	"github.com/rileyhilliard/sidebar/internal/dashboard"
	"github.com/rileyhilliard/sidebar/internal/errors"
	"github.com/rileyhilliard/sidebar/internal/logger"
	"github.com/rileyhilliard/sidebar/internal/render"
	"github.com/rileyhilliard/sidebar/internal/ui"
	"github.com/spf13/cobra"
)

var (
	replayFramesFlag int
	replayLoopFlag   bool
)

var replayCmd = &cobra.Command{
	Use:   "replay <file>",
	Short: "Play a recording headlessly",
	Long: `Play a telemetry recording without a terminal UI and print the sidebar
every time it would be redrawn.

Examples:
  sidebar replay drive.yaml
  sidebar replay drive.yaml --loop --frames 2400`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if replayLoopFlag && replayFramesFlag <= 0 {
			return errors.New(errors.ErrTelemetry,
				"--loop never ends without a frame limit",
				"Add --frames N, e.g. --frames 2400 for two minutes at 20 Hz")
		}

		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		render.ConfigureColor(cfg.Output.Color)

		log := logger.Default()
		source, err := newSource(cfg, args[0], replayLoopFlag, log)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		paints, err := dashboard.RunHeadless(out, newPanelState(cfg, log), source, render.New(), replayFramesFlag)
		if err != nil {
			return err
		}
		ui.Success(out, "%d redraws", paints)
		return nil
	},
}

func init() {
	replayCmd.Flags().IntVar(&replayFramesFlag, "frames", 0, "stop after this many frames (0 plays to the end)")
	replayCmd.Flags().BoolVar(&replayLoopFlag, "loop", false, "restart the recording when it ends (requires --frames)")
	rootCmd.AddCommand(replayCmd)
}
