package cli

import (
	"time"

	"github.com/rileyhilliard/sidebar/internal/hardware"
	"github.com/rileyhilliard/sidebar/internal/logger"
	"github.com/rileyhilliard/sidebar/internal/params"
	"github.com/rileyhilliard/sidebar/internal/ui"
	"github.com/spf13/cobra"
)

var pingDirFlag string

// pingClock is swapped in tests.
var pingClock hardware.Clock = hardware.BootClock{}

var pingCmd = &cobra.Command{
	Use:   "ping",
	Short: "Record a server ping",
	Long: `Write the current boot-relative time to LastAthenaPingTime, as the
uploader does after a successful round trip. A running sidebar shows ONLINE
for the next 70 seconds.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		dir := cfg.Params.Dir
		if pingDirFlag != "" {
			dir = pingDirFlag
		}

		store := params.NewFileStore(dir, logger.Default())
		now := pingClock.SinceBoot()
		if err := store.Put(params.KeyLastAthenaPingTime, float64(now)); err != nil {
			return err
		}
		ui.Success(cmd.OutOrStdout(), "%s = %s since boot", params.KeyLastAthenaPingTime, now.Round(time.Millisecond))
		return nil
	},
}

func init() {
	pingCmd.Flags().StringVar(&pingDirFlag, "dir", "", "params directory (overrides params.dir)")
	rootCmd.AddCommand(pingCmd)
}
