package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/rileyhilliard/sidebar/internal/config"
	"github.com/spf13/cobra"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "sidebar",
	Short: "Vehicle dashboard status sidebar",
	Long: `sidebar shows connectivity, network, temperature, vehicle interface and
battery status in a terminal panel, driven by live or recorded telemetry.

Examples:
  sidebar run
  sidebar replay drive.yaml
  sidebar ping`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default .sidebar.yaml or ~/.config/sidebar/config.yaml)")
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		if isUnknownCommandError(err) {
			fmt.Fprintln(os.Stderr, "Run 'sidebar --help' for usage.")
		}
		os.Exit(1)
	}
}

// loadConfig resolves config for the current invocation.
func loadConfig() (*config.Config, error) {
	return config.LoadOrDefault(cfgFile)
}

func isUnknownCommandError(err error) bool {
	msg := err.Error()
	return strings.HasPrefix(msg, "unknown command") || strings.HasPrefix(msg, "unknown flag")
}
