package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/rileyhilliard/sidebar/internal/config"
	"github.com/rileyhilliard/sidebar/internal/errors"
	"github.com/rileyhilliard/sidebar/internal/ui"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// InitOptions holds options for the init command.
type InitOptions struct {
	Path           string // Where to write; defaults to ./.sidebar.yaml
	Overwrite      bool   // Overwrite existing config without asking
	NonInteractive bool   // Skip prompts, use defaults
	Out            io.Writer
}

var (
	initForce          bool
	initNonInteractive bool
	initGlobal         bool
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a sidebar config file",
	Long: `Write a .sidebar.yaml in the current directory, or the global config with
--global. Prompts for the common settings when run in a terminal.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := InitOptions{
			Overwrite:      initForce,
			NonInteractive: initNonInteractive || !ui.IsTerminal(os.Stdin),
			Out:            cmd.OutOrStdout(),
		}
		if initGlobal {
			home, err := os.UserHomeDir()
			if err != nil {
				return errors.WrapWithCode(err, errors.ErrConfig,
					"Cannot find your home directory",
					"Run init without --global to write .sidebar.yaml here")
			}
			opts.Path = filepath.Join(home, config.GlobalConfigDir, config.GlobalConfigFile)
		}
		return Init(opts)
	},
}

func init() {
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "overwrite an existing config")
	initCmd.Flags().BoolVar(&initNonInteractive, "non-interactive", false, "write defaults without prompting")
	initCmd.Flags().BoolVar(&initGlobal, "global", false, "write ~/.config/sidebar/config.yaml")
	rootCmd.AddCommand(initCmd)
}

// Init creates a new config file.
func Init(opts InitOptions) error {
	out := opts.Out
	if out == nil {
		out = os.Stdout
	}
	path := opts.Path
	if path == "" {
		path = filepath.Join(".", config.ConfigFileName)
	}

	if _, err := os.Stat(path); err == nil && !opts.Overwrite {
		if opts.NonInteractive {
			return errors.New(errors.ErrConfig,
				fmt.Sprintf("Config file already exists: %s", path),
				"Use --force to overwrite")
		}

		var overwrite bool
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewConfirm().
					Title(fmt.Sprintf("Config file '%s' already exists. Overwrite?", path)).
					Value(&overwrite),
			),
		)
		if err := form.Run(); err != nil {
			return errors.WrapWithCode(err, errors.ErrConfig,
				"Failed to get user input",
				"Try running with --force to overwrite")
		}
		if !overwrite {
			ui.Skipped(out, "Cancelled.")
			return nil
		}
	}

	cfg := config.DefaultConfig()
	if !opts.NonInteractive {
		if err := promptConfig(cfg); err != nil {
			return err
		}
	}
	if err := config.Validate(cfg); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to generate config",
			"This shouldn't happen - please report this bug")
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Cannot create config directory",
			"Check permissions on "+filepath.Dir(path))
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to write "+path,
			"Check you have write permission in this directory")
	}

	ui.Success(out, "Created %s", path)
	fmt.Fprintln(out, ui.Muted("  Next: sidebar run"))
	return nil
}

func promptConfig(cfg *config.Config) error {
	frequency := strconv.Itoa(cfg.UI.Frequency)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Satellite telemetry").
				Description("Show the GNSS satellite count instead of VEHICLE ONLINE while driving").
				Options(
					huh.NewOption("Detect from hardware", config.SatelliteAuto),
					huh.NewOption("Always show", config.SatelliteOn),
					huh.NewOption("Never show", config.SatelliteOff),
				).
				Value(&cfg.Hardware.SatelliteTelemetry),
			huh.NewInput().
				Title("UI frequency (Hz)").
				Description("Connectivity is re-checked every 6 seconds at this rate").
				Value(&frequency).
				Validate(validateFrequency),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Params directory").
				Description("Where LastAthenaPingTime is read from").
				Value(&cfg.Params.Dir).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("params directory is required")
					}
					return nil
				}),
			huh.NewInput().
				Title("Telemetry recording (optional)").
				Description("Leave empty to use synthetic telemetry").
				Placeholder("~/drives/commute.yaml").
				Value(&cfg.Telemetry.Replay),
		),
	)

	if err := form.Run(); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to get user input",
			"Check terminal compatibility or use --non-interactive")
	}

	cfg.UI.Frequency, _ = strconv.Atoi(strings.TrimSpace(frequency))
	return nil
}

func validateFrequency(s string) error {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return fmt.Errorf("enter a whole number")
	}
	if n < 1 || n > config.MaxFrequency {
		return fmt.Errorf("must be between 1 and %d", config.MaxFrequency)
	}
	return nil
}
