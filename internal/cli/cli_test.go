package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/require"
)

// execute runs the root command with args and returns everything it printed.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
		resetFlags()
	})

	err := rootCmd.Execute()
	return ansi.Strip(buf.String()), err
}

func resetFlags() {
	cfgFile = ""
	runReplayFlag = ""
	replayFramesFlag = 0
	replayLoopFlag = false
	pingDirFlag = ""
	initForce = false
	initNonInteractive = false
	initGlobal = false
	versionShort = false
}

// writeConfig writes a config that keeps every path inside a temp dir and
// returns the config path and the params dir.
func writeConfig(t *testing.T) (string, string) {
	t.Helper()
	dir := t.TempDir()
	paramsDir := filepath.Join(dir, "params")
	cfg := "version: 1\n" +
		"hardware:\n  satellite_telemetry: \"off\"\n" +
		"params:\n  dir: " + paramsDir + "\n" +
		"output:\n  color: never\n" +
		"log:\n  file: " + filepath.Join(dir, "sidebar.log") + "\n"
	path := filepath.Join(dir, "sidebar.yaml")
	require.NoError(t, os.WriteFile(path, []byte(cfg), 0644))
	return path, paramsDir
}
