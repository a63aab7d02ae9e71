package commands

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/thoreinstein/openin/internal/shell"
	"github.com/thoreinstein/openin/internal/shell/mocks"
)

// isolate points config lookups at an empty temp directory and resets
// command state left over from earlier runs.
func isolate(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	t.Setenv("OPENIN_CONFIG_DIR", dir)
	t.Setenv("OPENIN_EDITOR", "")
	t.Setenv("OPENIN_DEBUG", "")
	t.Setenv("HOME", dir)
	t.Setenv("NO_COLOR", "1")
	t.Chdir(t.TempDir())

	verbosity, quiet = 0, false
	logFormat, logFile, configFile = "", "", ""
	listJSON, listDetect, showJSON, showByID = false, false, false, false
	scriptAppleScript = false
	openEditor, openDryRun = "", false
	pickSave, pickInstalled = false, false
	configListFormat = "yaml"
	doctorJSON, doctorAll = false, false
	genDocDir, genDocFormat = "", "markdown"

	resetChanged(rootCmd)

	origLogger := slog.Default()
	t.Cleanup(func() {
		_ = closeLogFile()
		slog.SetDefault(origLogger)
	})

	viper.Reset()
	t.Cleanup(viper.Reset)
	return dir
}

// resetChanged clears the Changed mark pflag keeps between executions.
func resetChanged(c *cobra.Command) {
	unset := func(f *pflag.Flag) { f.Changed = false }
	c.Flags().VisitAll(unset)
	c.PersistentFlags().VisitAll(unset)
	for _, sub := range c.Commands() {
		resetChanged(sub)
	}
}

// withRunner installs a mock runner for the duration of the test.
func withRunner(t *testing.T) *mocks.MockRunner {
	t.Helper()

	r := mocks.NewMockRunner(t)
	orig := newRunner
	newRunner = func() shell.Runner { return r }
	t.Cleanup(func() { newRunner = orig })
	return r
}

// execute runs the root command with args and returns what it wrote to stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.ExecuteContext(t.Context())
	return out.String(), err
}
