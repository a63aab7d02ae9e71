// Package commands implements the CLI commands for openin.
package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/thoreinstein/openin/cmd"
	"github.com/thoreinstein/openin/internal/config"
	"github.com/thoreinstein/openin/internal/errors"
	"github.com/thoreinstein/openin/internal/logging"
	"github.com/thoreinstein/openin/internal/shell"
)

// verbosity holds the count of -v flags.
var verbosity int

// quiet holds the value of the -q/--quiet flag.
var quiet bool

// logFormat holds the value of the --log-format flag.
var logFormat string

// logFile holds the path to the log file.
var logFile string

// logFileHandle is the open --log-file, closed by closeLogFile.
var logFileHandle *os.File

// configFile holds the value of the --config flag.
var configFile string

// configLoadErr holds any error that occurred during config loading.
var configLoadErr error

// loadedConfig is the configuration read at startup.
var loadedConfig *config.Config

// newRunner builds the process runner commands use. Tests replace it.
var newRunner = func() shell.Runner { return shell.ExecRunner{} }

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v",
		"increase verbosity level (e.g., -v, -vv, -vvv)")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false,
		"suppress non-error output")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "",
		"log format: text, json (default from config, else text)")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "",
		"write logs to file in JSON format")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "",
		"config file (default: <config dir>/openin/config.yaml)")

	rootCmd.Version = cmd.Version
	rootCmd.SetVersionTemplate("openin version {{.Version}}\n")

	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
}

func initConfig() {
	config.Init()
	loadedConfig, configLoadErr = config.Load(configFile)
}

var rootCmd = &cobra.Command{
	Use:   "openin",
	Short: "Open files and folders in your code editor",
	Long: `openin knows the code editors installed on macOS and opens a path,
or the current Finder selection, in the one you choose.

Editors are named by their display name exactly as 'openin list' prints
them, e.g. "Sublime Text" or "Visual Studio Code - Insiders".`,
	Example: `  # Show supported editors and whether they are installed
  openin list --detect

  # Open the current directory in the configured editor
  openin open .

  # Open the Finder selection in Sublime Text
  openin open --editor "Sublime Text"

  # Print the command without running it
  openin script "Sublime Text" ~/project

  See Also: openin config, openin doctor`,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		return setupLogging(cmd)
	},
	PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
		return closeLogFile()
	},
	Run: func(cmd *cobra.Command, _ []string) {
		_ = cmd.Help()
	},
}

// setupLogging configures the default logger based on verbosity flags.
func setupLogging(cmd *cobra.Command) error {
	if quiet && verbosity > 0 {
		return errors.NewUserError(errors.New("cannot use --quiet and --verbose together"), "Pass only one of -q or -v")
	}

	var level slog.Level
	if quiet {
		level = slog.LevelError
	} else {
		v := verbosity
		if v == 0 {
			switch os.Getenv("OPENIN_DEBUG") {
			case "1", "true":
				v = 2
			case "2":
				v = 3
			}
		}
		level = logging.LevelFromVerbosity(v)
	}

	format := logging.Format(logFormat)
	if format == "" && loadedConfig != nil {
		format = logging.Format(loadedConfig.LogFormat)
	}

	opts := &slog.HandlerOptions{Level: level}
	handler := logging.NewFormatHandler(format, cmd.ErrOrStderr(), opts)

	if err := closeLogFile(); err != nil {
		return err
	}
	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return errors.NewUserError(errors.Wrap(err, "opening log file"), "Check the --log-file path")
		}
		logFileHandle = f
		handler = logging.NewFanout(handler, slog.NewJSONHandler(f, opts))
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(logging.NewContext(ctx, logger))

	return nil
}

// closeLogFile closes the --log-file opened by setupLogging, if any.
func closeLogFile() error {
	if logFileHandle == nil {
		return nil
	}
	err := logFileHandle.Close()
	logFileHandle = nil
	return errors.Wrap(err, "closing log file")
}

// requireConfig returns the loaded configuration or a config error.
func requireConfig() (*config.Config, error) {
	if configLoadErr != nil {
		return nil, errors.NewConfigError(configLoadErr)
	}
	if loadedConfig == nil {
		return config.Default(), nil
	}
	return loadedConfig, nil
}

// Main runs the CLI, reports any error on w and returns the exit code.
func Main(w io.Writer) int {
	err := rootCmd.Execute()
	// Post-run hooks are skipped when a command fails.
	_ = closeLogFile()
	if err == nil {
		return errors.ExitSuccess
	}
	printError(w, err)
	return errors.ExitCode(err)
}

func printError(w io.Writer, err error) {
	red := color.New(color.FgRed, color.Bold)
	if !logging.SupportsColor(w) {
		red.DisableColor()
	}
	fmt.Fprintf(w, "%s %v\n", red.Sprint("Error:"), err)

	var exitErr *errors.ExitError
	if errors.As(err, &exitErr) && exitErr.Suggestion != "" {
		fmt.Fprintf(w, "  %s\n", exitErr.Suggestion)
	}
}
