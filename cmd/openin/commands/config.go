package commands

import (
	"fmt"
	"io"
	"os"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/thoreinstein/openin/internal/config"
	"github.com/thoreinstein/openin/internal/errors"
	"github.com/thoreinstein/openin/internal/paths"
	"github.com/thoreinstein/openin/internal/shell"
)

var configListFormat string

func init() {
	configListCmd.Flags().StringVar(&configListFormat, "format", "yaml", "output format: yaml, toml")
	configCmd.Flags().StringVar(&configListFormat, "format", "yaml", "output format: yaml, toml")
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configListCmd)
	configCmd.AddCommand(configEditCmd)
	configCmd.AddCommand(configPathCmd)
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage openin configuration",
	Long: `Manage openin configuration stored in <config dir>/openin/config.yaml.

Without a subcommand, lists all configuration values.`,
	Example: `  # List all configuration
  openin config

  # Set the default editor
  openin config set editor "Sublime Text"

See Also: openin pick, openin doctor`,
	RunE: runConfigList,
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Get a configuration value",
	Args:  cobra.ExactArgs(1),
	RunE:  runConfigGet,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Long: `Set a configuration value and write the config file.

The editor value must be a display name exactly as 'openin list' prints it.`,
	Example: `  openin config set editor "Visual Studio Code - Insiders"
  openin config set log_format json`,
	Args: cobra.ExactArgs(2),
	RunE: runConfigSet,
}

var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all configuration",
	Args:  cobra.NoArgs,
	RunE:  runConfigList,
}

var configEditCmd = &cobra.Command{
	Use:   "edit",
	Short: "Open configuration in $EDITOR",
	Long: `Open the configuration file in your terminal editor.

Uses $EDITOR, then $VISUAL, then nano, then vi. The file is created with the
current values first if it does not exist yet.`,
	Args: cobra.NoArgs,
	RunE: runConfigEdit,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the configuration file path",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		fmt.Fprintln(cmd.OutOrStdout(), configPath())
	},
}

// configPath is the file config commands write: --config, the file that was
// loaded, or the default location.
func configPath() string {
	if configFile != "" {
		return configFile
	}
	if used := config.UsedFile(); used != "" {
		return used
	}
	return paths.ConfigFile()
}

func runConfigGet(cmd *cobra.Command, args []string) error {
	cfg := config.Current()
	var val string
	switch args[0] {
	case config.KeyVersion:
		val = fmt.Sprint(cfg.Version)
	case config.KeyEditor:
		val = cfg.Editor
	case config.KeyLogFormat:
		val = cfg.LogFormat
	default:
		return errors.NewUserError(errors.Wrapf(config.ErrUnknownKey, "%q", args[0]),
			"Valid keys: version, editor, log_format")
	}
	_, err := fmt.Fprintln(cmd.OutOrStdout(), val)
	return err
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	key, value := args[0], args[1]
	if err := config.Set(key, value); err != nil {
		return errors.NewUserError(err, "Valid keys: editor, log_format; see 'openin list' for editor names")
	}
	if err := writeConfig(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(cmd.OutOrStdout(), "Set %s = %s\n", key, value)
	return err
}

func runConfigList(cmd *cobra.Command, _ []string) error {
	return outputConfig(cmd.OutOrStdout(), config.Current(), configListFormat)
}

func outputConfig(w io.Writer, cfg *config.Config, format string) error {
	var (
		data []byte
		err  error
	)
	switch format {
	case "yaml", "":
		data, err = yaml.Marshal(cfg)
	case "toml":
		data, err = toml.Marshal(cfg)
	default:
		return errors.NewUserError(errors.Newf("unknown format %q", format), "Use --format yaml or --format toml")
	}
	if err != nil {
		return errors.Wrap(err, "marshaling config")
	}
	_, err = w.Write(data)
	return err
}

func runConfigEdit(cmd *cobra.Command, _ []string) error {
	path := configPath()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := writeConfig(); err != nil {
			return err
		}
	}

	s := shell.Streams{In: cmd.InOrStdin(), Out: cmd.OutOrStdout(), Err: cmd.ErrOrStderr()}
	if err := shell.Edit(cmd.Context(), path, s); err != nil {
		return errors.NewSystemError(err, "Set $EDITOR to a terminal editor")
	}
	return nil
}

// writeConfig writes the current configuration to configPath.
func writeConfig() error {
	if err := config.Save(configPath(), config.Current()); err != nil {
		return errors.NewSystemError(err, "Check permissions on "+paths.ConfigDir())
	}
	return nil
}
