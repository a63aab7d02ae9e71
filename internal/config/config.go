package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/thoreinstein/openin/internal/editor"
	"github.com/thoreinstein/openin/internal/errors"
	"github.com/thoreinstein/openin/internal/logging"
	"github.com/thoreinstein/openin/internal/paths"
	"github.com/thoreinstein/openin/pkg/fileutil"
)

// EnvPrefix is the prefix for environment overrides (OPENIN_EDITOR, ...).
const EnvPrefix = "OPENIN"

// Keys understood by the config file.
const (
	KeyVersion   = "version"
	KeyEditor    = "editor"
	KeyLogFormat = "log_format"
)

// DefaultEditor is the editor used when none is configured.
var DefaultEditor = editor.VSCode.DisplayName()

// Config represents the configuration file.
type Config struct {
	Version   int    `mapstructure:"version" yaml:"version" toml:"version"`
	Editor    string `mapstructure:"editor" yaml:"editor" toml:"editor"`
	LogFormat string `mapstructure:"log_format" yaml:"log_format" toml:"log_format"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		Version:   1,
		Editor:    DefaultEditor,
		LogFormat: string(logging.FormatText),
	}
}

// Variant resolves the configured editor.
func (c *Config) Variant() (editor.Variant, error) {
	return editor.Resolve(c.Editor)
}

// Init resets viper and registers defaults, search paths and env overrides.
func Init() {
	viper.Reset()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath(paths.ConfigDir())

	viper.SetEnvPrefix(EnvPrefix)
	viper.AutomaticEnv()

	d := Default()
	viper.SetDefault(KeyVersion, d.Version)
	viper.SetDefault(KeyEditor, d.Editor)
	viper.SetDefault(KeyLogFormat, d.LogFormat)
}

// Load reads and validates the configuration.
// An empty path searches the default locations and uses defaults when no
// file is found; an explicit path must exist.
func Load(path string) (*Config, error) {
	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, errors.Wrapf(errors.ErrNotFound, "config file %s", path)
		}
		viper.SetConfigFile(path)
		viper.SetConfigType(fileFormat(path))
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, errors.Wrap(err, "reading config file")
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "unmarshaling config")
	}

	if errs := Validate(&cfg); len(errs) > 0 {
		return nil, errors.Mark(errors.Wrap(errs[0], "validating config"), errors.ErrInvalidConfig)
	}

	return &cfg, nil
}

// Current returns the configuration viper holds, without validation.
func Current() *Config {
	return &Config{
		Version:   viper.GetInt(KeyVersion),
		Editor:    viper.GetString(KeyEditor),
		LogFormat: viper.GetString(KeyLogFormat),
	}
}

// UsedFile returns the config file viper read, or "" when running on defaults.
func UsedFile() string {
	return viper.ConfigFileUsed()
}

// Set validates value for key and stores it in viper.
func Set(key, value string) error {
	cfg := Current()
	switch key {
	case KeyEditor:
		cfg.Editor = value
	case KeyLogFormat:
		cfg.LogFormat = value
	case KeyVersion:
		return errors.Newf("%s is managed by openin and cannot be set", key)
	default:
		return errors.Wrapf(ErrUnknownKey, "%q", key)
	}

	if errs := Validate(cfg); len(errs) > 0 {
		return errors.Mark(errs[0], errors.ErrInvalidConfig)
	}
	viper.Set(key, value)
	return nil
}

// Save writes cfg to path, creating the parent directory. Files ending in
// .toml are written as TOML, everything else as YAML.
func Save(path string, cfg *Config) error {
	if err := paths.EnsureDir(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	write := fileutil.AtomicWriteYAML
	if fileFormat(path) == "toml" {
		write = fileutil.AtomicWriteTOML
	}
	return errors.Wrap(write(path, cfg), "writing config file")
}

// fileFormat returns the viper config type for path.
func fileFormat(path string) string {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return "toml"
	}
	return "yaml"
}
