package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"

	"github.com/thoreinstein/openin/internal/errors"
)

// AppName is the directory name used under the config home.
const AppName = "openin"

// ConfigFileName is the name of the config file inside ConfigDir.
const ConfigFileName = "config.yaml"

// SystemApplicationsDir is the machine-wide application folder.
const SystemApplicationsDir = "/Applications"

// ErrHomeDirNotFound indicates the user's home directory could not be determined.
var ErrHomeDirNotFound = errors.New("home directory not found")

// DefaultDirPerm is the permission for newly created directories.
const DefaultDirPerm = 0o700

// EnsureDir creates path and any parents. A zero perm means DefaultDirPerm.
func EnsureDir(path string, perm os.FileMode) error {
	if perm == 0 {
		perm = DefaultDirPerm
	}
	return errors.Wrapf(os.MkdirAll(path, perm), "creating %s", path)
}

// ResolveHome returns the user's home directory.
func ResolveHome() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "", errors.Wrapf(ErrHomeDirNotFound, "%v", err)
	}
	return home, nil
}

// ConfigHome returns the XDG config home directory.
// On Linux: ~/.config
// On macOS: ~/Library/Application Support
func ConfigHome() string {
	return xdg.ConfigHome
}

// ConfigDir returns the openin configuration directory.
// OPENIN_CONFIG_DIR overrides the XDG location.
func ConfigDir() string {
	if dir := os.Getenv("OPENIN_CONFIG_DIR"); dir != "" {
		return dir
	}
	return filepath.Join(ConfigHome(), AppName)
}

// ConfigFile returns the path of the default config file.
func ConfigFile() string {
	return filepath.Join(ConfigDir(), ConfigFileName)
}

// ApplicationDirs returns the directories searched for .app bundles.
// The per-user folder is omitted when the home directory is unknown.
func ApplicationDirs() []string {
	dirs := []string{SystemApplicationsDir}
	if home, err := ResolveHome(); err == nil {
		dirs = append(dirs, filepath.Join(home, "Applications"))
	}
	return dirs
}

// AppBundle returns the path of the named .app bundle inside dir.
func AppBundle(dir, appName string) string {
	return filepath.Join(dir, appName+".app")
}
