package doctor

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/thoreinstein/openin/internal/config"
	"github.com/thoreinstein/openin/internal/detect"
	"github.com/thoreinstein/openin/internal/errors"
	"github.com/thoreinstein/openin/internal/shell/mocks"
)

func TestConfigCheck(t *testing.T) {
	t.Run("load error", func(t *testing.T) {
		c := &ConfigCheck{load: func(string) (*config.Config, error) {
			return nil, errors.New("validating config: editor: unknown editor name: Vim")
		}}

		res := c.Run(t.Context())
		assert.Equal(t, SeverityError, res.Status)
		assert.Contains(t, res.Message, "unknown editor name")
		assert.NotEmpty(t, res.FixHint)
	})

	t.Run("valid file", func(t *testing.T) {
		t.Setenv("OPENIN_CONFIG_DIR", t.TempDir())
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("editor: Atom\n"), 0o600))
		config.Init()

		res := NewConfigCheck(path).Run(t.Context())
		assert.Equal(t, SeverityPass, res.Status)
		assert.Equal(t, "Atom", res.Details["editor"])
	})
}

func TestEditorCheck(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "MacVim.app"), 0o755))

	t.Run("unknown name", func(t *testing.T) {
		d := detect.NewWithDirs(mocks.NewMockRunner(t), []string{dir})
		res := NewEditorCheck("Emacs", d).Run(t.Context())
		assert.Equal(t, SeverityError, res.Status)
		assert.Empty(t, res.Editor)
	})

	t.Run("installed by name", func(t *testing.T) {
		d := detect.NewWithDirs(mocks.NewMockRunner(t), []string{dir})
		res := NewEditorCheck("MacVim", d).Run(t.Context())
		assert.Equal(t, SeverityPass, res.Status)
		assert.Equal(t, "MacVim", res.Editor)
		assert.Equal(t, filepath.Join(dir, "MacVim.app"), res.Details["path"])
	})

	t.Run("not installed", func(t *testing.T) {
		r := mocks.NewMockRunner(t)
		r.EXPECT().Run(mock.Anything, "mdfind", mock.Anything).Return("", nil)
		d := detect.NewWithDirs(r, []string{dir})

		res := NewEditorCheck("Sublime Text", d).Run(t.Context())
		assert.Equal(t, SeverityWarning, res.Status)
		assert.Equal(t, "Sublime Text", res.Editor)
		assert.Equal(t, "com.sublimetext.3", res.Details["bundle_id"])
	})
}

func TestInstalledEditorsCheck(t *testing.T) {
	t.Run("none installed", func(t *testing.T) {
		r := mocks.NewMockRunner(t)
		r.EXPECT().Run(mock.Anything, "mdfind", mock.Anything).Return("", nil)

		res := NewInstalledEditorsCheck(detect.NewWithDirs(r, []string{t.TempDir()})).Run(t.Context())
		assert.Equal(t, SeverityWarning, res.Status)
	})

	t.Run("some installed", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.MkdirAll(filepath.Join(dir, "PhpStorm.app"), 0o755))

		r := mocks.NewMockRunner(t)
		r.EXPECT().Run(mock.Anything, "mdfind", "kMDItemCFBundleIdentifier == 'com.github.atom'").
			Return("/Applications/Atom.app", nil)
		r.EXPECT().Run(mock.Anything, "mdfind", mock.Anything).Return("", nil)

		res := NewInstalledEditorsCheck(detect.NewWithDirs(r, []string{dir})).Run(t.Context())
		assert.Equal(t, SeverityInfo, res.Status)
		assert.Equal(t, "2 of 10 supported editors installed", res.Message)
		assert.Equal(t, []string{"Atom", "PhpStorm"}, res.Details["installed"])
		assert.Equal(t, []string{"PhpStorm"}, res.Details["matched_by_name"])
	})
}
