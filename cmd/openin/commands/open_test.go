package commands

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/thoreinstein/openin/internal/editor"
	"github.com/thoreinstein/openin/internal/errors"
	"github.com/thoreinstein/openin/internal/shell"
)

func TestOpenCommand_Path(t *testing.T) {
	isolate(t)
	r := withRunner(t)
	r.EXPECT().Run(mock.Anything, shell.ShellPath, "-c", "open -a Sublime\\ Text '/Users/x/project'").
		Return("", nil).Once()

	_, err := execute(t, "open", "-e", "Sublime Text", "/Users/x/project")

	require.NoError(t, err)
}

func TestOpenCommand_RelativePathMadeAbsolute(t *testing.T) {
	isolate(t)
	withRunner(t)

	out, err := execute(t, "open", "--dry-run", "src")
	require.NoError(t, err)

	abs, err := filepath.Abs("src")
	require.NoError(t, err)
	assert.Equal(t, editor.VSCode.OpenScript(abs)+"\n", out)
}

func TestOpenCommand_Selection(t *testing.T) {
	isolate(t)
	r := withRunner(t)
	r.EXPECT().Run(mock.Anything, shell.OSAScriptPath, "-e", editor.MacVim.AppleScript()).
		Return("", nil).Once()

	_, err := execute(t, "open", "--editor", "MacVim")

	require.NoError(t, err)
}

func TestOpenCommand_DryRunSelectionResolvesFinderPath(t *testing.T) {
	isolate(t)
	r := withRunner(t)
	r.EXPECT().Run(mock.Anything, shell.OSAScriptPath, "-e", mock.Anything).
		Return("/Users/x/Desktop/", nil).Once()

	out, err := execute(t, "open", "-n", "-e", "Atom")

	require.NoError(t, err)
	assert.Equal(t, "open -a Atom '/Users/x/Desktop/'\n", out)
}

func TestOpenCommand_CommandFailure(t *testing.T) {
	isolate(t)
	r := withRunner(t)
	r.EXPECT().Run(mock.Anything, shell.ShellPath, "-c", mock.Anything).
		Return("", errors.Wrapf(shell.ErrCommandFailed, "%s: %s", shell.ShellPath, "Unable to find application named 'TextMate'"))

	_, err := execute(t, "open", "-e", "TextMate", "/tmp")

	require.Error(t, err)
	assert.ErrorIs(t, err, shell.ErrCommandFailed)
	assert.Equal(t, errors.ExitSystem, errors.ExitCode(err))
	assert.Contains(t, err.Error(), "opening in TextMate")
}

func TestOpenCommand_UnknownEditor(t *testing.T) {
	isolate(t)
	withRunner(t)

	_, err := execute(t, "open", "-e", "Vim", "/tmp")

	require.Error(t, err)
	assert.ErrorIs(t, err, editor.ErrUnknownEditorName)
	assert.Equal(t, errors.ExitUser, errors.ExitCode(err))
}

func TestOpenCommand_EmptyEditorFlagIsUnknown(t *testing.T) {
	isolate(t)
	withRunner(t)

	_, err := execute(t, "open", "-e", "", "/tmp")

	require.Error(t, err)
	assert.ErrorIs(t, err, editor.ErrUnknownEditorName)
}

func TestOpenCommand_EditorFlagNotCarriedOver(t *testing.T) {
	isolate(t)
	withRunner(t)

	_, err := execute(t, "open", "-n", "-e", "Atom", "/tmp")
	require.NoError(t, err)

	isolate(t)
	out, err := execute(t, "open", "-n", "/tmp")
	require.NoError(t, err)
	assert.Equal(t, editor.VSCode.OpenScript("/tmp")+"\n", out)
}

func TestOpenCommand_EmptyPathRejected(t *testing.T) {
	isolate(t)
	withRunner(t)

	out, err := execute(t, "open", "-n", "")

	require.Error(t, err)
	assert.Equal(t, errors.ExitUser, errors.ExitCode(err))
	assert.Contains(t, err.Error(), "path is empty")
	assert.Empty(t, out)
}
