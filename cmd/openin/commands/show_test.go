package commands

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/thoreinstein/openin/internal/editor"
	"github.com/thoreinstein/openin/internal/errors"
)

func TestShowCommand(t *testing.T) {
	isolate(t)
	r := withRunner(t)
	r.EXPECT().Run(mock.Anything, "mdfind", "kMDItemCFBundleIdentifier == 'com.sublimetext.3'").
		Return("/Applications/Sublime Text.app", nil)

	out, err := execute(t, "show", "Sublime Text")
	require.NoError(t, err)

	assert.Contains(t, out, "Sublime Text\n")
	assert.Contains(t, out, "ID:         Sublime")
	assert.Contains(t, out, "Bundle ID:  com.sublimetext.3")
	assert.Contains(t, out, "installed /Applications/Sublime Text.app")
	assert.Contains(t, out, `open -a Sublime\ Text '<path>'`)
}

func TestShowCommand_DefaultsToConfiguredEditor(t *testing.T) {
	isolate(t)
	r := withRunner(t)
	r.EXPECT().Run(mock.Anything, "mdfind", "kMDItemCFBundleIdentifier == 'com.microsoft.VSCode'").
		Return("", nil)

	out, err := execute(t, "show", "--json")
	require.NoError(t, err)

	var got showOutput
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "Visual Studio Code", got.Name)
	assert.Equal(t, "VSCode", got.ID)
	assert.Equal(t, "not_installed", got.Status)
	assert.Empty(t, got.Path)
}

func TestShowCommand_UnknownBundleID(t *testing.T) {
	isolate(t)
	withRunner(t)

	out, err := execute(t, "show", "PhpStorm")
	require.NoError(t, err)

	assert.Contains(t, out, "Bundle ID:  (unknown)")
	assert.Contains(t, out, "not installed")
}

func TestShowCommand_ByID(t *testing.T) {
	isolate(t)
	r := withRunner(t)
	r.EXPECT().Run(mock.Anything, "mdfind", "kMDItemCFBundleIdentifier == 'com.microsoft.VSCodeInsiders'").
		Return("", nil)

	out, err := execute(t, "show", "--id", "--json", "VSCodeInsiders")
	require.NoError(t, err)

	var got showOutput
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "Visual Studio Code - Insiders", got.Name)
}

func TestShowCommand_ByIDRejectsDisplayName(t *testing.T) {
	isolate(t)
	withRunner(t)

	_, err := execute(t, "show", "--id", "Sublime Text")

	require.Error(t, err)
	assert.ErrorIs(t, err, editor.ErrUnknownVariant)
	assert.Equal(t, errors.ExitUser, errors.ExitCode(err))
}

func TestShowCommand_EmptyNameIsUnknown(t *testing.T) {
	isolate(t)
	withRunner(t)

	_, err := execute(t, "show", "")

	require.Error(t, err)
	assert.ErrorIs(t, err, editor.ErrUnknownEditorName)
}
