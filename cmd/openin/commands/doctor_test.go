package commands

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/thoreinstein/openin/internal/doctor"
	"github.com/thoreinstein/openin/internal/errors"
)

func TestDoctor_MutuallyExclusiveFlags(t *testing.T) {
	isolate(t)

	_, err := execute(t, "doctor", "--json", "--all")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "mutually exclusive")
}

func TestDoctor_ConfiguredEditorInstalled(t *testing.T) {
	dir := isolate(t)
	writeConfigFile(t, dir, "version: 1\neditor: Sublime Text\n")
	r := withRunner(t)
	r.EXPECT().Run(mock.Anything, "mdfind", "kMDItemCFBundleIdentifier == 'com.sublimetext.3'").
		Return("/Applications/Sublime Text.app", nil)
	r.EXPECT().Run(mock.Anything, "mdfind", mock.Anything).Return("", nil)

	out, err := execute(t, "doctor", "--json")
	require.NoError(t, err)

	var report struct {
		Results []struct {
			Name   string `json:"name"`
			Status string `json:"status"`
		} `json:"results"`
		Summary doctor.Summary `json:"summary"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	require.Len(t, report.Results, 3)
	assert.Equal(t, "config-valid", report.Results[0].Name)
	assert.Equal(t, "pass", report.Results[0].Status)
	assert.Equal(t, "configured-editor", report.Results[1].Name)
	assert.Equal(t, "pass", report.Results[1].Status)
	assert.Equal(t, "installed-editors", report.Results[2].Name)
	assert.Zero(t, report.Summary.Errors)
}

func TestDoctor_WarningsExitCode(t *testing.T) {
	isolate(t)
	r := withRunner(t)
	r.EXPECT().Run(mock.Anything, "mdfind", mock.Anything).Return("", nil)

	out, err := execute(t, "doctor")

	require.Error(t, err)
	assert.Equal(t, errors.ExitUser, errors.ExitCode(err))
	assert.Contains(t, out, "configured-editor: Visual Studio Code is not installed")
	assert.Contains(t, out, "hint:")
	assert.Contains(t, out, "Summary:")
}

func TestDoctor_ErrorsExitCode(t *testing.T) {
	dir := isolate(t)
	writeConfigFile(t, dir, "version: 1\neditor: Notepad\n")
	r := withRunner(t)
	r.EXPECT().Run(mock.Anything, "mdfind", mock.Anything).Return("", nil).Maybe()

	out, err := execute(t, "doctor", "-q")

	require.Error(t, err)
	assert.Equal(t, errors.ExitSystem, errors.ExitCode(err))
	assert.Empty(t, out)
}

func TestOutputDoctorText_HidesPassedUnlessAll(t *testing.T) {
	report := &doctor.Report{
		Results: []*doctor.CheckResult{
			{Name: "config-valid", Category: "config", Status: doctor.SeverityPass, Message: "config is valid"},
			{Name: "configured-editor", Category: "editor", Status: doctor.SeverityWarning, Message: "Atom is not installed", FixHint: "install it"},
		},
		Summary: doctor.Summary{Passed: 1, Warnings: 1},
	}

	var buf bytes.Buffer
	require.NoError(t, outputDoctorText(&buf, report, false))
	assert.NotContains(t, buf.String(), "config is valid")
	assert.Contains(t, buf.String(), "⚠ [editor] configured-editor: Atom is not installed\n  hint: install it\n")

	buf.Reset()
	require.NoError(t, outputDoctorText(&buf, report, true))
	assert.Contains(t, buf.String(), "✓ [config] config-valid: config is valid\n")
	assert.Contains(t, buf.String(), "Summary: 1 passed, 0 info, 1 warnings, 0 errors\n")
}
