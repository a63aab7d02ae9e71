package cmd

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSummary(t *testing.T) {
	origVersion, origCommit, origDate := Version, Commit, Date
	t.Cleanup(func() { Version, Commit, Date = origVersion, origCommit, origDate })

	Version, Commit, Date = "1.2.0", "abc1234", "2026-10-17"

	want := "openin version 1.2.0\n" +
		"  commit:    abc1234\n" +
		"  built:     2026-10-17\n" +
		"  go:        " + runtime.Version() + "\n"
	assert.Equal(t, want, Summary())
}
