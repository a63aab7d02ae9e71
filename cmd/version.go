// Package cmd holds build metadata injected via ldflags.
package cmd

import (
	"fmt"
	"runtime"
	"strings"
)

// Set with -ldflags "-X github.com/thoreinstein/openin/cmd.Version=...".
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// Summary returns the report printed by 'openin version'.
func Summary() string {
	var b strings.Builder
	fmt.Fprintf(&b, "openin version %s\n", Version)
	fmt.Fprintf(&b, "  commit:    %s\n", Commit)
	fmt.Fprintf(&b, "  built:     %s\n", Date)
	fmt.Fprintf(&b, "  go:        %s\n", runtime.Version())
	return b.String()
}
