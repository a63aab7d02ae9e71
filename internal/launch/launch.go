// Package launch opens paths in catalog editors.
package launch

import (
	"context"
	"log/slog"

	"github.com/thoreinstein/openin/internal/editor"
	"github.com/thoreinstein/openin/internal/errors"
	"github.com/thoreinstein/openin/internal/logging"
	"github.com/thoreinstein/openin/internal/shell"
)

// Kind says which interpreter a Plan runs under.
type Kind string

const (
	// KindShell runs the script with /bin/sh.
	KindShell Kind = "sh"
	// KindAppleScript runs the script with osascript.
	KindAppleScript Kind = "applescript"
)

// Plan is a generated script and the interpreter that runs it.
type Plan struct {
	Variant editor.Variant `json:"variant"`
	Kind    Kind           `json:"kind"`
	Script  string         `json:"script"`
}

// ForPath plans opening path in v.
func ForPath(v editor.Variant, path string) Plan {
	return Plan{Variant: v, Kind: KindShell, Script: v.OpenScript(path)}
}

// ForSelection plans opening the current Finder selection in v.
func ForSelection(v editor.Variant) Plan {
	return Plan{Variant: v, Kind: KindAppleScript, Script: v.AppleScript()}
}

// Launcher executes plans.
type Launcher struct {
	runner shell.Runner
}

// New returns a Launcher that runs plans through r.
func New(r shell.Runner) *Launcher {
	return &Launcher{runner: r}
}

// Run executes p. Failures wrap shell.ErrCommandFailed with the
// interpreter's stderr; a missing application surfaces here, not earlier.
func (l *Launcher) Run(ctx context.Context, p Plan) error {
	logger := logging.FromContext(ctx)
	logger.Info("opening in editor", slog.String("editor", p.Variant.DisplayName()), slog.String("kind", string(p.Kind)))
	logger.Log(ctx, logging.LevelTrace, "generated script", slog.String("script", p.Script))

	var err error
	switch p.Kind {
	case KindShell:
		_, err = shell.Sh(ctx, l.runner, p.Script)
	case KindAppleScript:
		_, err = shell.AppleScript(ctx, l.runner, p.Script)
	default:
		return errors.Newf("unknown plan kind %q", p.Kind)
	}
	return errors.Wrapf(err, "opening in %s", p.Variant.DisplayName())
}
