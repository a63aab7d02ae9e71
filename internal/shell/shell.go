// Package shell runs the commands openin generates.
//
// Everything goes through a [Runner] so callers can be tested without
// spawning processes.
package shell

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"strings"

	"github.com/thoreinstein/openin/internal/errors"
	"github.com/thoreinstein/openin/internal/logging"
)

// Interpreter paths used by Sh and AppleScript.
const (
	ShellPath     = "/bin/sh"
	OSAScriptPath = "osascript"
)

// ErrCommandFailed is returned when a command exits non-zero.
var ErrCommandFailed = errors.New("command failed")

// Runner executes a program and returns its trimmed standard output.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) (string, error)
}

// ExecRunner runs programs with os/exec.
type ExecRunner struct{}

var _ Runner = ExecRunner{}

// Run executes name with args. A non-zero exit returns an error wrapping
// ErrCommandFailed that includes the program's stderr.
func (ExecRunner) Run(ctx context.Context, name string, args ...string) (string, error) {
	logger := logging.FromContext(ctx)
	logger.Debug("running command", "name", name, "args", len(args))
	logger.Log(ctx, logging.LevelTrace, "command arguments", "argv", args)

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return "", errors.Wrapf(ctxErr, "running %s", name)
		}
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			msg = err.Error()
		}
		logger.Debug("command failed", "name", name, "error", msg)
		return "", errors.Wrapf(ErrCommandFailed, "%s: %s", name, msg)
	}

	return strings.TrimSpace(stdout.String()), nil
}

// Sh runs script with /bin/sh -c.
func Sh(ctx context.Context, r Runner, script string) (string, error) {
	return r.Run(ctx, ShellPath, "-c", script)
}

// AppleScript runs script with osascript -e.
func AppleScript(ctx context.Context, r Runner, script string) (string, error) {
	return r.Run(ctx, OSAScriptPath, "-e", script)
}

// Streams are the standard streams handed to interactive programs.
type Streams struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer
}

// StdStreams returns the process's own standard streams.
func StdStreams() Streams {
	return Streams{In: os.Stdin, Out: os.Stdout, Err: os.Stderr}
}

// Edit opens path in the user's terminal editor and waits for it to exit.
// The editor is $EDITOR, then $VISUAL, then nano, then vi.
func Edit(ctx context.Context, path string, s Streams) error {
	editorCmd := TerminalEditor()
	logging.FromContext(ctx).Info("launching editor", slog.String("editor", editorCmd), slog.String("path", path))

	cmd := exec.CommandContext(ctx, editorCmd, path)
	cmd.Stdin = s.In
	cmd.Stdout = s.Out
	cmd.Stderr = s.Err

	if err := cmd.Run(); err != nil {
		return errors.Wrap(err, "running editor")
	}
	return nil
}

// TerminalEditor returns the terminal editor Edit launches.
func TerminalEditor() string {
	if e := os.Getenv("EDITOR"); e != "" {
		return e
	}
	if v := os.Getenv("VISUAL"); v != "" {
		return v
	}
	if _, err := exec.LookPath("nano"); err == nil {
		return "nano"
	}
	return "vi"
}
