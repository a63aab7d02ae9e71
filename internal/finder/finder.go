// Package finder reads the path the user is looking at in Finder.
package finder

import (
	"context"

	"github.com/thoreinstein/openin/internal/editor"
	"github.com/thoreinstein/openin/internal/errors"
	"github.com/thoreinstein/openin/internal/shell"
)

// ErrNoPath is returned when Finder reports an empty path.
var ErrNoPath = errors.New("finder returned no path")

// selectionScript returns the first selected item, else the front window
// folder, else the desktop.
var selectionScript = editor.FinderPathScript + "\nreturn thePath"

// CurrentPath returns the POSIX path of the current Finder selection.
func CurrentPath(ctx context.Context, r shell.Runner) (string, error) {
	out, err := shell.AppleScript(ctx, r, selectionScript)
	if err != nil {
		return "", errors.Wrap(err, "reading finder selection")
	}
	if out == "" {
		return "", ErrNoPath
	}
	return out, nil
}
