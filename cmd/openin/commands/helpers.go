package commands

import (
	"encoding/json"
	"io"

	"github.com/fatih/color"

	"github.com/thoreinstein/openin/internal/editor"
	"github.com/thoreinstein/openin/internal/errors"
	"github.com/thoreinstein/openin/internal/logging"
)

const suggestList = "Run 'openin list' to see supported editors"

// configuredEditor resolves the editor named in the configuration.
func configuredEditor() (editor.Variant, error) {
	cfg, err := requireConfig()
	if err != nil {
		return "", err
	}
	return resolveEditor(cfg.Editor)
}

// resolveEditor resolves an explicitly given display name. An empty name is
// unknown like any other.
func resolveEditor(name string) (editor.Variant, error) {
	v, err := editor.Resolve(name)
	if err != nil {
		return "", errors.NewUserError(err, suggestList)
	}
	return v, nil
}

// palette returns colors for w, disabled when w is not a color terminal.
func palette(w io.Writer) (bold, green, yellow, gray *color.Color) {
	bold = color.New(color.Bold)
	green = color.New(color.FgGreen)
	yellow = color.New(color.FgYellow)
	gray = color.New(color.FgHiBlack)
	if !logging.SupportsColor(w) {
		for _, c := range []*color.Color{bold, green, yellow, gray} {
			c.DisableColor()
		}
	}
	return bold, green, yellow, gray
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return errors.Wrap(enc.Encode(v), "encoding JSON")
}
