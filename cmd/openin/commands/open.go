package commands

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/openin/internal/editor"
	"github.com/thoreinstein/openin/internal/errors"
	"github.com/thoreinstein/openin/internal/finder"
	"github.com/thoreinstein/openin/internal/launch"
	"github.com/thoreinstein/openin/internal/shell"
)

var (
	openEditor string
	openDryRun bool
)

func init() {
	openCmd.Flags().StringVarP(&openEditor, "editor", "e", "",
		"editor display name (default: configured editor)")
	openCmd.Flags().BoolVarP(&openDryRun, "dry-run", "n", false,
		"print the command instead of running it")
	rootCmd.AddCommand(openCmd)
}

var openCmd = &cobra.Command{
	Use:   "open [path]",
	Short: "Open a path or the Finder selection in an editor",
	Long: `Open path in an editor. Relative paths are made absolute first.

Without a path, opens the first item selected in Finder; with nothing
selected, the folder of the front Finder window; with no window open, the
Desktop.

An empty path is rejected rather than treated as the current directory.
Whether the editor is installed and the path exists is left to macOS:
failures are reported from the 'open' command itself.`,
	Example: `  # Open the current directory in the configured editor
  openin open .

  # Open the Finder selection in BBEdit
  openin open -e BBEdit

  # Show what would run
  openin open -n ~/src/app`,
	Args: cobra.MaximumNArgs(1),
	RunE: runOpen,
}

func runOpen(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	v, err := openVariant(cmd)
	if err != nil {
		return err
	}

	runner := newRunner()
	var plan launch.Plan

	switch {
	case len(args) == 1:
		if args[0] == "" {
			return errors.NewUserError(errors.New("path is empty"), "Omit the path to open the Finder selection")
		}
		path, err := filepath.Abs(args[0])
		if err != nil {
			return errors.NewUserError(errors.Wrap(err, "resolving path"), "Pass an absolute path")
		}
		plan = launch.ForPath(v, path)
	case openDryRun:
		// Resolve the selection now so the printed command is concrete.
		path, err := finder.CurrentPath(ctx, runner)
		if err != nil {
			return errors.NewSystemError(err, "Grant your terminal Automation access to Finder")
		}
		plan = launch.ForPath(v, path)
	default:
		plan = launch.ForSelection(v)
	}

	if openDryRun {
		_, err := fmt.Fprintln(cmd.OutOrStdout(), plan.Script)
		return err
	}

	if err := launch.New(runner).Run(ctx, plan); err != nil {
		if errors.Is(err, shell.ErrCommandFailed) {
			return errors.NewSystemError(err, fmt.Sprintf("Check that %s is installed: openin show %q", v.DisplayName(), v.DisplayName()))
		}
		return errors.NewSystemError(err, "")
	}
	return nil
}

// openVariant returns the --editor choice when the flag was given, even if
// empty, and the configured editor otherwise.
func openVariant(cmd *cobra.Command) (editor.Variant, error) {
	if cmd.Flags().Changed("editor") {
		return resolveEditor(openEditor)
	}
	return configuredEditor()
}
