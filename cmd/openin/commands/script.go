package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/openin/internal/launch"
)

var scriptAppleScript bool

func init() {
	scriptCmd.Flags().BoolVar(&scriptAppleScript, "applescript", false,
		"print the Finder AppleScript instead of the shell command")
	rootCmd.AddCommand(scriptCmd)
}

var scriptCmd = &cobra.Command{
	Use:   "script <editor> [path]",
	Short: "Print the command that opens a path in an editor",
	Long: `Print the shell command that opens path in the named editor, without
running it. The command has the form:

  open -a <escaped-name> <quoted-path>

With --applescript, print the Finder script that opens the current Finder
selection instead; path is ignored.`,
	Example: `  openin script "Sublime Text" /Users/x/project
  # open -a Sublime\ Text '/Users/x/project'

  openin script "Visual Studio Code" --applescript | osascript`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		v, err := resolveEditor(args[0])
		if err != nil {
			return err
		}

		p := launch.ForSelection(v)
		if !scriptAppleScript {
			path := ""
			if len(args) == 2 {
				path = args[1]
			}
			p = launch.ForPath(v, path)
		}

		_, err = fmt.Fprintln(cmd.OutOrStdout(), p.Script)
		return err
	},
}
