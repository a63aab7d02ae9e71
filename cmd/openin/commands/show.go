package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/openin/internal/detect"
	"github.com/thoreinstein/openin/internal/editor"
	"github.com/thoreinstein/openin/internal/errors"
)

var (
	showJSON bool
	showByID bool
)

func init() {
	showCmd.Flags().BoolVar(&showJSON, "json", false, "output in JSON format")
	showCmd.Flags().BoolVar(&showByID, "id", false, "treat the argument as a short identifier (e.g. Sublime)")
	rootCmd.AddCommand(showCmd)
}

var showCmd = &cobra.Command{
	Use:   "show [editor]",
	Short: "Show details for an editor",
	Long: `Show an editor's identifier, bundle identifier, installation status and
the command used to open a path in it. Without an argument, shows the
configured editor. With --id, the argument is the short identifier shown in
the ID column of 'openin list'.`,
	Example: `  openin show "Sublime Text"
  openin show --id VSCodeInsiders
  openin show --json`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		v, err := showVariant(args)
		if err != nil {
			return err
		}
		res := detect.New(newRunner()).Detect(cmd.Context(), v)
		return outputShow(cmd.OutOrStdout(), v, res)
	},
}

func showVariant(args []string) (editor.Variant, error) {
	switch {
	case len(args) == 0 && showByID:
		return "", errors.NewUserError(errors.New("--id needs an identifier"), suggestList)
	case len(args) == 0:
		return configuredEditor()
	case showByID:
		v, err := editor.ParseVariant(args[0])
		if err != nil {
			return "", errors.NewUserError(err, suggestList)
		}
		return v, nil
	default:
		return resolveEditor(args[0])
	}
}

type showOutput struct {
	Name       string `json:"name"`
	ID         string `json:"id"`
	BundleID   string `json:"bundle_id"`
	Status     string `json:"status"`
	Path       string `json:"path,omitempty"`
	OpenScript string `json:"open_script"`
}

func outputShow(w io.Writer, v editor.Variant, res *detect.Result) error {
	out := showOutput{
		Name:       v.DisplayName(),
		ID:         v.String(),
		BundleID:   v.BundleIdentifier(),
		Status:     string(res.Status),
		Path:       res.Path,
		OpenScript: v.OpenScript("<path>"),
	}
	if showJSON {
		return writeJSON(w, out)
	}

	bold, green, yellow, gray := palette(w)
	bundle := out.BundleID
	if bundle == "" {
		bundle = gray.Sprint("(unknown)")
	}
	status := yellow.Sprint("not installed")
	if res.Installed() {
		status = green.Sprint("installed") + " " + gray.Sprint(res.Path)
	}

	fmt.Fprintln(w, bold.Sprint(out.Name))
	fmt.Fprintf(w, "  ID:         %s\n", out.ID)
	fmt.Fprintf(w, "  Bundle ID:  %s\n", bundle)
	fmt.Fprintf(w, "  Status:     %s\n", status)
	fmt.Fprintf(w, "  Command:    %s\n", out.OpenScript)
	return nil
}
