package commands

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/openin/internal/detect"
	"github.com/thoreinstein/openin/internal/editor"
)

var (
	listJSON   bool
	listDetect bool
)

func init() {
	listCmd.Flags().BoolVar(&listJSON, "json", false, "output in JSON format")
	listCmd.Flags().BoolVar(&listDetect, "detect", false, "check whether each editor is installed")
	rootCmd.AddCommand(listCmd)
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List supported editors",
	Long: `List every supported editor with its identifier and bundle identifier.

An empty bundle identifier means none is known for that editor; it is
launched and detected by name only.`,
	Example: `  # List editors
  openin list

  # Include installation status
  openin list --detect

  # Machine-readable output
  openin list --json --detect`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		var results []*detect.Result
		if listDetect {
			results = detect.New(newRunner()).DetectAll(cmd.Context())
		}
		return outputList(cmd.OutOrStdout(), results)
	},
}

// listEntry is the JSON shape of one editor.
type listEntry struct {
	Name     string `json:"name"`
	ID       string `json:"id"`
	BundleID string `json:"bundle_id"`
	Status   string `json:"status,omitempty"`
	Path     string `json:"path,omitempty"`
}

// outputList writes the catalog; results, when non-nil, add a status column.
func outputList(w io.Writer, results []*detect.Result) error {
	entries := make([]listEntry, 0, len(editor.Variants()))
	for i, v := range editor.Variants() {
		e := listEntry{Name: v.DisplayName(), ID: v.String(), BundleID: v.BundleIdentifier()}
		if results != nil {
			e.Status = string(results[i].Status)
			e.Path = results[i].Path
		}
		entries = append(entries, e)
	}

	if listJSON {
		return writeJSON(w, entries)
	}

	bold, green, yellow, gray := palette(w)
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if results != nil {
		fmt.Fprintln(tw, bold.Sprint("NAME\tID\tBUNDLE ID\tSTATUS"))
	} else {
		fmt.Fprintln(tw, bold.Sprint("NAME\tID\tBUNDLE ID"))
	}

	for _, e := range entries {
		bundle := e.BundleID
		if bundle == "" {
			bundle = gray.Sprint("-")
		}
		if results == nil {
			fmt.Fprintf(tw, "%s\t%s\t%s\n", e.Name, e.ID, bundle)
			continue
		}
		status := yellow.Sprint("not installed")
		if e.Status == string(detect.StatusInstalled) {
			status = green.Sprint("installed")
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", e.Name, e.ID, bundle, status)
	}
	return tw.Flush()
}
