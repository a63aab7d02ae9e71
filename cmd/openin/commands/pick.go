package commands

import (
	"fmt"
	"os"

	"github.com/ktr0731/go-fuzzyfinder"
	"github.com/spf13/cobra"

	"github.com/thoreinstein/openin/internal/cli/prompt"
	"github.com/thoreinstein/openin/internal/config"
	"github.com/thoreinstein/openin/internal/detect"
	"github.com/thoreinstein/openin/internal/editor"
	"github.com/thoreinstein/openin/internal/errors"
	"github.com/thoreinstein/openin/internal/logging"
)

var (
	pickSave      bool
	pickInstalled bool
)

func init() {
	pickCmd.Flags().BoolVar(&pickSave, "save", false, "save the choice as the configured editor")
	pickCmd.Flags().BoolVar(&pickInstalled, "installed", false, "offer only installed editors")
	rootCmd.AddCommand(pickCmd)
}

var pickCmd = &cobra.Command{
	Use:   "pick",
	Short: "Choose an editor interactively",
	Long: `Choose an editor with a fuzzy finder and print its display name.
When stdin is not a terminal, a numbered list is read from stdin instead.

With --save, the choice becomes the configured editor.`,
	Example: `  # Pick and save the default editor
  openin pick --save --installed

  # Use the choice in a script
  openin open -e "$(openin pick)" .`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		variants := editor.Variants()
		if pickInstalled {
			variants = variants[:0:0]
			for _, r := range detect.New(newRunner()).DetectInstalled(cmd.Context()) {
				variants = append(variants, r.Variant)
			}
			if len(variants) == 0 {
				return errors.NewUserError(errors.New("no supported editors installed"), suggestList)
			}
		}

		v, err := findVariant(variants)
		if err != nil {
			if errors.Is(err, fuzzyfinder.ErrAbort) || errors.Is(err, prompt.ErrSelectionCancelled) {
				return nil
			}
			if errors.Is(err, prompt.ErrInvalidSelection) {
				return errors.NewUserError(err, "Enter a number from the list")
			}
			return errors.Wrap(err, "interactive selection failed")
		}

		if pickSave {
			if err := saveEditor(v.DisplayName()); err != nil {
				return err
			}
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), v.DisplayName())
		return err
	},
}

// findVariant asks the user for an editor: the fuzzy finder on a terminal,
// a numbered prompt otherwise. Tests replace it.
var findVariant = func(variants []editor.Variant) (editor.Variant, error) {
	if !logging.IsTTY(os.Stdin) {
		return prompt.NewSelector().SelectEditor(variants)
	}
	return fuzzyFind(variants)
}

func fuzzyFind(variants []editor.Variant) (editor.Variant, error) {
	idx, err := fuzzyfinder.Find(
		variants,
		func(i int) string { return variants[i].DisplayName() },
		fuzzyfinder.WithPromptString("editor> "),
		fuzzyfinder.WithPreviewWindow(func(i, _, _ int) string {
			if i == -1 {
				return ""
			}
			v := variants[i]
			bundle := v.BundleIdentifier()
			if bundle == "" {
				bundle = "(unknown)"
			}
			return fmt.Sprintf("Name: %s\nID: %s\nBundle ID: %s\n\nCommand:\n%s",
				v.DisplayName(), v, bundle, v.OpenScript("<path>"))
		}),
	)
	if err != nil {
		return "", err
	}
	return variants[idx], nil
}

// saveEditor stores name as the configured editor and writes the config file.
func saveEditor(name string) error {
	if err := config.Set(config.KeyEditor, name); err != nil {
		return errors.NewUserError(err, suggestList)
	}
	return writeConfig()
}
