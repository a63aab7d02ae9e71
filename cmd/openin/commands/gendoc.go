package commands

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"

	"github.com/thoreinstein/openin/internal/errors"
	"github.com/thoreinstein/openin/internal/paths"
)

var (
	genDocDir    string
	genDocFormat string
)

var genDocCmd = &cobra.Command{
	Use:    "gen-doc",
	Short:  "Generate reference documentation for the CLI",
	Hidden: true,
	Args:   cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		if genDocDir == "" {
			return errors.NewUserError(errors.New("output directory is required"), "Pass --dir")
		}
		if err := paths.EnsureDir(genDocDir, paths.DefaultDirPerm); err != nil {
			return errors.Wrap(err, "creating output directory")
		}

		var err error
		switch genDocFormat {
		case "markdown", "md":
			err = doc.GenMarkdownTreeCustom(rootCmd, genDocDir, filePrepender, linkHandler)
		case "man":
			err = doc.GenManTree(rootCmd, &doc.GenManHeader{Title: "OPENIN", Section: "1"}, genDocDir)
		default:
			return errors.NewUserError(errors.Newf("unknown format %q", genDocFormat), "Use --format markdown or --format man")
		}
		if err != nil {
			return errors.Wrapf(err, "generating %s", genDocFormat)
		}

		_, err = fmt.Fprintf(cmd.OutOrStdout(), "Documentation generated in %s\n", genDocDir)
		return err
	},
}

func init() {
	genDocCmd.Flags().StringVarP(&genDocDir, "dir", "d", "", "output directory for documentation")
	genDocCmd.Flags().StringVar(&genDocFormat, "format", "markdown", "output format: markdown, man")
	rootCmd.AddCommand(genDocCmd)
}

func filePrepender(filename string) string {
	name := filepath.Base(filename)
	base := strings.TrimSuffix(name, filepath.Ext(name))
	// openin_config_set.md -> openin config set
	title := strings.ReplaceAll(base, "_", " ")

	return fmt.Sprintf(`---
title: "%s"
description: "Reference for %s command"
draft: false
toc: true
---
`, title, title)
}

func linkHandler(name string) string {
	base := strings.TrimSuffix(name, filepath.Ext(name))
	return "/docs/reference/" + strings.ToLower(base) + "/"
}
