// Package main is the entry point for the openin CLI.
package main

import (
	"os"

	"github.com/thoreinstein/openin/cmd/openin/commands"
)

func main() {
	os.Exit(commands.Main(os.Stderr))
}
