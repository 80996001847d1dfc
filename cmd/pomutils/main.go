// ABOUTME: Entry point for the pomutils CLI tool
// ABOUTME: Initializes and executes the root command
package main

import (
	"os"

	"github.com/pomframework/pomutils/internal/commands"
	"github.com/pomframework/pomutils/internal/ui"
)

var version = "dev" // Injected at build time via -ldflags

func main() {
	commands.SetVersion(version)

	if err := commands.Execute(); err != nil {
		ui.PrintError(os.Stderr, err.Error())
		os.Exit(1)
	}
}
