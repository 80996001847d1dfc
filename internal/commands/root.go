// ABOUTME: Root command and CLI initialization for pomutils
// ABOUTME: Sets up cobra command structure, global flags and the logger choice
package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/pomframework/pomutils/internal/logging"
	"github.com/pomframework/pomutils/internal/ui"
)

var (
	verbose    bool
	noColor    bool
	loggerKind string
)

const (
	loggerLog     = "log"
	loggerConsole = "console"
)

var rootCmd = &cobra.Command{
	Use:   "pomutils",
	Short: "Validate framework bootstrap options",
	Long: `pomutils checks the options a framework is started with.

It provides:
  - Validation of parent, application and plugin directories
  - Discovery of plugin settings files and namespace directories
  - Logger and scalar default checks for options files`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if noColor {
			ui.DisableColor()
		}
	},
}

func Execute() error {
	return rootCmd.Execute()
}

// SetVersion sets the version for the root command
func SetVersion(version string) {
	rootCmd.Version = version
}

func init() {
	ui.SetupHelpTemplate(rootCmd)

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Show diagnostic output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().StringVar(&loggerKind, "logger", loggerLog, "Logger handed to the options validator (log or console)")
}

// newLogger builds the logger selected by --logger. The value is returned
// untyped so it goes through the same shape check a host logger would.
func newLogger(w io.Writer) (any, error) {
	switch loggerKind {
	case loggerLog, "":
		return logging.New(w, verbose), nil
	case loggerConsole:
		return ui.NewConsole(w), nil
	}
	return nil, fmt.Errorf("unknown logger %q (want %s or %s)", loggerKind, loggerLog, loggerConsole)
}
