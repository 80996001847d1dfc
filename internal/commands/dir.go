// ABOUTME: Dir command checks whether a path is an existing directory
// ABOUTME: Prints the path when it is and exits non-zero otherwise
package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pomframework/pomutils/internal/validator"
)

var dirCmd = &cobra.Command{
	Use:   "dir <path>",
	Short: "Check that a path is an existing directory",
	Long: `Check that a path exists and is a directory.

The path is printed unchanged when it is a directory. Missing paths, regular
files and unreadable paths exit with status 1.`,
	Example: `  # Guard a script on the application directory
  pomutils dir ./application && echo ok`,
	Args: cobra.ExactArgs(1),
	RunE: runDir,
}

func init() {
	rootCmd.AddCommand(dirCmd)
}

func runDir(cmd *cobra.Command, args []string) error {
	d := validator.DirExists(args[0])
	if !d.Exists() {
		return fmt.Errorf("%s doesn't exist or is not a directory", args[0])
	}
	fmt.Fprintln(cmd.OutOrStdout(), d.Path())
	return nil
}
