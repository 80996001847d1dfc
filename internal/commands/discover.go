// ABOUTME: Discover command lists plugin settings under a directory
// ABOUTME: Shows root settings files and one level of namespace directories
package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pomframework/pomutils/internal/logging"
	"github.com/pomframework/pomutils/internal/ui"
	"github.com/pomframework/pomutils/internal/validator"
)

var (
	discoverJSON bool
	discoverExts []string
)

var discoverCmd = &cobra.Command{
	Use:   "discover <dir>",
	Short: "List plugin settings files and namespaces",
	Long: `Scan a plugin settings directory.

Files directly under the directory are listed by name, with a source
extension (.js by default) removed. Each subdirectory is a namespace and is
listed with the names of the entries it contains. Deeper directories are
named but not expanded.

A missing directory is reported, not treated as an error.`,
	Example: `  # Show settings under ./pluginSettings
  pomutils discover pluginSettings

  # Strip .ts and .js, print JSON
  pomutils discover pluginSettings --ext .ts,.js --json`,
	Args: cobra.ExactArgs(1),
	RunE: runDiscover,
}

func init() {
	discoverCmd.Flags().BoolVar(&discoverJSON, "json", false, "Print the result as JSON")
	discoverCmd.Flags().StringSliceVar(&discoverExts, "ext", nil, "Source extensions to strip from names (default .js)")
	rootCmd.AddCommand(discoverCmd)
}

func runDiscover(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	diag := logging.New(cmd.ErrOrStderr(), verbose)

	var opts []validator.Option
	if len(discoverExts) > 0 {
		opts = append(opts, validator.WithSourceExtensions(discoverExts...))
	}

	diag.Debug("scanning plugin settings", "dir", args[0])
	settings, err := validator.FindPluginSettings(args[0], opts...)
	if err != nil {
		return err
	}
	diag.Debug("scan complete", "files", len(settings.Files), "namespaces", len(settings.Namespaces))

	if discoverJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(settings)
	}

	fmt.Fprint(out, ui.RenderPluginSettings(settings))
	if !settings.Found() {
		ui.PrintWarning(cmd.ErrOrStderr(), fmt.Sprintf("%s doesn't exist or is not a directory", args[0]))
		return nil
	}
	ui.PrintInfo(out, fmt.Sprintf("%d files, %d namespaces", len(settings.Files), len(settings.Namespaces)))
	return nil
}
