// ABOUTME: Check command validates a framework options file
// ABOUTME: Resolves directories, logger and scalar defaults and prints the result
package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pomframework/pomutils/internal/bootstrap"
	"github.com/pomframework/pomutils/internal/config"
	"github.com/pomframework/pomutils/internal/logging"
	"github.com/pomframework/pomutils/internal/ui"
	"github.com/pomframework/pomutils/internal/validator"
)

var (
	checkConfig   string
	checkJSON     bool
	checkMarkdown bool
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate a framework options file",
	Long: `Load a framework options file and validate it.

The options file is taken from --config, then POMUTILS_CONFIG, then the first
of pom.json, pom.toml, pom.yaml or pom.yml in the current directory.

Checked options:
  parentDirectory          required, must be an existing directory
  applicationDirectory     defaults to <parentDirectory>/application
  pluginDirectory          optional, must exist when set
  pluginSettingsDirectory  scanned for settings files and namespaces
  verbose, colors          default to true unless explicitly false
  timeout                  milliseconds, defaults to 2000`,
	Example: `  # Check pom.json in the current directory
  pomutils check

  # Check a TOML options file and print JSON
  pomutils check --config framework.toml --json`,
	Args: cobra.NoArgs,
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().StringVarP(&checkConfig, "config", "c", "", "Options file to check")
	checkCmd.Flags().BoolVar(&checkJSON, "json", false, "Print resolved options as JSON")
	checkCmd.Flags().BoolVar(&checkMarkdown, "markdown", false, "Print resolved options as a markdown report")
	checkCmd.MarkFlagsMutuallyExclusive("json", "markdown")
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	diag := logging.New(cmd.ErrOrStderr(), verbose)

	path, err := config.ConfigPath(checkConfig)
	if err != nil {
		return err
	}
	diag.Debug("loading options", "file", path)

	logger, err := newLogger(cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	opts, err := bootstrap.ResolveFile(path, logger)
	if err != nil {
		return err
	}
	diag.Debug("options resolved", "parent", opts.ParentDirectory, "settings", opts.PluginSettings.Path)
	if !opts.PluginSettings.Found() {
		opts.Logger.Warn("plugin settings directory not found", "parent", opts.ParentDirectory)
	}

	switch {
	case checkJSON:
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(opts)
	case checkMarkdown:
		fmt.Fprint(out, ui.RenderMarkdown(optionsReport(path, opts), !ui.IsTerminal(out)))
		return nil
	}

	printOptions(out, path, opts)
	return nil
}

func printOptions(out io.Writer, path string, opts *bootstrap.Options) {
	fmt.Fprintln(out, ui.RenderHeader("Framework Options"))
	fmt.Fprintln(out)
	fmt.Fprintln(out, ui.RenderDetail("File", ui.Bold(path)))
	fmt.Fprintln(out, ui.RenderDetail("Parent", opts.ParentDirectory))
	fmt.Fprintln(out, ui.RenderDetail("Application", opts.ApplicationDirectory))
	fmt.Fprintln(out, ui.RenderDetail("Plugins", ui.RenderDir(opts.PluginDirectory)))
	fmt.Fprintln(out, ui.RenderDetail("Verbose", fmt.Sprint(opts.Verbose)))
	fmt.Fprintln(out, ui.RenderDetail("Colors", fmt.Sprint(opts.Colors)))
	fmt.Fprintln(out, ui.RenderDetail("Timeout", opts.Timeout.String()))
	fmt.Fprintln(out)
	fmt.Fprint(out, ui.RenderPluginSettings(opts.PluginSettings))
	fmt.Fprintln(out)
	ui.PrintSuccess(out, "Options valid")
}

// optionsReport renders resolved options as markdown.
func optionsReport(path string, opts *bootstrap.Options) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Framework Options\n\n")
	fmt.Fprintf(&b, "Source: `%s`\n\n", path)
	fmt.Fprintf(&b, "| Option | Value |\n|---|---|\n")
	fmt.Fprintf(&b, "| parentDirectory | `%s` |\n", opts.ParentDirectory)
	fmt.Fprintf(&b, "| applicationDirectory | `%s` |\n", opts.ApplicationDirectory)
	fmt.Fprintf(&b, "| pluginDirectory | %s |\n", markdownDir(opts.PluginDirectory))
	fmt.Fprintf(&b, "| verbose | %t |\n", opts.Verbose)
	fmt.Fprintf(&b, "| colors | %t |\n", opts.Colors)
	fmt.Fprintf(&b, "| timeout | %s |\n", opts.Timeout)

	b.WriteString("\n")
	b.WriteString(ui.PluginSettingsMarkdown(opts.PluginSettings))
	return b.String()
}

func markdownDir(d validator.Dir) string {
	if !d.Exists() {
		return "_not set_"
	}
	return "`" + d.Path() + "`"
}
