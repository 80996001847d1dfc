// ABOUTME: Markdown rendering using glamour for option reports
// ABOUTME: Builds the plugin settings section and falls back to raw text when piped
package ui

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/x/term"

	"github.com/pomframework/pomutils/internal/validator"
)

// RenderMarkdown renders markdown content for terminal display.
// When raw is true, returns content unchanged (for piping).
func RenderMarkdown(content string, raw bool) string {
	if raw {
		return content
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(terminalWidth()),
	)
	if err != nil {
		return content
	}

	rendered, err := renderer.Render(content)
	if err != nil {
		return content
	}
	return rendered
}

func terminalWidth() int {
	width, _, err := term.GetSize(os.Stdout.Fd())
	if err != nil || width <= 0 {
		return 80
	}
	return width
}

// PluginSettingsMarkdown returns a markdown section listing the root files
// and each namespace with its entries.
func PluginSettingsMarkdown(s *validator.PluginSettings) string {
	var b strings.Builder

	b.WriteString("## Plugin Settings\n\n")
	if !s.Found() {
		b.WriteString("_Not found._\n")
		return b.String()
	}
	fmt.Fprintf(&b, "Directory: `%s`\n\n", s.Path.Path())
	if len(s.Files) > 0 {
		b.WriteString("### Files\n\n")
		for _, f := range s.Files {
			fmt.Fprintf(&b, "- %s\n", f)
		}
		b.WriteString("\n")
	}
	for _, ns := range s.NamespaceNames() {
		fmt.Fprintf(&b, "### %s\n\n", ns)
		for _, entry := range s.Namespaces[ns] {
			fmt.Fprintf(&b, "- %s\n", entry)
		}
		b.WriteString("\n")
	}
	return b.String()
}
