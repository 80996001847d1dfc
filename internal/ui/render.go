// ABOUTME: Rendering functions for headers, sections, details and settings trees
// ABOUTME: Provides consistent formatting for structured CLI output
package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/pomframework/pomutils/internal/validator"
)

const (
	// HeaderWidth is the fixed width for header boxes
	HeaderWidth = 42
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorAccent).
			Border(lipgloss.DoubleBorder()).
			BorderForeground(ColorAccent).
			Padding(0, 2).
			Width(HeaderWidth).
			Align(lipgloss.Center)

	sectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorInfo)

	labelStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	namespaceStyle = lipgloss.NewStyle().
			Foreground(ColorAccent)
)

// RenderHeader returns a styled header box with the given title
func RenderHeader(title string) string {
	return headerStyle.Render(title)
}

// RenderSection returns a styled section header with optional count
// Pass -1 for count to omit the count display
func RenderSection(title string, count int) string {
	if count >= 0 {
		return sectionStyle.Render(fmt.Sprintf("%s (%d)", title, count))
	}
	return sectionStyle.Render(title)
}

// RenderDetail returns a label: value pair with consistent formatting
func RenderDetail(label, value string) string {
	return labelStyle.Render(label+":") + " " + value
}

// Indent returns the string with the specified indentation level (2 spaces per level)
func Indent(s string, level int) string {
	prefix := strings.Repeat("  ", level)
	return prefix + s
}

// RenderDir returns the path of d, or a muted "not found" marker
func RenderDir(d validator.Dir) string {
	if !d.Exists() {
		return Muted("(not found)")
	}
	return d.Path()
}

// RenderPluginSettings returns a tree of the root files and each namespace
// with its entries, in listing order.
func RenderPluginSettings(s *validator.PluginSettings) string {
	var b strings.Builder

	b.WriteString(RenderDetail("Settings", RenderDir(s.Path)))
	b.WriteString("\n")
	if !s.Found() {
		return b.String()
	}

	b.WriteString(RenderSection("Files", len(s.Files)))
	b.WriteString("\n")
	for _, f := range s.Files {
		b.WriteString(Indent(SymbolBullet+" "+f, 1))
		b.WriteString("\n")
	}

	names := s.NamespaceNames()
	b.WriteString(RenderSection("Namespaces", len(names)))
	b.WriteString("\n")
	if len(names) == 0 {
		b.WriteString(Indent(Muted("none"), 1))
		b.WriteString("\n")
	}
	for _, ns := range names {
		b.WriteString(Indent(namespaceStyle.Render(ns+"/"), 1))
		b.WriteString("\n")
		for _, entry := range s.Namespaces[ns] {
			b.WriteString(Indent(SymbolArrow+" "+entry, 2))
			b.WriteString("\n")
		}
	}

	return b.String()
}
