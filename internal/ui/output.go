// ABOUTME: Print helpers and the styled Console logger for CLI output
// ABOUTME: Provides success, error, warning, info, and muted output styles
package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

var (
	successStyle = lipgloss.NewStyle().Foreground(ColorSuccess)
	errorStyle   = lipgloss.NewStyle().Foreground(ColorError)
	warningStyle = lipgloss.NewStyle().Foreground(ColorWarning)
	infoStyle    = lipgloss.NewStyle().Foreground(ColorInfo)
	mutedStyle   = lipgloss.NewStyle().Foreground(ColorMuted)
	boldStyle    = lipgloss.NewStyle().Bold(true)
)

// PrintSuccess writes a success message with checkmark symbol to w
func PrintSuccess(w io.Writer, msg string) {
	fmt.Fprintln(w, successStyle.Render(SymbolSuccess+" "+msg))
}

// PrintError writes an error message with X symbol to w
func PrintError(w io.Writer, msg string) {
	fmt.Fprintln(w, errorStyle.Render(SymbolError+" "+msg))
}

// PrintWarning writes a warning message with warning symbol to w
func PrintWarning(w io.Writer, msg string) {
	fmt.Fprintln(w, warningStyle.Render(SymbolWarning+" "+msg))
}

// PrintInfo writes an info message with info symbol to w
func PrintInfo(w io.Writer, msg string) {
	fmt.Fprintln(w, infoStyle.Render(SymbolInfo+" "+msg))
}

// Muted returns a string styled as muted (for inline use)
func Muted(s string) string {
	return mutedStyle.Render(s)
}

// Bold returns a string styled as bold (for inline use)
func Bold(s string) string {
	return boldStyle.Render(s)
}

// Console writes styled log lines to a writer. It satisfies
// validator.Logger. Styling is dropped when the writer is not a terminal.
type Console struct {
	w     io.Writer
	plain bool
}

// NewConsole returns a Console writing to w.
func NewConsole(w io.Writer) *Console {
	return &Console{w: w, plain: !IsTerminal(w)}
}

// IsTerminal reports whether w is a terminal file.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func (c *Console) Log(msg any, keyvals ...any) {
	c.write(lipgloss.NewStyle(), "", msg, keyvals)
}

func (c *Console) Info(msg any, keyvals ...any) {
	c.write(infoStyle, SymbolInfo, msg, keyvals)
}

func (c *Console) Warn(msg any, keyvals ...any) {
	c.write(warningStyle, SymbolWarning, msg, keyvals)
}

func (c *Console) Error(msg any, keyvals ...any) {
	c.write(errorStyle, SymbolError, msg, keyvals)
}

func (c *Console) write(style lipgloss.Style, symbol string, msg any, keyvals []any) {
	line := fmt.Sprint(msg)
	if symbol != "" {
		line = symbol + " " + line
	}
	if !c.plain {
		line = style.Render(line)
	}
	if kv := formatKeyvals(keyvals); kv != "" {
		if !c.plain {
			kv = mutedStyle.Render(kv)
		}
		line += " " + kv
	}
	fmt.Fprintln(c.w, line)
}

// formatKeyvals renders alternating keys and values as k=v pairs.
// A trailing key without a value is shown as k=<missing>.
func formatKeyvals(keyvals []any) string {
	if len(keyvals) == 0 {
		return ""
	}
	pairs := make([]string, 0, (len(keyvals)+1)/2)
	for i := 0; i < len(keyvals); i += 2 {
		val := any("<missing>")
		if i+1 < len(keyvals) {
			val = keyvals[i+1]
		}
		pairs = append(pairs, fmt.Sprintf("%v=%v", keyvals[i], val))
	}
	return strings.Join(pairs, " ")
}
