// ABOUTME: Package documentation for the ui package
// ABOUTME: Describes the purpose and usage patterns for terminal styling

// Package ui provides consistent terminal styling and output formatting
// for pomutils commands using lipgloss.
//
// Usage:
//   - Use Print* functions for standalone messages: ui.PrintSuccess(w, "Options valid")
//   - Use a Console when a validator.Logger is needed: ui.NewConsole(os.Stdout)
//   - Use Render* helpers for structured output such as discovered plugin settings
//   - Respects NO_COLOR environment variable for accessibility
package ui
