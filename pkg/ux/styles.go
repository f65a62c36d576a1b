// Package ux provides terminal styling for the benchtab commands.
package ux

import "github.com/charmbracelet/lipgloss"

// Palette used across the benchtab commands.
var (
	ColorAccent  = lipgloss.Color("#7D56F4")
	ColorInfo    = lipgloss.Color("#04B575")
	ColorWarning = lipgloss.Color("#FFA500")
	ColorError   = lipgloss.Color("#FF5555")
)

// Styles groups the terminal styles used for prompts and status lines.
var Styles = struct {
	Title   lipgloss.Style
	Prompt  lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
	Muted   lipgloss.Style
}{
	Title:   lipgloss.NewStyle().Bold(true).Foreground(ColorAccent),
	Prompt:  lipgloss.NewStyle().Foreground(ColorInfo),
	Success: lipgloss.NewStyle().Foreground(ColorInfo),
	Warning: lipgloss.NewStyle().Foreground(ColorWarning),
	Error:   lipgloss.NewStyle().Bold(true).Foreground(ColorError),
	Muted:   lipgloss.NewStyle().Faint(true),
}
