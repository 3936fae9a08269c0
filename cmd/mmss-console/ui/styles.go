// Package ui provides the bubbletea dashboard and visual styling for the
// MMSS operator console.
package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Semantic colors, adaptive between light and dark terminals.
var (
	colorPrimary = lipgloss.AdaptiveColor{Light: "#101F38", Dark: "#8BC34A"}
	colorMuted   = lipgloss.AdaptiveColor{Light: "#8a919c", Dark: "#5c6773"}
	colorBorder  = lipgloss.AdaptiveColor{Light: "#dce0e5", Dark: "#2a3850"}
	colorError   = lipgloss.AdaptiveColor{Light: "#e53935", Dark: "#e57373"}
	colorSuccess = lipgloss.AdaptiveColor{Light: "#43a047", Dark: "#8BC34A"}
	colorWarning = lipgloss.AdaptiveColor{Light: "#f9a825", Dark: "#FFC107"}
	colorInfo    = lipgloss.AdaptiveColor{Light: "#1e88e5", Dark: "#2196F3"}
)

// Styles holds the rendered styles for the dashboard.
type Styles struct {
	Title   lipgloss.Style
	Header  lipgloss.Style
	Bold    lipgloss.Style
	Body    lipgloss.Style
	Muted   lipgloss.Style
	Error   lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
	Info    lipgloss.Style
	Panel   lipgloss.Style
	Label   lipgloss.Style
	Value   lipgloss.Style
}

// DefaultStyles returns the standard console styles.
func DefaultStyles() Styles {
	return Styles{
		Title:   lipgloss.NewStyle().Bold(true).Foreground(colorPrimary),
		Header:  lipgloss.NewStyle().Bold(true).Foreground(colorPrimary).Underline(true),
		Bold:    lipgloss.NewStyle().Bold(true),
		Body:    lipgloss.NewStyle(),
		Muted:   lipgloss.NewStyle().Foreground(colorMuted),
		Error:   lipgloss.NewStyle().Foreground(colorError),
		Success: lipgloss.NewStyle().Foreground(colorSuccess),
		Warning: lipgloss.NewStyle().Foreground(colorWarning),
		Info:    lipgloss.NewStyle().Foreground(colorInfo),
		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(0, 1),
		Label: lipgloss.NewStyle().Foreground(colorMuted).Width(22),
		Value: lipgloss.NewStyle().Bold(true),
	}
}
