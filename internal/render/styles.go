package render

import "github.com/charmbracelet/lipgloss"

// Shared terminal styles for scene reports and the inspector.
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("86"))

	Header = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("255"))

	Label = lipgloss.NewStyle().
		Foreground(lipgloss.Color("242"))

	Value = lipgloss.NewStyle().
		Foreground(lipgloss.Color("117"))

	Accent = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("213"))

	ErrText = lipgloss.NewStyle().
		Foreground(lipgloss.Color("203"))

	Panel = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("238")).
		Padding(0, 1)
)
