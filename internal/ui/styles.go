package ui

import "github.com/charmbracelet/lipgloss"

// Shared styles for the views
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("215"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("60"))

	axisStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	peakStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("215"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))
)
