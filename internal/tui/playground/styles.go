package playground

import "github.com/charmbracelet/lipgloss"

var (
	rulerStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	statusStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	flippedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
)
