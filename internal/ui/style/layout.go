package style

import (
	"github.com/charmbracelet/lipgloss"
)

var palette = DefaultPalette()

var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(palette.Primary).
			Bold(true).
			Margin(1, 0, 0, 0)

	StatusStyle = lipgloss.NewStyle().
			Foreground(palette.Secondary).
			Bold(true)

	LoadingStyle = lipgloss.NewStyle().
			Foreground(palette.Warning).
			Bold(true).
			Padding(1, 2)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(palette.Error).
			Bold(true).
			Padding(1, 2)

	InfoStyle = lipgloss.NewStyle().
			Foreground(palette.TextSecondary).
			Padding(1, 2)
)
