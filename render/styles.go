package render

import "github.com/charmbracelet/lipgloss"

// Colors used for terminal tables.
var (
	ColorCyan  = lipgloss.Color("#00FFFF")
	ColorGray  = lipgloss.Color("#666666")
	ColorWhite = lipgloss.Color("#FFFFFF")
)

// Base styles reused by the table writer.
var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorCyan)

	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorWhite).
			Padding(0, 1)

	CellStyle = lipgloss.NewStyle().
			Padding(0, 1)

	TotalStyle = lipgloss.NewStyle().
			Bold(true).
			Padding(0, 1)

	BorderStyle = lipgloss.NewStyle().
			Foreground(ColorGray)
)
