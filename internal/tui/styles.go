package tui

import "github.com/charmbracelet/lipgloss"

// Shared colors.
var (
	ColorNavy   = lipgloss.Color("17")
	ColorBlue   = lipgloss.Color("39")
	ColorWhite  = lipgloss.Color("252")
	ColorGray   = lipgloss.Color("245")
	ColorYellow = lipgloss.Color("214")
)

// Shared styles.
var (
	sectionStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorNavy).
			Padding(0, 1)

	activeSectionStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(ColorBlue).
				Padding(0, 1)

	chartTitleStyle = lipgloss.NewStyle().
			Foreground(ColorBlue).
			Bold(true)

	helpStyle = lipgloss.NewStyle().
			Foreground(ColorGray)

	statusStyle = lipgloss.NewStyle().
			Background(ColorNavy).
			Foreground(ColorWhite)

	meanStyle = lipgloss.NewStyle().
			Foreground(ColorGray)

	pageTitleStyle = lipgloss.NewStyle().
			Foreground(ColorBlue).
			Bold(true).
			Align(lipgloss.Center)
)

// categoryPalette assigns stable colors to category labels by index. The
// palette wraps for logs with more categories than colors.
var categoryPalette = []lipgloss.Color{"39", "208", "196", "42", "201", "220", "51", "99"}

func categoryStyle(i int) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(categoryPalette[i%len(categoryPalette)])
}

// categoryBarStyle paints both foreground and background so stacked bar
// segments render as solid blocks.
func categoryBarStyle(i int) lipgloss.Style {
	c := categoryPalette[i%len(categoryPalette)]
	return lipgloss.NewStyle().Foreground(c).Background(c)
}
