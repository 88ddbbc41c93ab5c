package cmd

import "github.com/charmbracelet/lipgloss"

// Curated palette for CLI output. ANSI indices keep rendering consistent with
// whatever theme the terminal uses.
var (
	colorRed      = lipgloss.Color("1")
	colorYellow   = lipgloss.Color("3")
	colorHiPurple = lipgloss.Color("13")
)

func fg(c lipgloss.Color) func(string) string {
	return func(s string) string { return lipgloss.NewStyle().Foreground(c).Render(s) }
}

var (
	faint  = func(s string) string { return lipgloss.NewStyle().Faint(true).Render(s) }
	bold   = func(s string) string { return lipgloss.NewStyle().Bold(true).Render(s) }
	header = func(s string) string {
		return lipgloss.NewStyle().Bold(true).Foreground(colorHiPurple).Render(s)
	}
	errorTitle = func(s string) string {
		return lipgloss.NewStyle().Foreground(lipgloss.Color("230")).Background(colorRed).Padding(0, 1).Render(s)
	}
)
