package tui

import "github.com/charmbracelet/lipgloss"

var (
	colorPrimary = lipgloss.Color("39")  // blue
	colorAccent  = lipgloss.Color("170") // pink
	colorSuccess = lipgloss.Color("42")  // green
	colorDanger  = lipgloss.Color("196") // red
	colorMuted   = lipgloss.Color("241") // gray

	appStyle = lipgloss.NewStyle().Padding(1, 2)

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	fieldLabelStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Width(14)

	fieldValueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	focusedValueStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(colorAccent)

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorMuted).
			Padding(0, 1).
			MarginTop(1)

	metricLabelStyle = lipgloss.NewStyle().
				Foreground(colorMuted).
				Width(22)

	metricValueStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(colorSuccess)

	taxLineStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("215"))

	errorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorDanger)

	helpStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			MarginTop(1)
)
