package tui

import "github.com/charmbracelet/lipgloss"

var (
	colorPrimary = lipgloss.Color("#7D56F4")
	colorMuted   = lipgloss.Color("#6B6B6B")
	colorGood    = lipgloss.Color("#04B575")
	colorBad     = lipgloss.Color("#FF5F87")
	colorWarn    = lipgloss.Color("#FFB454")

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(colorPrimary).
			Padding(0, 2)

	labelStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Width(22)

	focusedLabelStyle = labelStyle.
				Foreground(colorPrimary).
				Bold(true)

	valueStyle = lipgloss.NewStyle().
			Bold(true)

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorMuted).
			Padding(1, 2)

	resultPanelStyle = panelStyle.
				BorderForeground(colorPrimary)

	helpStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	errorStyle = lipgloss.NewStyle().
			Foreground(colorBad).
			Bold(true)
)

// healthStyle picks a color matching the financial health band.
func healthStyle(health string) lipgloss.Style {
	switch health {
	case "excellent", "good":
		return lipgloss.NewStyle().Foreground(colorGood).Bold(true)
	case "tight":
		return lipgloss.NewStyle().Foreground(colorWarn).Bold(true)
	default:
		return lipgloss.NewStyle().Foreground(colorBad).Bold(true)
	}
}
