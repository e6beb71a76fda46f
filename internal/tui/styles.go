package tui

import "github.com/charmbracelet/lipgloss"

var (
	colorPrimary = lipgloss.Color("4")
	colorSuccess = lipgloss.Color("2")
	colorWarning = lipgloss.Color("3")
	colorDanger  = lipgloss.Color("1")
	colorMuted   = lipgloss.Color("8")

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorMuted).
			Padding(0, 1)

	tabStyle       = lipgloss.NewStyle().Foreground(colorMuted).Align(lipgloss.Center)
	activeTabStyle = lipgloss.NewStyle().Bold(true).Foreground(colorPrimary).Underline(true).Align(lipgloss.Center)

	labelStyle = lipgloss.NewStyle().Bold(true).Align(lipgloss.Center)

	buttonStyle        = lipgloss.NewStyle().Foreground(colorMuted).Align(lipgloss.Center)
	focusedButtonStyle = lipgloss.NewStyle().Bold(true).Foreground(colorPrimary).Reverse(true).Align(lipgloss.Center)

	cursorStyle = lipgloss.NewStyle().Bold(true).Foreground(colorSuccess)
	mutedStyle  = lipgloss.NewStyle().Foreground(colorMuted)

	statusStyles = map[statusKind]lipgloss.Style{
		statusInfo: lipgloss.NewStyle().Foreground(colorMuted),
		statusOK:   lipgloss.NewStyle().Foreground(colorSuccess),
		statusWarn: lipgloss.NewStyle().Foreground(colorWarning),
		statusErr:  lipgloss.NewStyle().Bold(true).Foreground(colorDanger),
	}
)
