// tui/styles.go
package tui

import "github.com/charmbracelet/lipgloss"

var (
	StatusStyle = lipgloss.NewStyle().Border(lipgloss.ThickBorder()).BorderForeground(lipgloss.Color("69")).Padding(0, 1)
	TitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("69"))
	NoticeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	ErrorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF5733"))
)
