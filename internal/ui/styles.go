package ui

import (
	"github.com/nconklindev/hitlisten/internal/report"

	"github.com/charmbracelet/lipgloss"
)

var (
	TitleStyle = report.TitleStyle.
			MarginTop(1)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(report.Muted).
			MarginBottom(1)

	ErrorStyle = report.BadStyle

	SuccessStyle = report.WarnStyle

	HelpStyle = report.FooterStyle.
			MarginTop(1)

	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(report.Accent).
			Padding(1, 2)

	statusStyle = lipgloss.NewStyle().
			Foreground(report.Muted).
			Italic(true)
)
