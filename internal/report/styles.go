package report

import "github.com/charmbracelet/lipgloss"

// Palette shared by the report and the terminal UI.
const (
	Accent      = lipgloss.Color("#FF8C42")
	AccentLight = lipgloss.Color("#FF9F5A")
	Muted       = lipgloss.Color("#6B7280")
	Good        = lipgloss.Color("#22C55E")
	Warn        = lipgloss.Color("#FFB84D")
	Bad         = lipgloss.Color("#FF4757")
	Neutral     = lipgloss.Color("#FFFFFF")
)

var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(Accent)

	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(Accent).
			Padding(0, 1)

	CellStyle = lipgloss.NewStyle().
			Foreground(Neutral).
			Padding(0, 1)

	NumberStyle = CellStyle.
			Align(lipgloss.Right)

	BorderStyle = lipgloss.NewStyle().
			Foreground(Muted)

	FooterStyle = lipgloss.NewStyle().
			Foreground(Muted)

	GoodStyle = lipgloss.NewStyle().
			Foreground(Good).
			Bold(true)

	WarnStyle = lipgloss.NewStyle().
			Foreground(Warn).
			Bold(true)

	BadStyle = lipgloss.NewStyle().
			Foreground(Bad).
			Bold(true)
)
