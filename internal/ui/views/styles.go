package views

import "github.com/charmbracelet/lipgloss"

var (
	primaryColor    = lipgloss.Color("#7C3AED")
	secondaryColor  = lipgloss.Color("#10B981")
	errorColor      = lipgloss.Color("#EF4444")
	warningColor    = lipgloss.Color("#F59E0B")
	mutedColor      = lipgloss.Color("#6B7280")
	foregroundColor = lipgloss.Color("#F9FAFB")
)

var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(primaryColor).
			Bold(true).
			MarginBottom(1)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(errorColor).
			Bold(true)

	PendingStyle = lipgloss.NewStyle().
			Foreground(warningColor).
			Italic(true)

	HelpStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			Italic(true)

	ButtonStyle = lipgloss.NewStyle().
			Foreground(foregroundColor).
			Background(secondaryColor).
			Bold(true).
			Padding(0, 2)

	InputBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(mutedColor).
			Padding(0, 1)

	FocusedInputBoxStyle = InputBoxStyle.
				BorderForeground(primaryColor)

	ErrorInputBoxStyle = InputBoxStyle.
				BorderForeground(errorColor)

	OwnerBadgeStyle = lipgloss.NewStyle().
			Foreground(secondaryColor).
			Bold(true)

	LabelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")).
			Bold(true)

	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(primaryColor).
			Padding(1, 2)
)
