package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type MessageLevel int

const (
	LevelInfo MessageLevel = iota
	LevelWarning
	LevelError
)

type StatusBarModel struct {
	width   int
	message string
	level   MessageLevel
}

func NewStatusBar() *StatusBarModel {
	return &StatusBarModel{}
}

func (m *StatusBarModel) SetWidth(width int) {
	m.width = width
}

func (m *StatusBarModel) SetMessage(message string, isError bool) {
	m.message = message
	m.level = LevelInfo
	if isError {
		m.level = LevelError
	}
}

func (m *StatusBarModel) SetWarning(message string) {
	m.message = message
	m.level = LevelWarning
}

func (m *StatusBarModel) ClearMessage() {
	m.message = ""
	m.level = LevelInfo
}

func (m *StatusBarModel) Message() string {
	return m.message
}

func (m *StatusBarModel) Level() MessageLevel {
	return m.level
}

func (m *StatusBarModel) View() string {
	content := " " + m.message

	if m.width > 3 && lipgloss.Width(content) > m.width {
		runes := []rune(content)
		if len(runes) > m.width-3 {
			runes = runes[:m.width-3]
		}
		content = string(runes) + "..."
	} else if lipgloss.Width(content) < m.width {
		content += strings.Repeat(" ", m.width-lipgloss.Width(content))
	}

	bgColor := lipgloss.Color("#374151")
	switch m.level {
	case LevelWarning:
		bgColor = lipgloss.Color("#92400E")
	case LevelError:
		bgColor = lipgloss.Color("#991B1B")
	}

	style := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#F9FAFB")).
		Background(bgColor).
		Width(m.width)

	return style.Render(content)
}
