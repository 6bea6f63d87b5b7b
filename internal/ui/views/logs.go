package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/johanforsgren/gitcollection/internal/logger"
)

// LogsViewModel is the session log overlay opened with :logs.
type LogsViewModel struct {
	viewport viewport.Model
	entries  int
	width    int
	active   bool
}

func NewLogsView() *LogsViewModel {
	return &LogsViewModel{viewport: viewport.New(0, 1)}
}

func (m *LogsViewModel) SetSize(width, height int) {
	m.width = width
	m.viewport.Width = max(width-8, 1)
	m.viewport.Height = max(height-8, 1)
}

// Activate snapshots the log buffer and scrolls to the newest entry.
func (m *LogsViewModel) Activate() {
	m.active = true

	logs := logger.GetLogs()
	m.entries = len(logs)

	lines := make([]string, 0, len(logs))
	for _, entry := range logs {
		style := lipgloss.NewStyle().Foreground(logColor(entry.Message))
		lines = append(lines, style.Render(fmt.Sprintf("[%s] %s", entry.Timestamp.Format("15:04:05.000"), firstLine(entry.Message))))
	}

	m.viewport.SetContent(strings.Join(lines, "\n"))
	m.viewport.GotoBottom()
}

func (m *LogsViewModel) Deactivate() {
	m.active = false
}

func (m *LogsViewModel) IsActive() bool {
	return m.active
}

func (m *LogsViewModel) Update(msg tea.Msg) tea.Cmd {
	if !m.active {
		return nil
	}

	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "g", "home":
			m.viewport.GotoTop()
			return nil
		case "G", "end":
			m.viewport.GotoBottom()
			return nil
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return cmd
}

func (m *LogsViewModel) View() string {
	if !m.active {
		return ""
	}

	var b strings.Builder

	b.WriteString(TitleStyle.Render(fmt.Sprintf("Session Logs (%d entries)", m.entries)))
	b.WriteString("\n")

	if m.entries == 0 {
		b.WriteString(HelpStyle.Render("No logs yet"))
	} else {
		b.WriteString(m.viewport.View())
	}

	b.WriteString("\n\n")
	b.WriteString(HelpStyle.Render(fmt.Sprintf("j/k: Scroll | PgUp/PgDn: Page | g/G: Top/Bottom | Esc: Close | %3.f%%", m.viewport.ScrollPercent()*100)))

	box := BoxStyle
	if m.width > 4 {
		box = box.Width(m.width - 4)
	}
	return box.Render(b.String())
}

func logColor(message string) lipgloss.Color {
	switch {
	case strings.HasPrefix(message, logger.TagError):
		return errorColor
	case strings.HasPrefix(message, logger.TagWarn):
		return warningColor
	case strings.HasPrefix(message, logger.TagWrite):
		return primaryColor
	case strings.HasPrefix(message, logger.TagRead), strings.HasPrefix(message, logger.TagRequest):
		return secondaryColor
	default:
		return lipgloss.Color("#E5E7EB")
	}
}

// firstLine keeps multi-line HTTP dumps to one row in the overlay.
func firstLine(message string) string {
	if idx := strings.IndexByte(message, '\n'); idx != -1 {
		return message[:idx] + " …"
	}
	return message
}
