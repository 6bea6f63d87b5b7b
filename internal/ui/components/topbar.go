package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type TopBarModel struct {
	width         int
	repoCount     int
	authenticated bool
	storageKey    string
	currentRepo   string
	currentView   string
	pending       string
	shortcuts     []string
}

var (
	titleStyle        = lipgloss.NewStyle().Padding(1, 2)
	titleOrangeStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true)
	valueWhiteStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("15"))
	shortcutBlueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("33")).Bold(true)
	descGrayStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("246"))
)

const (
	fixedRows       = 5
	contextColWidth = 45
	colMargin       = 4
)

func NewTopBar() *TopBarModel {
	return &TopBarModel{}
}

func (m *TopBarModel) SetWidth(width int) {
	m.width = width
}

func (m *TopBarModel) SetRepositoryCount(count int) {
	m.repoCount = count
}

func (m *TopBarModel) SetAuthenticated(authenticated bool) {
	m.authenticated = authenticated
}

func (m *TopBarModel) SetStorageKey(key string) {
	m.storageKey = key
}

func (m *TopBarModel) SetContext(repo string) {
	m.currentRepo = repo
}

func (m *TopBarModel) SetPending(identifier string) {
	m.pending = identifier
}

func (m *TopBarModel) SetView(view string) {
	m.currentView = view
}

func (m *TopBarModel) SetShortcuts(shortcuts []string) {
	m.shortcuts = shortcuts
}

func (m *TopBarModel) View() string {
	titleLine := titleOrangeStyle.Render("GitCollection")

	contextLines := m.buildContextInfo()
	shortcutCol1, shortcutCol2, col1Width := m.buildShortcutsDisplay(len(contextLines))

	topSection := []string{titleLine, ""}

	for i := 0; i < fixedRows; i++ {
		var contextCol, sc1, sc2 string

		if i < len(contextLines) {
			contextCol = contextLines[i]
		}
		if i < len(shortcutCol1) {
			sc1 = shortcutCol1[i]
		}
		if i < len(shortcutCol2) {
			sc2 = shortcutCol2[i]
		}

		padding1 := contextColWidth - lipgloss.Width(contextCol)
		if padding1 < 0 {
			padding1 = 1
		}

		line := contextCol + strings.Repeat(" ", padding1) + sc1

		if sc2 != "" {
			padding2 := col1Width - lipgloss.Width(sc1) + colMargin
			if padding2 < colMargin {
				padding2 = colMargin
			}
			line += strings.Repeat(" ", padding2) + sc2
		}

		topSection = append(topSection, line)
	}

	return titleStyle.Width(m.width).Render(strings.Join(topSection, "\n"))
}

func (m *TopBarModel) buildContextInfo() []string {
	var lines []string

	lines = append(lines,
		"📦 "+
			titleOrangeStyle.Render("Repositories: ")+
			valueWhiteStyle.Render(fmt.Sprintf("%d", m.repoCount)))

	auth := "anonymous"
	if m.authenticated {
		auth = "token"
	}
	lines = append(lines,
		"🔑 "+
			titleOrangeStyle.Render("GitHub: ")+
			valueWhiteStyle.Render(auth))

	if m.storageKey != "" {
		key := m.storageKey
		if len(key) > 32 {
			key = key[:29] + "..."
		}
		lines = append(lines,
			"💾 "+
				titleOrangeStyle.Render("Slot: ")+
				valueWhiteStyle.Render(key))
	}

	if m.pending != "" {
		lines = append(lines,
			"⏳ "+
				titleOrangeStyle.Render("Looking up: ")+
				valueWhiteStyle.Render(m.pending))
	} else if m.currentRepo != "" {
		lines = append(lines,
			"📋 "+
				titleOrangeStyle.Render("Repo: ")+
				valueWhiteStyle.Render(m.currentRepo))
	}

	viewName := m.currentView
	if viewName == "" {
		viewName = "Catalog"
	}
	lines = append(lines,
		"🎯 "+
			titleOrangeStyle.Render("View: ")+
			valueWhiteStyle.Render(viewName))

	for len(lines) < fixedRows {
		lines = append(lines, "")
	}

	return lines
}

func (m *TopBarModel) buildShortcutsDisplay(contextHeight int) ([]string, []string, int) {
	var formattedShortcuts []string
	maxWidth := 0

	for _, shortcut := range m.shortcuts {
		parts := strings.SplitN(shortcut, ">", 2)
		if len(parts) != 2 {
			continue
		}

		key := strings.TrimPrefix(parts[0], "<")
		desc := strings.TrimSpace(parts[1])

		formatted := shortcutBlueStyle.Render("<"+key+">") + " " + descGrayStyle.Render(desc)
		formattedShortcuts = append(formattedShortcuts, formatted)

		if width := lipgloss.Width(formatted); width > maxWidth {
			maxWidth = width
		}
	}

	minRows := fixedRows
	if contextHeight > minRows {
		minRows = contextHeight
	}

	if len(formattedShortcuts) <= minRows {
		return formattedShortcuts, nil, maxWidth
	}

	return formattedShortcuts[:minRows], formattedShortcuts[minRows:], maxWidth
}
