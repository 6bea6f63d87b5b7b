package ui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/johanforsgren/gitcollection/internal/catalog"
	"github.com/johanforsgren/gitcollection/internal/domain"
	"github.com/johanforsgren/gitcollection/internal/logger"
	"github.com/johanforsgren/gitcollection/internal/provider/common"
	"github.com/johanforsgren/gitcollection/internal/ui/components"
	"github.com/johanforsgren/gitcollection/internal/ui/views"
)

type ViewState int

const (
	ViewDashboard ViewState = iota
	ViewDetail
)

// chromeHeight is the number of rows taken by the top bar and status bar.
const chromeHeight = 11

// Session describes how the catalog is wired, for display in the top bar.
type Session struct {
	Authenticated bool
	StorageKey    string
}

type Model struct {
	state           ViewState
	width           int
	height          int
	topBar          *components.TopBarModel
	statusBar       *components.StatusBarModel
	commandBar      *components.CommandBarModel
	dashboard       *views.DashboardViewModel
	detail          *views.RepositoryDetailViewModel
	logsView        *views.LogsViewModel
	catalog         *catalog.Service
	catalogVersion  int
	ctx             context.Context
	commandRegistry *CommandRegistry
}

func NewModel(service *catalog.Service, session Session) Model {
	m := Model{
		state:           ViewDashboard,
		topBar:          components.NewTopBar(),
		statusBar:       components.NewStatusBar(),
		commandBar:      components.NewCommandBar(),
		dashboard:       views.NewDashboardView(),
		detail:          views.NewRepositoryDetailView(),
		logsView:        views.NewLogsView(),
		catalog:         service,
		ctx:             context.Background(),
		commandRegistry: NewCommandRegistry(),
	}

	m.topBar.SetAuthenticated(session.Authenticated)
	m.topBar.SetStorageKey(session.StorageKey)
	m.topBar.SetView("Catalog")
	m.updateShortcuts()

	return m
}

func (m Model) Init() tea.Cmd {
	return m.loadCatalog()
}

func (m Model) keyContext() KeyContext {
	if m.state == ViewDetail {
		return ContextDetail
	}
	if m.dashboard.Focus() == views.FocusList {
		return ContextList
	}
	return ContextInput
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.topBar.SetWidth(msg.Width)
		m.statusBar.SetWidth(msg.Width)
		m.commandBar.SetWidth(msg.Width)
		m.dashboard.SetSize(msg.Width, msg.Height-chromeHeight)
		m.detail.SetSize(msg.Width, msg.Height-chromeHeight)
		m.logsView.SetSize(msg.Width, msg.Height-chromeHeight)
		return m, nil

	case tea.KeyMsg:
		key := msg.String()

		if key == "ctrl+c" {
			return m, tea.Quit
		}

		if m.commandBar.IsActive() {
			switch key {
			case "enter":
				return m.handleCommand()
			case "esc":
				m.commandBar.Deactivate()
				return m, nil
			default:
				cmd = m.commandBar.Update(msg)
				return m, cmd
			}
		}

		if m.logsView.IsActive() {
			switch key {
			case "esc", "q":
				m.logsView.Deactivate()
				return m, nil
			default:
				cmd = m.logsView.Update(msg)
				return m, cmd
			}
		}

		if m.state == ViewDashboard && m.dashboard.IsFiltering() {
			cmd = m.dashboard.Update(msg)
			return m, cmd
		}

		newModel, cmd, handled := m.commandRegistry.HandleKey(m, key)
		if handled {
			return newModel, cmd
		}

	case CatalogLoadedMsg:
		if msg.version != m.catalogVersion {
			logger.LogWarning("UI: Dropping catalog read from before the last append")
			return m, nil
		}
		m.dashboard.SetRepositories(msg.repos)
		m.topBar.SetRepositoryCount(len(msg.repos))
		if msg.warning != nil {
			m.statusBar.SetWarning(fmt.Sprintf("Stored catalog could not be read, starting empty: %v", msg.warning))
		} else {
			m.statusBar.SetMessage(fmt.Sprintf("Loaded %d repositories", len(msg.repos)), false)
		}
		return m, nil

	case RepositoryFoundMsg:
		return m.handleRepositoryFound(msg)

	case RepositoryLookupFailedMsg:
		m.dashboard.SetPending(false)
		m.topBar.SetPending("")
		m.dashboard.SetError(views.LookupFailedMessage)
		m.statusBar.SetMessage(fmt.Sprintf("%s: %s", msg.identifier, common.ExtractErrorMessage(msg.err)), true)
		logger.LogError("LOOKUP", msg.identifier, msg.err)
		return m, nil

	case ErrorMsg:
		m.statusBar.SetMessage(msg.err.Error(), true)
		return m, nil
	}

	if m.state == ViewDashboard {
		cmd = m.dashboard.Update(msg)
	}

	return m, cmd
}

func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	var content string

	if m.logsView.IsActive() {
		content = m.logsView.View()
	} else {
		switch m.state {
		case ViewDashboard:
			content = m.dashboard.View()
		case ViewDetail:
			content = m.detail.View()
		}
	}

	topBar := m.topBar.View()
	statusBar := m.statusBar.View()
	commandBar := m.commandBar.View()

	if commandBar != "" {
		return topBar + "\n" + content + "\n" + commandBar
	}

	return topBar + "\n" + content + "\n" + statusBar
}

func (m Model) handleCommand() (tea.Model, tea.Cmd) {
	command := ParseCommand(m.commandBar.Value())
	m.commandBar.Deactivate()
	return m.commandRegistry.ExecuteCommand(m, command)
}

// handleSubmit starts a lookup for the current draft. The previous error is
// cleared on every attempt and only one lookup runs at a time.
func (m Model) handleSubmit() (tea.Model, tea.Cmd) {
	m.dashboard.ClearError()

	draft := strings.TrimSpace(m.dashboard.Draft())
	if draft == "" {
		m.dashboard.SetError(views.EmptyDraftMessage)
		return m, nil
	}

	if m.dashboard.IsPending() {
		m.statusBar.SetMessage("A search is already in progress", false)
		return m, nil
	}

	m.dashboard.SetPending(true)
	m.topBar.SetPending(draft)
	m.statusBar.SetMessage("Searching "+draft+"...", false)
	logger.Log("UI: Looking up %s", draft)

	return m, m.lookupRepository(draft)
}

func (m Model) handleRepositoryFound(msg RepositoryFoundMsg) (tea.Model, tea.Cmd) {
	m.dashboard.SetPending(false)
	m.topBar.SetPending("")
	logger.Log("UI: %s resolved to %s", msg.identifier, msg.repo.FullName)

	// Loads issued before this append are stale once it lands.
	m.catalogVersion++
	next := catalog.Append(m.dashboard.Repositories(), msg.repo)
	m.dashboard.SetRepositories(next)
	m.dashboard.ResetDraft()
	m.topBar.SetRepositoryCount(len(next))

	if err := m.catalog.Save(next); err != nil {
		logger.LogError("SAVE_CATALOG", msg.repo.FullName, err)
		m.statusBar.SetWarning(fmt.Sprintf("Added %s but the catalog was not saved: %v", msg.repo.FullName, err))
		return m, nil
	}

	m.statusBar.SetMessage("Added "+msg.repo.FullName, false)
	return m, nil
}

func (m Model) focusList() (tea.Model, tea.Cmd) {
	m.dashboard.FocusList()
	m.updateShortcuts()
	return m, nil
}

func (m Model) focusInput() (tea.Model, tea.Cmd) {
	m.dashboard.FocusInput()
	m.updateShortcuts()
	return m, nil
}

func (m Model) openCommandBar() (tea.Model, tea.Cmd) {
	m.commandBar.Activate()
	return m, nil
}

func (m Model) openDetail() (tea.Model, tea.Cmd) {
	repo := m.dashboard.SelectedRepository()
	if repo == nil {
		return m, nil
	}

	logger.Log("UI: Opening %s", repo.Route())
	m.detail.SetRepository(*repo)
	m.state = ViewDetail
	m.topBar.SetContext(repo.FullName)
	m.topBar.SetView("Repository")
	m.updateShortcuts()
	return m, nil
}

func (m Model) navigateBack() (tea.Model, tea.Cmd) {
	if m.state != ViewDetail {
		return m, nil
	}

	logger.Log("UI: Navigating back to catalog")
	m.state = ViewDashboard
	m.topBar.SetContext("")
	m.topBar.SetView("Catalog")
	m.updateShortcuts()
	return m, nil
}

func (m Model) loadCatalog() tea.Cmd {
	service := m.catalog
	version := m.catalogVersion
	return func() tea.Msg {
		repos, err := service.Load()
		if err != nil {
			if errors.Is(err, domain.ErrCorruptCatalog) {
				return CatalogLoadedMsg{repos: repos, warning: err, version: version}
			}
			return ErrorMsg{err: fmt.Errorf("failed to load catalog: %w", err)}
		}
		return CatalogLoadedMsg{repos: repos, version: version}
	}
}

func (m Model) lookupRepository(identifier string) tea.Cmd {
	ctx := m.ctx
	service := m.catalog
	return func() tea.Msg {
		repo, err := service.Lookup(ctx, identifier)
		if err != nil {
			return RepositoryLookupFailedMsg{identifier: identifier, err: err}
		}
		return RepositoryFoundMsg{identifier: identifier, repo: repo}
	}
}

func (m Model) updateShortcuts() {
	m.topBar.SetShortcuts(m.commandRegistry.GetContextualShortcuts(m.keyContext()))
}

type CatalogLoadedMsg struct {
	repos   []domain.Repository
	warning error
	version int
}

type RepositoryFoundMsg struct {
	identifier string
	repo       domain.Repository
}

type RepositoryLookupFailedMsg struct {
	identifier string
	err        error
}

type ErrorMsg struct {
	err error
}
