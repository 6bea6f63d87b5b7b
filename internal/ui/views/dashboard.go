package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/johanforsgren/gitcollection/internal/domain"
)

const (
	EmptyDraftMessage   = "Informe o username/repositório"
	LookupFailedMessage = "Erro na busca por esse repositório"

	dashboardTitle   = "Catálogo de repositórios do GitHub"
	inputPlaceholder = "username/repository_name"
	chevron          = "›"
)

type RepositoryItem struct {
	repo domain.Repository
}

func (i RepositoryItem) FilterValue() string { return i.repo.FullName }
func (i RepositoryItem) Title() string {
	return fmt.Sprintf("%s %s %s", OwnerBadge(i.repo.Owner), i.repo.FullName, chevron)
}
func (i RepositoryItem) Description() string { return i.repo.Description }

func (i RepositoryItem) Repository() domain.Repository { return i.repo }

// OwnerBadge stands in for the avatar image, which a terminal cannot show.
func OwnerBadge(owner domain.Owner) string {
	if owner.Login == "" {
		return OwnerBadgeStyle.Render("[?]")
	}
	return OwnerBadgeStyle.Render("[@" + owner.Login + "]")
}

type DashboardFocus int

const (
	FocusInput DashboardFocus = iota
	FocusList
)

// DashboardViewModel holds the catalog, the draft identifier and the
// validation message shown under the form.
type DashboardViewModel struct {
	list    list.Model
	input   textinput.Model
	repos   []domain.Repository
	errMsg  string
	pending bool
	focus   DashboardFocus
	width   int
	height  int
}

func NewDashboardView() *DashboardViewModel {
	l := list.New([]list.Item{}, list.NewDefaultDelegate(), 0, 0)
	l.Title = "Repositórios"
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	l.SetFilteringEnabled(true)

	input := textinput.New()
	input.Placeholder = inputPlaceholder
	input.CharLimit = 200
	input.Prompt = ""
	input.Focus()

	return &DashboardViewModel{
		list:  l,
		input: input,
		repos: []domain.Repository{},
		focus: FocusInput,
	}
}

func (m *DashboardViewModel) SetSize(width, height int) {
	m.width = width
	m.height = height

	if width > 20 {
		m.input.Width = width - 20
	}

	listHeight := height - 18
	if listHeight < 3 {
		listHeight = 3
	}
	m.list.SetSize(width, listHeight)
}

func (m *DashboardViewModel) SetRepositories(repos []domain.Repository) {
	m.repos = make([]domain.Repository, len(repos))
	copy(m.repos, repos)

	items := make([]list.Item, len(repos))
	for i, repo := range repos {
		items[i] = RepositoryItem{repo: repo}
	}
	m.list.SetItems(items)
}

// Repositories returns a copy of the catalog in insertion order.
func (m *DashboardViewModel) Repositories() []domain.Repository {
	repos := make([]domain.Repository, len(m.repos))
	copy(repos, m.repos)
	return repos
}

func (m *DashboardViewModel) Draft() string {
	return m.input.Value()
}

func (m *DashboardViewModel) SetDraft(text string) {
	m.input.SetValue(text)
}

func (m *DashboardViewModel) ResetDraft() {
	m.input.Reset()
}

func (m *DashboardViewModel) Error() string {
	return m.errMsg
}

func (m *DashboardViewModel) SetError(msg string) {
	m.errMsg = msg
}

func (m *DashboardViewModel) ClearError() {
	m.errMsg = ""
}

func (m *DashboardViewModel) IsPending() bool {
	return m.pending
}

func (m *DashboardViewModel) SetPending(pending bool) {
	m.pending = pending
}

func (m *DashboardViewModel) Focus() DashboardFocus {
	return m.focus
}

func (m *DashboardViewModel) FocusInput() {
	m.focus = FocusInput
	m.input.Focus()
}

func (m *DashboardViewModel) FocusList() {
	m.focus = FocusList
	m.input.Blur()
}

func (m *DashboardViewModel) IsFiltering() bool {
	return m.list.FilterState() == list.Filtering
}

func (m *DashboardViewModel) SelectedRepository() *domain.Repository {
	item := m.list.SelectedItem()
	if item == nil {
		return nil
	}

	repoItem, ok := item.(RepositoryItem)
	if !ok {
		return nil
	}

	repo := repoItem.Repository()
	return &repo
}

func (m *DashboardViewModel) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd

	if m.focus == FocusInput {
		m.input, cmd = m.input.Update(msg)
		return cmd
	}

	m.list, cmd = m.list.Update(msg)
	return cmd
}

func (m *DashboardViewModel) View() string {
	var b strings.Builder

	b.WriteString(TitleStyle.Render(dashboardTitle))
	b.WriteString("\n")

	box := InputBoxStyle
	switch {
	case m.errMsg != "":
		box = ErrorInputBoxStyle
	case m.focus == FocusInput:
		box = FocusedInputBoxStyle
	}
	b.WriteString(box.Render(m.input.View()) + " " + ButtonStyle.Render("Buscar"))
	b.WriteString("\n")

	if m.errMsg != "" {
		b.WriteString(ErrorStyle.Render(m.errMsg))
		b.WriteString("\n")
	}

	if m.pending {
		b.WriteString(PendingStyle.Render("Buscando..."))
		b.WriteString("\n")
	}

	b.WriteString("\n")

	if len(m.repos) == 0 {
		b.WriteString(HelpStyle.Render("Nenhum repositório no catálogo"))
	} else {
		b.WriteString(m.list.View())
	}

	b.WriteString("\n")
	b.WriteString(HelpStyle.Render(m.helpText()))

	return b.String()
}

func (m *DashboardViewModel) helpText() string {
	if m.focus == FocusInput {
		return "Enter: Buscar | Tab: Lista | Ctrl+C: Sair"
	}
	return "Enter: Detalhes | /: Filtrar | Tab/Esc: Busca | :: Comando | q: Sair"
}
