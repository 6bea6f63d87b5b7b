package views

import (
	"strings"

	"github.com/johanforsgren/gitcollection/internal/domain"
)

// RepositoryDetailViewModel shows one catalog entry at its detail route.
type RepositoryDetailViewModel struct {
	repo   *domain.Repository
	width  int
	height int
}

func NewRepositoryDetailView() *RepositoryDetailViewModel {
	return &RepositoryDetailViewModel{}
}

func (m *RepositoryDetailViewModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

func (m *RepositoryDetailViewModel) SetRepository(repo domain.Repository) {
	m.repo = &repo
}

func (m *RepositoryDetailViewModel) Route() string {
	if m.repo == nil {
		return ""
	}
	return m.repo.Route()
}

func (m *RepositoryDetailViewModel) View() string {
	if m.repo == nil {
		return HelpStyle.Render("No repository selected")
	}

	var b strings.Builder

	b.WriteString(TitleStyle.Render(m.repo.FullName))
	b.WriteString("\n")
	b.WriteString(LabelStyle.Render("Route: ") + m.repo.Route() + "\n")
	b.WriteString(LabelStyle.Render("Owner: ") + OwnerBadge(m.repo.Owner) + "\n")
	b.WriteString(LabelStyle.Render("Avatar: ") + m.repo.Owner.AvatarURL + "\n")
	b.WriteString("\n")
	b.WriteString(m.repo.Description)
	b.WriteString("\n\n")
	b.WriteString(HelpStyle.Render("Esc/q: Back"))

	box := BoxStyle
	if m.width > 4 {
		box = box.Width(m.width - 4)
	}
	return box.Render(b.String())
}
