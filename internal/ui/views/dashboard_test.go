package views

import (
	"strings"
	"testing"

	"github.com/johanforsgren/gitcollection/internal/domain"
)

var testRepos = []domain.Repository{
	{
		FullName:    "facebook/react",
		Description: "A JavaScript library for building user interfaces",
		Owner:       domain.Owner{Login: "facebook", AvatarURL: "https://avatars.githubusercontent.com/u/69631?v=4"},
	},
	{
		FullName: "octocat/empty",
		Owner:    domain.Owner{Login: "octocat"},
	},
}

func TestDashboardRendersOneItemPerRepository(t *testing.T) {
	m := NewDashboardView()
	m.SetSize(120, 40)
	m.SetRepositories(testRepos)

	view := m.View()
	for _, repo := range testRepos {
		if !strings.Contains(view, repo.FullName) {
			t.Errorf("expected %s in view", repo.FullName)
		}
	}
	if !strings.Contains(view, "@facebook") {
		t.Error("expected owner badge in view")
	}
	if strings.Contains(view, "Nenhum repositório") {
		t.Error("empty catalog text should not show with entries")
	}
}

func TestDashboardEmptyCatalog(t *testing.T) {
	m := NewDashboardView()
	m.SetSize(120, 40)

	if !strings.Contains(m.View(), "Nenhum repositório no catálogo") {
		t.Error("expected empty catalog text")
	}
}

func TestDashboardRepositoriesIsACopy(t *testing.T) {
	m := NewDashboardView()
	m.SetRepositories(testRepos)

	repos := m.Repositories()
	repos[0].FullName = "mutated/name"

	if m.Repositories()[0].FullName != "facebook/react" {
		t.Error("Repositories should return a copy")
	}
}

func TestDashboardErrorRendering(t *testing.T) {
	m := NewDashboardView()
	m.SetSize(120, 40)

	m.SetError(EmptyDraftMessage)
	if !strings.Contains(m.View(), EmptyDraftMessage) {
		t.Error("expected error message in view")
	}

	m.ClearError()
	if strings.Contains(m.View(), EmptyDraftMessage) {
		t.Error("expected error message to be gone")
	}
}

func TestDashboardPendingIndicator(t *testing.T) {
	m := NewDashboardView()
	m.SetSize(120, 40)

	m.SetPending(true)
	if !strings.Contains(m.View(), "Buscando...") {
		t.Error("expected pending indicator")
	}
}

func TestDashboardSelectedRepository(t *testing.T) {
	m := NewDashboardView()
	m.SetSize(120, 40)

	if m.SelectedRepository() != nil {
		t.Error("expected no selection on an empty catalog")
	}

	m.SetRepositories(testRepos)
	selected := m.SelectedRepository()
	if selected == nil || selected.FullName != "facebook/react" {
		t.Errorf("expected first repository selected, got %+v", selected)
	}
}

func TestRepositoryItem(t *testing.T) {
	item := RepositoryItem{repo: testRepos[1]}

	if item.FilterValue() != "octocat/empty" {
		t.Errorf("unexpected filter value %q", item.FilterValue())
	}
	if item.Description() != "" {
		t.Errorf("expected empty description to stay empty, got %q", item.Description())
	}
	if !strings.Contains(item.Title(), chevron) {
		t.Error("expected chevron in title")
	}
}

func TestOwnerBadgeWithoutLogin(t *testing.T) {
	if !strings.Contains(OwnerBadge(domain.Owner{}), "[?]") {
		t.Error("expected placeholder badge for a missing login")
	}
}

func TestDetailView(t *testing.T) {
	m := NewRepositoryDetailView()
	m.SetSize(100, 30)

	if m.Route() != "" {
		t.Errorf("expected empty route without a repository, got %q", m.Route())
	}

	m.SetRepository(testRepos[0])
	view := m.View()
	for _, want := range []string{"/repositories/facebook/react", "avatars.githubusercontent.com", "building user interfaces"} {
		if !strings.Contains(view, want) {
			t.Errorf("expected %q in detail view", want)
		}
	}
}
