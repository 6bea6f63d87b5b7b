package components

import (
	"strings"
	"testing"
)

func TestStatusBarLevels(t *testing.T) {
	bar := NewStatusBar()
	bar.SetWidth(40)

	bar.SetMessage("Added facebook/react", false)
	if bar.Level() != LevelInfo {
		t.Errorf("expected info level, got %v", bar.Level())
	}

	bar.SetWarning("catalog not saved")
	if bar.Level() != LevelWarning {
		t.Errorf("expected warning level, got %v", bar.Level())
	}

	bar.SetMessage("lookup failed", true)
	if bar.Level() != LevelError {
		t.Errorf("expected error level, got %v", bar.Level())
	}

	bar.ClearMessage()
	if bar.Message() != "" || bar.Level() != LevelInfo {
		t.Error("expected cleared message at info level")
	}
}

func TestStatusBarTruncatesLongMessages(t *testing.T) {
	bar := NewStatusBar()
	bar.SetWidth(20)
	bar.SetMessage(strings.Repeat("x", 100), false)

	if !strings.Contains(bar.View(), "...") {
		t.Error("expected long message to be truncated with ellipsis")
	}
}

func TestStatusBarNarrowWidthDoesNotPanic(t *testing.T) {
	bar := NewStatusBar()
	bar.SetWidth(2)
	bar.SetMessage("a long message", true)
	_ = bar.View()
}

func TestCommandBarActivation(t *testing.T) {
	bar := NewCommandBar()
	bar.Activate()

	if bar.Value() != ":" {
		t.Errorf("expected ':' right after activation, got %q", bar.Value())
	}

	bar.Deactivate()
	if bar.IsActive() || bar.View() != "" {
		t.Error("expected inactive bar to render nothing")
	}
}

func TestTopBarShowsCatalogContext(t *testing.T) {
	bar := NewTopBar()
	bar.SetWidth(120)
	bar.SetRepositoryCount(3)
	bar.SetStorageKey("@GitCollection:repositories")
	bar.SetView("Catalog")
	bar.SetShortcuts([]string{"<enter> search", "<tab> list"})

	out := bar.View()
	for _, want := range []string{"GitCollection", "Repositories: ", "3", "anonymous", "search"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected top bar to contain %q", want)
		}
	}

	bar.SetPending("golang/go")
	if !strings.Contains(bar.View(), "golang/go") {
		t.Error("expected pending lookup to be shown")
	}
}
