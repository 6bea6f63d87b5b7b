package ui

import (
	"strings"
	"testing"

	"github.com/johanforsgren/gitcollection/internal/ui/components"
	"github.com/johanforsgren/gitcollection/internal/ui/views"
)

func createTestModel() Model {
	return Model{
		state:           ViewDashboard,
		topBar:          components.NewTopBar(),
		statusBar:       components.NewStatusBar(),
		commandBar:      components.NewCommandBar(),
		dashboard:       views.NewDashboardView(),
		detail:          views.NewRepositoryDetailView(),
		logsView:        views.NewLogsView(),
		commandRegistry: NewCommandRegistry(),
	}
}

func TestParseCommand(t *testing.T) {
	tests := []struct {
		input    string
		expected CommandType
		args     int
	}{
		{input: ":q", expected: CommandQuit},
		{input: ":quit", expected: CommandQuit},
		{input: ":l", expected: CommandLogs},
		{input: ":logs", expected: CommandLogs},
		{input: ":r", expected: CommandReload},
		{input: " :reload ", expected: CommandReload},
		{input: ":h", expected: CommandHelp},
		{input: ":help topics", expected: CommandHelp, args: 1},
		{input: ":", expected: CommandUnknown},
		{input: "quit", expected: CommandUnknown},
		{input: ":frobnicate", expected: CommandUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			cmd := ParseCommand(tt.input)
			if cmd.Type != tt.expected {
				t.Errorf("expected %v, got %v", tt.expected, cmd.Type)
			}
			if len(cmd.Args) != tt.args {
				t.Errorf("expected %d args, got %d", tt.args, len(cmd.Args))
			}
		})
	}
}

func TestKeyContext(t *testing.T) {
	m := createTestModel()
	if m.keyContext() != ContextInput {
		t.Errorf("expected input context, got %v", m.keyContext())
	}

	m.dashboard.FocusList()
	if m.keyContext() != ContextList {
		t.Errorf("expected list context, got %v", m.keyContext())
	}

	m.state = ViewDetail
	if m.keyContext() != ContextDetail {
		t.Errorf("expected detail context, got %v", m.keyContext())
	}
}

func TestHandleKey_UnboundKeyIsNotHandled(t *testing.T) {
	m := createTestModel()

	_, _, handled := m.commandRegistry.HandleKey(m, "x")
	if handled {
		t.Error("expected 'x' to be left for the search box")
	}

	m.dashboard.FocusList()
	_, _, handled = m.commandRegistry.HandleKey(m, "/")
	if handled {
		t.Error("expected '/' to be left for the list filter")
	}
}

func TestHandleKey_ColonOpensCommandBarOutsideInput(t *testing.T) {
	m := createTestModel()

	_, _, handled := m.commandRegistry.HandleKey(m, ":")
	if handled {
		t.Fatal("':' should be typed into the search box")
	}

	m.dashboard.FocusList()
	newModel, _, handled := m.commandRegistry.HandleKey(m, ":")
	if !handled {
		t.Fatal("expected ':' to be handled in the list")
	}
	if !newModel.(Model).commandBar.IsActive() {
		t.Error("expected command bar to be active")
	}
}

func TestExecuteCommand_Logs(t *testing.T) {
	m := createTestModel()

	newModel, _ := m.commandRegistry.ExecuteCommand(m, ParseCommand(":logs"))
	if !newModel.(Model).logsView.IsActive() {
		t.Error("expected logs overlay to be active")
	}
}

func TestExecuteCommand_Unknown(t *testing.T) {
	m := createTestModel()

	newModel, cmd := m.commandRegistry.ExecuteCommand(m, ParseCommand(":frobnicate"))
	if cmd != nil {
		t.Error("expected no command for an unknown name")
	}
	status := newModel.(Model).statusBar
	if status.Level() != components.LevelError || !strings.Contains(status.Message(), "frobnicate") {
		t.Errorf("expected unknown command error, got %q", status.Message())
	}
}

func TestGetContextualShortcuts(t *testing.T) {
	r := NewCommandRegistry()

	tests := []struct {
		ctx  KeyContext
		want string
	}{
		{ctx: ContextInput, want: "<enter> search"},
		{ctx: ContextList, want: "<enter> details"},
		{ctx: ContextDetail, want: "<esc> back"},
	}

	for _, tt := range tests {
		shortcuts := r.GetContextualShortcuts(tt.ctx)
		found := false
		for _, s := range shortcuts {
			if s == tt.want {
				found = true
			}
		}
		if !found {
			t.Errorf("expected %q in %v", tt.want, shortcuts)
		}
		if shortcuts[len(shortcuts)-1] != "<ctrl+c> quit" {
			t.Errorf("expected global quit shortcut last, got %q", shortcuts[len(shortcuts)-1])
		}
	}
}
