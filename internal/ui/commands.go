package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/johanforsgren/gitcollection/internal/logger"
)

type CommandType int

const (
	CommandUnknown CommandType = iota
	CommandQuit
	CommandLogs
	CommandReload
	CommandHelp
)

type Command struct {
	Type CommandType
	Name string
	Args []string
}

func ParseCommand(input string) Command {
	input = strings.TrimSpace(input)

	if !strings.HasPrefix(input, ":") {
		return Command{Type: CommandUnknown}
	}

	input = strings.TrimPrefix(input, ":")
	parts := strings.Fields(input)

	if len(parts) == 0 {
		return Command{Type: CommandUnknown}
	}

	cmd := parts[0]
	args := parts[1:]

	switch cmd {
	case "q", "quit":
		return Command{Type: CommandQuit, Name: cmd, Args: args}
	case "l", "logs":
		return Command{Type: CommandLogs, Name: cmd, Args: args}
	case "r", "reload":
		return Command{Type: CommandReload, Name: cmd, Args: args}
	case "h", "help":
		return Command{Type: CommandHelp, Name: cmd, Args: args}
	default:
		return Command{Type: CommandUnknown, Name: cmd, Args: args}
	}
}

// KeyContext says which part of the screen receives key presses.
type KeyContext int

const (
	ContextInput KeyContext = iota
	ContextList
	ContextDetail
)

type keyHandler func(m Model) (tea.Model, tea.Cmd)

type keyBinding struct {
	keys        []string
	label       string
	description string
	handler     keyHandler
}

type CommandRegistry struct {
	bindings map[KeyContext][]keyBinding
}

func NewCommandRegistry() *CommandRegistry {
	r := &CommandRegistry{bindings: make(map[KeyContext][]keyBinding)}

	r.register(ContextInput, keyBinding{
		keys: []string{"enter"}, label: "enter", description: "search",
		handler: func(m Model) (tea.Model, tea.Cmd) { return m.handleSubmit() },
	})
	r.register(ContextInput, keyBinding{
		keys: []string{"tab", "down"}, label: "tab", description: "catalog",
		handler: func(m Model) (tea.Model, tea.Cmd) { return m.focusList() },
	})

	r.register(ContextList, keyBinding{
		keys: []string{"enter"}, label: "enter", description: "details",
		handler: func(m Model) (tea.Model, tea.Cmd) { return m.openDetail() },
	})
	r.register(ContextList, keyBinding{
		keys: []string{"tab", "esc", "i"}, label: "tab", description: "search box",
		handler: func(m Model) (tea.Model, tea.Cmd) { return m.focusInput() },
	})
	r.register(ContextList, keyBinding{
		keys: []string{"/"}, label: "/", description: "filter",
	})
	r.register(ContextList, keyBinding{
		keys: []string{":"}, label: ":", description: "command",
		handler: func(m Model) (tea.Model, tea.Cmd) { return m.openCommandBar() },
	})
	r.register(ContextList, keyBinding{
		keys: []string{"q"}, label: "q", description: "quit",
		handler: func(m Model) (tea.Model, tea.Cmd) { return m, tea.Quit },
	})

	r.register(ContextDetail, keyBinding{
		keys: []string{"esc", "q", "backspace"}, label: "esc", description: "back",
		handler: func(m Model) (tea.Model, tea.Cmd) { return m.navigateBack() },
	})
	r.register(ContextDetail, keyBinding{
		keys: []string{":"}, label: ":", description: "command",
		handler: func(m Model) (tea.Model, tea.Cmd) { return m.openCommandBar() },
	})

	return r
}

func (r *CommandRegistry) register(ctx KeyContext, b keyBinding) {
	r.bindings[ctx] = append(r.bindings[ctx], b)
}

// HandleKey runs the binding for key in the model's current context. The
// boolean is false when no binding claims the key.
func (r *CommandRegistry) HandleKey(m Model, key string) (tea.Model, tea.Cmd, bool) {
	for _, b := range r.bindings[m.keyContext()] {
		if b.handler == nil {
			continue
		}
		for _, k := range b.keys {
			if k == key {
				newModel, cmd := b.handler(m)
				return newModel, cmd, true
			}
		}
	}
	return m, nil, false
}

func (r *CommandRegistry) ExecuteCommand(m Model, command Command) (tea.Model, tea.Cmd) {
	logger.Log("UI: Executing command: %s %v", command.Name, command.Args)

	switch command.Type {
	case CommandQuit:
		return m, tea.Quit
	case CommandLogs:
		m.logsView.Activate()
		return m, nil
	case CommandReload:
		if m.dashboard.IsPending() {
			m.statusBar.SetMessage("Wait for the current search to finish before reloading", false)
			return m, nil
		}
		m.statusBar.SetMessage("Reloading catalog...", false)
		return m, m.loadCatalog()
	case CommandHelp:
		m.statusBar.SetMessage("Commands: :q quit | :l logs | :r reload | :h help", false)
		return m, nil
	default:
		if command.Name == "" {
			return m, nil
		}
		m.statusBar.SetMessage("Unknown command: "+command.Name, true)
		return m, nil
	}
}

// GetContextualShortcuts returns "<key> description" pairs for ctx.
func (r *CommandRegistry) GetContextualShortcuts(ctx KeyContext) []string {
	var shortcuts []string
	for _, b := range r.bindings[ctx] {
		shortcuts = append(shortcuts, "<"+b.label+"> "+b.description)
	}
	return append(shortcuts, "<ctrl+c> quit")
}
