package cli

import (
	"strings"

	"github.com/alexanderramin/agenda/internal/cli/formatter"
	"github.com/alexanderramin/agenda/internal/domain"
	tea "github.com/charmbracelet/bubbletea"
)

// appModel is the root bubbletea Model for the TUI.
// It manages a view stack with the calendar at the bottom.
type appModel struct {
	state     *SharedState
	viewStack []View
	quitting  bool
}

func newAppModel(app *App) appModel {
	state := &SharedState{
		App:    app,
		Editor: domain.EditorClosed{},
	}

	m := appModel{state: state}
	m.viewStack = []View{newCalendarView(state)}
	return m
}

// activeView returns the top view on the stack, or nil.
func (m *appModel) activeView() View {
	if len(m.viewStack) == 0 {
		return nil
	}
	return m.viewStack[len(m.viewStack)-1]
}

// setActiveView replaces the top of the view stack.
// If the stack is empty, this is a no-op.
func (m *appModel) setActiveView(v View) {
	if len(m.viewStack) > 0 {
		m.viewStack[len(m.viewStack)-1] = v
	}
}

// ── bubbletea interface ──────────────────────────────────────────────────────

func (m appModel) Init() tea.Cmd {
	if v := m.activeView(); v != nil {
		return v.Init()
	}
	return nil
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.state.Width, m.state.Height = msg.Width, msg.Height
		// Views below the top keep their own layout, so all of them resize.
		return m, m.broadcast(msg)

	case refreshViewMsg:
		return m, m.broadcast(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)

	case pushViewMsg:
		m.viewStack = append(m.viewStack, msg.view)
		return m, msg.view.Init()

	case popViewMsg:
		m.pop()
		return m, nil

	case editorDoneMsg:
		if v := m.activeView(); v != nil && v.ID() == ViewEditor {
			m.pop()
		}
		m.state.Editor = domain.EditorClosed{}
		return m, msg.nextCmd

	case quitMsg:
		return m.quit()
	}

	return m, m.forward(msg)
}

// broadcast delivers msg to every view on the stack, bottom first.
func (m *appModel) broadcast(msg tea.Msg) tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(m.viewStack))
	for i, v := range m.viewStack {
		updated, cmd := v.Update(msg)
		m.viewStack[i] = updated.(View)
		cmds = append(cmds, cmd)
	}
	return tea.Batch(cmds...)
}

// forward delivers msg to the active view only.
func (m *appModel) forward(msg tea.Msg) tea.Cmd {
	v := m.activeView()
	if v == nil {
		return nil
	}
	updated, cmd := v.Update(msg)
	m.setActiveView(updated.(View))
	return cmd
}

// pop removes the top view; the calendar at the bottom always stays.
func (m *appModel) pop() {
	if len(m.viewStack) > 1 {
		m.viewStack = m.viewStack[:len(m.viewStack)-1]
	}
}

func (m appModel) quit() (tea.Model, tea.Cmd) {
	m.quitting = true
	return m, tea.Quit
}

func (m appModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m.quit()
	}

	// The editor has a text input, so q and Esc belong to it.
	if m.capturesInput() {
		return m, m.forward(msg)
	}

	switch {
	case msg.String() == "q":
		return m.quit()
	case msg.Type == tea.KeyEsc:
		m.pop()
		return m, nil
	}
	return m, m.forward(msg)
}

func (m appModel) View() string {
	if m.quitting {
		return ""
	}

	sections := []string{m.renderHeader()}
	if v := m.activeView(); v != nil {
		sections = append(sections, v.View())
	}
	sections = append(sections, m.renderStatusBar())
	out := strings.Join(sections, "\n")

	// Fill the screen so the alt-screen renderer overwrites stale lines.
	if n := strings.Count(out, "\n") + 1; n < m.state.Height {
		out += strings.Repeat("\n", m.state.Height-n)
	}
	return out
}

// ── rendering helpers ────────────────────────────────────────────────────────

func (m *appModel) rule() string {
	return formatter.Dim(strings.Repeat("─", max(m.state.Width, 20)))
}

// renderHeader draws the app name and a breadcrumb of the view stack.
func (m *appModel) renderHeader() string {
	crumbs := make([]string, 0, len(m.viewStack))
	for _, v := range m.viewStack {
		if t := v.Title(); t != "" {
			crumbs = append(crumbs, t)
		}
	}

	line := formatter.StylePurple.Render("agenda")
	if len(crumbs) > 0 {
		line += " " + formatter.Dim("› "+strings.Join(crumbs, " › "))
	}
	return line + "\n" + m.rule()
}

func (m *appModel) renderStatusBar() string {
	var hints []string
	if v := m.activeView(); v != nil {
		for _, b := range v.ShortHelp() {
			hints = append(hints, b.Help().Key+": "+b.Help().Desc)
		}
	}
	if len(m.viewStack) == 1 {
		hints = append(hints, "q: quit")
	}
	return m.rule() + "\n" + formatter.Dim(strings.Join(hints, "  "))
}

// capturesInput reports whether the editor owns the keyboard, bypassing
// the global q and Esc bindings: a draft is open and the editor is on top.
func (m *appModel) capturesInput() bool {
	v := m.activeView()
	return v != nil && v.ID() == ViewEditor && domain.IsEditing(m.state.Editor)
}
