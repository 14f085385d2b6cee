package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/agenda/internal/cli/formatter"
	"github.com/alexanderramin/agenda/internal/domain"
	"github.com/alexanderramin/agenda/internal/service"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// confirmedMsg reports what happened to a draft once the editor closed.
// A cancelled draft arrives with a nil result.
type confirmedMsg struct {
	draft  domain.EditingAt
	result *service.ConfirmResult
	err    error
}

// editorFields holds the form-bound values of the draft.
type editorFields struct {
	title    string
	duration int
}

// editorView is the modal for the draft in SharedState.Editor. The form
// writes into fields; every update copies them back into the shared draft,
// which is what submit and discard act on.
type editorView struct {
	state     *SharedState
	fields    *editorFields
	form      *huh.Form
	submitted bool
}

func newEditorView(state *SharedState) *editorView {
	draft := state.draft()
	f := &editorFields{title: draft.Title, duration: draft.Duration}
	return &editorView{state: state, fields: f, form: editorForm(f)}
}

func (v *editorView) Init() tea.Cmd {
	return v.form.Init()
}

func (v *editorView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if v.submitted {
		return v, nil
	}
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		v.submitted = true
		draft := v.state.draft()
		return v, func() tea.Msg {
			return editorDoneMsg{nextCmd: func() tea.Msg { return confirmedMsg{draft: draft} }}
		}
	}

	form, cmd := v.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		v.form = f
	}
	v.syncDraft()

	if v.form.State == huh.StateCompleted {
		return v, tea.Batch(cmd, v.submit())
	}
	return v, cmd
}

// syncDraft copies the form values into the shared draft.
func (v *editorView) syncDraft() {
	if !domain.IsEditing(v.state.Editor) {
		return
	}
	draft := v.state.draft()
	draft.Title = v.fields.title
	draft.Duration = v.fields.duration
	v.state.Editor = draft
}

// submit closes the editor and confirms the shared draft. It runs at most
// once per editor.
func (v *editorView) submit() tea.Cmd {
	if v.submitted {
		return nil
	}
	v.submitted = true
	v.syncDraft()
	draft := v.state.draft()
	app := v.state.App
	return func() tea.Msg {
		return editorDoneMsg{nextCmd: confirmDraft(app, draft)}
	}
}

// confirmDraft applies draft through the event service.
func confirmDraft(app *App, draft domain.EditingAt) tea.Cmd {
	return func() tea.Msg {
		res, err := app.Events.Confirm(context.Background(), draft)
		return confirmedMsg{draft: draft, result: res, err: err}
	}
}

func (v *editorView) View() string {
	box := formatter.RenderBox(v.Title(), v.form.View())
	if v.state.Width <= 0 {
		return box
	}
	return lipgloss.Place(v.state.Width, v.state.ContentHeight(), lipgloss.Center, lipgloss.Center, box)
}

func (v *editorView) ID() ViewID { return ViewEditor }

func (v *editorView) Title() string {
	return fmt.Sprintf("Event at %s", v.state.draft().Time)
}

func (v *editorView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "next/confirm")),
		key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "discard")),
	}
}
