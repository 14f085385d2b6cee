package cli

import (
	"testing"

	"github.com/alexanderramin/agenda/internal/teatest"
)

// TestDriver wraps teatest.Driver with agenda-specific inspection methods.
// It provides access to appModel internals (view stack, shared state)
// that the generic driver can't see.
type TestDriver struct {
	*teatest.Driver
}

// NewTestDriver creates a TestDriver from a test App.
// It constructs the appModel, sets terminal size, and drains Init()
// (which loads the timeline synchronously via in-memory SQLite).
func NewTestDriver(t *testing.T, app *App) *TestDriver {
	t.Helper()

	m := newAppModel(app)
	d := teatest.New(t, m, teatest.WithSize(120, 40))
	d.DrainInit()

	return &TestDriver{Driver: d}
}

// ── agenda-specific inspection ───────────────────────────────────────────────

func (d *TestDriver) appModel() appModel {
	return d.Model.(appModel)
}

// ActiveViewID returns the ViewID of the top view on the stack.
func (d *TestDriver) ActiveViewID() ViewID {
	m := d.appModel()
	v := m.activeView()
	if v == nil {
		return ViewID(-1)
	}
	return v.ID()
}

// ViewStackLen returns the number of views on the stack.
func (d *TestDriver) ViewStackLen() int {
	return len(d.appModel().viewStack)
}

// State returns the shared state for inspection.
func (d *TestDriver) State() *SharedState {
	return d.appModel().state
}

// Calendar returns the calendar view at the bottom of the stack.
func (d *TestDriver) Calendar() *calendarView {
	d.T.Helper()
	cv, ok := d.appModel().viewStack[0].(*calendarView)
	if !ok {
		d.T.Fatalf("bottom view is %T, not *calendarView", d.appModel().viewStack[0])
	}
	return cv
}

// Editor returns the active editor view.
func (d *TestDriver) Editor() *editorView {
	d.T.Helper()
	m := d.appModel()
	ev, ok := m.activeView().(*editorView)
	if !ok {
		d.T.Fatalf("active view is %T, not *editorView", m.activeView())
	}
	return ev
}

// Submit fills the open editor and submits it as the form would.
func (d *TestDriver) Submit(title string, duration int) {
	d.T.Helper()
	ev := d.Editor()
	ev.fields.title = title
	ev.fields.duration = duration
	d.Send(ev.submit()())
}

// IsQuitting returns whether the app has signaled a quit.
func (d *TestDriver) IsQuitting() bool {
	return d.appModel().quitting || d.Quitting
}
