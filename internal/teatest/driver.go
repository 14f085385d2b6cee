// Package teatest drives bubbletea models synchronously in tests.
//
// A Driver stands in for tea.Program: every message goes straight through
// Update and the returned commands are executed and fed back until the
// model settles. Commands that block (cursor blinks, long ticks) are given
// a short deadline and dropped when they miss it.
package teatest

import (
	"fmt"
	"reflect"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
)

// MaxDrainDepth bounds how many follow-up commands one Send may trigger.
const MaxDrainDepth = 100

// DefaultCmdTimeout separates message factories and in-memory queries,
// which return in microseconds, from timers that block for hundreds of
// milliseconds.
const DefaultCmdTimeout = 10 * time.Millisecond

// Driver is a synchronous harness for a tea.Model.
type Driver struct {
	T     *testing.T
	Model tea.Model

	// Quitting is set once a tea.QuitMsg comes out of a command. The
	// runtime normally consumes that message, so models rarely record it.
	Quitting bool

	cmdTimeout time.Duration
}

// Option configures a Driver.
type Option func(*Driver)

// WithSize delivers a WindowSizeMsg before anything else runs.
func WithSize(w, h int) Option {
	return func(d *Driver) {
		d.T.Helper()
		d.Model, _ = d.Model.Update(tea.WindowSizeMsg{Width: w, Height: h})
	}
}

// WithCmdTimeout changes how long a command may block before it is dropped.
func WithCmdTimeout(timeout time.Duration) Option {
	return func(d *Driver) { d.cmdTimeout = timeout }
}

// New returns a Driver for model. Call DrainInit to run the model's Init.
func New(t *testing.T, model tea.Model, opts ...Option) *Driver {
	t.Helper()
	d := &Driver{T: t, Model: model, cmdTimeout: DefaultCmdTimeout}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// DrainInit runs Init and everything it leads to.
func (d *Driver) DrainInit() {
	d.T.Helper()
	d.drain(d.Model.Init(), 0)
}

// Send delivers msg through Update and drains the resulting commands.
// Messages sent after a quit are ignored.
func (d *Driver) Send(msg tea.Msg) {
	d.T.Helper()
	if d.Quitting {
		return
	}
	var cmd tea.Cmd
	d.Model, cmd = d.Model.Update(msg)
	d.drain(cmd, 0)
}

// ── keyboard ─────────────────────────────────────────────────────────────────

// SendKey delivers a key message.
func (d *Driver) SendKey(msg tea.KeyMsg) {
	d.T.Helper()
	d.Send(msg)
}

func (d *Driver) pressType(t tea.KeyType) {
	d.T.Helper()
	d.SendKey(tea.KeyMsg{Type: t})
}

// PressKey sends a single rune.
func (d *Driver) PressKey(r rune) {
	d.T.Helper()
	d.SendKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
}

// Type sends s one rune at a time.
func (d *Driver) Type(s string) {
	d.T.Helper()
	for _, r := range s {
		d.PressKey(r)
	}
}

// PressEnter sends tea.KeyEnter.
func (d *Driver) PressEnter() {
	d.T.Helper()
	d.pressType(tea.KeyEnter)
}

// PressEsc sends tea.KeyEsc.
func (d *Driver) PressEsc() {
	d.T.Helper()
	d.pressType(tea.KeyEsc)
}

// PressCtrlC sends tea.KeyCtrlC.
func (d *Driver) PressCtrlC() {
	d.T.Helper()
	d.pressType(tea.KeyCtrlC)
}

// PressUp sends tea.KeyUp.
func (d *Driver) PressUp() {
	d.T.Helper()
	d.pressType(tea.KeyUp)
}

// PressDown sends tea.KeyDown.
func (d *Driver) PressDown() {
	d.T.Helper()
	d.pressType(tea.KeyDown)
}

// PressLeft sends tea.KeyLeft.
func (d *Driver) PressLeft() {
	d.T.Helper()
	d.pressType(tea.KeyLeft)
}

// PressRight sends tea.KeyRight.
func (d *Driver) PressRight() {
	d.T.Helper()
	d.pressType(tea.KeyRight)
}

// ── mouse and terminal ───────────────────────────────────────────────────────

// Click sends a left-button press at cell (x, y).
func (d *Driver) Click(x, y int) {
	d.T.Helper()
	d.Send(tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
}

// Wheel sends one wheel notch at (x, y); down scrolls towards the end.
func (d *Driver) Wheel(x, y int, down bool) {
	d.T.Helper()
	button := tea.MouseButtonWheelUp
	if down {
		button = tea.MouseButtonWheelDown
	}
	d.Send(tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: button})
}

// Resize delivers a new terminal size.
func (d *Driver) Resize(w, h int) {
	d.T.Helper()
	d.Send(tea.WindowSizeMsg{Width: w, Height: h})
}

// ── output ───────────────────────────────────────────────────────────────────

// View returns the model's rendered output, escape codes included.
func (d *Driver) View() string {
	return d.Model.View()
}

// PlainView returns View with ANSI escape codes removed.
func (d *Driver) PlainView() string {
	return ansi.Strip(d.Model.View())
}

// Line returns line i of PlainView, or "" past the end.
func (d *Driver) Line(i int) string {
	lines := strings.Split(d.PlainView(), "\n")
	if i < 0 || i >= len(lines) {
		return ""
	}
	return lines[i]
}

// ── draining ─────────────────────────────────────────────────────────────────

var cmdType = reflect.TypeOf((tea.Cmd)(nil))

func (d *Driver) drain(cmd tea.Cmd, depth int) {
	d.T.Helper()
	if cmd == nil {
		return
	}
	if depth >= MaxDrainDepth {
		d.T.Logf("teatest: stopped draining at depth %d", MaxDrainDepth)
		return
	}

	msg := d.run(cmd)
	switch {
	case msg == nil, isCursorBlink(msg):
		return
	}

	// tea.Batch and tea.Sequence both produce a slice of commands; run
	// them in order.
	if cmds, ok := commandList(msg); ok {
		for _, c := range cmds {
			d.drain(c, depth+1)
		}
		return
	}

	if _, ok := msg.(tea.QuitMsg); ok {
		d.Quitting = true
		d.Model, _ = d.Model.Update(msg)
		return
	}

	var next tea.Cmd
	d.Model, next = d.Model.Update(msg)
	d.drain(next, depth+1)
}

// run executes cmd, giving up after the driver's timeout.
func (d *Driver) run(cmd tea.Cmd) tea.Msg {
	ch := make(chan tea.Msg, 1)
	go func() { ch <- cmd() }()
	select {
	case msg := <-ch:
		return msg
	case <-time.After(d.cmdTimeout):
		return nil
	}
}

// commandList unpacks messages whose underlying type is a slice of
// commands, which covers tea.BatchMsg and the runtime's sequence message.
func commandList(msg tea.Msg) ([]tea.Cmd, bool) {
	if batch, ok := msg.(tea.BatchMsg); ok {
		return batch, true
	}
	v := reflect.ValueOf(msg)
	if v.Kind() != reflect.Slice || v.Type().Elem() != cmdType {
		return nil, false
	}
	cmds := make([]tea.Cmd, v.Len())
	for i := range cmds {
		cmds[i], _ = v.Index(i).Interface().(tea.Cmd)
	}
	return cmds, true
}

func isCursorBlink(msg tea.Msg) bool {
	name := strings.ToLower(fmt.Sprintf("%T", msg))
	return strings.Contains(name, "blink")
}
