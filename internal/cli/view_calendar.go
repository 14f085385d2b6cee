package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/agenda/internal/calendar"
	"github.com/alexanderramin/agenda/internal/cli/formatter"
	"github.com/alexanderramin/agenda/internal/domain"
	"github.com/alexanderramin/agenda/internal/service"
	"github.com/alexanderramin/agenda/internal/timeline"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// Vertical layout of the calendar view, in lines from its top.
const (
	calendarStripTop    = 3
	calendarStripHeight = 3
	calendarTimelineTop = calendarStripTop + calendarStripHeight + 1
	calendarFooterLines = 1
)

// ── messages ─────────────────────────────────────────────────────────────────

// scrollToTodayMsg centres the day strip on index. It is scheduled when the
// view mounts and carries the mount token of the view that scheduled it.
type scrollToTodayMsg struct {
	mount int
	index int
}

type timelineLoadedMsg struct {
	mount  int
	layout timeline.Layout
	err    error
}

// ── key map ──────────────────────────────────────────────────────────────────

type calendarKeyMap struct {
	PrevDay key.Binding
	NextDay key.Binding
	Today   key.Binding
	Up      key.Binding
	Down    key.Binding
	Edit    key.Binding
}

var calendarKeys = calendarKeyMap{
	PrevDay: key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/→", "day")),
	NextDay: key.NewBinding(key.WithKeys("right", "l")),
	Today:   key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "today")),
	Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/↓", "hour")),
	Down:    key.NewBinding(key.WithKeys("down", "j")),
	Edit:    key.NewBinding(key.WithKeys("enter", "e"), key.WithHelp("enter", "edit")),
}

// timelineViewportKeyMap leaves arrows and letters to the view; only page
// keys scroll the viewport directly.
func timelineViewportKeyMap() viewport.KeyMap {
	return viewport.KeyMap{
		PageDown:     key.NewBinding(key.WithKeys("pgdown")),
		PageUp:       key.NewBinding(key.WithKeys("pgup")),
		HalfPageUp:   key.NewBinding(key.WithKeys("ctrl+u")),
		HalfPageDown: key.NewBinding(key.WithKeys("ctrl+d")),
	}
}

// ── view ─────────────────────────────────────────────────────────────────────

// calendarView is the home screen: a strip of every day of the year above
// the hourly timeline.
type calendarView struct {
	state *SharedState
	mount int

	days   []calendar.Day
	today  calendar.Day
	active int
	offset int
	// centerPending is a strip index waiting for the first window size.
	centerPending int

	layout       timeline.Layout
	loaded       bool
	err          error
	cursor       int
	cursorPlaced bool
	vp           viewport.Model

	flash string
}

func newCalendarView(state *SharedState) *calendarView {
	now := state.App.now()
	days := calendar.GenerateYear(now)
	today := calendar.DayOf(now)

	vp := viewport.New(0, 0)
	vp.KeyMap = timelineViewportKeyMap()
	vp.MouseWheelEnabled = true
	vp.MouseWheelDelta = 3

	return &calendarView{
		state:         state,
		mount:         state.nextMountToken(),
		days:          days,
		today:         today,
		active:        max(calendar.IndexOf(days, today), 0),
		centerPending: -1,
		vp:            vp,
	}
}

func (v *calendarView) ID() ViewID    { return ViewCalendar }
func (v *calendarView) Title() string { return "Calendar" }

func (v *calendarView) ShortHelp() []key.Binding {
	return []key.Binding{calendarKeys.PrevDay, calendarKeys.Up, calendarKeys.Edit, calendarKeys.Today}
}

func (v *calendarView) Init() tea.Cmd {
	return tea.Batch(v.loadTimeline(), v.scheduleScrollToToday())
}

func (v *calendarView) metrics() calendar.StripMetrics {
	return v.state.App.config().StripMetrics()
}

func (v *calendarView) rowHeight() int {
	return v.state.App.config().RowHeight
}

// ── data loading ─────────────────────────────────────────────────────────────

func (v *calendarView) loadTimeline() tea.Cmd {
	app := v.state.App
	mount := v.mount
	return func() tea.Msg {
		layout, err := app.Events.Timeline(context.Background(), app.config().HourRange())
		return timelineLoadedMsg{mount: mount, layout: layout, err: err}
	}
}

// scheduleScrollToToday captures today's index now and delivers it after
// the configured delay.
func (v *calendarView) scheduleScrollToToday() tea.Cmd {
	msg := scrollToTodayMsg{mount: v.mount, index: calendar.IndexOf(v.days, v.today)}
	delay := v.state.App.config().ScrollDelay()
	if delay <= 0 {
		return func() tea.Msg { return msg }
	}
	return tea.Tick(delay, func(time.Time) tea.Msg { return msg })
}

// ── update ───────────────────────────────────────────────────────────────────

func (v *calendarView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.resize()
		return v, nil

	case scrollToTodayMsg:
		if msg.mount != v.mount || msg.index < 0 || msg.index >= len(v.days) {
			return v, nil
		}
		v.active = msg.index
		v.centerOn(msg.index)
		return v, nil

	case timelineLoadedMsg:
		if msg.mount != v.mount {
			return v, nil
		}
		v.loaded = true
		v.err = msg.err
		if msg.err == nil {
			v.layout = msg.layout
			v.placeCursor()
		}
		v.renderTimeline()
		return v, nil

	case refreshViewMsg:
		return v, v.loadTimeline()

	case confirmedMsg:
		v.flash = describeConfirm(msg)
		if msg.err == nil && msg.result != nil && msg.result.Outcome != service.OutcomeDiscarded {
			return v, v.loadTimeline()
		}
		return v, nil

	case tea.KeyMsg:
		return v.handleKey(msg)

	case tea.MouseMsg:
		return v.handleMouse(msg)
	}
	return v, nil
}

func (v *calendarView) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, calendarKeys.PrevDay):
		v.selectDay(v.active - 1)
	case key.Matches(msg, calendarKeys.NextDay):
		v.selectDay(v.active + 1)
	case key.Matches(msg, calendarKeys.Today):
		if i := calendar.IndexOf(v.days, v.today); i >= 0 {
			v.active = i
			v.centerOn(i)
		}
	case key.Matches(msg, calendarKeys.Up):
		v.moveCursor(-1)
	case key.Matches(msg, calendarKeys.Down):
		v.moveCursor(1)
	case key.Matches(msg, calendarKeys.Edit):
		return v, v.openEditor(v.cursorHour())
	default:
		var cmd tea.Cmd
		v.vp, cmd = v.vp.Update(msg)
		return v, cmd
	}
	return v, nil
}

func (v *calendarView) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress {
		return v, nil
	}
	if msg.Button == tea.MouseButtonWheelUp || msg.Button == tea.MouseButtonWheelDown {
		var cmd tea.Cmd
		v.vp, cmd = v.vp.Update(msg)
		return v, cmd
	}
	if msg.Button != tea.MouseButtonLeft {
		return v, nil
	}

	y := msg.Y - headerLines
	switch {
	case y >= calendarStripTop && y < calendarStripTop+calendarStripHeight:
		m := v.metrics()
		col := v.offset + msg.X
		if i := col / m.ItemWidth(); col%m.ItemWidth() < m.BoxWidth && i < len(v.days) {
			v.selectDay(i)
		}
	case y >= calendarTimelineTop && y < calendarTimelineTop+v.vp.Height:
		line := y - calendarTimelineTop + v.vp.YOffset
		if i := formatter.RowAtLine(v.layout, v.rowHeight(), line); i >= 0 {
			v.cursor = i
			v.renderTimeline()
			return v, v.openEditor(v.layout.Rows[i].Hour)
		}
	}
	return v, nil
}

// openEditor starts a draft for the row that owns hour, prefilled when the
// row holds an event. An hour inside an event's span edits that event.
func (v *calendarView) openEditor(hour int) tea.Cmd {
	row, ok := v.layout.RowAt(hour)
	if !ok {
		return nil
	}
	v.state.Editor = domain.OpenEditor(row.Label, row.Event)
	v.flash = ""
	return pushView(newEditorView(v.state))
}

// cursorHour returns the first hour of the cursor row, or -1.
func (v *calendarView) cursorHour() int {
	if v.cursor < 0 || v.cursor >= len(v.layout.Rows) {
		return -1
	}
	return v.layout.Rows[v.cursor].Hour
}

// selectDay makes day i active, clamped to the year, and scrolls the strip
// just enough to show it.
func (v *calendarView) selectDay(i int) {
	if len(v.days) == 0 {
		return
	}
	v.active = min(max(i, 0), len(v.days)-1)
	v.offset = v.metrics().EnsureVisible(v.offset, v.active, v.state.Width)
}

// centerOn scrolls the strip so index is in the middle, or defers until
// the terminal width is known.
func (v *calendarView) centerOn(index int) {
	if v.state.Width <= 0 {
		v.centerPending = index
		return
	}
	v.offset = v.metrics().CenterOffset(index, v.state.Width)
	v.centerPending = -1
}

func (v *calendarView) resize() {
	v.vp.Width = v.state.Width
	v.vp.Height = max(v.state.ContentHeight()-calendarTimelineTop-calendarFooterLines, 3)
	if v.centerPending >= 0 {
		v.centerOn(v.centerPending)
	} else {
		v.offset = v.metrics().EnsureVisible(v.offset, v.active, v.state.Width)
	}
	v.renderTimeline()
}

// placeCursor puts the cursor on the current hour the first time a layout
// arrives and keeps it in range afterwards.
func (v *calendarView) placeCursor() {
	if !v.cursorPlaced {
		v.cursorPlaced = true
		if i := v.layout.RowIndex(v.state.App.now().Hour()); i >= 0 {
			v.cursor = i
		}
	}
	if v.cursor >= len(v.layout.Rows) {
		v.cursor = max(len(v.layout.Rows)-1, 0)
	}
}

func (v *calendarView) moveCursor(delta int) {
	next := v.cursor + delta
	if next < 0 || next >= len(v.layout.Rows) {
		return
	}
	v.cursor = next
	v.renderTimeline()
}

// renderTimeline refreshes the viewport content and scrolls the cursor row
// into view.
func (v *calendarView) renderTimeline() {
	rh := v.rowHeight()
	v.vp.SetContent(formatter.RenderTimeline(v.layout, formatter.TimelineOptions{
		Width:     v.state.Width,
		RowHeight: rh,
		Cursor:    v.cursor,
	}))
	if v.cursor >= len(v.layout.Rows) || v.vp.Height <= 0 {
		return
	}
	top := v.layout.LineOf(v.cursor, rh)
	bottom := top + v.layout.Rows[v.cursor].Span*rh
	switch {
	case top < v.vp.YOffset:
		v.vp.SetYOffset(top)
	case bottom > v.vp.YOffset+v.vp.Height:
		v.vp.SetYOffset(min(top, bottom-v.vp.Height))
	}
}

func describeConfirm(msg confirmedMsg) string {
	switch {
	case msg.err != nil:
		return formatter.StyleRed.Render("Error: " + msg.err.Error())
	case msg.result == nil:
		return formatter.Dim(fmt.Sprintf("Discarded draft at %s", msg.draft.Time))
	}
	switch msg.result.Outcome {
	case service.OutcomeCreated:
		return fmt.Sprintf("%s Added %s at %s (%s)", formatter.StyleGreen.Render("✔"),
			formatter.Bold(msg.result.Event.Title), msg.result.Event.Start, formatter.FormatHours(msg.result.Event.DurationHours))
	case service.OutcomeUpdated:
		return fmt.Sprintf("%s Updated %s at %s (%s)", formatter.StyleGreen.Render("✔"),
			formatter.Bold(msg.result.Event.Title), msg.result.Event.Start, formatter.FormatHours(msg.result.Event.DurationHours))
	default:
		return formatter.Dim("Nothing saved: a title and a duration are required")
	}
}

func (v *calendarView) View() string {
	var b strings.Builder

	b.WriteString(formatter.StyleHeader.Render("Calendar"))
	b.WriteString("  ")
	b.WriteString(formatter.Bold(calendar.FormatHeader(v.days[v.active])))
	b.WriteString("\n")
	b.WriteString(formatter.Dim("Today: ") + calendar.FormatHeader(v.today))
	b.WriteString("\n\n")

	strip := formatter.RenderDayStrip(v.days, formatter.DayStripOptions{
		Metrics: v.metrics(),
		Offset:  v.offset,
		Width:   v.state.Width,
		Active:  v.days[v.active],
		Today:   v.today,
	})
	if strip == "" {
		strip = strings.Repeat("\n", calendarStripHeight-1)
	}
	b.WriteString(strip)
	b.WriteString("\n\n")

	switch {
	case v.err != nil:
		b.WriteString(formatter.StyleRed.Render("Error: " + v.err.Error()))
	case !v.loaded:
		b.WriteString(formatter.Dim("Loading timeline…"))
	case v.vp.Height <= 0:
		b.WriteString(formatter.RenderTimeline(v.layout, formatter.TimelineOptions{
			Width: v.state.Width, RowHeight: v.rowHeight(), Cursor: v.cursor,
		}))
	default:
		b.WriteString(v.vp.View())
	}
	b.WriteString("\n")
	b.WriteString(v.flash)

	return b.String()
}
