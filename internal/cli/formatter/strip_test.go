package formatter

import (
	"strings"
	"testing"
	"time"

	"github.com/alexanderramin/agenda/internal/calendar"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestRenderDayStrip_ShowsDaysAroundOffset(t *testing.T) {
	days := calendar.YearDays(2026)
	today := calendar.Day{Year: 2026, Month: time.October, Day: 17}
	m := calendar.DefaultStripMetrics()
	idx := calendar.IndexOf(days, today)

	out := RenderDayStrip(days, DayStripOptions{
		Metrics: m,
		Offset:  m.CenterOffset(idx, 45),
		Width:   45,
		Active:  today,
		Today:   today,
	})

	plain := stripANSI(out)
	assert.Contains(t, plain, "Sat 17")
	assert.Contains(t, plain, "Fri 16")
	assert.Contains(t, plain, "Sun 18")
	assert.NotContains(t, plain, "Thu 1 ")

	lines := strings.Split(out, "\n")
	assert.Len(t, lines, 3)
	for _, l := range lines {
		assert.LessOrEqual(t, lipgloss.Width(l), 45)
	}
}

func TestRenderDayStrip_StartOfYear(t *testing.T) {
	days := calendar.YearDays(2026)
	out := stripANSI(RenderDayStrip(days, DayStripOptions{
		Metrics: calendar.DefaultStripMetrics(),
		Width:   27,
		Active:  days[0],
	}))
	assert.Contains(t, out, "Thu 1")
	assert.Contains(t, out, "Fri 2")
	assert.Contains(t, out, "Sat 3")
}

func TestRenderDayStrip_Empty(t *testing.T) {
	assert.Empty(t, RenderDayStrip(nil, DayStripOptions{Metrics: calendar.DefaultStripMetrics(), Width: 40}))
	assert.Empty(t, RenderDayStrip(calendar.YearDays(2026), DayStripOptions{Metrics: calendar.DefaultStripMetrics()}))
}

func TestRenderDayBox_PlainActiveAndToday(t *testing.T) {
	m := calendar.DefaultStripMetrics()
	today := calendar.Day{Year: 2026, Month: time.October, Day: 17}
	active := today.AddDays(1)
	o := DayStripOptions{Metrics: m, Active: active, Today: today}

	for _, d := range []calendar.Day{today.AddDays(-1), active, today} {
		box := renderDayBox(d, o)
		lines := strings.Split(stripANSI(box), "\n")
		assert.Len(t, lines, 3)
		assert.Contains(t, lines[1], calendar.FormatDay(d))
		assert.Equal(t, m.ItemWidth(), lipgloss.Width(lines[1]))
	}
}
