package formatter

import (
	"strings"
	"testing"

	"github.com/alexanderramin/agenda/internal/domain"
	"github.com/alexanderramin/agenda/internal/timeline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleLayout() timeline.Layout {
	events := []*domain.Event{
		{Start: "08:00", Title: "Work", DurationHours: 4, Color: "#A3BFFA"},
		{Start: "12:00", Title: "Take a nap", DurationHours: 1, Color: "#FBB6CE"},
	}
	return timeline.Build(events, timeline.HourRange{First: 6, Last: 13})
}

func TestRenderTimeline_LineCountFollowsSpans(t *testing.T) {
	l := sampleLayout()
	out := RenderTimeline(l, TimelineOptions{Width: 40, RowHeight: 2, Cursor: -1})

	lines := strings.Split(out, "\n")
	assert.Len(t, lines, l.Height(2))
}

func TestRenderTimeline_Content(t *testing.T) {
	out := stripANSI(RenderTimeline(sampleLayout(), TimelineOptions{Width: 40, RowHeight: 2, Cursor: 2}))
	lines := strings.Split(out, "\n")

	// 06, 07 empty (2 lines each), then 08 Work.
	assert.True(t, strings.HasPrefix(lines[0], "  06:00 ┄"))
	assert.True(t, strings.HasPrefix(lines[4], "▸ 08:00  Work"))
	assert.Contains(t, lines[5], "4 hours")
	assert.NotContains(t, out, "09:00")
	assert.NotContains(t, out, "11:00")
	assert.Contains(t, out, "12:00  Take a nap")
	assert.Contains(t, out, "13:00 ┄")
}

func TestRenderTimeline_TruncatesLongTitles(t *testing.T) {
	l := timeline.Build([]*domain.Event{
		{Start: "06:00", Title: strings.Repeat("x", 80), DurationHours: 1, Color: "#A3BFFA"},
	}, timeline.HourRange{First: 6, Last: 6})

	out := stripANSI(RenderTimeline(l, TimelineOptions{Width: 30, RowHeight: 1, Cursor: -1}))
	assert.Contains(t, out, "…")
	assert.NotContains(t, out, strings.Repeat("x", 30))
}

func TestRowAtLine(t *testing.T) {
	l := sampleLayout()
	require.Len(t, l.Rows, 5) // 06, 07, 08(4h), 12, 13

	assert.Equal(t, 0, RowAtLine(l, 2, 0))
	assert.Equal(t, 1, RowAtLine(l, 2, 3))
	assert.Equal(t, 2, RowAtLine(l, 2, 4))
	assert.Equal(t, 2, RowAtLine(l, 2, 11))
	assert.Equal(t, 3, RowAtLine(l, 2, 12))
	assert.Equal(t, 4, RowAtLine(l, 2, 15))
	assert.Equal(t, -1, RowAtLine(l, 2, 16))
	assert.Equal(t, -1, RowAtLine(l, 2, -1))
}
