package formatter

import (
	"strings"

	"github.com/alexanderramin/agenda/internal/calendar"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// DayStripOptions controls RenderDayStrip. Offset and Width are in columns.
type DayStripOptions struct {
	Metrics calendar.StripMetrics
	Offset  int
	Width   int
	Active  calendar.Day
	Today   calendar.Day
}

// RenderDayStrip draws the boxes of days visible through a Width-column
// window scrolled Offset columns from the first day. Boxes cut by either
// edge are drawn partially.
func RenderDayStrip(days []calendar.Day, o DayStripOptions) string {
	first, count := o.Metrics.VisibleRange(o.Offset, o.Width, len(days))
	if count == 0 {
		return ""
	}

	boxes := make([]string, 0, count)
	for i := first; i < first+count; i++ {
		boxes = append(boxes, renderDayBox(days[i], o))
	}
	joined := lipgloss.JoinHorizontal(lipgloss.Top, boxes...)

	skip := o.Offset - first*o.Metrics.ItemWidth()
	lines := strings.Split(joined, "\n")
	for i, l := range lines {
		lines[i] = ansi.Cut(l, skip, skip+o.Width)
	}
	return strings.Join(lines, "\n")
}

func renderDayBox(d calendar.Day, o DayStripOptions) string {
	inner := max(o.Metrics.BoxWidth-2, 1)
	label := Truncate(calendar.FormatDay(d), inner)

	border := ColorDim
	text := StyleFg
	switch {
	case d.Equal(o.Active):
		border = ColorHeader
		text = StyleHeader
	case d.Equal(o.Today):
		border = ColorGreen
		text = StyleGreen
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Width(inner).
		Align(lipgloss.Center).
		MarginRight(o.Metrics.Gap).
		Render(text.Render(label))
}
