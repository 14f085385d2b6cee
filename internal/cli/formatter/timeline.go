package formatter

import (
	"strings"

	"github.com/alexanderramin/agenda/internal/timeline"
)

// timelineGutter is the width of the cursor marker plus the hour label.
const timelineGutter = 8

// TimelineOptions controls RenderTimeline.
type TimelineOptions struct {
	Width     int
	RowHeight int
	// Cursor is the index of the highlighted row, or -1.
	Cursor int
}

// RenderTimeline draws every row of l. A row spanning n hours takes
// n*RowHeight lines; filled rows are painted in the event's colour.
func RenderTimeline(l timeline.Layout, o TimelineOptions) string {
	rh := max(o.RowHeight, 1)
	blockW := max(o.Width-timelineGutter, 12)

	var lines []string
	for i, row := range l.Rows {
		n := row.Span * rh
		for j := 0; j < n; j++ {
			lines = append(lines, timelineGutterFor(row, i == o.Cursor, j)+timelineBody(row, j, blockW))
		}
	}
	return strings.Join(lines, "\n")
}

func timelineGutterFor(row timeline.Row, selected bool, line int) string {
	marker := "  "
	if selected && line == 0 {
		marker = StyleHeader.Render("▸ ")
	}
	if line != 0 {
		return marker + strings.Repeat(" ", timelineGutter-2)
	}
	label := string(row.Label)
	if row.Filled() {
		label = StyleBold.Render(label)
	} else {
		label = Dim(label)
	}
	return marker + label + " "
}

func timelineBody(row timeline.Row, line, width int) string {
	if !row.Filled() {
		if line == 0 {
			return Dim(strings.Repeat("┄", width))
		}
		return ""
	}

	var text string
	switch line {
	case 0:
		text = " " + Truncate(row.Event.Title, width-2)
	case 1:
		text = " " + FormatHours(row.Event.DurationHours)
	}
	return EventBlock(row.Event.Color).Render(PadRight(text, width))
}

// RowAtLine maps a line of RenderTimeline output back to a row index, or
// -1 when the line is past the last row.
func RowAtLine(l timeline.Layout, rowHeight, line int) int {
	rh := max(rowHeight, 1)
	if line < 0 || line >= l.Height(rh) {
		return -1
	}
	for i, row := range l.Rows {
		n := row.Span * rh
		if line < n {
			return i
		}
		line -= n
	}
	return -1
}
