package formatter

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// tableColGap is the number of spaces between columns.
const tableColGap = 2

// RenderTable renders an aligned table with a header separator line.
// Column widths are measured on visible cells, so styled values line up.
// Trailing empty cells are not padded.
func RenderTable(headers []string, rows [][]string) string {
	if len(headers) == 0 {
		return ""
	}
	widths := columnWidths(headers, rows)

	var b strings.Builder
	styled := make([]string, len(headers))
	for i, h := range headers {
		styled[i] = StyleHeader.Render(h)
	}
	writeTableRow(&b, styled, widths)

	seps := make([]string, len(widths))
	for i, w := range widths {
		seps[i] = StyleDim.Render(strings.Repeat("─", w))
	}
	writeTableRow(&b, seps, widths)

	for _, row := range rows {
		writeTableRow(&b, row, widths)
	}
	return b.String()
}

func columnWidths(headers []string, rows [][]string) []int {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for i := 0; i < len(widths) && i < len(row); i++ {
			widths[i] = max(widths[i], lipgloss.Width(row[i]))
		}
	}
	return widths
}

func writeTableRow(b *strings.Builder, cells []string, widths []int) {
	last := len(widths) - 1
	for last > 0 && (last >= len(cells) || cells[last] == "") {
		last--
	}
	for i := 0; i <= last; i++ {
		cell := ""
		if i < len(cells) {
			cell = cells[i]
		}
		if i == last {
			b.WriteString(cell)
			break
		}
		b.WriteString(PadRight(cell, widths[i]+tableColGap))
	}
	b.WriteString("\n")
}
