package calendar

// StripMetrics describes the horizontal layout of the day strip in columns.
type StripMetrics struct {
	BoxWidth int
	Gap      int
}

// DefaultStripMetrics returns the terminal sizing used for day boxes.
func DefaultStripMetrics() StripMetrics {
	return StripMetrics{BoxWidth: 8, Gap: 1}
}

// ItemWidth is the column advance from one box to the next.
func (m StripMetrics) ItemWidth() int {
	w := m.BoxWidth + m.Gap
	if w < 1 {
		return 1
	}
	return w
}

// CenterOffset returns the scroll offset that centres the box at index in a
// viewport of the given width, clamped to zero.
func (m StripMetrics) CenterOffset(index, viewportWidth int) int {
	if index < 0 {
		return 0
	}
	offset := index*m.ItemWidth() - viewportWidth/2 + m.BoxWidth/2
	if offset < 0 {
		return 0
	}
	return offset
}

// VisibleRange returns the first box index and how many boxes are at least
// partly inside a viewport scrolled to offset, for a strip of n boxes.
func (m StripMetrics) VisibleRange(offset, viewportWidth, n int) (first, count int) {
	if n <= 0 || viewportWidth <= 0 {
		return 0, 0
	}
	if offset < 0 {
		offset = 0
	}
	item := m.ItemWidth()
	first = offset / item
	if first >= n {
		return n, 0
	}
	last := (offset + viewportWidth - 1) / item
	if last >= n {
		last = n - 1
	}
	return first, last - first + 1
}

// EnsureVisible returns an offset that keeps the box at index fully inside
// the viewport, moving as little as possible.
func (m StripMetrics) EnsureVisible(offset, index, viewportWidth int) int {
	if index < 0 {
		return offset
	}
	start := index * m.ItemWidth()
	end := start + m.BoxWidth
	switch {
	case start < offset:
		offset = start
	case end > offset+viewportWidth:
		offset = end - viewportWidth
	}
	if offset < 0 {
		offset = 0
	}
	return offset
}
