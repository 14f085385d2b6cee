package calendar

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCenterOffset(t *testing.T) {
	m := StripMetrics{BoxWidth: 80, Gap: 8}

	// index*88 - 400/2 + 80/2
	assert.Equal(t, 10*88-200+40, m.CenterOffset(10, 400))
	assert.Equal(t, 0, m.CenterOffset(0, 400), "clamped to zero")
	assert.Equal(t, 0, m.CenterOffset(1, 400), "88-200+40 < 0")
	assert.Equal(t, 0, m.CenterOffset(-1, 400))
}

func TestCenterOffset_CentresBox(t *testing.T) {
	m := DefaultStripMetrics()
	const width = 81
	for _, idx := range []int{20, 150, 300} {
		off := m.CenterOffset(idx, width)
		boxMid := idx*m.ItemWidth() + m.BoxWidth/2 - off
		assert.InDelta(t, width/2, boxMid, 1, "index=%d", idx)
	}
}

func TestVisibleRange(t *testing.T) {
	m := StripMetrics{BoxWidth: 8, Gap: 1}

	first, count := m.VisibleRange(0, 27, 365)
	assert.Equal(t, 0, first)
	assert.Equal(t, 3, count)

	first, count = m.VisibleRange(10, 27, 365)
	assert.Equal(t, 1, first)
	assert.Equal(t, 4, count, "box 4 starts on the last visible column")

	first, count = m.VisibleRange(363*9, 90, 365)
	assert.Equal(t, 363, first)
	assert.Equal(t, 2, count, "clipped at the end of the strip")

	_, count = m.VisibleRange(0, 0, 365)
	assert.Zero(t, count)
}

func TestEnsureVisible(t *testing.T) {
	m := StripMetrics{BoxWidth: 8, Gap: 1}

	assert.Equal(t, 45, m.EnsureVisible(90, 5, 40), "scrolls left to the box start")
	assert.Equal(t, 90-40+8, m.EnsureVisible(0, 10, 40), "scrolls right so the box end fits")
	assert.Equal(t, 20, m.EnsureVisible(20, 3, 40), "already visible")
}
