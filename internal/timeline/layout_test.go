package timeline

import (
	"testing"

	"github.com/alexanderramin/agenda/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ev(start string, dur int) *domain.Event {
	return &domain.Event{Start: domain.MustHourKey(start), Title: "at " + start, DurationHours: dur}
}

func rowHours(l Layout) []int {
	var hours []int
	for _, r := range l.Rows {
		hours = append(hours, r.Hour)
	}
	return hours
}

func TestBuild_CollapsesDurations(t *testing.T) {
	work := ev("08:00", 4)
	nap := ev("12:00", 1)
	l := Build([]*domain.Event{work, nap}, DefaultRange())

	assert.Equal(t, []int{6, 7, 8, 12, 13, 14, 15, 16, 17, 18, 19, 20, 21, 22, 23}, rowHours(l))

	row, ok := l.RowAt(8)
	require.True(t, ok)
	assert.Same(t, work, row.Event)
	assert.Equal(t, 4, row.Span)

	for _, h := range []int{9, 10, 11} {
		owner, ok := l.RowAt(h)
		require.True(t, ok)
		assert.Equal(t, 8, owner.Hour, "hour %d belongs to the 08:00 block", h)
	}

	row, ok = l.RowAt(12)
	require.True(t, ok)
	assert.Same(t, nap, row.Event)
	assert.Equal(t, 1, row.Span)

	for _, r := range l.Rows {
		if r.Hour != 8 && r.Hour != 12 {
			assert.False(t, r.Filled(), "hour %d", r.Hour)
			assert.Equal(t, 1, r.Span)
		}
	}
	assert.Empty(t, l.Shadowed)
	assert.Empty(t, l.Unplaced)
}

func TestBuild_EmptyAgenda(t *testing.T) {
	l := Build(nil, DefaultRange())
	require.Len(t, l.Rows, 18)
	assert.Equal(t, domain.HourKey("06:00"), l.Rows[0].Label)
	assert.Equal(t, domain.HourKey("23:00"), l.Rows[17].Label)
	assert.Equal(t, 18*3, l.Height(3))
}

func TestBuild_StartInsideEarlierSpanIsShadowed(t *testing.T) {
	long := ev("08:00", 4)
	inner := ev("10:00", 1)
	l := Build([]*domain.Event{long, inner}, DefaultRange())

	_, ok := l.RowAt(10)
	require.True(t, ok)
	for _, r := range l.Rows {
		assert.NotSame(t, inner, r.Event)
	}
	require.Len(t, l.Shadowed, 1)
	assert.Same(t, inner, l.Shadowed[0])
}

func TestBuild_LastHourOverflows(t *testing.T) {
	late := ev("23:00", 3)
	l := Build([]*domain.Event{late}, DefaultRange())

	last := l.Rows[len(l.Rows)-1]
	assert.Equal(t, 23, last.Hour)
	assert.Equal(t, 3, last.Span, "height keeps the full duration")
	assert.Len(t, l.Rows, 18, "no rows beyond the range")
	assert.Equal(t, (17+3)*2, l.Height(2))
}

func TestBuild_ZeroDurationOccupiesOneRow(t *testing.T) {
	z := ev("07:00", 0)
	l := Build([]*domain.Event{z}, DefaultRange())

	row, ok := l.RowAt(7)
	require.True(t, ok)
	assert.Same(t, z, row.Event)
	assert.Equal(t, 1, row.Span)

	next, ok := l.RowAt(8)
	require.True(t, ok)
	assert.Equal(t, 8, next.Hour)
}

func TestBuild_UnplacedEvents(t *testing.T) {
	early := ev("05:00", 2)
	half := ev("09:30", 1)
	l := Build([]*domain.Event{early, half}, DefaultRange())

	assert.ElementsMatch(t, []*domain.Event{early, half}, l.Unplaced)
	assert.Len(t, l.Rows, 18)
}

func TestBuild_OrderIndependent(t *testing.T) {
	a := Build([]*domain.Event{ev("18:00", 2), ev("06:00", 1)}, DefaultRange())
	b := Build([]*domain.Event{ev("06:00", 1), ev("18:00", 2)}, DefaultRange())
	assert.Equal(t, rowHours(a), rowHours(b))
}

func TestBuild_CustomRange(t *testing.T) {
	l := Build([]*domain.Event{ev("09:00", 2)}, HourRange{First: 9, Last: 12})
	assert.Equal(t, []int{9, 11, 12}, rowHours(l))
}

func TestRowIndexAndLineOf(t *testing.T) {
	l := Build([]*domain.Event{ev("08:00", 4)}, DefaultRange())
	assert.Equal(t, 2, l.RowIndex(10))
	assert.Equal(t, 3, l.RowIndex(12))
	assert.Equal(t, -1, l.RowIndex(3))
	assert.Equal(t, (1+1+4)*2, l.LineOf(3, 2))
}

func TestHourRange_Validate(t *testing.T) {
	assert.NoError(t, DefaultRange().Validate())
	assert.ErrorIs(t, HourRange{First: 10, Last: 9}.Validate(), ErrInvalidRange)
	assert.ErrorIs(t, HourRange{First: -1, Last: 9}.Validate(), ErrInvalidRange)
	assert.ErrorIs(t, HourRange{First: 0, Last: 24}.Validate(), ErrInvalidRange)
}
