// Package calendar generates the year of days shown in the day strip and
// computes the strip's horizontal geometry.
package calendar

import "time"

// Day is a calendar date with no time component.
type Day struct {
	Year  int
	Month time.Month
	Day   int
}

// DayOf returns the date of t in t's location.
func DayOf(t time.Time) Day {
	y, m, d := t.Date()
	return Day{Year: y, Month: m, Day: d}
}

// Time returns midnight of the day in loc.
func (d Day) Time(loc *time.Location) time.Time {
	if loc == nil {
		loc = time.Local
	}
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, loc)
}

// Equal reports whether both values name the same date.
func (d Day) Equal(o Day) bool { return d == o }

// Before reports whether d is strictly earlier than o.
func (d Day) Before(o Day) bool {
	if d.Year != o.Year {
		return d.Year < o.Year
	}
	if d.Month != o.Month {
		return d.Month < o.Month
	}
	return d.Day < o.Day
}

// Weekday returns the day of the week.
func (d Day) Weekday() time.Weekday {
	return d.Time(time.UTC).Weekday()
}

// AddDays returns the date n days later (or earlier for negative n).
func (d Day) AddDays(n int) Day {
	return DayOf(time.Date(d.Year, d.Month, d.Day+n, 0, 0, 0, 0, time.UTC))
}

func (d Day) String() string {
	return d.Time(time.UTC).Format("2006-01-02")
}

// ParseDay parses a YYYY-MM-DD string.
func ParseDay(s string) (Day, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return Day{}, err
	}
	return DayOf(t), nil
}

// GenerateYear returns every date from January 1 to December 31 of today's
// year, inclusive and ascending.
func GenerateYear(today time.Time) []Day {
	return YearDays(today.Year())
}

// YearDays returns all dates of year in ascending order.
func YearDays(year int) []Day {
	days := make([]Day, 0, 366)
	for i := 0; ; i++ {
		// time.Date normalizes overflowing day numbers into later months,
		// and UTC keeps DST transitions out of the walk.
		t := time.Date(year, time.January, 1+i, 0, 0, 0, 0, time.UTC)
		if t.Year() != year {
			break
		}
		days = append(days, DayOf(t))
	}
	return days
}

// IndexOf returns the index of day in days, or -1.
func IndexOf(days []Day, day Day) int {
	for i, d := range days {
		if d.Equal(day) {
			return i
		}
	}
	return -1
}

// FormatDay renders a strip label such as "Sat 17".
func FormatDay(d Day) string {
	return d.Time(time.UTC).Format("Mon 2")
}

// FormatHeader renders a header date such as "17 Oct 2026".
func FormatHeader(d Day) string {
	return d.Time(time.UTC).Format("2 Jan 2006")
}
