package domain

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidHourKey is returned when a start time is not a valid "HH:MM" value.
var ErrInvalidHourKey = errors.New("invalid start time")

// HourKey is the "HH:MM" start time of an event. It is the event's natural
// key: at most one event exists per HourKey.
type HourKey string

// HourKeyFor returns the on-the-hour key for hour, e.g. 8 -> "08:00".
func HourKeyFor(hour int) HourKey {
	return HourKey(fmt.Sprintf("%02d:00", hour))
}

// ParseHourKey validates s and returns it in canonical zero-padded form.
// "8:00" and "08:00" both yield "08:00".
func ParseHourKey(s string) (HourKey, error) {
	s = strings.TrimSpace(s)
	hh, mm, ok := strings.Cut(s, ":")
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrInvalidHourKey, s)
	}
	if !isDigits(hh) || !isDigits(mm) {
		return "", fmt.Errorf("%w: %q", ErrInvalidHourKey, s)
	}
	h, err := strconv.Atoi(hh)
	if err != nil || h > 23 || len(hh) > 2 {
		return "", fmt.Errorf("%w: %q", ErrInvalidHourKey, s)
	}
	m, err := strconv.Atoi(mm)
	if err != nil || m > 59 || len(mm) != 2 {
		return "", fmt.Errorf("%w: %q", ErrInvalidHourKey, s)
	}
	return HourKey(fmt.Sprintf("%02d:%02d", h, m)), nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// MustHourKey is ParseHourKey for literals; it panics on invalid input.
func MustHourKey(s string) HourKey {
	k, err := ParseHourKey(s)
	if err != nil {
		panic(err)
	}
	return k
}

// Hour returns the hour component, or -1 if the key is malformed.
func (k HourKey) Hour() int {
	hh, _, ok := strings.Cut(string(k), ":")
	if !ok {
		return -1
	}
	h, err := strconv.Atoi(hh)
	if err != nil {
		return -1
	}
	return h
}

// Minute returns the minute component, or -1 if the key is malformed.
func (k HourKey) Minute() int {
	_, mm, ok := strings.Cut(string(k), ":")
	if !ok {
		return -1
	}
	m, err := strconv.Atoi(mm)
	if err != nil {
		return -1
	}
	return m
}

// IsOnTheHour reports whether the key is a valid "HH:00" value.
func (k HourKey) IsOnTheHour() bool {
	return k.Hour() >= 0 && k.Minute() == 0
}

// minutes returns minutes since midnight, used for ordering.
func (k HourKey) minutes() int {
	h, m := k.Hour(), k.Minute()
	if h < 0 || m < 0 {
		return -1
	}
	return h*60 + m
}

func (k HourKey) String() string { return string(k) }
