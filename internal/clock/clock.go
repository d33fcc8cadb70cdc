// Package clock converts between 12-hour clock strings and minutes since midnight.
package clock

import (
	"errors"
	"fmt"
	"strings"
)

// MinutesPerDay is the length of the modeled timeline.
const MinutesPerDay = 24 * 60

// ErrInvalidTime is returned when a string is not a 12-hour clock time.
var ErrInvalidTime = errors.New("time must be in H:MMam or H:MMpm format")

// ParseError records the raw text that failed to parse.
type ParseError struct {
	Text string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid time %q: %v", e.Text, ErrInvalidTime)
}

func (e *ParseError) Unwrap() error {
	return ErrInvalidTime
}

// Parse converts "H:MMam" / "HH:MMpm" to minutes since midnight.
// The am/pm suffix is case-insensitive and surrounding whitespace is ignored.
func Parse(s string) (int, error) {
	t := strings.ToLower(strings.TrimSpace(s))
	if len(t) < 6 {
		return 0, &ParseError{Text: s}
	}

	suffix := t[len(t)-2:]
	if suffix != "am" && suffix != "pm" {
		return 0, &ParseError{Text: s}
	}
	t = t[:len(t)-2]

	colon := strings.IndexByte(t, ':')
	if colon < 1 || colon > 2 || len(t)-colon != 3 {
		return 0, &ParseError{Text: s}
	}

	hour, ok := atoi(t[:colon])
	if !ok || hour < 1 || hour > 12 {
		return 0, &ParseError{Text: s}
	}
	mins, ok := atoi(t[colon+1:])
	if !ok || mins > 59 {
		return 0, &ParseError{Text: s}
	}

	// 12am is midnight, 12pm is noon.
	hour %= 12
	if suffix == "pm" {
		hour += 12
	}
	return hour*60 + mins, nil
}

// Format converts minutes since midnight to "H:MMam" / "H:MMpm".
// Values outside [0, MinutesPerDay) are clamped to the nearest end of the day,
// so callers holding unchecked minutes must validate them first.
func Format(m int) string {
	if m < 0 {
		m = 0
	}
	if m >= MinutesPerDay {
		m = MinutesPerDay - 1
	}

	hour := m / 60
	suffix := "am"
	if hour >= 12 {
		suffix = "pm"
	}
	hour %= 12
	if hour == 0 {
		hour = 12
	}
	return fmt.Sprintf("%d:%02d%s", hour, m%60, suffix)
}

func atoi(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	n := 0
	for _, c := range s {
		if c < '0' || c > '9' {
			return 0, false
		}
		n = n*10 + int(c-'0')
	}
	return n, true
}
