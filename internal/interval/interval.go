// Package interval defines minute-of-day intervals and the overlap sweep over them.
package interval

import (
	"errors"
	"fmt"

	"github.com/javiermolinar/overlap/internal/clock"
)

// ErrInvalidInterval is returned when an interval does not satisfy 0 <= Start < End < 1440.
var ErrInvalidInterval = errors.New("interval must satisfy 0 <= start < end < 1440")

// Interval is a span of minutes since midnight, [Start, End).
type Interval struct {
	Start int
	End   int
}

// New creates a validated interval.
func New(start, end int) (Interval, error) {
	iv := Interval{Start: start, End: end}
	if !iv.Valid() {
		return Interval{}, fmt.Errorf("%w: got %s", ErrInvalidInterval, iv)
	}
	return iv, nil
}

// Valid reports whether the interval lies inside the day and is non-empty.
func (iv Interval) Valid() bool {
	return iv.Start >= 0 && iv.Start < iv.End && iv.End < clock.MinutesPerDay
}

// Contains reports whether other lies entirely within iv.
func (iv Interval) Contains(other Interval) bool {
	return other.Start >= iv.Start && other.End <= iv.End
}

// String renders the interval as "(9:00am - 10:00am)".
// Bounds outside the day are shown as raw minutes.
func (iv Interval) String() string {
	if !inDay(iv.Start) || !inDay(iv.End) {
		return fmt.Sprintf("(%d - %d)", iv.Start, iv.End)
	}
	return fmt.Sprintf("(%s - %s)", clock.Format(iv.Start), clock.Format(iv.End))
}

// Overlaps returns true if two intervals overlap.
// Two intervals overlap if: a.Start < b.End AND b.Start < a.End
func Overlaps(a, b Interval) bool {
	return a.Start < b.End && b.Start < a.End
}

// OverlapMinutes returns the number of minutes shared by a and b.
// Returns 0 if there is no overlap.
func OverlapMinutes(a, b Interval) int {
	overlapStart := max(a.Start, b.Start)
	overlapEnd := min(a.End, b.End)

	if overlapEnd <= overlapStart {
		return 0
	}
	return overlapEnd - overlapStart
}

func inDay(m int) bool {
	return m >= 0 && m < clock.MinutesPerDay
}
