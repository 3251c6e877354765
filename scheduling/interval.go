// Package scheduling holds the pure time arithmetic behind availability
// computation and booking validation: minute-of-day intervals, the single
// overlap predicate, and the business calendar's candidate slot lattice.
package scheduling

import (
	"fmt"
	"time"
)

// Interval is a half-open time range [Start, End) in minutes from local
// midnight.
type Interval struct {
	Start int
	End   int
}

// Overlaps reports whether two half-open intervals intersect. Touching
// endpoints do not overlap. Every overlap comparison in the system goes
// through this predicate.
func Overlaps(a, b Interval) bool {
	return a.Start < b.End && b.Start < a.End
}

// OverlapsAny reports whether iv intersects any interval in busy.
func OverlapsAny(iv Interval, busy []Interval) bool {
	for _, b := range busy {
		if Overlaps(iv, b) {
			return true
		}
	}
	return false
}

// ParseClock converts a wall-clock string to minutes from midnight. It
// accepts 24-hour "15:04" input and, because some stored appointments carry
// display-formatted times, falls back to 12-hour "03:04 PM".
func ParseClock(s string) (int, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		t, err = time.Parse("03:04 PM", s)
		if err != nil {
			return 0, fmt.Errorf("invalid clock time %q: %w", s, err)
		}
	}
	return t.Hour()*60 + t.Minute(), nil
}

// FormatClock renders minutes from midnight as 24-hour "15:04".
func FormatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// FormatClock12 renders minutes from midnight in the 12-hour display format
// used by the availability endpoint, e.g. "09:00 AM", "08:30 PM".
func FormatClock12(minutes int) string {
	t := time.Date(0, 1, 1, minutes/60, minutes%60, 0, 0, time.UTC)
	return t.Format("03:04 PM")
}
