package scheduling

import (
	"fmt"
	"time"
)

const dateLayout = "2006-01-02"

// Calendar is the shop's fixed weekly operating window. It is pure
// configuration: changing the window or granularity must not touch the
// resolver or the booking transaction.
type Calendar struct {
	OpenMinute    int          // minutes from midnight, inclusive
	CloseMinute   int          // minutes from midnight, exclusive
	SlotInterval  int          // candidate step, minutes
	ClosedWeekday time.Weekday // no candidates on this weekday
}

// ParseDate parses a YYYY-MM-DD calendar date.
func ParseDate(s string) (time.Time, error) {
	d, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return d, nil
}

// CandidateStarts generates the ordered candidate start times (minutes from
// midnight) for a service of the given duration on the given date. A start is
// emitted only if the full occupancy interval fits before closing time. On
// the closed weekday the result is empty.
func (c Calendar) CandidateStarts(date time.Time, durationMinutes int) []int {
	if date.Weekday() == c.ClosedWeekday {
		return nil
	}
	if durationMinutes <= 0 || c.SlotInterval <= 0 {
		return nil
	}

	var starts []int
	for m := c.OpenMinute; m < c.CloseMinute; m += c.SlotInterval {
		if m+durationMinutes <= c.CloseMinute {
			starts = append(starts, m)
		}
	}
	return starts
}
