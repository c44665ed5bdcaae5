// Package dates provides calendar arithmetic for trip day indices.
//
// Dates are plain "YYYY-MM-DD" strings interpreted at local midnight.
// Working from local midnight (rather than UTC) keeps a calendar date
// on the same day index regardless of the host timezone, and rounding
// the hour delta absorbs DST transitions.
package dates

import (
	"fmt"
	"math"
	"time"
)

// Layout is the wire format for calendar dates.
const Layout = "2006-01-02"

// Parse converts a "YYYY-MM-DD" string to local midnight of that date.
func Parse(date string) (time.Time, error) {
	t, err := time.ParseInLocation(Layout, date, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", date, err)
	}
	return t, nil
}

// DaysBetween returns the number of whole days between start and end,
// floored at 0. An end before start yields 0, never a negative count.
func DaysBetween(start, end string) (int, error) {
	s, err := Parse(start)
	if err != nil {
		return 0, err
	}
	e, err := Parse(end)
	if err != nil {
		return 0, err
	}
	days := int(math.Round(e.Sub(s).Hours() / 24))
	if days < 0 {
		return 0, nil
	}
	return days, nil
}

// DayIndexFor returns the 1-based offset of date from start: start
// itself maps to day 1. Dates before start yield values <= 0. This is
// a raw computation; callers range-check the result where required.
func DayIndexFor(date, start string) (int, error) {
	d, err := Parse(date)
	if err != nil {
		return 0, err
	}
	s, err := Parse(start)
	if err != nil {
		return 0, err
	}
	return int(math.Round(d.Sub(s).Hours()/24)) + 1, nil
}

// DateForDay maps a 1-based day index back to a calendar date relative
// to start. It is the inverse of DayIndexFor for in-range days.
func DateForDay(start string, day int) (time.Time, error) {
	s, err := Parse(start)
	if err != nil {
		return time.Time{}, err
	}
	return s.AddDate(0, 0, day-1), nil
}
