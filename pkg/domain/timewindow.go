package domain

import (
	"fmt"
	"time"
)

// ClockTime is a minute-of-day in the range [0, 1440]. 1440 is permitted as
// an exclusive end meaning midnight at the close of the day.
type ClockTime int

// ParseClockTime parses an "HH:MM" string into a ClockTime.
func ParseClockTime(s string) (ClockTime, error) {
	var h, m int
	if _, err := fmt.Sscanf(s, "%d:%d", &h, &m); err != nil {
		return 0, fmt.Errorf("parse clock time %q: %w", s, ErrInvalidValue)
	}
	if h < 0 || h > 24 || m < 0 || m > 59 || (h == 24 && m != 0) {
		return 0, fmt.Errorf("clock time %q out of range: %w", s, ErrInvalidValue)
	}
	return ClockTime(h*60 + m), nil
}

// String formats the clock time as "HH:MM".
func (c ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d", int(c)/60, int(c)%60)
}

// ClockRange is a same-day time range [Start, End) in minutes of day.
type ClockRange struct {
	Start ClockTime
	End   ClockTime
}

// Contains reports whether other is fully inside the range. Partial overlap
// is not containment.
func (r ClockRange) Contains(other ClockRange) bool {
	return r.Start <= other.Start && other.End <= r.End
}

// Valid reports whether the range is non-empty and within a day.
func (r ClockRange) Valid() bool {
	return r.Start >= 0 && r.Start < r.End && r.End <= 24*60
}

// DaySegment is the part of a visit window that falls on a single weekday.
type DaySegment struct {
	Day   time.Weekday
	Range ClockRange
}

// VisitWindow is an absolute scheduled time range for a visit.
type VisitWindow struct {
	Start time.Time
	End   time.Time
}

// Validate checks the scheduled ordering invariant.
func (w VisitWindow) Validate() error {
	if !w.Start.Before(w.End) {
		return fmt.Errorf("visit window start %s not before end %s: %w",
			w.Start.Format(time.RFC3339), w.End.Format(time.RFC3339), ErrInvalidValue)
	}
	return nil
}

// Overlaps reports whether two windows share any time. Touching endpoints
// (one ends exactly when the other starts) do not overlap.
func (w VisitWindow) Overlaps(other VisitWindow) bool {
	return w.Start.Before(other.End) && other.Start.Before(w.End)
}

// Date returns the calendar date of the window's start.
func (w VisitWindow) Date() time.Time {
	y, m, d := w.Start.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, w.Start.Location())
}

// Segments splits the window into per-weekday clock ranges. A window that is
// contained in one day yields a single segment. A window crossing midnight
// yields one segment per day touched, so availability checks run against the
// correct weekday on each side of the boundary.
func (w VisitWindow) Segments() ([]DaySegment, error) {
	if err := w.Validate(); err != nil {
		return nil, err
	}

	var segments []DaySegment
	cursor := w.Start
	for cursor.Before(w.End) {
		endOfDay := time.Date(cursor.Year(), cursor.Month(), cursor.Day(), 0, 0, 0, 0, cursor.Location()).AddDate(0, 0, 1)
		segEnd := w.End
		if endOfDay.Before(segEnd) {
			segEnd = endOfDay
		}

		startMin := ClockTime(cursor.Hour()*60 + cursor.Minute())
		endMin := ClockTime(segEnd.Hour()*60 + segEnd.Minute())
		if segEnd.Equal(endOfDay) {
			endMin = 24 * 60
		}

		segments = append(segments, DaySegment{
			Day:   cursor.Weekday(),
			Range: ClockRange{Start: startMin, End: endMin},
		})
		cursor = endOfDay
	}
	return segments, nil
}
