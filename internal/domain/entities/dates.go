package entities

import "time"

// DateLayout is the wire and storage format for policy/endorsement dates.
// All dates in this domain are calendar dates; times of day never matter.
const DateLayout = time.DateOnly

// ParseDate parses a YYYY-MM-DD string into a UTC midnight time.Time.
func ParseDate(s string) (time.Time, error) {
	d, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, err
	}
	return d.UTC(), nil
}

// FormatDate renders a date in the wire format.
func FormatDate(d time.Time) string {
	return d.UTC().Format(DateLayout)
}

// Today truncates now to a UTC calendar date.
func Today(now time.Time) time.Time {
	y, m, d := now.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DaysBetween returns the absolute distance between two calendar dates in
// whole days.
func DaysBetween(a, b time.Time) int {
	days := int(Today(b).Sub(Today(a)).Hours() / 24)
	if days < 0 {
		return -days
	}
	return days
}

// WithinWindow reports whether day falls inside [start, end], inclusive on
// both ends.
func WithinWindow(day, start, end time.Time) bool {
	day = Today(day)
	return !day.Before(Today(start)) && !day.After(Today(end))
}

// SameDate reports whether two timestamps fall on the same calendar date.
func SameDate(a, b time.Time) bool {
	return Today(a).Equal(Today(b))
}
