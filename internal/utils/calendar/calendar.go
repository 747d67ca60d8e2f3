// Package calendar provides day and month granularity date helpers used by the
// projection engine. All dates are normalised to midnight UTC.
package calendar

import "time"

// Day truncates t to its calendar day at midnight UTC.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// StartOfMonth returns the first day of t's month.
func StartOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// EndOfMonth returns the last day of t's month.
func EndOfMonth(t time.Time) time.Time {
	return StartOfMonth(t).AddDate(0, 1, -1)
}

// MonthIndex returns year*12+month, a monotonic index of calendar months.
func MonthIndex(t time.Time) int {
	return t.Year()*12 + int(t.Month())
}

// MonthsBetween returns the number of whole calendar month boundaries between from and to,
// ignoring the day of month. It is negative when to is in an earlier month than from.
func MonthsBetween(from, to time.Time) int {
	return MonthIndex(to) - MonthIndex(from)
}

// AddMonths returns the first day of the month n months after t's month.
func AddMonths(t time.Time, n int) time.Time {
	return StartOfMonth(t).AddDate(0, n, 0)
}

// MonthEnds returns one evaluation date per calendar month from from to to inclusive:
// the last day of each month, clamped to to for the final month. It returns nil when
// to falls before from.
func MonthEnds(from, to time.Time) []time.Time {
	from, to = Day(from), Day(to)
	if to.Before(from) {
		return nil
	}
	n := MonthsBetween(from, to) + 1
	out := make([]time.Time, 0, n)
	for i := 0; i < n; i++ {
		d := EndOfMonth(AddMonths(from, i))
		if d.After(to) {
			d = to
		}
		out = append(out, d)
	}
	return out
}
