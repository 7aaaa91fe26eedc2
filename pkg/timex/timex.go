// Package timex has calendar helpers for time.Time. Day boundaries are
// computed in the value's own location.
package timex

import "time"

// now is replaced in tests.
var now = time.Now

// StartOfDay returns midnight of t's day.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// EndOfDay returns 23:59:59 of t's day.
func EndOfDay(t time.Time) time.Time {
	return StartOfDay(t).AddDate(0, 0, 1).Add(-time.Second)
}

// IsSameDay reports whether a and b fall on the same calendar day in a's location.
func IsSameDay(a, b time.Time) bool {
	b = b.In(a.Location())
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// IsToday reports whether t falls on the current day.
func IsToday(t time.Time) bool {
	return IsSameDay(t, now())
}

// IsYesterday reports whether t falls on the day before the current day.
func IsYesterday(t time.Time) bool {
	return IsSameDay(t, AddDays(now().In(t.Location()), -1))
}

// IsTomorrow reports whether t falls on the day after the current day.
func IsTomorrow(t time.Time) bool {
	return IsSameDay(t, AddDays(now().In(t.Location()), 1))
}

// AddDays moves t by n calendar days, keeping the wall clock time.
func AddDays(t time.Time, n int) time.Time {
	return t.AddDate(0, 0, n)
}

// AddWeeks moves t by n calendar weeks.
func AddWeeks(t time.Time, n int) time.Time {
	return t.AddDate(0, 0, 7*n)
}

// AddMonths moves t by n months. Unlike time.AddDate the day is clamped
// to the end of the target month, so Jan 31 + 1 month is Feb 28 (or 29).
func AddMonths(t time.Time, n int) time.Time {
	y, m, d := t.Date()
	first := time.Date(y, m+time.Month(n), 1, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
	return first.AddDate(0, 0, min(d, daysIn(first))-1)
}

func daysIn(t time.Time) int {
	return time.Date(t.Year(), t.Month()+1, 0, 0, 0, 0, 0, t.Location()).Day()
}

// IsBefore reports whether t is strictly before other.
func IsBefore(t, other time.Time) bool {
	return t.Before(other)
}

// IsAfter reports whether t is strictly after other.
func IsAfter(t, other time.Time) bool {
	return t.After(other)
}

// IsBetween reports whether t lies within [start, end], bounds included.
func IsBetween(t, start, end time.Time) bool {
	return !t.Before(start) && !t.After(end)
}
