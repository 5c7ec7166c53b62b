// Package calendar implements the month-grid arithmetic behind the
// picker: week grid generation, selectability rules, and range
// membership. Everything here is pure; state lives in pkg/picker.
package calendar

import "time"

// Relationship classifies a generated day against the month its grid
// was generated for. It is assigned once at generation time and never
// recomputed.
type Relationship int

const (
	// BeforeMonth marks padding days from the previous month.
	BeforeMonth Relationship = iota
	// InMonth marks days belonging to the target month.
	InMonth
	// AfterMonth marks padding days from the next month.
	AfterMonth
)

func (r Relationship) String() string {
	switch r {
	case BeforeMonth:
		return "before"
	case InMonth:
		return "in"
	case AfterMonth:
		return "after"
	}
	return "unknown"
}

// Day is a single cell of a week grid: a calendar date plus its
// relationship to the grid's target month. Days are immutable values
// owned by the grid that produced them.
type Day struct {
	Date         time.Time
	Relationship Relationship
}

// Weekday returns the day-of-week derived from the date.
func (d Day) Weekday() time.Weekday {
	return d.Date.Weekday()
}

// Equal reports whether two days carry the same date and the same
// month relationship.
func (d Day) Equal(o Day) bool {
	return d.Relationship == o.Relationship && d.Date.Equal(o.Date)
}

// DateOf truncates t to its calendar date: midnight UTC, no
// time-of-day semantics.
func DateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// SameDate reports whether a and b fall on the same calendar date,
// ignoring time-of-day and location.
func SameDate(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}
