package calendar

import "time"

// MonthOf truncates t to the first day of its month.
func MonthOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// AddMonths steps month by n whole months and returns the first day of
// the resulting month. Year rollover is normalized here explicitly
// (floor division), so stepping January back one month lands on
// December of the prior year without relying on time.Date overflow
// behavior.
func AddMonths(month time.Time, n int) time.Time {
	y := month.Year()
	m := int(month.Month()) - 1 + n
	if m < 0 {
		y += (m - 11) / 12
		m = m%12 + 12
	} else {
		y += m / 12
	}
	m = m % 12
	return time.Date(y, time.Month(m+1), 1, 0, 0, 0, 0, time.UTC)
}

// SameMonth reports whether a and b fall in the same calendar month.
func SameMonth(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month()
}

// DaysIn returns the number of days in t's month.
func DaysIn(t time.Time) int {
	return AddMonths(MonthOf(t), 1).AddDate(0, 0, -1).Day()
}
