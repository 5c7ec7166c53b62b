package calendar

import "time"

// Week is exactly seven consecutive days starting on the configured
// first day of week.
type Week []Day

// Grid is the full padded day structure for one month: every week
// holds seven days, the first and last weeks carry padding days from
// the adjacent months where the target month does not align with the
// week anchor.
type Grid struct {
	Year  int
	Month time.Month
	Weeks []Week
}

// Days returns the grid's days flattened in order.
func (g Grid) Days() []Day {
	out := make([]Day, 0, len(g.Weeks)*7)
	for _, w := range g.Weeks {
		out = append(out, w...)
	}
	return out
}

// First returns the first day of the grid, padding included.
func (g Grid) First() Day {
	if len(g.Weeks) == 0 {
		return Day{}
	}
	return g.Weeks[0][0]
}

// Last returns the last day of the grid, padding included.
func (g Grid) Last() Day {
	if len(g.Weeks) == 0 {
		return Day{}
	}
	last := g.Weeks[len(g.Weeks)-1]
	return last[len(last)-1]
}

// Generate builds the week grid for (year, month) under cfg. Month
// values outside 1..12 are normalized into the adjacent year before
// generation, so Generate(2025, 13, cfg) is Generate(2026, time.January, cfg).
//
// The grid starts on the first cfg.FirstDayOfWeek at or before the
// first of the month and ends on the weekday preceding the anchor at
// or after the last of the month, producing 4, 5 or 6 complete weeks.
func Generate(year int, month time.Month, cfg Config) Grid {
	first := AddMonths(time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC), int(month)-1)
	last := AddMonths(first, 1).AddDate(0, 0, -1)

	anchor := cfg.FirstDayOfWeek
	lead := (int(first.Weekday()) - int(anchor) + 7) % 7
	start := first.AddDate(0, 0, -lead)

	lastWeekday := (int(anchor) + 6) % 7
	trail := (lastWeekday - int(last.Weekday()) + 7) % 7
	end := last.AddDate(0, 0, trail)

	g := Grid{Year: first.Year(), Month: first.Month()}
	for ws := start; !ws.After(end); ws = ws.AddDate(0, 0, 7) {
		week := make(Week, 0, 7)
		for i := 0; i < 7; i++ {
			date := ws.AddDate(0, 0, i)
			week = append(week, Day{Date: date, Relationship: relationshipTo(date, first, last)})
		}
		g.Weeks = append(g.Weeks, week)
	}
	return g
}

func relationshipTo(date, first, last time.Time) Relationship {
	switch {
	case date.Before(first):
		return BeforeMonth
	case date.After(last):
		return AfterMonth
	default:
		return InMonth
	}
}
