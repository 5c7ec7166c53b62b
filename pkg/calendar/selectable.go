package calendar

import "time"

// IsSelectable reports whether day may be picked under cfg. All rules
// are conjunctive: padding days are never selectable, the day must sit
// inside both the navigable and selectable bounds, and it must not be
// excluded by date or by weekday.
//
// The two navigable bounds are deliberately asymmetric: the lower
// bound cuts at its exact day, while the upper bound keeps the whole
// month containing MaxNavigableMonth eligible.
func IsSelectable(day Day, cfg Config) bool {
	if day.Relationship != InMonth {
		return false
	}
	if min := cfg.MinNavigable(); !min.IsZero() && day.Date.Before(DateOf(min)) {
		return false
	}
	if !cfg.MinSelectableDate.IsZero() && day.Date.Before(DateOf(cfg.MinSelectableDate)) {
		return false
	}
	if !cfg.MaxNavigableMonth.IsZero() {
		if !day.Date.Before(monthLater(DateOf(cfg.MaxNavigableMonth))) {
			return false
		}
	}
	if !cfg.MaxSelectableDate.IsZero() && day.Date.After(DateOf(cfg.MaxSelectableDate)) {
		return false
	}
	if cfg.DateDisabled(day.Date) {
		return false
	}
	if cfg.WeekdayDisabled(day.Weekday()) {
		return false
	}
	return true
}

// monthLater returns the same day of month one month after t, with the
// year rollover normalized explicitly.
func monthLater(t time.Time) time.Time {
	next := AddMonths(MonthOf(t), 1)
	return time.Date(next.Year(), next.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// InRange reports strict interior membership: date lies after start's
// date and before end's date. The endpoints themselves are "selected",
// not "in range"; callers styling a full range union the two. False
// whenever either endpoint is absent.
func InRange(date time.Time, start, end *Day) bool {
	if start == nil || end == nil {
		return false
	}
	d := DateOf(date)
	return d.After(DateOf(start.Date)) && d.Before(DateOf(end.Date))
}
