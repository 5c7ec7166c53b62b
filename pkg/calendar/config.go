package calendar

import (
	"fmt"
	"time"
)

// Config is the immutable rule set a calendar instance is built from:
// navigation bounds, selection bounds, disabled dates and weekdays,
// week alignment, and mode flags. Zero time.Time fields mean "unset".
//
// The display flags are passed through to the presentation layer
// untouched; the engine itself only reads the bounds, the disabled
// sets, FirstDayOfWeek and RangeMode.
type Config struct {
	// MinNavigableMonth and MaxNavigableMonth bound which months the
	// user may navigate to. MinNavigableMonth falls back to the month
	// of MinSelectableDate when unset.
	MinNavigableMonth time.Time
	MaxNavigableMonth time.Time

	// MinSelectableDate and MaxSelectableDate bound individual dates,
	// at a finer grain than the navigable months.
	MinSelectableDate time.Time
	MaxSelectableDate time.Time

	// DisabledDates lists specific dates that can never be selected.
	// DisabledWeekdays disables every occurrence of a weekday.
	DisabledDates    []time.Time
	DisabledWeekdays []time.Weekday

	// FirstDayOfWeek anchors every generated week. The zero value is
	// time.Sunday; DefaultConfig returns Monday.
	FirstDayOfWeek time.Weekday

	// Display flags, passthrough only.
	ShowAdjacentDays  bool
	ShowHeader        bool
	ShowWeekdayLabels bool

	// EnableSwipe tells the presentation layer whether month-paging
	// gestures are live. The engine keeps its navigation buffers
	// either way.
	EnableSwipe bool

	// RangeMode switches selection from single-date to two-tap range
	// selection.
	RangeMode bool
}

// DefaultConfig returns a Config with the stock behavior: weeks start
// on Monday, all display flags on, swipe enabled, single-date mode.
func DefaultConfig() Config {
	return Config{
		FirstDayOfWeek:    time.Monday,
		ShowAdjacentDays:  true,
		ShowHeader:        true,
		ShowWeekdayLabels: true,
		EnableSwipe:       true,
	}
}

// Validate rejects configurations whose bounds are inverted. A config
// that passes can still disable every day (for example a selectable
// window covering only disabled weekdays); that degrades to a calendar
// with nothing to pick, not an error.
func (c Config) Validate() error {
	if !c.MinNavigableMonth.IsZero() && !c.MaxNavigableMonth.IsZero() {
		if MonthOf(c.MinNavigableMonth).After(MonthOf(c.MaxNavigableMonth)) {
			return fmt.Errorf("min navigable month %s is after max navigable month %s",
				c.MinNavigableMonth.Format("2006-01"), c.MaxNavigableMonth.Format("2006-01"))
		}
	}
	if !c.MinSelectableDate.IsZero() && !c.MaxSelectableDate.IsZero() {
		if DateOf(c.MinSelectableDate).After(DateOf(c.MaxSelectableDate)) {
			return fmt.Errorf("min selectable date %s is after max selectable date %s",
				c.MinSelectableDate.Format("2006-01-02"), c.MaxSelectableDate.Format("2006-01-02"))
		}
	}
	if c.FirstDayOfWeek < time.Sunday || c.FirstDayOfWeek > time.Saturday {
		return fmt.Errorf("invalid first day of week %d", c.FirstDayOfWeek)
	}
	return nil
}

// MinNavigable resolves the effective lower navigation bound:
// MinNavigableMonth when set, otherwise MinSelectableDate. Zero when
// neither is set.
func (c Config) MinNavigable() time.Time {
	if !c.MinNavigableMonth.IsZero() {
		return c.MinNavigableMonth
	}
	return c.MinSelectableDate
}

// DateDisabled reports whether date matches one of the disabled dates,
// compared by calendar date only.
func (c Config) DateDisabled(date time.Time) bool {
	for _, d := range c.DisabledDates {
		if SameDate(d, date) {
			return true
		}
	}
	return false
}

// WeekdayDisabled reports whether wd is one of the disabled weekdays.
func (c Config) WeekdayDisabled(wd time.Weekday) bool {
	for _, d := range c.DisabledWeekdays {
		if d == wd {
			return true
		}
	}
	return false
}
