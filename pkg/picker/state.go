// Package picker holds the stateful core of the calendar: the
// displayed month, the current selection, and the three buffered week
// grids that make month paging instant. All transitions are
// synchronous and single-threaded; callers serialize dispatches.
package picker

import (
	"time"

	"tableflip.dev/monthpick/pkg/calendar"
)

// State is one immutable snapshot of the picker. Transitions never
// mutate a snapshot in place; they build the next one and replace the
// picker's current value, so a surface holding a snapshot across a
// transition sees stale but consistent data.
type State struct {
	// Month is the first day of the displayed month.
	Month time.Time

	// Selected is the single-selection value. It is always populated
	// once started and only meaningful when the config is not in
	// range mode.
	Selected time.Time

	// RangeStart and RangeEnd are the range endpoints. RangeEnd is
	// never set while RangeStart is nil.
	RangeStart *calendar.Day
	RangeEnd   *calendar.Day

	// Weeks is the grid for Month; PrevWeeks and NextWeeks are kept
	// in sync with Month-1 and Month+1 so a page gesture never waits
	// on generation.
	Weeks     calendar.Grid
	PrevWeeks calendar.Grid
	NextWeeks calendar.Grid

	// WeekdayLabels holds seven representative dates, one per
	// weekday, starting on the configured first day of week. They are
	// only used to derive weekday names and never change with
	// navigation.
	WeekdayLabels []time.Time
}

// Picker owns the selection state for one calendar instance and is its
// only mutator.
type Picker struct {
	cfg   calendar.Config
	state State
	ready bool

	now func() time.Time

	// OnSelect, when set, is called once per completed user-visible
	// selection: an accepted tap in single mode, or the tap that
	// completes a range. Intermediate range steps are observable via
	// State instead.
	OnSelect func(calendar.Day)
}

// New validates cfg and returns an unstarted picker. Inverted bounds
// fail fast here rather than producing a calendar with every day
// silently disabled.
func New(cfg calendar.Config) (*Picker, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Picker{cfg: cfg, now: time.Now}, nil
}

// Config returns the rule set the picker was built with.
func (p *Picker) Config() calendar.Config {
	return p.cfg
}

// Ready reports whether Start has been dispatched.
func (p *Picker) Ready() bool {
	return p.ready
}

// State returns the current snapshot.
func (p *Picker) State() State {
	return p.state
}

// SetClock overrides the time source used by Start for the default
// month and initial selection. Tests use this; production code leaves
// it alone.
func (p *Picker) SetClock(now func() time.Time) {
	p.now = now
}

// Dispatch applies one event and returns the resulting snapshot.
// Every transition is total: out-of-bounds navigation and taps on
// non-selectable days are absorbed as no-ops, never errors. Callers
// needing feedback compare the month or selection before and after.
func (p *Picker) Dispatch(ev Event) State {
	switch ev := ev.(type) {
	case Start:
		if p.ready {
			return p.state
		}
		p.state = p.start(ev.Month)
		p.ready = true
	case NavigatePrevious:
		if p.ready {
			p.state = p.navigate(p.state, -1)
		}
	case NavigateNext:
		if p.ready {
			p.state = p.navigate(p.state, +1)
		}
	case JumpToMonth:
		if p.ready {
			p.state = p.display(p.state, calendar.MonthOf(ev.Month))
		}
	case SelectDate:
		if !p.ready {
			break
		}
		next, completed := selectDate(p.cfg, p.state, ev.Day)
		p.state = next
		if completed != nil && p.OnSelect != nil {
			p.OnSelect(*completed)
		}
	}
	return p.state
}

func (p *Picker) start(month time.Time) State {
	now := calendar.DateOf(p.now())
	if month.IsZero() {
		month = now
	}
	s := State{
		Selected:      now,
		WeekdayLabels: weekdayLabels(p.cfg.FirstDayOfWeek),
	}
	return p.display(s, calendar.MonthOf(month))
}

// navigate steps the displayed month by dir, refusing to move past the
// navigable bounds. The stop is inclusive: when the bound's month is
// displayed, navigating further away is a no-op.
func (p *Picker) navigate(s State, dir int) State {
	if dir < 0 {
		if min := p.cfg.MinNavigable(); !min.IsZero() && !s.Month.After(calendar.MonthOf(min)) {
			return s
		}
	} else {
		if max := p.cfg.MaxNavigableMonth; !max.IsZero() && !s.Month.Before(calendar.MonthOf(max)) {
			return s
		}
	}
	return p.display(s, calendar.AddMonths(s.Month, dir))
}

// display sets the month and regenerates all three grids from scratch.
// No incremental patching: a few hundred date computations per
// transition keeps every buffer trivially consistent.
func (p *Picker) display(s State, month time.Time) State {
	s.Month = month
	s.Weeks = calendar.Generate(month.Year(), month.Month(), p.cfg)
	prev := calendar.AddMonths(month, -1)
	s.PrevWeeks = calendar.Generate(prev.Year(), prev.Month(), p.cfg)
	next := calendar.AddMonths(month, 1)
	s.NextWeeks = calendar.Generate(next.Year(), next.Month(), p.cfg)
	return s
}

// selectDate applies a tap to the snapshot and reports the completed
// selection, if any. Taps on non-selectable days are dropped in both
// modes; range mode does not trust the surface to have filtered them.
func selectDate(cfg calendar.Config, s State, day calendar.Day) (State, *calendar.Day) {
	if !calendar.IsSelectable(day, cfg) {
		return s, nil
	}
	if !cfg.RangeMode {
		s.Selected = calendar.DateOf(day.Date)
		return s, &day
	}

	switch {
	case s.RangeStart == nil:
		d := day
		s.RangeStart, s.RangeEnd = &d, nil
		return s, nil
	case s.RangeEnd == nil && day.Date.Before(s.RangeStart.Date):
		// Second tap landed before the start: swap so the range
		// still reads forward.
		d, prev := day, *s.RangeStart
		s.RangeStart, s.RangeEnd = &d, &prev
		return s, &d
	case s.RangeEnd == nil && day.Date.After(s.RangeStart.Date):
		d := day
		s.RangeEnd = &d
		return s, &d
	default:
		// Range already complete, or the start was tapped again:
		// begin a new range.
		d := day
		s.RangeStart, s.RangeEnd = &d, nil
		return s, nil
	}
}

// weekdayLabels returns seven consecutive dates beginning on first,
// taken from a fixed reference week so the labels are stable across
// navigation.
func weekdayLabels(first time.Weekday) []time.Time {
	// 2024-01-07 is a Sunday.
	base := time.Date(2024, time.January, 7, 0, 0, 0, 0, time.UTC)
	start := base.AddDate(0, 0, (int(first)-int(time.Sunday)+7)%7)
	labels := make([]time.Time, 7)
	for i := range labels {
		labels[i] = start.AddDate(0, 0, i)
	}
	return labels
}
