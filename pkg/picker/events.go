package picker

import (
	"time"

	"tableflip.dev/monthpick/pkg/calendar"
)

// Event is the closed set of intents the picker accepts. Dispatch
// switches exhaustively over these types; adding a variant without a
// transition is a bug caught in review, not at runtime.
type Event interface {
	isEvent()
}

// Start brings the picker from uninitialized to ready. Month selects
// the initially displayed month; zero means the current month. Start
// fires exactly once, later Starts are ignored.
type Start struct {
	Month time.Time
}

// NavigatePrevious moves the displayed month back by one, unless the
// configured minimum navigable month is already displayed.
type NavigatePrevious struct{}

// NavigateNext moves the displayed month forward by one, unless the
// configured maximum navigable month is already displayed.
type NavigateNext struct{}

// JumpToMonth displays the month containing Month unconditionally.
// Navigable bounds are not re-checked here: the surface offering the
// jump is expected to only offer months inside them.
type JumpToMonth struct {
	Month time.Time
}

// SelectDate records a tap on a day cell. In single mode it replaces
// the selected date; in range mode it drives the two-tap range
// sub-machine.
type SelectDate struct {
	Day calendar.Day
}

func (Start) isEvent()            {}
func (NavigatePrevious) isEvent() {}
func (NavigateNext) isEvent()     {}
func (JumpToMonth) isEvent()      {}
func (SelectDate) isEvent()       {}
