package show

import (
	"context"
	"fmt"
	"time"

	"tableflip.dev/monthpick/pkg/calendar"
	"tableflip.dev/monthpick/pkg/picker"
	"tableflip.dev/monthpick/pkg/printers"
)

// Show prints the week grids for one or more months without entering
// the interactive picker.
type Show struct {
	Config calendar.Config
	Month  time.Time
	Months int
}

func (n *Show) Do(ctx context.Context) error {
	if n.Months < 1 {
		n.Months = 1
	}

	p, err := picker.New(n.Config)
	if err != nil {
		return err
	}
	s := p.Dispatch(picker.Start{Month: n.Month})

	pp := printers.PrettyPrint{}
	fmt.Println("")
	for i := 0; i < n.Months; i++ {
		pp.Month(s.Weeks, n.Config, s.Selected, s.RangeStart, s.RangeEnd)
		if i+1 < n.Months {
			before := s.Month
			s = p.Dispatch(picker.NavigateNext{})
			if s.Month.Equal(before) {
				break // hit the navigable bound
			}
		}
	}
	return nil
}
