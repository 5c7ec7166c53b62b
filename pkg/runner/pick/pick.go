package pick

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/fatih/color"
	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/monthpick/pkg/calendar"
	"tableflip.dev/monthpick/pkg/picker"
	"tableflip.dev/monthpick/pkg/store"
	"tableflip.dev/monthpick/pkg/tui/components/monthview"
)

// Pick runs the interactive picker and reports the chosen date or
// range.
type Pick struct {
	Config      calendar.Config
	Month       time.Time
	Persistence store.Persistence
	Output      *base.OutputOptions
}

const layoutISO = "2006-01-02"

func (n *Pick) Do(ctx context.Context) error {
	p, err := picker.New(n.Config)
	if err != nil {
		return err
	}
	if !n.Month.IsZero() {
		p.Dispatch(picker.Start{Month: n.Month})
	}

	model := monthview.New(p)
	prog := tea.NewProgram(&program{Model: model}, tea.WithContext(ctx), tea.WithAltScreen())
	final, err := prog.Run()
	if err != nil {
		return err
	}

	fp, ok := final.(*program)
	if !ok || fp.picked == nil {
		return nil // quit without picking; not an error
	}
	if err := n.record(*fp.picked); err != nil {
		return err
	}
	return n.report(*fp.picked)
}

func (n *Pick) record(msg monthview.PickedMsg) error {
	if n.Persistence == nil {
		return nil
	}
	now := time.Now()
	if msg.Range {
		return n.Persistence.Record(store.NewRangePick(msg.RangeStart, msg.RangeEnd, now))
	}
	return n.Persistence.Record(store.NewDatePick(msg.Date, now))
}

func (n *Pick) report(msg monthview.PickedMsg) error {
	if n.Output != nil && n.Output.JSON {
		out := map[string]string{}
		if msg.Range {
			out["start"] = msg.RangeStart.Format(layoutISO)
			out["end"] = msg.RangeEnd.Format(layoutISO)
		} else {
			out["date"] = msg.Date.Format(layoutISO)
		}
		b, err := json.Marshal(out)
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintln(color.Output, string(b))
		return nil
	}

	b := color.New(color.Bold)
	if msg.Range {
		_, _ = b.Printf("%s .. %s\n", msg.RangeStart.Format(layoutISO), msg.RangeEnd.Format(layoutISO))
		return nil
	}
	_, _ = b.Printf("%s\n", msg.Date.Format(layoutISO))
	return nil
}

// program wraps the month view so the pick survives tea.Quit.
type program struct {
	*monthview.Model
	picked *monthview.PickedMsg
}

func (p *program) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if picked, ok := msg.(monthview.PickedMsg); ok {
		p.picked = &picked
		return p, tea.Quit
	}
	_, cmd := p.Model.Update(msg)
	return p, cmd
}
