package history

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/monthpick/pkg/store"
)

// History lists or clears previously recorded picks.
type History struct {
	Persistence store.Persistence
	Clear       bool
	Output      *base.OutputOptions
}

func (n *History) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not list history, no persistence")
	}

	if n.Clear {
		return n.Persistence.Clear(ctx)
	}

	all := n.Persistence.List(ctx)

	if n.Output != nil && n.Output.JSON {
		b, err := json.Marshal(all)
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintln(color.Output, string(b))
		return nil
	}

	if len(all) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Println("no picks recorded")
		return nil
	}

	table := uitable.New()
	table.MaxColWidth = 50
	table.AddRow("WHEN", "KIND", "PICK")
	for _, p := range all {
		table.AddRow(p.PickedAt.Local().Format("2006-01-02 15:04"), string(p.Kind), p.Describe())
	}
	fmt.Println(table)
	return nil
}
