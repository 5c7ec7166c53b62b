package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/monthpick/pkg/commands/options"
	"tableflip.dev/monthpick/pkg/config"
	"tableflip.dev/monthpick/pkg/runner/pick"
	"tableflip.dev/monthpick/pkg/store"
)

func addPick(topLevel *cobra.Command) {
	co := &options.CalendarOptions{}
	mo := &options.MonthOptions{}

	cmd := &cobra.Command{
		Use:   "pick",
		Short: base.Wrap80("Open the interactive calendar and pick a date or range."),
		Example: `
monthpick pick
monthpick pick --month=2026-04 --disable-weekday=sat,sun
monthpick pick --range --min=2026-04-01 --max=2026-06-30
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return oo.HandleError(err)
			}
			if cfg, err = co.Apply(cfg); err != nil {
				return oo.HandleError(err)
			}
			month, err := mo.GetMonth()
			if err != nil {
				return oo.HandleError(err)
			}

			// History is best effort; picking works without it.
			persistence, err := store.Load(nil)
			if err != nil {
				fmt.Fprintf(os.Stderr, "pick history disabled: %s\n", err)
			}

			r := &pick.Pick{
				Config:      cfg,
				Month:       month,
				Persistence: persistence,
				Output:      oo,
			}
			return oo.HandleError(r.Do(cmd.Context()))
		},
	}

	options.AddCalendarArgs(cmd, co)
	options.AddMonthArgs(cmd, mo)
	base.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
