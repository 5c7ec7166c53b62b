package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/monthpick/pkg/commands/options"
	"tableflip.dev/monthpick/pkg/config"
	"tableflip.dev/monthpick/pkg/runner/show"
)

func addShow(topLevel *cobra.Command) {
	co := &options.CalendarOptions{}
	mo := &options.MonthOptions{}
	months := 1

	cmd := &cobra.Command{
		Use:   "show",
		Short: base.Wrap80("Print the calendar grid for one or more months."),
		Example: `
monthpick show
monthpick show --month=2026-04 --months=3
monthpick show --first-day=sunday --disable-weekday=sat,sun
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if cfg, err = co.Apply(cfg); err != nil {
				return err
			}
			month, err := mo.GetMonth()
			if err != nil {
				return err
			}

			r := &show.Show{
				Config: cfg,
				Month:  month,
				Months: months,
			}
			return r.Do(cmd.Context())
		},
	}

	options.AddCalendarArgs(cmd, co)
	options.AddMonthArgs(cmd, mo)
	cmd.Flags().IntVar(&months, "months", 1, "How many consecutive months to print.")

	topLevel.AddCommand(cmd)
}
