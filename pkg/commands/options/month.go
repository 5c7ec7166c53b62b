package options

import (
	"time"

	"github.com/spf13/cobra"
)

// MonthOptions captures the month flag shared by the pick and show
// commands.
type MonthOptions struct {
	MonthString string
}

func AddMonthArgs(cmd *cobra.Command, o *MonthOptions) {
	cmd.Flags().StringVar(&o.MonthString, "month", "",
		`Month to open on, example: --month="2026-04". Defaults to the current month.`)
}

// GetMonth parses the month flag; zero time when unset.
func (o *MonthOptions) GetMonth() (time.Time, error) {
	if o.MonthString == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse("2006-01", o.MonthString)
	if err != nil {
		t, err = time.Parse(layoutISO, o.MonthString)
		if err != nil {
			return time.Time{}, err
		}
	}
	return t, nil
}
