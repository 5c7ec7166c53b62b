// Package options defines shared flag helpers for CLI commands.
package options

import (
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/monthpick/pkg/calendar"
	"tableflip.dev/monthpick/pkg/config"
)

const layoutISO = "2006-01-02"

// CalendarOptions captures the calendar rule flags shared by the pick
// and show commands. Flags left empty keep whatever the config file
// provided.
type CalendarOptions struct {
	FirstDay         string
	DisabledWeekdays []string
	DisabledDates    []string
	MinDate          string
	MaxDate          string
	MinMonth         string
	MaxMonth         string

	Range        bool
	NoSwipe      bool
	HideAdjacent bool
	HideHeader   bool
	HideLabels   bool
}

func AddCalendarArgs(cmd *cobra.Command, o *CalendarOptions) {
	cmd.Flags().StringVar(&o.FirstDay, "first-day", "",
		`First day of the week, example: --first-day=sunday.`)
	cmd.Flags().StringSliceVar(&o.DisabledWeekdays, "disable-weekday", nil,
		`Weekdays that can never be picked, example: --disable-weekday=sat,sun.`)
	cmd.Flags().StringSliceVar(&o.DisabledDates, "disable-date", nil,
		`Dates that can never be picked, example: --disable-date=2026-04-10.`)
	cmd.Flags().StringVar(&o.MinDate, "min", "",
		`Earliest pickable date, example: --min="2026-04-01".`)
	cmd.Flags().StringVar(&o.MaxDate, "max", "",
		`Latest pickable date, example: --max="2026-06-30".`)
	cmd.Flags().StringVar(&o.MinMonth, "min-month", "",
		`Earliest month the calendar navigates to.`)
	cmd.Flags().StringVar(&o.MaxMonth, "max-month", "",
		`Latest month the calendar navigates to.`)
	cmd.Flags().BoolVar(&o.Range, "range", false,
		"Pick a date range instead of a single date.")
	cmd.Flags().BoolVar(&o.NoSwipe, "no-swipe", false,
		"Disable month paging keys.")
	cmd.Flags().BoolVar(&o.HideAdjacent, "hide-adjacent", false,
		"Hide the padding days from adjacent months.")
	cmd.Flags().BoolVar(&o.HideHeader, "hide-header", false,
		"Hide the month title.")
	cmd.Flags().BoolVar(&o.HideLabels, "hide-labels", false,
		"Hide the weekday labels.")
}

// Apply layers the flags over cfg and revalidates the result.
func (o *CalendarOptions) Apply(cfg calendar.Config) (calendar.Config, error) {
	if o.FirstDay != "" {
		wd, err := config.ParseWeekday(o.FirstDay)
		if err != nil {
			return cfg, err
		}
		cfg.FirstDayOfWeek = wd
	}
	for _, name := range o.DisabledWeekdays {
		wd, err := config.ParseWeekday(name)
		if err != nil {
			return cfg, err
		}
		cfg.DisabledWeekdays = append(cfg.DisabledWeekdays, wd)
	}
	for _, s := range o.DisabledDates {
		d, err := time.Parse(layoutISO, s)
		if err != nil {
			return cfg, err
		}
		cfg.DisabledDates = append(cfg.DisabledDates, d)
	}

	var err error
	if cfg.MinSelectableDate, err = overrideDate(o.MinDate, cfg.MinSelectableDate); err != nil {
		return cfg, err
	}
	if cfg.MaxSelectableDate, err = overrideDate(o.MaxDate, cfg.MaxSelectableDate); err != nil {
		return cfg, err
	}
	if cfg.MinNavigableMonth, err = overrideDate(o.MinMonth, cfg.MinNavigableMonth); err != nil {
		return cfg, err
	}
	if cfg.MaxNavigableMonth, err = overrideDate(o.MaxMonth, cfg.MaxNavigableMonth); err != nil {
		return cfg, err
	}

	if o.Range {
		cfg.RangeMode = true
	}
	if o.NoSwipe {
		cfg.EnableSwipe = false
	}
	if o.HideAdjacent {
		cfg.ShowAdjacentDays = false
	}
	if o.HideHeader {
		cfg.ShowHeader = false
	}
	if o.HideLabels {
		cfg.ShowWeekdayLabels = false
	}

	return cfg, cfg.Validate()
}

func overrideDate(flag string, current time.Time) (time.Time, error) {
	if flag == "" {
		return current, nil
	}
	d, err := time.Parse(layoutISO, flag)
	if err != nil {
		// Month flags may omit the day.
		if m, err2 := time.Parse("2006-01", flag); err2 == nil {
			return m, nil
		}
		return current, err
	}
	return d, nil
}
