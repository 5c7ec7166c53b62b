// Package config loads a calendar.Config from a .monthpick config
// file and the MONTHPICK_* environment.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"

	"tableflip.dev/monthpick/pkg/calendar"
)

const dateLayout = "2006-01-02"

// Raw carries the string-typed settings exactly as they appear in the
// config file, before any parsing.
type Raw struct {
	FirstDayOfWeek    string
	DisabledWeekdays  []string
	DisabledDates     []string
	MinNavigableMonth string
	MaxNavigableMonth string
	MinSelectableDate string
	MaxSelectableDate string
	ShowAdjacentDays  bool
	ShowHeader        bool
	ShowWeekdayLabels bool
	EnableSwipe       bool
	RangeMode         bool
}

// Load reads .monthpick(.yaml) from $MONTHPICK_CONFIG_PATH, the
// working directory, or the home directory, applies MONTHPICK_*
// overrides, and parses the result.
func Load() (calendar.Config, error) {
	viper.SetConfigName(".monthpick") // .yaml is implicit
	viper.SetEnvPrefix("MONTHPICK")
	viper.AutomaticEnv()

	viper.SetDefault("first_day_of_week", "monday")
	viper.SetDefault("show_adjacent_days", true)
	viper.SetDefault("show_header", true)
	viper.SetDefault("show_weekday_labels", true)
	viper.SetDefault("enable_swipe", true)

	if override := os.Getenv("MONTHPICK_CONFIG_PATH"); override != "" {
		viper.AddConfigPath(override)
	}
	viper.AddConfigPath("./")
	if home, err := homedir.Dir(); err == nil {
		viper.AddConfigPath(home)
	}

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return calendar.Config{}, fmt.Errorf("reading config file: %w", err)
		}
	}

	raw := Raw{
		FirstDayOfWeek:    viper.GetString("first_day_of_week"),
		DisabledWeekdays:  viper.GetStringSlice("disabled_weekdays"),
		DisabledDates:     viper.GetStringSlice("disabled_dates"),
		MinNavigableMonth: viper.GetString("min_navigable_month"),
		MaxNavigableMonth: viper.GetString("max_navigable_month"),
		MinSelectableDate: viper.GetString("min_selectable_date"),
		MaxSelectableDate: viper.GetString("max_selectable_date"),
		ShowAdjacentDays:  viper.GetBool("show_adjacent_days"),
		ShowHeader:        viper.GetBool("show_header"),
		ShowWeekdayLabels: viper.GetBool("show_weekday_labels"),
		EnableSwipe:       viper.GetBool("enable_swipe"),
		RangeMode:         viper.GetBool("range_mode"),
	}
	return Parse(raw)
}

// Parse converts raw settings into a validated calendar.Config.
func Parse(raw Raw) (calendar.Config, error) {
	cfg := calendar.DefaultConfig()
	cfg.ShowAdjacentDays = raw.ShowAdjacentDays
	cfg.ShowHeader = raw.ShowHeader
	cfg.ShowWeekdayLabels = raw.ShowWeekdayLabels
	cfg.EnableSwipe = raw.EnableSwipe
	cfg.RangeMode = raw.RangeMode

	if raw.FirstDayOfWeek != "" {
		wd, err := ParseWeekday(raw.FirstDayOfWeek)
		if err != nil {
			return calendar.Config{}, err
		}
		cfg.FirstDayOfWeek = wd
	}

	for _, name := range raw.DisabledWeekdays {
		wd, err := ParseWeekday(name)
		if err != nil {
			return calendar.Config{}, err
		}
		cfg.DisabledWeekdays = append(cfg.DisabledWeekdays, wd)
	}

	for _, s := range raw.DisabledDates {
		d, err := parseDate("disabled_dates", s)
		if err != nil {
			return calendar.Config{}, err
		}
		cfg.DisabledDates = append(cfg.DisabledDates, d)
	}

	var err error
	if cfg.MinNavigableMonth, err = parseOptionalDate("min_navigable_month", raw.MinNavigableMonth); err != nil {
		return calendar.Config{}, err
	}
	if cfg.MaxNavigableMonth, err = parseOptionalDate("max_navigable_month", raw.MaxNavigableMonth); err != nil {
		return calendar.Config{}, err
	}
	if cfg.MinSelectableDate, err = parseOptionalDate("min_selectable_date", raw.MinSelectableDate); err != nil {
		return calendar.Config{}, err
	}
	if cfg.MaxSelectableDate, err = parseOptionalDate("max_selectable_date", raw.MaxSelectableDate); err != nil {
		return calendar.Config{}, err
	}

	if err := cfg.Validate(); err != nil {
		return calendar.Config{}, err
	}
	return cfg, nil
}

// ParseWeekday maps a weekday name or three-letter abbreviation,
// case-insensitive, onto time.Weekday.
func ParseWeekday(name string) (time.Weekday, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		full := strings.ToLower(wd.String())
		if n == full || n == full[:3] {
			return wd, nil
		}
	}
	return time.Sunday, fmt.Errorf("unknown weekday %q", name)
}

func parseDate(key, s string) (time.Time, error) {
	d, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%s: %q is not a %s date", key, s, dateLayout)
	}
	return d, nil
}

func parseOptionalDate(key, s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	return parseDate(key, s)
}
