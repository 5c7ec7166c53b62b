package config

import (
	"testing"
	"time"
)

func TestParseWeekday(t *testing.T) {
	cases := []struct {
		in   string
		want time.Weekday
		ok   bool
	}{
		{"monday", time.Monday, true},
		{"Monday", time.Monday, true},
		{"mon", time.Monday, true},
		{" sun ", time.Sunday, true},
		{"SATURDAY", time.Saturday, true},
		{"noday", time.Sunday, false},
		{"", time.Sunday, false},
	}
	for _, tc := range cases {
		got, err := ParseWeekday(tc.in)
		if tc.ok != (err == nil) {
			t.Fatalf("ParseWeekday(%q) err = %v", tc.in, err)
		}
		if err == nil && got != tc.want {
			t.Fatalf("ParseWeekday(%q) = %s, want %s", tc.in, got, tc.want)
		}
	}
}

func TestParseFull(t *testing.T) {
	raw := Raw{
		FirstDayOfWeek:    "sunday",
		DisabledWeekdays:  []string{"sat", "sun"},
		DisabledDates:     []string{"2026-04-10"},
		MinSelectableDate: "2026-04-01",
		MaxNavigableMonth: "2026-06-15",
		ShowHeader:        true,
		EnableSwipe:       true,
		RangeMode:         true,
	}
	cfg, err := Parse(raw)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.FirstDayOfWeek != time.Sunday {
		t.Fatalf("first day = %s", cfg.FirstDayOfWeek)
	}
	if len(cfg.DisabledWeekdays) != 2 || cfg.DisabledWeekdays[0] != time.Saturday {
		t.Fatalf("disabled weekdays = %v", cfg.DisabledWeekdays)
	}
	if len(cfg.DisabledDates) != 1 || cfg.DisabledDates[0].Day() != 10 {
		t.Fatalf("disabled dates = %v", cfg.DisabledDates)
	}
	if !cfg.RangeMode || !cfg.EnableSwipe {
		t.Fatal("mode flags dropped")
	}
	if cfg.MaxNavigableMonth.Month() != time.June {
		t.Fatalf("max navigable month = %s", cfg.MaxNavigableMonth)
	}
}

func TestParseRejectsBadInput(t *testing.T) {
	if _, err := Parse(Raw{FirstDayOfWeek: "someday"}); err == nil {
		t.Fatal("bad weekday accepted")
	}
	if _, err := Parse(Raw{DisabledDates: []string{"April 10"}}); err == nil {
		t.Fatal("bad date accepted")
	}
	if _, err := Parse(Raw{MinSelectableDate: "2026-06-01", MaxSelectableDate: "2026-05-01"}); err == nil {
		t.Fatal("inverted bounds accepted")
	}
}

func TestParseEmptyRawKeepsDefaults(t *testing.T) {
	cfg, err := Parse(Raw{})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.FirstDayOfWeek != time.Monday {
		t.Fatalf("first day = %s", cfg.FirstDayOfWeek)
	}
	if !cfg.MinNavigableMonth.IsZero() || !cfg.MaxSelectableDate.IsZero() {
		t.Fatal("unset bounds should stay zero")
	}
}
