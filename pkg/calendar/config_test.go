package calendar

import (
	"testing"
	"time"
)

func TestValidateInvertedNavigableBounds(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MinNavigableMonth = date("2025-12-01")
	cfg.MaxNavigableMonth = date("2025-11-01")
	if err := cfg.Validate(); err == nil {
		t.Fatal("inverted navigable bounds accepted")
	}

	// Same month at different days is fine, bounds are month-granular.
	cfg.MinNavigableMonth = date("2025-11-20")
	cfg.MaxNavigableMonth = date("2025-11-05")
	if err := cfg.Validate(); err != nil {
		t.Fatalf("same-month bounds rejected: %v", err)
	}
}

func TestValidateInvertedSelectableBounds(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MinSelectableDate = date("2025-06-11")
	cfg.MaxSelectableDate = date("2025-06-10")
	if err := cfg.Validate(); err == nil {
		t.Fatal("inverted selectable bounds accepted")
	}

	cfg.MaxSelectableDate = date("2025-06-11")
	if err := cfg.Validate(); err != nil {
		t.Fatalf("equal bounds rejected: %v", err)
	}
}

func TestValidateWeekday(t *testing.T) {
	cfg := DefaultConfig()
	cfg.FirstDayOfWeek = time.Weekday(9)
	if err := cfg.Validate(); err == nil {
		t.Fatal("out-of-range weekday accepted")
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.FirstDayOfWeek != time.Monday {
		t.Fatalf("default first day of week is %s", cfg.FirstDayOfWeek)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if cfg.RangeMode {
		t.Fatal("default config should be single-date mode")
	}
}
