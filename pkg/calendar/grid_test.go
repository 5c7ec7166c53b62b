package calendar

import (
	"testing"
	"time"
)

func TestGenerateCoversMonth(t *testing.T) {
	cases := []struct {
		year  int
		month time.Month
		first time.Weekday
	}{
		{2024, time.February, time.Monday}, // leap February
		{2025, time.February, time.Saturday},
		{2025, time.December, time.Monday},
		{2026, time.January, time.Sunday},
		{2026, time.April, time.Wednesday},
		{2021, time.February, time.Monday}, // Feb 2021 starts on Monday, 28 days, zero padding
	}

	for _, tc := range cases {
		cfg := DefaultConfig()
		cfg.FirstDayOfWeek = tc.first
		g := Generate(tc.year, tc.month, cfg)

		days := g.Days()
		if len(days)%7 != 0 {
			t.Fatalf("%d-%02d: day count %d not a multiple of 7", tc.year, tc.month, len(days))
		}
		if weeks := len(g.Weeks); weeks < 4 || weeks > 6 {
			t.Fatalf("%d-%02d: got %d weeks", tc.year, tc.month, weeks)
		}

		for i := 1; i < len(days); i++ {
			want := days[i-1].Date.AddDate(0, 0, 1)
			if !days[i].Date.Equal(want) {
				t.Fatalf("%d-%02d: gap at index %d: %s then %s",
					tc.year, tc.month, i, days[i-1].Date, days[i].Date)
			}
		}

		inMonth := 0
		for _, d := range days {
			if d.Relationship == InMonth {
				inMonth++
				if d.Date.Year() != tc.year || d.Date.Month() != tc.month {
					t.Fatalf("%d-%02d: %s tagged in-month", tc.year, tc.month, d.Date)
				}
			}
		}
		first := time.Date(tc.year, tc.month, 1, 0, 0, 0, 0, time.UTC)
		if want := DaysIn(first); inMonth != want {
			t.Fatalf("%d-%02d: %d in-month days, want %d", tc.year, tc.month, inMonth, want)
		}
	}
}

func TestGenerateWeeksStartOnAnchor(t *testing.T) {
	for first := time.Sunday; first <= time.Saturday; first++ {
		cfg := DefaultConfig()
		cfg.FirstDayOfWeek = first
		g := Generate(2025, time.July, cfg)
		for i, w := range g.Weeks {
			if len(w) != 7 {
				t.Fatalf("first=%s week %d has %d days", first, i, len(w))
			}
			if w[0].Weekday() != first {
				t.Fatalf("first=%s week %d starts on %s", first, i, w[0].Weekday())
			}
		}
	}
}

func TestGenerateZeroPadding(t *testing.T) {
	// February 2021: starts Monday, 28 days, so a Monday-anchored grid
	// needs no padding at all.
	cfg := DefaultConfig()
	g := Generate(2021, time.February, cfg)
	if len(g.Weeks) != 4 {
		t.Fatalf("got %d weeks, want 4", len(g.Weeks))
	}
	for _, d := range g.Days() {
		if d.Relationship != InMonth {
			t.Fatalf("unexpected padding day %s", d.Date)
		}
	}
}

func TestGenerateIdempotent(t *testing.T) {
	cfg := DefaultConfig()
	a := Generate(2026, time.April, cfg)
	b := Generate(2026, time.April, cfg)
	if len(a.Weeks) != len(b.Weeks) {
		t.Fatalf("week counts differ: %d vs %d", len(a.Weeks), len(b.Weeks))
	}
	ad, bd := a.Days(), b.Days()
	for i := range ad {
		if !ad[i].Equal(bd[i]) {
			t.Fatalf("day %d differs: %+v vs %+v", i, ad[i], bd[i])
		}
	}
}

func TestGenerateNormalizesMonthOverflow(t *testing.T) {
	cfg := DefaultConfig()
	overflow := Generate(2025, time.Month(13), cfg)
	jan := Generate(2026, time.January, cfg)
	if overflow.Year != 2026 || overflow.Month != time.January {
		t.Fatalf("month 13 of 2025 generated %d-%02d", overflow.Year, overflow.Month)
	}
	if !overflow.First().Equal(jan.First()) || !overflow.Last().Equal(jan.Last()) {
		t.Fatalf("overflow grid differs from January 2026")
	}

	underflow := Generate(2025, time.Month(0), cfg)
	if underflow.Year != 2024 || underflow.Month != time.December {
		t.Fatalf("month 0 of 2025 generated %d-%02d", underflow.Year, underflow.Month)
	}
}

func TestGenerateApril2026SundayWeeks(t *testing.T) {
	cfg := DefaultConfig()
	cfg.FirstDayOfWeek = time.Sunday
	cfg.DisabledWeekdays = []time.Weekday{time.Saturday, time.Sunday}

	g := Generate(2026, time.April, cfg)
	if len(g.Weeks) != 5 {
		t.Fatalf("got %d weeks, want 5", len(g.Weeks))
	}
	wantFirst := time.Date(2026, time.March, 29, 0, 0, 0, 0, time.UTC)
	if !g.First().Date.Equal(wantFirst) {
		t.Fatalf("grid starts %s, want %s", g.First().Date, wantFirst)
	}
	if g.First().Weekday() != time.Sunday {
		t.Fatalf("grid starts on %s", g.First().Weekday())
	}

	for _, d := range g.Days() {
		weekend := d.Weekday() == time.Saturday || d.Weekday() == time.Sunday
		if weekend && IsSelectable(d, cfg) {
			t.Fatalf("%s (%s) should not be selectable", d.Date, d.Weekday())
		}
		if d.Date.Month() == time.April && d.Relationship != InMonth {
			t.Fatalf("April day %s not tagged in-month", d.Date)
		}
		if !weekend && d.Relationship == InMonth && !IsSelectable(d, cfg) {
			t.Fatalf("%s should be selectable", d.Date)
		}
	}
}

func TestAddMonths(t *testing.T) {
	cases := []struct {
		start string
		n     int
		want  string
	}{
		{"2025-06", 1, "2025-07"},
		{"2025-12", 1, "2026-01"},
		{"2025-01", -1, "2024-12"},
		{"2025-01", -13, "2023-12"},
		{"2025-01", 12, "2026-01"},
		{"2025-03", 0, "2025-03"},
	}
	for _, tc := range cases {
		start, err := time.Parse("2006-01", tc.start)
		if err != nil {
			t.Fatal(err)
		}
		got := AddMonths(start, tc.n)
		if got.Format("2006-01") != tc.want || got.Day() != 1 {
			t.Fatalf("AddMonths(%s, %d) = %s, want %s-01", tc.start, tc.n, got.Format("2006-01-02"), tc.want)
		}
	}
}
