// File: derive_test.go
// Title: Derived Value Tests
// Description: Tests for day comparisons, day differences, shifting,
//              display helpers and the pure lookup functions.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-25 v0.1.0: Initial test implementation with comprehensive coverage
// - 2026-10-18 v0.2.0: Fake clock for all "now" dependent checks

package timex

import (
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
)

func TestNumberOfDays(t *testing.T) {
	tests := []struct {
		month, year int
		want        int
	}{
		{2, 2000, 29},
		{2, 1900, 28},
		{2, 2012, 29},
		{2, 2021, 28},
		{4, 2021, 30},
		{1, 2021, 31},
		{6, 2021, 30},
		{9, 2021, 30},
		{11, 2021, 30},
		{12, 2021, 31},
		{0, 2021, 0},
		{13, 2021, 0},
	}

	for _, tt := range tests {
		if got := NumberOfDays(tt.month, tt.year); got != tt.want {
			t.Errorf("NumberOfDays(%d, %d) = %d, want %d", tt.month, tt.year, got, tt.want)
		}
	}
}

func TestDateWithOrdinal(t *testing.T) {
	tests := []struct {
		n    int
		want string
	}{
		{1, "1st"},
		{2, "2nd"},
		{3, "3rd"},
		{4, "4th"},
		{10, "10th"},
		// last digit only: the teens keep st/nd/rd
		{11, "11st"},
		{12, "12nd"},
		{13, "13rd"},
		{21, "21st"},
		{22, "22nd"},
		{23, "23rd"},
		{24, "24th"},
		{30, "30th"},
		{31, "31st"},
	}

	for _, tt := range tests {
		if got := DateWithOrdinal(tt.n); got != tt.want {
			t.Errorf("DateWithOrdinal(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}

func TestMonthNameWithOrdinal(t *testing.T) {
	tests := []struct {
		n    int
		want string
	}{
		{1, "January"},
		{6, "June"},
		{12, "December"},
		{0, ""},
		{13, ""},
		{-1, ""},
	}

	for _, tt := range tests {
		if got := MonthNameWithOrdinal(tt.n); got != tt.want {
			t.Errorf("MonthNameWithOrdinal(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}

func TestNames(t *testing.T) {
	if DayName(0, false) != "Sun" || DayName(6, true) != "Saturday" || DayName(7, false) != "" {
		t.Error("unexpected DayName results")
	}
	if MonthName(3, false) != "Mar" || MonthName(3, true) != "March" || MonthName(0, true) != "" {
		t.Error("unexpected MonthName results")
	}

	names := PresetNames()
	names[0] = "changed"
	if PresetNames()[0] == "changed" {
		t.Error("PresetNames() must return a copy")
	}
	if _, ok := Preset("isoDate"); !ok {
		t.Error("Preset(isoDate) should exist")
	}
	if _, ok := Preset("nope"); ok {
		t.Error("Preset(nope) should not exist")
	}
}

func TestDisplayDigit(t *testing.T) {
	tests := []struct {
		n    int
		want string
	}{
		{0, "00"},
		{4, "04"},
		{12, "12"},
		{123, "123"},
		{-4, "-04"},
		{-12, "-12"},
	}

	for _, tt := range tests {
		if got := DisplayDigit(tt.n); got != tt.want {
			t.Errorf("DisplayDigit(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}

func TestFormatMinutes(t *testing.T) {
	tests := []struct {
		n    int
		want string
	}{
		{1760, "29:20 hrs"},
		{1500, "25:00 hrs"},
		{1430, "23:50 hrs"},
		{5, "00:05 hrs"},
		{0, "00:00 hrs"},
		{-90, "-01:30 hrs"},
	}

	for _, tt := range tests {
		if got := FormatMinutes(tt.n); got != tt.want {
			t.Errorf("FormatMinutes(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}

func TestIsToday(t *testing.T) {
	h := newTestHelper()

	tests := []struct {
		name  string
		input any
		want  bool
	}{
		{"today string", h.TodayDate(), true},
		{"today with time", "21/10/2018 23:59", true},
		{"today year-first", "2018-10-21", true},
		{"now value", testNow, true},
		{"long ago", "01/01/2000", false},
		{"tomorrow", "22/10/2018", false},
		{"invalid", "garbage", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := h.IsToday(tt.input); got != tt.want {
				t.Errorf("IsToday(%v) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestIsTodayFollowsClock(t *testing.T) {
	clock := clockwork.NewFakeClockAt(testNow)
	h := NewWithConfig(Config{Clock: clock, Location: time.UTC})

	if !h.IsToday("21/10/2018") {
		t.Fatal("IsToday() should be true before advancing")
	}
	clock.Advance(24 * time.Hour)
	if h.IsToday("21/10/2018") {
		t.Error("IsToday() should be false a day later")
	}
	if !h.IsToday("22/10/2018") {
		t.Error("IsToday() should follow the clock")
	}
}

func TestIsPastDate(t *testing.T) {
	h := newTestHelper()

	tests := []struct {
		input string
		want  bool
	}{
		{"20/10/2018", true},
		{"21/10/2017", true},
		{"21/10/2018", false},
		{"21/10/2018 00:00", false},
		{"22/10/2018", false},
		{"garbage", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := h.IsPastDate(tt.input); got != tt.want {
				t.Errorf("IsPastDate(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestIsDateInBetween(t *testing.T) {
	h := newTestHelper()

	tests := []struct {
		name              string
		start, end, check string
		want              bool
	}{
		{"inside", "20/03/2018", "21/06/2018", "01/05/2018", true},
		{"before", "20/03/2018", "21/06/2018", "19/03/2018", false},
		{"after", "20/03/2018", "21/06/2018", "22/06/2018", false},
		{"start boundary", "20/03/2018", "21/06/2018", "20/03/2018", true},
		{"end boundary", "20/03/2018", "21/06/2018", "21/06/2018", true},
		{"later the same day as end", "20/03/2018", "21/06/2018", "21/06/2018 10:00", false},
		{"empty range", "21/06/2018", "20/03/2018", "01/05/2018", false},
		{"invalid check", "20/03/2018", "21/06/2018", "nope", false},
		{"invalid start", "nope", "21/06/2018", "01/05/2018", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := h.IsDateInBetween(tt.start, tt.end, tt.check); got != tt.want {
				t.Errorf("IsDateInBetween(%q, %q, %q) = %v, want %v",
					tt.start, tt.end, tt.check, got, tt.want)
			}
		})
	}
}

func TestDaysDiff(t *testing.T) {
	h := newTestHelper()

	tests := []struct {
		a, b string
		want int
	}{
		{"21/10/2018", "28/10/2018", 7},
		{"28/10/2018", "21/10/2018", -7},
		{"21-10-2018", "12-11-2018", 22},
		{"21/10/2018 23:00", "22/10/2018 01:00", 1},
		{"22/10/2018 01:00", "22/10/2018 23:00", 0},
		{"31/12/2018", "2019-01-01", 1},
		{"01/01/2000", "01/01/2001", 366},
	}

	for _, tt := range tests {
		t.Run(tt.a+"_"+tt.b, func(t *testing.T) {
			got, err := h.DaysDiff(tt.a, tt.b)
			if err != nil {
				t.Fatalf("DaysDiff() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("DaysDiff(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
		})
	}

	if _, err := h.DaysDiff("nope", "21/10/2018"); err == nil {
		t.Error("DaysDiff(invalid, _) should fail")
	}
	if _, err := h.DaysDiff("21/10/2018", "nope"); err == nil {
		t.Error("DaysDiff(_, invalid) should fail")
	}
}

func TestDaysDiffAcrossDST(t *testing.T) {
	berlin, err := time.LoadLocation("Europe/Berlin")
	if err != nil {
		t.Skipf("zone data unavailable: %v", err)
	}
	h := NewWithConfig(Config{Clock: clockwork.NewFakeClockAt(testNow), Location: berlin})

	// clocks went back on 28 October 2018
	got, err := h.DaysDiff("27/10/2018", "29/10/2018")
	if err != nil || got != 2 {
		t.Errorf("DaysDiff() = %d, %v; want 2", got, err)
	}
}

func TestDaysDiffFromToday(t *testing.T) {
	h := newTestHelper()

	tests := []struct {
		input string
		want  int
	}{
		{"28/10/2018", 7},
		{"14/10/2018", -7},
		{"21/10/2018 23:59", 0},
	}

	for _, tt := range tests {
		got, err := h.DaysDiffFromToday(tt.input)
		if err != nil {
			t.Fatalf("DaysDiffFromToday(%q) error = %v", tt.input, err)
		}
		if got != tt.want {
			t.Errorf("DaysDiffFromToday(%q) = %d, want %d", tt.input, got, tt.want)
		}
	}
}

func TestDaysAheadAndBehind(t *testing.T) {
	h := newTestHelper()

	tests := []struct {
		name    string
		fn      func(any, int, string) (string, error)
		input   string
		n       int
		pattern string
		want    string
	}{
		{"ahead", h.DaysAheadFormat, "22/10/2016", 20, "yyyy/mm/dd", "2016/11/11"},
		{"behind", h.DaysBehindFormat, "22/10/2016", 20, "dd-mm-yyyy", "02-10-2016"},
		{"year rollover", h.DaysAheadFormat, "31/12/2018", 1, "dd/mm/yyyy", "01/01/2019"},
		{"leap day", h.DaysAheadFormat, "28/02/2020", 1, "dd/mm/yyyy", "29/02/2020"},
		{"negative ahead", h.DaysAheadFormat, "01/03/2021", -1, "dd/mm/yyyy", "28/02/2021"},
		{"keeps time", h.DaysBehindFormat, "21/10/2018 14:05", 1, "dd/mm HH:MM", "20/10 14:05"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.fn(tt.input, tt.n, tt.pattern)
			if err != nil {
				t.Fatalf("error = %v", err)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}

	dt := h.DaysAhead("21/10/2018", 3)
	if !dt.Valid() || dt.Time().Day() != 24 {
		t.Errorf("DaysAhead() = %v, want the 24th", dt)
	}

	if h.DaysBehind("nope", 1).Valid() {
		t.Error("DaysBehind(invalid) should stay invalid")
	}
	if _, err := h.DaysAheadFormat("nope", 1, PresetISODate); err == nil {
		t.Error("DaysAheadFormat(invalid) should fail")
	}
}

func TestDisplayHelpers(t *testing.T) {
	h := newTestHelper()

	tests := []struct {
		name string
		fn   func() (string, error)
		want string
	}{
		{"display date", func() (string, error) { return h.DisplayDate("22/10/2018", false) }, "Mon, 22 Oct"},
		{"display date with year", func() (string, error) { return h.DisplayDate("22-10-2018", true) }, "Mon, 22 Oct 2018"},
		{"single digit day", func() (string, error) { return h.DisplayDate("2018-11-05", false) }, "Mon, 5 Nov"},
		{"day name", func() (string, error) { return h.DayFromDate("22/10/2016") }, "Sat"},
		{"month name", func() (string, error) { return h.MonthFromDate("22/10/2016") }, "Oct"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.fn()
			if err != nil {
				t.Fatalf("error = %v", err)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}

	for _, input := range []any{"nope", "", nil} {
		if _, err := h.DayFromDate(input); err == nil {
			t.Errorf("DayFromDate(%#v) should fail", input)
		}
	}
}

func TestTodayDate(t *testing.T) {
	h := NewWithConfig(Config{
		Clock:    clockwork.NewFakeClockAt(time.Date(2018, 11, 8, 23, 30, 0, 0, time.UTC)),
		Location: time.UTC,
	})
	if got := h.TodayDate(); got != "08/11/2018" {
		t.Errorf("TodayDate() = %q, want 08/11/2018", got)
	}

	// the clock's instant is already the 9th in IST
	ist := NewWithConfig(Config{
		Clock:    clockwork.NewFakeClockAt(time.Date(2018, 11, 8, 23, 30, 0, 0, time.UTC)),
		Location: time.FixedZone("IST", 5*3600+1800),
	})
	if got := ist.TodayDate(); got != "09/11/2018" {
		t.Errorf("TodayDate() in IST = %q, want 09/11/2018", got)
	}
}
