// File: helper_test.go
// Title: Helper Tests
// Description: Tests for Helper defaults, extra presets and the default
//              instance.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.2.0: Initial implementation

package timex

import (
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
)

// testNow is a Sunday
var testNow = time.Date(2018, 10, 21, 9, 30, 15, 250*int(time.Millisecond), time.UTC)

func newTestHelper() *Helper {
	return NewWithConfig(Config{
		Clock:    clockwork.NewFakeClockAt(testNow),
		Location: time.UTC,
	})
}

func TestNewWithConfigDefaults(t *testing.T) {
	h := New()

	if h.Location() != time.Local {
		t.Errorf("Location() = %v, want Local", h.Location())
	}
	if h.clock == nil || h.logger == nil {
		t.Fatal("New() should fill in clock and logger")
	}
	if h.logger.IsLevelEnabled(0) {
		t.Error("default logger should discard everything")
	}
}

func TestHelperNow(t *testing.T) {
	ist := time.FixedZone("IST", 5*3600+1800)
	h := NewWithConfig(Config{
		Clock:    clockwork.NewFakeClockAt(testNow),
		Location: ist,
	})

	now := h.Now()
	if !now.Equal(testNow) {
		t.Errorf("Now() = %v, want %v", now, testNow)
	}
	if now.Location() != ist {
		t.Errorf("Now() location = %v, want IST", now.Location())
	}
}

func TestExtraPresets(t *testing.T) {
	h := NewWithConfig(Config{
		Clock:    clockwork.NewFakeClockAt(testNow),
		Location: time.UTC,
		Presets: map[string]string{
			"us":      "mm/dd/yyyy",
			"isoDate": "dd.mm.yyyy",
			"":        "ignored",
		},
	})

	if got := h.ExtraPresetNames(); len(got) != 1 || got[0] != "us" {
		t.Errorf("ExtraPresetNames() = %v, want [us]", got)
	}

	all := h.Presets()
	if all["isoDate"] != "yyyy-mm-dd" {
		t.Errorf("built-in preset was shadowed: %q", all["isoDate"])
	}
	if all["us"] != "mm/dd/yyyy" {
		t.Errorf("extra preset missing: %q", all["us"])
	}
	if len(all) != len(PresetNames())+1 {
		t.Errorf("len(Presets()) = %d, want %d", len(all), len(PresetNames())+1)
	}

	all["us"] = "changed"
	if h.Presets()["us"] != "mm/dd/yyyy" {
		t.Error("Presets() must return a copy")
	}
}

func TestResolvePattern(t *testing.T) {
	h := NewWithConfig(Config{Presets: map[string]string{"us": "mm/dd/yyyy"}})

	tests := []struct {
		pattern string
		want    string
	}{
		{"isoDate", "yyyy-mm-dd"},
		{"us", "mm/dd/yyyy"},
		{"dd.mm.yy", "dd.mm.yy"},
		{"", "ddd mmm dd yyyy HH:MM:ss"},
	}

	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			if got := h.resolvePattern(tt.pattern); got != tt.want {
				t.Errorf("resolvePattern(%q) = %q, want %q", tt.pattern, got, tt.want)
			}
		})
	}
}

func TestSetDefault(t *testing.T) {
	original := Default()
	defer SetDefault(original)

	h := newTestHelper()
	SetDefault(h)
	SetDefault(nil)

	if Default() != h {
		t.Fatal("SetDefault(nil) should keep the current Helper")
	}
	if got := TodayDate(); got != "21/10/2018" {
		t.Errorf("TodayDate() = %q, want 21/10/2018", got)
	}
}
