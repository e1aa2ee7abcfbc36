// File: duration_test.go
// Title: Duration Breakdown Tests
// Description: Tests for GetDuration components, the display cascade and
//              the one-day wrap of negative gaps.
// Author: msto63
// Version: v0.2.0
// Created: 2025-07-26
// Modified: 2026-10-18
//
// Change History:
// - 2025-07-26 v0.1.1: Added compact duration formatting tests
// - 2026-10-18 v0.2.0: Component breakdown

package timex

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestGetDuration(t *testing.T) {
	h := newTestHelper()

	tests := []struct {
		name       string
		start, end string
		want       DurationBreakdown
	}{
		{
			name:  "equal endpoints",
			start: "21/10/2018 10:00",
			end:   "21/10/2018 10:00",
			want: DurationBreakdown{
				Year: "00", Month: "00", Day: "00", Hour: "00", Minute: "00", Second: "00",
				DisplayDiff: "Now", Duration: 0,
			},
		},
		{
			name:  "months and days",
			start: "22/10/2018",
			end:   "28/11/2018",
			want: DurationBreakdown{
				Year: "00", Month: "01", Day: "06", Hour: "00", Minute: "00", Second: "00",
				DisplayDiff: "01mo 06d", Duration: 3196800,
			},
		},
		{
			name:  "years and months",
			start: "01/01/2016",
			end:   "15/03/2018",
			want: DurationBreakdown{
				Year: "02", Month: "02", Day: "14", Hour: "00", Minute: "00", Second: "00",
				DisplayDiff: "02yr 02mo ", Duration: 69465600,
			},
		},
		{
			name:  "days and hours",
			start: "21/10/2018 10:00",
			end:   "23/10/2018 15:00",
			want: DurationBreakdown{
				Year: "00", Month: "00", Day: "02", Hour: "05", Minute: "00", Second: "00",
				DisplayDiff: "02d 05h", Duration: 190800,
			},
		},
		{
			name:  "hours and minutes",
			start: "12:00",
			end:   "15:30",
			want: DurationBreakdown{
				Year: "00", Month: "00", Day: "00", Hour: "03", Minute: "30", Second: "00",
				DisplayDiff: "03h 30m", Duration: 12600,
			},
		},
		{
			name:  "minutes only",
			start: "10:00",
			end:   "10:05:30",
			want: DurationBreakdown{
				Year: "00", Month: "00", Day: "00", Hour: "00", Minute: "05", Second: "30",
				DisplayDiff: "05m ", Duration: 330,
			},
		},
		{
			name:  "seconds only",
			start: "10:00",
			end:   "10:00:45",
			want: DurationBreakdown{
				Year: "00", Month: "00", Day: "00", Hour: "00", Minute: "00", Second: "45",
				DisplayDiff: "Now", Duration: 45,
			},
		},
		{
			// end before start wraps past midnight once
			name:  "negative gap wraps one day",
			start: "15:30",
			end:   "12:00",
			want: DurationBreakdown{
				Year: "00", Month: "00", Day: "00", Hour: "20", Minute: "30", Second: "00",
				DisplayDiff: "20h 30m", Duration: 73800,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := h.GetDuration(tt.start, tt.end)
			if err != nil {
				t.Fatalf("GetDuration() error = %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("GetDuration(%q, %q) mismatch (-want +got):\n%s", tt.start, tt.end, diff)
			}
		})
	}
}

func TestGetDurationInvalid(t *testing.T) {
	h := newTestHelper()

	if _, err := h.GetDuration("nope", "12:00"); err == nil {
		t.Error("GetDuration(invalid, _) should fail")
	}
	if _, err := h.GetDuration("12:00", nil); err == nil {
		t.Error("GetDuration(_, nil) should fail")
	}
}

func TestDurationBreakdownJSON(t *testing.T) {
	h := newTestHelper()
	b, err := h.GetDuration("12:00", "15:30")
	if err != nil {
		t.Fatalf("GetDuration() error = %v", err)
	}

	data, err := json.Marshal(b)
	if err != nil {
		t.Fatalf("json.Marshal() error = %v", err)
	}

	want := `{"year":"00","month":"00","day":"00","hour":"03","minute":"30","second":"00","displayDiff":"03h 30m","duration":12600}`
	if string(data) != want {
		t.Errorf("json = %s\nwant   %s", data, want)
	}
}
