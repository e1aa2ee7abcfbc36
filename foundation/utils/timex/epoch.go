// File: epoch.go
// Title: Epoch Normalization
// Description: Detects whether a Unix timestamp is in seconds, milliseconds
//              or microseconds and renders timestamps as short dates.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with Unix conversions
// - 2026-10-18 v0.2.0: Magnitude based unit detection

package timex

import (
	"strconv"
	"time"
)

const (
	microsThreshold int64 = 100_000_000_000_000
	millisThreshold int64 = 100_000_000_000

	// minEpochSeconds is 14 September 1752, the first day of the Gregorian
	// calendar in Britain and its colonies
	minEpochSeconds int64 = -6_857_222_400
)

// ConvertedEpochDate normalizes a Unix timestamp of unknown unit to
// milliseconds. Magnitudes of at least 1e14 are microseconds and are
// rounded half up; at least 1e11 are already milliseconds; anything
// smaller is seconds. Seconds before 14 September 1752 report ok == false.
func ConvertedEpochDate(v int64) (millis int64, ok bool) {
	switch {
	case v >= microsThreshold || v <= -microsThreshold:
		q := floorDiv(v, 1000)
		if v-q*1000 >= 500 {
			q++
		}
		return q, true
	case v >= millisThreshold || v <= -millisThreshold:
		return v, true
	case v < minEpochSeconds:
		return 0, false
	default:
		return v * 1000, true
	}
}

// DateFromTimestamp renders a Unix timestamp of any unit as "8th Nov, 2018",
// or "8 Nov, 2018" when onlyText is set. ok is false when the timestamp is
// rejected by ConvertedEpochDate.
func (h *Helper) DateFromTimestamp(v int64, onlyText bool) (string, bool) {
	millis, ok := ConvertedEpochDate(v)
	if !ok {
		return "", false
	}

	t := time.UnixMilli(millis).In(h.loc)
	day := strconv.Itoa(t.Day())
	if !onlyText {
		day = DateWithOrdinal(t.Day())
	}

	return day + " " + monthNames[int(t.Month())-1] + ", " + strconv.Itoa(t.Year()), true
}

func floorDiv(a, b int64) int64 {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}
