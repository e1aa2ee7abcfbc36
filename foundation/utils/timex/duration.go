// File: duration.go
// Title: Duration Breakdown
// Description: Splits the gap between two instants into calendar-like
//              components and a short display string.
// Author: msto63
// Version: v0.2.0
// Created: 2025-07-26
// Modified: 2026-10-18
//
// Change History:
// - 2025-07-26 v0.1.1: Added compact duration formatting
// - 2026-10-18 v0.2.0: Component breakdown with display cascade

package timex

import (
	"time"

	hlog "github.com/msto63/hearty/foundation/core/log"
)

const millisPerDay = 86_400_000

// DurationBreakdown is the result of GetDuration. The component fields are
// at least two digits wide.
type DurationBreakdown struct {
	Year        string  `json:"year" yaml:"year"`
	Month       string  `json:"month" yaml:"month"`
	Day         string  `json:"day" yaml:"day"`
	Hour        string  `json:"hour" yaml:"hour"`
	Minute      string  `json:"minute" yaml:"minute"`
	Second      string  `json:"second" yaml:"second"`
	DisplayDiff string  `json:"displayDiff" yaml:"displayDiff"`
	Duration    float64 `json:"duration" yaml:"duration"`
}

// GetDuration breaks the gap from start to end into components.
//
// The gap is measured in milliseconds. A negative gap gets one day added,
// once, so "23:00" to "01:00" is two hours; a gap that is still negative
// is left as it is. The components are read from the UTC date that lies
// gap milliseconds after the Unix epoch: years since 1970, months since
// January, days since the 1st, then hours, minutes and seconds.
//
// DisplayDiff shows the two largest units starting at the first non-zero
// one among years, months, days and hours, e.g. "01mo 06d". A gap of only
// minutes shows "05m ", anything shorter shows "Now".
//
// Duration is the total gap in seconds.
func (h *Helper) GetDuration(start, end any) (DurationBreakdown, error) {
	from, to := h.StrToDate(start), h.StrToDate(end)
	if !from.Valid() {
		return DurationBreakdown{}, from.Err()
	}
	if !to.Valid() {
		return DurationBreakdown{}, to.Err()
	}

	gap := to.Time().UnixMilli() - from.Time().UnixMilli()
	if gap < 0 {
		gap += millisPerDay
	}

	p := time.UnixMilli(gap).UTC()
	years := p.Year() - 1970
	months := int(p.Month()) - 1
	days := p.Day() - 1

	b := DurationBreakdown{
		Year:     DisplayDigit(years),
		Month:    DisplayDigit(months),
		Day:      DisplayDigit(days),
		Hour:     DisplayDigit(p.Hour()),
		Minute:   DisplayDigit(p.Minute()),
		Second:   DisplayDigit(p.Second()),
		Duration: float64(gap) / 1000,
	}

	switch {
	case years > 0:
		b.DisplayDiff = b.Year + "yr " + b.Month + "mo "
	case months > 0:
		b.DisplayDiff = b.Month + "mo " + b.Day + "d"
	case days > 0:
		b.DisplayDiff = b.Day + "d " + b.Hour + "h"
	case p.Hour() > 0:
		b.DisplayDiff = b.Hour + "h " + b.Minute + "m"
	case p.Minute() > 0:
		b.DisplayDiff = b.Minute + "m "
	default:
		b.DisplayDiff = "Now"
	}

	h.debug("duration computed", hlog.Fields{
		"gap_ms":  gap,
		"display": b.DisplayDiff,
	})

	return b, nil
}
