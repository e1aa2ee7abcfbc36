// File: derive.go
// Title: Derived Date Values
// Description: Day comparisons, day differences, day shifting and the
//              display helpers built on StrToDate and FormatDate.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with date arithmetic helpers
// - 2026-10-18 v0.2.0: Calendar day differences on the injected clock

package timex

import (
	"strconv"
	"time"
)

const secondsPerDay = 86400

// ===============================
// Day Comparisons
// ===============================

// IsToday reports whether input falls on the current calendar day.
// Invalid input is never today.
func (h *Helper) IsToday(input any) bool {
	dt := h.StrToDate(input)
	if !dt.Valid() {
		return false
	}
	return calendarDays(h.Now(), dt.Time().In(h.loc)) == 0
}

// IsPastDate reports whether input falls on a calendar day before today.
// The current day and invalid input are not past.
func (h *Helper) IsPastDate(input any) bool {
	dt := h.StrToDate(input)
	if !dt.Valid() {
		return false
	}
	return calendarDays(dt.Time().In(h.loc), h.Now()) > 0
}

// IsDateInBetween reports whether check lies within [start, end]. All three
// inputs are compared as full instants; any invalid input yields false.
func (h *Helper) IsDateInBetween(start, end, check any) bool {
	s, e, c := h.StrToDate(start), h.StrToDate(end), h.StrToDate(check)
	if !s.Valid() || !e.Valid() || !c.Valid() {
		return false
	}
	return !c.Time().Before(s.Time()) && !c.Time().After(e.Time())
}

// ===============================
// Day Differences
// ===============================

// DaysDiff returns the signed number of calendar days from a to b.
// Times of day are ignored: "21/10/2018 23:00" to "22/10/2018 01:00" is 1.
func (h *Helper) DaysDiff(a, b any) (int, error) {
	from, to := h.StrToDate(a), h.StrToDate(b)
	if !from.Valid() {
		return 0, from.Err()
	}
	if !to.Valid() {
		return 0, to.Err()
	}
	return calendarDays(from.Time().In(h.loc), to.Time().In(h.loc)), nil
}

// DaysDiffFromToday returns the signed number of calendar days from today
// to input; future dates are positive.
func (h *Helper) DaysDiffFromToday(input any) (int, error) {
	return h.DaysDiff(h.Now(), input)
}

// calendarDays counts days between the calendar dates of a and b. Both
// dates are moved to UTC midnight first so DST transitions cannot shorten
// or lengthen a day.
func calendarDays(a, b time.Time) int {
	from := time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	to := time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	return int((to.Unix() - from.Unix()) / secondsPerDay)
}

// ===============================
// Day Shifting
// ===============================

// DaysAhead returns input moved n calendar days forward. The time of day
// is kept. Invalid input is returned unchanged.
func (h *Helper) DaysAhead(input any, n int) DateTime {
	dt := h.StrToDate(input)
	if !dt.Valid() {
		return dt
	}
	return FromTime(dt.Time().AddDate(0, 0, n))
}

// DaysAheadFormat is DaysAhead followed by FormatDate
func (h *Helper) DaysAheadFormat(input any, n int, pattern string) (string, error) {
	return h.FormatDate(h.DaysAhead(input, n), pattern)
}

// DaysBehind returns input moved n calendar days back
func (h *Helper) DaysBehind(input any, n int) DateTime {
	return h.DaysAhead(input, -n)
}

// DaysBehindFormat is DaysBehind followed by FormatDate
func (h *Helper) DaysBehindFormat(input any, n int, pattern string) (string, error) {
	return h.FormatDate(h.DaysBehind(input, n), pattern)
}

// ===============================
// Display Helpers
// ===============================

// DisplayDate renders input as "Mon, 22 Oct", with " 2018" appended when
// withYear is set.
func (h *Helper) DisplayDate(input any, withYear bool) (string, error) {
	pattern := "ddd, d mmm"
	if withYear {
		pattern += " yyyy"
	}
	return h.formatRequired(input, pattern)
}

// DayFromDate returns the abbreviated weekday name of input, e.g. "Sat"
func (h *Helper) DayFromDate(input any) (string, error) {
	return h.formatRequired(input, "ddd")
}

// MonthFromDate returns the abbreviated month name of input, e.g. "Oct"
func (h *Helper) MonthFromDate(input any) (string, error) {
	return h.formatRequired(input, "mmm")
}

// TodayDate returns the current date as dd/mm/yyyy
func (h *Helper) TodayDate() string {
	now := h.Now()
	return pad(now.Day(), 2) + "/" + pad(int(now.Month()), 2) + "/" + strconv.Itoa(now.Year())
}

// formatRequired is FormatDate without the empty-input shortcut, for
// helpers that must name a date.
func (h *Helper) formatRequired(input any, pattern string) (string, error) {
	dt := h.StrToDate(input)
	if !dt.Valid() {
		return "", newFormatError(pattern, dt.Err())
	}
	return renderTokens(dt.Time(), pattern)
}

// FormatMinutes renders a number of minutes as hours and minutes,
// e.g. 1760 -> "29:20 hrs". Negative input gets a leading minus sign.
func FormatMinutes(minutes int) string {
	sign := ""
	if minutes < 0 {
		sign = "-"
		minutes = -minutes
	}
	return sign + DisplayDigit(minutes/60) + ":" + DisplayDigit(minutes%60) + " hrs"
}
