// File: names.go
// Title: Calendar Names, Presets and Ordinals
// Description: Immutable lookup tables for day and month names and the
//              named format presets, plus the small pure helpers built on
//              them (ordinals, month lengths, two-digit display).
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with comprehensive time utilities
// - 2026-10-18 v0.2.0: Token-pattern presets and English name tables

package timex

import (
	"sort"
	"strconv"
)

// Preset names understood by FormatDate
const (
	PresetDefault        = "default"
	PresetShortDate      = "shortDate"
	PresetMediumDate     = "mediumDate"
	PresetLongDate       = "longDate"
	PresetFullDate       = "fullDate"
	PresetShortTime      = "shortTime"
	PresetMediumTime     = "mediumTime"
	PresetLongTime       = "longTime"
	PresetISODate        = "isoDate"
	PresetISOTime        = "isoTime"
	PresetISODateTime    = "isoDateTime"
	PresetISOUTCDateTime = "isoUtcDateTime"
	PresetSimpleDateTime = "simpleDateTime"
)

// dayNames holds the abbreviated names at 0..6 and the full names at 7..13,
// both starting with Sunday to match time.Weekday.
var dayNames = [14]string{
	"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat",
	"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday",
}

// monthNames holds the abbreviated names at 0..11 and the full names at 12..23
var monthNames = [24]string{
	"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

var presets = map[string]string{
	PresetDefault:        "ddd mmm dd yyyy HH:MM:ss",
	PresetShortDate:      "m/d/yy",
	PresetMediumDate:     "mmm d, yyyy",
	PresetLongDate:       "mmmm d, yyyy",
	PresetFullDate:       "dddd, mmmm d, yyyy",
	PresetShortTime:      "h:MM TT",
	PresetMediumTime:     "h:MM:ss TT",
	PresetLongTime:       "h:MM:ss TT Z",
	PresetISODate:        "yyyy-mm-dd",
	PresetISOTime:        "HH:MM:ss",
	PresetISODateTime:    "yyyy-mm-dd'T'HH:MM:ss",
	PresetISOUTCDateTime: "UTC:yyyy-mm-dd'T'HH:MM:ss'Z'",
	PresetSimpleDateTime: "dd/mm/yyyy",
}

// presetNames is sorted once at init
var presetNames = func() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}()

// Preset returns the token string of a built-in preset
func Preset(name string) (string, bool) {
	tokens, ok := presets[name]
	return tokens, ok
}

// PresetNames returns the built-in preset names in sorted order.
// The returned slice is a copy.
func PresetNames() []string {
	names := make([]string, len(presetNames))
	copy(names, presetNames)
	return names
}

// IsBuiltinPreset reports whether name is one of the built-in presets
func IsBuiltinPreset(name string) bool {
	_, ok := presets[name]
	return ok
}

// DayName returns the abbreviated or full English name of a weekday
func DayName(day int, full bool) string {
	if day < 0 || day > 6 {
		return ""
	}
	if full {
		return dayNames[day+7]
	}
	return dayNames[day]
}

// MonthName returns the abbreviated or full English name of a 1-based month
func MonthName(month int, full bool) string {
	if month < 1 || month > 12 {
		return ""
	}
	if full {
		return monthNames[month+11]
	}
	return monthNames[month-1]
}

// MonthNameWithOrdinal returns the full month name for a 1-based month
// number, or "" when n is outside 1..12.
func MonthNameWithOrdinal(n int) string {
	return MonthName(n, true)
}

// NumberOfDays returns the number of days in a 1-based month of year using
// the Gregorian leap year rule. Months outside 1..12 yield 0.
func NumberOfDays(month, year int) int {
	switch month {
	case 4, 6, 9, 11:
		return 30
	case 2:
		if isLeapYear(year) {
			return 29
		}
		return 28
	case 1, 3, 5, 7, 8, 10, 12:
		return 31
	default:
		return 0
	}
}

func isLeapYear(year int) bool {
	return (year%4 == 0 && year%100 != 0) || year%400 == 0
}

// ordinalSuffix looks at the last digit only, so 11, 12 and 13 become
// "st", "nd" and "rd". Existing output depends on this.
func ordinalSuffix(n int) string {
	switch n % 10 {
	case 1:
		return "st"
	case 2:
		return "nd"
	case 3:
		return "rd"
	default:
		return "th"
	}
}

// DateWithOrdinal appends the ordinal suffix to n, e.g. 23 -> "23rd".
// The suffix is chosen by the last digit only: 11 -> "11st".
func DateWithOrdinal(n int) string {
	return strconv.Itoa(n) + ordinalSuffix(n)
}

// DisplayDigit renders n with at least two digits, e.g. 4 -> "04".
// Negative values keep their sign in front: -4 -> "-04".
func DisplayDigit(n int) string {
	if n < 0 {
		digits := strconv.Itoa(n)[1:]
		if len(digits) < 2 {
			digits = "0" + digits
		}
		return "-" + digits
	}
	if n < 10 {
		return "0" + strconv.Itoa(n)
	}
	return strconv.Itoa(n)
}
