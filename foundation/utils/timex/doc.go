// Package timex parses loosely formatted dates, formats them with named
// presets or token patterns and derives display values from them.
//
// Package: timex
// Title: Date Parsing, Formatting and Derivations
// Description: Turns strings such as "21/10/2018", "2018-10-21 09:30" or
//              "14:05" into a DateTime, renders DateTimes with token
//              patterns such as "dddd, mmmm d, yyyy", and computes day
//              differences, duration breakdowns, ordinals and epoch
//              normalization on top of these two layers.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with comprehensive time operations
// - 2025-01-26 v0.1.1: Enhanced documentation with comprehensive examples
// - 2026-10-18 v0.2.0: Reworked around loose parsing and token patterns; business
//                       day and time series helpers removed
//
// # Parsing
//
// StrToDate accepts strings, integers, floats, byte slices, time.Time and
// DateTime values. Numeric dates are split on '-', '/' or '_' and ordered
// by a length heuristic: a four character last component means
// day/month/year, a four character first component means year/month/day.
// Integers without separators are Unix seconds. Anything else goes to a
// free-form parser. Input that cannot be read produces an invalid DateTime
// rather than an error, so callers decide whether to check:
//
//	dt := timex.StrToDate("21/10/2018 09:30")
//	if !dt.Valid() {
//	    return dt.Err()
//	}
//
// # Formatting
//
// FormatDate takes a preset name (see PresetNames) or a token pattern.
// Quoted spans are copied without their quotes:
//
//	timex.FormatDate("2018-10-21", "yyyy/mm/dd")            // "2018/10/21"
//	timex.FormatDate("21/10/2018 14:05", "h:MM TT")         // "2:05 PM"
//	timex.FormatDate("21/10/2018", "dddd 'the' dS")         // "Sunday the 21st"
//	timex.FormatDate("21/10/2018", timex.PresetFullDate)    // "Sunday, October 21, 2018"
//
// Formatting is the one strict operation: an input that does not parse
// returns a *FormatError whose message is "invalid date".
//
// # Derived values
//
//   - IsToday, IsPastDate, IsDateInBetween
//   - DaysDiff, DaysDiffFromToday (calendar days, DST safe)
//   - DaysAhead, DaysBehind and their *Format variants
//   - GetDuration (component breakdown with a display string)
//   - DisplayDate, DayFromDate, MonthFromDate, TodayDate
//   - ConvertedEpochDate, DateFromTimestamp
//   - NumberOfDays, DateWithOrdinal, MonthNameWithOrdinal, DisplayDigit,
//     FormatMinutes
//
// # Helper
//
// Everything that depends on the current time, the local zone or logging
// goes through a Helper. The package-level functions use Default(), which
// reads the real clock in time.Local and does not log. Tests and
// applications build their own:
//
//	h := timex.NewWithConfig(timex.Config{
//	    Clock:    clockwork.NewFakeClockAt(time.Date(2018, 10, 21, 9, 0, 0, 0, time.UTC)),
//	    Location: time.UTC,
//	    Logger:   logger,
//	    Presets:  map[string]string{"us": "mm/dd/yyyy"},
//	})
//	h.IsToday("21/10/2018") // true
//
// A Helper is immutable. The lookup tables of the package are never
// written after initialization, so all functions are safe for concurrent
// use.
//
// # Errors
//
// ParseError and FormatError unwrap to an *error.Error from
// foundation/core/error with code INVALID_DATE, so both errors.As on the
// concrete type and herror.HasCode work.
package timex
