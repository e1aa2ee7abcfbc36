// File: parse.go
// Title: Loose Date Parsing
// Description: Turns strings, numbers and time values into a DateTime.
//              Recognizes day-first and year-first numeric dates with an
//              optional clock time, time-only input, Unix seconds and, as a
//              last resort, free-form dates.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with common format parsing
// - 2026-10-18 v0.2.0: Separator-based date detection with dateparse fallback

package timex

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"github.com/spf13/cast"

	hlog "github.com/msto63/hearty/foundation/core/log"
	"github.com/msto63/hearty/foundation/utils/stringx"
)

const defaultClockTime = "00:00:00"

// StrToDate converts input to a DateTime.
//
// DateTime and time.Time values (and pointers to them) are used directly;
// time values are moved into the Helper's location. Anything else is
// converted to a string and resolved in this order:
//
//  1. Without ':' the whole string is a date such as "21/10/2018".
//  2. With ':' but without any of '-', '/', '_' it is a clock time on
//     today's date.
//  3. Otherwise the first space separated field is the date and the rest
//     is the clock time, "00:00:00" when missing.
//
// A date is split on the first of '-', '/', '_' that occurs after the first
// character. Its component order is guessed from lengths: a four character
// third component means day/month/year, a four character first component
// means year/month/day. Two digit years are never recognized.
//
// A date whose layout matched but whose month or day does not exist, such
// as "10/21/2018" or "2018-13-01", is invalid; it is not reread in another
// order. The clock time may carry an AM/PM marker ("10:00 PM"). Any other
// trailing field, such as a zone offset, leaves the input to the fallbacks.
//
// When no date resolves, an input that is entirely an integer is read as
// Unix seconds, and anything else is handed to a free-form date parser.
// If that fails too, the returned DateTime is invalid and its Err is a
// *ParseError.
func (h *Helper) StrToDate(input any) DateTime {
	switch v := input.(type) {
	case nil:
		return invalidDateTime(newParseError("", "no input"))
	case DateTime:
		return v
	case *DateTime:
		if v == nil {
			return invalidDateTime(newParseError("", "no input"))
		}
		return *v
	case time.Time:
		return FromTime(v.In(h.loc))
	case *time.Time:
		if v == nil {
			return invalidDateTime(newParseError("", "no input"))
		}
		return FromTime(v.In(h.loc))
	}

	raw, err := cast.ToStringE(input)
	if err != nil {
		return invalidDateTime(newParseError(fmt.Sprintf("%v", input),
			fmt.Sprintf("unsupported input type %T", input)))
	}

	raw = strings.TrimSpace(raw)
	if raw == "" {
		return invalidDateTime(newParseError(raw, "empty input"))
	}

	t, path, status := h.resolveString(raw)
	switch status {
	case dateResolved:
		h.debug("date input resolved", hlog.Fields{"input": raw, "path": path})
		return FromTime(t)
	case dateOutOfRange:
		h.debug("date input out of range", hlog.Fields{"input": raw, "path": path})
		return invalidDateTime(newParseError(raw, "month or day out of range for "+path+" date"))
	}

	return h.fallback(raw)
}

// StrToDateFormat parses input and formats the result with pattern
func (h *Helper) StrToDateFormat(input any, pattern string) (string, error) {
	return h.FormatDate(h.StrToDate(input), pattern)
}

// dateStatus is the outcome of the separator rules
type dateStatus int

const (
	// dateUnresolved means no layout matched; the fallbacks get a try
	dateUnresolved dateStatus = iota
	dateResolved
	// dateOutOfRange means a layout matched but month or day do not exist
	dateOutOfRange
)

// resolveString applies the separator rules. The returned path names the
// component order that matched, for debug logging and errors.
func (h *Helper) resolveString(raw string) (time.Time, string, dateStatus) {
	datePart, clockPart := raw, defaultClockTime

	switch {
	case !strings.Contains(raw, ":"):
		// date only
	case !strings.ContainsAny(raw, "-/_"):
		now := h.Now()
		datePart = fmt.Sprintf("%d/%d/%d", now.Day(), int(now.Month()), now.Year())
		clockPart = raw
	default:
		fields := strings.Fields(raw)
		datePart = fields[0]
		if len(fields) > 1 {
			clockPart = strings.Join(fields[1:], " ")
		}
	}

	year, month, day, order, status := resolveDate(datePart)
	if status != dateResolved {
		return time.Time{}, order, status
	}

	hour, minute, second, millis, ok := resolveClockField(clockPart)
	if !ok {
		return time.Time{}, order, dateUnresolved
	}

	t := time.Date(year, time.Month(month), day, hour, minute, second,
		millis*int(time.Millisecond), h.loc)
	return t, order, dateResolved
}

// resolveDate splits a date token into year, month and day. order is
// "day-first" or "year-first". Once the order is known the components must
// form a real calendar date; otherwise the status is dateOutOfRange and no
// other reading of the token is tried.
func resolveDate(token string) (year, month, day int, order string, status dateStatus) {
	var sep string
	for _, candidate := range []string{"-", "/", "_"} {
		if strings.Index(token, candidate) > 0 {
			sep = candidate
			break
		}
	}
	if sep == "" {
		return 0, 0, 0, "", dateUnresolved
	}

	parts := strings.Split(token, sep)
	if len(parts) != 3 {
		return 0, 0, 0, "", dateUnresolved
	}

	var ys, ms, ds string
	switch {
	case len(parts[2]) == 4:
		ds, ms, ys, order = parts[0], parts[1], parts[2], "day-first"
	case len(parts[0]) == 4:
		ys, ms, ds, order = parts[0], parts[1], parts[2], "year-first"
	default:
		return 0, 0, 0, "", dateUnresolved
	}

	// non-numeric components such as "21-Oct-2018" are left to the fallback
	year, okY := atoiDigits(ys)
	month, okM := atoiDigits(ms)
	day, okD := atoiDigits(ds)
	if !okY || !okM || !okD {
		return 0, 0, 0, "", dateUnresolved
	}

	if month < 1 || month > 12 || day < 1 || day > NumberOfDays(month, year) {
		return 0, 0, 0, order, dateOutOfRange
	}

	return year, month, day, order, dateResolved
}

// resolveClockField reads the clock portion of an input: a clock time,
// optionally followed by an AM/PM marker.
func resolveClockField(s string) (hour, minute, second, millis int, ok bool) {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return 0, 0, 0, 0, false
	}

	hour, minute, second, millis, ok = resolveClock(fields[0])
	if !ok || len(fields) == 1 {
		return hour, minute, second, millis, ok
	}

	marker := strings.ToUpper(fields[1])
	if len(fields) > 2 || (marker != "AM" && marker != "PM") || hour < 1 || hour > 12 {
		return 0, 0, 0, 0, false
	}

	hour %= 12
	if marker == "PM" {
		hour += 12
	}
	return hour, minute, second, millis, true
}

// resolveClock reads H:M, H:M:S or H:M:S.mmm
func resolveClock(s string) (hour, minute, second, millis int, ok bool) {
	parts := strings.Split(s, ":")
	if len(parts) < 2 || len(parts) > 3 {
		return 0, 0, 0, 0, false
	}

	if len(parts) == 3 {
		if secs, frac, found := strings.Cut(parts[2], "."); found {
			if len(frac) == 0 || len(frac) > 3 {
				return 0, 0, 0, 0, false
			}
			if millis, ok = atoiDigits(stringx.PadRight(frac, 3, '0')); !ok {
				return 0, 0, 0, 0, false
			}
			parts[2] = secs
		}
	} else {
		parts = append(parts, "0")
	}

	var okH, okM, okS bool
	hour, okH = atoiDigits(parts[0])
	minute, okM = atoiDigits(parts[1])
	second, okS = atoiDigits(parts[2])
	if !okH || !okM || !okS {
		return 0, 0, 0, 0, false
	}

	if hour > 23 || minute > 59 || second > 59 {
		return 0, 0, 0, 0, false
	}

	return hour, minute, second, millis, true
}

// fallback handles input the separator rules could not resolve
func (h *Helper) fallback(raw string) DateTime {
	if secs, err := strconv.ParseInt(raw, 10, 64); err == nil {
		h.debug("date input read as unix seconds", hlog.Fields{"input": raw})
		return FromTime(time.Unix(secs, 0).In(h.loc))
	}

	t, err := dateparse.ParseIn(raw, h.loc)
	if err != nil {
		h.debug("date input not recognized", hlog.Fields{"input": raw, "error": err.Error()})
		return invalidDateTime(newParseError(raw, "unrecognized date format"))
	}

	h.debug("date input resolved", hlog.Fields{"input": raw, "path": "free-form"})
	return FromTime(t.In(h.loc))
}

// atoiDigits converts a string of ASCII digits; signs and spaces are rejected
func atoiDigits(s string) (int, bool) {
	if !stringx.IsDigits(s) || len(s) > 9 {
		return 0, false
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}
