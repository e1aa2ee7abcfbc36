// File: format.go
// Title: Token Pattern Formatting
// Description: Renders a DateTime with a named preset or a token pattern
//              such as "dd/mm/yyyy HH:MM". Also offers strftime layouts.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with Go layout formatting
// - 2026-10-18 v0.2.0: Token patterns and presets, strftime layouts

package timex

import (
	"strconv"
	"strings"
	"time"

	"github.com/dlclark/regexp2"
	"github.com/lestrrat-go/strftime"

	herror "github.com/msto63/hearty/foundation/core/error"
	"github.com/msto63/hearty/foundation/utils/stringx"
)

const utcPrefix = "UTC:"

// tokenPattern matches one formatting token or one quoted literal. The
// backreference makes "HH" a single token while "HM" is two.
var tokenPattern = regexp2.MustCompile(
	`d{1,4}|m{1,4}|yy(?:yy)?|([HhMsTt])\1?|[LloSZ]|"[^"]*"|'[^']*'`,
	regexp2.None,
)

// FormatDate parses input like StrToDate and renders it with pattern.
//
// pattern is a preset name, the name of an extra preset of the Helper, or a
// token string. An empty pattern selects the default preset. A leading
// "UTC:" is removed; fields are always read in the value's own location.
//
// Tokens:
//
//	d dd        day of month, plain / two digits
//	ddd dddd    weekday, Mon / Monday
//	m mm        month number, plain / two digits
//	mmm mmmm    month name, Mar / March
//	yy yyyy     year, two / four digits
//	h hh        hour on a 12 hour clock
//	H HH        hour on a 24 hour clock
//	M MM        minutes
//	s ss        seconds
//	l           milliseconds, three digits
//	L           milliseconds, two digits, in tenths above 99
//	t tt T TT   a / am / A / AM (p / pm / P / PM after noon)
//	Z           zone abbreviation
//	o           zone offset, +hhmm
//	S           ordinal suffix of the day
//	'…' "…"     literal text, quotes removed
//
// A nil or empty string input yields "" without error. Any other input
// that does not parse yields a *FormatError.
func (h *Helper) FormatDate(input any, pattern string) (string, error) {
	if isEmptyInput(input) {
		return "", nil
	}

	dt := h.StrToDate(input)
	if !dt.Valid() {
		return "", newFormatError(pattern, dt.Err())
	}

	tokens := strings.TrimPrefix(h.resolvePattern(pattern), utcPrefix)
	return renderTokens(dt.Time(), tokens)
}

// FormatStrftime parses input like StrToDate and renders it with a C
// strftime layout such as "%Y-%m-%d %H:%M".
func (h *Helper) FormatStrftime(input any, layout string) (string, error) {
	dt := h.StrToDate(input)
	if !dt.Valid() {
		return "", newFormatError(layout, dt.Err())
	}

	out, err := strftime.Format(layout, dt.Time())
	if err != nil {
		return "", herror.Wrap(err, "invalid strftime layout").
			WithCode(herror.CodeInvalidPattern).
			WithOperation("timex.FormatStrftime").
			WithDetail("layout", layout)
	}
	return out, nil
}

func isEmptyInput(input any) bool {
	switch v := input.(type) {
	case nil:
		return true
	case string:
		return v == ""
	}
	return false
}

func renderTokens(t time.Time, tokens string) (string, error) {
	out, err := tokenPattern.ReplaceFunc(tokens, func(m regexp2.Match) string {
		return tokenValue(t, m.String())
	}, -1, -1)
	if err != nil {
		return "", herror.Wrap(err, "pattern scan failed").
			WithCode(herror.CodeInvalidPattern).
			WithOperation("timex.FormatDate").
			WithDetail("pattern", tokens)
	}
	return out, nil
}

func tokenValue(t time.Time, token string) string {
	hour := t.Hour()
	millis := t.Nanosecond() / int(time.Millisecond)

	switch token {
	case "d":
		return strconv.Itoa(t.Day())
	case "dd":
		return pad(t.Day(), 2)
	case "ddd":
		return dayNames[t.Weekday()]
	case "dddd":
		return dayNames[int(t.Weekday())+7]
	case "m":
		return strconv.Itoa(int(t.Month()))
	case "mm":
		return pad(int(t.Month()), 2)
	case "mmm":
		return monthNames[int(t.Month())-1]
	case "mmmm":
		return monthNames[int(t.Month())+11]
	case "yy":
		// last two digits, also for years below 100 or above 9999
		year := t.Year() % 100
		if year < 0 {
			year = -year
		}
		return pad(year, 2)
	case "yyyy":
		return strconv.Itoa(t.Year())
	case "h":
		return strconv.Itoa(hour12(hour))
	case "hh":
		return pad(hour12(hour), 2)
	case "H":
		return strconv.Itoa(hour)
	case "HH":
		return pad(hour, 2)
	case "M":
		return strconv.Itoa(t.Minute())
	case "MM":
		return pad(t.Minute(), 2)
	case "s":
		return strconv.Itoa(t.Second())
	case "ss":
		return pad(t.Second(), 2)
	case "l":
		return pad(millis, 3)
	case "L":
		if millis > 99 {
			millis = (millis + 5) / 10
		}
		return pad(millis, 2)
	case "t":
		return meridiem(hour, "a", "p")
	case "tt":
		return meridiem(hour, "am", "pm")
	case "T":
		return meridiem(hour, "A", "P")
	case "TT":
		return meridiem(hour, "AM", "PM")
	case "Z":
		return t.Format("MST")
	case "o":
		return t.Format("-0700")
	case "S":
		return ordinalSuffix(t.Day())
	}

	// quoted literal
	if len(token) >= 2 {
		return token[1 : len(token)-1]
	}
	return token
}

func pad(n, width int) string {
	return stringx.PadLeft(strconv.Itoa(n), width, '0')
}

func hour12(hour int) int {
	if h := hour % 12; h != 0 {
		return h
	}
	return 12
}

func meridiem(hour int, am, pm string) string {
	if hour < 12 {
		return am
	}
	return pm
}
