// File: default.go
// Title: Package-Level Functions
// Description: Convenience functions that run on the default Helper.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.2.0: Initial implementation

package timex

// StrToDate parses input with the default Helper
func StrToDate(input any) DateTime {
	return Default().StrToDate(input)
}

// StrToDateFormat parses input and formats it with the default Helper
func StrToDateFormat(input any, pattern string) (string, error) {
	return Default().StrToDateFormat(input, pattern)
}

// FormatDate formats input with the default Helper
func FormatDate(input any, pattern string) (string, error) {
	return Default().FormatDate(input, pattern)
}

// FormatStrftime formats input with a strftime layout using the default Helper
func FormatStrftime(input any, layout string) (string, error) {
	return Default().FormatStrftime(input, layout)
}

// IsToday reports whether input is today according to the default Helper
func IsToday(input any) bool {
	return Default().IsToday(input)
}

// IsPastDate reports whether input is before today according to the default Helper
func IsPastDate(input any) bool {
	return Default().IsPastDate(input)
}

// IsDateInBetween checks an inclusive range with the default Helper
func IsDateInBetween(start, end, check any) bool {
	return Default().IsDateInBetween(start, end, check)
}

// DaysDiff returns the calendar days from a to b with the default Helper
func DaysDiff(a, b any) (int, error) {
	return Default().DaysDiff(a, b)
}

// DaysDiffFromToday returns the calendar days from today with the default Helper
func DaysDiffFromToday(input any) (int, error) {
	return Default().DaysDiffFromToday(input)
}

// DaysAhead shifts input forward with the default Helper
func DaysAhead(input any, n int) DateTime {
	return Default().DaysAhead(input, n)
}

// DaysAheadFormat shifts input forward and formats it with the default Helper
func DaysAheadFormat(input any, n int, pattern string) (string, error) {
	return Default().DaysAheadFormat(input, n, pattern)
}

// DaysBehind shifts input back with the default Helper
func DaysBehind(input any, n int) DateTime {
	return Default().DaysBehind(input, n)
}

// DaysBehindFormat shifts input back and formats it with the default Helper
func DaysBehindFormat(input any, n int, pattern string) (string, error) {
	return Default().DaysBehindFormat(input, n, pattern)
}

// DisplayDate renders "Mon, 22 Oct[ 2018]" with the default Helper
func DisplayDate(input any, withYear bool) (string, error) {
	return Default().DisplayDate(input, withYear)
}

// DayFromDate returns the weekday abbreviation with the default Helper
func DayFromDate(input any) (string, error) {
	return Default().DayFromDate(input)
}

// MonthFromDate returns the month abbreviation with the default Helper
func MonthFromDate(input any) (string, error) {
	return Default().MonthFromDate(input)
}

// GetDuration breaks down the gap from start to end with the default Helper
func GetDuration(start, end any) (DurationBreakdown, error) {
	return Default().GetDuration(start, end)
}

// DateFromTimestamp renders a timestamp with the default Helper
func DateFromTimestamp(v int64, onlyText bool) (string, bool) {
	return Default().DateFromTimestamp(v, onlyText)
}

// TodayDate returns today as dd/mm/yyyy with the default Helper
func TodayDate() string {
	return Default().TodayDate()
}
