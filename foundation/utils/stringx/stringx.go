// File: stringx.go
// Title: Core String Utility Functions
// Description: Padding, centering, truncation and blank handling. All widths
//              are measured in runes.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core utilities
// - 2026-10-18 v0.2.0: Validation reports through foundation/core/error

package stringx

import (
	"strings"
	"unicode"
	"unicode/utf8"

	herror "github.com/msto63/hearty/foundation/core/error"
)

// IsBlank returns true if the string is empty or contains only whitespace
func IsBlank(s string) bool {
	for _, r := range s {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

// IsNotBlank returns true if the string contains at least one non-whitespace character
func IsNotBlank(s string) bool {
	return !IsBlank(s)
}

// IsDigits reports whether s is non-empty and made of ASCII digits only
func IsDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// PadLeft pads s on the left with pad until it is width runes long.
// Strings that are already long enough are returned unchanged.
func PadLeft(s string, width int, pad rune) string {
	n := width - utf8.RuneCountInString(s)
	if n <= 0 {
		return s
	}
	return strings.Repeat(string(pad), n) + s
}

// PadRight pads s on the right with pad until it is width runes long
func PadRight(s string, width int, pad rune) string {
	n := width - utf8.RuneCountInString(s)
	if n <= 0 {
		return s
	}
	return s + strings.Repeat(string(pad), n)
}

// Center centers s within width using pad. An odd remainder goes to the right.
func Center(s string, width int, pad rune) string {
	total := width - utf8.RuneCountInString(s)
	if total <= 0 {
		return s
	}
	left := total / 2
	return strings.Repeat(string(pad), left) + s + strings.Repeat(string(pad), total-left)
}

// Truncate shortens s to maxLen runes including the ellipsis
func Truncate(s string, maxLen int, ellipsis string) string {
	if maxLen <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}

	ellipsisLen := utf8.RuneCountInString(ellipsis)
	if ellipsisLen >= maxLen {
		return string([]rune(s)[:maxLen])
	}
	return string([]rune(s)[:maxLen-ellipsisLen]) + ellipsis
}

// FromBlankDefault returns the string if not blank, otherwise returns the default value
func FromBlankDefault(s, defaultValue string) string {
	if IsBlank(s) {
		return defaultValue
	}
	return s
}

// ValidateNotBlank returns a validation error naming field when s is blank
func ValidateNotBlank(field, s string) error {
	if IsBlank(s) {
		return herror.New(field+" must not be blank").
			WithCode(herror.CodeValidationFailed).
			WithOperation("stringx.ValidateNotBlank").
			WithDetail("field", field)
	}
	return nil
}
