// File: severity.go
// Title: Error Severity Levels
// Description: Severity classification used to pick a log level when an
//              error is handed to the logger.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation
// - 2026-10-18 v0.2.0: Severity defaults for date codes

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow is bad caller input: unparseable dates, unknown presets
	SeverityLow Severity = iota

	// SeverityMedium is the default for unclassified errors
	SeverityMedium

	// SeverityHigh is a broken environment, e.g. an unreadable config file
	SeverityHigh

	// SeverityCritical makes the process unusable
	SeverityCritical
)

// String returns the string representation of the severity level
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// ShouldAlert returns true if this severity level should trigger alerts
func (s Severity) ShouldAlert() bool {
	return s >= SeverityHigh
}

// GetSeverityFromCode determines the default severity for a code
func GetSeverityFromCode(code Code) Severity {
	switch code {
	case CodeInternal:
		return SeverityCritical
	case CodeConfigError, CodeInvalidConfig:
		return SeverityHigh
	case CodeInvalidInput, CodeNotFound, CodeInvalidDate, CodeInvalidPattern, CodeInvalidEpoch,
		CodeValidationFailed, CodeInvalidFormat, CodeValueOutOfRange:
		return SeverityLow
	default:
		return SeverityMedium
	}
}
