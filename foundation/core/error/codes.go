// File: codes.go
// Title: Error Code Definitions
// Description: Standardized error codes for the date helper, its
//              configuration layer and the command line front end.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core error codes
// - 2026-10-18 v0.2.0: Date domain codes

package error

// Code represents a structured error code for categorizing errors
type Code string

const (
	// Generic codes
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL"
	CodeNotFound     Code = "NOT_FOUND"
	CodeInvalidInput Code = "INVALID_INPUT"

	// Date handling
	CodeInvalidDate    Code = "INVALID_DATE"
	CodeInvalidPattern Code = "INVALID_PATTERN"
	CodeInvalidEpoch   Code = "INVALID_EPOCH"

	// Configuration
	CodeConfigError   Code = "CONFIG_ERROR"
	CodeInvalidConfig Code = "INVALID_CONFIG"

	// Validation
	CodeValidationFailed Code = "VALIDATION_FAILED"
	CodeInvalidFormat    Code = "INVALID_FORMAT"
	CodeValueOutOfRange  Code = "VALUE_OUT_OF_RANGE"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid checks if the error code is a known code
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal, CodeNotFound, CodeInvalidInput,
		CodeInvalidDate, CodeInvalidPattern, CodeInvalidEpoch,
		CodeConfigError, CodeInvalidConfig,
		CodeValidationFailed, CodeInvalidFormat, CodeValueOutOfRange:
		return true
	default:
		return false
	}
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodeInvalidDate, CodeInvalidPattern, CodeInvalidEpoch:
		return "date"
	case CodeConfigError, CodeInvalidConfig:
		return "configuration"
	case CodeValidationFailed, CodeInvalidFormat, CodeValueOutOfRange, CodeInvalidInput:
		return "validation"
	default:
		return "generic"
	}
}

// ExitCode maps the code to a process exit status for the CLI.
// Input problems exit with 2, everything else with 1.
func (c Code) ExitCode() int {
	switch c.Category() {
	case "date", "validation":
		return 2
	default:
		return 1
	}
}
