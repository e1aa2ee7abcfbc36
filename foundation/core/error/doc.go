// Package error provides the structured error type used across hearty.
//
// Package: error
// Title: hearty Error Handling
// Description: Structured errors with codes, severity, operation names,
//              details and a captured stack trace. Parse and format failures
//              of the date helper unwrap to an *Error so callers can branch on
//              Code() without string matching.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with contextual errors and codes
// - 2026-10-18 v0.2.0: Reduced code table to the date helper domain
//
// Usage:
//
//	import herror "github.com/msto63/hearty/foundation/core/error"
//
//	err := herror.New("invalid date").
//		WithCode(herror.CodeInvalidDate).
//		WithOperation("timex.FormatDate").
//		WithDetail("input", "31/02/2024")
//
//	if herror.HasCode(err, herror.CodeInvalidDate) {
//		// fall back to a placeholder
//	}
package error
