// Package stringx provides the small set of string helpers hearty needs on
// top of the standard library.
//
// Package: stringx
// Title: Extended String Operations for hearty
// Description: Unicode-aware padding and centering, blank checks and
//              defaults. timex pads date fields with PadLeft; the calendar
//              command centers its header with Center.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core string utilities
// - 2025-01-26 v0.2.0: Enhanced documentation with comprehensive structure and examples
// - 2026-10-18 v0.3.0: Reduced to padding, blank checks and defaults
//
// Usage:
//
//	stringx.PadLeft("7", 2, '0')          // "07"
//	stringx.Center("March 2024", 20, ' ') // "     March 2024     "
//	stringx.FromBlankDefault("  ", "default")
//
// All width arguments count runes, not bytes.
package stringx
