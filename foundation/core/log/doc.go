// Package log provides structured logging for hearty.
//
// Package: log
// Title: hearty Structured Logging
// Description: Leveled, structured logging with JSON, text and console
//              formats. Loggers are immutable: every With* call returns a
//              configured copy, so one logger can be shared by concurrent
//              callers.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with structured logging and error integration
// - 2026-10-18 v0.2.0: Removed async mode, timers and audit trail; added Nop
//
// Usage:
//
//	import hlog "github.com/msto63/hearty/foundation/core/log"
//
//	logger := hlog.NewWithConfig(hlog.Config{
//		Level:  hlog.LevelDebug,
//		Format: hlog.FormatText,
//		Name:   "hearty",
//	})
//	logger.Debug("date input resolved", hlog.Fields{"path": "day-first"})
//
//	// errors from foundation/core/error pick their level from severity
//	logger.LogError(err)
package log
