// File: logger_test.go
// Title: Logger Tests
// Description: Tests for logger configuration, immutability, level
//              filtering and error integration.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with comprehensive logger tests
// - 2026-10-18 v0.2.0: Immutable loggers, Nop, severity mapping

package log

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"

	herror "github.com/msto63/hearty/foundation/core/error"
)

func newBufferLogger(level Level, format Format) (*Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return NewWithConfig(Config{Level: level, Format: format, Output: &buf}), &buf
}

func TestNew(t *testing.T) {
	logger := New()

	if logger == nil {
		t.Fatal("New() should not return nil")
	}
	if logger.GetLevel() != DefaultLevel() {
		t.Errorf("New() level = %v, want %v", logger.GetLevel(), DefaultLevel())
	}
	if logger.contextFields == nil {
		t.Error("New() should initialize context fields")
	}
}

func TestNewWithConfig(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithConfig(Config{
		Level:  LevelError,
		Format: FormatText,
		Output: &buf,
		Name:   "hearty",
	})

	if logger.GetLevel() != LevelError {
		t.Errorf("level = %v, want %v", logger.GetLevel(), LevelError)
	}
	if logger.GetName() != "hearty" {
		t.Errorf("name = %v, want hearty", logger.GetName())
	}

	logger.Error("boom")
	if !strings.Contains(buf.String(), "{hearty} boom") {
		t.Errorf("output = %q, want name and message", buf.String())
	}
}

func TestWithMethodsDoNotModifyOriginal(t *testing.T) {
	logger, buf := newBufferLogger(LevelInfo, FormatText)

	derived := logger.
		WithLevel(LevelDebug).
		WithName("timex").
		WithField("pattern", "isoDate").
		WithCorrelationID("cid-1")

	if derived == logger {
		t.Fatal("With* should return a new logger instance")
	}
	if logger.GetLevel() != LevelInfo {
		t.Error("WithLevel() modified the original logger")
	}
	if len(logger.contextFields) != 0 {
		t.Error("WithField() modified the original logger")
	}

	derived.Debug("resolved")
	out := buf.String()
	for _, want := range []string{"[DBG]", "{timex}", "(cid=cid-1)", "resolved", "pattern=isoDate"} {
		if !strings.Contains(out, want) {
			t.Errorf("output %q missing %q", out, want)
		}
	}
}

func TestLevelFiltering(t *testing.T) {
	tests := []struct {
		name    string
		level   Level
		logFunc func(*Logger)
		want    bool
	}{
		{"debug filtered at info", LevelInfo, func(l *Logger) { l.Debug("x") }, false},
		{"trace filtered at debug", LevelDebug, func(l *Logger) { l.Trace("x") }, false},
		{"info passes at info", LevelInfo, func(l *Logger) { l.Info("x") }, true},
		{"warn passes at info", LevelInfo, func(l *Logger) { l.Warn("x") }, true},
		{"error passes at warn", LevelWarn, func(l *Logger) { l.Error("x") }, true},
		{"info filtered at error", LevelError, func(l *Logger) { l.Info("x") }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, buf := newBufferLogger(tt.level, FormatJSON)
			tt.logFunc(logger)
			if got := buf.Len() > 0; got != tt.want {
				t.Errorf("logged = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsLevelEnabled(t *testing.T) {
	logger, _ := newBufferLogger(LevelWarn, FormatJSON)

	if logger.IsLevelEnabled(LevelDebug) {
		t.Error("debug should be disabled at warn")
	}
	if !logger.IsLevelEnabled(LevelError) {
		t.Error("error should be enabled at warn")
	}
}

func TestNop(t *testing.T) {
	logger := Nop()
	for l := LevelTrace; l <= LevelError; l++ {
		if logger.IsLevelEnabled(l) {
			t.Errorf("Nop() enables %v", l)
		}
	}
	logger.Error("discarded")
}

func TestErrorWithErr(t *testing.T) {
	logger, buf := newBufferLogger(LevelInfo, FormatJSON)
	logger.ErrorWithErr("load failed", errors.New("no such file"))

	var decoded map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("json.Unmarshal() error = %v", err)
	}
	if decoded["error"] != "no such file" {
		t.Errorf("error = %v, want no such file", decoded["error"])
	}
	if decoded["level"] != "error" {
		t.Errorf("level = %v, want error", decoded["level"])
	}
}

// inputError mimics a domain error that keeps its structured cause behind Unwrap
type inputError struct {
	input string
	err   *herror.Error
}

func (e *inputError) Error() string { return "cannot parse " + e.input }
func (e *inputError) Unwrap() error { return e.err }

func TestLogError(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		wantLevel string
		wantCode  interface{}
	}{
		{
			name:      "low severity logs at info",
			err:       herror.New("invalid date").WithCode(herror.CodeInvalidDate),
			wantLevel: "info",
			wantCode:  "INVALID_DATE",
		},
		{
			name:      "high severity logs at error",
			err:       herror.New("bad config").WithCode(herror.CodeInvalidConfig),
			wantLevel: "error",
			wantCode:  "INVALID_CONFIG",
		},
		{
			name:      "medium severity logs at warn",
			err:       herror.New("odd"),
			wantLevel: "warn",
			wantCode:  "UNKNOWN",
		},
		{
			name:      "wrapped structured error",
			err:       fmt.Errorf("parse argument: %w", herror.New("invalid date").WithCode(herror.CodeInvalidDate)),
			wantLevel: "info",
			wantCode:  "INVALID_DATE",
		},
		{
			name: "domain error unwrapping to a structured error",
			err: &inputError{input: "10/21/2018", err: herror.New("invalid date").
				WithCode(herror.CodeInvalidDate).
				WithOperation("timex.StrToDate")},
			wantLevel: "info",
			wantCode:  "INVALID_DATE",
		},
		{
			name:      "plain error logs at error",
			err:       errors.New("plain"),
			wantLevel: "error",
			wantCode:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, buf := newBufferLogger(LevelTrace, FormatJSON)
			logger.LogError(tt.err)

			var decoded map[string]interface{}
			if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
				t.Fatalf("json.Unmarshal() error = %v", err)
			}
			if decoded["level"] != tt.wantLevel {
				t.Errorf("level = %v, want %v", decoded["level"], tt.wantLevel)
			}
			if decoded["error_code"] != tt.wantCode {
				t.Errorf("error_code = %v, want %v", decoded["error_code"], tt.wantCode)
			}
		})
	}

	logger, buf := newBufferLogger(LevelTrace, FormatJSON)
	logger.LogError(nil)
	if buf.Len() != 0 {
		t.Error("LogError(nil) should not log")
	}
}

func TestDefaultLogger(t *testing.T) {
	original := GetDefault()
	defer SetDefault(original)

	var buf bytes.Buffer
	SetDefault(NewWithConfig(Config{Level: LevelInfo, Format: FormatText, Output: &buf}))
	SetDefault(nil)

	Info("via default")
	if !strings.Contains(buf.String(), "via default") {
		t.Errorf("default logger output = %q", buf.String())
	}
}
