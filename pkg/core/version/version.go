// ============================================================================
// hearty - Date and Time Helpers
// ============================================================================
//
// Package:     version
// Description: Central version management for the library and the CLI
// Author:      msto63
// Created:     2025-12-06
// License:     MIT
// ============================================================================

package version

import (
	"fmt"
	"runtime"
)

// Version constants for hearty components
const (
	// Platform version
	Platform = "1.2.0"

	// Component versions
	Timex   = "1.2.0"
	Config  = "1.1.0"
	Logging = "1.0.0"
	CLI     = "1.2.0"
)

// Build metadata, set with -ldflags "-X github.com/msto63/hearty/pkg/core/version.Commit=..."
var (
	Commit    = "unknown"
	BuildDate = "unknown"
)

// ComponentVersion returns the version for a given component name
func ComponentVersion(name string) string {
	switch name {
	case "timex":
		return Timex
	case "config":
		return Config
	case "logging":
		return Logging
	case "cli", "hearty":
		return CLI
	default:
		return Platform
	}
}

// String returns the one-line version shown by "hearty version"
func String() string {
	return fmt.Sprintf("hearty %s (commit %s, built %s, %s %s/%s)",
		Platform, Commit, BuildDate, runtime.Version(), runtime.GOOS, runtime.GOARCH)
}
