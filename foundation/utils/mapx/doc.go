// File: doc.go
// Title: Package Documentation for mapx
// Description: Package mapx provides the generic map helpers used for
//              preset tables.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core map utilities
// - 2025-01-26 v0.2.0: Enhanced documentation with comprehensive structure and examples
// - 2026-10-18 v0.3.0: Reduced to copy, merge, filter and key listing

// Package mapx provides the generic map helpers used for preset tables:
// copying, merging, filtering and deterministic key order.
//
// All functions return new maps or slices and never modify their input.
// A nil input map yields nil, except for Merge which always returns a
// non-nil map.
//
//	extra := mapx.FilterKeys(cfg.Presets, func(name string) bool {
//		return !timex.IsBuiltinPreset(name)
//	})
//	for _, name := range mapx.SortedKeys(extra) {
//		fmt.Println(name, extra[name])
//	}
package mapx
