// File: mapx.go
// Title: Core Map Utilities
// Description: Generic helpers for copying, merging and filtering maps and
//              for listing their keys in a stable order.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with comprehensive map utilities
// - 2026-10-18 v0.3.0: Reduced to the helpers used by preset tables, SortedKeys

package mapx

import (
	"cmp"
	"slices"
)

// Keys returns a slice of all keys from the map in unspecified order
func Keys[K comparable, V any](m map[K]V) []K {
	if m == nil {
		return nil
	}

	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	return keys
}

// SortedKeys returns the keys of m in ascending order
func SortedKeys[K cmp.Ordered, V any](m map[K]V) []K {
	keys := Keys(m)
	slices.Sort(keys)
	return keys
}

// FilterKeys returns a new map containing only entries where the key matches the predicate
func FilterKeys[K comparable, V any](m map[K]V, predicate func(K) bool) map[K]V {
	if m == nil {
		return nil
	}

	result := make(map[K]V)
	for k, v := range m {
		if predicate(k) {
			result[k] = v
		}
	}
	return result
}

// Merge creates a new map by merging multiple maps.
// Later maps override values from earlier maps for duplicate keys.
func Merge[K comparable, V any](maps ...map[K]V) map[K]V {
	totalSize := 0
	for _, m := range maps {
		totalSize += len(m)
	}

	result := make(map[K]V, totalSize)
	for _, m := range maps {
		for k, v := range m {
			result[k] = v
		}
	}
	return result
}

// Clone creates a shallow copy of the map
func Clone[K comparable, V any](m map[K]V) map[K]V {
	if m == nil {
		return nil
	}

	clone := make(map[K]V, len(m))
	for k, v := range m {
		clone[k] = v
	}
	return clone
}
