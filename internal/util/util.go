// Package util has small generic helpers used across the Tale packages.
package util

import (
	"sort"
)

// SortBy returns a copy of the given slice sorted with the given comparison
// function. lt must report whether its first argument sorts before its
// second.
func SortBy[E any](items []E, lt func(left E, right E) bool) []E {
	if len(items) < 2 {
		return items
	}

	sorted := make([]E, len(items))
	copy(sorted, items)

	sort.Slice(sorted, func(i, j int) bool {
		return lt(sorted[i], sorted[j])
	})

	return sorted
}

// SliceIndexOf returns the index of the first occurrence of item in sl, or -1
// when it is not present.
func SliceIndexOf[E comparable](item E, sl []E) int {
	for i := range sl {
		if sl[i] == item {
			return i
		}
	}
	return -1
}

// SliceRemove returns a copy of sl with the first occurrence of item removed.
// The given slice is unchanged.
func SliceRemove[E comparable](item E, sl []E) []E {
	updated := make([]E, 0, len(sl))
	removed := false
	for i := range sl {
		if !removed && sl[i] == item {
			removed = true
			continue
		}
		updated = append(updated, sl[i])
	}
	return updated
}
