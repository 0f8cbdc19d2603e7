// Package names normalizes and orders participant display names.
package names

import (
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// Normalize trims and collapses whitespace and converts to NFC, so names typed on
// different keyboards compare equal byte for byte.
func Normalize(name string) string {
	return norm.NFC.String(strings.Join(strings.Fields(name), " "))
}

// Key folds case on top of Normalize. Two names with the same key are the same
// person as far as typing them goes.
func Key(name string) string {
	return cases.Fold().String(Normalize(name))
}

// SortBy orders items by a display name, case-insensitively and accent-aware.
// Items with equal keys keep their relative order.
func SortBy[T any](items []T, key func(T) string) {
	// Collators keep internal buffers, one per call
	c := collate.New(language.Und, collate.IgnoreCase)
	sort.SliceStable(items, func(i, j int) bool {
		return c.CompareString(key(items[i]), key(items[j])) < 0
	})
}
