// Package sorting implements the ordering of listing records.
package sorting

import (
	"cmp"
	"slices"
	"strings"

	"github.com/desertwitch/bestls/internal/schema"
)

// Sort orders the entries in place by the given key. The sort is stable, so
// entries comparing equal keep their relative order.
//
// Names compare byte-wise, sizes ascending by their raw length. Dates compare
// lexicographically on their formatted text, which is not chronological
// across weekdays and months.
func Sort(entries []*schema.Entry, key schema.SortKey) {
	slices.SortStableFunc(entries, compareFunc(key))
}

// Processor returns a [schema.BatchProcessor] sorting a batch by the given key.
func Processor(key schema.SortKey) schema.BatchProcessor[*schema.Entry] {
	return func(entries []*schema.Entry) ([]*schema.Entry, bool) {
		Sort(entries, key)

		return entries, true
	}
}

func compareFunc(key schema.SortKey) func(a, b *schema.Entry) int {
	switch key {
	case schema.SortBySize:
		return func(a, b *schema.Entry) int {
			return cmp.Compare(a.SizeBytes, b.SizeBytes)
		}

	case schema.SortByDate:
		return func(a, b *schema.Entry) int {
			return strings.Compare(a.Modified, b.Modified)
		}

	case schema.SortByName:
		return compareNames

	default:
		return compareNames
	}
}

func compareNames(a, b *schema.Entry) int {
	return strings.Compare(a.Name, b.Name)
}
