// Package containers adapts general-purpose container implementations into
// the capability contracts of the mili package.
//
// The four container kinds are backed by gods (github.com/emirpasic/gods):
// ArrayList for the ordered sequence, LinkedList for the linked sequence,
// TreeSet for the unique-key set and TreeMap for the key-to-value mapping.
// Slice backs the ordered sequence kind with a plain Go slice for call sites
// that have no gods container at hand.
//
// Every adapter hands out mili.Position values that are ordinal: a reference
// to the adapter plus an index into its traversal order. Positions are
// value-copyable and compare by index, and they perform no synchronization
// with mutation of the adapted container. Reading the value at an ordinal
// costs a walk for the linked and tree backed kinds.
package containers

import (
	"cmp"

	"github.com/emirpasic/gods/utils"
)

// comparatorOf bridges an ordered element type to the comparator contract of
// the gods tree-backed containers.
func comparatorOf[E cmp.Ordered]() utils.Comparator {
	return func(a, b interface{}) int {
		return cmp.Compare(a.(E), b.(E))
	}
}
