package containers

import (
	"cmp"

	"github.com/emirpasic/gods/maps/treemap"

	"github.com/hemmingway/mili"
)

var (
	_ mili.KeyLookup[string, int]        = &TreeMap[string, int]{}
	_ mili.Traverser[Entry[string, int]] = &TreeMap[string, int]{}
)

// Entry is a single key-value association of a TreeMap.
// Traversing a TreeMap yields its entries in key order, so a mapping can be
// drained with CopyContainer into any sequence of entries.
type Entry[K cmp.Ordered, V any] struct {
	Key   K
	Value V
}

// TreeMap is the key-to-value mapping container kind,
// a typed façade over gods' red-black tree backed map.
// It is not an insert destination; associations are made with Put.
type TreeMap[K cmp.Ordered, V any] struct {
	m *treemap.Map
}

// NewTreeMap returns an empty TreeMap.
func NewTreeMap[K cmp.Ordered, V any]() *TreeMap[K, V] {
	return &TreeMap[K, V]{m: treemap.NewWith(comparatorOf[K]())}
}

// Put associates value with key, replacing any previous association.
func (m *TreeMap[K, V]) Put(key K, value V) {
	m.m.Put(key, value)
}

// Get is the mapping's native lookup primitive.
func (m *TreeMap[K, V]) Get(key K) (V, bool) {
	v, ok := m.m.Get(key)
	if !ok {
		var zero V
		return zero, false
	}
	return v.(V), true
}

// Begin returns the position of the entry with the smallest key.
func (m *TreeMap[K, V]) Begin() mili.Position[Entry[K, V]] {
	return treeMapPosition[K, V]{m: m, index: 0}
}

// End returns the position one past the entry with the largest key.
func (m *TreeMap[K, V]) End() mili.Position[Entry[K, V]] {
	return treeMapPosition[K, V]{m: m, index: m.m.Size()}
}

// Size returns the number of associations.
func (m *TreeMap[K, V]) Size() int {
	return m.m.Size()
}

// Keys returns the keys in key order.
func (m *TreeMap[K, V]) Keys() []K {
	keys := make([]K, 0, m.m.Size())
	for _, k := range m.m.Keys() {
		keys = append(keys, k.(K))
	}
	return keys
}

// Entries returns the associations in key order.
func (m *TreeMap[K, V]) Entries() []Entry[K, V] {
	entries := make([]Entry[K, V], 0, m.m.Size())
	for _, k := range m.m.Keys() {
		v, _ := m.m.Get(k)
		entries = append(entries, Entry[K, V]{Key: k.(K), Value: v.(V)})
	}
	return entries
}

type treeMapPosition[K cmp.Ordered, V any] struct {
	m     *TreeMap[K, V]
	index int
}

func (p treeMapPosition[K, V]) Next() mili.Position[Entry[K, V]] {
	return treeMapPosition[K, V]{m: p.m, index: p.index + 1}
}

func (p treeMapPosition[K, V]) Prev() mili.Position[Entry[K, V]] {
	return treeMapPosition[K, V]{m: p.m, index: p.index - 1}
}

func (p treeMapPosition[K, V]) Value() Entry[K, V] {
	k := p.m.m.Keys()[p.index].(K)
	v, _ := p.m.m.Get(k)
	return Entry[K, V]{Key: k, Value: v.(V)}
}

func (p treeMapPosition[K, V]) Equal(oth mili.Position[Entry[K, V]]) bool {
	o, ok := oth.(treeMapPosition[K, V])
	return ok && p.m == o.m && p.index == o.index
}
