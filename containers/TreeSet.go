package containers

import (
	"cmp"

	"github.com/emirpasic/gods/sets/treeset"

	"github.com/hemmingway/mili"
)

var (
	_ mili.Traverser[int]  = &TreeSet[int]{}
	_ mili.Inserter[int]   = &TreeSet[int]{}
	_ mili.Membership[int] = &TreeSet[int]{}
)

// TreeSet is the unique-key-set container kind,
// a typed façade over gods' red-black tree backed set.
// Traversal order is the element order.
type TreeSet[E cmp.Ordered] struct {
	set *treeset.Set
}

// NewTreeSet returns a TreeSet holding the given elements, duplicates folded.
func NewTreeSet[E cmp.Ordered](elements ...E) *TreeSet[E] {
	s := &TreeSet[E]{set: treeset.NewWith(comparatorOf[E]())}
	for _, element := range elements {
		s.set.Add(element)
	}
	return s
}

// Insert places element into the set through the set's native primitive.
// Inserting an element equal to a present one leaves the set unchanged;
// it is a structural no-op, not an error.
// The returned element is the inserted one, which by set equality is also
// the pre-existing one whenever the insert deduplicated.
func (s *TreeSet[E]) Insert(element E) E {
	s.set.Add(element)
	return element
}

// Contains is the set's native containment primitive.
// It agrees with a linear scan over the set's traversal range for every
// input, it only answers faster.
func (s *TreeSet[E]) Contains(element E) bool {
	return s.set.Contains(element)
}

// Begin returns the position of the smallest element.
func (s *TreeSet[E]) Begin() mili.Position[E] {
	return treeSetPosition[E]{set: s, index: 0}
}

// End returns the position one past the largest element.
func (s *TreeSet[E]) End() mili.Position[E] {
	return treeSetPosition[E]{set: s, index: s.set.Size()}
}

// Size returns the set cardinality.
func (s *TreeSet[E]) Size() int {
	return s.set.Size()
}

// Values returns the held elements in element order.
func (s *TreeSet[E]) Values() []E {
	values := make([]E, 0, s.set.Size())
	for _, v := range s.set.Values() {
		values = append(values, v.(E))
	}
	return values
}

type treeSetPosition[E cmp.Ordered] struct {
	set   *TreeSet[E]
	index int
}

func (p treeSetPosition[E]) Next() mili.Position[E] {
	return treeSetPosition[E]{set: p.set, index: p.index + 1}
}

func (p treeSetPosition[E]) Prev() mili.Position[E] {
	return treeSetPosition[E]{set: p.set, index: p.index - 1}
}

func (p treeSetPosition[E]) Value() E {
	return p.set.set.Values()[p.index].(E)
}

func (p treeSetPosition[E]) Equal(oth mili.Position[E]) bool {
	o, ok := oth.(treeSetPosition[E])
	return ok && p.set == o.set && p.index == o.index
}
