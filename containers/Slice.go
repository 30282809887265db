package containers

import (
	"github.com/hemmingway/mili"
)

var (
	_ mili.Traverser[int] = &Slice[int]{}
	_ mili.Inserter[int]  = &Slice[int]{}
)

// Slice backs the ordered sequence container kind with a plain Go slice,
// for call sites that start from native slice data.
type Slice[E any] struct {
	elements []E
}

// NewSlice returns a Slice holding the given elements in order.
func NewSlice[E any](elements ...E) *Slice[E] {
	return &Slice[E]{elements: append([]E(nil), elements...)}
}

// Insert appends element at the logical end of the sequence
// and returns the just-appended element.
func (s *Slice[E]) Insert(element E) E {
	s.elements = append(s.elements, element)
	return element
}

// Begin returns the position of the first element.
func (s *Slice[E]) Begin() mili.Position[E] {
	return slicePosition[E]{slice: s, index: 0}
}

// End returns the position one past the last element.
func (s *Slice[E]) End() mili.Position[E] {
	return slicePosition[E]{slice: s, index: len(s.elements)}
}

// Size returns the number of held elements.
func (s *Slice[E]) Size() int {
	return len(s.elements)
}

// Values returns a copy of the held elements in traversal order.
func (s *Slice[E]) Values() []E {
	return append([]E(nil), s.elements...)
}

type slicePosition[E any] struct {
	slice *Slice[E]
	index int
}

func (p slicePosition[E]) Next() mili.Position[E] {
	return slicePosition[E]{slice: p.slice, index: p.index + 1}
}

func (p slicePosition[E]) Prev() mili.Position[E] {
	return slicePosition[E]{slice: p.slice, index: p.index - 1}
}

func (p slicePosition[E]) Value() E {
	return p.slice.elements[p.index]
}

func (p slicePosition[E]) Equal(oth mili.Position[E]) bool {
	o, ok := oth.(slicePosition[E])
	return ok && p.slice == o.slice && p.index == o.index
}
