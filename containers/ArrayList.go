package containers

import (
	"github.com/emirpasic/gods/lists/arraylist"

	"github.com/hemmingway/mili"
)

var (
	_ mili.Traverser[int] = &ArrayList[int]{}
	_ mili.Inserter[int]  = &ArrayList[int]{}
)

// ArrayList is the ordered sequence container kind,
// a typed façade over gods' array-backed list.
// Insertion order is preserved and duplicates are kept.
type ArrayList[E any] struct {
	list *arraylist.List
}

// NewArrayList returns an ArrayList holding the given elements in order.
func NewArrayList[E any](elements ...E) *ArrayList[E] {
	l := &ArrayList[E]{list: arraylist.New()}
	for _, element := range elements {
		l.list.Add(element)
	}
	return l
}

// Insert appends element at the logical end of the sequence
// and returns the just-appended element.
func (l *ArrayList[E]) Insert(element E) E {
	l.list.Add(element)
	return element
}

// Begin returns the position of the first element.
func (l *ArrayList[E]) Begin() mili.Position[E] {
	return arrayListPosition[E]{list: l, index: 0}
}

// End returns the position one past the last element.
func (l *ArrayList[E]) End() mili.Position[E] {
	return arrayListPosition[E]{list: l, index: l.list.Size()}
}

// Size returns the number of held elements.
func (l *ArrayList[E]) Size() int {
	return l.list.Size()
}

// Values returns the held elements in traversal order.
func (l *ArrayList[E]) Values() []E {
	values := make([]E, 0, l.list.Size())
	for _, v := range l.list.Values() {
		values = append(values, v.(E))
	}
	return values
}

type arrayListPosition[E any] struct {
	list  *ArrayList[E]
	index int
}

func (p arrayListPosition[E]) Next() mili.Position[E] {
	return arrayListPosition[E]{list: p.list, index: p.index + 1}
}

func (p arrayListPosition[E]) Prev() mili.Position[E] {
	return arrayListPosition[E]{list: p.list, index: p.index - 1}
}

func (p arrayListPosition[E]) Value() E {
	v, _ := p.list.list.Get(p.index)
	return v.(E)
}

func (p arrayListPosition[E]) Equal(oth mili.Position[E]) bool {
	o, ok := oth.(arrayListPosition[E])
	return ok && p.list == o.list && p.index == o.index
}
