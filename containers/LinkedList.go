package containers

import (
	"github.com/emirpasic/gods/lists/doublylinkedlist"

	"github.com/hemmingway/mili"
)

var (
	_ mili.Traverser[int] = &LinkedList[int]{}
	_ mili.Inserter[int]  = &LinkedList[int]{}
)

// LinkedList is the linked sequence container kind,
// a typed façade over gods' doubly linked list.
// Insertion order is preserved and duplicates are kept.
type LinkedList[E any] struct {
	list *doublylinkedlist.List
}

// NewLinkedList returns a LinkedList holding the given elements in order.
func NewLinkedList[E any](elements ...E) *LinkedList[E] {
	l := &LinkedList[E]{list: doublylinkedlist.New()}
	for _, element := range elements {
		l.list.Add(element)
	}
	return l
}

// Insert appends element at the logical end of the sequence
// and returns the just-appended element.
func (l *LinkedList[E]) Insert(element E) E {
	l.list.Add(element)
	return element
}

// Begin returns the position of the first element.
func (l *LinkedList[E]) Begin() mili.Position[E] {
	return linkedListPosition[E]{list: l, index: 0}
}

// End returns the position one past the last element.
func (l *LinkedList[E]) End() mili.Position[E] {
	return linkedListPosition[E]{list: l, index: l.list.Size()}
}

// Size returns the number of held elements.
func (l *LinkedList[E]) Size() int {
	return l.list.Size()
}

// Values returns the held elements in traversal order.
func (l *LinkedList[E]) Values() []E {
	values := make([]E, 0, l.list.Size())
	for _, v := range l.list.Values() {
		values = append(values, v.(E))
	}
	return values
}

type linkedListPosition[E any] struct {
	list  *LinkedList[E]
	index int
}

func (p linkedListPosition[E]) Next() mili.Position[E] {
	return linkedListPosition[E]{list: p.list, index: p.index + 1}
}

func (p linkedListPosition[E]) Prev() mili.Position[E] {
	return linkedListPosition[E]{list: p.list, index: p.index - 1}
}

func (p linkedListPosition[E]) Value() E {
	v, _ := p.list.list.Get(p.index)
	return v.(E)
}

func (p linkedListPosition[E]) Equal(oth mili.Position[E]) bool {
	o, ok := oth.(linkedListPosition[E])
	return ok && p.list == o.list && p.index == o.index
}
