package mili_test

import (
	"github.com/hemmingway/mili"
	"github.com/hemmingway/mili/containers"
)

// intContainer is the capability sum the shared test scenarios need from a
// concrete container kind.
type intContainer interface {
	mili.Traverser[int]
	mili.Inserter[int]
	Size() int
	Values() []int
}

// sequenceKinds hold the container kinds that append at the logical end and
// keep duplicates in insertion order.
func sequenceKinds() map[string]func(values ...int) intContainer {
	return map[string]func(values ...int) intContainer{
		`ArrayList`:  func(values ...int) intContainer { return containers.NewArrayList(values...) },
		`LinkedList`: func(values ...int) intContainer { return containers.NewLinkedList(values...) },
		`Slice`:      func(values ...int) intContainer { return containers.NewSlice(values...) },
	}
}

// containerKinds hold every kind that can act as an int element container.
func containerKinds() map[string]func(values ...int) intContainer {
	kinds := sequenceKinds()
	kinds[`TreeSet`] = func(values ...int) intContainer { return containers.NewTreeSet(values...) }
	return kinds
}
