package mili

// Position is a value-copyable location inside a container's traversal range.
// A Position is taken from a container at a single instant and holds no
// synchronization with it afterwards: mutating the source container after a
// Position was taken invalidates the Position without any protection from
// this package.
//
// Stepping a Position backward past the logical start, forward past the
// logical end, or reading the value at the end position is a caller contract
// violation and its behavior is undefined.
type Position[E any] interface {
	// Next returns the position one step forward.
	Next() Position[E]
	// Prev returns the position one step backward.
	Prev() Position[E]
	// Value returns the element located at the position.
	Value() E
	// Equal reports whether the two positions point to the same location.
	Equal(oth Position[E]) bool
}

// Traverser is the minimal traversal contract a container kind must expose:
// a begin/end position pair taken at a single instant.
// Begin equals End exactly when the container is empty.
type Traverser[E any] interface {
	Begin() Position[E]
	End() Position[E]
}

// Inserter is the insertable handle: a capability object bound to exactly one
// container instance, exposing insertion and nothing else. Holding a concrete
// container as an Inserter value intentionally narrows its surface, so that
// generic insert-only algorithms cannot come to depend on kind-specific
// behavior such as iteration or removal.
//
// Sequence kinds append at the logical end and always keep duplicates.
// The unique-key-set kind inserts through the set's own primitive; inserting
// an element equal to a present one leaves the set unchanged and is not an
// error. An Inserter does not take ownership of the bound container, it
// mutates the instance in place and is valid only as long as that instance.
type Inserter[E any] interface {
	// Insert places element into the bound container and returns the element
	// that the container now holds for it: the just-appended element for
	// sequence kinds, and for the set kind the inserted element or the equal
	// pre-existing one when the insert was a structural no-op.
	Insert(element E) E
}

// Membership is the native containment capability of container kinds that
// support a direct membership test, such as the unique-key-set.
// For any container exposing it, Contains must agree with a linear equality
// scan over the container's traversal range for every input.
type Membership[E any] interface {
	Contains(element E) bool
}

// KeyLookup is the native by-key lookup capability of the key-value-mapping
// kind. The ok result is false when the key is absent.
type KeyLookup[K comparable, V any] interface {
	Get(key K) (V, bool)
}
