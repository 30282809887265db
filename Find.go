package mili

// Find returns the first element of the container that equals target,
// scanning the traversal range from begin to end.
// When no element matches, it fails with ErrNotFound.
//
// The container is only read, never mutated.
// Container kinds with a native by-key lookup should be searched with
// FindByKey instead of a scan over their values.
func Find[E comparable](c Traverser[E], target E) (E, error) {
	for pos, end := c.Begin(), c.End(); !pos.Equal(end); pos = pos.Next() {
		if v := pos.Value(); v == target {
			return v, nil
		}
	}
	var zero E
	return zero, ErrNotFound
}

// FindByKey returns the value associated with key in the mapping,
// using the mapping's native lookup primitive.
// When the key is absent, it fails with ErrNotFound.
func FindByKey[K comparable, V any](m KeyLookup[K, V], key K) (V, error) {
	v, ok := m.Get(key)
	if !ok {
		var zero V
		return zero, ErrNotFound
	}
	return v, nil
}
