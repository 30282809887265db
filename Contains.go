package mili

// Contains reports whether the container holds an element equal to element.
// It is defined as "Find would succeed", implemented as a direct scan so that
// the boolean question costs no error value handling.
//
// For container kinds with a native containment primitive use that primitive
// through the Membership capability instead; the outcome must be the same
// for every input, only the lookup cost differs.
func Contains[E comparable](c Traverser[E], element E) bool {
	for pos, end := c.Begin(), c.End(); !pos.Equal(end); pos = pos.Next() {
		if pos.Value() == element {
			return true
		}
	}
	return false
}

// ContainsKey reports whether the mapping holds an association for key,
// using the mapping's native lookup primitive.
func ContainsKey[K comparable, V any](m KeyLookup[K, V], key K) bool {
	_, ok := m.Get(key)
	return ok
}
