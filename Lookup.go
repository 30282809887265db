package mili

// Lookup is the non-signaling variant of Find.
// It returns the first element equal to target and true,
// or the zero value and false when no element matches.
func Lookup[E comparable](c Traverser[E], target E) (E, bool) {
	for pos, end := c.Begin(), c.End(); !pos.Equal(end); pos = pos.Next() {
		if v := pos.Value(); v == target {
			return v, true
		}
	}
	var zero E
	return zero, false
}

// LookupByKey is the non-signaling variant of FindByKey.
func LookupByKey[K comparable, V any](m KeyLookup[K, V], key K) (V, bool) {
	return m.Get(key)
}
