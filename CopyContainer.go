package mili

// CopyContainer drains the source container's traversal range into the
// destination through the destination's insertion semantics: appended for
// sequence kinds, deduplicated for the unique-key-set kind.
//
// The copy is purely additive; the destination is neither cleared nor
// validated beforehand. Source and destination must be distinct container
// instances, self-copy is unsupported.
func CopyContainer[E any](src Traverser[E], dst Inserter[E]) {
	for pos, end := src.Begin(), src.End(); !pos.Equal(end); pos = pos.Next() {
		dst.Insert(pos.Value())
	}
}
