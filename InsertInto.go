package mili

// InsertInto places element into the container through its Inserter
// capability. It is the statement form of Inserter.Insert for call sites
// that have no use for the returned element.
func InsertInto[E any](c Inserter[E], element E) {
	c.Insert(element)
}
