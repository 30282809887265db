package mili

// Cursor is a detachable traversal object.
// It owns value copies of a current and an end position, both taken from the
// source container at construction time, and keeps no back-reference to the
// container itself. A Cursor therefore outlives the call that created it and
// any iterator object of the source container, but it inherits the validity
// rules of its positions: mutating the source container after the Cursor was
// built voids any guarantee about it.
type Cursor[E any] struct {
	current Position[E]
	end     Position[E]
}

// NewCursor builds a Cursor over the half-open range [begin, end).
// A Cursor over an empty range is exhausted from the start.
func NewCursor[E any](begin, end Position[E]) *Cursor[E] {
	return &Cursor[E]{current: begin, end: end}
}

// CursorOver builds a Cursor spanning the container's full traversal range.
func CursorOver[E any](c Traverser[E]) *Cursor[E] {
	return NewCursor(c.Begin(), c.End())
}

// Forward moves the cursor one step towards the end position.
// The cursor becomes exhausted exactly when the new current position equals
// the bound end position. Stepping forward past exhaustion is a caller
// contract violation.
func (c *Cursor[E]) Forward() {
	c.current = c.current.Next()
}

// Backward moves the cursor one step away from the end position.
// Stepping backward past the logical start of the range is a caller contract
// violation.
func (c *Cursor[E]) Backward() {
	c.current = c.current.Prev()
}

// Value returns the element at the current position.
// It is valid only while the cursor is not exhausted.
func (c *Cursor[E]) Value() E {
	return c.current.Value()
}

// Done reports whether the cursor is exhausted. It has no side effect.
func (c *Cursor[E]) Done() bool {
	return c.current.Equal(c.end)
}

// Equal compares only the current positions of the two cursors.
// Two cursors over different ranges that happen to stand at the same
// location compare equal, mirroring plain position equality.
func (c *Cursor[E]) Equal(oth *Cursor[E]) bool {
	return c.current.Equal(oth.current)
}

// Copy returns an independent cursor at the same current position with the
// same bound end. Advancing one does not move the other.
func (c *Cursor[E]) Copy() *Cursor[E] {
	return &Cursor[E]{current: c.current, end: c.end}
}
