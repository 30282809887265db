package mili

// Error is a string based type that allows you to declare error values for your packages with the `const` keyword.
type Error string

// Error implement the error interface
func (err Error) Error() string { return string(err) }

const (
	// ErrNotFound is returned by the signaling lookup variants
	// when no element matches the lookup target.
	// It is the only error kind this package produces.
	ErrNotFound Error = "element not found"
)
