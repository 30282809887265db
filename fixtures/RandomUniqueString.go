package fixtures

import (
	uuid "github.com/satori/go.uuid"
)

// RandomUniqueString returns a random string value that is guaranteed to
// differ from every other value this function returned before,
// for test cases that need an element known to be absent from a container.
func RandomUniqueString() string {
	return uuid.NewV4().String()
}
