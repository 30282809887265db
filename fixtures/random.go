// Package fixtures provides random test data for the container operation
// tests. This is primary and only used for testing.
package fixtures

import (
	"math/rand"
	"time"
)

var rnd = rand.New(rand.NewSource(time.Now().Unix()))
