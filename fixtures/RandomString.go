package fixtures

import (
	"github.com/Pallinder/go-randomdata"
)

// RandomString returns a pseudo-random human readable string value.
func RandomString() string {
	return randomdata.SillyName()
}
