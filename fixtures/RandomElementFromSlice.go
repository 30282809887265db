package fixtures

// RandomElementFromSlice returns a pseudo-randomly chosen element of the slice.
// It panics if the slice is empty.
func RandomElementFromSlice[E any](slice []E) E {
	return slice[rnd.Intn(len(slice))]
}
