package containers_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hemmingway/mili/containers"
)

func TestSlice(t *testing.T) {
	t.Parallel()

	t.Run(`construction copies the given elements`, func(t *testing.T) {
		source := []int{1, 2, 3}
		s := containers.NewSlice(source...)

		source[0] = 42
		require.Equal(t, []int{1, 2, 3}, s.Values())
	})

	t.Run(`an empty slice has coinciding begin and end positions`, func(t *testing.T) {
		s := containers.NewSlice[int]()
		require.True(t, s.Begin().Equal(s.End()))
	})

	t.Run(`positions step through the elements in order`, func(t *testing.T) {
		s := containers.NewSlice(`a`, `b`)

		pos := s.Begin()
		require.Equal(t, `a`, pos.Value())
		require.Equal(t, `b`, pos.Next().Value())
		require.True(t, pos.Next().Next().Equal(s.End()))
	})

	t.Run(`#Insert appends and keeps duplicates`, func(t *testing.T) {
		s := containers.NewSlice(1)
		require.Equal(t, 1, s.Insert(1))
		require.Equal(t, []int{1, 1}, s.Values())
		require.Equal(t, 2, s.Size())
	})
}
