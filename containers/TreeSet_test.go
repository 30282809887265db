package containers_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hemmingway/mili/containers"
)

func TestTreeSet(t *testing.T) {
	t.Parallel()

	t.Run(`construction folds duplicates and orders the elements`, func(t *testing.T) {
		s := containers.NewTreeSet(3, 1, 2, 1)
		require.Equal(t, []int{1, 2, 3}, s.Values())
		require.Equal(t, 3, s.Size())
	})

	t.Run(`an empty set has coinciding begin and end positions`, func(t *testing.T) {
		s := containers.NewTreeSet[string]()
		require.True(t, s.Begin().Equal(s.End()))
	})

	t.Run(`#Insert of a present element leaves the cardinality unchanged`, func(t *testing.T) {
		s := containers.NewTreeSet(1, 2)

		require.Equal(t, 2, s.Insert(2))
		require.Equal(t, 2, s.Size())

		require.Equal(t, 3, s.Insert(3))
		require.Equal(t, 3, s.Size())
	})

	t.Run(`#Contains answers membership`, func(t *testing.T) {
		s := containers.NewTreeSet(`a`, `b`)
		require.True(t, s.Contains(`a`))
		require.False(t, s.Contains(`c`))
	})

	t.Run(`positions walk the elements in element order`, func(t *testing.T) {
		s := containers.NewTreeSet(2, 3, 1)

		pos := s.Begin()
		require.Equal(t, 1, pos.Value())
		require.Equal(t, 2, pos.Next().Value())
		require.Equal(t, 3, pos.Next().Next().Value())
		require.True(t, pos.Next().Next().Next().Equal(s.End()))
	})
}
