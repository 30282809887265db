package containers_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hemmingway/mili/containers"
)

func TestArrayList(t *testing.T) {
	t.Parallel()

	t.Run(`construction keeps the given order`, func(t *testing.T) {
		l := containers.NewArrayList(3, 1, 2)
		require.Equal(t, []int{3, 1, 2}, l.Values())
		require.Equal(t, 3, l.Size())
	})

	t.Run(`an empty list has coinciding begin and end positions`, func(t *testing.T) {
		l := containers.NewArrayList[int]()
		require.True(t, l.Begin().Equal(l.End()))
	})

	t.Run(`positions step through the elements in order`, func(t *testing.T) {
		l := containers.NewArrayList(`a`, `b`)

		pos := l.Begin()
		require.Equal(t, `a`, pos.Value())

		pos = pos.Next()
		require.Equal(t, `b`, pos.Value())

		require.True(t, pos.Next().Equal(l.End()))
		require.Equal(t, `a`, pos.Prev().Value())
	})

	t.Run(`positions of distinct lists never compare equal`, func(t *testing.T) {
		a := containers.NewArrayList(1)
		b := containers.NewArrayList(1)
		require.False(t, a.Begin().Equal(b.Begin()))
	})

	t.Run(`#Insert appends and keeps duplicates`, func(t *testing.T) {
		l := containers.NewArrayList(1)
		require.Equal(t, 1, l.Insert(1))
		require.Equal(t, []int{1, 1}, l.Values())
	})
}
