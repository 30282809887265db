package fixtures_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hemmingway/mili/fixtures"
)

func TestRandomIntn(t *testing.T) {
	for i := 0; i < 1024; i++ {
		n := fixtures.RandomIntn(42)
		require.True(t, 0 <= n)
		require.True(t, n < 42)
	}
}

func TestRandomIntByRange(t *testing.T) {
	for i := 0; i < 1024; i++ {
		n := fixtures.RandomIntByRange(24, 42)
		require.True(t, 24 <= n)
		require.True(t, n < 42)
	}

	t.Run(`when the range collapses to a single value`, func(t *testing.T) {
		require.Equal(t, 42, fixtures.RandomIntByRange(42, 42))
	})
}
