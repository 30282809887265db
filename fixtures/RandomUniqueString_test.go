package fixtures_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hemmingway/mili/fixtures"
)

func TestRandomUniqueString(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 1024; i++ {
		v := fixtures.RandomUniqueString()
		_, ok := seen[v]
		require.False(t, ok)
		seen[v] = struct{}{}
	}
}
