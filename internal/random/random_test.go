package random

import (
	"github.com/stretchr/testify/require"
	"testing"
)

func TestLetters(t *testing.T) {
	s, err := Letters(20)
	require.NoError(t, err)
	require.Len(t, s, 20)
	for _, r := range s {
		require.Contains(t, allowedLetters, r)
	}
}

func TestIndex(t *testing.T) {
	require.Equal(t, 0, Index(0))
	require.Equal(t, 0, Index(1))
	for range 100 {
		i := Index(2)
		require.GreaterOrEqual(t, i, 0)
		require.Less(t, i, 2)
	}
}
