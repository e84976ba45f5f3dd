package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFindIndex(t *testing.T) {
	require.Equal(t, 1, FindIndex([]string{"d3", "c4", "c4"}, "c4"))
	require.Equal(t, -1, FindIndex([]string{"d3"}, "a1"))
	require.Equal(t, -1, FindIndex(nil, 0))
	require.True(t, Contains([]int{3, 5}, 5))
	require.False(t, Contains([]int{3, 5}, 4))
}
