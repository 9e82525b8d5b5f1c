package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCandidateDirectionsIncludesStayOnlyInChain(t *testing.T) {
	require.NotContains(t, candidateDirections(0, 0, false), DirStay)
	require.Contains(t, candidateDirections(0, 0, true), DirStay)
}

func TestIsStrongParity(t *testing.T) {
	require.True(t, isStrong(0, 0))
	require.False(t, isStrong(0, 1))
	require.True(t, isStrong(1, 1))
}

func TestDeltaIsNonzeroExceptForStay(t *testing.T) {
	for _, d := range allDirs {
		dx, dy := d.Delta()
		require.NotEqual(t, [2]int{0, 0}, [2]int{dx, dy}, "%s should have a nonzero offset", d)
	}
	dx, dy := DirStay.Delta()
	require.Equal(t, 0, dx)
	require.Equal(t, 0, dy)
}
