package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestActionIndexIsWithinBoundsAndUnique(t *testing.T) {
	seen := make(map[int]Action)
	kinds := []CaptureKind{CapturePaika, CaptureEndChain, CaptureWithdrawal, CaptureApproach}
	for x := 0; x < EncodeXMax; x++ {
		for y := 0; y < 5; y++ {
			for _, dir := range allDirs {
				for _, k := range kinds {
					a := Action{Origin: Square{x, y}, Direction: dir, Capture: k}
					idx := a.Index()
					require.GreaterOrEqual(t, idx, 0)
					require.Less(t, idx, ActionSpaceSize)
					if other, ok := seen[idx]; ok {
						require.Equal(t, other, a, "index collision between %+v and %+v", other, a)
					}
					seen[idx] = a
				}
			}
		}
	}
}

func TestOpponentPanicsOnEmpty(t *testing.T) {
	require.Panics(t, func() { Empty.Opponent() })
}

func TestDestinationForStayIsOrigin(t *testing.T) {
	a := Action{Origin: Square{1, 1}, Direction: DirStay, Capture: CaptureEndChain}
	require.Equal(t, a.Origin, a.Destination())
}
