package evaluator

import (
	"testing"

	"fanorona/game"

	"github.com/stretchr/testify/require"
)

func TestEncodeShapeMatchesBoardWidth(t *testing.T) {
	b, err := game.NewBoard(9)
	require.NoError(t, err)

	enc := Encode(b)
	require.Equal(t, 9, enc.Width)
	require.Len(t, enc.Data, Planes*game.Rows*9)
}

func TestEncodeCurrentPositionPlanesMatchBoard(t *testing.T) {
	b, err := game.NewBoard(5)
	require.NoError(t, err)

	enc := Encode(b)
	width := 5
	planeSize := game.Rows * width
	for x := 0; x < game.Rows; x++ {
		for y := 0; y < width; y++ {
			mine := enc.Data[0*planeSize+x*width+y] == 1
			theirs := enc.Data[1*planeSize+x*width+y] == 1
			switch b.At(x, y) {
			case b.ToMove():
				require.True(t, mine)
				require.False(t, theirs)
			case b.ToMove().Opponent():
				require.False(t, mine)
				require.True(t, theirs)
			default:
				require.False(t, mine)
				require.False(t, theirs)
			}
		}
	}
}

func TestEncodeConstantSideToMovePlane(t *testing.T) {
	b, err := game.NewBoard(5)
	require.NoError(t, err)
	enc := Encode(b)

	planeSize := game.Rows * 5
	base := 10 * planeSize
	for i := 0; i < planeSize; i++ {
		require.Zero(t, enc.Data[base+i], "X to move should encode a zero constant plane")
	}
}

func TestLegalMaskMarksOnlyLegalIndices(t *testing.T) {
	b, err := game.NewBoard(5)
	require.NoError(t, err)
	legal := b.LegalActions()

	mask := LegalMask(legal)
	for _, a := range legal {
		require.Equal(t, float32(1), mask[a.Index()])
	}
}
