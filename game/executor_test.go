package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPlayApproachCaptureKeepsTurn(t *testing.T) {
	b := emptyBoard(5)
	b.cells[2][0] = X
	b.cells[2][2] = O

	action := Action{Origin: Square{2, 0}, Direction: DirRight, Capture: CaptureApproach}
	b.Play(action)

	require.Equal(t, Empty, b.At(2, 0))
	require.Equal(t, X, b.At(2, 1))
	require.Equal(t, Empty, b.At(2, 2), "captured piece should be swept")
	require.Equal(t, X, b.ToMove(), "turn is retained after a capture")
	require.True(t, b.InChain())
}

func TestPlayWithdrawalSweepsBehind(t *testing.T) {
	b := emptyBoard(5)
	b.cells[2][1] = O
	b.cells[2][2] = X

	action := Action{Origin: Square{2, 2}, Direction: DirRight, Capture: CaptureWithdrawal}
	b.Play(action)

	require.Equal(t, Empty, b.At(2, 1), "withdrawal captures behind the origin")
	require.Equal(t, X, b.At(2, 3))
}

func TestPlayPaikaPassesTurn(t *testing.T) {
	b := emptyBoard(5)
	b.cells[0][0] = X

	b.Play(Action{Origin: Square{0, 0}, Direction: DirRight, Capture: CapturePaika})

	require.Equal(t, O, b.ToMove())
	require.False(t, b.InChain())
}

func TestExtendChainSetsRestrictedSquareFromSecondHopOnward(t *testing.T) {
	b := emptyBoard(5)
	b.cells[0][0] = X
	b.cells[0][2] = O
	b.cells[2][1] = O

	first := Action{Origin: Square{0, 0}, Direction: DirRight, Capture: CaptureApproach}
	b.Play(first)
	require.Nil(t, b.RestrictedSquare(), "first hop must not set a restricted square")

	second := Action{Origin: Square{0, 1}, Direction: DirDown, Capture: CaptureApproach}
	b.Play(second)
	require.NotNil(t, b.RestrictedSquare())
	require.Equal(t, Square{2, 1}, *b.RestrictedSquare())
}

func TestEndChainAction(t *testing.T) {
	b := emptyBoard(5)
	b.cells[0][0] = X
	b.path = []Square{{0, 0}, {0, 1}}

	b.Play(Action{Origin: Square{0, 1}, Direction: DirStay, Capture: CaptureEndChain})

	require.Equal(t, O, b.ToMove())
	require.False(t, b.InChain())
	require.Nil(t, b.RestrictedSquare())
}
