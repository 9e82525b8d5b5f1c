package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func emptyBoard(width int) *Board {
	cells := make([][]CellState, Rows)
	for r := range cells {
		cells[r] = make([]CellState, width)
	}
	return &Board{Width: width, cells: cells, toMove: X}
}

func TestNarrowOpeningPositionIsAllCaptures(t *testing.T) {
	b, err := NewBoard(5)
	require.NoError(t, err)

	actions := b.LegalActions()
	require.NotEmpty(t, actions)
	for _, a := range actions {
		require.True(t, a.Capture.IsCapture(), "expected only capturing actions on the 5x5 opening position, got %s", a)
	}
}

func TestWideOpeningPositionIsAllCaptures(t *testing.T) {
	b, err := NewBoard(9)
	require.NoError(t, err)

	actions := b.LegalActions()
	require.NotEmpty(t, actions)
	for _, a := range actions {
		require.True(t, a.Capture.IsCapture(), "expected only capturing actions on the 5x9 opening position, got %s", a)
	}
}

func TestApproachCaptureIsGenerated(t *testing.T) {
	b := emptyBoard(5)
	b.cells[2][0] = X
	b.cells[2][2] = O

	actions := b.LegalActions()
	require.Contains(t, actions, Action{Origin: Square{2, 0}, Direction: DirRight, Capture: CaptureApproach})
}

func TestWithdrawalCaptureIsGenerated(t *testing.T) {
	b := emptyBoard(5)
	b.cells[2][1] = O
	b.cells[2][2] = X

	actions := b.LegalActions()
	require.Contains(t, actions, Action{Origin: Square{2, 2}, Direction: DirRight, Capture: CaptureWithdrawal})
}

func TestMandatoryCaptureFiltersPaika(t *testing.T) {
	b := emptyBoard(5)
	// A capturing piece at (2,0) and an unrelated free piece at (0,0).
	b.cells[2][0] = X
	b.cells[2][2] = O
	b.cells[0][0] = X

	actions := b.LegalActions()
	require.NotEmpty(t, actions)
	for _, a := range actions {
		require.True(t, a.Capture.IsCapture(), "expected only capturing actions, got %s", a)
	}
}

func TestWeakIntersectionHasNoDiagonals(t *testing.T) {
	b := emptyBoard(5)
	b.cells[0][1] = X // (0,1): 0+1=1, odd -> weak

	for _, a := range b.actionsFrom(Square{0, 1}) {
		require.False(t, a.Direction.IsDiagonal(), "weak square produced diagonal action %s", a)
	}
}

func TestStrongIntersectionAllowsDiagonals(t *testing.T) {
	b := emptyBoard(5)
	b.cells[1][1] = X // (1,1): even -> strong

	sawDiagonal := false
	for _, a := range b.actionsFrom(Square{1, 1}) {
		if a.Direction.IsDiagonal() {
			sawDiagonal = true
		}
	}
	require.True(t, sawDiagonal)
}

func TestInChainRestrictsOriginToChainTip(t *testing.T) {
	b := emptyBoard(5)
	b.cells[2][2] = X
	b.cells[0][0] = X // a second X elsewhere, must be excluded mid-chain
	b.path = []Square{Square{2, 0}, Square{2, 2}}

	for _, a := range b.LegalActions() {
		require.Equal(t, Square{2, 2}, a.Origin)
	}
}

func TestRestrictedSquareBlocksDestinationButAllowsEndChain(t *testing.T) {
	b := emptyBoard(5)
	b.cells[2][2] = X          // chaining piece, on its second hop
	b.cells[2][0] = O          // captured by a left-direction approach, keeping a capture mandatory
	b.cells[2][4] = O          // would make a right-direction approach legal if (2,3) weren't restricted
	b.path = []Square{{2, 0}, {2, 2}}
	b.restrictedSquare = &Square{2, 3} // as extendChain sets it after a rightward hop into (2,2): one step further right

	actions := b.LegalActions()

	for _, a := range actions {
		require.NotEqual(t, DirRight, a.Direction, "a move into the restricted square must not be generated: %s", a)
	}
	require.Contains(t, actions, Action{Origin: Square{2, 2}, Direction: DirStay, Capture: CaptureEndChain})
	require.Contains(t, actions, Action{Origin: Square{2, 2}, Direction: DirLeft, Capture: CaptureApproach})
}
