package game

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"
)

// Rows is fixed at 5 for both board variants; only the column count varies.
const Rows = 5

// MaxHistory bounds the prior-position history kept for the PUCT
// evaluator's encoding: the 4 most recent historical positions.
const MaxHistory = 4

// StateHash identifies a board position.
type StateHash uint64

// Board is the mutable Fanorona position: the cell grid plus the
// in-progress capture-chain continuation state.
type Board struct {
	Width  int
	cells  [][]CellState
	toMove CellState

	// path and restrictedSquare describe an in-progress
	// multi-capture. path is non-empty iff a chain is in progress.
	path             []Square
	restrictedSquare *Square

	// history holds up to MaxHistory prior grids, most recent first,
	// snapshotted whenever the turn passes. Used only by the PUCT
	// evaluator's position encoding.
	history [][][]CellState
}

// NewBoard constructs a board in the canonical opening position for
// the given width. Width must be 5 or 9; any other value is an
// invalid-construction error, fatal to the caller.
func NewBoard(width int) (*Board, error) {
	if width != 5 && width != 9 {
		return nil, fmt.Errorf("fanorona: unsupported board width %d, want 5 or 9", width)
	}

	cells := make([][]CellState, Rows)
	for r := range cells {
		cells[r] = make([]CellState, width)
	}
	for row := 0; row < Rows; row++ {
		for col := 0; col < width; col++ {
			switch {
			case row <= 1:
				cells[row][col] = X
			case row >= 3:
				cells[row][col] = O
			}
		}
	}

	if width == 5 {
		cells[2][0] = O
		cells[2][1] = X
		cells[2][2] = Empty
		cells[2][3] = O
		cells[2][4] = X
	} else {
		cells[2][0] = O
		cells[2][1] = X
		cells[2][2] = O
		cells[2][3] = X
		cells[2][4] = Empty
		cells[2][5] = O
		cells[2][6] = X
		cells[2][7] = O
		cells[2][8] = X
	}

	return &Board{
		Width:  width,
		cells:  cells,
		toMove: X,
	}, nil
}

// Copy returns a deep, independent copy of the board.
func (b *Board) Copy() *Board {
	cells := make([][]CellState, len(b.cells))
	for r, row := range b.cells {
		cells[r] = append([]CellState(nil), row...)
	}
	nb := &Board{
		Width:  b.Width,
		cells:  cells,
		toMove: b.toMove,
		path:   append([]Square(nil), b.path...),
	}
	if b.restrictedSquare != nil {
		sq := *b.restrictedSquare
		nb.restrictedSquare = &sq
	}
	nb.history = make([][][]CellState, len(b.history))
	for i, snap := range b.history {
		grid := make([][]CellState, len(snap))
		for r, row := range snap {
			grid[r] = append([]CellState(nil), row...)
		}
		nb.history[i] = grid
	}
	return nb
}

// At returns the occupant of (x, y).
func (b *Board) At(x, y int) CellState {
	return b.cells[x][y]
}

// InBounds reports whether (x, y) lies on the board.
func (b *Board) InBounds(x, y int) bool {
	return x >= 0 && x < Rows && y >= 0 && y < b.Width
}

// ToMove is the side whose turn it is to act.
func (b *Board) ToMove() CellState {
	return b.toMove
}

// Player names the side to move, for logging and CLI prompts.
func (b *Board) Player() string {
	return b.toMove.String()
}

// InChain reports whether a multi-capture is in progress.
func (b *Board) InChain() bool {
	return len(b.path) > 0
}

// Path returns the squares visited by the chaining piece this turn.
func (b *Board) Path() []Square {
	return append([]Square(nil), b.path...)
}

// RestrictedSquare returns the square forbidden as the next
// destination, or nil if there is none.
func (b *Board) RestrictedSquare() *Square {
	if b.restrictedSquare == nil {
		return nil
	}
	sq := *b.restrictedSquare
	return &sq
}

// History returns up to MaxHistory prior grids, most recent first.
func (b *Board) History() [][][]CellState {
	return b.history
}

// pieceCounts tallies pieces per side.
func (b *Board) pieceCounts() (xCount, oCount int) {
	for _, row := range b.cells {
		for _, c := range row {
			switch c {
			case X:
				xCount++
			case O:
				oCount++
			}
		}
	}
	return
}

// Winner returns the side with pieces remaining if the other side has
// none. It returns Empty both while the game is undecided and in the
// unreachable both-empty case; callers that need to tell those two
// apart should check Drawn(), which is true only for the latter.
func (b *Board) Winner() CellState {
	xCount, oCount := b.pieceCounts()
	switch {
	case xCount == 0 && oCount == 0:
		return Empty
	case xCount == 0:
		return O
	case oCount == 0:
		return X
	default:
		return Empty
	}
}

// Drawn reports whether both sides have been reduced to zero pieces,
// the one case where Winner's Empty result means a draw rather than
// an undecided, still-in-progress position. See DESIGN.md for this
// open-question resolution.
func (b *Board) Drawn() bool {
	xCount, oCount := b.pieceCounts()
	return xCount == 0 && oCount == 0
}

// IsTerminal reports whether one side has been eliminated.
func (b *Board) IsTerminal() bool {
	xCount, oCount := b.pieceCounts()
	return xCount == 0 || oCount == 0
}

// Hash returns a content hash of the position, including chain state.
func (b *Board) Hash() StateHash {
	hasher := fnv.New64a()
	binary.Write(hasher, binary.LittleEndian, int64(b.toMove))
	for _, row := range b.cells {
		for _, c := range row {
			binary.Write(hasher, binary.LittleEndian, int64(c))
		}
	}
	for _, sq := range b.path {
		binary.Write(hasher, binary.LittleEndian, int64(sq.X))
		binary.Write(hasher, binary.LittleEndian, int64(sq.Y))
	}
	if b.restrictedSquare != nil {
		binary.Write(hasher, binary.LittleEndian, int64(b.restrictedSquare.X))
		binary.Write(hasher, binary.LittleEndian, int64(b.restrictedSquare.Y))
	}
	return StateHash(hasher.Sum64())
}

func (b *Board) snapshotGrid() [][]CellState {
	grid := make([][]CellState, len(b.cells))
	for r, row := range b.cells {
		grid[r] = append([]CellState(nil), row...)
	}
	return grid
}

// pushHistory records the current grid as the newest historical
// position, evicting the oldest entry past MaxHistory.
func (b *Board) pushHistory() {
	b.history = append([][][]CellState{b.snapshotGrid()}, b.history...)
	if len(b.history) > MaxHistory {
		b.history = b.history[:MaxHistory]
	}
}
