package evaluator

import "fanorona/game"

// Planes is the fixed plane count of the position encoding: 2 planes
// for the current position, 2 for each of the 4 historical positions,
// and 1 constant side-to-move plane.
const Planes = 11

// EncodedTensor is a flattened plane-major [Planes x game.Rows x
// width] tensor: index = plane*Rows*width + row*width + col.
type EncodedTensor struct {
	Width int
	Data  []float32
}

// Encode produces the 11-plane position stack the evaluator consumes.
func Encode(b *game.Board) EncodedTensor {
	width := b.Width
	planeSize := game.Rows * width
	data := make([]float32, Planes*planeSize)

	me := b.ToMove()
	opponent := me.Opponent()

	writePlane(data, 0, planeSize, width, gridOf(b, me))
	writePlane(data, 1, planeSize, width, gridOf(b, opponent))

	history := b.History()
	for h := 0; h < 4; h++ {
		myPlane := 2 + 2*h
		oppPlane := 3 + 2*h
		if h >= len(history) {
			continue // zero planes: fewer than 4 historical positions exist
		}
		writePlane(data, myPlane, planeSize, width, gridFromSnapshot(history[h], width, me))
		writePlane(data, oppPlane, planeSize, width, gridFromSnapshot(history[h], width, opponent))
	}

	constantValue := float32(0.0)
	if me == game.O {
		constantValue = 1.0
	}
	base := 10 * planeSize
	for i := 0; i < planeSize; i++ {
		data[base+i] = constantValue
	}

	return EncodedTensor{Width: width, Data: data}
}

func gridOf(b *game.Board, side game.CellState) func(x, y int) bool {
	return func(x, y int) bool { return b.At(x, y) == side }
}

func gridFromSnapshot(snapshot [][]game.CellState, width int, side game.CellState) func(x, y int) bool {
	return func(x, y int) bool { return snapshot[x][y] == side }
}

func writePlane(data []float32, plane, planeSize, width int, occupied func(x, y int) bool) {
	base := plane * planeSize
	for x := 0; x < game.Rows; x++ {
		for y := 0; y < width; y++ {
			if occupied(x, y) {
				data[base+x*width+y] = 1
			}
		}
	}
}

// LegalMask returns a 0/1 mask over the fixed action space, 1 at every
// index a legal action maps to.
func LegalMask(legalActions []game.Action) [game.ActionSpaceSize]float32 {
	var mask [game.ActionSpaceSize]float32
	for _, a := range legalActions {
		mask[a.Index()] = 1
	}
	return mask
}
