package game

// Play applies an action to the board in place and returns the board
// for chaining. It is the caller's responsibility to have obtained
// the action from LegalActions on this exact position; Play does not
// re-validate legality.
func (b *Board) Play(action Action) *Board {
	if len(b.path) == 0 {
		b.pushHistory()
	}

	origin := action.Origin
	dest := action.Destination()

	if action.Direction != DirStay {
		b.cells[origin.X][origin.Y] = Empty
		b.cells[dest.X][dest.Y] = b.toMove
	}

	if action.Capture.IsCapture() {
		b.extendChain(origin, dest, action.Direction)
		b.sweep(origin, action.Direction, action.Capture)
	} else {
		b.path = nil
		b.restrictedSquare = nil
		b.toMove = b.toMove.Opponent()
	}

	return b
}

// extendChain records the chain path and, from the second hop onward,
// forbids the square one step beyond the destination along the hop's
// direction (origin + 2*delta), so the piece cannot carry straight on.
// Moving back to the origin is already excluded by the path. The first
// hop never sets a restricted square: see DESIGN.md.
func (b *Board) extendChain(origin, dest Square, dir Dir) {
	if len(b.path) == 0 {
		b.path = append(b.path, origin, dest)
		return
	}

	dx, dy := dir.Delta()
	b.restrictedSquare = &Square{origin.X + 2*dx, origin.Y + 2*dy}
	b.path = append(b.path, dest)
}

// sweep flips the contiguous line of enemy pieces captured by this
// action, stopping at the first friendly piece, empty square, or edge.
func (b *Board) sweep(origin Square, dir Dir, capture CaptureKind) {
	dx, dy := dir.Delta()

	var cur Square
	var stepX, stepY int
	if capture == CaptureApproach {
		cur = Square{origin.X + 2*dx, origin.Y + 2*dy}
		stepX, stepY = dx, dy
	} else {
		cur = Square{origin.X - dx, origin.Y - dy}
		stepX, stepY = -dx, -dy
	}

	enemy := b.toMove.Opponent()
	for b.InBounds(cur.X, cur.Y) && b.At(cur.X, cur.Y) == enemy {
		b.cells[cur.X][cur.Y] = Empty
		cur = Square{cur.X + stepX, cur.Y + stepY}
	}
}
