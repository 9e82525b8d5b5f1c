package game

import "fanorona/utils"

// LegalActions computes the complete legal-action set for the side to
// move, applying the mandatory-capture filter and any in-progress
// chain continuation.
func (b *Board) LegalActions() []Action {
	side := b.toMove
	origins := b.originSet(side)

	var actions []Action
	for _, origin := range origins {
		if b.At(origin.X, origin.Y) != side {
			continue
		}
		actions = append(actions, b.actionsFrom(origin)...)
	}

	return filterMandatoryCapture(actions, b.InChain())
}

// originSet is every square of the board, or, mid-chain, just the
// chaining piece's current square.
func (b *Board) originSet(side CellState) []Square {
	if b.InChain() {
		return []Square{b.path[len(b.path)-1]}
	}

	squares := make([]Square, 0, Rows*b.Width)
	for x := 0; x < Rows; x++ {
		for y := 0; y < b.Width; y++ {
			squares = append(squares, Square{x, y})
		}
	}
	return squares
}

func (b *Board) actionsFrom(origin Square) []Action {
	var actions []Action
	side := b.At(origin.X, origin.Y)

	for _, dir := range candidateDirections(origin.X, origin.Y, b.InChain()) {
		if dir == DirStay {
			actions = append(actions, Action{Origin: origin, Direction: dir, Capture: CaptureEndChain})
			continue
		}

		dest := origin.step(dir)
		if !b.InBounds(dest.X, dest.Y) {
			continue
		}
		if b.restrictedSquare != nil && dest == *b.restrictedSquare {
			continue
		}
		if utils.FindIndex(b.path, dest) != -1 {
			continue
		}
		if b.At(dest.X, dest.Y) != Empty {
			continue
		}

		dx, dy := dir.Delta()
		forward := dest.step(dir)
		backward := Square{origin.X - dx, origin.Y - dy}

		captured := false
		if b.InBounds(forward.X, forward.Y) && b.At(forward.X, forward.Y) == side.Opponent() {
			actions = append(actions, Action{Origin: origin, Direction: dir, Capture: CaptureApproach})
			captured = true
		}
		if b.InBounds(backward.X, backward.Y) && b.At(backward.X, backward.Y) == side.Opponent() {
			actions = append(actions, Action{Origin: origin, Direction: dir, Capture: CaptureWithdrawal})
			captured = true
		}
		if !captured {
			actions = append(actions, Action{Origin: origin, Direction: dir, Capture: CapturePaika})
		}
	}
	return actions
}

// step returns the square reached from s by moving one step in dir.
func (s Square) step(dir Dir) Square {
	dx, dy := dir.Delta()
	return Square{s.X + dx, s.Y + dy}
}

// filterMandatoryCapture drops non-capturing actions once a capture
// exists, enforcing Fanorona's mandatory-capture rule.
func filterMandatoryCapture(actions []Action, inChain bool) []Action {
	if inChain {
		out := make([]Action, 0, len(actions))
		for _, a := range actions {
			if a.Capture != CapturePaika {
				out = append(out, a)
			}
		}
		return out
	}

	hasCapture := false
	for _, a := range actions {
		if a.Capture.IsCapture() {
			hasCapture = true
			break
		}
	}
	if !hasCapture {
		return actions
	}

	out := make([]Action, 0, len(actions))
	for _, a := range actions {
		if a.Capture.IsCapture() {
			out = append(out, a)
		}
	}
	return out
}
