package game

import "fmt"

// CaptureKind classifies what an action does to enemy pieces.
type CaptureKind int

const (
	// CapturePaika is a non-capturing move, legal only when no capture exists.
	CapturePaika CaptureKind = -1
	// CaptureEndChain is the "stay" action ending an in-progress capture chain.
	CaptureEndChain CaptureKind = 0
	// CaptureWithdrawal removes a line of enemies behind the moving piece.
	CaptureWithdrawal CaptureKind = 1
	// CaptureApproach removes a line of enemies ahead of the destination.
	CaptureApproach CaptureKind = 2
)

func (c CaptureKind) String() string {
	switch c {
	case CapturePaika:
		return "paika"
	case CaptureEndChain:
		return "end-chain"
	case CaptureWithdrawal:
		return "withdrawal"
	case CaptureApproach:
		return "approach"
	default:
		return "invalid"
	}
}

// IsCapture reports whether executing this kind keeps the turn (tar >= 1).
func (c CaptureKind) IsCapture() bool {
	return c >= CaptureWithdrawal
}

// Square is a (row, col) board coordinate.
type Square struct {
	X, Y int
}

// Action is the engine's move representation: an origin square, a
// direction, and the capture disposition of that direction.
type Action struct {
	Origin    Square
	Direction Dir
	Capture   CaptureKind
}

// IsStochastic always reports false: Fanorona is a fully deterministic
// game with no chance moves.
func (a Action) IsStochastic() bool {
	return false
}

// Destination returns the square the acting piece would occupy after
// this action. For DirStay it equals Origin.
func (a Action) Destination() Square {
	dx, dy := a.Direction.Delta()
	return Square{a.Origin.X + dx, a.Origin.Y + dy}
}

func (a Action) String() string {
	if a.Direction == DirStay {
		return fmt.Sprintf("(%d,%d) stay", a.Origin.X, a.Origin.Y)
	}
	return fmt.Sprintf("(%d,%d) %s %s", a.Origin.X, a.Origin.Y, a.Direction, a.Capture)
}

// Encoding shape of the fixed evaluator action space: X_MAX x Y_MAX x
// DIR x TAR, with Y_MAX intentionally larger than any supported board
// width so the same encoder serves both variants.
const (
	EncodeXMax = 5
	EncodeYMax = 10
	EncodeDir  = 9
	EncodeTar  = 4
	// ActionSpaceSize is the flat length of the policy/mask tensors.
	ActionSpaceSize = EncodeXMax * EncodeYMax * EncodeDir * EncodeTar
)

// Index computes the flat action-space index used by the evaluator's
// policy logits, legal mask, and MCTS visit-policy output.
func (a Action) Index() int {
	dir := int(a.Direction) - 1
	tar := int(a.Capture) + 1
	return a.Origin.X*EncodeYMax*EncodeDir*EncodeTar +
		a.Origin.Y*EncodeDir*EncodeTar +
		dir*EncodeTar +
		tar
}
