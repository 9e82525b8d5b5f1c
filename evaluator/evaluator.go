// Package evaluator implements the pluggable (prior policy, value)
// oracle consumed by the PUCT search engine. The interface has no ML
// dependency; concrete evaluators (uniform, ONNX-backed) live in this
// package alongside it, so the searcher package compiles and tests
// without ever linking against a model runtime.
package evaluator

import "fanorona/game"

// Evaluation is the (policy, value) pair an Evaluator returns for one position.
type Evaluation struct {
	// Policy is a distribution over the fixed 1800-entry action space
	// (game.ActionSpaceSize), already restricted to legal actions:
	// entries outside legalActions are zero.
	Policy [game.ActionSpaceSize]float64
	// Value is the expected outcome for the side to move, in [-1, 1].
	Value float64
}

// Evaluator is the contract every evaluator implementation must
// satisfy: given a position and its legal actions, return a masked
// policy distribution and a scalar value estimate for the side to move.
type Evaluator interface {
	Evaluate(board *game.Board, legalActions []game.Action) (Evaluation, error)
}

// Prior looks up the prior probability an Evaluation's policy assigns
// to a specific action.
func (e Evaluation) Prior(action game.Action) float64 {
	return e.Policy[action.Index()]
}
