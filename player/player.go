// Package player implements a uniform choose_action contract shared
// by a human, a UCT agent, and a PUCT agent.
package player

import "fanorona/game"

// Player is the contract the external game loop drives every turn.
// VisitPolicy is the MCTS root visit distribution over the fixed
// action space, used for training data collection; it is the zero
// value when the player has no such policy to report (a human, or a
// UCT agent, whose root-depth-only search has no comparable notion of
// visited actions beyond the immediate children already folded into
// its choice).
type Player interface {
	ChooseAction(board *game.Board) (game.Action, [game.ActionSpaceSize]float64, error)
}
