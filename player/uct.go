package player

import (
	"fanorona/game"
	"fanorona/searcher"
)

// UCTPlayer delegates choose_action to a UCT search engine. UCT's
// root-depth-only selection has no meaningful visit policy to report,
// so it always returns the zero policy.
type UCTPlayer struct {
	engine *searcher.UCT
}

// NewUCTPlayer wraps a configured UCT engine as a Player.
func NewUCTPlayer(engine *searcher.UCT) *UCTPlayer {
	return &UCTPlayer{engine: engine}
}

func (p *UCTPlayer) ChooseAction(board *game.Board) (game.Action, [game.ActionSpaceSize]float64, error) {
	action, _, err := p.engine.ChooseAction(board)
	return action, [game.ActionSpaceSize]float64{}, err
}
