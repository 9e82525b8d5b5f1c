package player

import (
	"fanorona/game"
	"fanorona/searcher"
)

// PUCTPlayer delegates choose_action to a PUCT search engine and
// reports its root visit policy, used for self-play training data.
type PUCTPlayer struct {
	engine *searcher.PUCT
}

// NewPUCTPlayer wraps a configured PUCT engine as a Player.
func NewPUCTPlayer(engine *searcher.PUCT) *PUCTPlayer {
	return &PUCTPlayer{engine: engine}
}

func (p *PUCTPlayer) ChooseAction(board *game.Board) (game.Action, [game.ActionSpaceSize]float64, error) {
	result, _, err := p.engine.ChooseAction(board)
	if err != nil {
		return game.Action{}, [game.ActionSpaceSize]float64{}, err
	}
	return result.Action, result.VisitPolicy, nil
}
