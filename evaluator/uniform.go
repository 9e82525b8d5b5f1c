package evaluator

import "fanorona/game"

// uniformEvaluator is the trivial oracle every search must still play
// legally under: a flat prior over legal actions and a value of 0.
type uniformEvaluator struct{}

// NewUniform returns an Evaluator with a uniform policy and zero value.
func NewUniform() Evaluator {
	return uniformEvaluator{}
}

func (uniformEvaluator) Evaluate(board *game.Board, legalActions []game.Action) (Evaluation, error) {
	var eval Evaluation
	if len(legalActions) == 0 {
		return eval, nil
	}
	p := 1.0 / float64(len(legalActions))
	for _, a := range legalActions {
		eval.Policy[a.Index()] = p
	}
	return eval, nil
}
