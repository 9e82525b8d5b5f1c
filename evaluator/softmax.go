package evaluator

import (
	"math"

	"fanorona/game"
)

// maskedSoftmax turns raw network logits into a probability
// distribution restricted to legal actions: illegal entries are
// excluded from the normalization and left at zero in the result.
func maskedSoftmax(logits []float32, legalActions []game.Action) [game.ActionSpaceSize]float64 {
	var out [game.ActionSpaceSize]float64
	if len(legalActions) == 0 {
		return out
	}

	maxLogit := math.Inf(-1)
	for _, a := range legalActions {
		if v := float64(logits[a.Index()]); v > maxLogit {
			maxLogit = v
		}
	}

	sum := 0.0
	for _, a := range legalActions {
		v := math.Exp(float64(logits[a.Index()]) - maxLogit)
		out[a.Index()] = v
		sum += v
	}
	for _, a := range legalActions {
		out[a.Index()] /= sum
	}
	return out
}
