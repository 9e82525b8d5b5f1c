package evaluator

import (
	"testing"

	"fanorona/game"

	"github.com/stretchr/testify/require"
)

func TestUniformEvaluatorFlatPolicy(t *testing.T) {
	b, err := game.NewBoard(5)
	require.NoError(t, err)
	legal := b.LegalActions()
	require.NotEmpty(t, legal)

	eval, err := NewUniform().Evaluate(b, legal)
	require.NoError(t, err)
	require.Zero(t, eval.Value)

	want := 1.0 / float64(len(legal))
	for _, a := range legal {
		require.InDelta(t, want, eval.Prior(a), 1e-9)
	}
}

func TestUniformEvaluatorNoLegalActions(t *testing.T) {
	eval, err := NewUniform().Evaluate(nil, nil)
	require.NoError(t, err)
	require.Zero(t, eval.Value)
	for i := 0; i < game.ActionSpaceSize; i++ {
		require.Zero(t, eval.Policy[i])
	}
}
