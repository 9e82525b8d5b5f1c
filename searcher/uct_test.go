package searcher

import (
	"testing"
	"time"

	"fanorona/game"
	"fanorona/metrics"

	"github.com/stretchr/testify/require"
)

func TestUCTChooseActionReturnsLegalMove(t *testing.T) {
	b, err := game.NewBoard(5)
	require.NoError(t, err)

	uct := NewUCT(WithSearchDuration(20*time.Millisecond), WithSeed(1), WithUCTMetrics(metrics.NewCollector()))
	action, metrics, err := uct.ChooseAction(b)
	require.NoError(t, err)
	require.Positive(t, metrics.Episodes)

	require.Contains(t, b.LegalActions(), action)
}

func TestUCTChooseActionNeverMutatesInputBoard(t *testing.T) {
	b, err := game.NewBoard(5)
	require.NoError(t, err)
	before := b.Hash()

	uct := NewUCT(WithSearchDuration(10*time.Millisecond))
	_, _, err = uct.ChooseAction(b)
	require.NoError(t, err)

	require.Equal(t, before, b.Hash())
}

func TestWithExplorationIgnoresOutOfRangeValues(t *testing.T) {
	uct := NewUCT(WithExploration(10))
	require.Equal(t, DefaultExploration, uct.exploration)

	uct = NewUCT(WithExploration(1.0))
	require.Equal(t, 1.0, uct.exploration)
}

func TestWithGoroutinesRecordsButDoesNotParallelize(t *testing.T) {
	uct := NewUCT()
	require.Equal(t, 1, uct.goroutines, "default is a single sequential search")

	uct = NewUCT(WithGoroutines(8))
	require.Equal(t, 8, uct.goroutines)

	uct = NewUCT(WithGoroutines(0))
	require.Equal(t, 1, uct.goroutines, "non-positive values are ignored")
}

func TestBestByWinRatePicksHighestRate(t *testing.T) {
	arena := NewArena()
	root := arena.NewRoot(game.X)
	low := arena.NewChild(root, game.Action{Origin: game.Square{X: 0, Y: 0}}, game.X)
	high := arena.NewChild(root, game.Action{Origin: game.Square{X: 1, Y: 1}}, game.X)

	arena.Get(low).Visits = 10
	arena.Get(low).AccumulatedValue = 2
	arena.Get(high).Visits = 10
	arena.Get(high).AccumulatedValue = 8

	best, err := bestByWinRate(arena, root)
	require.NoError(t, err)
	require.Equal(t, arena.Get(high).Action, best)
}

func TestBestByWinRateErrorsWhenNoChildVisited(t *testing.T) {
	arena := NewArena()
	root := arena.NewRoot(game.X)
	arena.NewChild(root, game.Action{}, game.X)

	_, err := bestByWinRate(arena, root)
	require.ErrorIs(t, err, ErrDecisionBudgetExhausted)
}

func TestBestByWinRateErrorsWithNoChildren(t *testing.T) {
	arena := NewArena()
	root := arena.NewRoot(game.X)

	_, err := bestByWinRate(arena, root)
	require.ErrorIs(t, err, ErrNoLegalActions)
}
