package searcher

import (
	"math"
	"time"

	"fanorona/game"
	"fanorona/meta"
	"fanorona/metrics"

	"golang.org/x/exp/rand"

	"github.com/rs/zerolog/log"
)

const (
	// DefaultExploration is the UCT exploration constant c.
	DefaultExploration = 1.41
	minExploration     = 0.1
	maxExploration     = 2.0

	// WinReward and LossReward are the terminal rollout rewards from
	// the perspective of the node crediting them.
	WinReward  = 1.0
	LossReward = 0.0
)

// UCTOption configures a UCT engine.
type UCTOption func(*UCT)

// WithExploration overrides the UCT exploration constant c. Values
// outside the documented valid range [0.1, 2.0] are ignored.
func WithExploration(c float64) UCTOption {
	return func(u *UCT) {
		if c >= minExploration && c <= maxExploration {
			u.exploration = c
		}
	}
}

// WithSearchDuration sets the wall-clock deadline for a single choose_action call.
func WithSearchDuration(d time.Duration) UCTOption {
	return func(u *UCT) {
		if d > 0 {
			u.duration = d
		}
	}
}

// WithSeed fixes the UCT engine's rollout RNG seed, so the sequence of
// random rollout moves is reproducible. The search is bounded by wall
// clock time, so the number of rollouts, and with it the chosen action,
// can still differ between runs with the same seed and board.
func WithSeed(seed uint64) UCTOption {
	return func(u *UCT) {
		u.rng = rand.New(rand.NewSource(seed))
	}
}

// WithUCTMetrics attaches a live metrics collector instead of the default no-op.
func WithUCTMetrics(c metrics.Collector) UCTOption {
	return func(u *UCT) {
		if c != nil {
			u.metrics = c
		}
	}
}

// WithUCTVerbose enables debug logging of root statistics after each search.
func WithUCTVerbose() UCTOption {
	return func(u *UCT) { u.verbose = true }
}

// WithGoroutines sets the worker-goroutine count for a single
// choose_action call. This engine runs one search sequentially per
// call, so the value is recorded but otherwise unused; the knob is
// kept for parity with configurations that size a worker pool from it.
func WithGoroutines(n int) UCTOption {
	return func(u *UCT) {
		if n > 0 {
			u.goroutines = n
		}
	}
}

// UCT is a wall-clock-bounded, pure-rollout MCTS engine.
type UCT struct {
	exploration float64
	duration    time.Duration
	rng         *rand.Rand
	metrics     metrics.Collector
	verbose     bool
	goroutines  int
}

// NewUCT builds a UCT engine with the given options applied over sane defaults.
func NewUCT(options ...UCTOption) *UCT {
	u := &UCT{
		exploration: DefaultExploration,
		duration:    meta.DefaultUCTDuration,
		rng:         rand.New(rand.NewSource(1)),
		metrics:     metrics.NewNoopCollector(),
		goroutines:  1,
	}
	for _, opt := range options {
		opt(u)
	}
	return u
}

// ChooseAction runs UCT search from board and returns the best action
// found, along with search metrics. It never mutates board.
func (u *UCT) ChooseAction(board *game.Board) (game.Action, metrics.SearchMetrics, error) {
	rootPlayer := board.ToMove()
	arena := NewArena()
	root := arena.NewRoot(rootPlayer)

	legal := board.LegalActions()
	if len(legal) == 0 {
		return game.Action{}, metrics.SearchMetrics{}, ErrNoLegalActions
	}
	for _, action := range legal {
		arena.NewChild(root, action, rootPlayer)
	}

	u.metrics.Start()
	deadline := time.Now().Add(u.duration)
	for time.Now().Before(deadline) {
		u.iterate(arena, root, board)
		u.metrics.AddEpisode()
	}
	searchMetrics := u.metrics.Complete()

	best, err := bestByWinRate(arena, root)
	if err != nil {
		return game.Action{}, searchMetrics, err
	}

	if u.verbose {
		log.Debug().
			Int("episodes", int(searchMetrics.Episodes)).
			Str("chosen", best.String()).
			Msg("uct search complete")
	}

	return best, searchMetrics, nil
}

func (u *UCT) iterate(arena *Arena, root NodeHandle, board *game.Board) {
	child := u.selectRootChild(arena, root)
	simBoard := board.Copy()
	simBoard.Play(arena.Get(child).Action)
	winner := u.rollout(simBoard)
	backpropagate(arena, child, winner)
	u.metrics.AddFullPlayout()
}

// selectRootChild picks the root child maximizing UCT score; unvisited
// children score +Inf.
func (u *UCT) selectRootChild(arena *Arena, root NodeHandle) NodeHandle {
	rootNode := arena.Get(root)
	best := rootNode.Children[0]
	bestScore := math.Inf(-1)
	for _, child := range rootNode.Children {
		score := u.uctScore(arena.Get(child), rootNode.Visits)
		if score > bestScore {
			bestScore = score
			best = child
		}
	}
	return best
}

func (u *UCT) uctScore(child *Node, parentVisits int) float64 {
	if child.Visits == 0 {
		return math.Inf(1)
	}
	winRate := child.AccumulatedValue / float64(child.Visits)
	return winRate + u.exploration*math.Sqrt(math.Log(float64(parentVisits))/float64(child.Visits))
}

// rollout plays uniform-random legal moves from board until a winner
// is decided or the side to move has no legal actions.
func (u *UCT) rollout(board *game.Board) game.CellState {
	for {
		if board.IsTerminal() {
			return board.Winner()
		}
		actions := board.LegalActions()
		if len(actions) == 0 {
			return board.ToMove().Opponent()
		}
		board.Play(actions[u.rng.Intn(len(actions))])
	}
}

// backpropagate walks from leaf up to and including the root,
// incrementing visits and crediting wins to nodes whose Player matches
// the simulation winner.
func backpropagate(arena *Arena, leaf NodeHandle, winner game.CellState) {
	for h := leaf; ; {
		node := arena.Get(h)
		node.Visits++
		if node.Player == winner {
			node.AccumulatedValue += WinReward
		} else {
			node.AccumulatedValue += LossReward
		}
		if node.Parent == NoParent {
			return
		}
		h = node.Parent
	}
}

// bestByWinRate returns the root child with the highest wins/visits
// ratio. It errors if every child is unvisited.
func bestByWinRate(arena *Arena, root NodeHandle) (game.Action, error) {
	rootNode := arena.Get(root)
	if len(rootNode.Children) == 0 {
		return game.Action{}, ErrNoLegalActions
	}

	var best NodeHandle
	bestRate := math.Inf(-1)
	anyVisited := false
	for _, child := range rootNode.Children {
		node := arena.Get(child)
		if node.Visits == 0 {
			continue
		}
		anyVisited = true
		rate := node.AccumulatedValue / float64(node.Visits)
		if rate > bestRate {
			bestRate = rate
			best = child
		}
	}
	if !anyVisited {
		return game.Action{}, ErrDecisionBudgetExhausted
	}
	return arena.Get(best).Action, nil
}
