package searcher

import (
	"math"

	"fanorona/game"
	"fanorona/evaluator"
	"fanorona/meta"
	"fanorona/metrics"

	"github.com/rs/zerolog/log"
)

// DefaultPUCTExploration is the PUCT exploration constant c, left
// unconstrained here (unlike UCT's documented range); this value
// follows the AlphaZero-style convention the PUCT formula is otherwise
// borrowed from. See DESIGN.md.
const DefaultPUCTExploration = 1.5

// PUCTOption configures a PUCT engine.
type PUCTOption func(*PUCT)

// WithPUCTExploration overrides the PUCT exploration constant c.
func WithPUCTExploration(c float64) PUCTOption {
	return func(p *PUCT) {
		if c > 0 {
			p.exploration = c
		}
	}
}

// WithIterations sets the fixed number of search iterations per choose_action call.
func WithIterations(n int) PUCTOption {
	return func(p *PUCT) {
		if n > 0 {
			p.iterations = n
		}
	}
}

// WithPUCTMetrics attaches a live metrics collector instead of the default no-op.
func WithPUCTMetrics(c metrics.Collector) PUCTOption {
	return func(p *PUCT) {
		if c != nil {
			p.metrics = c
		}
	}
}

// WithPUCTVerbose enables debug logging of root visit statistics after each search.
func WithPUCTVerbose() PUCTOption {
	return func(p *PUCT) { p.verbose = true }
}

// WithPUCTGoroutines sets the worker-goroutine count for a single
// choose_action call. This engine runs one search sequentially per
// call, so the value is recorded but otherwise unused; the knob is
// kept for parity with configurations that size a worker pool from it.
func WithPUCTGoroutines(n int) PUCTOption {
	return func(p *PUCT) {
		if n > 0 {
			p.goroutines = n
		}
	}
}

// PUCT is an iteration-bounded, evaluator-guided MCTS engine.
type PUCT struct {
	exploration float64
	iterations  int
	evaluator   evaluator.Evaluator
	metrics     metrics.Collector
	verbose     bool
	goroutines  int
}

// NewPUCT builds a PUCT engine around the given evaluator.
func NewPUCT(eval evaluator.Evaluator, options ...PUCTOption) *PUCT {
	p := &PUCT{
		exploration: DefaultPUCTExploration,
		iterations:  meta.DefaultPUCTIterations,
		evaluator:   eval,
		metrics:     metrics.NewNoopCollector(),
		goroutines:  1,
	}
	for _, opt := range options {
		opt(p)
	}
	return p
}

// Result is what ChooseAction returns: the chosen action plus the
// root-level visit policy used as MCTS training data.
type Result struct {
	Action      game.Action
	VisitPolicy [game.ActionSpaceSize]float64
}

// ChooseAction runs PUCT search from board for the configured number
// of iterations and returns the most-visited root action, the root
// visit policy, and search metrics. It never mutates board.
func (p *PUCT) ChooseAction(board *game.Board) (Result, metrics.SearchMetrics, error) {
	rootPlayer := board.ToMove()
	arena := NewArena()
	root := arena.NewRoot(rootPlayer)

	if err := p.expand(arena, root, board, rootPlayer); err != nil {
		return Result{}, metrics.SearchMetrics{}, err
	}

	p.metrics.Start()
	for i := 0; i < p.iterations; i++ {
		leaf, working := p.selectLeaf(arena, root, board)
		v, err := p.expandOrEvaluate(arena, leaf, working, rootPlayer)
		if err != nil {
			return Result{}, metrics.SearchMetrics{}, err
		}
		backpropagatePUCT(arena, leaf, v)
		p.metrics.AddEpisode()
	}
	searchMetrics := p.metrics.Complete()

	result, err := bestByVisits(arena, root)
	if err != nil {
		return Result{}, searchMetrics, err
	}

	if p.verbose {
		log.Debug().
			Int("iterations", p.iterations).
			Str("chosen", result.Action.String()).
			Msg("puct search complete")
	}

	return result, searchMetrics, nil
}

// expand attaches one child per legal action to node, with priors from
// the evaluator's policy over the given board. Only the root is
// expanded this way; leaves reached during selection are expanded by
// expandOrEvaluate.
func (p *PUCT) expand(arena *Arena, node NodeHandle, board *game.Board, rootPlayer game.CellState) error {
	n := arena.Get(node)
	legalActions := board.LegalActions()
	eval, err := p.evaluator.Evaluate(board, legalActions)
	if err != nil {
		return err
	}
	n.Expanded = true
	n.ValueFromNetwork = eval.Value
	for _, action := range legalActions {
		childPlayer := n.Player
		if !action.Capture.IsCapture() {
			childPlayer = n.Player.Opponent()
		}
		child := arena.NewChild(node, action, childPlayer)
		arena.Get(child).Prior = eval.Prior(action)
	}
	return nil
}

// selectLeaf descends from root by PUCT score, applying each selected
// action to a working board copy, until it reaches an unexpanded node
// or a childless (terminal) expanded node.
func (p *PUCT) selectLeaf(arena *Arena, root NodeHandle, board *game.Board) (NodeHandle, *game.Board) {
	node := root
	working := board.Copy()
	for {
		n := arena.Get(node)
		if !n.Expanded || len(n.Children) == 0 {
			return node, working
		}
		child := p.selectChild(arena, node)
		working.Play(arena.Get(child).Action)
		node = child
	}
}

// selectChild picks the child maximizing the PUCT score. Ties (both
// scores equal, notably before any visits) resolve to the first child
// in insertion order, matching the move generator's order.
func (p *PUCT) selectChild(arena *Arena, node NodeHandle) NodeHandle {
	n := arena.Get(node)
	best := n.Children[0]
	bestScore := math.Inf(-1)
	for _, child := range n.Children {
		c := arena.Get(child)
		q := 0.0
		if c.Visits > 0 {
			q = c.AccumulatedValue / float64(c.Visits)
			// AccumulatedValue is self-relative to c.Player (see
			// backpropagatePUCT/terminalValue); flip it back to n's
			// perspective before comparing siblings, the same sign
			// convention used everywhere else this value is read.
			if n.Player != c.Player {
				q = -q
			}
		}
		score := q + p.exploration*c.Prior*math.Sqrt(float64(n.Visits))/(1+float64(c.Visits))
		if score > bestScore {
			bestScore = score
			best = child
		}
	}
	return best
}

// expandOrEvaluate is the evaluation-and-expansion step: terminal
// leaves get +-1 by whether the winner is the root player, expressed
// relative to the leaf's player (see terminalValue); otherwise the
// evaluator is queried and its value (already relative to the leaf's
// side to move) is cached and used to expand.
func (p *PUCT) expandOrEvaluate(arena *Arena, leaf NodeHandle, leafBoard *game.Board, rootPlayer game.CellState) (float64, error) {
	leafNode := arena.Get(leaf)

	if leafBoard.IsTerminal() {
		return terminalValue(leafNode, leafBoard.Winner(), rootPlayer), nil
	}

	legalActions := leafBoard.LegalActions()
	if len(legalActions) == 0 {
		return terminalValue(leafNode, leafBoard.ToMove().Opponent(), rootPlayer), nil
	}

	eval, err := p.evaluator.Evaluate(leafBoard, legalActions)
	if err != nil {
		return 0, err
	}
	leafNode.Expanded = true
	leafNode.ValueFromNetwork = eval.Value
	for _, action := range legalActions {
		childPlayer := leafNode.Player
		if !action.Capture.IsCapture() {
			childPlayer = leafNode.Player.Opponent()
		}
		child := arena.NewChild(leaf, action, childPlayer)
		arena.Get(child).Prior = eval.Prior(action)
	}
	// eval.Value is already relative to leafBoard's side to move, which
	// equals leafNode.Player by construction (see expand/expandOrEvaluate).
	return eval.Value, nil
}

func terminalValue(leafNode *Node, winner, rootPlayer game.CellState) float64 {
	leafNode.Expanded = true
	v := -1.0
	if winner == rootPlayer {
		v = 1.0
	}
	if rootPlayer != leafNode.Player {
		v = -v
	}
	return v
}

// backpropagatePUCT walks from leaf to root, negating v at each hop
// where the child's player differs from its parent's.
func backpropagatePUCT(arena *Arena, leaf NodeHandle, v float64) {
	node := leaf
	for {
		n := arena.Get(node)
		n.Visits++
		n.AccumulatedValue += v
		if n.Parent == NoParent {
			return
		}
		parent := arena.Get(n.Parent)
		if parent.Player != n.Player {
			v = -v
		}
		node = n.Parent
	}
}

// bestByVisits returns the root child with the highest visit count,
// the root-level visit policy over the fixed action space, and any
// budget-exhaustion error. Ties are broken by action-index order, not
// by the generator's emission order: an approach and a withdrawal
// capture on the same (origin, dir) are emitted approach-first but
// sort withdrawal-first by Index(), since tar is the only summand of
// Index() that differs between them.
func bestByVisits(arena *Arena, root NodeHandle) (Result, error) {
	rootNode := arena.Get(root)
	if len(rootNode.Children) == 0 {
		return Result{}, ErrNoLegalActions
	}

	var policy [game.ActionSpaceSize]float64
	var best NodeHandle
	bestVisits := -1
	anyVisited := false
	for _, child := range rootNode.Children {
		n := arena.Get(child)
		if rootNode.Visits > 0 {
			policy[n.Action.Index()] = float64(n.Visits) / float64(rootNode.Visits)
		}
		if n.Visits > bestVisits {
			bestVisits = n.Visits
			best = child
		} else if n.Visits == bestVisits && n.Action.Index() < arena.Get(best).Action.Index() {
			best = child
		}
		if n.Visits > 0 {
			anyVisited = true
		}
	}
	if !anyVisited {
		return Result{}, ErrDecisionBudgetExhausted
	}
	return Result{Action: arena.Get(best).Action, VisitPolicy: policy}, nil
}
