// Package engine runs the external game loop: it holds the
// authoritative board, asks the side to move for an action, applies
// it, and inspects the board for termination.
package engine

import (
	"fmt"

	"fanorona/game"
	"fanorona/meta"
	"fanorona/player"

	"github.com/rs/zerolog/log"
)

// Outcome summarizes how a game ended.
type Outcome struct {
	Winner game.CellState
	Moves  int
	// Capped reports whether the game hit the move-count safety cap
	// rather than reaching a decided winner; Winner is Empty in that case.
	Capped bool
}

// Option configures an Engine.
type Option func(*Engine)

// WithMaxMoves overrides the move-count safety cap.
func WithMaxMoves(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.maxMoves = n
		}
	}
}

// Engine drives one game between two players to completion.
type Engine struct {
	board    *game.Board
	players  [2]player.Player
	maxMoves int
}

// New builds an Engine for board between players[X-1] and players[O-1]
// (X moves first, per game.NewBoard's canonical opening position).
func New(board *game.Board, players [2]player.Player, options ...Option) *Engine {
	e := &Engine{board: board, players: players, maxMoves: meta.MaxMoves}
	for _, opt := range options {
		opt(e)
	}
	return e
}

// Run plays the game to completion: a decided winner, a natural loss
// (the side to move has no legal actions), or the move-count cap.
func (e *Engine) Run() (Outcome, error) {
	for moves := 0; moves < e.maxMoves; moves++ {
		if e.board.IsTerminal() {
			return Outcome{Winner: e.board.Winner(), Moves: moves}, nil
		}

		legal := e.board.LegalActions()
		if len(legal) == 0 {
			log.Info().Str("side", e.board.ToMove().String()).Msg("side to move has no legal actions, surrounded")
			return Outcome{Winner: e.board.ToMove().Opponent(), Moves: moves}, nil
		}

		active := e.players[e.board.ToMove()-1]
		action, _, err := active.ChooseAction(e.board)
		if err != nil {
			return Outcome{}, fmt.Errorf("engine: move %d, %s to move: %w", moves, e.board.ToMove(), err)
		}

		e.board.Play(action)
	}

	log.Info().Int("cap", e.maxMoves).Msg("game reached the move-count safety cap")
	return Outcome{Moves: e.maxMoves, Capped: true}, nil
}
