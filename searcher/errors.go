package searcher

import "errors"

// ErrDecisionBudgetExhausted is returned when choose_action is asked
// to pick among root children before any of them has been visited.
// Under legal configurations (at least one episode/iteration and at
// least one legal action) this cannot happen; it is kept as a
// defensive, recoverable error.
var ErrDecisionBudgetExhausted = errors.New("searcher: decision budget exhausted before any child was visited")

// ErrNoLegalActions is returned defensively if ChooseAction is called
// on a position with no legal actions. That case is a natural loss,
// not an application error: the game loop is expected to detect it
// itself before ever asking a player to choose.
var ErrNoLegalActions = errors.New("searcher: side to move has no legal actions")
