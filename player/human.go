package player

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"fanorona/game"
)

// HumanPlayer reads an action from a console-style reader, re-prompting
// on malformed input or a choice outside the current legal set.
type HumanPlayer struct {
	in  *bufio.Reader
	out io.Writer
}

// NewHumanPlayer wraps in/out for a human's turn prompts.
func NewHumanPlayer(in io.Reader, out io.Writer) *HumanPlayer {
	return &HumanPlayer{in: bufio.NewReader(in), out: out}
}

// ChooseAction enumerates the current legal actions and reads a
// 1-based index into that list, re-prompting until a valid one is
// entered. It always reports the zero visit policy. It assumes the
// caller (the game loop) has already ruled out the no-legal-actions
// natural-loss case, a termination condition rather than something a
// player is asked to resolve.
func (h *HumanPlayer) ChooseAction(board *game.Board) (game.Action, [game.ActionSpaceSize]float64, error) {
	legal := board.LegalActions()

	fmt.Fprintf(h.out, "%s to move, choose one:\n", board.ToMove())
	for i, a := range legal {
		fmt.Fprintf(h.out, "  %d: %s\n", i+1, a)
	}

	for {
		fmt.Fprint(h.out, "> ")
		line, err := h.in.ReadString('\n')
		if err != nil {
			return game.Action{}, [game.ActionSpaceSize]float64{}, fmt.Errorf("player: read input: %w", err)
		}

		choice, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil || choice < 1 || choice > len(legal) {
			fmt.Fprintln(h.out, "invalid choice, try again")
			continue
		}

		return legal[choice-1], [game.ActionSpaceSize]float64{}, nil
	}
}
