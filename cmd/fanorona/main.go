// cmd/fanorona is a thin self-play driver. The interactive CLI menu
// lives outside this module, but a fixed UCT-vs-UCT (or PUCT-vs-PUCT,
// given a model) run is a convenient way to exercise the engine end
// to end.
package main

import (
	"flag"
	"fmt"
	"time"

	"fanorona/engine"
	"fanorona/evaluator"
	"fanorona/game"
	"fanorona/meta"
	"fanorona/player"
	"fanorona/searcher"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	width := flag.Int("width", 5, "board width, 5 or 9")
	games := flag.Int("games", 1, "number of self-play games to run")
	engineName := flag.String("engine", "uct", "search engine to self-play with: uct or puct")
	duration := flag.Duration("duration", meta.DefaultUCTDuration, "UCT search duration per move")
	iterations := flag.Int("iterations", meta.DefaultPUCTIterations, "PUCT search iterations per move")
	modelPath := flag.String("model", "", "ONNX policy+value model path for PUCT; empty uses uniform priors")
	verbose := flag.Bool("verbose", false, "enable debug logging")
	flag.Parse()

	if *verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	newPlayers, err := playerFactory(*engineName, *width, *duration, *iterations, *modelPath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to configure players")
	}

	results := map[game.CellState]int{game.X: 0, game.O: 0, game.Empty: 0}
	for i := 0; i < *games; i++ {
		outcome, err := runGame(*width, newPlayers)
		if err != nil {
			log.Fatal().Err(err).Int("game", i+1).Msg("game failed")
		}
		results[outcome.Winner]++
		fmt.Printf("game %d: winner=%s moves=%d capped=%v\n", i+1, outcome.Winner, outcome.Moves, outcome.Capped)
	}

	fmt.Printf("X wins: %d, O wins: %d, draws/capped: %d\n", results[game.X], results[game.O], results[game.Empty])
}

// playerFactory returns a constructor for a fresh pair of players, one
// per game, since both engines build a private tree per choose_action
// call and hold no state worth reusing across games.
func playerFactory(engineName string, width int, duration time.Duration, iterations int, modelPath string) (func() [2]player.Player, error) {
	switch engineName {
	case "uct":
		return func() [2]player.Player {
			return [2]player.Player{
				player.NewUCTPlayer(searcher.NewUCT(searcher.WithSearchDuration(duration), searcher.WithSeed(1))),
				player.NewUCTPlayer(searcher.NewUCT(searcher.WithSearchDuration(duration), searcher.WithSeed(2))),
			}
		}, nil
	case "puct":
		eval, err := loadEvaluator(modelPath, width)
		if err != nil {
			return nil, err
		}
		return func() [2]player.Player {
			return [2]player.Player{
				player.NewPUCTPlayer(searcher.NewPUCT(eval, searcher.WithIterations(iterations))),
				player.NewPUCTPlayer(searcher.NewPUCT(eval, searcher.WithIterations(iterations))),
			}
		}, nil
	default:
		return nil, fmt.Errorf("unknown engine %q, want uct or puct", engineName)
	}
}

func loadEvaluator(modelPath string, width int) (evaluator.Evaluator, error) {
	if modelPath == "" {
		return evaluator.NewUniform(), nil
	}
	return evaluator.LoadONNXEvaluator(modelPath, width)
}

func runGame(width int, newPlayers func() [2]player.Player) (engine.Outcome, error) {
	board, err := game.NewBoard(width)
	if err != nil {
		return engine.Outcome{}, err
	}

	e := engine.New(board, newPlayers())
	return e.Run()
}
