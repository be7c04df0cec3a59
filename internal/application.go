package application

import (
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-core/internal/board"
	"github.com/rocketscienceinc/tictactoe-core/internal/config"
)

// Result is the board after a replay.
type Result struct {
	Board  board.Grid `json:"board"`
	Winner board.Mark `json:"winner"`
	Draw   bool       `json:"draw"`
}

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	result, err := Replay(logger, conf.Moves)
	if err != nil {
		return fmt.Errorf("replay failed: %w", err)
	}

	log.Info("Replay finished", "result", result)

	return nil
}

// Replay - plays moves on a fresh board until one of them wins or the board is full.
// Occupied cells are skipped; parse and range errors stop the replay.
func Replay(logger *slog.Logger, moves []string) (Result, error) {
	log := logger.With("component", "replay")

	grid := board.InitializeBoard()

	for _, raw := range moves {
		mv, err := ParseMove(raw)
		if err != nil {
			return Result{Board: grid}, fmt.Errorf("could not parse move: %w", err)
		}

		ok, err := board.MakeMove(&grid, mv.Row, mv.Col, mv.Mark)
		if err != nil {
			return Result{Board: grid}, fmt.Errorf("could not make move %q: %w", raw, err)
		}

		if !ok {
			log.Warn("Cell is already occupied", "move", raw)
			continue
		}

		log.Debug("Move accepted", "move", raw, "board", grid)

		if winner := board.CheckWinner(grid); winner != board.Empty {
			log.Info("Game won", "winner", winner)
			return Result{Board: grid, Winner: winner}, nil
		}

		if board.IsFull(grid) {
			log.Info("Game ended in a draw")
			return Result{Board: grid, Draw: true}, nil
		}
	}

	return Result{Board: grid}, nil
}
