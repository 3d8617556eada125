package game

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/console"
	"github.com/rocketscienceinc/tictactoe-console/internal/engine"
)

type gameEngine interface {
	Start()
	ResetBoard()
	PlaceHumanMove(cell int) error
	PlaceCPUMove()
	CheckOutcome(mark string) engine.Outcome
	RecordOutcome(winner string)
	CurrentScore() engine.Score
	Snapshot() *engine.Board
}

// Runner owns turn sequencing: the engine exposes the two move
// operations independently and never tracks whose turn it is.
type Runner struct {
	logger *slog.Logger

	engine gameEngine
	in     *console.Reader
	out    *console.Renderer
}

func NewRunner(logger *slog.Logger, gameEngine gameEngine, in *console.Reader, out *console.Renderer) *Runner {
	return &Runner{
		logger: logger.With("component", "runner"),

		engine: gameEngine,
		in:     in,
		out:    out,
	}
}

// Run starts the engine and cycles rounds until the context is
// canceled or the input stream ends. The score survives every round.
func (that *Runner) Run(ctx context.Context) error {
	that.engine.Start()

	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		that.out.Prompt()
		that.out.RenderBoard(that.engine.Snapshot())
		that.out.RenderScore(that.engine.CurrentScore())

		cell, err := that.in.ReadIndex()
		if errors.Is(err, io.EOF) {
			that.logger.Info("input stream closed, stopping")
			return nil
		}

		if errors.Is(err, console.ErrNotANumber) {
			that.out.Announce("Please enter a valid number")
			continue
		}

		if err != nil {
			return fmt.Errorf("failed to read move: %w", err)
		}

		that.out.Announce(fmt.Sprintf("You entered: %d", cell))

		if !that.placeHumanMove(cell) {
			continue
		}

		switch that.engine.CheckOutcome(engine.PlayerMark) {
		case engine.Win:
			that.finishRound(engine.PlayerMark, "** You win! **")
			continue
		case engine.Tie:
			that.finishRound(engine.TieMark, "** Tie! **")
			continue
		case engine.Continue:
			that.out.Announce("** Cpu turn **")
		}

		that.engine.PlaceCPUMove()

		switch that.engine.CheckOutcome(engine.CPUMark) {
		case engine.Win:
			that.finishRound(engine.CPUMark, "** Cpu wins! **")
		case engine.Tie:
			that.finishRound(engine.TieMark, "** Tie! **")
		case engine.Continue:
			that.out.Announce("** Your turn **")
		}
	}
}

// placeHumanMove reports whether the move landed. A rejected index
// does not consume the turn; the operator is prompted again.
func (that *Runner) placeHumanMove(cell int) bool {
	err := that.engine.PlaceHumanMove(cell)
	if err == nil {
		return true
	}

	switch {
	case errors.Is(err, apperror.ErrCellOccupied):
		that.out.Announce("That area is already occupied!")
	case errors.Is(err, apperror.ErrOutOfBounds):
		that.out.Announce("Invalid index!\nMust be between 0 and 8")
	case errors.Is(err, apperror.ErrBoardNotInitialized):
		// unreachable once Run has called Start; logged, not fatal
		that.out.Announce("The game has not started!")
		that.logger.Warn("move before board init", "error", err)
	default:
		that.logger.Error("unexpected move failure", "error", err)
	}

	return false
}

func (that *Runner) finishRound(winner, banner string) {
	that.out.Announce(banner)
	that.engine.RecordOutcome(winner)
	that.engine.ResetBoard()

	score := that.engine.CurrentScore()
	that.logger.Info("round finished",
		"winner", winner,
		"player", score.Player,
		"cpu", score.CPU,
		"tie", score.Tie,
	)
}
