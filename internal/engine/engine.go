package engine

import (
	"fmt"
	"math/rand"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
)

const (
	PlayerMark = "X"
	CPUMark    = "O"
	TieMark    = "-"

	EmptyCell = ""
)

var WinCombos = [][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// Outcome is the result of checking a board for a given mark.
type Outcome int

const (
	Continue Outcome = iota
	Win
	Tie
)

// Board is a 3x3 grid stored row-major, index = row*3 + col.
type Board [9]string

// Score keeps the round results for the lifetime of an engine.
// Counters only ever go up; a board reset leaves them untouched.
type Score struct {
	Player uint `json:"player"`
	CPU    uint `json:"cpu"`
	Tie    uint `json:"tie"`
}

// Engine holds the board, the score and the rules of one
// human-vs-cpu game. The board is nil until Start or ResetBoard
// is called, which is distinct from an all-empty board.
type Engine struct {
	board *Board
	score Score
	rng   *rand.Rand
}

// New returns an engine with no board yet. The rng drives the cpu
// move; pass a seeded source for a reproducible cpu.
func New(rng *rand.Rand) *Engine {
	return &Engine{
		rng: rng,
	}
}

// Start creates the board with all 9 cells empty.
func (that *Engine) Start() {
	that.board = &Board{}
}

// ResetBoard clears the board for the next round. The score stays.
func (that *Engine) ResetBoard() {
	that.board = &Board{}
}

// PlaceHumanMove puts the player mark in the given cell.
// The index is validated here, not by the caller: range first,
// then board presence, then occupancy.
func (that *Engine) PlaceHumanMove(cell int) error {
	if cell < 0 || cell > 8 {
		return fmt.Errorf("%w: cell %d", apperror.ErrOutOfBounds, cell)
	}

	if that.board == nil {
		return apperror.ErrBoardNotInitialized
	}

	if that.board[cell] != EmptyCell {
		return fmt.Errorf("%w: cell %d", apperror.ErrCellOccupied, cell)
	}

	that.board[cell] = PlayerMark

	return nil
}

// PlaceCPUMove marks a uniformly random empty cell with the cpu mark.
// On a full or absent board it does nothing.
func (that *Engine) PlaceCPUMove() {
	if that.board == nil {
		return
	}

	availableCells := make([]int, 0, len(that.board))
	for i, cell := range that.board {
		if cell == EmptyCell {
			availableCells = append(availableCells, i)
		}
	}

	if len(availableCells) == 0 {
		return
	}

	chosenCell := availableCells[that.rng.Intn(len(availableCells))]
	that.board[chosenCell] = CPUMark
}

// CheckOutcome reports whether the queried mark has won, the round is
// a tie, or play continues. An absent board always continues.
func (that *Engine) CheckOutcome(mark string) Outcome {
	if that.board == nil {
		return Continue
	}

	for _, combo := range WinCombos {
		a, b, c := that.board[combo[0]], that.board[combo[1]], that.board[combo[2]]
		if a == mark && a == b && b == c {
			return Win
		}
	}

	// the round continues until every cell is taken
	for _, cell := range that.board {
		if cell == EmptyCell {
			return Continue
		}
	}

	return Tie
}

// RecordOutcome bumps the counter matching the round winner:
// PlayerMark, CPUMark or TieMark. Anything else is ignored.
func (that *Engine) RecordOutcome(winner string) {
	switch winner {
	case PlayerMark:
		that.score.Player++
	case CPUMark:
		that.score.CPU++
	case TieMark:
		that.score.Tie++
	}
}

// CurrentScore returns a copy of the score counters.
func (that *Engine) CurrentScore() Score {
	return that.score
}

// Snapshot returns a copy of the board, or nil when no board exists.
func (that *Engine) Snapshot() *Board {
	if that.board == nil {
		return nil
	}

	board := *that.board

	return &board
}
