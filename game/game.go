// Package game orchestrates a single play-through of peg solitaire on top
// of package board and package solver: it tracks a current board, a move
// history for undo, and exposes the hint/solve affordances a shell or UI
// needs.
package game

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/broy/marblesolitaire/board"
	"github.com/broy/marblesolitaire/solver"
)

// Game holds one board in progress plus enough history to undo moves.
type Game struct {
	board   board.Board
	history []board.Move
}

// NewGame starts a game on the standard opening (every hole filled but the
// center).
func NewGame() *Game {
	return &Game{board: board.NewWithEmpty(3, 3)}
}

// NewGameWithEmpty starts a game with the single empty hole at (r, c). An
// unplayable (r, c) falls back to the standard opening, matching
// board.NewWithEmpty.
func NewGameWithEmpty(r, c int) *Game {
	return &Game{board: board.NewWithEmpty(r, c)}
}

// Board returns the current board.
func (g *Game) Board() board.Board {
	return g.board
}

// HasWon reports whether the current board has exactly one peg remaining.
func (g *Game) HasWon() bool {
	return g.board.HasWon()
}

// HasAnyLegalMove reports whether at least one move is currently legal.
func (g *Game) HasAnyLegalMove() bool {
	return len(g.board.ListLegalMoves(nil)) > 0
}

// Render writes an ASCII rendering of the current board to w.
func (g *Game) Render(w io.Writer) {
	g.board.Render(w)
}

// TryMakeMove validates and applies the move described by m, recording it
// in the undo history. It returns *board.ErrInvalidMove (unwrapped) if the
// move isn't legal on the current board.
func (g *Game) TryMakeMove(m MoveDescription) error {
	move, err := g.board.MoveByDirection(m.Row, m.Col, m.Direction)
	if err != nil {
		return err
	}
	g.board = g.board.Apply(move)
	g.history = append(g.history, move)
	return nil
}

// UndoLastMove reverts the most recently applied move, if any, and reports
// whether a move was actually undone.
func (g *Game) UndoLastMove() bool {
	if len(g.history) == 0 {
		return false
	}
	last := g.history[len(g.history)-1]
	g.history = g.history[:len(g.history)-1]
	g.board = g.board.Undo(last)
	return true
}

// BestNextMove returns the first move of a full solution from the current
// board, formatted as a MoveDescription, and whether a solution exists.
func (g *Game) BestNextMove(opts ...solver.Option) (MoveDescription, bool) {
	solution := solver.Solve(g.board, opts...)
	if len(solution) == 0 {
		return MoveDescription{}, false
	}
	return descriptionFromMove(solution[0]), true
}

// FullSolution returns every move of a full solution from the current
// board, or an empty slice if the current board is unsolvable.
func (g *Game) FullSolution(opts ...solver.Option) []MoveDescription {
	solution := solver.Solve(g.board, opts...)
	descs := make([]MoveDescription, len(solution))
	for i, m := range solution {
		descs[i] = descriptionFromMove(m)
	}
	return descs
}

func descriptionFromMove(m board.Move) MoveDescription {
	r, c := m.FromCoords()
	return MoveDescription{Row: r, Col: c, Direction: m.DirectionOf()}
}

// MoveDescription is the textual move format: "row col direction", e.g.
// "3 0 right".
type MoveDescription struct {
	Row, Col  int
	Direction board.Direction
}

// String formats m as "row col direction".
func (m MoveDescription) String() string {
	return fmt.Sprintf("%d %d %s", m.Row, m.Col, m.Direction)
}

// ParseMoveDescription parses the "row col direction" textual move format.
func ParseMoveDescription(s string) (MoveDescription, error) {
	fields := strings.Fields(s)
	if len(fields) != 3 {
		return MoveDescription{}, fmt.Errorf("game: malformed move %q: expected \"row col direction\"", s)
	}
	row, err := strconv.Atoi(fields[0])
	if err != nil {
		return MoveDescription{}, fmt.Errorf("game: malformed move %q: %w", s, err)
	}
	col, err := strconv.Atoi(fields[1])
	if err != nil {
		return MoveDescription{}, fmt.Errorf("game: malformed move %q: %w", s, err)
	}
	dir, ok := board.ParseDirection(fields[2])
	if !ok {
		return MoveDescription{}, fmt.Errorf("game: malformed move %q: unknown direction %q", s, fields[2])
	}
	return MoveDescription{Row: row, Col: col, Direction: dir}, nil
}
