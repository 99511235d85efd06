package game

import (
	"strings"
	"testing"

	"github.com/matryer/is"

	"github.com/broy/marblesolitaire/board"
	"github.com/broy/marblesolitaire/solver"
	"github.com/broy/marblesolitaire/visitedfilter"
)

func withHashSetFilter() solver.Option {
	return solver.WithVisitedFilterConfig(visitedfilter.Config{ForceHashSet: true})
}

func TestNewGameStandardOpening(t *testing.T) {
	is := is.New(t)
	g := NewGame()
	is.Equal(g.Board().PegCount(), 32)
	is.True(!g.Board().HasPeg(3, 3))
}

func TestNewGameWithEmptyCustomOpening(t *testing.T) {
	is := is.New(t)
	g := NewGameWithEmpty(2, 3)
	is.True(!g.Board().HasPeg(2, 3))
}

func TestTryMakeMoveAppliesAndRecordsHistory(t *testing.T) {
	is := is.New(t)
	g := NewGameWithEmpty(2, 2)
	before := g.Board()
	err := g.TryMakeMove(MoveDescription{Row: 2, Col: 0, Direction: board.Right})
	is.NoErr(err)
	is.True(g.Board() != before)
	is.Equal(g.Board().PegCount(), before.PegCount()-1)
}

func TestTryMakeMoveRejectsIllegalMove(t *testing.T) {
	is := is.New(t)
	g := NewGame()
	err := g.TryMakeMove(MoveDescription{Row: 0, Col: 2, Direction: board.Left})
	is.True(err != nil)
}

func TestUndoLastMoveRestoresBoard(t *testing.T) {
	is := is.New(t)
	g := NewGameWithEmpty(2, 2)
	before := g.Board()
	is.NoErr(g.TryMakeMove(MoveDescription{Row: 2, Col: 0, Direction: board.Right}))
	is.True(g.UndoLastMove())
	is.Equal(g.Board(), before)
}

func TestUndoLastMoveWithEmptyHistory(t *testing.T) {
	is := is.New(t)
	g := NewGame()
	is.True(!g.UndoLastMove())
}

func TestBestNextMoveIsLegalOnCurrentBoard(t *testing.T) {
	is := is.New(t)
	g := NewGameWithEmpty(2, 3)
	hint, ok := g.BestNextMove(withHashSetFilter())
	is.True(ok)
	err := g.TryMakeMove(hint)
	is.NoErr(err)
}

func TestFullSolutionAppliesCleanlyToWin(t *testing.T) {
	is := is.New(t)
	g := NewGameWithEmpty(0, 2)
	solution := g.FullSolution(withHashSetFilter())
	is.True(len(solution) > 0)
	for _, m := range solution {
		is.NoErr(g.TryMakeMove(m))
	}
	is.True(g.HasWon())
}

func TestMoveDescriptionRoundTrip(t *testing.T) {
	is := is.New(t)
	text := "3 0 right"
	m, err := ParseMoveDescription(text)
	is.NoErr(err)
	is.Equal(m.String(), text)
}

func TestParseMoveDescriptionRejectsMalformed(t *testing.T) {
	is := is.New(t)
	_, err := ParseMoveDescription("not a move")
	is.True(err != nil)
	_, err = ParseMoveDescription("1 2 sideways")
	is.True(err != nil)
}

func TestRenderWritesBoard(t *testing.T) {
	is := is.New(t)
	g := NewGame()
	var sb strings.Builder
	g.Render(&sb)
	is.True(strings.Contains(sb.String(), "●"))
}
