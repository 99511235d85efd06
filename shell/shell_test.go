package shell

import (
	"strings"
	"testing"

	"github.com/matryer/is"

	"github.com/broy/marblesolitaire/game"
	"github.com/broy/marblesolitaire/visitedfilter"
)

func newTestController() (*Controller, *strings.Builder) {
	var sb strings.Builder
	c := newControllerWithIO(game.NewGameWithEmpty(2, 3), &sb)
	c.SetVisitedFilterConfig(visitedfilter.Config{ForceHashSet: true})
	return c, &sb
}

func TestDispatchBoardShowsPegsAndHoles(t *testing.T) {
	is := is.New(t)
	c, out := newTestController()
	is.True(c.dispatch("board"))
	is.True(strings.Contains(out.String(), "●"))
}

func TestDispatchMakesLegalMove(t *testing.T) {
	is := is.New(t)
	c, out := newTestController()
	is.True(c.dispatch("2 1 right"))
	is.True(!strings.Contains(out.String(), "Error"))
}

func TestDispatchRejectsIllegalMove(t *testing.T) {
	is := is.New(t)
	c, out := newTestController()
	is.True(c.dispatch("0 2 left"))
	is.True(strings.Contains(out.String(), "Error"))
}

func TestDispatchUndoWithNothingToUndo(t *testing.T) {
	is := is.New(t)
	c, out := newTestController()
	is.True(c.dispatch("undo"))
	is.True(strings.Contains(out.String(), "nothing to undo"))
}

func TestDispatchUndoReversesMove(t *testing.T) {
	is := is.New(t)
	c, _ := newTestController()
	before := c.g.Board()
	is.True(c.dispatch("2 1 right"))
	is.True(c.dispatch("undo"))
	is.Equal(c.g.Board(), before)
}

func TestDispatchNewWithCoordsRestartsGame(t *testing.T) {
	is := is.New(t)
	c, _ := newTestController()
	is.True(c.dispatch("new 1 3"))
	is.True(!c.g.Board().HasPeg(1, 3))
}

func TestDispatchQuitStopsTheLoop(t *testing.T) {
	is := is.New(t)
	c, _ := newTestController()
	is.True(!c.dispatch("quit"))
	is.True(!c.dispatch("bye"))
}

func TestDispatchHelpShowsUsage(t *testing.T) {
	is := is.New(t)
	c, out := newTestController()
	is.True(c.dispatch("help"))
	is.True(strings.Contains(out.String(), "commands:"))
}

func TestDispatchSolveReportsSolutionOrNone(t *testing.T) {
	is := is.New(t)
	c, out := newTestController()
	is.True(c.dispatch("solve"))
	is.True(out.Len() > 0)
}
