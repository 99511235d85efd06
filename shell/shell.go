// Package shell implements an interactive readline-driven REPL for playing
// peg solitaire: move, hint, solve, undo, board, and quit commands over a
// single in-progress game.Game.
package shell

import (
	"errors"
	"io"
	"os"
	"strconv"
	"strings"
	"syscall"

	"github.com/chzyer/readline"
	"github.com/rs/zerolog/log"

	"github.com/broy/marblesolitaire/game"
	"github.com/broy/marblesolitaire/solver"
	"github.com/broy/marblesolitaire/visitedfilter"
)

// Controller drives the REPL: it owns the readline instance and the
// in-progress game.
type Controller struct {
	l            *readline.Instance
	out          io.Writer
	g            *game.Game
	filterConfig visitedfilter.Config
}

func filterInput(r rune) (rune, bool) {
	switch r {
	// block CtrlZ feature
	case readline.CharCtrlZ:
		return r, false
	}
	return r, true
}

func showMessage(msg string, w io.Writer) {
	io.WriteString(w, msg)
	io.WriteString(w, "\n")
}

// NewController starts a readline session and a new standard-opening game.
func NewController() *Controller {
	l, err := readline.NewEx(&readline.Config{
		Prompt:          "\033[31msolitaire>\033[0m ",
		HistoryFile:     "/tmp/solitaire-readline.tmp",
		EOFPrompt:       "exit",
		InterruptPrompt: "^C",

		HistorySearchFold:   true,
		FuncFilterInputRune: filterInput,
	})
	if err != nil {
		panic(err)
	}
	return &Controller{l: l, out: l.Stderr(), g: game.NewGame()}
}

// newControllerWithIO builds a Controller that writes to out instead of a
// readline instance's stderr, for driving dispatch without a live terminal.
func newControllerWithIO(g *game.Game, out io.Writer) *Controller {
	return &Controller{g: g, out: out}
}

// UseCustomOpening restarts the current game with the single empty hole at
// (r, col).
func (c *Controller) UseCustomOpening(r, col int) {
	c.g = game.NewGameWithEmpty(r, col)
}

// SetVisitedFilterConfig controls how the hint/solve commands build their
// solver.Solve visited-state filter.
func (c *Controller) SetVisitedFilterConfig(cfg visitedfilter.Config) {
	c.filterConfig = cfg
}

func (c *Controller) showMessage(msg string) {
	showMessage(msg, c.out)
}

func (c *Controller) showError(err error) {
	c.showMessage("Error: " + err.Error())
}

func (c *Controller) showBoard() {
	var sb strings.Builder
	c.g.Render(&sb)
	c.showMessage(sb.String())
}

// dispatch interprets one line of input, returning false when the REPL
// should stop (the quit, bye and exit commands).
func (c *Controller) dispatch(line string) bool {
	switch {
	case line == "":
		return true

	case line == "bye" || line == "quit" || line == "exit":
		return false

	case line == "board" || line == "s":
		c.showBoard()

	case line == "hint":
		hint, ok := c.g.BestNextMove(solver.WithVisitedFilterConfig(c.filterConfig))
		if !ok {
			c.showMessage("no solution exists from the current board")
			break
		}
		c.showMessage("hint: " + hint.String())

	case line == "solve":
		solution := c.g.FullSolution(solver.WithVisitedFilterConfig(c.filterConfig))
		if len(solution) == 0 {
			c.showMessage("no solution exists from the current board")
			break
		}
		var sb strings.Builder
		for _, m := range solution {
			sb.WriteString(m.String())
			sb.WriteString("\n")
		}
		c.showMessage(sb.String())

	case line == "undo":
		if !c.g.UndoLastMove() {
			c.showMessage("nothing to undo")
		} else {
			c.showBoard()
		}

	case strings.HasPrefix(line, "new "):
		c.newGame(line[len("new "):])

	case line == "new":
		c.g = game.NewGame()
		c.showBoard()

	case strings.HasPrefix(line, "help"):
		if strings.TrimSpace(line) == "help" {
			usage(c.out)
		} else {
			usageTopic(c.out, strings.TrimSpace(line[len("help"):]))
		}

	default:
		c.makeMove(line)
	}
	return true
}

func (c *Controller) newGame(args string) {
	fields := strings.Fields(args)
	if len(fields) != 2 {
		c.showError(errors.New("usage: new <row> <col>"))
		return
	}
	row, err := strconv.Atoi(fields[0])
	if err != nil {
		c.showError(err)
		return
	}
	col, err := strconv.Atoi(fields[1])
	if err != nil {
		c.showError(err)
		return
	}
	c.UseCustomOpening(row, col)
	c.showBoard()
}

func (c *Controller) makeMove(line string) {
	desc, err := game.ParseMoveDescription(line)
	if err != nil {
		c.showError(err)
		return
	}
	if err := c.g.TryMakeMove(desc); err != nil {
		c.showError(err)
		return
	}
	c.showBoard()
	if c.g.HasWon() {
		c.showMessage("solved!")
	} else if !c.g.HasAnyLegalMove() {
		c.showMessage("no legal moves remain")
	}
}

// Loop runs the REPL until the user quits, interrupts, or sends EOF.
func (c *Controller) Loop(sig chan os.Signal) {
	defer c.l.Close()

	for {
		line, err := c.l.Readline()
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				sig <- syscall.SIGINT
				break
			}
			continue
		} else if err == io.EOF {
			sig <- syscall.SIGINT
			break
		}
		line = strings.TrimSpace(line)
		if !c.dispatch(line) {
			sig <- syscall.SIGINT
			break
		}
	}
	log.Debug().Msg("exiting readline loop")
}

// Execute runs a single command non-interactively, for one-shot
// invocations (e.g. `solitaire solve`, where the trailing args are joined
// into one command line by cmd/solitaire's main).
func (c *Controller) Execute(line string) {
	c.dispatch(strings.TrimSpace(line))
}

// Cleanup releases the readline instance's resources.
func (c *Controller) Cleanup() {
	c.l.Close()
}
