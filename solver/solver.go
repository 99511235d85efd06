// Package solver finds a sequence of jumps that reduces a board.Board to a
// single peg, using an iterative depth-first search over canonical board
// states so that symmetric positions are only ever explored once.
package solver

import (
	"sync"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/broy/marblesolitaire/board"
	"github.com/broy/marblesolitaire/visitedfilter"
)

const initMovesCapacity = 64

// sharedFilter and sharedFilterConfig back every Solve call: the visited
// filter (and, in the dense case, its 2^37-bit mmap) is built once and
// Clear()ed on entry rather than rebuilt per call, mirroring
// endgame/negamax's GlobalTranspositionTable singleton. A call requesting a
// different Config than the one the shared filter was built with forces a
// rebuild; Solve is documented as never sharing a Filter across goroutines,
// so filterMu only guards against that rebuild racing a concurrent caller.
var (
	filterMu           sync.Mutex
	sharedFilter       *visitedfilter.Filter
	sharedFilterConfig visitedfilter.Config
)

func acquireFilter(cfg visitedfilter.Config) (*visitedfilter.Filter, error) {
	filterMu.Lock()
	defer filterMu.Unlock()

	if sharedFilter == nil || sharedFilterConfig != cfg {
		if sharedFilter != nil {
			sharedFilter.Close()
		}
		f, err := visitedfilter.New(cfg)
		if err != nil {
			sharedFilter = nil
			return nil, err
		}
		sharedFilter = f
		sharedFilterConfig = cfg
		return sharedFilter, nil
	}

	sharedFilter.Clear()
	return sharedFilter, nil
}

// frame is one level of the explicit DFS stack: the canonical board at this
// level, the window [movesStart, moveEnd) of buf holding its legal moves,
// moveIndex tracking which of those have been tried, the chain of
// transforms applied from the root down to this level, and the move that
// produced this level (absent at the root).
type frame struct {
	canonical    board.Board
	moveIndex    int
	moveEnd      int
	movesStart   int
	transforms   []board.Transform
	incomingMove board.Move
	hasIncoming  bool
}

type options struct {
	logger       zerolog.Logger
	filterConfig visitedfilter.Config
}

// Option configures a Solve or IsSolvable call.
type Option func(*options)

// WithLogger overrides the default package logger (github.com/rs/zerolog/log).
func WithLogger(l zerolog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithVisitedFilterConfig overrides how the visited-state filter is built,
// e.g. to force the hash-set backend on a memory-constrained host.
func WithVisitedFilterConfig(cfg visitedfilter.Config) Option {
	return func(o *options) { o.filterConfig = cfg }
}

func resolveOptions(opts []Option) options {
	o := options{logger: log.Logger}
	for _, apply := range opts {
		apply(&o)
	}
	return o
}

// Solve returns a sequence of moves that reduces start to a single peg, or
// nil if start is unsolvable. Moves are expressed in start's own coordinate
// frame even though the search walks canonical states internally.
func Solve(start board.Board, opts ...Option) []board.Move {
	cfg := resolveOptions(opts)

	filter, err := acquireFilter(cfg.filterConfig)
	if err != nil {
		cfg.logger.Error().Err(err).Msg("solver-visited-filter-construction-failed")
		return nil
	}

	moves := make([]board.Move, 0, initMovesCapacity)

	var rootTransforms []board.Transform
	startCanonical, startTransform := start.Canonical()
	if startTransform != board.Identity {
		rootTransforms = append(rootTransforms, startTransform)
	}
	moves = startCanonical.ListLegalMoves(moves)
	filter.TestAndSet(startCanonical.PackIndex())

	stack := []frame{{
		canonical:  startCanonical,
		moveIndex:  0,
		moveEnd:    len(moves),
		movesStart: 0,
		transforms: rootTransforms,
	}}

	cfg.logger.Debug().Int("initial-legal-moves", len(moves)).Msg("solver-start")

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.moveIndex >= top.moveEnd {
			moves = moves[:top.movesStart]
			stack = stack[:len(stack)-1]
			continue
		}

		m := moves[top.moveIndex]
		top.moveIndex++

		next := top.canonical.Apply(m)
		canonical, transform := next.Canonical()

		if filter.TestAndSet(canonical.PackIndex()) {
			continue
		}

		start := len(moves)
		moves = canonical.ListLegalMoves(moves)
		end := len(moves)

		childTransforms := make([]board.Transform, len(top.transforms), len(top.transforms)+1)
		copy(childTransforms, top.transforms)
		if transform != board.Identity {
			childTransforms = append(childTransforms, transform)
		}

		child := frame{
			canonical:    canonical,
			moveIndex:    start,
			moveEnd:      end,
			movesStart:   start,
			transforms:   childTransforms,
			incomingMove: m,
			hasIncoming:  true,
		}

		if canonical.HasWon() {
			stack = append(stack, child)
			solution := reconstructSolution(stack)
			cfg.logger.Debug().Int("solution-length", len(solution)).Msg("solver-found-solution")
			return solution
		}
		stack = append(stack, child)
	}

	cfg.logger.Debug().Msg("solver-exhausted-no-solution")
	return nil
}

// IsSolvable reports whether start can be reduced to a single peg.
func IsSolvable(start board.Board, opts ...Option) bool {
	return len(Solve(start, opts...)) > 0
}

// reconstructSolution walks the winning stack from the deepest frame back to
// the root, collecting each frame's incoming move together with the
// transform chain of its parent (the frame the move was made in), inverts
// every move through that chain, and returns the moves in forward
// (root-to-goal) order, expressed in the original board's coordinate frame.
func reconstructSolution(stack []frame) []board.Move {
	var reversed []board.Move
	var parentTransforms [][]board.Transform

	for i := len(stack) - 1; i >= 0; i-- {
		f := stack[i]
		if !f.hasIncoming {
			continue
		}
		reversed = append(reversed, f.incomingMove)
		if i-1 >= 0 {
			parentTransforms = append(parentTransforms, stack[i-1].transforms)
		} else {
			parentTransforms = append(parentTransforms, nil)
		}
	}

	var zero board.Board
	for i, m := range reversed {
		ts := parentTransforms[i]
		for j := len(ts) - 1; j >= 0; j-- {
			m = zero.InvertTransformOnMove(m, ts[j])
		}
		reversed[i] = m
	}

	for l, r := 0, len(reversed)-1; l < r; l, r = l+1, r-1 {
		reversed[l], reversed[r] = reversed[r], reversed[l]
	}
	return reversed
}
