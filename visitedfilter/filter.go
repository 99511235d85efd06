// Package visitedfilter implements the visited-state filter the solver uses
// to avoid re-exploring a board it has already seen in canonical form. It
// picks between two backends at construction time based on available RAM: a
// dense mmap'd bitmap over the full 2^37 key space when there's room for it,
// or a hash-set fallback otherwise. The choice is made once; there is no
// per-call branching between backends.
package visitedfilter

import (
	"fmt"

	"github.com/pbnjay/memory"
	"github.com/rs/zerolog/log"
)

// keyBits is the width of board.Board.PackIndex's output: every canonical
// key fits in 37 bits.
const keyBits = 37

// denseBitmapBytes is the memory footprint of the dense backend: 2^37 bits.
const denseBitmapBytes = (uint64(1) << keyBits) / 8

// denseMemoryFraction bounds how much of total system RAM the dense backend
// is allowed to claim before the filter falls back to the hash-set backend.
const denseMemoryFraction = 0.5

// backend is satisfied by both the dense and hash-set implementations.
// TestAndSet is the only operation the solver's hot path needs; Clear
// resets a filter for reuse across independent searches.
type backend interface {
	TestAndSet(key uint64) bool
	Clear()
	Close() error
}

// Filter is the visited-state filter. It is not safe for concurrent use:
// the solver's iterative DFS is single-threaded by design, and solver.Solve
// never shares a Filter across goroutines.
type Filter struct {
	backend
	dense bool
}

// Config controls how a Filter is constructed.
type Config struct {
	// ForceHashSet skips the dense backend's RAM check and always builds
	// the hash-set fallback. Intended for tests and for small or
	// memory-constrained runs where the caller already knows a dense
	// bitmap is wasteful.
	ForceHashSet bool
}

// New builds a Filter, preferring the dense mmap backend when the host has
// enough RAM to spare and falling back to a hash-set otherwise.
func New(cfg Config) (*Filter, error) {
	if cfg.ForceHashSet {
		log.Info().Msg("visited-filter-backend-hashset-forced")
		return &Filter{backend: newHashSetBackend(), dense: false}, nil
	}

	total := memory.TotalMemory()
	budget := uint64(float64(total) * denseMemoryFraction)
	if total > 0 && denseBitmapBytes <= budget {
		dense, err := newDenseBackend()
		if err != nil {
			log.Warn().Err(err).Msg("visited-filter-dense-mmap-failed-falling-back")
			return &Filter{backend: newHashSetBackend(), dense: false}, nil
		}
		log.Info().
			Uint64("bitmap-bytes", denseBitmapBytes).
			Uint64("total-system-memory-bytes", total).
			Msg("visited-filter-backend-dense")
		return &Filter{backend: dense, dense: true}, nil
	}

	log.Info().
		Uint64("bitmap-bytes", denseBitmapBytes).
		Uint64("total-system-memory-bytes", total).
		Msg("visited-filter-backend-hashset")
	return &Filter{backend: newHashSetBackend(), dense: false}, nil
}

// IsDense reports whether f is backed by the dense mmap bitmap.
func (f *Filter) IsDense() bool {
	return f.dense
}

func checkKey(key uint64) {
	if key>>keyBits != 0 {
		panic(fmt.Sprintf("visitedfilter: key %d does not fit in %d bits", key, keyBits))
	}
}
