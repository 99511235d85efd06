// Package config centralizes command-line and environment configuration
// for the solitaire binaries, following the flat namsral/flag-based struct
// pattern used across this codebase's tools.
package config

import (
	"github.com/namsral/flag"
	"github.com/rs/zerolog"

	"github.com/broy/marblesolitaire/board"
	"github.com/broy/marblesolitaire/visitedfilter"
)

// Config holds the knobs a solitaire run can be started with.
type Config struct {
	// UseDenseBitmap lets the visited filter pick its dense mmap backend
	// when available RAM allows it; with -use-dense-bitmap=false the
	// hash-set fallback is forced. It does not force the dense backend on.
	UseDenseBitmap bool
	// UseBitExtractIntrinsic selects board's unrolled column-extraction
	// path over the portable shifted one.
	UseBitExtractIntrinsic bool
	// EmptyRow and EmptyCol give the single starting empty hole.
	EmptyRow int
	EmptyCol int
	// LogLevel is one of zerolog's level names: debug, info, warn, error.
	LogLevel string
}

// Load parses args (normally os.Args[1:]) into c, applying the same
// defaults a fresh game would use: the standard opening's center hole
// empty, the portable column extractor, and info-level logging.
func (c *Config) Load(args []string) error {
	fs := flag.NewFlagSet("solitaire", flag.ContinueOnError)
	fs.BoolVar(&c.UseDenseBitmap, "use-dense-bitmap", true, "allow the dense mmap'd visited-state bitmap when available RAM permits; false forces the hash-set fallback")
	fs.BoolVar(&c.UseBitExtractIntrinsic, "use-bit-extract-intrinsic", false, "use the unrolled column-extraction path instead of the portable shifted one")
	fs.IntVar(&c.EmptyRow, "empty-row", 3, "row of the single starting empty hole")
	fs.IntVar(&c.EmptyCol, "empty-col", 3, "column of the single starting empty hole")
	fs.StringVar(&c.LogLevel, "log-level", "info", "log level: debug, info, warn, or error")
	return fs.Parse(args)
}

// Apply pins board's column-extraction strategy to c's configured choice.
// Call once at startup, before any board operations.
func (c *Config) Apply() {
	board.SetColumnExtractor(c.UseBitExtractIntrinsic)
}

// FilterConfig translates c.UseDenseBitmap into the visitedfilter.Config
// that produces the requested backend: true leaves the RAM-based decision
// in place (the dense backend only needs enough spare memory, it isn't
// forced), false forces the hash-set fallback.
func (c *Config) FilterConfig() visitedfilter.Config {
	return visitedfilter.Config{ForceHashSet: !c.UseDenseBitmap}
}

// ZerologLevel parses c.LogLevel, falling back to zerolog.InfoLevel for an
// unrecognized value.
func (c *Config) ZerologLevel() zerolog.Level {
	lvl, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.InfoLevel
	}
	return lvl
}
