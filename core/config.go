package core

import "math"

// NewlineMode selects how the Value Driver treats '\n' bytes between
// top-level values.
type NewlineMode int

const (
	// NewlinesOff treats '\n' as ordinary insignificant whitespace.
	NewlinesOff NewlineMode = iota
	// NewlinesNDJSON treats the input as newline-delimited JSON: a run
	// of consecutive '\n' between top-level values collapses to a
	// single '\n', leading blank lines are dropped, and a trailing
	// newline at end of file is trimmed.
	NewlinesNDJSON
	// NewlinesNDJSONPreserveBlanks behaves like NewlinesNDJSON except
	// every '\n' between top-level values, including blank lines, is
	// passed through verbatim.
	NewlinesNDJSONPreserveBlanks
)

// NoPrecision disables rounding: numbers are rewritten to their
// shortest exact form but never rounded away.
const NoPrecision = int64(math.MaxInt64)

// Config is passed by value into Minify rather than read from package
// globals. lighterjson.c keeps precision/quiet as file-scope globals;
// an explicit record lets a single process minify with more than one
// configuration concurrently.
type Config struct {
	// Precision is the number of decimal places to round to. NoPrecision
	// disables rounding entirely. Negative values round to a power of
	// ten above the decimal point (e.g. -2 rounds to the nearest 100).
	Precision int64
	// Newlines selects NDJSON handling of top-level '\n' separators.
	Newlines NewlineMode
	// Quiet is carried on Config for symmetry with the CLI's -q flag;
	// the core engine never logs, so it goes unused here.
	Quiet bool
}

func (c Config) roundingEnabled() bool { return c.Precision != NoPrecision }
