package dsu

import (
	"errors"
	"fmt"
)

// ErrNegativeSize indicates that New was asked for a negative number of elements.
var ErrNegativeSize = errors.New("dsu: negative size")

// ErrInvalidVertex indicates that an element id is outside [0, n).
var ErrInvalidVertex = errors.New("dsu: vertex id out of range")

// ErrUnknownMode indicates that ParseMode got a name it does not know.
var ErrUnknownMode = errors.New("dsu: unknown union mode")

// Mode selects the union heuristic.
type Mode int

const (
	// ByRank attaches the root with the smaller rank (upper bound on height)
	// under the root with the larger one.
	ByRank Mode = iota

	// BySize attaches the root of the component with fewer elements
	// under the root of the larger component.
	BySize
)

// String returns "rank" or "size".
func (m Mode) String() string {
	switch m {
	case ByRank:
		return "rank"
	case BySize:
		return "size"
	default:
		return "unknown"
	}
}

// ParseMode maps "rank" and "size" back onto a Mode.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "rank", "":
		return ByRank, nil
	case "size":
		return BySize, nil
	default:
		return ByRank, fmt.Errorf("%w: %q", ErrUnknownMode, s)
	}
}

// Options configures a DSU. Use DefaultOptions() for union by rank.
type Options struct {
	// Mode picks the union heuristic.
	Mode Mode
}

// Option configures Options.
type Option func(*Options)

// WithMode returns an Option that sets the union heuristic.
func WithMode(m Mode) Option {
	return func(o *Options) {
		o.Mode = m
	}
}

// DefaultOptions returns Options with Mode = ByRank.
func DefaultOptions() Options {
	return Options{Mode: ByRank}
}
