// Package prim_kruskal defines the edge and forest value types, configuration
// options and sentinel errors for spanning-forest computation.
package prim_kruskal

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/lvforest/dsu"
)

// ErrNegativeSize indicates a negative vertex count.
var ErrNegativeSize = errors.New("prim_kruskal: negative vertex count")

// ErrInvalidVertex indicates an edge endpoint (or Prim root) outside [0, n).
// Errors returned for bad endpoints also match dsu.ErrInvalidVertex.
var ErrInvalidVertex = errors.New("prim_kruskal: vertex out of range")

// ErrInvalidWeight indicates a NaN or infinite edge weight.
var ErrInvalidWeight = errors.New("prim_kruskal: weight must be finite")

// ErrWeightOverflow indicates that the summed weight of a forest left the
// finite float64 range, even though every single edge weight was finite.
var ErrWeightOverflow = errors.New("prim_kruskal: total weight overflows float64")

// ErrDisconnected indicates that no spanning tree covers all vertices.
// The concrete error is a *DisconnectedError that carries the partial forest size.
var ErrDisconnected = errors.New("prim_kruskal: graph is disconnected")

// ErrUnknownMethod indicates that Compute was given an unknown Method.
var ErrUnknownMethod = errors.New("prim_kruskal: unknown method")

// MaxWeight is the largest magnitude of an edge weight and of a forest's Total.
// Weights are plain float64 values; there is no "infinite" edge. A forest whose
// summed weight would exceed MaxWeight is rejected with ErrWeightOverflow.
const MaxWeight = math.MaxFloat64

// MethodPrim selects Prim's algorithm (grow from a root using a min-heap).
const MethodPrim = "prim"

// MethodKruskal selects Kruskal's algorithm (sort all edges and union-find).
const MethodKruskal = "kruskal"

// Edge is an undirected weighted edge between vertices From and To.
// Self-loops (From == To) are legal input and never accepted into a forest.
type Edge struct {
	From   int     `json:"from"`
	To     int     `json:"to"`
	Weight float64 `json:"weight"`
}

// Forest is the result of a spanning-forest computation.
//
// Edges are listed in the order they were accepted; Total is their summed weight.
// Components is the number of connected components left, so
// len(Edges) == Vertices - Components always holds.
type Forest struct {
	Edges      []Edge
	Total      float64
	Vertices   int
	Components int
}

// Spanning reports whether the forest is a single spanning tree
// (vacuously true for zero or one vertex).
func (f Forest) Spanning() bool { return f.Components <= 1 }

// DisconnectedError is returned when a spanning tree was required but the
// graph splits into more than one component. It matches ErrDisconnected
// under errors.Is.
type DisconnectedError struct {
	// Vertices is the vertex count of the graph.
	Vertices int

	// Components is the number of connected components found.
	Components int
}

// Error implements error.
func (e *DisconnectedError) Error() string {
	return fmt.Sprintf("%s: %d vertices in %d components", ErrDisconnected, e.Vertices, e.Components)
}

// Unwrap lets errors.Is(err, ErrDisconnected) succeed.
func (e *DisconnectedError) Unwrap() error { return ErrDisconnected }

// MSTOptions configures a spanning-forest computation.
// Use DefaultOptions() for a strict minimum spanning tree via Kruskal with union by rank.
//
// Fields:
//
//	Method  string   — MethodKruskal or MethodPrim (used by Compute).
//	Root    int      — start vertex for Prim; ignored by Kruskal.
//	Maximum bool     — build a maximum spanning forest (reverse weight order).
//	Forest  bool     — accept a disconnected graph and return its spanning forest without error.
//	Union   dsu.Mode — union heuristic of the DSU used by Kruskal.
type MSTOptions struct {
	// Method to use: MethodPrim or MethodKruskal.
	Method string

	// Root is the starting vertex for Prim's algorithm. Unused by Kruskal.
	Root int

	// Maximum flips the weight order.
	Maximum bool

	// Forest turns a disconnected result into a success.
	Forest bool

	// Union selects rank- or size-based union in Kruskal's DSU.
	Union dsu.Mode
}

// Option configures MSTOptions. All Option functions should modify the pointed MSTOptions.
type Option func(*MSTOptions)

// WithMethod returns an Option that sets the algorithm Method.
// Allowed values: MethodPrim, MethodKruskal.
func WithMethod(m string) Option {
	return func(opts *MSTOptions) {
		opts.Method = m
	}
}

// WithRoot returns an Option that sets the starting vertex for Prim's algorithm; Kruskal ignores it.
func WithRoot(root int) Option {
	return func(opts *MSTOptions) {
		opts.Root = root
	}
}

// WithMaximum returns an Option that builds a maximum instead of a minimum spanning forest.
func WithMaximum() Option {
	return func(opts *MSTOptions) {
		opts.Maximum = true
	}
}

// WithSpanningForest returns an Option that accepts disconnected graphs and
// returns their minimum (or maximum) spanning forest with a nil error.
func WithSpanningForest() Option {
	return func(opts *MSTOptions) {
		opts.Forest = true
	}
}

// WithUnionMode returns an Option that sets the DSU heuristic used by Kruskal.
func WithUnionMode(m dsu.Mode) Option {
	return func(opts *MSTOptions) {
		opts.Union = m
	}
}

// DefaultOptions returns MSTOptions initialized for Kruskal by default:
//
//	– Method  = MethodKruskal
//	– Root    = 0 (ignored by Kruskal)
//	– Maximum = false, Forest = false
//	– Union   = dsu.ByRank.
func DefaultOptions() MSTOptions {
	return MSTOptions{
		Method: MethodKruskal,
		Root:   0,
		Union:  dsu.ByRank,
	}
}

func buildOptions(opts []Option) MSTOptions {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// Compute selects and runs the spanning-forest algorithm named by opts.Method.
//
//	– MethodKruskal: Kruskal(edges, n, ...).
//	– MethodPrim:    Prim(edges, n, opts.Root, ...).
//	– Otherwise:     ErrUnknownMethod.
//
// Note: this is optional scaffolding—Prim and Kruskal can still be called directly.
func Compute(edges []Edge, n int, opts MSTOptions) (Forest, error) {
	fwd := []Option{func(o *MSTOptions) { *o = opts }}
	switch opts.Method {
	case MethodKruskal:
		return Kruskal(edges, n, fwd...)
	case MethodPrim:
		return Prim(edges, n, opts.Root, fwd...)
	default:
		return Forest{}, fmt.Errorf("%w: %q", ErrUnknownMethod, opts.Method)
	}
}

// addWeight adds w to f.Total, failing once the sum is no longer finite.
func (f *Forest) addWeight(w float64) error {
	f.Total += w
	if math.IsInf(f.Total, 0) {
		return fmt.Errorf("%w: after %d edges", ErrWeightOverflow, len(f.Edges))
	}

	return nil
}

// validate checks n and every edge. It is shared by Kruskal, Prim and HasCycle.
func validate(edges []Edge, n int) error {
	if n < 0 {
		return fmt.Errorf("%w: %d", ErrNegativeSize, n)
	}
	for i, e := range edges {
		if e.From < 0 || e.From >= n || e.To < 0 || e.To >= n {
			return fmt.Errorf("%w: edge %d (%d,%d) with n=%d: %w",
				ErrInvalidVertex, i, e.From, e.To, n, dsu.ErrInvalidVertex)
		}
		if math.IsNaN(e.Weight) || math.IsInf(e.Weight, 0) {
			return fmt.Errorf("%w: edge %d has weight %v", ErrInvalidWeight, i, e.Weight)
		}
	}

	return nil
}
