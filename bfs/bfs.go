// Package bfs provides breadth-first search over an undirected edge list,
// returning unweighted distances, parent links, and visit order.
//
// It takes the same prim_kruskal.Edge values the spanning-forest builders
// return, so a Forest's Edges can be walked directly.
package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/lvforest/prim_kruskal"
)

// queueItem pairs a vertex id with its BFS depth.
type queueItem struct {
	id    int
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	adj   [][]int
	opts  BFSOptions
	ctx   context.Context
	queue []queueItem
	res   *BFSResult
}

// BFS runs breadth-first search over the undirected graph given by edges on
// vertices 0..n-1, starting from start. Edge weights are ignored.
// Returns ErrStartVertexNotFound for a bad start, ErrOptionViolation for bad options,
// prim_kruskal.ErrInvalidVertex for an edge endpoint outside [0, n),
// the context error on cancellation, or any OnVisit error.
func BFS(edges []prim_kruskal.Edge, n, start int, opts ...Option) (*BFSResult, error) {
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if start < 0 || start >= n {
		return nil, fmt.Errorf("%w: %d", ErrStartVertexNotFound, start)
	}

	adj := make([][]int, n)
	for i, e := range edges {
		if e.From < 0 || e.From >= n || e.To < 0 || e.To >= n {
			return nil, fmt.Errorf("%w: edge %d (%d,%d)", prim_kruskal.ErrInvalidVertex, i, e.From, e.To)
		}
		adj[e.From] = append(adj[e.From], e.To)
		if e.From != e.To {
			adj[e.To] = append(adj[e.To], e.From)
		}
	}

	w := &walker{
		adj:   adj,
		opts:  o,
		ctx:   o.Ctx,
		queue: make([]queueItem, 0, n),
		res: &BFSResult{
			Start:  start,
			Order:  make([]int, 0, n),
			Depth:  make([]int, n),
			Parent: make([]int, n),
		},
	}
	for v := 0; v < n; v++ {
		w.res.Depth[v] = Unreached
		w.res.Parent[v] = Unreached
	}

	// Seed queue with start vertex (no parent)
	w.enqueue(start, 0, Unreached)

	return w.res, w.loop()
}

// enqueue records depth and parent of id and adds it to the queue.
func (w *walker) enqueue(id, d, parent int) {
	w.res.Depth[id] = d
	w.res.Parent[id] = parent
	w.queue = append(w.queue, queueItem{id: id, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]

		w.res.Order = append(w.res.Order, item.id)
		if err := w.opts.OnVisit(item.id, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %d: %w", item.id, err)
		}

		next := item.depth + 1
		if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
			continue
		}
		for _, nbr := range w.adj[item.id] {
			if w.res.Depth[nbr] == Unreached {
				w.enqueue(nbr, next, item.id)
			}
		}
	}

	return nil
}
