// Package prim_kruskal provides an implementation of Prim's spanning-forest algorithm.
// It grows one tree at a time from a root vertex using a lazy min-heap of candidate edges.
package prim_kruskal

import (
	"container/heap"
	"fmt"
)

// Prim computes the minimum spanning tree of the undirected graph given by
// edges over the vertices 0..n-1, growing outwards from root.
//
// When the root's tree is complete but vertices remain unreached, Prim restarts
// from the smallest unreached vertex, so the result always covers every
// component; each restart adds one to Forest.Components.
// Accepted edges are oriented parent → child (From is already in the tree).
//
// Error Conditions:
//   - ErrNegativeSize, ErrInvalidWeight, ErrWeightOverflow : as for Kruskal.
//   - ErrInvalidVertex : an endpoint or root outside [0, n) (root is not checked when n == 0).
//   - *DisconnectedError : more than one component and WithSpanningForest not set;
//     the full spanning forest is returned alongside the error.
//
// Steps:
//  1. Validate input and root; n == 0 is a trivial empty forest.
//  2. Build an adjacency list, dropping self-loops.
//  3. Mark root visited and push its incident edges onto the heap.
//  4. Pop the lightest edge; skip it if its far end is visited, otherwise accept it,
//     mark the far end and push its edges to unvisited neighbours.
//  5. When the heap drains, restart from the next unvisited vertex.
//
// Complexity: O(E log E) time, O(V + E) memory.
func Prim(edges []Edge, n int, root int, opts ...Option) (Forest, error) {
	o := buildOptions(opts)

	// 1. Validate.
	if err := validate(edges, n); err != nil {
		return Forest{}, err
	}
	if n == 0 {
		return Forest{Edges: []Edge{}}, nil
	}
	if root < 0 || root >= n {
		return Forest{}, fmt.Errorf("%w: root %d with n=%d", ErrInvalidVertex, root, n)
	}

	// 2. Adjacency list; each undirected edge is stored at both ends.
	adj := make([][]Edge, n)
	for _, e := range edges {
		if e.From == e.To {
			continue
		}
		adj[e.From] = append(adj[e.From], e)
		adj[e.To] = append(adj[e.To], Edge{From: e.To, To: e.From, Weight: e.Weight})
	}

	visited := make([]bool, n) // vertices already in some tree
	f := Forest{
		Edges:    make([]Edge, 0, n-1),
		Vertices: n,
	}
	pq := &edgePQ{max: o.Maximum} // min-heap, or max-heap for WithMaximum

	// push queues every edge from v to a vertex not yet in the forest.
	push := func(v int) {
		for _, e := range adj[v] {
			if !visited[e.To] {
				heap.Push(pq, pqItem{edge: e, seq: pq.seq})
				pq.seq++
			}
		}
	}

	// 3–5. Grow trees, starting with root and then every unvisited vertex in order.
	start := root
	for next := 0; ; {
		visited[start] = true
		f.Components++
		push(start)

		for pq.Len() > 0 && len(f.Edges) < n-1 {
			e := heap.Pop(pq).(pqItem).edge
			if visited[e.To] {
				// Far end already in the forest: this edge would close a cycle.
				continue
			}
			// Accept parent → child and grow the frontier from the child.
			visited[e.To] = true
			f.Edges = append(f.Edges, e)
			if err := f.addWeight(e.Weight); err != nil {
				return Forest{}, err
			}
			push(e.To)
		}
		pq.items = pq.items[:0] // leftovers only point into the finished tree

		// Next tree starts at the smallest vertex no tree has reached.
		for next < n && visited[next] {
			next++
		}
		if next == n {
			break
		}
		start = next
	}

	if !f.Spanning() && !o.Forest {
		return f, &DisconnectedError{Vertices: n, Components: f.Components}
	}

	return f, nil
}

// pqItem is a heap entry; seq breaks weight ties in push order.
type pqItem struct {
	edge Edge
	seq  int
}

// edgePQ implements heap.Interface for a min-heap (or max-heap when max is set)
// of candidate edges ordered by Weight.
type edgePQ struct {
	items []pqItem
	max   bool
	seq   int
}

// Len returns the number of edges in the priority queue.
// Complexity: O(1).
func (pq *edgePQ) Len() int { return len(pq.items) }

// Less orders by weight, then by insertion sequence.
// Complexity: O(1).
func (pq *edgePQ) Less(i, j int) bool {
	a, b := pq.items[i], pq.items[j]
	if a.edge.Weight != b.edge.Weight {
		if pq.max {
			return a.edge.Weight > b.edge.Weight
		}

		return a.edge.Weight < b.edge.Weight
	}

	return a.seq < b.seq
}

// Swap swaps elements at indices i and j.
// Complexity: O(1).
func (pq *edgePQ) Swap(i, j int) { pq.items[i], pq.items[j] = pq.items[j], pq.items[i] }

// Push appends a new pqItem to the heap.
// Called by heap.Push. Complexity: O(log N) amortized.
func (pq *edgePQ) Push(x any) { pq.items = append(pq.items, x.(pqItem)) }

// Pop removes and returns the last item; heap.Pop has already moved the best one there.
func (pq *edgePQ) Pop() any {
	old := pq.items
	n := len(old)
	item := old[n-1]
	pq.items = old[:n-1]

	return item
}
