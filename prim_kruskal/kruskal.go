// Package prim_kruskal provides an implementation of Kruskal's spanning-forest algorithm.
// It works on a plain edge list over the vertices 0..n-1 and uses dsu.DSU for cycle detection.
package prim_kruskal

import (
	"sort"

	"github.com/katalvlaran/lvforest/dsu"
)

// Kruskal computes the minimum spanning tree of the undirected graph given by
// edges over the vertices 0..n-1.
//
// Options: WithMaximum flips the order (maximum spanning tree), WithUnionMode
// picks the DSU heuristic, WithSpanningForest accepts disconnected input.
//
// Error Conditions:
//   - ErrNegativeSize  : n < 0.
//   - ErrInvalidVertex : an endpoint outside [0, n).
//   - ErrInvalidWeight : a NaN or infinite weight.
//   - ErrWeightOverflow: the summed weight of the accepted edges exceeds MaxWeight.
//   - *DisconnectedError (errors.Is ErrDisconnected): fewer than n-1 edges could be
//     accepted. The partial forest is still returned alongside the error, with
//     exactly n - c edges for c components. Not returned under WithSpanningForest.
//
// Steps:
//  1. Validate n and every edge.
//  2. n <= 1: trivial forest (no edges, weight 0).
//  3. Copy the edges and stable-sort the copy by weight; the caller's slice keeps its order.
//  4. Initialize a fresh DSU over n vertices.
//  5. For each edge in order: if Union(u,v) merges two components, accept it.
//     Self-loops and parallel duplicates fall out here because Union returns false.
//  6. Stop once n-1 edges are accepted; fail if the running total overflows.
//  7. Read the component count; more than one is a disconnection unless WithSpanningForest.
//
// Complexity: O(E log E + α(V)·E). Memory: O(E + V).
func Kruskal(edges []Edge, n int, opts ...Option) (Forest, error) {
	o := buildOptions(opts)

	// 1. Validate before doing any work.
	if err := validate(edges, n); err != nil {
		return Forest{}, err
	}

	// 2. Zero or one vertex needs no edges.
	if n <= 1 {
		return Forest{Edges: []Edge{}, Vertices: n, Components: n}, nil
	}

	// 3. Sort a copy; ties keep input order.
	sorted := sortedEdges(edges, o.Maximum)

	// 4. Fresh DSU per call: no state survives between invocations.
	d, err := dsu.New(n, dsu.WithMode(o.Union))
	if err != nil {
		return Forest{}, err
	}

	// 5. Greedy acceptance.
	f := Forest{
		Edges:    make([]Edge, 0, min(n-1, len(sorted))),
		Vertices: n,
	}
	for _, e := range sorted {
		// Union reports whether e joined two different components.
		merged, err := d.Union(e.From, e.To)
		if err != nil {
			return Forest{}, err
		}
		if !merged {
			// Same root on both ends: e would close a cycle.
			continue
		}
		f.Edges = append(f.Edges, e)
		// Keep the running total finite; |Total| is bounded by MaxWeight.
		if err := f.addWeight(e.Weight); err != nil {
			return Forest{}, err
		}
		// 6. A spanning tree is complete at n-1 edges.
		if len(f.Edges) == n-1 {
			break
		}
	}
	// 7. Whatever is left unmerged counts as a separate component.
	f.Components = d.ComponentCount()

	// A strict spanning tree fails here; the partial forest goes back with the error.
	if !f.Spanning() && !o.Forest {
		return f, &DisconnectedError{Vertices: n, Components: f.Components}
	}

	return f, nil
}

// CountTreeEdges returns how many edges Kruskal would accept for the graph,
// i.e. n minus the number of connected components, without building the forest.
// The count does not depend on edge order, so the edges are not sorted and
// weights play no part beyond validation.
//
// Complexity: O(E·α(V)).
func CountTreeEdges(edges []Edge, n int) (int, error) {
	// 1. Same validation as Kruskal.
	if err := validate(edges, n); err != nil {
		return 0, err
	}
	d, err := dsu.New(n)
	if err != nil {
		return 0, err
	}

	// 2. Count successful unions, stopping once the graph is connected.
	count := 0
	for _, e := range edges {
		if count == n-1 {
			break
		}
		merged, err := d.Union(e.From, e.To)
		if err != nil {
			return 0, err
		}
		if merged {
			count++
		}
	}

	return count, nil
}

// HasCycle reports whether the undirected graph contains a cycle.
// A self-loop or a parallel edge counts as a cycle.
//
// Complexity: O(E·α(V)).
func HasCycle(edges []Edge, n int) (bool, error) {
	if err := validate(edges, n); err != nil {
		return false, err
	}
	d, err := dsu.New(n)
	if err != nil {
		return false, err
	}
	for _, e := range edges {
		merged, err := d.Union(e.From, e.To)
		if err != nil {
			return false, err
		}
		if !merged {
			return true, nil
		}
	}

	return false, nil
}

// sortedEdges returns a stable-sorted copy of edges, ascending by weight
// unless descending is set.
func sortedEdges(edges []Edge, descending bool) []Edge {
	out := make([]Edge, len(edges))
	copy(out, edges)
	sort.SliceStable(out, func(i, j int) bool {
		if descending {
			return out[i].Weight > out[j].Weight
		}

		return out[i].Weight < out[j].Weight
	})

	return out
}
