// Package prim_kruskal computes minimum (or maximum) spanning trees and forests
// of undirected weighted graphs given as plain edge lists over the vertices 0..n-1.
//
// What & Why
//
//   - What is an MST?
//     Given an undirected, connected, weighted graph G = (V, E), an MST is a subset T ⊆ E such that
//     T connects all vertices in V and the sum of weights of edges in T is minimized.
//     For a disconnected graph the same greedy rule yields a spanning forest: one tree per component.
//
//   - Why it matters: cheap network design, single-linkage clustering (cut the heaviest tree edges),
//     and as a subroutine of approximation algorithms such as Christofides' TSP.
//
// Algorithms Provided
//
//   - Kruskal(edges []Edge, n int, opts ...Option) (Forest, error)
//
//   - Strategy: stable-sort a copy of the edges by weight, then accept each edge whose endpoints are
//     still in different components of a dsu.DSU. Stop once n−1 edges have been accepted.
//
//   - Complexity: O(E log E + α(V)·E) time, O(V + E) space.
//
//   - Prim(edges []Edge, n int, root int, opts ...Option) (Forest, error)
//
//   - Strategy: grow a tree from root with a min-heap of candidate edges; restart from the
//     next unreached vertex when the heap drains, so every component is covered.
//
//   - Complexity: O(E log E) time, O(V + E) space.
//
//   - HasCycle and CountTreeEdges are small union-find utilities built on the same DSU.
//
// Options
//
//   - WithMaximum()        — maximum spanning tree/forest; only the sort (heap) order changes.
//   - WithSpanningForest() — disconnected input is a normal result, not an error.
//   - WithUnionMode(m)     — dsu.ByRank (default) or dsu.BySize inside Kruskal.
//   - WithMethod/WithRoot  — used by Compute to dispatch to Kruskal or Prim.
//
// Error Conditions
//
//   - ErrNegativeSize  : n < 0.
//   - ErrInvalidVertex : an endpoint (or Prim's root) outside [0, n); also matches dsu.ErrInvalidVertex for edges.
//   - ErrInvalidWeight : NaN or ±Inf weight. Any finite float64 (|w| ≤ MaxWeight) is accepted.
//   - ErrWeightOverflow: the forest's Total would leave [-MaxWeight, MaxWeight]; MaxWeight bounds the sum too.
//   - ErrDisconnected  : returned as *DisconnectedError when a spanning tree was required and the
//     graph has several components. The spanning forest is returned with it, so
//     callers that only need the forest can inspect f.Components instead.
//
// Determinism
//
//   - Kruskal uses a stable sort: equal weights are taken in input order, and two runs over
//     the same input return identical edge sequences.
//   - Prim breaks heap ties by push order.
//   - When weights tie, different valid trees exist; compare Forest.Total, not edge identity.
//
// Edge cases: n == 0 and n == 1 always succeed with an empty forest of weight 0.
// Self-loops are ignored; of several parallel edges only the lightest can be accepted.
package prim_kruskal
