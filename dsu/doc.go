// Package dsu provides a fixed-size Disjoint Set Union (union-find) over the
// integer labels 0..n-1.
//
// What & Why
//
//   - A DSU keeps a partition of n elements into disjoint components and answers
//     "which component is x in?" (Find) and "merge the components of x and y"
//     (Union) in near-constant amortized time.
//
//   - It is the cycle detector behind Kruskal's algorithm: an edge (u,v) closes
//     a cycle exactly when Union(u, v) reports false.
//
// Heuristics
//
//   - Path compression: every Find re-points each node it walked through
//     directly at the root. The walk is iterative, so deep trees never grow
//     the call stack.
//
//   - Union by rank (ByRank, default) or by size (BySize): the root of the
//     "smaller" tree is attached under the root of the "larger" one. On a tie
//     the root of the first argument survives; under ByRank its rank grows by one.
//
// Together both heuristics give O(α(n)) amortized time per operation.
//
// Error Conditions
//
//   - ErrNegativeSize  : New called with n < 0.
//   - ErrInvalidVertex : Find/Union/Connected/ComponentSize with an id outside [0, n).
//
// A DSU is not safe for concurrent use; each Union depends on every prior Union,
// so callers that share one across goroutines must serialize access themselves.
package dsu
