// Package bfs walks an undirected edge list breadth-first.
//
// The usual partner is a spanning forest: build it with prim_kruskal.Kruskal,
// then hand f.Edges to BFS to get tree depths, parent links and the unique
// tree path between two vertices (PathTo).
//
// Unreached vertices are marked with the explicit sentinel Unreached (-1) in
// both Depth and Parent; there is no "infinite" distance.
//
// Complexity: O(V + E) time and memory.
package bfs
