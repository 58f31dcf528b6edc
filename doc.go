// Package lvforest is a small library of union-find and spanning-forest
// algorithms over integer-labelled graphs.
//
//	dsu/          — Disjoint Set Union: path compression + union by rank or by size,
//	                component count and component sizes
//	prim_kruskal/ — Kruskal (and Prim) minimum/maximum spanning trees and forests,
//	                with an explicit error for disconnected input
//	bfs/          — breadth-first walks over edge lists, e.g. a Kruskal forest
//	cmd/lvforest  — command-line front end reading edge-list files
//
// Quick ASCII example:
//
//	0 ─1─ 1
//	│     │
//	4     2
//	│     │
//	3 ─3─ 2
//
// Kruskal keeps 0─1, 1─2, 2─3 (total 6) and drops 0─3: its endpoints are
// already joined in the DSU when it comes up.
//
//	go get github.com/katalvlaran/lvforest
package lvforest
