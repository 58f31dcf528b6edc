package dsu

// Parents exposes a copy of the raw parent pointers to tests.
func (d *DSU) Parents() []int {
	out := make([]int, len(d.parent))
	copy(out, d.parent)

	return out
}

// Rank exposes the stored rank of x to tests.
func (d *DSU) Rank(x int) int { return d.rank[x] }
