package dsu

import "fmt"

// DSU is a disjoint-set forest over the elements 0..n-1.
//
// parent[x] is x's direct parent; roots point at themselves.
// rank[x] bounds the height of x's tree and size[x] counts its elements;
// both are meaningful only while x is a root.
type DSU struct {
	parent     []int
	rank       []int
	size       []int
	components int
	mode       Mode

	// path is scratch space reused by Find to record the walk to the root.
	path []int
}

// New creates a DSU of n singleton components labelled 0..n-1.
// n == 0 is allowed and yields an empty structure with zero components.
//
// Complexity: O(n) time and memory.
func New(n int, opts ...Option) (*DSU, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeSize, n)
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	d := &DSU{
		parent:     make([]int, n),
		rank:       make([]int, n),
		size:       make([]int, n),
		components: n,
		mode:       o.Mode,
	}
	for i := 0; i < n; i++ {
		d.parent[i] = i
		d.size[i] = 1
	}

	return d, nil
}

// Len returns the number of elements n the DSU was created with.
func (d *DSU) Len() int { return len(d.parent) }

// Mode returns the union heuristic in use.
func (d *DSU) Mode() Mode { return d.mode }

// ComponentCount returns the current number of disjoint components.
// It starts at n and drops by exactly one per successful Union.
func (d *DSU) ComponentCount() int { return d.components }

// Find returns the root of x's component and compresses the path:
// every node visited on the way up is re-pointed directly at the root.
//
// Steps:
//  1. Validate 0 <= x < n.
//  2. Walk parent pointers up to the root, recording each node passed.
//  3. Re-point every recorded node at the root.
//
// Complexity: O(α(n)) amortized.
func (d *DSU) Find(x int) (int, error) {
	if err := d.check(x); err != nil {
		return 0, err
	}

	return d.find(x), nil
}

// find assumes x is in range.
func (d *DSU) find(x int) int {
	// 1. Walk up, remembering the path.
	path := d.path[:0]
	root := x
	for d.parent[root] != root {
		path = append(path, root)
		root = d.parent[root]
	}
	// 2. Flatten.
	for _, v := range path {
		d.parent[v] = root
	}
	d.path = path[:0]

	return root
}

// Union merges the components of x and y.
//
// It returns false (and changes nothing) when x and y already share a root.
// Otherwise the root of the smaller tree, by rank or by size depending on Mode,
// is attached under the other root and ComponentCount drops by one.
// When the two roots tie, the root of x survives; under ByRank its rank grows by one.
//
// Complexity: O(α(n)) amortized.
func (d *DSU) Union(x, y int) (bool, error) {
	if err := d.check(x); err != nil {
		return false, err
	}
	if err := d.check(y); err != nil {
		return false, err
	}

	rx, ry := d.find(x), d.find(y)
	if rx == ry {
		// Already connected: this is what makes an edge a cycle edge.
		return false, nil
	}

	switch d.mode {
	case BySize:
		if d.size[rx] < d.size[ry] {
			rx, ry = ry, rx
		}
	default:
		if d.rank[rx] < d.rank[ry] {
			rx, ry = ry, rx
		} else if d.rank[rx] == d.rank[ry] {
			d.rank[rx]++
		}
	}
	d.parent[ry] = rx
	d.size[rx] += d.size[ry]
	d.components--

	return true, nil
}

// Connected reports whether x and y belong to the same component.
func (d *DSU) Connected(x, y int) (bool, error) {
	rx, err := d.Find(x)
	if err != nil {
		return false, err
	}
	ry, err := d.Find(y)
	if err != nil {
		return false, err
	}

	return rx == ry, nil
}

// ComponentSize returns the number of elements in x's component.
// Size is stored at roots only, so it runs Find first.
func (d *DSU) ComponentSize(x int) (int, error) {
	r, err := d.Find(x)
	if err != nil {
		return 0, err
	}

	return d.size[r], nil
}

// Sets returns every component as an ascending slice of its elements.
// Components are ordered by their smallest element, so the result is
// deterministic for a given partition.
//
// Complexity: O(n·α(n)) time, O(n) memory.
func (d *DSU) Sets() [][]int {
	index := make(map[int]int, d.components) // root → position in out
	out := make([][]int, 0, d.components)
	for i := range d.parent {
		r := d.find(i)
		pos, ok := index[r]
		if !ok {
			pos = len(out)
			index[r] = pos
			out = append(out, make([]int, 0, d.size[r]))
		}
		out[pos] = append(out[pos], i)
	}

	return out
}

func (d *DSU) check(x int) error {
	if x < 0 || x >= len(d.parent) {
		return fmt.Errorf("%w: %d not in [0, %d)", ErrInvalidVertex, x, len(d.parent))
	}

	return nil
}
