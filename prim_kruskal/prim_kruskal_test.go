package prim_kruskal_test

import (
	"errors"
	"math"
	"math/bits"
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvforest/dsu"
	"github.com/katalvlaran/lvforest/prim_kruskal" // package under test
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// square returns the four-vertex graph whose MST is the path 0-1-2-3 with weight 6.
func square() []prim_kruskal.Edge {
	return []prim_kruskal.Edge{
		{From: 0, To: 1, Weight: 1},
		{From: 1, To: 2, Weight: 2},
		{From: 2, To: 3, Weight: 3},
		{From: 0, To: 3, Weight: 4},
		{From: 0, To: 2, Weight: 5},
	}
}

// randomConnected builds a connected graph over n vertices: a random spanning
// chain plus extra random edges (loops and parallels included). Weights are small
// integers so that ties are common and float sums stay exact.
func randomConnected(r *rand.Rand, n, extra int) []prim_kruskal.Edge {
	perm := r.Perm(n)
	edges := make([]prim_kruskal.Edge, 0, n-1+extra)
	for i := 1; i < n; i++ {
		edges = append(edges, prim_kruskal.Edge{From: perm[i-1], To: perm[i], Weight: float64(1 + r.Intn(9))})
	}
	for i := 0; i < extra; i++ {
		edges = append(edges, prim_kruskal.Edge{From: r.Intn(n), To: r.Intn(n), Weight: float64(1 + r.Intn(9))})
	}
	r.Shuffle(len(edges), func(i, j int) { edges[i], edges[j] = edges[j], edges[i] })

	return edges
}

// bruteForceMST enumerates every (n-1)-subset of edges and returns the lightest
// spanning tree weight, or false when none exists.
func bruteForceMST(t *testing.T, edges []prim_kruskal.Edge, n int) (float64, bool) {
	t.Helper()
	best, found := math.Inf(1), false
	for mask := uint(0); mask < 1<<uint(len(edges)); mask++ {
		if bits.OnesCount(mask) != n-1 {
			continue
		}
		d, err := dsu.New(n)
		require.NoError(t, err)
		total, tree := 0.0, true
		for i, e := range edges {
			if mask&(1<<uint(i)) == 0 {
				continue
			}
			merged, err := d.Union(e.From, e.To)
			require.NoError(t, err)
			if !merged {
				tree = false
				break
			}
			total += e.Weight
		}
		if tree && total < best {
			best, found = total, true
		}
	}

	return best, found
}

func TestKruskal_Square(t *testing.T) {
	f, err := prim_kruskal.Kruskal(square(), 4)
	require.NoError(t, err)

	assert.Equal(t, []prim_kruskal.Edge{
		{From: 0, To: 1, Weight: 1},
		{From: 1, To: 2, Weight: 2},
		{From: 2, To: 3, Weight: 3},
	}, f.Edges)
	assert.Equal(t, 6.0, f.Total)
	assert.Equal(t, 4, f.Vertices)
	assert.Equal(t, 1, f.Components)
	assert.True(t, f.Spanning())
}

func TestKruskal_Maximum(t *testing.T) {
	f, err := prim_kruskal.Kruskal(square(), 4, prim_kruskal.WithMaximum())
	require.NoError(t, err)

	assert.Equal(t, []prim_kruskal.Edge{
		{From: 0, To: 2, Weight: 5},
		{From: 0, To: 3, Weight: 4},
		{From: 1, To: 2, Weight: 2},
	}, f.Edges)
	assert.Equal(t, 11.0, f.Total)
}

func TestKruskal_Disconnected(t *testing.T) {
	edges := []prim_kruskal.Edge{
		{From: 0, To: 1, Weight: 1},
		{From: 2, To: 3, Weight: 1},
	}

	f, err := prim_kruskal.Kruskal(edges, 4)
	require.Error(t, err)
	assert.ErrorIs(t, err, prim_kruskal.ErrDisconnected)

	var de *prim_kruskal.DisconnectedError
	require.True(t, errors.As(err, &de))
	assert.Equal(t, 4, de.Vertices)
	assert.Equal(t, 2, de.Components)

	// The partial forest comes back with the error, never as a silent success.
	assert.Len(t, f.Edges, 2)
	assert.False(t, f.Spanning())
	assert.Equal(t, 2.0, f.Total)

	// Forest mode turns the same input into a regular result.
	f, err = prim_kruskal.Kruskal(edges, 4, prim_kruskal.WithSpanningForest())
	require.NoError(t, err)
	assert.Len(t, f.Edges, 2)
	assert.Equal(t, 2, f.Components)
}

func TestKruskal_IsolatedVertices(t *testing.T) {
	f, err := prim_kruskal.Kruskal(nil, 2)
	assert.ErrorIs(t, err, prim_kruskal.ErrDisconnected)
	assert.Empty(t, f.Edges)
	assert.Equal(t, 2, f.Components)
}

func TestKruskal_Trivial(t *testing.T) {
	for _, n := range []int{0, 1} {
		f, err := prim_kruskal.Kruskal(nil, n)
		require.NoError(t, err, "n=%d", n)
		assert.NotNil(t, f.Edges)
		assert.Empty(t, f.Edges)
		assert.Zero(t, f.Total)
		assert.True(t, f.Spanning())
	}

	// A self-loop on a single vertex changes nothing.
	f, err := prim_kruskal.Kruskal([]prim_kruskal.Edge{{From: 0, To: 0, Weight: -3}}, 1)
	require.NoError(t, err)
	assert.Empty(t, f.Edges)
}

func TestKruskal_SelfLoopsAndParallelEdges(t *testing.T) {
	edges := []prim_kruskal.Edge{
		{From: 0, To: 0, Weight: -10}, // loop: lightest, still rejected
		{From: 0, To: 1, Weight: 5},
		{From: 1, To: 0, Weight: 1}, // parallel, lighter
		{From: 1, To: 1, Weight: 0},
	}
	f, err := prim_kruskal.Kruskal(edges, 2)
	require.NoError(t, err)
	assert.Equal(t, []prim_kruskal.Edge{{From: 1, To: 0, Weight: 1}}, f.Edges)
	assert.Equal(t, 1.0, f.Total)
}

func TestKruskal_DoesNotReorderInput(t *testing.T) {
	edges := []prim_kruskal.Edge{
		{From: 0, To: 1, Weight: 9},
		{From: 1, To: 2, Weight: 1},
		{From: 0, To: 2, Weight: 4},
	}
	orig := append([]prim_kruskal.Edge(nil), edges...)

	_, err := prim_kruskal.Kruskal(edges, 3)
	require.NoError(t, err)
	assert.Equal(t, orig, edges)
}

func TestKruskal_StableTies(t *testing.T) {
	// All weights equal: the first edges in input order win.
	edges := []prim_kruskal.Edge{
		{From: 2, To: 3, Weight: 1},
		{From: 0, To: 1, Weight: 1},
		{From: 1, To: 3, Weight: 1},
		{From: 0, To: 2, Weight: 1},
	}
	f, err := prim_kruskal.Kruskal(edges, 4)
	require.NoError(t, err)
	assert.Equal(t, edges[:3], f.Edges)
}

func TestKruskal_Validation(t *testing.T) {
	cases := []struct {
		name  string
		edges []prim_kruskal.Edge
		n     int
		want  error
	}{
		{"negative n", nil, -1, prim_kruskal.ErrNegativeSize},
		{"from out of range", []prim_kruskal.Edge{{From: 3, To: 0, Weight: 1}}, 3, prim_kruskal.ErrInvalidVertex},
		{"to negative", []prim_kruskal.Edge{{From: 0, To: -1, Weight: 1}}, 3, dsu.ErrInvalidVertex},
		{"edge with n=0", []prim_kruskal.Edge{{From: 0, To: 0, Weight: 1}}, 0, prim_kruskal.ErrInvalidVertex},
		{"nan", []prim_kruskal.Edge{{From: 0, To: 1, Weight: math.NaN()}}, 2, prim_kruskal.ErrInvalidWeight},
		{"inf", []prim_kruskal.Edge{{From: 0, To: 1, Weight: math.Inf(-1)}}, 2, prim_kruskal.ErrInvalidWeight},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, errK := prim_kruskal.Kruskal(tc.edges, tc.n)
			assert.ErrorIs(t, errK, tc.want)
			_, errP := prim_kruskal.Prim(tc.edges, tc.n, 0)
			assert.ErrorIs(t, errP, tc.want)
		})
	}

	// MaxWeight itself is a valid weight.
	_, err := prim_kruskal.Kruskal([]prim_kruskal.Edge{{From: 0, To: 1, Weight: prim_kruskal.MaxWeight}}, 2)
	assert.NoError(t, err)
}

// TestKruskal_MatchesBruteForce checks minimality against exhaustive search on small graphs.
func TestKruskal_MatchesBruteForce(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	for trial := 0; trial < 60; trial++ {
		n := 2 + r.Intn(7) // 2..8
		edges := randomConnected(r, n, r.Intn(13-n)+1)

		want, ok := bruteForceMST(t, edges, n)
		require.True(t, ok)

		for _, mode := range []dsu.Mode{dsu.ByRank, dsu.BySize} {
			f, err := prim_kruskal.Kruskal(edges, n, prim_kruskal.WithUnionMode(mode))
			require.NoError(t, err)
			assert.Len(t, f.Edges, n-1)
			assert.Equal(t, want, f.Total, "trial %d, mode %s", trial, mode)
		}
	}
}

// TestKruskal_ForestSize builds c separate connected blocks and checks n - c accepted edges.
func TestKruskal_ForestSize(t *testing.T) {
	r := rand.New(rand.NewSource(99))
	for trial := 0; trial < 30; trial++ {
		c := 1 + r.Intn(5)
		var edges []prim_kruskal.Edge
		n := 0
		for b := 0; b < c; b++ {
			size := 1 + r.Intn(6)
			for _, e := range randomConnectedOrEmpty(r, size) {
				e.From += n
				e.To += n
				edges = append(edges, e)
			}
			n += size
		}

		f, err := prim_kruskal.Kruskal(edges, n)
		assert.Len(t, f.Edges, n-c)
		assert.Equal(t, c, f.Components)
		if c > 1 {
			assert.ErrorIs(t, err, prim_kruskal.ErrDisconnected)
		} else {
			assert.NoError(t, err)
		}

		count, err := prim_kruskal.CountTreeEdges(edges, n)
		require.NoError(t, err)
		assert.Equal(t, n-c, count)
	}
}

// randomConnectedOrEmpty is randomConnected, allowing single-vertex blocks.
func randomConnectedOrEmpty(r *rand.Rand, n int) []prim_kruskal.Edge {
	if n == 1 {
		return nil
	}

	return randomConnected(r, n, r.Intn(4))
}

func TestKruskal_Deterministic(t *testing.T) {
	edges := randomConnected(rand.New(rand.NewSource(1)), 50, 200)

	a, errA := prim_kruskal.Kruskal(edges, 50)
	b, errB := prim_kruskal.Kruskal(edges, 50)
	require.NoError(t, errA)
	require.NoError(t, errB)
	assert.Equal(t, a, b)
}

func TestPrim_Square(t *testing.T) {
	f, err := prim_kruskal.Prim(square(), 4, 3)
	require.NoError(t, err)
	assert.Equal(t, 6.0, f.Total)
	assert.Equal(t, []prim_kruskal.Edge{
		{From: 3, To: 2, Weight: 3},
		{From: 2, To: 1, Weight: 2},
		{From: 1, To: 0, Weight: 1},
	}, f.Edges)
}

func TestPrim_RootValidation(t *testing.T) {
	_, err := prim_kruskal.Prim(square(), 4, 4)
	assert.ErrorIs(t, err, prim_kruskal.ErrInvalidVertex)

	f, err := prim_kruskal.Prim(nil, 0, 0)
	require.NoError(t, err)
	assert.Empty(t, f.Edges)

	f, err = prim_kruskal.Prim(nil, 1, 0)
	require.NoError(t, err)
	assert.Empty(t, f.Edges)
	assert.Equal(t, 1, f.Components)
}

func TestPrim_Disconnected(t *testing.T) {
	edges := []prim_kruskal.Edge{
		{From: 0, To: 1, Weight: 1},
		{From: 2, To: 3, Weight: 1},
		{From: 3, To: 4, Weight: 7},
	}

	f, err := prim_kruskal.Prim(edges, 6, 3)
	assert.ErrorIs(t, err, prim_kruskal.ErrDisconnected)
	assert.Equal(t, 3, f.Components) // {2,3,4}, {0,1}, {5}
	assert.Len(t, f.Edges, 3)
	assert.Equal(t, 9.0, f.Total)

	_, err = prim_kruskal.Prim(edges, 6, 3, prim_kruskal.WithSpanningForest())
	assert.NoError(t, err)
}

// TestComparison_PrimKruskal checks that both algorithms agree on total weight,
// for minimum and maximum trees.
func TestComparison_PrimKruskal(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	for trial := 0; trial < 40; trial++ {
		n := 2 + r.Intn(40)
		edges := randomConnected(r, n, r.Intn(3*n))
		root := r.Intn(n)

		for _, opts := range [][]prim_kruskal.Option{nil, {prim_kruskal.WithMaximum()}} {
			k, errK := prim_kruskal.Kruskal(edges, n, opts...)
			p, errP := prim_kruskal.Prim(edges, n, root, opts...)
			require.NoError(t, errK)
			require.NoError(t, errP)
			assert.Len(t, p.Edges, n-1)
			assert.Equal(t, k.Total, p.Total)
		}
	}
}

func TestHasCycle(t *testing.T) {
	cases := []struct {
		name  string
		edges []prim_kruskal.Edge
		n     int
		want  bool
	}{
		{"empty", nil, 3, false},
		{"path", []prim_kruskal.Edge{{From: 0, To: 1}, {From: 1, To: 2}}, 3, false},
		{"triangle", []prim_kruskal.Edge{{From: 0, To: 1}, {From: 1, To: 2}, {From: 2, To: 0}}, 3, true},
		{"self-loop", []prim_kruskal.Edge{{From: 1, To: 1}}, 3, true},
		{"parallel", []prim_kruskal.Edge{{From: 0, To: 1}, {From: 1, To: 0}}, 2, true},
		{"two trees", []prim_kruskal.Edge{{From: 0, To: 1}, {From: 2, To: 3}}, 4, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := prim_kruskal.HasCycle(tc.edges, tc.n)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}

	_, err := prim_kruskal.HasCycle([]prim_kruskal.Edge{{From: 0, To: 5}}, 2)
	assert.ErrorIs(t, err, prim_kruskal.ErrInvalidVertex)
}

func TestCompute(t *testing.T) {
	opts := prim_kruskal.DefaultOptions()
	f, err := prim_kruskal.Compute(square(), 4, opts)
	require.NoError(t, err)
	assert.Equal(t, 6.0, f.Total)

	opts.Method = prim_kruskal.MethodPrim
	opts.Root = 2
	opts.Maximum = true
	f, err = prim_kruskal.Compute(square(), 4, opts)
	require.NoError(t, err)
	assert.Equal(t, 11.0, f.Total)

	opts.Method = "boruvka"
	_, err = prim_kruskal.Compute(square(), 4, opts)
	assert.ErrorIs(t, err, prim_kruskal.ErrUnknownMethod)
}

// TestWeightOverflow checks that a forest whose total leaves the float64 range
// is rejected, although each edge weight on its own is valid.
func TestWeightOverflow(t *testing.T) {
	edges := []prim_kruskal.Edge{
		{From: 0, To: 1, Weight: prim_kruskal.MaxWeight},
		{From: 1, To: 2, Weight: prim_kruskal.MaxWeight},
	}

	f, err := prim_kruskal.Kruskal(edges, 3)
	assert.ErrorIs(t, err, prim_kruskal.ErrWeightOverflow)
	assert.Empty(t, f.Edges)
	assert.False(t, math.IsInf(f.Total, 0))

	_, err = prim_kruskal.Prim(edges, 3, 0)
	assert.ErrorIs(t, err, prim_kruskal.ErrWeightOverflow)

	// Negative side overflows the same way.
	neg := []prim_kruskal.Edge{
		{From: 0, To: 1, Weight: -prim_kruskal.MaxWeight},
		{From: 1, To: 2, Weight: -prim_kruskal.MaxWeight},
	}
	_, err = prim_kruskal.Kruskal(neg, 3, prim_kruskal.WithMaximum())
	assert.ErrorIs(t, err, prim_kruskal.ErrWeightOverflow)

	// A cycle edge with a huge weight is never summed, so the tree stays valid.
	ok := []prim_kruskal.Edge{
		{From: 0, To: 1, Weight: 1},
		{From: 1, To: 2, Weight: prim_kruskal.MaxWeight},
		{From: 0, To: 2, Weight: prim_kruskal.MaxWeight},
	}
	f, err = prim_kruskal.Kruskal(ok, 3)
	require.NoError(t, err)
	assert.Equal(t, prim_kruskal.MaxWeight, f.Total) // 1 is lost to rounding
}

func TestCountTreeEdges(t *testing.T) {
	edges := []prim_kruskal.Edge{
		{From: 0, To: 1, Weight: 3},
		{From: 1, To: 0, Weight: 1},
		{From: 2, To: 2, Weight: 0},
		{From: 3, To: 4, Weight: prim_kruskal.MaxWeight},
		{From: 4, To: 2, Weight: prim_kruskal.MaxWeight},
	}

	// Weights never get summed, so totals that would overflow do not matter.
	count, err := prim_kruskal.CountTreeEdges(edges, 6)
	require.NoError(t, err)
	assert.Equal(t, 3, count) // {0,1}, {2,3,4}, {5}

	count, err = prim_kruskal.CountTreeEdges(nil, 1)
	require.NoError(t, err)
	assert.Zero(t, count)

	_, err = prim_kruskal.CountTreeEdges([]prim_kruskal.Edge{{From: 0, To: 9}}, 2)
	assert.ErrorIs(t, err, prim_kruskal.ErrInvalidVertex)

	_, err = prim_kruskal.CountTreeEdges(nil, -3)
	assert.ErrorIs(t, err, prim_kruskal.ErrNegativeSize)
}
