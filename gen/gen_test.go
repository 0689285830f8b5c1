package gen_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphcycles/core"
	"github.com/katalvlaran/graphcycles/gen"
)

// TestRing_Shape verifies vertex naming, edge count, and wraparound.
func TestRing_Shape(t *testing.T) {
	g, err := gen.BuildGraph(nil, nil, gen.Ring(4))
	require.NoError(t, err)

	assert.Equal(t, []string{"N0", "N1", "N2", "N3"}, g.Vertices())
	assert.Equal(t, 4, g.EdgeCount())
	assert.True(t, g.HasEdge("N0", "N1"))
	assert.True(t, g.HasEdge("N3", "N0")) // wraparound edge
	assert.False(t, g.HasEdge("N1", "N0"))
}

// TestRing_SelfLoopDegenerate covers n == 1: a single self-loop that
// requires the loops policy flag.
func TestRing_SelfLoopDegenerate(t *testing.T) {
	// Without WithLoops the core rejects the edge.
	_, err := gen.BuildGraph(nil, nil, gen.Ring(1))
	assert.ErrorIs(t, err, core.ErrLoopNotAllowed)

	// With WithLoops we get the one-vertex ring.
	g, err := gen.BuildGraph([]core.GraphOption{core.WithLoops()}, nil, gen.Ring(1))
	require.NoError(t, err)
	assert.True(t, g.HasEdge("N0", "N0"))
	assert.Equal(t, 1, g.EdgeCount())
}

// TestPath_Acyclic checks P_n shape: n-1 edges, no wraparound.
func TestPath_Acyclic(t *testing.T) {
	g, err := gen.BuildGraph(nil, nil, gen.Path(5))
	require.NoError(t, err)

	assert.Equal(t, 5, g.VertexCount())
	assert.Equal(t, 4, g.EdgeCount())
	assert.False(t, g.HasEdge("N4", "N0"))
}

// TestComplete_EdgeCount checks K_n has n·(n-1) directed edges.
func TestComplete_EdgeCount(t *testing.T) {
	g, err := gen.BuildGraph(nil, nil, gen.Complete(5))
	require.NoError(t, err)

	assert.Equal(t, 5, g.VertexCount())
	assert.Equal(t, 5*4, g.EdgeCount())
	assert.False(t, g.HasEdge("N2", "N2"))
}

// TestRandom_Deterministic ensures identical seeds yield identical
// graphs and distinct seeds (almost surely) do not.
func TestRandom_Deterministic(t *testing.T) {
	build := func(seed int64) *core.Graph {
		g, err := gen.BuildGraph(nil, []gen.Option{gen.WithSeed(seed)}, gen.Random(8, 0.4))
		require.NoError(t, err)

		return g
	}

	// fingerprint flattens adjacency into one comparable string.
	fingerprint := func(g *core.Graph) string {
		var sb strings.Builder
		for _, v := range g.Vertices() {
			nbs, err := g.NeighborIDs(v)
			require.NoError(t, err)
			sb.WriteString(v + ":" + strings.Join(nbs, ",") + ";")
		}

		return sb.String()
	}

	a, b, c := build(42), build(42), build(43)
	assert.Equal(t, fingerprint(a), fingerprint(b), "same seed must rebuild the same graph")
	assert.NotEqual(t, fingerprint(a), fingerprint(c), "distinct seeds should diverge on 56 trials")
}

// TestConstructors_Validation covers the sentinel errors.
func TestConstructors_Validation(t *testing.T) {
	_, err := gen.BuildGraph(nil, nil, gen.Ring(0))
	assert.ErrorIs(t, err, gen.ErrTooFewVertices)

	_, err = gen.BuildGraph(nil, nil, gen.Complete(1))
	assert.ErrorIs(t, err, gen.ErrTooFewVertices)

	_, err = gen.BuildGraph(nil, nil, gen.Random(3, 1.5))
	assert.ErrorIs(t, err, gen.ErrInvalidProbability)

	_, err = gen.BuildGraph(nil, nil, gen.Random(3, -0.1))
	assert.ErrorIs(t, err, gen.ErrInvalidProbability)
}

// TestBuildGraph_ComposesConstructors applies two constructors with
// distinct prefixes via separate builds merged by hand, then checks a
// single build with two constructors shares the ID space.
func TestBuildGraph_ComposesConstructors(t *testing.T) {
	// Ring(3) then Path(5) over the same IDs: path edges N0→N1, N1→N2
	// already exist from the ring, so composition on a plain graph
	// surfaces the multi-edge policy.
	_, err := gen.BuildGraph(nil, nil, gen.Ring(3), gen.Path(3))
	assert.ErrorIs(t, err, core.ErrMultiEdgeNotAllowed)

	// With multi-edges allowed the same composition succeeds.
	g, err := gen.BuildGraph([]core.GraphOption{core.WithMultiEdges()}, nil, gen.Ring(3), gen.Path(3))
	require.NoError(t, err)
	assert.Equal(t, 3+2, g.EdgeCount())
	assert.Equal(t, 3, g.VertexCount())
}

// TestWithIDPrefix renames generated vertices.
func TestWithIDPrefix(t *testing.T) {
	g, err := gen.BuildGraph(nil, []gen.Option{gen.WithIDPrefix("v")}, gen.Ring(3))
	require.NoError(t, err)
	assert.Equal(t, []string{"v0", "v1", "v2"}, g.Vertices())
}
