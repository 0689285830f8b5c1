package scc_test

import (
	"errors"
	"fmt"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphcycles/core"
	"github.com/katalvlaran/graphcycles/scc"
)

// sortedComponents normalizes a decomposition for order-insensitive
// comparison: members sorted within each component, components sorted
// by their first member.
func sortedComponents(comps [][]string) [][]string {
	out := make([][]string, 0, len(comps))
	for _, c := range comps {
		cc := append([]string(nil), c...)
		sort.Strings(cc)
		out = append(out, cc)
	}
	sort.Slice(out, func(i, j int) bool { return out[i][0] < out[j][0] })

	return out
}

// TestStronglyConnected_NilGraph verifies the sentinel for nil input.
func TestStronglyConnected_NilGraph(t *testing.T) {
	comps, err := scc.StronglyConnected(nil)
	assert.ErrorIs(t, err, scc.ErrGraphNil)
	assert.Nil(t, comps)
}

// TestStronglyConnected_DAG ensures an acyclic graph decomposes into singletons.
func TestStronglyConnected_DAG(t *testing.T) {
	g := core.NewGraph()
	// A -> B -> D, A -> C -> D
	_ = g.AddEdge("A", "B")
	_ = g.AddEdge("A", "C")
	_ = g.AddEdge("B", "D")
	_ = g.AddEdge("C", "D")

	comps, err := scc.StronglyConnected(g)
	require.NoError(t, err)
	assert.Equal(t,
		[][]string{{"A"}, {"B"}, {"C"}, {"D"}},
		sortedComponents(comps),
	)
}

// TestStronglyConnected_Ring collapses a directed ring into one component.
func TestStronglyConnected_Ring(t *testing.T) {
	g := core.NewGraph()
	// A -> B -> C -> D -> A
	_ = g.AddEdge("A", "B")
	_ = g.AddEdge("B", "C")
	_ = g.AddEdge("C", "D")
	_ = g.AddEdge("D", "A")

	comps, err := scc.StronglyConnected(g)
	require.NoError(t, err)
	require.Len(t, comps, 1)
	assert.ElementsMatch(t, []string{"A", "B", "C", "D"}, comps[0])
}

// TestStronglyConnected_TwoComponentsWithBridge covers two cycles joined
// by a one-way bridge: the bridge must not merge them.
func TestStronglyConnected_TwoComponentsWithBridge(t *testing.T) {
	g := core.NewGraph()
	// Component 1: A <-> B. Component 2: C <-> D. Bridge: B -> C.
	_ = g.AddEdge("A", "B")
	_ = g.AddEdge("B", "A")
	_ = g.AddEdge("C", "D")
	_ = g.AddEdge("D", "C")
	_ = g.AddEdge("B", "C")

	comps, err := scc.StronglyConnected(g)
	require.NoError(t, err)
	assert.Equal(t,
		[][]string{{"A", "B"}, {"C", "D"}},
		sortedComponents(comps),
	)
}

// TestStronglyConnected_SelfLoopSingleton keeps a self-looping vertex in
// its own size-1 component.
func TestStronglyConnected_SelfLoopSingleton(t *testing.T) {
	g := core.NewGraph(core.WithLoops())
	_ = g.AddEdge("A", "A")
	_ = g.AddEdge("A", "B")

	comps, err := scc.StronglyConnected(g)
	require.NoError(t, err)
	assert.Equal(t,
		[][]string{{"A"}, {"B"}},
		sortedComponents(comps),
	)
}

// TestStronglyConnected_Partition asserts every vertex lands in exactly
// one component on a denser fixture.
func TestStronglyConnected_Partition(t *testing.T) {
	g := core.NewGraph()
	// Terraform-style fixture: nested cycles sharing vertices.
	edges := []struct{ U, V string }{
		{"A", "B"}, {"B", "C"}, {"C", "A"},
		{"C", "D"}, {"D", "E"}, {"E", "C"},
		{"E", "F"}, {"F", "G"},
	}
	for _, e := range edges {
		require.NoError(t, g.AddEdge(e.U, e.V))
	}

	comps, err := scc.StronglyConnected(g)
	require.NoError(t, err)

	seen := make(map[string]int)
	for _, c := range comps {
		for _, v := range c {
			seen[v]++
		}
	}
	for _, v := range g.Vertices() {
		assert.Equal(t, 1, seen[v], "vertex %s must appear exactly once", v)
	}
	// A,B,C,D,E form one component (the two triangles share C); F and G are singletons.
	assert.Equal(t,
		[][]string{{"A", "B", "C", "D", "E"}, {"F"}, {"G"}},
		sortedComponents(comps),
	)
}

// faultyGraph reports vertices but fails neighbor enumeration, to
// exercise error wrapping.
type faultyGraph struct{ boom error }

func (f faultyGraph) Vertices() []string { return []string{"A"} }

func (f faultyGraph) NeighborIDs(string) ([]string, error) { return nil, f.boom }

// TestStronglyConnected_NeighborFetchError wraps collaborator failures
// in ErrNeighborFetch.
func TestStronglyConnected_NeighborFetchError(t *testing.T) {
	boom := errors.New("backing store unavailable")
	comps, err := scc.StronglyConnected(faultyGraph{boom: boom})
	assert.ErrorIs(t, err, scc.ErrNeighborFetch)
	assert.Nil(t, comps)
}

// BenchmarkStronglyConnected_Ring1000 measures decomposition of a single
// 1000-vertex ring (one large component).
func BenchmarkStronglyConnected_Ring1000(b *testing.B) {
	g := core.NewGraph()
	const n = 1000
	for i := 0; i < n; i++ {
		_ = g.AddEdge(fmt.Sprintf("N%d", i), fmt.Sprintf("N%d", (i+1)%n))
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = scc.StronglyConnected(g)
	}
}
