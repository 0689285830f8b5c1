// This file declares the Graph type, its construction options, and the
// sentinel errors shared by all core operations.
//
// Graph is a directed multigraph over string vertex IDs. Adjacency is
// stored as out[from][to] = multiplicity, so parallel edges are counted
// rather than materialized and neighbor iteration never yields
// duplicates. A single sync.RWMutex guards all state.

package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex ID is empty.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted when multi-edges are disabled.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")
)

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithLoops permits self-loops (edges from a vertex to itself).
// A self-loop is the one-vertex elementary cycle.
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// WithMultiEdges permits parallel edges between the same endpoints.
// Parallel edges raise EdgeCount but do not change neighbor sets.
func WithMultiEdges() GraphOption {
	return func(g *Graph) { g.allowMulti = true }
}

// Graph is a directed multigraph over string vertex IDs.
//
// All edges are directed (this library's domain is directed-cycle
// enumeration). Self-loops and parallel edges are rejected unless the
// corresponding policy flag was set at construction time.
type Graph struct {
	mu sync.RWMutex // guards everything below

	// Configuration flags (immutable after NewGraph)
	allowLoops bool // allow self-loops
	allowMulti bool // allow parallel edges

	// Storage
	vertices  map[string]struct{}       // vertex catalog
	out       map[string]map[string]int // from → to → multiplicity
	edgeCount int                       // total edges including multiplicity
}

// NewGraph creates an empty directed Graph with the given options.
// By default self-loops and parallel edges are disallowed.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		vertices: make(map[string]struct{}),
		out:      make(map[string]map[string]int),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Looped reports whether self-loops are permitted by policy.
func (g *Graph) Looped() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.allowLoops
}

// Multigraph reports whether parallel edges are permitted by policy.
func (g *Graph) Multigraph() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.allowMulti
}
