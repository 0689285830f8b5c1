// Package scc types: the graph capability boundary and sentinel errors.
package scc

import "errors"

var (
	// ErrGraphNil is returned when a nil Digraph is passed to StronglyConnected.
	ErrGraphNil = errors.New("scc: graph is nil")

	// ErrNeighborFetch indicates a failure to retrieve neighbors from the graph.
	ErrNeighborFetch = errors.New("scc: failed to fetch neighbors")
)

// Digraph is the minimal capability StronglyConnected requires from a
// directed graph. *core.Graph satisfies it; any other representation
// exposing the same two operations works as well.
type Digraph interface {
	// Vertices enumerates all vertex IDs. The order fixes the root
	// iteration order of the decomposition.
	Vertices() []string

	// NeighborIDs enumerates the out-neighbors of id.
	NeighborIDs(id string) ([]string, error)
}
