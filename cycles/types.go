// Package cycles types: the graph capability boundary, the visitor
// protocol, and sentinel errors.
package cycles

import "errors"

var (
	// ErrGraphNil is returned when a nil Digraph is passed to
	// VisitCycles, VisitAllCycles, or Cycles.
	ErrGraphNil = errors.New("cycles: graph is nil")

	// ErrVisitorNil is returned when a nil visitor callback is supplied.
	ErrVisitorNil = errors.New("cycles: visitor is nil")

	// ErrNeighborFetch indicates a failure to retrieve neighbors from the graph.
	ErrNeighborFetch = errors.New("cycles: failed to fetch neighbors")
)

// Digraph is the minimal capability the cycle search requires from a
// directed graph: node enumeration and outgoing-neighbor iteration.
// The dense node→index mapping the search needs internally is built per
// component from Vertices positions, so implementations only supply
// these two operations. *core.Graph satisfies the interface.
type Digraph interface {
	// Vertices enumerates all vertex IDs.
	Vertices() []string

	// NeighborIDs enumerates the out-neighbors of id. Neighbors outside
	// the component under search are ignored by the algorithm.
	NeighborIDs(id string) ([]string, error)
}

// Visitor is invoked once per discovered elementary cycle with the
// graph under enumeration and the cycle's vertices in path order.
//
// Return stop == false to continue; return stop == true to abort the
// whole enumeration, in which case VisitCycles returns value unchanged.
// The cycle slice is reused between invocations — copy it to retain it.
type Visitor func(g Digraph, cycle []string) (value interface{}, stop bool)
