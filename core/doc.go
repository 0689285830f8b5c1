// Package core provides the directed multigraph used throughout
// graphcycles: a compact, thread-safe adjacency structure storing
// vertex IDs and directed edges, with optional self-loops and parallel
// edges.
//
// What:
//
//   - Graph: directed multigraph keyed by string vertex IDs.
//   - Mutation: AddVertex, AddEdge (auto-creates endpoints),
//     RemoveVertex, RemoveEdge.
//   - Queries: HasVertex, HasEdge, Vertices (sorted), NeighborIDs
//     (sorted, unique), VertexCount, EdgeCount, Clone.
//
// Why:
//   - The cycle search in package cycles only needs vertex enumeration
//     and outgoing-neighbor iteration; core supplies the default
//     implementation of that capability while staying usable on its own.
//
// Concurrency:
//   - All methods are safe for concurrent use via an internal
//     sync.RWMutex. Mutating a graph while another goroutine enumerates
//     its cycles is not supported.
//
// Policy flags (construction-time, immutable):
//   - WithLoops()      permit self-loops (v→v)
//   - WithMultiEdges() permit parallel edges between the same endpoints
//
// Errors:
//
//   - ErrEmptyVertexID        vertex ID is the empty string
//   - ErrVertexNotFound       operation referenced a missing vertex
//   - ErrEdgeNotFound         operation referenced a missing edge
//   - ErrLoopNotAllowed       self-loop attempted with loops disabled
//   - ErrMultiEdgeNotAllowed  parallel edge attempted with multi-edges disabled
//
// Complexity:
//
//   - AddVertex/AddEdge/HasEdge: O(1) amortized
//   - Vertices:    O(V log V) (sorted snapshot)
//   - NeighborIDs: O(d log d) (sorted snapshot of out-neighbors)
package core
