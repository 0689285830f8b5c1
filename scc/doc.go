// Package scc computes the strongly connected components of a directed
// graph using Tarjan's algorithm.
//
// What:
//
//   - StronglyConnected(g): partitions all vertices of g into maximal
//     sets in which every vertex reaches every other via directed paths
//     inside the set. Singleton components are included (a vertex with
//     a self-loop forms a size-1 component that still contains a cycle).
//
// Why:
//   - SCC decomposition is the standard preprocessing step for
//     elementary-cycle enumeration (package cycles): every elementary
//     cycle lies entirely within one component, so the search can run
//     per component instead of over the whole graph.
//
// Implementation notes:
//   - The traversal uses an explicit frame stack rather than native
//     recursion, so the decomposition never exhausts the call stack on
//     large graphs.
//   - Roots are taken in Vertices() order; for graphs whose Vertices()
//     is sorted (e.g. core.Graph) the component order is stable across
//     runs. Components are emitted in reverse topological order.
//
// Complexity:
//
//   - Time:   O(V + E)
//   - Memory: O(V) for index/lowlink bookkeeping and the two stacks.
//
// Errors:
//
//   - ErrGraphNil       g is nil
//   - ErrNeighborFetch  the graph failed to enumerate a vertex's neighbors
package scc
