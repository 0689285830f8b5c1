// Mutation and query methods for Graph.
//
// Determinism policy: every snapshot accessor (Vertices, NeighborIDs)
// returns a freshly allocated, lexicographically sorted slice, so
// callers can rely on stable iteration order in tests and traversals.

package core

import "sort"

// AddVertex inserts a vertex if missing (idempotent).
// Returns ErrEmptyVertexID if id is the empty string.
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	g.addVertexLocked(id)

	return nil
}

// addVertexLocked registers id in the catalog and bootstraps its
// adjacency bucket. Caller must hold g.mu for writing.
func (g *Graph) addVertexLocked(id string) {
	if _, exists := g.vertices[id]; exists {
		return
	}
	g.vertices[id] = struct{}{}
	g.out[id] = make(map[string]int)
}

// HasVertex reports whether the vertex ID exists (empty ID ⇒ false).
// Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	if id == "" {
		return false
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.vertices[id]

	return ok
}

// RemoveVertex deletes the vertex and every edge incident to it.
// Returns ErrVertexNotFound if the vertex does not exist.
// Complexity: O(V + d) where d is the vertex degree.
func (g *Graph) RemoveVertex(id string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.vertices[id]; !ok {
		return ErrVertexNotFound
	}

	// 1. Drop outgoing edges (including any self-loop).
	for _, n := range g.out[id] {
		g.edgeCount -= n
	}
	delete(g.out, id)

	// 2. Drop incoming edges from every other vertex.
	for from, bucket := range g.out {
		if n, ok := bucket[id]; ok {
			g.edgeCount -= n
			delete(g.out[from], id)
		}
	}

	// 3. Drop from the catalog.
	delete(g.vertices, id)

	return nil
}

// AddEdge inserts a directed edge from → to, creating missing endpoint
// vertices automatically.
//
// Errors:
//   - ErrEmptyVertexID        if either endpoint ID is empty
//   - ErrLoopNotAllowed       if from == to and loops are disabled
//   - ErrMultiEdgeNotAllowed  if the edge exists and multi-edges are disabled
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string) error {
	// 1. Validate endpoint IDs.
	if from == "" || to == "" {
		return ErrEmptyVertexID
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	// 2. Enforce policy flags.
	if from == to && !g.allowLoops {
		return ErrLoopNotAllowed
	}
	if g.out[from][to] > 0 && !g.allowMulti {
		return ErrMultiEdgeNotAllowed
	}

	// 3. Ensure endpoints exist, then record the edge.
	g.addVertexLocked(from)
	g.addVertexLocked(to)
	g.out[from][to]++
	g.edgeCount++

	return nil
}

// HasEdge reports whether at least one edge from → to exists.
// Complexity: O(1).
func (g *Graph) HasEdge(from, to string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.out[from][to] > 0
}

// RemoveEdge deletes every parallel edge from → to.
// Returns ErrEdgeNotFound if no such edge exists.
// Complexity: O(1).
func (g *Graph) RemoveEdge(from, to string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	n := g.out[from][to]
	if n == 0 {
		return ErrEdgeNotFound
	}
	delete(g.out[from], to)
	g.edgeCount -= n

	return nil
}

// Vertices returns a sorted snapshot of all vertex IDs.
// The slice is freshly allocated; callers may retain and mutate it.
// Complexity: O(V log V).
func (g *Graph) Vertices() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	ids := make([]string, 0, len(g.vertices))
	for id := range g.vertices {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// NeighborIDs returns a sorted snapshot of the distinct out-neighbors
// of id. Parallel edges contribute a single entry; a self-loop makes a
// vertex its own neighbor. Returns ErrVertexNotFound if id is missing.
// Complexity: O(d log d) where d is the out-degree.
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}

	ids := make([]string, 0, len(g.out[id]))
	for to := range g.out[id] {
		ids = append(ids, to)
	}
	sort.Strings(ids)

	return ids, nil
}

// VertexCount returns the number of vertices.
// Complexity: O(1).
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.vertices)
}

// EdgeCount returns the number of edges, counting multiplicity of
// parallel edges.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}

// Clone returns a deep copy of the graph: same policy flags, fresh
// storage. Mutating the clone never affects the original.
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	c := &Graph{
		allowLoops: g.allowLoops,
		allowMulti: g.allowMulti,
		vertices:   make(map[string]struct{}, len(g.vertices)),
		out:        make(map[string]map[string]int, len(g.out)),
		edgeCount:  g.edgeCount,
	}
	for id := range g.vertices {
		c.vertices[id] = struct{}{}
	}
	for from, bucket := range g.out {
		nb := make(map[string]int, len(bucket))
		for to, n := range bucket {
			nb[to] = n
		}
		c.out[from] = nb
	}

	return c
}
