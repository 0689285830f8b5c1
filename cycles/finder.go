// Johnson's backtracking circuit search within one strongly connected
// component.
//
// Per root s (iterated over local indices 0..n-1), circuit extends a
// simple path outward from s and reports a cycle whenever an edge
// closes back to s. blocked marks vertices excluded from extending the
// current path; b[w] records vertices waiting to be reactivated once w
// unblocks. Vertices with local index below the current root stay
// permanently blocked, which is what makes every cycle start at its
// lowest-local-index vertex and be reported exactly once.

package cycles

import (
	"fmt"
	"sort"
)

// cycleFinder holds the search state for one component. All of it is
// created fresh per component and discarded afterwards; nothing
// survives across components or across enumeration calls.
type cycleFinder struct {
	graph Digraph        // the graph under enumeration (read-only)
	comp  []string       // component members; local index = position
	index map[string]int // vertex ID → local index within comp
	visit Visitor        // cycle sink

	blocked []bool             // local index → excluded from path extension
	b       []map[int]struct{} // local index → vertices awaiting its unblocking
	stack   []string           // current simple path, rooted at comp[s]
	s       int                // local index of the current root

	// Termination carriers, checked after every recursive call site.
	// Once either is set, no further scanning or state mutation happens.
	stopped bool        // visitor requested a break
	value   interface{} // value carried by the break
	err     error       // collaborator failure (wraps ErrNeighborFetch)
}

// newCycleFinder builds fresh search state for one component.
func newCycleFinder(g Digraph, comp []string, visit Visitor) *cycleFinder {
	n := len(comp)
	f := &cycleFinder{
		graph:   g,
		comp:    comp,
		index:   make(map[string]int, n),
		visit:   visit,
		blocked: make([]bool, n),
		b:       make([]map[int]struct{}, n),
		stack:   make([]string, 0, n),
	}
	for i, id := range comp {
		f.index[id] = i
	}
	for i := range f.b {
		f.b[i] = make(map[int]struct{})
	}

	return f
}

// run iterates the root vertex s over local indices 0..n-1 and searches
// for every cycle whose lowest local index is s.
func (f *cycleFinder) run() {
	for s := range f.comp {
		f.s = s

		// 1. Reset: vertices ≥ s become eligible again; B-sets above s
		//    are emptied. Indices below s stay permanently blocked from
		//    prior root rounds.
		for i := s; i < len(f.blocked); i++ {
			f.blocked[i] = false
		}
		for i := s + 1; i < len(f.b); i++ {
			clear(f.b[i])
		}

		// 2. Search all circuits through s.
		f.circuit(s)
		if f.stopped || f.err != nil {
			return
		}

		// 3. A vertex that has served as root never participates again,
		//    even as an intermediate node, within this component.
		f.blocked[s] = true
	}
}

// circuit extends the current path through local vertex v and reports
// whether any cycle was found through v during this root's search.
func (f *cycleFinder) circuit(v int) bool {
	f.stack = append(f.stack, f.comp[v])
	f.blocked[v] = true

	nbrs := f.localNeighbors(v)
	if f.err != nil {
		return false
	}

	found := false
	for _, w := range nbrs {
		if w == f.s {
			// The path has closed back to the root: stack holds one
			// complete elementary cycle.
			value, stop := f.visit(f.graph, f.stack)
			if stop {
				f.stopped = true
				f.value = value

				return found
			}
			found = true
		} else if !f.blocked[w] {
			if f.circuit(w) {
				found = true
			}
			if f.stopped || f.err != nil {
				return found
			}
		}
	}

	if found {
		// Progress was made through v: let it participate in future
		// explorations, and transitively reactivate whatever waited on it.
		f.unblock(v)
	} else {
		// Dead branch: v waits on each neighbor's future unblocking.
		for _, w := range nbrs {
			f.b[w][v] = struct{}{}
		}
	}

	f.stack = f.stack[:len(f.stack)-1]

	return found
}

// unblock clears v's block and transitively reactivates every vertex
// recorded as waiting on v.
func (f *cycleFinder) unblock(v int) {
	f.blocked[v] = false

	// Snapshot and sort the waiters for a deterministic recursion order.
	waiting := make([]int, 0, len(f.b[v]))
	for w := range f.b[v] {
		waiting = append(waiting, w)
	}
	sort.Ints(waiting)

	for _, w := range waiting {
		if f.blocked[w] {
			f.unblock(w)
		}
	}
	clear(f.b[v])
}

// localNeighbors maps v's out-neighbors to local indices, discarding
// neighbors outside the component and collapsing parallel edges.
func (f *cycleFinder) localNeighbors(v int) []int {
	ids, err := f.graph.NeighborIDs(f.comp[v])
	if err != nil {
		f.err = fmt.Errorf("%w: NeighborIDs(%q): %v", ErrNeighborFetch, f.comp[v], err)

		return nil
	}

	local := make([]int, 0, len(ids))
	seen := make(map[int]struct{}, len(ids))
	for _, id := range ids {
		w, ok := f.index[id]
		if !ok {
			continue // neighbor belongs to another component
		}
		if _, dup := seen[w]; dup {
			continue // parallel edge: each elementary cycle reported once
		}
		seen[w] = struct{}{}
		local = append(local, w)
	}

	return local
}
