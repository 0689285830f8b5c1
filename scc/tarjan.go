// Tarjan's strongly-connected-components algorithm, iterative form.
//
// The classic formulation recurses once per vertex; here each would-be
// recursive call becomes a frame on an explicit stack so that component
// extraction is depth-safe regardless of graph shape.

package scc

import "fmt"

// tarjan carries the bookkeeping for one decomposition run.
type tarjan struct {
	graph   Digraph         // the graph being decomposed
	next    int             // next DFS index to assign
	index   map[string]int  // vertex → DFS discovery index (presence = visited)
	lowlink map[string]int  // vertex → smallest index reachable from its subtree
	onStack map[string]bool // vertex currently on the component stack
	stack   []string        // Tarjan's component stack
	comps   [][]string      // collected components, emission order
}

// frame is one suspended visit on the explicit traversal stack.
type frame struct {
	v    string   // vertex being visited
	nbrs []string // its out-neighbors, fetched once
	ni   int      // next neighbor offset to examine
}

// StronglyConnected partitions all vertices of g into strongly connected
// components. Each component is an ordered vertex slice; every vertex of
// g appears in exactly one component, singletons included.
//
// Returns ErrGraphNil for a nil graph and wraps neighbor-enumeration
// failures in ErrNeighborFetch.
func StronglyConnected(g Digraph) ([][]string, error) {
	// 1. Validate input graph.
	if g == nil {
		return nil, ErrGraphNil
	}

	// 2. Initialize bookkeeping with capacity hints.
	verts := g.Vertices()
	t := &tarjan{
		graph:   g,
		index:   make(map[string]int, len(verts)),
		lowlink: make(map[string]int, len(verts)),
		onStack: make(map[string]bool, len(verts)),
	}

	// 3. Drive the traversal from every unvisited vertex, in Vertices() order.
	for _, v := range verts {
		if _, seen := t.index[v]; !seen {
			if err := t.visit(v); err != nil {
				return nil, err
			}
		}
	}

	return t.comps, nil
}

// visit runs the iterative strong-connect walk rooted at v.
func (t *tarjan) visit(v string) error {
	// 1. Open the root frame.
	frames := make([]frame, 0, 8)
	f, err := t.open(v)
	if err != nil {
		return err
	}
	frames = append(frames, f)

	// 2. Process frames until the root completes.
	for len(frames) > 0 {
		top := &frames[len(frames)-1]

		// 2a. Neighbors remain: examine the next one.
		if top.ni < len(top.nbrs) {
			w := top.nbrs[top.ni]
			top.ni++

			if _, seen := t.index[w]; !seen {
				// Unvisited: descend by opening a new frame.
				f, err = t.open(w)
				if err != nil {
					return err
				}
				frames = append(frames, f)
			} else if t.onStack[w] {
				// Back edge into the current component stack.
				t.lowlink[top.v] = min(t.lowlink[top.v], t.index[w])
			}

			continue
		}

		// 2b. All neighbors examined: top.v is complete.
		if t.lowlink[top.v] == t.index[top.v] {
			// top.v is a component root: pop its members.
			var comp []string
			for {
				n := len(t.stack) - 1
				w := t.stack[n]
				t.stack = t.stack[:n]
				t.onStack[w] = false
				comp = append(comp, w)
				if w == top.v {
					break
				}
			}
			t.comps = append(t.comps, comp)
		}

		// 2c. Retire the frame and fold its lowlink into the parent.
		done := *top
		frames = frames[:len(frames)-1]
		if len(frames) > 0 {
			parent := &frames[len(frames)-1]
			t.lowlink[parent.v] = min(t.lowlink[parent.v], t.lowlink[done.v])
		}
	}

	return nil
}

// open assigns discovery numbers to v, pushes it on the component stack,
// and fetches its neighbors once.
func (t *tarjan) open(v string) (frame, error) {
	t.index[v] = t.next
	t.lowlink[v] = t.next
	t.next++
	t.stack = append(t.stack, v)
	t.onStack[v] = true

	nbrs, err := t.graph.NeighborIDs(v)
	if err != nil {
		return frame{}, fmt.Errorf("%w: NeighborIDs(%q): %v", ErrNeighborFetch, v, err)
	}

	return frame{v: v, nbrs: nbrs}, nil
}
