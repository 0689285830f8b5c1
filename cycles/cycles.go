// Enumeration API: VisitCycles, VisitAllCycles, Cycles.
//
// These drive the per-component backtracking search in finder.go over
// the strongly connected components of the input graph.

package cycles

import (
	"fmt"

	"github.com/katalvlaran/graphcycles/scc"
)

// VisitCycles applies visit to every elementary cycle of g until the
// visitor asks to stop.
//
// If some invocation returns stop == true, enumeration halts
// immediately and VisitCycles returns (value, true, nil) with that
// invocation's value. If every cycle is visited without a break, it
// returns (nil, false, nil).
//
// A non-nil error is returned only for invalid input (ErrGraphNil,
// ErrVisitorNil) or when the graph collaborator fails to enumerate
// neighbors; cycles already visited before such a failure have been
// reported normally.
func VisitCycles(g Digraph, visit Visitor) (value interface{}, stopped bool, err error) {
	// 1. Validate inputs.
	if g == nil {
		return nil, false, ErrGraphNil
	}
	if visit == nil {
		return nil, false, ErrVisitorNil
	}

	// 2. Decompose into strongly connected components: every elementary
	//    cycle lives inside exactly one of them.
	comps, err := scc.StronglyConnected(g)
	if err != nil {
		return nil, false, fmt.Errorf("cycles: decomposition: %w", err)
	}

	// 3. Search each component in turn with fresh working state.
	for _, comp := range comps {
		finder := newCycleFinder(g, comp, visit)
		finder.run()
		if finder.err != nil {
			return nil, false, finder.err
		}
		if finder.stopped {
			return finder.value, true, nil
		}
	}

	return nil, false, nil
}

// VisitAllCycles applies visit to every elementary cycle of g,
// unconditionally. The cycle slice is reused between invocations —
// copy it to retain it.
func VisitAllCycles(g Digraph, visit func(g Digraph, cycle []string)) error {
	if visit == nil {
		return ErrVisitorNil
	}

	_, _, err := VisitCycles(g, func(gr Digraph, cycle []string) (interface{}, bool) {
		visit(gr, cycle)

		return nil, false
	})

	return err
}

// Cycles materializes every elementary cycle of g, in emission order.
// Each element is a freshly allocated vertex slice safe to retain.
func Cycles(g Digraph) ([][]string, error) {
	var all [][]string
	err := VisitAllCycles(g, func(_ Digraph, cycle []string) {
		all = append(all, append([]string(nil), cycle...))
	})
	if err != nil {
		return nil, err
	}

	return all, nil
}
