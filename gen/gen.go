// Fixture constructors and the BuildGraph orchestrator.
//
// Contract shared by all constructors:
//   - Validate parameters early; return sentinel errors, never panic.
//   - Add vertices in ascending index order, then emit edges in a fixed
//     order, so builds are reproducible.
//   - Respect core policy flags: constructors do not silently drop
//     edges the graph rejects; the core error is wrapped and returned.

package gen

import (
	"fmt"

	"github.com/katalvlaran/graphcycles/core"
)

// Constructor minimums (no magic literals at call sites).
const (
	minRingVertices     = 1
	minPathVertices     = 1
	minCompleteVertices = 2
	minRandomVertices   = 1
	probMin             = 0.0
	probMax             = 1.0
)

// BuildGraph creates a new core.Graph with graph options gopts,
// resolves the generator configuration from opts, and applies all
// constructors in order. On the first constructor error the partially
// built graph is discarded and the error returned.
func BuildGraph(gopts []core.GraphOption, opts []Option, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph(gopts...)
	cfg := newConfig(opts...)

	for _, c := range cons {
		if err := c(g, cfg); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// Ring returns a Constructor that builds the directed ring C_n:
// edges i → (i+1) mod n for i = 0..n-1.
//
// n == 1 degenerates to a single self-loop and therefore requires a
// graph built with core.WithLoops(); n == 2 is the two-vertex cycle.
func Ring(n int) Constructor {
	return func(g *core.Graph, cfg config) error {
		if n < minRingVertices {
			return fmt.Errorf("Ring: n=%d < min=%d: %w", n, minRingVertices, ErrTooFewVertices)
		}

		for i := 0; i < n; i++ {
			if err := g.AddVertex(cfg.id(i)); err != nil {
				return fmt.Errorf("Ring: AddVertex(%s): %w", cfg.id(i), err)
			}
		}
		for i := 0; i < n; i++ {
			from, to := cfg.id(i), cfg.id((i+1)%n)
			if err := g.AddEdge(from, to); err != nil {
				return fmt.Errorf("Ring: AddEdge(%s→%s): %w", from, to, err)
			}
		}

		return nil
	}
}

// Path returns a Constructor that builds the directed path P_n:
// edges i → i+1 for i = 0..n-2. A path is acyclic by construction.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg config) error {
		if n < minPathVertices {
			return fmt.Errorf("Path: n=%d < min=%d: %w", n, minPathVertices, ErrTooFewVertices)
		}

		for i := 0; i < n; i++ {
			if err := g.AddVertex(cfg.id(i)); err != nil {
				return fmt.Errorf("Path: AddVertex(%s): %w", cfg.id(i), err)
			}
		}
		for i := 0; i+1 < n; i++ {
			from, to := cfg.id(i), cfg.id(i+1)
			if err := g.AddEdge(from, to); err != nil {
				return fmt.Errorf("Path: AddEdge(%s→%s): %w", from, to, err)
			}
		}

		return nil
	}
}

// Complete returns a Constructor that builds the complete digraph K_n:
// one edge for every ordered pair (i, j), i ≠ j. Self-loops are never
// emitted regardless of graph policy.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg config) error {
		if n < minCompleteVertices {
			return fmt.Errorf("Complete: n=%d < min=%d: %w", n, minCompleteVertices, ErrTooFewVertices)
		}

		for i := 0; i < n; i++ {
			if err := g.AddVertex(cfg.id(i)); err != nil {
				return fmt.Errorf("Complete: AddVertex(%s): %w", cfg.id(i), err)
			}
		}
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if i == j {
					continue
				}
				if err := g.AddEdge(cfg.id(i), cfg.id(j)); err != nil {
					return fmt.Errorf("Complete: AddEdge(%s→%s): %w", cfg.id(i), cfg.id(j), err)
				}
			}
		}

		return nil
	}
}

// Random returns a Constructor that samples an Erdős–Rényi-like digraph
// over n vertices: each ordered pair (i, j), i ≠ j, is included
// independently with probability p. Self-loop pairs are tried only when
// the graph permits loops. Trial order is fixed (i asc, then j asc), so
// outcomes are deterministic for a fixed seed.
func Random(n int, p float64) Constructor {
	return func(g *core.Graph, cfg config) error {
		if n < minRandomVertices {
			return fmt.Errorf("Random: n=%d < min=%d: %w", n, minRandomVertices, ErrTooFewVertices)
		}
		if p < probMin || p > probMax {
			return fmt.Errorf("Random: p=%.6f not in [%.1f,%.1f]: %w", p, probMin, probMax, ErrInvalidProbability)
		}

		for i := 0; i < n; i++ {
			if err := g.AddVertex(cfg.id(i)); err != nil {
				return fmt.Errorf("Random: AddVertex(%s): %w", cfg.id(i), err)
			}
		}
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if i == j && !g.Looped() {
					continue
				}
				if cfg.rng.Float64() >= p {
					continue
				}
				if err := g.AddEdge(cfg.id(i), cfg.id(j)); err != nil {
					return fmt.Errorf("Random: AddEdge(%s→%s): %w", cfg.id(i), cfg.id(j), err)
				}
			}
		}

		return nil
	}
}
