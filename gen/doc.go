// Package gen builds deterministic directed-graph fixtures on top of
// package core, for use in tests, examples, and benchmarks.
//
// What:
//
//   - BuildGraph(gopts, opts, cons...): creates a core.Graph with the
//     given graph options, resolves the generator configuration, and
//     applies each Constructor in order.
//   - Constructors: Ring(n), Path(n), Complete(n), Random(n, p).
//   - Options: WithSeed(seed) freezes the stochastic path of Random;
//     WithIDPrefix(prefix) controls vertex naming (default "N").
//
// Determinism:
//   - Same graph options, generator options, and constructor order
//     produce identical graphs. Vertices are added in ascending index
//     order and edge emission order is fixed per constructor.
//
// Errors:
//
//   - ErrTooFewVertices       constructor parameter n below its minimum
//   - ErrInvalidProbability   p outside [0,1]
//   - core sentinel errors    propagated from AddVertex/AddEdge, wrapped
//     with the constructor name
package gen
