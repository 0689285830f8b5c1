// Package graphcycles enumerates every elementary (simple) cycle of a
// directed graph — eagerly as a materialized collection, or lazily via
// a visitor callback with cooperative early termination.
//
// 🚀 What is graphcycles?
//
//	A small, thread-friendly, zero-dependency library built around
//	Johnson's circuit-finding algorithm:
//		• cycles/ — the search itself: VisitCycles, VisitAllCycles, Cycles
//		• scc/    — Tarjan strongly connected components (iterative)
//		• core/   — a compact directed multigraph with safe mutation under locks
//		• gen/    — deterministic graph generators for tests and benchmarks
//
// ✨ Why choose graphcycles?
//
//   - Narrow capability boundary – bring your own graph; anything with
//     Vertices() and NeighborIDs() works
//   - Streaming or materialized – visit cycles one by one and break early
//     with a carried value, or collect them all at once
//   - Pure Go – no cgo, no hidden deps
//   - Deterministic – sorted vertex order, stable emission within a run
//
// Quick ASCII example:
//
//	    A──▶B
//	    ▲   │
//	    └───C
//
//	the triangle A→B→C→A has exactly one elementary cycle: [A B C].
//
// Enumeration cost is proportional to the number of elementary cycles —
// inherently exponential in the worst case; use the visitor break
// signal to bound work on dense graphs.
//
//	go get github.com/katalvlaran/graphcycles
package graphcycles
