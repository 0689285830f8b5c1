// Package cycles enumerates every elementary cycle of a directed graph
// using Johnson's circuit-finding algorithm.
//
// What:
//
//   - VisitCycles(g, visit): streams each elementary cycle to the
//     visitor; the visitor may break the whole enumeration early and
//     carry a value out.
//   - VisitAllCycles(g, visit): visits every cycle unconditionally.
//   - Cycles(g): materializes all cycles, in emission order.
//
// An elementary cycle is an ordered sequence of distinct vertices
// v0…vk-1 (k ≥ 1) with a directed edge from each vi to v(i+1 mod k).
// Each elementary cycle is reported exactly once — rotations are never
// duplicated — because emission always starts from the cycle's
// lowest-local-index vertex within its strongly connected component.
//
// Why:
//   - Feedback-loop discovery in dependency graphs, deadlock candidates
//     in wait-for graphs, circuit analysis — anywhere "which loops exist"
//     matters, not just "does a loop exist" (package dfs-style detectors
//     answer the latter; this package answers the former).
//
// How it works:
//
//	The graph is first decomposed into strongly connected components
//	(package scc); every elementary cycle lies inside exactly one
//	component. Within a component of size n, each vertex s = 0..n-1 in
//	turn becomes the fixed root of a backtracking search (circuit) that
//	extends a simple path and reports a cycle whenever an edge returns
//	to s. A blocking set per vertex (B) remembers dead branches so they
//	are not re-explored until something downstream of them succeeds
//	(unblock), which is what keeps the search output-sensitive.
//
// Semantics decisions:
//
//   - Self-loops v→v are reported as the length-1 cycle [v] (only
//     constructible on graphs that permit loops).
//   - Parallel edges are collapsed during local-index mapping: an
//     elementary cycle is reported once regardless of edge multiplicity.
//   - Emission order is grouped by component in decomposition order and
//     is stable within one execution; it is not a cross-version contract.
//
// Visitor contract:
//
//   - The cycle slice passed to a visitor is the live search stack and
//     is reused between invocations; copy it if you retain it (Cycles
//     does this for you).
//   - Returning stop == true aborts the enumeration immediately — no
//     further neighbor scanning or state mutation happens at any
//     recursion level — and VisitCycles returns the accompanying value.
//
// Concurrency & resources:
//
//   - Purely synchronous; the graph is only read. Independent
//     enumerations of independent graphs may run concurrently; one
//     enumeration must not be shared across goroutines.
//   - circuit recurses at most as deep as the largest component. There
//     is no deadline mechanism beyond the break signal: callers needing
//     bounded latency should check their own clock inside the visitor.
//
// Complexity:
//
//   - Time:   O((V + E) · (C + 1)) where C is the number of elementary
//     cycles — exponential in the worst case, inherent to the problem.
//   - Memory: O(V + E) per component.
//
// Errors:
//
//   - ErrGraphNil       g is nil
//   - ErrVisitorNil     visitor is nil
//   - ErrNeighborFetch  the graph failed to enumerate a vertex's neighbors
//
// References:
//
//	Donald B. Johnson, "Finding all the elementary circuits of a
//	directed graph", SIAM Journal on Computing, 1975.
package cycles
