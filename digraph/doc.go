// Package digraph provides a mutable, arena-backed directed multigraph
// with stable integer handles and a synchronous change-notification feed.
//
// What
//
//   - Nodes and arcs are opaque int handles (Node, Arc); InvalidNode and
//     InvalidArc are the distinguished "none" sentinels.
//   - Arc handles are monotonic and never recycled: an erased handle can
//     never alias a later arc, so stale copies held by callers stay dead.
//   - Parallel arcs and self-loops are allowed by default; restrict them
//     with WithoutParallelArcs() / WithoutLoops().
//   - Enumeration is deterministic: Nodes() ascending, OutArcs(n) in
//     insertion order, stable between mutations.
//   - Attached ArcObservers are notified synchronously on every mutation
//     (add / erase, single and batch, plus Rebuilt and Cleared), so an
//     observer's view always equals the graph's between calls. This is
//     how arclookup.DynArcLookup stays consistent with no manual refresh.
//   - Free helpers: CountNodes / CountArcs (with O(1) capability
//     shortcut), FindArc linear enumeration, structural Copy with handle
//     translation maps.
//
// Why
//
//   - Handle-keyed auxiliary data (maps keyed by Node or Arc) needs no
//     pointer identity and creates no ownership cycles; an index owns its
//     maps outright and never the graph.
//   - Flow, matching and shortest-path code mutates arc sets heavily;
//     a stable, observable arc identity is the substrate such algorithms
//     and their indexes build on.
//
// Concurrency
//
//	None. Digraph is single-threaded by contract: notification callbacks
//	run inline with the mutating call, and callers must serialize
//	mutation and queries externally.
//
// Complexity (V = |nodes|, E = |arcs|, d = out-degree)
//
//	AddNode / AddArc            O(1) amortized
//	EraseArc                    O(d) (source's out-list compaction)
//	OutArcs / OutDegree         O(d) / O(1)
//	Nodes / Arcs                O(V) / O(E)
//	HasArc / FindArc            O(d)
//	NodeCount / ArcCount        O(1)
//	Copy                        O(V + E)
//
// See package arclookup for O(log d) endpoint-pair queries over a Digraph.
package digraph
