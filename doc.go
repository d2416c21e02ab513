// Package quiver is an in-memory toolkit for directed multigraphs
// ("quivers") with fast endpoint-pair arc lookup.
//
// 🚀 What is quiver?
//
//	A pure-Go library built around three cooperating pieces:
//		• digraph/   — a mutable, arena-backed directed multigraph with
//		              stable integer handles and a synchronous change feed
//		• arclookup/ — three indexes answering "is there an arc s→t, and
//		              which ones" in better-than-linear time:
//		              ArcLookup (static, O(log d) point lookup),
//		              AllArcLookup (static + O(1) parallel-arc chaining),
//		              DynArcLookup (splay-tree index repaired incrementally
//		              on every graph mutation, amortized O(log d))
//		• lgf/       — a plain-text serializer for digraphs in an
//		              LGF-style section format
//
// ✨ Why choose quiver?
//
//   - Handle-based – nodes and arcs are opaque comparable tokens, so
//     auxiliary structures are plain maps, with no pointer ownership cycles
//   - Deterministic – enumeration orders are stable between mutations,
//     so index refreshes are reproducible
//   - Pure Go – no cgo, no hidden deps
//   - Honest contracts – "not found" is a sentinel handle, never an error;
//     staleness rules are spelled out per index
//
// Pick an index by mutation pattern:
//
//	frozen graph, point queries        → arclookup.ArcLookup
//	frozen graph, parallel-arc walks   → arclookup.AllArcLookup
//	mutating graph, no manual refresh  → arclookup.DynArcLookup
//
// Quick ASCII example:
//
//	    A ──→ B
//	    │ ╲
//	    ↓   ↘
//	    C     B   (a second, parallel A→B arc)
//
//	a multigraph where both A→B arcs are found by one FindFirst/FindNext walk.
//
// Dive into each package's doc.go for contracts, complexity tables and
// worked examples.
package quiver
