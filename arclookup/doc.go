// Package arclookup answers endpoint-pair adjacency queries over a
// digraph — "does an arc exist from s to t, and if several do, enumerate
// them" — in better-than-linear time.
//
// Three index variants trade staleness-tolerance for maintenance cost:
//
//   - ArcLookup: per-node balanced search trees over out-arcs, keyed by
//     target identity, built by median-split from a stable sort. Point
//     lookup in O(log d). Must be refreshed after any graph mutation;
//     queries against a stale index are undefined (not detected).
//
//   - AllArcLookup: ArcLookup plus a same-target chain threaded through
//     each tree at refresh, so all k parallel arcs of a pair enumerate in
//     O(log d + k). The chain order is fixed per refresh.
//
//   - DynArcLookup: a self-adjusting (splay) tree per node, subscribed
//     to the graph's synchronous notification feed. Every insert, erase,
//     rebuild and clear repairs the index inline, so it is consistent
//     with the graph at every point between calls, with amortized
//     O(log d) lookups and mutations and no client-driven refresh.
//     Lookups splay the last visited position to the root, which is what
//     yields the amortized bound and exploits query locality.
//
// Choosing
//
//	mutation rate ~ zero, point queries      → ArcLookup
//	mutation rate ~ zero, parallel-arc walks → AllArcLookup
//	interleaved mutation + queries           → DynArcLookup
//
//	The linear baseline (no index at all) is digraph.FindArc: O(d) per
//	query, zero maintenance. An index pays off once queries outnumber
//	mutations on high-degree nodes.
//
// Contracts
//
//   - "Not found" is digraph.InvalidArc, never an error.
//   - Trees are keyed by a total order over node identities: the natural
//     handle order, or a comparator given via WithNodeOrder (validated at
//     construction; a broken order fails fast with ErrBadNodeOrder).
//   - Everything is single-threaded and synchronous. Queries on
//     DynArcLookup mutate tree shape (splaying), so even concurrent reads
//     are unsafe without external serialization.
//   - An index never owns the graph; DynArcLookup must be Closed before
//     the graph goes away.
//
// Complexity (d = out-degree of the queried source, m = arcs, D = max d)
//
//	ArcLookup.Refresh        O(m log D)      AllArcLookup idem
//	ArcLookup.RefreshNode    O(d log d)
//	ArcLookup.Lookup         O(log d)
//	AllArcLookup.LookupNext  O(log d) first, O(1) chained
//	DynArcLookup.Lookup      O(log d) amortized
//	DynArcLookup add/erase   O(log d) amortized per arc
package arclookup
