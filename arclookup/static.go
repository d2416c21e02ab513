// Package arclookup: the static balanced index.

package arclookup

import (
	"sort"

	"github.com/quiverlab/quiver/digraph"
)

// ArcLookup answers "one arc from s to t, if any" in O(log d) over a
// frozen digraph, where d is the out-degree of s.
//
// Per node it keeps a height-minimal binary search tree over the node's
// out-arcs, keyed by target identity, rebuilt from scratch by Refresh.
//
// Staleness contract: results are undefined after any graph mutation
// until Refresh (or RefreshNode, when mutations were confined to that
// node) is called again; no auto-detection is performed. Use
// DynArcLookup when the graph mutates under the queries.
type ArcLookup struct {
	g   digraph.Reader
	cmp func(a, b digraph.Node) int

	// Per-node tree roots and per-arc child relations, owned by the
	// index. Arcs are stable handles, so plain maps suffice.
	head  map[digraph.Node]digraph.Arc
	left  map[digraph.Arc]digraph.Arc
	right map[digraph.Arc]digraph.Arc
}

// New builds an ArcLookup over g. The index is immediately queryable
// and remains valid until g changes.
//
// Returns ErrNilGraph for a nil graph, ErrBadNodeOrder when the
// comparator installed via WithNodeOrder fails the totality check.
// Complexity: O(m log D), m = arc count, D = max out-degree.
func New(g digraph.Reader, opts ...Option) (*ArcLookup, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	cmp := resolveOrder(opts)
	if err := validateOrder(cmp, g.Nodes()); err != nil {
		return nil, err
	}
	ix := &ArcLookup{
		g:     g,
		cmp:   cmp,
		head:  make(map[digraph.Node]digraph.Arc),
		left:  make(map[digraph.Arc]digraph.Arc),
		right: make(map[digraph.Arc]digraph.Arc),
	}
	ix.Refresh()

	return ix, nil
}

// Refresh rebuilds the full search database: RefreshNode for every node.
// Two consecutive Refresh calls with no intervening mutation yield
// identical lookup results (out-arc enumeration is stable).
// Complexity: O(m log D).
func (ix *ArcLookup) Refresh() {
	for _, n := range ix.g.Nodes() {
		ix.RefreshNode(n)
	}
}

// RefreshNode rebuilds only n's tree. Legal as the sole repair step only
// when mutations since the last full Refresh are confined to n's
// out-arcs.
// Complexity: O(d log d), d = out-degree of n.
func (ix *ArcLookup) RefreshNode(n digraph.Node) {
	// 1) Snapshot and order this node's out-arcs by target identity.
	//    The sort is stable so parallel arcs keep their enumeration
	//    order, which keeps rebuilds reproducible. The snapshot is
	//    copied: a Reader may hand out its internal slice.
	v := append([]digraph.Arc(nil), ix.g.OutArcs(n)...)
	sort.SliceStable(v, func(i, j int) bool {
		return ix.cmp(ix.g.Target(v[i]), ix.g.Target(v[j])) < 0
	})
	// 2) Root each sub-range at its median for an O(log d) height.
	if len(v) == 0 {
		ix.head[n] = digraph.InvalidArc

		return
	}
	ix.head[n] = ix.rebuild(v, 0, len(v)-1)
}

// rebuild roots v[a..b] at its median, recursing on both halves.
// Depth is O(log d), so plain recursion is safe.
func (ix *ArcLookup) rebuild(v []digraph.Arc, a, b int) digraph.Arc {
	m := (a + b) / 2
	me := v[m]
	if a < m {
		ix.left[me] = ix.rebuild(v, a, m-1)
	} else {
		ix.left[me] = digraph.InvalidArc
	}
	if m < b {
		ix.right[me] = ix.rebuild(v, m+1, b)
	} else {
		ix.right[me] = digraph.InvalidArc
	}

	return me
}

// Lookup returns one arc s→t, or InvalidArc if none exists. Which arc is
// returned among parallels is unspecified.
// Complexity: O(log d), d = out-degree of s.
func (ix *ArcLookup) Lookup(s, t digraph.Node) digraph.Arc {
	// Nodes the index has never seen (or with no out-arcs) miss in O(1).
	e, ok := ix.head[s]
	if !ok {
		return digraph.InvalidArc
	}
	for e != digraph.InvalidArc {
		c := ix.cmp(t, ix.g.Target(e))
		if c == 0 {
			return e
		}
		if c < 0 {
			e = ix.left[e]
		} else {
			e = ix.right[e]
		}
	}

	return digraph.InvalidArc
}
