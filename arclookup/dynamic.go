// Package arclookup: the self-adjusting dynamic index.
//
// DynArcLookup keeps one splay tree per node over that node's out-arcs,
// keyed by target identity. It subscribes to the graph's change feed and
// repairs itself inside every notification callback, so between any two
// graph calls each tree equals exactly its node's current out-arcs — no
// client-driven refresh exists or is needed.
//
// Splaying is the only rebalancing mechanism: every lookup rotates the
// last visited position to its tree's root, which yields the standard
// amortized O(log d) bound and adapts to query locality. There is no
// per-call worst-case bound.

package arclookup

import (
	"sort"

	"github.com/quiverlab/quiver/digraph"
)

// DynArcLookup answers arc-existence and parallel-arc enumeration
// queries over a mutating digraph in amortized O(log d), where d is the
// out-degree of the queried source.
//
// The index owns its root table and relation maps outright; it never
// owns the graph or its handles and must not outlive the graph.
// Call Close when done to detach from the notification feed.
//
// Single-threaded, like everything else in this library: queries mutate
// the trees (splaying), so even read-only use needs external
// serialization.
type DynArcLookup struct {
	g   digraph.Watchable
	cmp func(a, b digraph.Node) int

	head   map[digraph.Node]digraph.Arc
	parent map[digraph.Arc]digraph.Arc
	left   map[digraph.Arc]digraph.Arc
	right  map[digraph.Arc]digraph.Arc
}

// NewDyn builds a DynArcLookup over g and attaches it to g's
// notification feed. The index is consistent with g from this point on.
//
// Returns ErrNilGraph for a nil graph, ErrBadNodeOrder when the
// comparator installed via WithNodeOrder fails the totality check
// (checked before attaching, so a failed construction leaves no
// subscription behind).
// Complexity: O(m log D).
func NewDyn(g digraph.Watchable, opts ...Option) (*DynArcLookup, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	cmp := resolveOrder(opts)
	if err := validateOrder(cmp, g.Nodes()); err != nil {
		return nil, err
	}
	ix := &DynArcLookup{g: g, cmp: cmp}
	g.Attach(ix)
	ix.refresh()

	return ix, nil
}

// Close detaches the index from the graph's notification feed. The
// index must not be queried afterwards.
func (ix *DynArcLookup) Close() {
	ix.g.Detach(ix)
}

// Observer callbacks — invoked by the graph, never by clients.
////////////////////

// ArcAdded inserts the new arc into its source's tree and splays it.
func (ix *DynArcLookup) ArcAdded(a digraph.Arc) {
	ix.insert(a)
}

// ArcsAdded inserts every arc of a batch, one splayed insert each.
func (ix *DynArcLookup) ArcsAdded(arcs []digraph.Arc) {
	for _, a := range arcs {
		ix.insert(a)
	}
}

// ArcErased unhooks the doomed arc from its source's tree.
func (ix *DynArcLookup) ArcErased(a digraph.Arc) {
	ix.remove(a)
}

// ArcsErased unhooks every arc of a batch.
func (ix *DynArcLookup) ArcsErased(arcs []digraph.Arc) {
	for _, a := range arcs {
		ix.remove(a)
	}
}

// Rebuilt rebuilds every node's tree from the graph's current state.
func (ix *DynArcLookup) Rebuilt() {
	ix.refresh()
}

// Cleared resets every node's tree to empty.
func (ix *DynArcLookup) Cleared() {
	ix.head = make(map[digraph.Node]digraph.Arc)
	ix.parent = make(map[digraph.Arc]digraph.Arc)
	ix.left = make(map[digraph.Arc]digraph.Arc)
	ix.right = make(map[digraph.Arc]digraph.Arc)
}

// Queries
////////////////////

// Lookup returns one arc s→t, or InvalidArc if none exists. Which arc is
// returned among parallels is unspecified. Hit or miss, the last visited
// position is splayed to its tree's root; the arc set never changes,
// only the tree shape.
// Complexity: amortized O(log d).
func (ix *DynArcLookup) Lookup(s, t digraph.Node) digraph.Arc {
	a := ix.root(s)
	if a == digraph.InvalidArc {
		return digraph.InvalidArc
	}
	for {
		c := ix.cmp(t, ix.g.Target(a))
		switch {
		case c == 0:
			ix.splay(a)

			return a
		case c < 0:
			if ix.left[a] == digraph.InvalidArc {
				ix.splay(a)

				return digraph.InvalidArc
			}
			a = ix.left[a]
		default:
			if ix.right[a] == digraph.InvalidArc {
				ix.splay(a)

				return digraph.InvalidArc
			}
			a = ix.right[a]
		}
	}
}

// FindFirst returns the in-order first arc s→t, or InvalidArc. Use it
// with FindNext to enumerate every parallel arc between s and t exactly
// once, in in-order tree sequence (which, unlike the static chain, is
// not fixed per refresh but follows the current tree).
// Complexity: amortized O(log d).
func (ix *DynArcLookup) FindFirst(s, t digraph.Node) digraph.Arc {
	a := ix.root(s)
	if a == digraph.InvalidArc {
		return digraph.InvalidArc
	}
	r := digraph.InvalidArc
	for {
		if ix.cmp(ix.g.Target(a), t) < 0 {
			if ix.right[a] == digraph.InvalidArc {
				ix.splay(a)

				return r
			}
			a = ix.right[a]
		} else {
			if ix.cmp(ix.g.Target(a), t) == 0 {
				r = a
			}
			if ix.left[a] == digraph.InvalidArc {
				ix.splay(a)

				return r
			}
			a = ix.left[a]
		}
	}
}

// FindNext returns the next parallel arc after prev, or InvalidArc when
// the enumeration is exhausted. prev must be a live arc previously
// returned by FindFirst/FindNext on this index; anything else is
// unspecified. The successor (when one exists in the tree) is splayed
// even when its target no longer matches.
// Complexity: amortized O(log d).
func (ix *DynArcLookup) FindNext(prev digraph.Arc) digraph.Arc {
	t := ix.g.Target(prev)
	a := prev
	if ix.right[a] != digraph.InvalidArc {
		// In-order successor: minimum of the right subtree.
		a = ix.right[a]
		for ix.left[a] != digraph.InvalidArc {
			a = ix.left[a]
		}
		ix.splay(a)
	} else {
		// Else: nearest ancestor reached from its left child.
		for ix.parent[a] != digraph.InvalidArc && ix.right[ix.parent[a]] == a {
			a = ix.parent[a]
		}
		if ix.parent[a] == digraph.InvalidArc {
			return digraph.InvalidArc
		}
		a = ix.parent[a]
		ix.splay(a)
	}
	if ix.cmp(ix.g.Target(a), t) == 0 {
		return a
	}

	return digraph.InvalidArc
}

// Tree maintenance
////////////////////

// root returns the current root of s's tree, InvalidArc when s is
// unknown or has no out-arcs.
func (ix *DynArcLookup) root(s digraph.Node) digraph.Arc {
	if a, ok := ix.head[s]; ok {
		return a
	}

	return digraph.InvalidArc
}

// insert descends to an empty slot from the source's root, attaches arc
// as a leaf, and splays it to the root.
func (ix *DynArcLookup) insert(arc digraph.Arc) {
	s := ix.g.Source(arc)
	t := ix.g.Target(arc)
	ix.left[arc] = digraph.InvalidArc
	ix.right[arc] = digraph.InvalidArc

	e := ix.root(s)
	if e == digraph.InvalidArc {
		ix.head[s] = arc
		ix.parent[arc] = digraph.InvalidArc

		return
	}
	for {
		if ix.cmp(t, ix.g.Target(e)) < 0 {
			if ix.left[e] == digraph.InvalidArc {
				ix.left[e] = arc
				ix.parent[arc] = e
				ix.splay(arc)

				return
			}
			e = ix.left[e]
		} else {
			if ix.right[e] == digraph.InvalidArc {
				ix.right[e] = arc
				ix.parent[arc] = e
				ix.splay(arc)

				return
			}
			e = ix.right[e]
		}
	}
}

// remove unhooks arc from its source's tree. Three cases: a missing
// child lets the other child splice into arc's place; with both children
// present, the in-order predecessor (rightmost of the left subtree) is
// detached and reattached in arc's place, then the predecessor's vacated
// parent is splayed.
func (ix *DynArcLookup) remove(arc digraph.Arc) {
	switch {
	case ix.left[arc] == digraph.InvalidArc:
		if ix.right[arc] != digraph.InvalidArc {
			ix.parent[ix.right[arc]] = ix.parent[arc]
		}
		if ix.parent[arc] != digraph.InvalidArc {
			if ix.left[ix.parent[arc]] == arc {
				ix.left[ix.parent[arc]] = ix.right[arc]
			} else {
				ix.right[ix.parent[arc]] = ix.right[arc]
			}
		} else {
			ix.head[ix.g.Source(arc)] = ix.right[arc]
		}
	case ix.right[arc] == digraph.InvalidArc:
		ix.parent[ix.left[arc]] = ix.parent[arc]
		if ix.parent[arc] != digraph.InvalidArc {
			if ix.left[ix.parent[arc]] == arc {
				ix.left[ix.parent[arc]] = ix.left[arc]
			} else {
				ix.right[ix.parent[arc]] = ix.left[arc]
			}
		} else {
			ix.head[ix.g.Source(arc)] = ix.left[arc]
		}
	default:
		e := ix.left[arc]
		if ix.right[e] != digraph.InvalidArc {
			// Predecessor sits deeper: detach it from its old spot,
			// then let it adopt both of arc's subtrees.
			for ix.right[e] != digraph.InvalidArc {
				e = ix.right[e]
			}
			vacated := ix.parent[e]
			ix.right[vacated] = ix.left[e]
			if ix.left[e] != digraph.InvalidArc {
				ix.parent[ix.left[e]] = vacated
			}

			ix.left[e] = ix.left[arc]
			ix.parent[ix.left[arc]] = e
			ix.right[e] = ix.right[arc]
			ix.parent[ix.right[arc]] = e

			ix.parent[e] = ix.parent[arc]
			if ix.parent[arc] != digraph.InvalidArc {
				if ix.left[ix.parent[arc]] == arc {
					ix.left[ix.parent[arc]] = e
				} else {
					ix.right[ix.parent[arc]] = e
				}
			} else {
				ix.head[ix.g.Source(arc)] = e
			}
			ix.splay(vacated)
		} else {
			// The left child is itself the predecessor.
			ix.right[e] = ix.right[arc]
			ix.parent[ix.right[arc]] = e

			ix.parent[e] = ix.parent[arc]
			if ix.parent[arc] != digraph.InvalidArc {
				if ix.left[ix.parent[arc]] == arc {
					ix.left[ix.parent[arc]] = e
				} else {
					ix.right[ix.parent[arc]] = e
				}
			} else {
				ix.head[ix.g.Source(arc)] = e
			}
		}
	}
	delete(ix.parent, arc)
	delete(ix.left, arc)
	delete(ix.right, arc)
}

// refresh rebuilds every node's tree via the median-split algorithm,
// wiring parent links (splaying needs them).
// Complexity: O(m log D).
func (ix *DynArcLookup) refresh() {
	ix.head = make(map[digraph.Node]digraph.Arc)
	ix.parent = make(map[digraph.Arc]digraph.Arc)
	ix.left = make(map[digraph.Arc]digraph.Arc)
	ix.right = make(map[digraph.Arc]digraph.Arc)
	for _, n := range ix.g.Nodes() {
		v := append([]digraph.Arc(nil), ix.g.OutArcs(n)...)
		if len(v) == 0 {
			ix.head[n] = digraph.InvalidArc
			continue
		}
		sort.SliceStable(v, func(i, j int) bool {
			return ix.cmp(ix.g.Target(v[i]), ix.g.Target(v[j])) < 0
		})
		root := ix.rebuild(v, 0, len(v)-1)
		ix.head[n] = root
		ix.parent[root] = digraph.InvalidArc
	}
}

// rebuild roots v[a..b] at its median and recurses; children get parent
// links back to the median.
func (ix *DynArcLookup) rebuild(v []digraph.Arc, a, b int) digraph.Arc {
	m := (a + b) / 2
	me := v[m]
	if a < m {
		l := ix.rebuild(v, a, m-1)
		ix.left[me] = l
		ix.parent[l] = me
	} else {
		ix.left[me] = digraph.InvalidArc
	}
	if m < b {
		r := ix.rebuild(v, m+1, b)
		ix.right[me] = r
		ix.parent[r] = me
	} else {
		ix.right[me] = digraph.InvalidArc
	}

	return me
}

// Splay rotations
////////////////////

// zig rotates v right over its parent (v is a left child).
func (ix *DynArcLookup) zig(v digraph.Arc) {
	w := ix.parent[v]
	ix.parent[v] = ix.parent[w]
	ix.parent[w] = v
	ix.left[w] = ix.right[v]
	ix.right[v] = w
	if ix.parent[v] != digraph.InvalidArc {
		if ix.right[ix.parent[v]] == w {
			ix.right[ix.parent[v]] = v
		} else {
			ix.left[ix.parent[v]] = v
		}
	}
	if ix.left[w] != digraph.InvalidArc {
		ix.parent[ix.left[w]] = w
	}
}

// zag rotates v left over its parent (v is a right child).
func (ix *DynArcLookup) zag(v digraph.Arc) {
	w := ix.parent[v]
	ix.parent[v] = ix.parent[w]
	ix.parent[w] = v
	ix.right[w] = ix.left[v]
	ix.left[v] = w
	if ix.parent[v] != digraph.InvalidArc {
		if ix.left[ix.parent[v]] == w {
			ix.left[ix.parent[v]] = v
		} else {
			ix.right[ix.parent[v]] = v
		}
	}
	if ix.right[w] != digraph.InvalidArc {
		ix.parent[ix.right[w]] = w
	}
}

// splay rotates v to the root of its tree with the six standard cases
// (zig, zag, zig-zig, zig-zag, zag-zig, zag-zag) and records it in the
// root table.
func (ix *DynArcLookup) splay(v digraph.Arc) {
	for ix.parent[v] != digraph.InvalidArc {
		if v == ix.left[ix.parent[v]] {
			if ix.parent[ix.parent[v]] == digraph.InvalidArc {
				ix.zig(v)
			} else {
				if ix.parent[v] == ix.left[ix.parent[ix.parent[v]]] {
					ix.zig(ix.parent[v])
					ix.zig(v)
				} else {
					ix.zig(v)
					ix.zag(v)
				}
			}
		} else {
			if ix.parent[ix.parent[v]] == digraph.InvalidArc {
				ix.zag(v)
			} else {
				if ix.parent[v] == ix.left[ix.parent[ix.parent[v]]] {
					ix.zag(v)
					ix.zig(v)
				} else {
					ix.zag(ix.parent[v])
					ix.zag(v)
				}
			}
		}
	}
	ix.head[ix.g.Source(v)] = v
}
