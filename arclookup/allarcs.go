// Package arclookup: the parallel-arc extension of the static index.

package arclookup

import "github.com/quiverlab/quiver/digraph"

// AllArcLookup is an ArcLookup that can additionally enumerate every
// parallel arc between an endpoint pair: the first hit costs O(log d),
// each further hit O(1) via a same-target chain threaded through the
// tree at refresh time.
//
// The same staleness contract as ArcLookup applies, with one sharpening:
// after RefreshNode(n), only n's own chain is rebuilt. Chains of other
// nodes are only trustworthy again after a full Refresh.
type AllArcLookup struct {
	ArcLookup

	// next[a] = the next arc sharing a's source and target in the
	// chain order fixed by the last refresh, or InvalidArc.
	next map[digraph.Arc]digraph.Arc
}

// NewAllArcs builds an AllArcLookup over g, valid until g changes.
// Returns ErrNilGraph / ErrBadNodeOrder as New does.
// Complexity: O(m log D).
func NewAllArcs(g digraph.Reader, opts ...Option) (*AllArcLookup, error) {
	base, err := New(g, opts...)
	if err != nil {
		return nil, err
	}
	ix := &AllArcLookup{
		ArcLookup: *base,
		next:      make(map[digraph.Arc]digraph.Arc),
	}
	// The embedded New already built the trees; thread the chains.
	for _, n := range g.Nodes() {
		ix.refreshChain(ix.head[n], digraph.InvalidArc)
	}

	return ix, nil
}

// Refresh rebuilds every node's tree and chain.
// Complexity: O(m log D).
func (ix *AllArcLookup) Refresh() {
	for _, n := range ix.g.Nodes() {
		ix.RefreshNode(n)
	}
}

// RefreshNode rebuilds n's tree and chain only. See the type comment for
// the scope caveat: other nodes' chains stay as the previous refresh
// left them.
// Complexity: O(d log d).
func (ix *AllArcLookup) RefreshNode(n digraph.Node) {
	ix.ArcLookup.RefreshNode(n)
	ix.refreshChain(ix.head[n], digraph.InvalidArc)
}

// refreshChain threads the same-target chain through the subtree rooted
// at head by a reverse in-order walk: each arc's candidate successor is
// the smallest arc greater than it, kept only when the targets match.
// Returns the in-order minimum of the walked subtree, which becomes the
// candidate successor of the caller's next arc to the left.
func (ix *AllArcLookup) refreshChain(head, next digraph.Arc) digraph.Arc {
	if head == digraph.InvalidArc {
		return next
	}
	next = ix.refreshChain(ix.right[head], next)
	if next != digraph.InvalidArc && ix.cmp(ix.g.Target(next), ix.g.Target(head)) == 0 {
		ix.next[head] = next
	} else {
		ix.next[head] = digraph.InvalidArc
	}

	return ix.refreshChain(ix.left[head], head)
}

// LookupNext enumerates parallel arcs s→t. With prev == InvalidArc it
// returns the head of the chain (O(log d)); with prev set to the
// previously returned arc it returns the next one in O(1), and
// InvalidArc when exhausted. k parallel arcs are yielded exactly once
// each, in chain order, by k+1 calls.
//
// prev must be a value obtained from LookupNext for the same endpoint
// pair since the last refresh; an arc never threaded into any chain
// misses. Chaining from a plain Lookup result is allowed but enumerates
// only the arcs from that (unspecified) position onward.
func (ix *AllArcLookup) LookupNext(s, t digraph.Node, prev digraph.Arc) digraph.Arc {
	if prev == digraph.InvalidArc {
		return ix.lookupFirst(s, t)
	}
	// An arc never threaded into any chain (foreign or stale prev) must
	// miss, not decay to the map's zero value, which is a live handle.
	if n, ok := ix.next[prev]; ok {
		return n
	}

	return digraph.InvalidArc
}

// lookupFirst descends to the in-order first arc whose target equals t:
// on an exact hit it keeps probing the left subtree for an earlier
// equal, so the returned arc is the chain head, not a mid-chain node.
func (ix *AllArcLookup) lookupFirst(s, t digraph.Node) digraph.Arc {
	e, ok := ix.head[s]
	if !ok {
		return digraph.InvalidArc
	}
	r := digraph.InvalidArc
	for e != digraph.InvalidArc {
		c := ix.cmp(t, ix.g.Target(e))
		switch {
		case c == 0:
			r = e
			e = ix.left[e]
		case c < 0:
			e = ix.left[e]
		default:
			e = ix.right[e]
		}
	}

	return r
}
