// Package arclookup (whitebox): structural audits of the dynamic
// index's trees. After every operation each per-node tree must be a
// valid binary search tree over exactly that node's out-arcs, with
// mutually consistent parent/child links, and every splayed query must
// leave the visited position at the root.
package arclookup

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/quiverlab/quiver/digraph"
)

// auditTrees verifies, for every node of g:
//   - the root has no parent;
//   - child→parent and parent→child links agree (each position with a
//     parent sits in exactly one of its parent's child slots);
//   - in-order targets are non-decreasing under the index comparator;
//   - the tree's arc set equals the node's current out-arc set.
func auditTrees(t *testing.T, ix *DynArcLookup, g *digraph.Digraph) {
	t.Helper()
	require := require.New(t)
	for _, n := range g.Nodes() {
		root := ix.root(n)
		seen := make(map[digraph.Arc]bool)
		if root != digraph.InvalidArc {
			require.Equal(digraph.InvalidArc, ix.parent[root],
				"node %d: root %d must have no parent", n, root)
			auditSubtree(t, ix, root, seen)

			// In-order walk: targets non-decreasing.
			var walk func(a digraph.Arc, last *digraph.Arc)
			walk = func(a digraph.Arc, last *digraph.Arc) {
				if a == digraph.InvalidArc {
					return
				}
				walk(ix.left[a], last)
				if *last != digraph.InvalidArc {
					require.LessOrEqual(ix.cmp(ix.g.Target(*last), ix.g.Target(a)), 0,
						"node %d: in-order targets must be non-decreasing", n)
				}
				*last = a
				walk(ix.right[a], last)
			}
			last := digraph.InvalidArc
			walk(root, &last)
		}

		out := g.OutArcs(n)
		require.Len(seen, len(out), "node %d: tree size vs out-degree", n)
		for _, a := range out {
			require.True(seen[a], "node %d: out-arc %d missing from tree", n, a)
		}
	}
}

// auditSubtree checks link consistency below a and records visited arcs.
func auditSubtree(t *testing.T, ix *DynArcLookup, a digraph.Arc, seen map[digraph.Arc]bool) {
	t.Helper()
	require.False(t, seen[a], "arc %d appears twice; tree has a cycle", a)
	seen[a] = true
	if l := ix.left[a]; l != digraph.InvalidArc {
		require.Equal(t, a, ix.parent[l], "left child %d of %d disagrees on parent", l, a)
		auditSubtree(t, ix, l, seen)
	}
	if r := ix.right[a]; r != digraph.InvalidArc {
		require.Equal(t, a, ix.parent[r], "right child %d of %d disagrees on parent", r, a)
		auditSubtree(t, ix, r, seen)
	}
}

func TestDynArcLookup_StructuralInvariants(t *testing.T) {
	require := require.New(t)
	rng := rand.New(rand.NewSource(1))
	g := digraph.New()
	ns := g.AddNodes(6)

	ix, err := NewDyn(g)
	require.NoError(err)
	defer ix.Close()

	var live []digraph.Arc
	for step := 0; step < 600; step++ {
		switch op := rng.Intn(6); {
		case op < 3 || len(live) == 0:
			s := ns[rng.Intn(len(ns))]
			u := ns[rng.Intn(len(ns))]
			a, aerr := g.AddArc(s, u)
			require.NoError(aerr)
			live = append(live, a)
		case op < 5:
			i := rng.Intn(len(live))
			require.NoError(g.EraseArc(live[i]))
			live = append(live[:i], live[i+1:]...)
		default:
			ix.Lookup(ns[rng.Intn(len(ns))], ns[rng.Intn(len(ns))])
		}
		auditTrees(t, ix, g)
	}
}

func TestDynArcLookup_SplayLeavesQueryAtRoot(t *testing.T) {
	require := require.New(t)
	g := digraph.New()
	hub := g.AddNode()
	spokes := g.AddNodes(15)
	arcs := make([]digraph.Arc, 0, len(spokes))
	for _, sp := range spokes {
		a, err := g.AddArc(hub, sp)
		require.NoError(err)
		arcs = append(arcs, a)
	}

	ix, err := NewDyn(g)
	require.NoError(err)
	defer ix.Close()

	for i, sp := range spokes {
		got := ix.Lookup(hub, sp)
		require.Equal(arcs[i], got)
		require.Equal(got, ix.root(hub), "hit must be splayed to the root")
		auditTrees(t, ix, g)
	}

	// A miss splays the last visited position to the root too.
	stranger := g.AddNode()
	require.Equal(digraph.InvalidArc, ix.Lookup(hub, stranger))
	require.NotEqual(digraph.InvalidArc, ix.root(hub))
	auditTrees(t, ix, g)
}

func TestDynArcLookup_InsertSplaysNewArc(t *testing.T) {
	require := require.New(t)
	g := digraph.New()
	ns := g.AddNodes(5)
	ix, err := NewDyn(g)
	require.NoError(err)
	defer ix.Close()

	for i := 1; i < len(ns); i++ {
		a, aerr := g.AddArc(ns[0], ns[i])
		require.NoError(aerr)
		require.Equal(a, ix.root(ns[0]), "insert must splay the new arc to the root")
		auditTrees(t, ix, g)
	}
}
