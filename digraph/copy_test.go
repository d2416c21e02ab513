// Package digraph_test: tests for the structural Copy helper.
package digraph_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/quiverlab/quiver/digraph"
)

func TestCopy_StructureAndHandleMaps(t *testing.T) {
	require := require.New(t)
	src := digraph.New()
	ns := src.AddNodes(3)
	a1 := mustArc(t, src, ns[0], ns[1])
	a2 := mustArc(t, src, ns[0], ns[1]) // parallel
	a3 := mustArc(t, src, ns[2], ns[2]) // self-loop
	require.NoError(src.EraseArc(a1))   // leave a hole in the handle space

	dst := digraph.New()
	nodeRef, arcRef, err := digraph.Copy(dst, src)
	require.NoError(err)

	require.Equal(src.NodeCount(), dst.NodeCount())
	require.Equal(src.ArcCount(), dst.ArcCount())
	require.Len(arcRef, 2, "only live arcs are copied")

	// Every copied arc preserves its endpoints through the maps.
	for _, a := range []digraph.Arc{a2, a3} {
		na, ok := arcRef[a]
		require.True(ok)
		require.Equal(nodeRef[src.Source(a)], dst.Source(na))
		require.Equal(nodeRef[src.Target(a)], dst.Target(na))
	}

	// Insertion order of out-arcs is preserved per node.
	require.Equal(len(src.OutArcs(ns[0])), len(dst.OutArcs(nodeRef[ns[0]])))
}

func TestCopy_IntoNonEmptyIsDisjointUnion(t *testing.T) {
	require := require.New(t)
	src := digraph.New()
	sn := src.AddNodes(2)
	mustArc(t, src, sn[0], sn[1])

	dst := digraph.New()
	dn := dst.AddNodes(1)

	nodeRef, _, err := digraph.Copy(dst, src)
	require.NoError(err)
	require.Equal(3, dst.NodeCount())
	require.NotEqual(dn[0], nodeRef[sn[0]], "copied nodes are fresh handles")
}

func TestCopy_RejectedByTargetConfiguration(t *testing.T) {
	require := require.New(t)
	src := digraph.New()
	ns := src.AddNodes(2)
	mustArc(t, src, ns[0], ns[1])
	mustArc(t, src, ns[0], ns[1])

	dst := digraph.New(digraph.WithoutParallelArcs())
	_, _, err := digraph.Copy(dst, src)
	require.ErrorIs(err, digraph.ErrParallelNotAllowed)
}
