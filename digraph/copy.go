// Package digraph: structural graph-to-graph copy.

package digraph

import "fmt"

// Copy reproduces the structure of src inside dst: one node per src node
// and one arc per src arc, preserving per-node arc insertion order.
//
// It returns translation maps from src handles to the corresponding dst
// handles, so callers can carry node/arc-keyed data across the copy.
// dst is appended to, not reset; copying into a non-empty graph yields a
// disjoint union.
//
// Fails if dst's configuration rejects an arc present in src (for
// example copying a multigraph into a WithoutParallelArcs target);
// dst is left partially filled in that case.
// Complexity: O(V + E).
func Copy(dst *Digraph, src Reader) (map[Node]Node, map[Arc]Arc, error) {
	nodes := src.Nodes()
	nodeRef := make(map[Node]Node, len(nodes))
	arcRef := make(map[Arc]Arc)

	// 1) Nodes first, in ascending handle order.
	for _, n := range nodes {
		nodeRef[n] = dst.AddNode()
	}

	// 2) Arcs per node, preserving out-arc insertion order.
	for _, n := range nodes {
		for _, a := range src.OutArcs(n) {
			na, err := dst.AddArc(nodeRef[src.Source(a)], nodeRef[src.Target(a)])
			if err != nil {
				return nodeRef, arcRef, fmt.Errorf("digraph: copy arc %d: %w", a, err)
			}
			arcRef[a] = na
		}
	}

	return nodeRef, arcRef, nil
}
