// Package digraph: free-standing helpers over the Reader surface.
//
// These are the linear-time baselines and counting conveniences: they
// work against any Reader, and exploit the optional O(1) cardinality
// shortcuts (NodeCounter, ArcCounter) when the concrete graph provides
// them. The capability is probed with a type assertion at the call,
// once, never per element.

package digraph

// CountNodes returns the number of nodes of g.
// Complexity: O(1) when g implements NodeCounter, O(V) otherwise.
func CountNodes(g Reader) int {
	if c, ok := g.(NodeCounter); ok {
		return c.NodeCount()
	}

	return len(g.Nodes())
}

// CountArcs returns the number of arcs of g.
// Complexity: O(1) when g implements ArcCounter, O(V+E) otherwise.
func CountArcs(g Reader) int {
	if c, ok := g.(ArcCounter); ok {
		return c.ArcCount()
	}
	total := 0
	for _, n := range g.Nodes() {
		total += len(g.OutArcs(n))
	}

	return total
}

// CountOutArcs returns the out-degree of n.
// Complexity: O(out-degree).
func CountOutArcs(g Reader, n Node) int {
	return len(g.OutArcs(n))
}

// FindArc returns an arc s→t of g by linear scan, or InvalidArc.
//
// With prev == InvalidArc it returns the first match in out-arc order;
// with prev set to a previously returned arc it returns the next match,
// so repeated calls enumerate every parallel arc exactly once:
//
//	for a := digraph.FindArc(g, s, t, digraph.InvalidArc); a != digraph.InvalidArc; a = digraph.FindArc(g, s, t, a) {
//	    ...
//	}
//
// This is the no-index baseline: O(out-degree of s) per call. Use an
// arclookup index when the query mix justifies building one.
func FindArc(g Reader, s, t Node, prev Arc) Arc {
	// Resume after prev when given; otherwise scan from the start.
	passed := prev == InvalidArc
	for _, a := range g.OutArcs(s) {
		if !passed {
			if a == prev {
				passed = true
			}
			continue
		}
		if g.Target(a) == t {
			return a
		}
	}

	return InvalidArc
}
