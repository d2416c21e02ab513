// Package digraph: the synchronous observer feed.
//
// Structures that track the graph incrementally (such as
// arclookup.DynArcLookup) implement ArcObserver and attach themselves.
// Delivery is synchronous and in attach order: the mutating call on the
// graph does not return until every attached observer has finished
// processing the notification, so between any two calls every observer's
// view equals the graph's.

package digraph

// ArcObserver receives arc-set change notifications from a Digraph.
//
// Callbacks are invoked by the graph, never by clients. An observer must
// not mutate the graph from inside a callback.
type ArcObserver interface {
	// ArcAdded fires after a single arc has been inserted.
	ArcAdded(a Arc)

	// ArcsAdded fires after a batch insert, once, with every new arc.
	ArcsAdded(arcs []Arc)

	// ArcErased fires before a single arc is removed; its endpoints are
	// still resolvable via Source/Target during the callback.
	ArcErased(a Arc)

	// ArcsErased fires before a batch removal, once, with every doomed arc.
	ArcsErased(arcs []Arc)

	// Rebuilt fires when the graph re-announces its full arc set;
	// observers should rebuild from scratch.
	Rebuilt()

	// Cleared fires before the graph drops all nodes and arcs;
	// observers should reset to empty.
	Cleared()
}

// Attach subscribes o to this graph's change feed. Attaching the same
// observer twice delivers every notification twice; don't.
// Complexity: O(1).
func (g *Digraph) Attach(o ArcObserver) {
	g.observers = append(g.observers, o)
}

// Detach removes a previously attached observer, comparing by interface
// identity. Detaching an observer that was never attached is a no-op.
// Complexity: O(number of observers).
func (g *Digraph) Detach(o ArcObserver) {
	for i, cur := range g.observers {
		if cur == o {
			g.observers = append(g.observers[:i], g.observers[i+1:]...)

			return
		}
	}
}
