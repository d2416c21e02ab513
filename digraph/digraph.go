// Package digraph: Digraph method implementations.
//
// This file provides the mutation and query operations on the Digraph
// type defined in types.go. Mutations notify attached observers inline:
// AddArc/AddArcs notify after the arc set is updated, EraseArc/EraseArcs
// notify before, so an observer can still resolve endpoints of the arcs
// it is about to drop. Either way, the graph and every observer agree
// again by the time the mutating call returns.

package digraph

// AddNode inserts a new node and returns its handle.
// Complexity: O(1) amortized.
func (g *Digraph) AddNode() Node {
	n := Node(g.nodeCount)
	g.nodeCount++
	g.out = append(g.out, nil)

	return n
}

// AddNodes inserts k nodes at once and returns their handles in order.
// Complexity: O(k) amortized.
func (g *Digraph) AddNodes(k int) []Node {
	ns := make([]Node, 0, k)
	for i := 0; i < k; i++ {
		ns = append(ns, g.AddNode())
	}

	return ns
}

// HasNode reports whether n names a live node.
// Complexity: O(1).
func (g *Digraph) HasNode(n Node) bool {
	return n >= 0 && int(n) < g.nodeCount
}

// AddArc inserts a directed arc from s to t and returns its handle,
// notifying attached observers before returning.
//
// Returns ErrNodeNotFound if either endpoint is not a live node,
// ErrLoopNotAllowed / ErrParallelNotAllowed per configuration.
// Complexity: O(1) amortized (O(out-degree) with WithoutParallelArcs).
func (g *Digraph) AddArc(s, t Node) (Arc, error) {
	a, err := g.addArc(s, t)
	if err != nil {
		return InvalidArc, err
	}
	// Synchronous single-arc notification.
	for _, o := range g.observers {
		o.ArcAdded(a)
	}

	return a, nil
}

// AddArcs inserts a batch of arcs given as (source, target) pairs and
// returns their handles in order. Observers receive one batch
// notification covering every inserted arc. The batch is applied
// atomically with respect to validation: on the first invalid pair,
// nothing is inserted and no notification fires.
// Complexity: O(k) amortized.
func (g *Digraph) AddArcs(pairs [][2]Node) ([]Arc, error) {
	// 1) Validate the whole batch up front. With WithoutParallelArcs the
	//    pending pairs count too: a duplicate inside the batch must poison
	//    it here, before anything is inserted.
	var pending map[[2]Node]struct{}
	if g.noParallel {
		pending = make(map[[2]Node]struct{}, len(pairs))
	}
	for _, p := range pairs {
		if err := g.checkArc(p[0], p[1]); err != nil {
			return nil, err
		}
		if g.noParallel {
			if _, dup := pending[p]; dup {
				return nil, ErrParallelNotAllowed
			}
			pending[p] = struct{}{}
		}
	}
	// 2) Insert. The batch is fully validated, so addArc cannot fail.
	arcs := make([]Arc, 0, len(pairs))
	for _, p := range pairs {
		a, err := g.addArc(p[0], p[1])
		if err != nil {
			return nil, err
		}
		arcs = append(arcs, a)
	}
	// 3) One batch notification.
	for _, o := range g.observers {
		o.ArcsAdded(arcs)
	}

	return arcs, nil
}

// EraseArc removes the arc a, notifying attached observers first so they
// can unhook it while its endpoints are still resolvable.
// Returns ErrArcNotFound if a is not a live arc.
// Complexity: O(out-degree of the source).
func (g *Digraph) EraseArc(a Arc) error {
	if !g.Valid(a) {
		return ErrArcNotFound
	}
	for _, o := range g.observers {
		o.ArcErased(a)
	}
	g.unlinkArc(a)

	return nil
}

// EraseArcs removes a batch of arcs. Observers receive one batch
// notification, delivered before any arc is unlinked. On the first
// invalid handle, nothing is erased and no notification fires. A handle
// repeated within the batch is invalid: its second occurrence would
// erase an already-erased arc, so the whole batch fails with
// ErrArcNotFound.
// Complexity: O(sum of source out-degrees).
func (g *Digraph) EraseArcs(arcs []Arc) error {
	seen := make(map[Arc]struct{}, len(arcs))
	for _, a := range arcs {
		if !g.Valid(a) {
			return ErrArcNotFound
		}
		if _, dup := seen[a]; dup {
			return ErrArcNotFound
		}
		seen[a] = struct{}{}
	}
	for _, o := range g.observers {
		o.ArcsErased(arcs)
	}
	for _, a := range arcs {
		g.unlinkArc(a)
	}

	return nil
}

// Clear drops every arc and node, then tells observers the slate is
// clean. Observers are notified first, while the old state is still
// readable. Attached observers stay attached and configuration flags are
// preserved. The arc arena is kept, so arc handles minted before the
// Clear never come back to life; node numbering restarts at zero.
func (g *Digraph) Clear() {
	for _, o := range g.observers {
		o.Cleared()
	}
	for i := range g.arcs {
		g.arcs[i].alive = false
	}
	g.liveArcs = 0
	g.nodeCount = 0
	g.out = g.out[:0]
}

// Rebuild re-announces the full current arc set to attached observers.
// Useful after attaching an observer that was constructed elsewhere, or
// after bulk edits performed while detached.
func (g *Digraph) Rebuild() {
	for _, o := range g.observers {
		o.Rebuilt()
	}
}

// Valid reports whether a names a live arc.
// Complexity: O(1).
func (g *Digraph) Valid(a Arc) bool {
	return a >= 0 && int(a) < len(g.arcs) && g.arcs[a].alive
}

// Source returns the tail node of a. Endpoints of erased arcs remain
// readable; InvalidArc (or an out-of-range handle) yields InvalidNode.
// Complexity: O(1).
func (g *Digraph) Source(a Arc) Node {
	if a < 0 || int(a) >= len(g.arcs) {
		return InvalidNode
	}

	return g.arcs[a].source
}

// Target returns the head node of a, with the same conventions as Source.
// Complexity: O(1).
func (g *Digraph) Target(a Arc) Node {
	if a < 0 || int(a) >= len(g.arcs) {
		return InvalidNode
	}

	return g.arcs[a].target
}

// Nodes returns every live node in ascending handle order.
// Complexity: O(V).
func (g *Digraph) Nodes() []Node {
	ns := make([]Node, g.nodeCount)
	for i := range ns {
		ns[i] = Node(i)
	}

	return ns
}

// OutArcs returns a copy of the arcs leaving n in insertion order, or nil
// for an unknown node. The order is stable between mutations, which makes
// index refreshes over it reproducible.
// Complexity: O(out-degree).
func (g *Digraph) OutArcs(n Node) []Arc {
	if !g.HasNode(n) {
		return nil
	}
	if len(g.out[n]) == 0 {
		return nil
	}
	cp := make([]Arc, len(g.out[n]))
	copy(cp, g.out[n])

	return cp
}

// Arcs returns every live arc in ascending handle order.
// Complexity: O(arena size).
func (g *Digraph) Arcs() []Arc {
	as := make([]Arc, 0, g.liveArcs)
	for i := range g.arcs {
		if g.arcs[i].alive {
			as = append(as, Arc(i))
		}
	}

	return as
}

// HasArc reports whether at least one live arc s→t exists.
// Complexity: O(out-degree of s); use an arclookup index for O(log d).
func (g *Digraph) HasArc(s, t Node) bool {
	if !g.HasNode(s) {
		return false
	}
	for _, a := range g.out[s] {
		if g.arcs[a].target == t {
			return true
		}
	}

	return false
}

// NodeCount returns the number of live nodes. O(1).
func (g *Digraph) NodeCount() int {
	return g.nodeCount
}

// ArcCount returns the number of live arcs. O(1).
func (g *Digraph) ArcCount() int {
	return g.liveArcs
}

// OutDegree returns the number of arcs leaving n, or 0 for an unknown
// node. O(1).
func (g *Digraph) OutDegree(n Node) int {
	if !g.HasNode(n) {
		return 0
	}

	return len(g.out[n])
}

// Internal helpers:
////////////////////

// checkArc validates endpoints and configuration constraints for a
// prospective arc s→t without inserting it.
func (g *Digraph) checkArc(s, t Node) error {
	if !g.HasNode(s) || !g.HasNode(t) {
		return ErrNodeNotFound
	}
	if s == t && g.noLoops {
		return ErrLoopNotAllowed
	}
	if g.noParallel && g.HasArc(s, t) {
		return ErrParallelNotAllowed
	}

	return nil
}

// addArc inserts without notifying. Callers notify.
func (g *Digraph) addArc(s, t Node) (Arc, error) {
	if err := g.checkArc(s, t); err != nil {
		return InvalidArc, err
	}
	a := Arc(len(g.arcs))
	g.arcs = append(g.arcs, arcRecord{source: s, target: t, alive: true})
	g.out[s] = append(g.out[s], a)
	g.liveArcs++

	return a, nil
}

// unlinkArc removes a live arc from the arena and its source's out list.
func (g *Digraph) unlinkArc(a Arc) {
	rec := &g.arcs[a]
	rec.alive = false
	g.liveArcs--
	list := g.out[rec.source]
	for i, x := range list {
		if x == a {
			g.out[rec.source] = append(list[:i], list[i+1:]...)
			break
		}
	}
}
