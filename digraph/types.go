// Package digraph defines the Digraph type, its Node/Arc handle space,
// configuration options, sentinel errors, and the synchronous observer
// feed that keeps attached structures consistent with graph mutation.
//
// Handles are opaque comparable integers. InvalidNode and InvalidArc are
// the distinguished "none" values used across the whole library: every
// "not found" outcome is one of these sentinels, never an error.
//
// Errors:
//
//	ErrNodeNotFound        - an endpoint handle does not name a live node.
//	ErrArcNotFound         - an arc handle does not name a live arc.
//	ErrLoopNotAllowed      - self-loop attempted with WithoutLoops().
//	ErrParallelNotAllowed  - parallel arc attempted with WithoutParallelArcs().
package digraph

import "errors"

// Sentinel errors for digraph operations.
var (
	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("digraph: node not found")

	// ErrArcNotFound indicates an operation referenced a non-existent arc.
	ErrArcNotFound = errors.New("digraph: arc not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("digraph: self-loop not allowed")

	// ErrParallelNotAllowed indicates a parallel arc was attempted when
	// parallel arcs are disabled.
	ErrParallelNotAllowed = errors.New("digraph: parallel arc not allowed")
)

// Node is an opaque handle naming a vertex of a Digraph.
// Handles are dense: the k-th AddNode call returns Node(k-1).
type Node int

// Arc is an opaque handle naming a directed arc of a Digraph.
// Handles are monotonic and never recycled: once erased, a handle stays
// dead forever, so stale copies can never alias a newer arc.
type Arc int

// Sentinel "none" handles. They compare less than every live handle.
const (
	// InvalidNode is the distinguished non-node.
	InvalidNode Node = -1

	// InvalidArc is the distinguished non-arc, returned by every lookup
	// that finds nothing.
	InvalidArc Arc = -1
)

// Option configures a Digraph before creation.
type Option func(g *Digraph)

// WithoutLoops rejects self-loops: AddArc(n, n) returns ErrLoopNotAllowed.
func WithoutLoops() Option {
	return func(g *Digraph) { g.noLoops = true }
}

// WithoutParallelArcs rejects a second arc between the same ordered
// endpoint pair: AddArc returns ErrParallelNotAllowed.
// The duplicate check costs O(out-degree of the source).
func WithoutParallelArcs() Option {
	return func(g *Digraph) { g.noParallel = true }
}

// Reader is the read-only surface consumed by the lookup indexes and the
// package helpers. *Digraph implements it; so does any other structure
// exposing node enumeration, per-node out-arc enumeration (stable between
// mutations), and endpoint accessors.
type Reader interface {
	// Nodes returns every live node in ascending handle order.
	Nodes() []Node

	// OutArcs returns the arcs leaving n, in insertion order.
	// The order is stable as long as the graph is not mutated.
	OutArcs(n Node) []Arc

	// Source returns the tail node of a.
	Source(a Arc) Node

	// Target returns the head node of a.
	Target(a Arc) Node
}

// NodeCounter is the optional O(1) node-cardinality shortcut.
// Helpers probe for it once per call via a type assertion and fall back
// to enumeration when absent.
type NodeCounter interface {
	NodeCount() int
}

// ArcCounter is the optional O(1) arc-cardinality shortcut.
type ArcCounter interface {
	ArcCount() int
}

// Watchable is the surface required by structures that track the graph
// incrementally: the read surface plus the observer feed.
type Watchable interface {
	Reader

	// Attach subscribes o to this graph's change feed.
	Attach(o ArcObserver)

	// Detach removes a previously attached observer. Detaching an
	// observer that was never attached is a no-op.
	Detach(o ArcObserver)
}

// arcRecord is the arena slot backing one arc handle.
// Endpoints stay readable after the arc is erased; only alive flips.
type arcRecord struct {
	source Node
	target Node
	alive  bool
}

// Digraph is an arena-backed directed multigraph.
//
// Parallel arcs and self-loops are allowed by default (restrict them with
// WithoutParallelArcs / WithoutLoops). Nodes are never removed; arcs may
// be erased. Every mutating method notifies the attached observers
// synchronously before it returns, so observers are always consistent
// with the graph between calls.
//
// Digraph is not safe for concurrent use; callers must serialize
// mutation and queries externally.
type Digraph struct {
	// Configuration flags
	noLoops    bool // reject self-loops
	noParallel bool // reject parallel arcs

	// Storage
	nodeCount int         // nodes are dense 0..nodeCount-1, never erased
	arcs      []arcRecord // arena indexed by Arc; holes stay dead
	liveArcs  int         // count of alive arena slots
	out       [][]Arc     // out[n] = arcs leaving n, insertion order

	// Attached observers, notified in attach order.
	observers []ArcObserver
}

// New creates an empty Digraph with the given options.
// Complexity: O(1).
func New(opts ...Option) *Digraph {
	g := &Digraph{}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
