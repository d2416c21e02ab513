// Package arclookup defines the configuration options and sentinel
// errors shared by the three endpoint-pair indexes (ArcLookup,
// AllArcLookup, DynArcLookup).
//
// Errors (sentinel):
//
//	ErrNilGraph     - a nil graph was supplied to a constructor.
//	ErrBadNodeOrder - the supplied node comparator is not a total order.
package arclookup

import (
	"errors"

	"github.com/quiverlab/quiver/digraph"
)

// Sentinel errors returned by index constructors.
var (
	// ErrNilGraph indicates that a nil graph was passed to New.
	ErrNilGraph = errors.New("arclookup: graph is nil")

	// ErrBadNodeOrder indicates that the comparator supplied via
	// WithNodeOrder is not a total order over the graph's nodes.
	// Building on a broken order would yield a silently corrupt tree,
	// so construction fails fast instead.
	ErrBadNodeOrder = errors.New("arclookup: node comparator is not a total order")
)

// Options holds the shared index configuration.
//
// NodeOrder – comparator defining the total order over node identities
// that trees are keyed by. nil means the natural handle order. The
// result ordering of FindFirst/FindNext walks follows this order.
type Options struct {
	NodeOrder func(a, b digraph.Node) int
}

// Option is a functional option for configuring an index.
type Option func(*Options)

// WithNodeOrder installs a custom total order over node identities,
// cmp(a,b) < 0 / == 0 / > 0 in the usual three-way convention.
// The comparator is captured once at construction and validated for
// totality against the graph's node set; a broken order surfaces as
// ErrBadNodeOrder from the constructor rather than as corrupt lookups.
func WithNodeOrder(cmp func(a, b digraph.Node) int) Option {
	return func(o *Options) {
		if cmp != nil {
			o.NodeOrder = cmp
		}
	}
}

// DefaultOptions returns the shared defaults: natural handle order.
func DefaultOptions() Options {
	return Options{NodeOrder: nil}
}

// naturalOrder is the default node comparator.
func naturalOrder(a, b digraph.Node) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// resolveOrder applies options and returns the effective comparator.
func resolveOrder(opts []Option) func(a, b digraph.Node) int {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.NodeOrder == nil {
		return naturalOrder
	}

	return cfg.NodeOrder
}

// validateOrder checks that cmp behaves as a total order over the given
// nodes: reflexive-zero on every node, antisymmetric and irreflexive
// across distinct pairs of the sequence. It is a spot check, not a
// proof, but it catches the common broken comparators (non-zero self
// comparison, inconsistent flip) before any tree is built.
func validateOrder(cmp func(a, b digraph.Node) int, nodes []digraph.Node) error {
	for _, n := range nodes {
		if cmp(n, n) != 0 {
			return ErrBadNodeOrder
		}
	}
	for i := 1; i < len(nodes); i++ {
		a, b := nodes[i-1], nodes[i]
		ab, ba := cmp(a, b), cmp(b, a)
		if ab == 0 && ba != 0 || ab < 0 && ba <= 0 || ab > 0 && ba >= 0 {
			return ErrBadNodeOrder
		}
	}

	return nil
}
