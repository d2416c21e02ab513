// Package lgf: options and column plumbing for the Writer.

package lgf

import "github.com/quiverlab/quiver/digraph"

// labelColumn is the reserved column name identifying rows. Registering
// a node or arc map under this name replaces the implicit decimal-handle
// label column; arc endpoint references then use its values too.
const labelColumn = "label"

// namedNodeMap is one node column: a name plus per-node values.
type namedNodeMap struct {
	name   string
	values map[digraph.Node]string
}

// namedArcMap is one arc column.
type namedArcMap struct {
	name   string
	values map[digraph.Arc]string
}

// attribute is one named value of the @attributes section.
type attribute struct {
	name  string
	value string
}

// Option configures a Writer before use.
type Option func(*Writer)

// WithNodeMap adds a node column. Columns appear in registration order.
// Missing entries serialize as the quoted empty token.
func WithNodeMap(name string, values map[digraph.Node]string) Option {
	return func(w *Writer) {
		w.nodeMaps = append(w.nodeMaps, namedNodeMap{name: name, values: values})
	}
}

// WithArcMap adds an arc column.
func WithArcMap(name string, values map[digraph.Arc]string) Option {
	return func(w *Writer) {
		w.arcMaps = append(w.arcMaps, namedArcMap{name: name, values: values})
	}
}

// WithAttribute adds one name/value line to the @attributes section.
func WithAttribute(name, value string) Option {
	return func(w *Writer) {
		w.attrs = append(w.attrs, attribute{name: name, value: value})
	}
}

// SkipNodes omits the @nodes section. Useful when the consumer already
// knows the node set; arc endpoint references are still emitted.
func SkipNodes() Option {
	return func(w *Writer) { w.skipNodes = true }
}

// SkipArcs omits the @arcs section.
func SkipArcs() Option {
	return func(w *Writer) { w.skipArcs = true }
}
