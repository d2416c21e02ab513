// Package lgf serializes digraphs into a plain-text section format in
// the LGF (LEMON Graph Format) tradition.
//
// What
//
//	An output document consists of up to three sections:
//
//	  @nodes              one row per node; first column is the label
//	  @arcs               one row per arc: source, target, label, maps
//	  @attributes         named document-level values
//
//	Columns are tab-separated; tokens containing whitespace are quoted.
//	Extra node/arc columns are attached as string maps keyed by handle
//	(WithNodeMap / WithArcMap). A map registered under the reserved name
//	"label" replaces the implicit decimal-handle label column.
//
// Why
//
//	A stable, diffable, human-readable dump: fixtures, golden tests,
//	debugging aids. Output ordering is fully deterministic (ascending
//	handles, registration-order columns). This package writes only;
//	it is a serializer, not a storage layer.
//
// Example
//
//	g := digraph.New()
//	ns := g.AddNodes(2)
//	g.AddArc(ns[0], ns[1])
//	w := lgf.NewWriter(os.Stdout, lgf.WithAttribute("source", "demo"))
//	if err := w.Write(g); err != nil { ... }
//
// Complexity: O(V + E) time, O(1) extra space beyond buffering.
package lgf
