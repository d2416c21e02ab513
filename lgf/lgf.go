// Package lgf: the Writer implementation.

package lgf

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/quiverlab/quiver/digraph"
)

// Writer serializes a digraph into the LGF-style section format.
// Configure it once with options, then call Write with the graph.
type Writer struct {
	out      io.Writer
	nodeMaps []namedNodeMap
	arcMaps  []namedArcMap
	attrs    []attribute

	skipNodes bool
	skipArcs  bool
}

// NewWriter returns a Writer emitting to out with the given options.
func NewWriter(out io.Writer, opts ...Option) *Writer {
	w := &Writer{out: out}
	for _, opt := range opts {
		opt(w)
	}

	return w
}

// Write serializes g: an @nodes section (unless SkipNodes), an @arcs
// section (unless SkipArcs), and an @attributes section when attributes
// were registered. Rows are emitted in ascending handle order, columns
// in registration order, so output is deterministic.
// Returns the first underlying write error.
// Complexity: O(V + E).
func (w *Writer) Write(g digraph.Reader) error {
	bw := bufio.NewWriter(w.out)
	if !w.skipNodes {
		w.writeNodes(bw, g)
	}
	if !w.skipArcs {
		w.writeArcs(bw, g)
	}
	w.writeAttributes(bw)

	// bufio keeps the first error sticky; Flush surfaces it.
	return bw.Flush()
}

// nodeLabel resolves the printable label of n: the registered "label"
// node map when present, the decimal handle otherwise.
func (w *Writer) nodeLabel(n digraph.Node) string {
	for _, m := range w.nodeMaps {
		if m.name == labelColumn {
			return m.values[n]
		}
	}

	return strconv.Itoa(int(n))
}

func (w *Writer) writeNodes(bw *bufio.Writer, g digraph.Reader) {
	bw.WriteString("@nodes\n")

	// Header: implicit label column unless the caller supplied one.
	if !w.hasNodeLabel() {
		bw.WriteString(labelColumn)
		bw.WriteByte('\t')
	}
	for _, m := range w.nodeMaps {
		bw.WriteString(m.name)
		bw.WriteByte('\t')
	}
	bw.WriteByte('\n')

	for _, n := range g.Nodes() {
		if !w.hasNodeLabel() {
			writeToken(bw, strconv.Itoa(int(n)))
			bw.WriteByte('\t')
		}
		for _, m := range w.nodeMaps {
			writeToken(bw, m.values[n])
			bw.WriteByte('\t')
		}
		bw.WriteByte('\n')
	}
}

func (w *Writer) writeArcs(bw *bufio.Writer, g digraph.Reader) {
	bw.WriteString("@arcs\n")

	// Header: two anonymous endpoint columns, then label and arc maps.
	bw.WriteString("\t\t")
	if !w.hasArcLabel() {
		bw.WriteString(labelColumn)
		bw.WriteByte('\t')
	}
	for _, m := range w.arcMaps {
		bw.WriteString(m.name)
		bw.WriteByte('\t')
	}
	bw.WriteByte('\n')

	for _, n := range g.Nodes() {
		for _, a := range g.OutArcs(n) {
			writeToken(bw, w.nodeLabel(g.Source(a)))
			bw.WriteByte('\t')
			writeToken(bw, w.nodeLabel(g.Target(a)))
			bw.WriteByte('\t')
			if !w.hasArcLabel() {
				writeToken(bw, strconv.Itoa(int(a)))
				bw.WriteByte('\t')
			}
			for _, m := range w.arcMaps {
				writeToken(bw, m.values[a])
				bw.WriteByte('\t')
			}
			bw.WriteByte('\n')
		}
	}
}

func (w *Writer) writeAttributes(bw *bufio.Writer) {
	if len(w.attrs) == 0 {
		return
	}
	bw.WriteString("@attributes\n")
	for _, at := range w.attrs {
		bw.WriteString(at.name)
		bw.WriteByte(' ')
		writeToken(bw, at.value)
		bw.WriteByte('\n')
	}
}

func (w *Writer) hasNodeLabel() bool {
	for _, m := range w.nodeMaps {
		if m.name == labelColumn {
			return true
		}
	}

	return false
}

func (w *Writer) hasArcLabel() bool {
	for _, m := range w.arcMaps {
		if m.name == labelColumn {
			return true
		}
	}

	return false
}

// writeToken emits a single field, quoting it when it is empty or
// contains whitespace so readers can tokenize rows unambiguously.
func writeToken(bw *bufio.Writer, tok string) {
	if tok == "" || strings.ContainsAny(tok, " \t\n\r\"\\") {
		bw.WriteString(strconv.Quote(tok))

		return
	}
	bw.WriteString(tok)
}
