// Package lgf_test contains unit tests for the LGF writer: section
// layout, deterministic ordering, label substitution, token quoting,
// and error propagation.
package lgf_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/quiverlab/quiver/digraph"
	"github.com/quiverlab/quiver/lgf"
)

func buildSample(t *testing.T) (*digraph.Digraph, []digraph.Node) {
	t.Helper()
	g := digraph.New()
	ns := g.AddNodes(3)
	if _, err := g.AddArc(ns[0], ns[1]); err != nil {
		t.Fatal(err)
	}
	if _, err := g.AddArc(ns[1], ns[2]); err != nil {
		t.Fatal(err)
	}

	return g, ns
}

func TestWriter_DefaultSections(t *testing.T) {
	g, _ := buildSample(t)
	var sb strings.Builder
	if err := lgf.NewWriter(&sb).Write(g); err != nil {
		t.Fatal(err)
	}

	want := "@nodes\n" +
		"label\t\n" +
		"0\t\n" +
		"1\t\n" +
		"2\t\n" +
		"@arcs\n" +
		"\t\tlabel\t\n" +
		"0\t1\t0\t\n" +
		"1\t2\t1\t\n"
	if got := sb.String(); got != want {
		t.Errorf("unexpected output:\n%q\nwant:\n%q", got, want)
	}
}

func TestWriter_DeterministicOutput(t *testing.T) {
	g, _ := buildSample(t)
	var a, b strings.Builder
	if err := lgf.NewWriter(&a).Write(g); err != nil {
		t.Fatal(err)
	}
	if err := lgf.NewWriter(&b).Write(g); err != nil {
		t.Fatal(err)
	}
	if a.String() != b.String() {
		t.Errorf("two writes of the same graph differ:\n%q\n%q", a.String(), b.String())
	}
}

func TestWriter_CustomLabelMapReplacesHandles(t *testing.T) {
	g, ns := buildSample(t)
	labels := map[digraph.Node]string{ns[0]: "A", ns[1]: "B", ns[2]: "C"}

	var sb strings.Builder
	w := lgf.NewWriter(&sb, lgf.WithNodeMap("label", labels))
	if err := w.Write(g); err != nil {
		t.Fatal(err)
	}
	out := sb.String()

	if !strings.Contains(out, "A\t") || !strings.Contains(out, "A\tB\t") {
		t.Errorf("arc rows should reference custom labels, got:\n%s", out)
	}
	if strings.Contains(out, "label\tlabel") {
		t.Errorf("custom label map must replace the implicit column, got:\n%s", out)
	}
}

func TestWriter_ExtraColumnsAndAttributes(t *testing.T) {
	g, ns := buildSample(t)
	arcs := g.Arcs()
	names := map[digraph.Node]string{ns[0]: "src", ns[1]: "mid", ns[2]: "dst"}
	caps := map[digraph.Arc]string{arcs[0]: "10", arcs[1]: "20"}

	var sb strings.Builder
	w := lgf.NewWriter(&sb,
		lgf.WithNodeMap("name", names),
		lgf.WithArcMap("capacity", caps),
		lgf.WithAttribute("source", "demo"),
	)
	if err := w.Write(g); err != nil {
		t.Fatal(err)
	}
	out := sb.String()

	for _, frag := range []string{"name\t", "capacity\t", "@attributes\n", "source demo\n", "mid\t", "10\t"} {
		if !strings.Contains(out, frag) {
			t.Errorf("output missing %q:\n%s", frag, out)
		}
	}
}

func TestWriter_TokenQuoting(t *testing.T) {
	g, ns := buildSample(t)
	names := map[digraph.Node]string{ns[0]: "has space", ns[1]: "", ns[2]: "plain"}

	var sb strings.Builder
	if err := lgf.NewWriter(&sb, lgf.WithNodeMap("name", names)).Write(g); err != nil {
		t.Fatal(err)
	}
	out := sb.String()

	if !strings.Contains(out, `"has space"`) {
		t.Errorf("whitespace token should be quoted:\n%s", out)
	}
	if !strings.Contains(out, `""`) {
		t.Errorf("empty token should be quoted:\n%s", out)
	}
	if strings.Contains(out, `"plain"`) {
		t.Errorf("plain token should stay unquoted:\n%s", out)
	}
}

func TestWriter_SkipSections(t *testing.T) {
	g, _ := buildSample(t)
	var sb strings.Builder
	w := lgf.NewWriter(&sb, lgf.SkipNodes(), lgf.SkipArcs(), lgf.WithAttribute("k", "v"))
	if err := w.Write(g); err != nil {
		t.Fatal(err)
	}
	out := sb.String()
	if strings.Contains(out, "@nodes") || strings.Contains(out, "@arcs") {
		t.Errorf("skipped sections leaked into output:\n%s", out)
	}
	if !strings.Contains(out, "@attributes") {
		t.Errorf("attributes section missing:\n%s", out)
	}
}

// failWriter fails every write after the first n bytes.
type failWriter struct{ budget int }

var errSink = errors.New("sink full")

func (f *failWriter) Write(p []byte) (int, error) {
	if f.budget <= 0 {
		return 0, errSink
	}
	if len(p) > f.budget {
		n := f.budget
		f.budget = 0
		return n, errSink
	}
	f.budget -= len(p)
	return len(p), nil
}

func TestWriter_PropagatesWriteError(t *testing.T) {
	g, _ := buildSample(t)
	if err := lgf.NewWriter(&failWriter{budget: 4}).Write(g); !errors.Is(err, errSink) {
		t.Errorf("expected sink error, got %v", err)
	}
}
