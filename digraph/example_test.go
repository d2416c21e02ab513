package digraph_test

import (
	"fmt"

	"github.com/quiverlab/quiver/digraph"
)

// ExampleDigraph builds a small multigraph and walks its out-arcs.
func ExampleDigraph() {
	g := digraph.New()
	ns := g.AddNodes(3) // A=0, B=1, C=2

	g.AddArc(ns[0], ns[1]) // A→B
	g.AddArc(ns[0], ns[2]) // A→C
	g.AddArc(ns[0], ns[1]) // a second, parallel A→B

	fmt.Println("nodes:", g.NodeCount(), "arcs:", g.ArcCount())
	for _, a := range g.OutArcs(ns[0]) {
		fmt.Printf("arc %d: %d→%d\n", a, g.Source(a), g.Target(a))
	}
	// Output:
	// nodes: 3 arcs: 3
	// arc 0: 0→1
	// arc 1: 0→2
	// arc 2: 0→1
}

// ExampleFindArc enumerates every parallel arc between one endpoint pair
// with the linear-scan baseline.
func ExampleFindArc() {
	g := digraph.New()
	ns := g.AddNodes(2)
	g.AddArc(ns[0], ns[1])
	g.AddArc(ns[0], ns[1])

	count := 0
	for a := digraph.FindArc(g, ns[0], ns[1], digraph.InvalidArc); a != digraph.InvalidArc; a = digraph.FindArc(g, ns[0], ns[1], a) {
		count++
	}
	fmt.Println("parallel arcs:", count)
	// Output:
	// parallel arcs: 2
}
