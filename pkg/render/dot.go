// Package render turns dependency graphs into Graphviz DOT text and rasters
// it to SVG or PNG.
package render

import (
	"bytes"
	"fmt"

	"github.com/matzehuels/depgraph/pkg/depgraph"
)

// ToDOT converts a graph to Graphviz DOT format. Nodes appear in registry
// order and edges in adjacency order, so equal graphs produce identical
// output. The result renders with [SVG] or [PNG].
func ToDOT[T comparable](g *depgraph.Graph[T]) string {
	var buf bytes.Buffer
	buf.WriteString("digraph deps {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=24, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  ranksep=0.5;\n")
	buf.WriteString("  nodesep=0.3;\n")
	buf.WriteString("\n")

	nodes := g.Nodes()
	for _, n := range nodes {
		fmt.Fprintf(&buf, "  %q;\n", n.String())
	}

	buf.WriteString("\n")
	for _, n := range nodes {
		for _, c := range n.Children() {
			fmt.Fprintf(&buf, "  %q -> %q;\n", n.String(), c.String())
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}
