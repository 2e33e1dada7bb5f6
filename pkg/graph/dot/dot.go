package dot

import (
	"bytes"
	"context"
	"fmt"
	"slices"

	"github.com/goccy/go-graphviz"

	"github.com/graftlabs/graft/pkg/graph"
)

// Options configures DOT generation.
type Options[V, E any] struct {
	// VertexLabel renders a vertex property into the node label. When nil,
	// nodes are labeled by descriptor only.
	VertexLabel func(V) string

	// EdgeLabel renders an edge property into the edge label. When nil,
	// edges carry no label.
	EdgeLabel func(E) string
}

// Strings returns options that use string properties directly as labels.
func Strings() Options[string, string] {
	identity := func(s string) string { return s }
	return Options[string, string]{VertexLabel: identity, EdgeLabel: identity}
}

// ToDOT converts a graph to Graphviz DOT. Nodes are named by vertex
// descriptor and emitted in ascending order; edges follow in ascending
// (source, target, seq) order, so output is deterministic. The resulting
// string can be rendered with [RenderSVG] or fed to any Graphviz tool.
func ToDOT[V, E any](g *graph.Graph[V, E], opts Options[V, E]) string {
	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white];\n")
	buf.WriteString("\n")

	for v := range g.Vertices() {
		label := fmt.Sprintf("%d", v.ID())
		if opts.VertexLabel != nil {
			label = fmt.Sprintf("%d: %s", v.ID(), opts.VertexLabel(v.Property))
		}
		fmt.Fprintf(&buf, "  %d [label=%q];\n", v.ID(), label)
	}

	ids := make([]graph.EdgeID, 0, g.EdgeCount())
	for e := range g.Edges() {
		ids = append(ids, e.ID())
	}
	slices.SortFunc(ids, graph.EdgeID.Compare)

	buf.WriteString("\n")
	for _, id := range ids {
		if opts.EdgeLabel != nil {
			p, _ := g.EdgeValue(id)
			fmt.Fprintf(&buf, "  %d -> %d [label=%q];\n", id.Source, id.Target, opts.EdgeLabel(p))
		} else {
			fmt.Fprintf(&buf, "  %d -> %d;\n", id.Source, id.Target)
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

// RenderSVG renders a DOT string to SVG bytes using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
