package text

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"slices"
	"strconv"

	"github.com/graftlabs/graft/pkg/graph"
)

// header is emitted as the first line of every encoded graph. The reader
// treats it as a comment, so the format stays trivially extensible.
const header = "# graft graph v1"

// Write encodes g to w in the line-oriented text format: a vertex section in
// ascending descriptor order followed by an edge section in ascending
// (source, target, seq) order. The output is deterministic for a given graph
// and can be read back with [Read].
func Write[V, E any](w io.Writer, g *graph.Graph[V, E], opts Options[V, E]) error {
	if opts.FormatVertex == nil || opts.FormatEdge == nil {
		return fmt.Errorf("text: options missing format funcs")
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, header)

	for v := range g.Vertices() {
		fmt.Fprintf(bw, "vertex %d %s\n", v.ID(), strconv.Quote(opts.FormatVertex(v.Property)))
	}

	ids := make([]graph.EdgeID, 0, g.EdgeCount())
	for e := range g.Edges() {
		ids = append(ids, e.ID())
	}
	slices.SortFunc(ids, graph.EdgeID.Compare)
	for _, id := range ids {
		p, _ := g.EdgeValue(id)
		fmt.Fprintf(bw, "edge %d %d %s\n", id.Source, id.Target, strconv.Quote(opts.FormatEdge(p)))
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("text: write: %w", err)
	}
	return nil
}

// Marshal encodes g into a byte slice. Convenience wrapper around [Write].
func Marshal[V, E any](g *graph.Graph[V, E], opts Options[V, E]) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(&buf, g, opts); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Export writes g to a file at path, creating or truncating it.
func Export[V, E any](g *graph.Graph[V, E], path string, opts Options[V, E]) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return Write(f, g, opts)
}
