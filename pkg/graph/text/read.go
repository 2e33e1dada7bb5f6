package text

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/graftlabs/graft/pkg/graph"
)

// ParseError reports a malformed line in serialized graph input. It carries
// the 1-based line number and the offending text so callers can point users
// at the exact problem.
type ParseError struct {
	Line int    // 1-based line number
	Text string // the offending line, as read
	Msg  string // what was wrong with it
	Err  error  // underlying cause, if any
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("text: line %d: %s: %v (%q)", e.Line, e.Msg, e.Err, e.Text)
	}
	return fmt.Sprintf("text: line %d: %s (%q)", e.Line, e.Msg, e.Text)
}

// Unwrap returns the underlying cause for errors.Is/As chains. An edge line
// naming an undeclared vertex wraps [graph.ErrInvalidEndpoint].
func (e *ParseError) Unwrap() error { return e.Err }

// Read decodes a graph from r.
//
// Blank lines and lines starting with '#' are ignored. Every other line is
// either
//
//	vertex <id> <quoted property>
//	edge <src> <dst> <quoted property>
//
// with all vertex lines preceding all edge lines. Vertex descriptors are
// preserved exactly, holes included; edge descriptors are reallocated in
// input order, so only the edge multiset round-trips, not sequence numbers.
//
// Malformed input fails with a *ParseError naming the offending line. An
// edge referencing an undeclared vertex fails with a *ParseError wrapping
// [graph.ErrInvalidEndpoint]. Read does not close r.
func Read[V, E any](r io.Reader, opts Options[V, E]) (*graph.Graph[V, E], error) {
	if opts.ParseVertex == nil || opts.ParseEdge == nil {
		return nil, fmt.Errorf("text: options missing parse funcs")
	}

	g := graph.New[V, E]()
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)

	lineno := 0
	edgesSeen := false
	for sc.Scan() {
		lineno++
		line := sc.Text()
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}

		keyword, rest, _ := strings.Cut(trimmed, " ")
		switch keyword {
		case "vertex":
			if edgesSeen {
				return nil, &ParseError{Line: lineno, Text: line, Msg: "vertex line after edge section"}
			}
			idField, quoted, ok := strings.Cut(rest, " ")
			if !ok {
				return nil, &ParseError{Line: lineno, Text: line, Msg: "want \"vertex <id> <property>\""}
			}
			id, err := strconv.Atoi(idField)
			if err != nil || id < 0 {
				return nil, &ParseError{Line: lineno, Text: line, Msg: "bad vertex descriptor", Err: err}
			}
			prop, perr := parseProperty(quoted, opts.ParseVertex)
			if perr != nil {
				return nil, &ParseError{Line: lineno, Text: line, Msg: "bad vertex property", Err: perr}
			}
			if err := g.AddVertexAt(graph.VertexID(id), prop); err != nil {
				return nil, &ParseError{Line: lineno, Text: line, Msg: "cannot add vertex", Err: err}
			}

		case "edge":
			edgesSeen = true
			srcField, rest2, ok := strings.Cut(rest, " ")
			if !ok {
				return nil, &ParseError{Line: lineno, Text: line, Msg: "want \"edge <src> <dst> <property>\""}
			}
			dstField, quoted, ok := strings.Cut(rest2, " ")
			if !ok {
				return nil, &ParseError{Line: lineno, Text: line, Msg: "want \"edge <src> <dst> <property>\""}
			}
			src, err := strconv.Atoi(srcField)
			if err != nil {
				return nil, &ParseError{Line: lineno, Text: line, Msg: "bad source descriptor", Err: err}
			}
			dst, err := strconv.Atoi(dstField)
			if err != nil {
				return nil, &ParseError{Line: lineno, Text: line, Msg: "bad target descriptor", Err: err}
			}
			prop, perr := parseProperty(quoted, opts.ParseEdge)
			if perr != nil {
				return nil, &ParseError{Line: lineno, Text: line, Msg: "bad edge property", Err: perr}
			}
			if _, err := g.AddEdge(graph.VertexID(src), graph.VertexID(dst), prop); err != nil {
				return nil, &ParseError{Line: lineno, Text: line, Msg: "cannot add edge", Err: err}
			}

		default:
			return nil, &ParseError{Line: lineno, Text: line, Msg: fmt.Sprintf("unknown directive %q", keyword)}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("text: read: %w", err)
	}
	return g, nil
}

// parseProperty unquotes the trailing field of a line and hands it to parse.
func parseProperty[T any](quoted string, parse func(string) (T, error)) (T, error) {
	var zero T
	raw, err := strconv.Unquote(strings.TrimSpace(quoted))
	if err != nil {
		return zero, fmt.Errorf("unquote: %w", err)
	}
	return parse(raw)
}

// Unmarshal decodes a graph from a byte slice. Convenience wrapper around [Read].
func Unmarshal[V, E any](data []byte, opts Options[V, E]) (*graph.Graph[V, E], error) {
	return Read(bytes.NewReader(data), opts)
}

// Import reads and decodes the file at path.
func Import[V, E any](path string, opts Options[V, E]) (*graph.Graph[V, E], error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return Read[V, E](f, opts)
}
