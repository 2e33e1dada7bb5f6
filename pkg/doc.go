// Package pkg provides the core libraries for Graft graph management.
//
// # Overview
//
// Graft stores and manipulates directed property graphs: vertices and edges
// each carry a typed property, parallel edges and self-loops are allowed, and
// stable integer descriptors survive unrelated mutations. The pkg directory
// is organized into four main areas:
//
//  1. [graph] - The container itself (vertex store, edge store, adjacency)
//  2. [graph/text], [graph/dot] - Serialization (canonical text, Graphviz)
//  3. [store] - Named snapshot persistence (file, redis, mongo, null)
//  4. [observability] - Hook registry for store and codec events
//
// # Quick Start
//
// Build a graph, inspect it, and write it out:
//
//	import (
//	    "os"
//	    "github.com/graftlabs/graft/pkg/graph"
//	    "github.com/graftlabs/graft/pkg/graph/text"
//	)
//
//	g := graph.New[string, string]()
//	a := g.AddVertex("parser")
//	b := g.AddVertex("lexer")
//	g.AddEdge(a, b, "uses")
//
//	text.Write(os.Stdout, g, text.Strings())
//
// # Main Packages
//
// [graph] - Generic directed multigraph. Descriptors are never reused, edge
// properties are addressable through descriptors, and iteration is lazy via
// iter.Seq.
//
// [graph/text] - Line-oriented canonical text format. Reading is tolerant of
// comments and blank lines; writing is deterministic, so formatting is
// idempotent.
//
// [graph/dot] - Graphviz DOT conversion and in-process SVG rendering.
//
// [store] - Snapshot persistence behind a single Store interface with file,
// redis, mongo, and null backends.
//
// [observability] - Process-wide hooks observing snapshot and codec
// operations without coupling the libraries to a metrics system.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...          # All tests
//	go test ./pkg/graph/...    # Specific package
//	go test -run Example       # Examples only
//
// [graph]: https://pkg.go.dev/github.com/graftlabs/graft/pkg/graph
// [graph/text]: https://pkg.go.dev/github.com/graftlabs/graft/pkg/graph/text
// [graph/dot]: https://pkg.go.dev/github.com/graftlabs/graft/pkg/graph/dot
// [store]: https://pkg.go.dev/github.com/graftlabs/graft/pkg/store
// [observability]: https://pkg.go.dev/github.com/graftlabs/graft/pkg/observability
package pkg
