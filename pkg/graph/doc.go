// Package graph provides a generic directed multigraph container that stores
// an arbitrary property value per vertex and per edge.
//
// # Overview
//
// The container is a building block: it owns vertex records, edge records,
// and an adjacency index, and exposes insertion, removal, lookup, and
// traversal with documented invariants. Algorithms (search, shortest path,
// and so on) are expected to be layered on top by callers, keyed off the
// descriptor types this package defines.
//
// # Descriptors
//
// Vertices are identified by [VertexID], a sequential non-negative integer.
// Edges are identified by [EdgeID], which embeds the endpoint pair plus a
// per-pair sequence number so parallel edges stay distinguishable. Both are
// comparable and usable as map keys.
//
// Descriptors are stable for the life of the entity and are never reused:
// removing a vertex or edge leaves a permanent hole, and a stale descriptor
// held by a caller reliably resolves to "not found" rather than aliasing a
// newer entity. [Graph.Clear] is the one exception - it resets allocation
// entirely, invalidating every outstanding descriptor at once.
//
// # Basic Usage
//
// Create a graph with [New], add vertices and edges, then traverse:
//
//	g := graph.New[string, int]()
//	a := g.AddVertex("a")
//	b := g.AddVertex("b")
//	e, _ := g.AddEdge(a, b, 7)
//	for id := range g.OutEdges(a) {
//	    // id == e
//	}
//
// # Mutation Contract
//
// Every failed operation leaves the graph exactly as it was. Removing a
// vertex cascades to its incident edges and their adjacency entries, so the
// no-dangling invariant holds after every call, not just eventually.
// [Graph.AddEdgeUndirected] inserts both directions or neither.
//
// # Iteration
//
// [Graph.Vertices], [Graph.Edges], [Graph.OutEdges], and [Graph.InEdges]
// return lazy, restartable range-over-func sequences over the live
// container. There is no snapshot isolation: restarting a sequence after a
// mutation observes the new state, and mutating the graph while a sequence
// is running is undefined. This mirrors the usual external-iterator rules
// and is a caller responsibility, not runtime-checked.
//
// # Concurrency
//
// Graph instances are not safe for concurrent use. All operations are
// synchronous and CPU-bound; callers sharing an instance across goroutines
// must serialize access themselves.
//
// # Serialization
//
// The [text] subpackage provides a deterministic line-oriented codec for
// persisting and reloading graphs, and the [dot] subpackage renders graphs
// to Graphviz DOT and SVG.
//
// [text]: github.com/graftlabs/graft/pkg/graph/text
// [dot]: github.com/graftlabs/graft/pkg/graph/dot
package graph
