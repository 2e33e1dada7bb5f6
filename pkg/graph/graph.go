package graph

import (
	"errors"
	"fmt"
	"iter"
	"maps"
	"slices"
)

var (
	// ErrVertexNotFound is returned by [Graph.RemoveVertex] when the descriptor
	// does not identify a live vertex. Removing the same vertex twice fails the
	// second time; removal is never a silent no-op.
	ErrVertexNotFound = errors.New("graph: vertex not found")

	// ErrEdgeNotFound is returned by [Graph.RemoveEdge] when the descriptor
	// does not identify a live edge.
	ErrEdgeNotFound = errors.New("graph: edge not found")

	// ErrInvalidEndpoint is returned by [Graph.AddEdge] and
	// [Graph.AddEdgeUndirected] when either endpoint descriptor does not
	// identify a live vertex. The graph is left unchanged.
	ErrInvalidEndpoint = errors.New("graph: edge endpoint does not exist")

	// ErrDuplicateVertex is returned by [Graph.AddVertexAt] when the
	// descriptor is already in use.
	ErrDuplicateVertex = errors.New("graph: duplicate vertex descriptor")

	// ErrInvalidDescriptor is returned by [Graph.AddVertexAt] when the
	// descriptor is negative.
	ErrInvalidDescriptor = errors.New("graph: invalid vertex descriptor")

	// ErrInconsistentAdjacency is returned by [Graph.Validate] when the
	// adjacency index disagrees with the edge store. It indicates internal
	// corruption and should never occur through the public API.
	ErrInconsistentAdjacency = errors.New("graph: adjacency index out of sync with edge store")
)

// Graph is a directed multigraph container carrying a property of type V per
// vertex and a property of type E per edge. Property types need only be
// storable values; the container imposes no further constraints on them.
//
// The zero value is not usable - use [New]. Graph must not be copied after
// first use; pass *Graph and treat the pointer as the unit of ownership.
// Graph is not safe for concurrent use: callers running multiple goroutines
// against one instance must serialize access themselves.
type Graph[V, E any] struct {
	vertices vertexStore[V]
	edges    edgeStore[E]
	adj      adjacencyIndex
}

// New creates an empty graph.
func New[V, E any]() *Graph[V, E] {
	return &Graph[V, E]{
		vertices: newVertexStore[V](),
		edges:    newEdgeStore[E](),
		adj:      newAdjacencyIndex(),
	}
}

// AddVertex stores v under the next sequential descriptor and returns it.
// It never fails.
func (g *Graph[V, E]) AddVertex(v V) VertexID {
	return g.vertices.add(v)
}

// AddVertexAt stores v under an explicit descriptor, bumping the internal
// allocator past id so later [Graph.AddVertex] calls cannot collide. This
// exists so deserializers can reproduce a graph's descriptors exactly, holes
// included. Returns [ErrInvalidDescriptor] for negative ids and
// [ErrDuplicateVertex] if the descriptor is already live.
func (g *Graph[V, E]) AddVertexAt(id VertexID, v V) error {
	return g.vertices.addAt(id, v)
}

// AddEdge inserts a directed edge u->v carrying property p and returns its
// descriptor. Parallel edges between the same pair are allowed and receive
// distinct descriptors. Returns [ErrInvalidEndpoint], leaving the graph
// unchanged, if either endpoint does not exist.
func (g *Graph[V, E]) AddEdge(u, v VertexID, p E) (EdgeID, error) {
	if !g.vertices.has(u) || !g.vertices.has(v) {
		return EdgeID{}, ErrInvalidEndpoint
	}
	id := g.edges.add(u, v, p)
	g.adj.addEdge(id)
	return id, nil
}

// AddEdgeUndirected inserts the pair of directed edges u->v and v->u, each
// carrying a copy of p. Endpoints are checked before anything is inserted, so
// either both edges are added or neither is. No descriptors are returned;
// traverse from either endpoint to discover them.
func (g *Graph[V, E]) AddEdgeUndirected(u, v VertexID, p E) error {
	if !g.vertices.has(u) || !g.vertices.has(v) {
		return ErrInvalidEndpoint
	}
	g.adj.addEdge(g.edges.add(u, v, p))
	g.adj.addEdge(g.edges.add(v, u, p))
	return nil
}

// RemoveVertex deletes the vertex and cascades: every edge with id as source
// or target is deleted along with its adjacency entries, so no edge in the
// graph references id afterwards. Returns [ErrVertexNotFound] if the
// descriptor is not live; calling twice fails the second time.
func (g *Graph[V, E]) RemoveVertex(id VertexID) error {
	if !g.vertices.has(id) {
		return ErrVertexNotFound
	}
	// Snapshot the incident descriptors before mutating the lists under them.
	incident := slices.Clone(g.adj.out(id))
	incident = append(incident, g.adj.in(id)...)
	for _, eid := range incident {
		// A self-loop shows up in both lists; the second pass is a no-op.
		if g.edges.remove(eid) {
			g.adj.removeEdge(eid)
		}
	}
	g.adj.dropVertex(id)
	g.vertices.remove(id)
	return nil
}

// RemoveEdge deletes the edge and its adjacency entries. Returns
// [ErrEdgeNotFound] if the descriptor is not live.
func (g *Graph[V, E]) RemoveEdge(id EdgeID) error {
	if !g.edges.remove(id) {
		return ErrEdgeNotFound
	}
	g.adj.removeEdge(id)
	return nil
}

// Clear removes all vertices and edges and resets descriptor allocation, so
// the next AddVertex returns 0 again. It never fails.
func (g *Graph[V, E]) Clear() {
	g.vertices.reset()
	g.edges.reset()
	g.adj.reset()
}

// VertexCount returns the number of live vertices. O(1).
func (g *Graph[V, E]) VertexCount() int { return g.vertices.len() }

// EdgeCount returns the number of live edges. O(1).
func (g *Graph[V, E]) EdgeCount() int { return g.edges.len() }

// Vertex returns the vertex record for id, or false if the descriptor is not
// live. The record is the graph's own: mutating Property through the pointer
// updates the stored value.
func (g *Graph[V, E]) Vertex(id VertexID) (*Vertex[V], bool) {
	return g.vertices.get(id)
}

// VertexValue returns a copy of the property stored at id. Use this for
// read-only access; mutations of the copy do not affect the graph.
func (g *Graph[V, E]) VertexValue(id VertexID) (V, bool) {
	if v, ok := g.vertices.get(id); ok {
		return v.Property, true
	}
	var zero V
	return zero, false
}

// Edge returns the edge record for id, or false if the descriptor is not
// live. Mutating Property through the pointer updates the stored value.
func (g *Graph[V, E]) Edge(id EdgeID) (*Edge[E], bool) {
	return g.edges.get(id)
}

// EdgeValue returns a copy of the property stored at id.
func (g *Graph[V, E]) EdgeValue(id EdgeID) (E, bool) {
	if e, ok := g.edges.get(id); ok {
		return e.Property, true
	}
	var zero E
	return zero, false
}

// Vertices returns a restartable sequence over the live vertices in ascending
// descriptor order, skipping holes left by removal. The sequence reads the
// live container: restarting it after a mutation reflects the new state, and
// mutating the graph mid-iteration is undefined.
func (g *Graph[V, E]) Vertices() iter.Seq[*Vertex[V]] {
	return func(yield func(*Vertex[V]) bool) {
		for _, id := range slices.Sorted(maps.Keys(g.vertices.byID)) {
			if !yield(g.vertices.byID[id]) {
				return
			}
		}
	}
}

// Edges returns a restartable sequence over the live edges in insertion
// order. The same live-container caveats as [Graph.Vertices] apply.
func (g *Graph[V, E]) Edges() iter.Seq[*Edge[E]] {
	return func(yield func(*Edge[E]) bool) {
		for _, id := range g.edges.order {
			if !yield(g.edges.byID[id]) {
				return
			}
		}
	}
}

// OutEdges returns a restartable sequence over the descriptors of edges whose
// source is id, in insertion order. An unknown vertex yields an empty sequence.
func (g *Graph[V, E]) OutEdges(id VertexID) iter.Seq[EdgeID] {
	return func(yield func(EdgeID) bool) {
		for _, eid := range g.adj.out(id) {
			if !yield(eid) {
				return
			}
		}
	}
}

// InEdges returns a restartable sequence over the descriptors of edges whose
// target is id, in insertion order.
func (g *Graph[V, E]) InEdges(id VertexID) iter.Seq[EdgeID] {
	return func(yield func(EdgeID) bool) {
		for _, eid := range g.adj.in(id) {
			if !yield(eid) {
				return
			}
		}
	}
}

// OutDegree returns the number of edges whose source is id, 0 for unknown vertices.
func (g *Graph[V, E]) OutDegree(id VertexID) int { return len(g.adj.out(id)) }

// InDegree returns the number of edges whose target is id, 0 for unknown vertices.
func (g *Graph[V, E]) InDegree(id VertexID) int { return len(g.adj.in(id)) }

// Sources returns the descriptors of vertices with no incoming edges, in
// ascending order.
func (g *Graph[V, E]) Sources() []VertexID {
	var ids []VertexID
	for v := range g.Vertices() {
		if g.InDegree(v.ID()) == 0 {
			ids = append(ids, v.ID())
		}
	}
	return ids
}

// Sinks returns the descriptors of vertices with no outgoing edges, in
// ascending order.
func (g *Graph[V, E]) Sinks() []VertexID {
	var ids []VertexID
	for v := range g.Vertices() {
		if g.OutDegree(v.ID()) == 0 {
			ids = append(ids, v.ID())
		}
	}
	return ids
}

// Validate audits internal consistency: every edge's endpoints must be live
// vertices and every edge must appear exactly once in its source's outgoing
// list and its target's incoming list, with no stray entries. A healthy graph
// always passes; a failure means the container was corrupted (for example by
// a data race) and reports [ErrInvalidEndpoint] or [ErrInconsistentAdjacency]
// with detail.
func (g *Graph[V, E]) Validate() error {
	for id := range g.edges.byID {
		if !g.vertices.has(id.Source) || !g.vertices.has(id.Target) {
			return fmt.Errorf("edge %s: %w", id, ErrInvalidEndpoint)
		}
		if countOf(g.adj.out(id.Source), id) != 1 || countOf(g.adj.in(id.Target), id) != 1 {
			return fmt.Errorf("edge %s: %w", id, ErrInconsistentAdjacency)
		}
	}
	entries := 0
	for _, list := range g.adj.outgoing {
		for _, id := range list {
			if _, ok := g.edges.byID[id]; !ok {
				return fmt.Errorf("dangling entry %s: %w", id, ErrInconsistentAdjacency)
			}
		}
		entries += len(list)
	}
	if entries != g.edges.len() {
		return fmt.Errorf("%d adjacency entries for %d edges: %w", entries, g.edges.len(), ErrInconsistentAdjacency)
	}
	return nil
}

func countOf(list []EdgeID, id EdgeID) int {
	n := 0
	for _, e := range list {
		if e == id {
			n++
		}
	}
	return n
}
