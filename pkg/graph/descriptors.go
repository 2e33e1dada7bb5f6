package graph

import "fmt"

// VertexID uniquely identifies a vertex within a Graph.
//
// IDs are non-negative and allocated sequentially in insertion order, so a
// VertexID doubles as a stable sort key. IDs are never reused: after a vertex
// is removed its ID permanently resolves to "not found", which makes stale
// copies of an ID held by callers safe to look up at any time.
type VertexID int

// EdgeID uniquely identifies an edge within a Graph.
//
// The ID embeds both endpoint descriptors plus a per-ordered-pair sequence
// number, so parallel edges between the same source and target receive
// distinct IDs. Like vertex IDs, edge IDs are never reused after removal.
// EdgeID is comparable and can be used as a map key.
type EdgeID struct {
	Source VertexID // source vertex descriptor
	Target VertexID // target vertex descriptor
	Seq    int      // disambiguates parallel edges, monotonic per (Source, Target)
}

// String formats the ID as "src->dst#seq" for logs and error messages.
func (id EdgeID) String() string {
	return fmt.Sprintf("%d->%d#%d", id.Source, id.Target, id.Seq)
}

// Less reports whether id orders before other, comparing (Source, Target, Seq)
// lexicographically. This is the canonical edge order used by serializers.
func (id EdgeID) Less(other EdgeID) bool {
	if id.Source != other.Source {
		return id.Source < other.Source
	}
	if id.Target != other.Target {
		return id.Target < other.Target
	}
	return id.Seq < other.Seq
}

// Compare returns -1, 0, or +1 comparing id against other in canonical order.
// It satisfies the comparison contract of slices.SortFunc.
func (id EdgeID) Compare(other EdgeID) int {
	switch {
	case id.Less(other):
		return -1
	case other.Less(id):
		return 1
	default:
		return 0
	}
}

// Vertex is a vertex record: a descriptor plus the caller's property value.
// Records are owned by the graph; the pointer returned by [Graph.Vertex]
// stays valid until the vertex is removed or the graph is cleared.
type Vertex[V any] struct {
	id VertexID

	// Property is the caller-supplied payload. It may be mutated in place
	// through the pointer returned by [Graph.Vertex].
	Property V
}

// ID returns the vertex descriptor. IDs are immutable for the life of the vertex.
func (v *Vertex[V]) ID() VertexID { return v.id }

// Edge is an edge record: a descriptor (which embeds both endpoints) plus the
// caller's property value. Records are owned by the graph; the pointer
// returned by [Graph.Edge] stays valid until the edge is removed.
type Edge[E any] struct {
	id EdgeID

	// Property is the caller-supplied payload. It may be mutated in place
	// through the pointer returned by [Graph.Edge].
	Property E
}

// ID returns the edge descriptor.
func (e *Edge[E]) ID() EdgeID { return e.id }

// Source returns the descriptor of the edge's source vertex.
func (e *Edge[E]) Source() VertexID { return e.id.Source }

// Target returns the descriptor of the edge's target vertex.
func (e *Edge[E]) Target() VertexID { return e.id.Target }
