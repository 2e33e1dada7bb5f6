package graph

import "slices"

// adjacencyIndex maps each vertex to the edges incident on it, in insertion
// order. It stores descriptors only, never edge data: the edge store owns the
// records, the index just makes per-vertex traversal cheap. The facade keeps
// it in sync with the edge store on every mutation.
type adjacencyIndex struct {
	outgoing map[VertexID][]EdgeID // vertex -> edges with that source
	incoming map[VertexID][]EdgeID // vertex -> edges with that target
}

func newAdjacencyIndex() adjacencyIndex {
	return adjacencyIndex{
		outgoing: make(map[VertexID][]EdgeID),
		incoming: make(map[VertexID][]EdgeID),
	}
}

// addEdge appends id to its source's outgoing list and its target's incoming list.
func (a *adjacencyIndex) addEdge(id EdgeID) {
	a.outgoing[id.Source] = append(a.outgoing[id.Source], id)
	a.incoming[id.Target] = append(a.incoming[id.Target], id)
}

// removeEdge drops id from both endpoint lists.
func (a *adjacencyIndex) removeEdge(id EdgeID) {
	a.outgoing[id.Source] = slices.DeleteFunc(a.outgoing[id.Source], func(e EdgeID) bool { return e == id })
	a.incoming[id.Target] = slices.DeleteFunc(a.incoming[id.Target], func(e EdgeID) bool { return e == id })
}

// dropVertex discards the vertex's own lists. Entries referencing the vertex
// from other lists are removed edge-by-edge during the facade's cascade, so
// by the time this runs both lists cover only already-deleted edges.
func (a *adjacencyIndex) dropVertex(id VertexID) {
	delete(a.outgoing, id)
	delete(a.incoming, id)
}

func (a *adjacencyIndex) out(id VertexID) []EdgeID { return a.outgoing[id] }
func (a *adjacencyIndex) in(id VertexID) []EdgeID  { return a.incoming[id] }

func (a *adjacencyIndex) reset() {
	a.outgoing = make(map[VertexID][]EdgeID)
	a.incoming = make(map[VertexID][]EdgeID)
}
