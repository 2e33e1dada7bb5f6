package graph

import "slices"

// pairKey identifies an ordered (source, target) endpoint pair.
type pairKey struct {
	src, dst VertexID
}

// edgeStore owns the edge records. Descriptors embed a per-pair sequence
// number so parallel edges stay distinguishable; the sequence counters are
// never rewound on removal, which keeps erased descriptors from being reused.
// Insertion order is tracked separately for iteration.
type edgeStore[E any] struct {
	byID  map[EdgeID]*Edge[E]
	order []EdgeID         // insertion order of live edges
	seq   map[pairKey]int  // next sequence number per ordered endpoint pair
}

func newEdgeStore[E any]() edgeStore[E] {
	return edgeStore[E]{
		byID: make(map[EdgeID]*Edge[E]),
		seq:  make(map[pairKey]int),
	}
}

// add stores a new edge u->v and returns its freshly allocated descriptor.
// Endpoint existence is the facade's responsibility.
func (s *edgeStore[E]) add(u, v VertexID, p E) EdgeID {
	key := pairKey{src: u, dst: v}
	id := EdgeID{Source: u, Target: v, Seq: s.seq[key]}
	s.seq[key]++
	s.byID[id] = &Edge[E]{id: id, Property: p}
	s.order = append(s.order, id)
	return id
}

func (s *edgeStore[E]) get(id EdgeID) (*Edge[E], bool) {
	e, ok := s.byID[id]
	return e, ok
}

// remove deletes the record and reports whether it existed.
func (s *edgeStore[E]) remove(id EdgeID) bool {
	if _, ok := s.byID[id]; !ok {
		return false
	}
	delete(s.byID, id)
	s.order = slices.DeleteFunc(s.order, func(e EdgeID) bool { return e == id })
	return true
}

func (s *edgeStore[E]) len() int { return len(s.byID) }

// reset drops all records and restarts every per-pair sequence counter.
func (s *edgeStore[E]) reset() {
	s.byID = make(map[EdgeID]*Edge[E])
	s.order = nil
	s.seq = make(map[pairKey]int)
}
