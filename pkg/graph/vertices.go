package graph

// vertexStore owns the vertex records. It hands out monotonically increasing
// descriptors and leaves holes on removal rather than renumbering, so live
// descriptors never collide with erased ones.
type vertexStore[V any] struct {
	byID map[VertexID]*Vertex[V]
	next VertexID // next descriptor to allocate, never decremented except by reset
}

func newVertexStore[V any]() vertexStore[V] {
	return vertexStore[V]{byID: make(map[VertexID]*Vertex[V])}
}

// add stores v under a freshly allocated descriptor.
func (s *vertexStore[V]) add(v V) VertexID {
	id := s.next
	s.next++
	s.byID[id] = &Vertex[V]{id: id, Property: v}
	return id
}

// addAt stores v under an explicit descriptor and bumps the allocator past it,
// keeping later add calls collision-free. Used when reconstructing a graph
// from serialized form, where descriptors may be non-contiguous.
func (s *vertexStore[V]) addAt(id VertexID, v V) error {
	if id < 0 {
		return ErrInvalidDescriptor
	}
	if _, exists := s.byID[id]; exists {
		return ErrDuplicateVertex
	}
	s.byID[id] = &Vertex[V]{id: id, Property: v}
	if id >= s.next {
		s.next = id + 1
	}
	return nil
}

func (s *vertexStore[V]) get(id VertexID) (*Vertex[V], bool) {
	v, ok := s.byID[id]
	return v, ok
}

func (s *vertexStore[V]) has(id VertexID) bool {
	_, ok := s.byID[id]
	return ok
}

// remove deletes the record and reports whether it existed. The descriptor is
// not returned to the allocator.
func (s *vertexStore[V]) remove(id VertexID) bool {
	if _, ok := s.byID[id]; !ok {
		return false
	}
	delete(s.byID, id)
	return true
}

func (s *vertexStore[V]) len() int { return len(s.byID) }

// reset drops all records and restarts descriptor allocation from zero.
func (s *vertexStore[V]) reset() {
	s.byID = make(map[VertexID]*Vertex[V])
	s.next = 0
}
