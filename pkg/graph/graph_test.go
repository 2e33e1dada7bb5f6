package graph_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/graftlabs/graft/pkg/graph"
)

type GraphSuite struct {
	suite.Suite
	g *graph.Graph[string, string]
}

func (s *GraphSuite) SetupTest() {
	s.g = graph.New[string, string]()
}

// abc populates the graph with the three-vertex fixture used across tests:
// vertices "a","b","c" at descriptors 0,1,2, edge 0->1 "x", edge 1->2 "y".
func (s *GraphSuite) abc() (a, b, c graph.VertexID, ab, bc graph.EdgeID) {
	require := require.New(s.T())
	a = s.g.AddVertex("a")
	b = s.g.AddVertex("b")
	c = s.g.AddVertex("c")
	require.Equal(graph.VertexID(0), a)
	require.Equal(graph.VertexID(1), b)
	require.Equal(graph.VertexID(2), c)

	var err error
	ab, err = s.g.AddEdge(a, b, "x")
	require.NoError(err)
	bc, err = s.g.AddEdge(b, c, "y")
	require.NoError(err)
	return a, b, c, ab, bc
}

func (s *GraphSuite) TestAddAndFindVertex() {
	require := require.New(s.T())
	a, b, _, _, _ := s.abc()

	require.Equal(3, s.g.VertexCount())
	require.Equal(2, s.g.EdgeCount())

	v, ok := s.g.Vertex(a)
	require.True(ok)
	require.Equal("a", v.Property)
	require.Equal(a, v.ID())

	val, ok := s.g.VertexValue(b)
	require.True(ok)
	require.Equal("b", val)

	_, ok = s.g.Vertex(graph.VertexID(99))
	require.False(ok)
}

func (s *GraphSuite) TestVertexPropertyIsMutable() {
	require := require.New(s.T())
	a := s.g.AddVertex("before")

	v, ok := s.g.Vertex(a)
	require.True(ok)
	v.Property = "after"

	got, _ := s.g.VertexValue(a)
	require.Equal("after", got)
}

func (s *GraphSuite) TestAddEdgeInvalidEndpoint() {
	require := require.New(s.T())
	a := s.g.AddVertex("a")

	_, err := s.g.AddEdge(a, graph.VertexID(42), "x")
	require.ErrorIs(err, graph.ErrInvalidEndpoint)
	_, err = s.g.AddEdge(graph.VertexID(42), a, "x")
	require.ErrorIs(err, graph.ErrInvalidEndpoint)

	require.Equal(0, s.g.EdgeCount(), "failed insert must leave edge count unchanged")
	require.NoError(s.g.Validate())
}

func (s *GraphSuite) TestAdjacencyOfFixture() {
	require := require.New(s.T())
	a, b, _, ab, _ := s.abc()

	var out []graph.EdgeID
	for id := range s.g.OutEdges(a) {
		out = append(out, id)
	}
	require.Len(out, 1, "vertex 0 has exactly one outgoing edge")
	require.Equal(ab, out[0])
	require.Equal(b, out[0].Target)

	require.Equal(1, s.g.OutDegree(a))
	require.Equal(0, s.g.InDegree(a))
	require.Equal(1, s.g.InDegree(b))
}

func (s *GraphSuite) TestRemoveVertexCascades() {
	require := require.New(s.T())
	a, b, c, _, _ := s.abc()

	require.NoError(s.g.RemoveVertex(b))

	require.Equal(2, s.g.VertexCount())
	require.Equal(0, s.g.EdgeCount(), "both edges touched vertex 1")
	_, ok := s.g.Vertex(b)
	require.False(ok)

	for e := range s.g.Edges() {
		s.T().Fatalf("unexpected surviving edge %s", e.ID())
	}
	require.Equal(0, s.g.OutDegree(a))
	require.Equal(0, s.g.InDegree(c))
	require.NoError(s.g.Validate())

	// Idempotent-by-failure: the second removal surfaces the error.
	require.ErrorIs(s.g.RemoveVertex(b), graph.ErrVertexNotFound)
}

func (s *GraphSuite) TestRemoveEdge() {
	require := require.New(s.T())
	_, _, _, ab, bc := s.abc()

	require.NoError(s.g.RemoveEdge(ab))
	require.Equal(1, s.g.EdgeCount())
	_, ok := s.g.Edge(ab)
	require.False(ok)
	_, ok = s.g.Edge(bc)
	require.True(ok)
	require.NoError(s.g.Validate())

	require.ErrorIs(s.g.RemoveEdge(ab), graph.ErrEdgeNotFound)
}

func (s *GraphSuite) TestParallelEdges() {
	require := require.New(s.T())
	a := s.g.AddVertex("a")
	b := s.g.AddVertex("b")

	e1, err := s.g.AddEdge(a, b, "x")
	require.NoError(err)
	e2, err := s.g.AddEdge(a, b, "z")
	require.NoError(err)

	require.NotEqual(e1, e2, "parallel edges need distinct descriptors")
	require.Equal(2, s.g.EdgeCount())

	require.NoError(s.g.RemoveEdge(e1))
	require.Equal(1, s.g.EdgeCount())
	v, ok := s.g.EdgeValue(e2)
	require.True(ok, "the sibling edge survives")
	require.Equal("z", v)
}

func (s *GraphSuite) TestUndirectedInsertIsAtomic() {
	require := require.New(s.T())
	a := s.g.AddVertex("a")
	b := s.g.AddVertex("b")

	require.NoError(s.g.AddEdgeUndirected(a, b, "w"))
	require.Equal(2, s.g.EdgeCount(), "undirected insert adds exactly two edges")
	require.Equal(1, s.g.OutDegree(a))
	require.Equal(1, s.g.OutDegree(b))

	err := s.g.AddEdgeUndirected(a, graph.VertexID(7), "w")
	require.ErrorIs(err, graph.ErrInvalidEndpoint)
	require.Equal(2, s.g.EdgeCount(), "failed undirected insert adds neither edge")
}

func (s *GraphSuite) TestDescriptorsNeverReused() {
	require := require.New(s.T())
	a := s.g.AddVertex("a")
	b := s.g.AddVertex("b")
	require.NoError(s.g.RemoveVertex(b))

	c := s.g.AddVertex("c")
	require.Equal(graph.VertexID(2), c, "erased descriptor 1 must not be reallocated")
	_, ok := s.g.Vertex(b)
	require.False(ok, "stale descriptor resolves to not-found")

	// Same for edges: the per-pair sequence keeps climbing across removals.
	e1, err := s.g.AddEdge(a, c, "x")
	require.NoError(err)
	require.NoError(s.g.RemoveEdge(e1))
	e2, err := s.g.AddEdge(a, c, "y")
	require.NoError(err)
	require.NotEqual(e1, e2)
}

func (s *GraphSuite) TestSelfLoop() {
	require := require.New(s.T())
	a := s.g.AddVertex("a")
	e, err := s.g.AddEdge(a, a, "loop")
	require.NoError(err)
	require.Equal(1, s.g.OutDegree(a))
	require.Equal(1, s.g.InDegree(a))
	require.NoError(s.g.Validate())

	require.NoError(s.g.RemoveVertex(a))
	require.Equal(0, s.g.EdgeCount())
	_, ok := s.g.Edge(e)
	require.False(ok)
	require.NoError(s.g.Validate())
}

func (s *GraphSuite) TestClearResetsAllocation() {
	require := require.New(s.T())
	s.abc()

	s.g.Clear()
	require.Equal(0, s.g.VertexCount())
	require.Equal(0, s.g.EdgeCount())

	a := s.g.AddVertex("fresh")
	require.Equal(graph.VertexID(0), a, "Clear restarts descriptor allocation")
	b := s.g.AddVertex("fresh2")
	e, err := s.g.AddEdge(a, b, "x")
	require.NoError(err)
	require.Equal(0, e.Seq, "Clear restarts edge sequence counters")
}

func (s *GraphSuite) TestAddVertexAt() {
	require := require.New(s.T())

	require.NoError(s.g.AddVertexAt(5, "five"))
	require.ErrorIs(s.g.AddVertexAt(5, "again"), graph.ErrDuplicateVertex)
	require.ErrorIs(s.g.AddVertexAt(-1, "neg"), graph.ErrInvalidDescriptor)

	next := s.g.AddVertex("six")
	require.Equal(graph.VertexID(6), next, "allocator moves past explicit descriptors")
}

func TestGraphSuite(t *testing.T) {
	suite.Run(t, new(GraphSuite))
}

func TestVertexIterationSkipsHoles(t *testing.T) {
	g := graph.New[string, string]()
	ids := []graph.VertexID{
		g.AddVertex("a"), g.AddVertex("b"), g.AddVertex("c"), g.AddVertex("d"),
	}
	if err := g.RemoveVertex(ids[1]); err != nil {
		t.Fatalf("RemoveVertex: %v", err)
	}

	var seen []graph.VertexID
	for v := range g.Vertices() {
		seen = append(seen, v.ID())
	}
	want := []graph.VertexID{0, 2, 3}
	if len(seen) != len(want) {
		t.Fatalf("iterated %v, want %v", seen, want)
	}
	for i := range want {
		if seen[i] != want[i] {
			t.Fatalf("iterated %v, want %v", seen, want)
		}
	}

	// Restarting the sequence reflects the live container.
	if err := g.RemoveVertex(ids[3]); err != nil {
		t.Fatalf("RemoveVertex: %v", err)
	}
	count := 0
	for range g.Vertices() {
		count++
	}
	if count != 2 {
		t.Errorf("restarted iteration saw %d vertices, want 2", count)
	}
}

func TestEdgeIterationInsertionOrder(t *testing.T) {
	g := graph.New[string, int]()
	a := g.AddVertex("a")
	b := g.AddVertex("b")
	c := g.AddVertex("c")

	// Insert out of descriptor order on purpose.
	e1, _ := g.AddEdge(b, c, 1)
	e2, _ := g.AddEdge(a, b, 2)
	e3, _ := g.AddEdge(a, c, 3)

	var got []graph.EdgeID
	for e := range g.Edges() {
		got = append(got, e.ID())
	}
	want := []graph.EdgeID{e1, e2, e3}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("edge order %v, want %v", got, want)
		}
	}
}

func TestIterationEarlyBreak(t *testing.T) {
	g := graph.New[int, int]()
	for i := 0; i < 10; i++ {
		g.AddVertex(i)
	}
	count := 0
	for range g.Vertices() {
		count++
		if count == 3 {
			break
		}
	}
	if count != 3 {
		t.Errorf("broke after %d vertices, want 3", count)
	}
}

func TestCountsTrackInsertAndErase(t *testing.T) {
	g := graph.New[int, int]()
	var ids []graph.VertexID
	for i := 0; i < 100; i++ {
		ids = append(ids, g.AddVertex(i))
	}
	for i := 0; i < 100; i += 2 {
		if err := g.RemoveVertex(ids[i]); err != nil {
			t.Fatalf("RemoveVertex(%d): %v", ids[i], err)
		}
	}
	if got := g.VertexCount(); got != 50 {
		t.Errorf("VertexCount() = %d, want 50", got)
	}
	for i, id := range ids {
		_, ok := g.Vertex(id)
		if erased := i%2 == 0; ok == erased {
			t.Errorf("Vertex(%d) present=%v, want %v", id, ok, !erased)
		}
	}
}
