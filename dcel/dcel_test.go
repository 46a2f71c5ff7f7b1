package dcel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tkbush/voronoi2d/point"
)

// square builds a closed 4-edge cell boundary around a single site, Next-linked in a cycle
// back to the first edge, the shape produced by a finished diagram's finish_polygon pass.
func square(t *testing.T) (*Site, []*HalfEdge, []*Vertex) {
	t.Helper()
	arena := &Arena{}
	s := arena.NewSite(0, point.New(0, 0))

	corners := []point.Point{
		point.New(0, 0), point.New(1, 0), point.New(1, 1), point.New(0, 1),
	}
	vertices := make([]*Vertex, len(corners))
	for i, c := range corners {
		vertices[i] = arena.NewVertex(c)
	}

	edges := make([]*HalfEdge, len(vertices))
	for i := range vertices {
		origin := vertices[i]
		edges[i] = &HalfEdge{ID: EdgeID(i), IncidentSite: s, Origin: origin}
		origin.ConnectedEdges = append(origin.ConnectedEdges, edges[i])
	}
	for i, e := range edges {
		e.SetNext(edges[(i+1)%len(edges)])
	}
	s.FirstEdge = edges[0]
	return s, edges, vertices
}

func TestSite_Boundary_ClosedLoop(t *testing.T) {
	s, edges, _ := square(t)
	got := s.Boundary()
	assert.Equal(t, edges, got)
}

func TestSite_Boundary_NoFirstEdge(t *testing.T) {
	s := &Site{}
	assert.Nil(t, s.Boundary())
}

func TestSite_Boundary_BrokenChainTerminates(t *testing.T) {
	s, edges, _ := square(t)
	edges[2].Next = nil // break the chain before it closes

	got := s.Boundary()
	assert.Equal(t, edges[:3], got)
}

func TestSite_Boundary_MalformedLoopTerminates(t *testing.T) {
	s, edges, _ := square(t)
	edges[2].Next = edges[1] // revisits edges[1] without passing through FirstEdge

	assert.NotPanics(t, func() {
		got := s.Boundary()
		assert.Equal(t, edges[:3], got)
	})
}

func TestSite_IsClosedLoop(t *testing.T) {
	s, _, _ := square(t)
	assert.True(t, s.IsClosedLoop())
}

func TestSite_IsClosedLoop_BrokenChain(t *testing.T) {
	s, edges, _ := square(t)
	edges[2].Next = nil
	assert.False(t, s.IsClosedLoop())
}

func TestSite_IsClosedLoop_NoFirstEdge(t *testing.T) {
	s := &Site{}
	assert.False(t, s.IsClosedLoop())
}

func TestSite_Vertices(t *testing.T) {
	s, _, vertices := square(t)
	assert.Equal(t, vertices, s.Vertices())
}

func TestSite_Area_UnitSquare(t *testing.T) {
	s, _, _ := square(t)
	assert.InDelta(t, 1.0, s.Area(), 1e-9)
}

func TestSite_Area_FewerThanThreeVertices(t *testing.T) {
	s := &Site{}
	assert.Equal(t, 0.0, s.Area())
}

func TestHalfEdge_SetNext(t *testing.T) {
	a := &HalfEdge{}
	b := &HalfEdge{}
	a.SetNext(b)
	assert.Same(t, b, a.Next)
	assert.Same(t, a, b.Prev)
}

func TestHalfEdge_Target(t *testing.T) {
	v := &Vertex{Coordinate: point.New(1, 1)}
	twin := &HalfEdge{Origin: v}
	e := &HalfEdge{Twin: twin}
	assert.Same(t, v, e.Target())
}

func TestHalfEdge_ResolvedOrigin_Fixed(t *testing.T) {
	v := &Vertex{Coordinate: point.New(2, 3)}
	e := &HalfEdge{Origin: v}
	p, ok := e.ResolvedOrigin(-100, 100)
	require.True(t, ok)
	assert.Equal(t, v.Coordinate, p)
}

func TestHalfEdge_ResolvedOrigin_Nil(t *testing.T) {
	e := &HalfEdge{}
	_, ok := e.ResolvedOrigin(-100, 100)
	assert.False(t, ok)
}

func TestHalfEdge_Delete_UnlinksFromVertexAndChain(t *testing.T) {
	s, edges, vertices := square(t)
	target := edges[1]

	target.Delete()

	assert.NotContains(t, vertices[1].ConnectedEdges, target)
	assert.Same(t, edges[2], edges[0].Next)
	assert.NotEqual(t, target, s.FirstEdge)
}

func TestHalfEdge_Delete_ClearsFirstEdge(t *testing.T) {
	s, edges, _ := square(t)
	edges[0].Delete()
	assert.Same(t, edges[1], s.FirstEdge)
}

func TestVertex_OriginKindAndResolve(t *testing.T) {
	v := &Vertex{Coordinate: point.New(4, 5)}
	assert.Equal(t, OriginFixed, v.OriginKind())
	p, ok := v.Resolve(0, 0)
	require.True(t, ok)
	assert.Equal(t, v.Coordinate, p)
}
