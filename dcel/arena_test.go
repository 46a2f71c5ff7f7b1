package dcel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tkbush/voronoi2d/point"
)

func TestArena_NewVertex_AssignsIncreasingIDs(t *testing.T) {
	a := &Arena{}
	v1 := a.NewVertex(point.New(0, 0))
	v2 := a.NewVertex(point.New(1, 1))
	assert.Equal(t, VertexID(0), v1.ID)
	assert.Equal(t, VertexID(1), v2.ID)
	assert.Equal(t, []*Vertex{v1, v2}, a.Vertices)
}

func TestArena_RemoveVertex(t *testing.T) {
	a := &Arena{}
	v1 := a.NewVertex(point.New(0, 0))
	v2 := a.NewVertex(point.New(1, 1))

	a.RemoveVertex(v1)

	assert.Equal(t, []*Vertex{v2}, a.Vertices)
}

func TestArena_NewHalfEdgePair_TwinsAndIDs(t *testing.T) {
	a := &Arena{}
	s := a.NewSite(0, point.New(0, 0))
	v1 := a.NewVertex(point.New(1, 0))
	v2 := a.NewVertex(point.New(0, 1))

	ea, eb := a.NewHalfEdgePair(s, nil, v1, v2)

	require.NotNil(t, ea)
	require.NotNil(t, eb)
	assert.Same(t, eb, ea.Twin)
	assert.Same(t, ea, eb.Twin)
	assert.NotEqual(t, ea.ID, eb.ID)
	assert.Same(t, v1, ea.Origin)
	assert.Same(t, v2, eb.Origin)
}

func TestArena_NewHalfEdgePair_DoesNotAutoAppendToEdges(t *testing.T) {
	a := &Arena{}
	s := a.NewSite(0, point.New(0, 0))
	a.NewHalfEdgePair(s, nil, nil, nil)
	assert.Empty(t, a.Edges)
}

func TestArena_AppendEdge(t *testing.T) {
	a := &Arena{}
	s := a.NewSite(0, point.New(0, 0))
	ea, _ := a.NewHalfEdgePair(s, nil, nil, nil)
	a.AppendEdge(ea)
	assert.Equal(t, []*HalfEdge{ea}, a.Edges)
}

func TestArena_SetEdges(t *testing.T) {
	a := &Arena{}
	s := a.NewSite(0, point.New(0, 0))
	ea, eb := a.NewHalfEdgePair(s, nil, nil, nil)
	a.AppendEdge(ea)
	a.SetEdges([]*HalfEdge{eb})
	assert.Equal(t, []*HalfEdge{eb}, a.Edges)
}
