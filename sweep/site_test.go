package sweep

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tkbush/voronoi2d/dcel"
	"github.com/tkbush/voronoi2d/event"
	"github.com/tkbush/voronoi2d/point"
)

func newState() *State {
	return &State{Arena: &dcel.Arena{}, Queue: event.NewQueue(), Sweepline: 0}
}

func TestHandleSite_FirstSiteBecomesRootLeaf(t *testing.T) {
	s := newState()
	site := s.Arena.NewSite(0, point.New(0, 10))
	s.Sweepline = 10

	s.handleSite(&event.SiteEvent{Site: site})

	require.NotNil(t, s.Root)
	assert.True(t, s.Root.IsLeaf())
	assert.Same(t, site, s.Root.Arc.Focus)
}

func TestHandleSite_SecondSiteSplitsBeachlineAndEmitsEdge(t *testing.T) {
	s := newState()
	first := s.Arena.NewSite(0, point.New(0, 10))
	s.Sweepline = 10
	s.handleSite(&event.SiteEvent{Site: first})

	second := s.Arena.NewSite(1, point.New(5, 5))
	s.Sweepline = 5
	s.handleSite(&event.SiteEvent{Site: second})

	require.False(t, s.Root.IsLeaf())
	require.Len(t, s.Edges, 1)

	bp := s.Root.Breakpoint
	require.NotNil(t, bp)
	assert.Same(t, bp.Edge, s.Edges[0])

	// The new site's arc must appear as the (or a) middle leaf between the first arc's two
	// halves, matching the §4.5 arc-split shape.
	leftLeaf, rightLeaf := s.Root.Left, s.Root.Right
	require.NotNil(t, leftLeaf)
	require.NotNil(t, rightLeaf)
	assert.Same(t, first, leftLeaf.Arc.Focus)
	require.False(t, rightLeaf.IsLeaf())
	assert.Same(t, second, rightLeaf.Left.Arc.Focus)
	assert.Same(t, first, rightLeaf.Right.Arc.Focus)
}

func TestHandleSite_FirstEdgeAssignedToBothSites(t *testing.T) {
	s := newState()
	q := s.Arena.NewSite(0, point.New(0, 10))
	s.Sweepline = 10
	s.handleSite(&event.SiteEvent{Site: q})

	p := s.Arena.NewSite(1, point.New(5, 5))
	s.Sweepline = 5
	s.handleSite(&event.SiteEvent{Site: p})

	assert.NotNil(t, p.FirstEdge)
	assert.NotNil(t, q.FirstEdge)
}
