package sweep

import (
	"math"

	"github.com/emirpasic/gods/sets/hashset"
	"github.com/tkbush/voronoi2d/dcel"
)

const collapseEpsilon = 1e-10

// collapseZeroLength implements §4.9: any clipped edge whose two (now both fixed) endpoints
// coincide within epsilon is removed, with every half-edge that originated at the collapsed
// vertex reassigned to the vertex it was merged into. The removed-vertex set is a
// github.com/emirpasic/gods hashset, per this package's domain-dependency commitment.
func collapseZeroLength(edges []*dcel.HalfEdge, vertices []*dcel.Vertex) ([]*dcel.HalfEdge, []*dcel.Vertex) {
	kept := make([]*dcel.HalfEdge, 0, len(edges))
	collapsed := hashset.New()

	for _, e := range edges {
		if e.Removed {
			continue
		}
		v1, ok1 := e.Origin.(*dcel.Vertex)
		v2, ok2 := e.Twin.Origin.(*dcel.Vertex)
		if !ok1 || !ok2 || v1 == v2 || collapsed.Contains(v1) || collapsed.Contains(v2) {
			kept = append(kept, e)
			continue
		}
		if math.Abs(v1.Coordinate.X()-v2.Coordinate.X()) < collapseEpsilon &&
			math.Abs(v1.Coordinate.Y()-v2.Coordinate.Y()) < collapseEpsilon {
			reassignOrigin(edges, v1, v2)
			e.Removed = true
			e.Twin.Removed = true
			collapsed.Add(v1)
			continue
		}
		kept = append(kept, e)
	}

	remaining := make([]*dcel.Vertex, 0, len(vertices))
	for _, v := range vertices {
		if !collapsed.Contains(v) {
			remaining = append(remaining, v)
		}
	}
	return kept, remaining
}

// reassignOrigin rewrites every half-edge (in either direction of every pair in edges)
// whose origin is from to instead originate at to.
func reassignOrigin(edges []*dcel.HalfEdge, from, to *dcel.Vertex) {
	for _, e := range edges {
		for _, he := range [2]*dcel.HalfEdge{e, e.Twin} {
			if v, ok := he.Origin.(*dcel.Vertex); ok && v == from {
				he.Origin = to
				to.ConnectedEdges = append(to.ConnectedEdges, he)
			}
		}
	}
	from.ConnectedEdges = nil
}
