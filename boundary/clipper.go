package boundary

import (
	"math"

	"github.com/tkbush/voronoi2d/dcel"
	"github.com/tkbush/voronoi2d/point"
)

// Clipper intersects a diagram's unbounded half-edges against a Polygon, accumulating the
// set of boundary vertices (the polygon's own corners plus every point where a clipped edge
// crosses the boundary) needed to close the outer face in FinishPolygonBorders. Grounded on
// original_source/polygon.py's Polygon.finish_edges/finish_polygon.
type Clipper struct {
	Polygon          Polygon
	boundaryVertices []*dcel.Vertex
}

// NewClipper creates the polygon's corner vertices in arena and returns a Clipper ready to
// finish edges against poly.
func NewClipper(poly Polygon, arena *dcel.Arena) *Clipper {
	corners := make([]*dcel.Vertex, len(poly.Points))
	for i, p := range poly.Points {
		corners[i] = arena.NewVertex(p)
	}
	return &Clipper{Polygon: poly, boundaryVertices: corners}
}

func vertexOrigin(o dcel.Origin) (*dcel.Vertex, bool) {
	v, ok := o.(*dcel.Vertex)
	return v, ok
}

// needsFinishing reports whether e's origin is not yet a vertex inside the polygon: still a
// pending Breakpoint, or a Vertex that lies outside the bounding polygon.
func (c *Clipper) needsFinishing(e *dcel.HalfEdge) bool {
	v, ok := vertexOrigin(e.Origin)
	if !ok {
		return true
	}
	return !c.Polygon.Inside(v.Coordinate)
}

// finishEdge fixes e's origin to the point where it crosses the polygon boundary, evaluating
// both ends of the (possibly still-pending) edge far below the polygon's extent and casting a
// ray from the twin's evaluated point toward e's own evaluated point — matching the original's
// argument order exactly, since which endpoint plays ray-origin vs. ray-target is otherwise an
// arbitrary convention the spec leaves unstated. Leaves e.Origin nil on failure to intersect.
func (c *Clipper) finishEdge(e *dcel.HalfEdge, arena *dcel.Arena) {
	sweepline := c.Polygon.MinY - math.Abs(c.Polygon.MaxY) - 1
	start, startOk := e.ResolvedOrigin(sweepline, c.Polygon.MaxY)
	end, endOk := e.Twin.ResolvedOrigin(sweepline, c.Polygon.MaxY)
	if !startOk || !endOk {
		e.Origin = nil
		return
	}

	hit, ok := c.Polygon.intersectionPoint(end, start)
	if !ok {
		e.Origin = nil
		return
	}

	v := arena.NewVertex(hit)
	v.ConnectedEdges = append(v.ConnectedEdges, e)
	e.Origin = v
	c.boundaryVertices = append(c.boundaryVertices, v)
}

// FinishEdges resolves every still-pending or out-of-bounds edge endpoint against the
// polygon, dropping whichever edge pairs cannot be fixed to two valid vertices (an edge
// whose whole run never re-enters the polygon). Returns the surviving forward half-edges.
func (c *Clipper) FinishEdges(edges []*dcel.HalfEdge, arena *dcel.Arena) []*dcel.HalfEdge {
	kept := make([]*dcel.HalfEdge, 0, len(edges))
	for _, e := range edges {
		if c.needsFinishing(e) {
			c.finishEdge(e, arena)
		}
		if c.needsFinishing(e.Twin) {
			c.finishEdge(e.Twin, arena)
		}

		_, originOk := vertexOrigin(e.Origin)
		_, twinOk := vertexOrigin(e.Twin.Origin)
		if originOk && twinOk {
			kept = append(kept, e)
		} else {
			e.Delete()
			e.Twin.Delete()
		}
	}
	return kept
}

func closestSite(p point.Point, sites []*dcel.Site) *dcel.Site {
	if len(sites) == 0 {
		return nil
	}
	best := sites[0]
	bestDist := p.DistanceToPoint(best.Coordinate)
	for _, s := range sites[1:] {
		if d := p.DistanceToPoint(s.Coordinate); d < bestDist {
			bestDist = d
			best = s
		}
	}
	return best
}

func orderVerticesClockwise(vertices []*dcel.Vertex, center point.Point) []*dcel.Vertex {
	ordered := append([]*dcel.Vertex(nil), vertices...)
	keys := make(map[*dcel.Vertex]float64, len(ordered))
	for _, v := range ordered {
		keys[v] = clockwiseKey(v.Coordinate, center)
	}
	for i := 1; i < len(ordered); i++ {
		for j := i; j > 0 && keys[ordered[j-1]] > keys[ordered[j]]; j-- {
			ordered[j-1], ordered[j] = ordered[j], ordered[j-1]
		}
	}
	return ordered
}

// FinishPolygonBorders closes the outer face: it orders every boundary vertex (polygon
// corners plus the clip points FinishEdges created) clockwise around the polygon's centroid
// and links consecutive pairs with new boundary half-edges, assigning each the incident site
// of whatever cell already touches that vertex, or (absent one) the closest input site.
// existingVertices are the diagram's interior (circle-event) vertices, filtered here to those
// still inside the polygon. Returns the updated edge list and the full vertex set.
func (c *Clipper) FinishPolygonBorders(
	edges []*dcel.HalfEdge,
	existingVertices []*dcel.Vertex,
	sites []*dcel.Site,
	arena *dcel.Arena,
) ([]*dcel.HalfEdge, []*dcel.Vertex) {
	ordered := orderVerticesClockwise(c.boundaryVertices, c.Polygon.Center)
	if len(ordered) == 0 {
		return edges, existingVertices
	}
	loop := append(append([]*dcel.Vertex{}, ordered...), ordered[0])

	cell := closestSite(ordered[0].Coordinate, sites)
	for i := 0; i < len(loop)-1; i++ {
		origin := loop[i]
		end := loop[i+1]

		if len(origin.ConnectedEdges) > 0 {
			cell = origin.ConnectedEdges[0].Twin.IncidentSite
		} else {
			cell = closestSite(origin.Coordinate, sites)
		}

		forward, backward := arena.NewHalfEdgePair(cell, nil, origin, end)
		origin.ConnectedEdges = append(origin.ConnectedEdges, forward)
		end.ConnectedEdges = append(end.ConnectedEdges, backward)

		if cell != nil && cell.FirstEdge == nil {
			cell.FirstEdge = forward
		}
		forward.SetNext(end.ConnectedEdges[0])

		arena.AppendEdge(forward)
		edges = append(edges, forward)
	}

	kept := make([]*dcel.Vertex, 0, len(existingVertices))
	for _, v := range existingVertices {
		if c.Polygon.Inside(v.Coordinate) {
			kept = append(kept, v)
		}
	}

	vertices := make([]*dcel.Vertex, 0, len(ordered)+len(kept))
	vertices = append(vertices, ordered...)
	vertices = append(vertices, kept...)
	return edges, vertices
}
