package dcel

import "github.com/tkbush/voronoi2d/point"

// Arena owns every Site, Vertex, and HalfEdge allocated during one diagram construction and
// hands out stable, monotonically increasing IDs as it does so. Per the design notes this
// keeps the densely cyclic half-edge/vertex/site graph's lifetimes tied to one enclosing
// value; unlike a manually-managed language, Go's garbage collector already makes the
// pointer cycles themselves safe, so the arena's job is to assign the stable vertex and
// edge IDs the output contract requires (site IDs come from the caller) rather than to
// stand in for manual memory management.
type Arena struct {
	nextVertex VertexID
	nextEdge   EdgeID

	Sites    []*Site
	Vertices []*Vertex
	Edges    []*HalfEdge
}

// NewSite allocates a Site at the given coordinate with the ID supplied by the caller. The
// sweep driver passes the input index here and overwrites the ID with the site's dequeue
// order once the corresponding site event is popped.
func (a *Arena) NewSite(id SiteID, coordinate point.Point) *Site {
	s := &Site{ID: id, Coordinate: coordinate}
	a.Sites = append(a.Sites, s)
	return s
}

// NewVertex allocates a Vertex at the given coordinate.
func (a *Arena) NewVertex(coordinate point.Point) *Vertex {
	v := &Vertex{ID: a.nextVertex, Coordinate: coordinate}
	a.nextVertex++
	a.Vertices = append(a.Vertices, v)
	return v
}

// RemoveVertex drops v from the arena's live vertex set (used by zero-length edge collapse).
func (a *Arena) RemoveVertex(v *Vertex) {
	for i, candidate := range a.Vertices {
		if candidate == v {
			a.Vertices = append(a.Vertices[:i], a.Vertices[i+1:]...)
			return
		}
	}
}

// NewHalfEdgePair allocates a twinned pair of half-edges, each incident to the given site
// (incidentB may equal nil for the as-yet-unassigned twin direction), with origins set as supplied.
// Per the edge-pair lifecycle (§3), only one half-edge of a new pair is ever appended to a
// diagram's canonical edge list by the caller — the twin is reachable via .Twin — so this
// allocator deliberately does not register either half-edge in a.Edges itself.
func (a *Arena) NewHalfEdgePair(incidentA, incidentB *Site, originA, originB Origin) (ea, eb *HalfEdge) {
	ea = &HalfEdge{ID: a.nextEdge, IncidentSite: incidentA, Origin: originA}
	a.nextEdge++
	eb = &HalfEdge{ID: a.nextEdge, IncidentSite: incidentB, Origin: originB}
	a.nextEdge++
	ea.Twin = eb
	eb.Twin = ea
	return ea, eb
}

// AppendEdge registers e in the arena's canonical edge list (the caller decides which half
// of a twin pair is canonical, matching the sweep driver's bookkeeping).
func (a *Arena) AppendEdge(e *HalfEdge) {
	a.Edges = append(a.Edges, e)
}

// SetEdges replaces the arena's canonical edge list wholesale (used after a filtering pass
// such as finish_edges or collapse_zero_length, which both produce a new slice).
func (a *Arena) SetEdges(edges []*HalfEdge) {
	a.Edges = edges
}
