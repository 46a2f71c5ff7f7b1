// Package dcel implements the doubly-connected edge list that backs a Voronoi diagram:
// sites, vertices, and the half-edges that link them into cell boundaries.
//
// A half-edge's origin is transiently polymorphic: while the sweep is running it may point
// at a Breakpoint that is still tracing out an edge, and once the breakpoint converges (or
// the edge is clipped against the bounding polygon) it is fixed to a concrete Vertex. The
// [Origin] interface models that tagged union; the beachline package's Breakpoint type and
// this package's Vertex type are its two implementations.
package dcel

import (
	"github.com/emirpasic/gods/sets/hashset"
	"github.com/tkbush/voronoi2d/point"
)

// SiteID is the stable, dequeue-order identifier assigned to a site (0..n-1).
type SiteID int

// VertexID is a stable identifier assigned to a Voronoi vertex at creation time.
type VertexID int

// EdgeID is a stable identifier assigned to a half-edge at creation time.
type EdgeID int

// OriginKind distinguishes a half-edge's pending (breakpoint) origin from its fixed
// (vertex) origin.
type OriginKind uint8

const (
	// OriginPending means the half-edge's origin is still being traced by a moving breakpoint.
	OriginPending OriginKind = iota
	// OriginFixed means the half-edge's origin has been closed to a concrete Vertex.
	OriginFixed
)

// Origin is the transient polymorphic origin of a half-edge described in the design notes:
// either a pending breakpoint or a fixed vertex. Resolve returns the origin's position; for
// a pending breakpoint this depends on the supplied sweep-line (capped at maxY in the
// degenerate equal-y case). Both implementations report ok as true.
type Origin interface {
	OriginKind() OriginKind
	Resolve(sweepline, maxY float64) (point.Point, bool)
}

// Site is an input point carrying a stable name and a pointer into its Voronoi cell's
// boundary. Following Next links from FirstEdge enumerates the cell boundary.
type Site struct {
	ID         SiteID
	Coordinate point.Point
	FirstEdge  *HalfEdge
}

// X returns the site's x-coordinate.
func (s *Site) X() float64 { return s.Coordinate.X() }

// Y returns the site's y-coordinate.
func (s *Site) Y() float64 { return s.Coordinate.Y() }

// Boundary walks the Next chain starting at FirstEdge and returns it as a slice, stopping
// when it returns to FirstEdge or when the chain is broken (not yet closed) or revisits an
// edge without passing through FirstEdge again (a malformed loop). The visited set guards
// against exactly that malformed case, where a naive "walk until Next == FirstEdge" loop
// would spin forever.
func (s *Site) Boundary() []*HalfEdge {
	if s.FirstEdge == nil {
		return nil
	}
	visited := hashset.New()
	edge := s.FirstEdge
	edges := []*HalfEdge{edge}
	visited.Add(edge)
	for edge.Next != s.FirstEdge {
		if edge.Next == nil || visited.Contains(edge.Next) {
			return edges
		}
		edge = edge.Next
		visited.Add(edge)
		edges = append(edges, edge)
	}
	return edges
}

// IsClosedLoop reports whether the Next chain from FirstEdge returns to FirstEdge in a
// finite number of steps without revisiting any other edge first — the closed-loop
// invariant of §8 invariant 3.
func (s *Site) IsClosedLoop() bool {
	if s.FirstEdge == nil {
		return false
	}
	visited := hashset.New()
	edge := s.FirstEdge
	visited.Add(edge)
	for {
		next := edge.Next
		if next == nil {
			return false
		}
		if next == s.FirstEdge {
			return true
		}
		if visited.Contains(next) {
			return false
		}
		visited.Add(next)
		edge = next
	}
}

// Vertices returns the Vertex origins of the site's cell boundary, in boundary order.
func (s *Site) Vertices() []*Vertex {
	borders := s.Boundary()
	vertices := make([]*Vertex, 0, len(borders))
	for _, edge := range borders {
		if v, ok := edge.Origin.(*Vertex); ok {
			vertices = append(vertices, v)
		}
	}
	return vertices
}

// Area computes the cell's area via the shoelace formula over its ordered vertex loop.
func (s *Site) Area() float64 {
	vertices := s.Vertices()
	if len(vertices) < 3 {
		return 0
	}
	sum := 0.0
	n := len(vertices)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		sum += vertices[i].Coordinate.X()*vertices[j].Coordinate.Y() -
			vertices[j].Coordinate.X()*vertices[i].Coordinate.Y()
	}
	if sum < 0 {
		sum = -sum
	}
	return 0.5 * sum
}

// Vertex is a Voronoi vertex: a circle-event convergence point, or a point where an edge
// crosses the bounding polygon.
type Vertex struct {
	ID             VertexID
	Coordinate     point.Point
	ConnectedEdges []*HalfEdge
}

// OriginKind implements [Origin].
func (v *Vertex) OriginKind() OriginKind { return OriginFixed }

// Resolve implements [Origin]; a fixed vertex ignores the sweep-line.
func (v *Vertex) Resolve(sweepline, maxY float64) (point.Point, bool) {
	return v.Coordinate, true
}

func (v *Vertex) removeConnectedEdge(e *HalfEdge) {
	for i, edge := range v.ConnectedEdges {
		if edge == e {
			v.ConnectedEdges = append(v.ConnectedEdges[:i], v.ConnectedEdges[i+1:]...)
			return
		}
	}
}

// HalfEdge is a directed edge of the DCEL.
type HalfEdge struct {
	ID           EdgeID
	Origin       Origin
	IncidentSite *Site
	Twin         *HalfEdge
	Next, Prev   *HalfEdge
	Removed      bool
}

// SetNext links e to next, also setting next's Prev back-link (when next is non-nil).
func (e *HalfEdge) SetNext(next *HalfEdge) {
	if next != nil {
		next.Prev = e
	}
	e.Next = next
}

// Target returns the twin's origin, i.e. the vertex/breakpoint this edge points toward.
func (e *HalfEdge) Target() Origin {
	if e.Twin == nil {
		return nil
	}
	return e.Twin.Origin
}

// ResolvedOrigin evaluates e's origin under the given sweep-line (used only when the
// origin is still pending); ok is false if the origin is unset or has no real position.
func (e *HalfEdge) ResolvedOrigin(sweepline, maxY float64) (point.Point, bool) {
	if e.Origin == nil {
		return point.Point{}, false
	}
	return e.Origin.Resolve(sweepline, maxY)
}

// Delete unlinks e from its origin vertex's connected-edge list, splices it out of the
// Prev/Next chain, and clears its incident site's FirstEdge if it pointed here.
func (e *HalfEdge) Delete() {
	if v, ok := e.Origin.(*Vertex); ok {
		v.removeConnectedEdge(e)
	}
	if e.Prev != nil {
		e.Prev.SetNext(e.Next)
	}
	if e.IncidentSite != nil && e.IncidentSite.FirstEdge == e {
		e.IncidentSite.FirstEdge = e.Next
	}
}
