// Package sweep drives Fortune's sweep-line algorithm: it pulls site and circle events from
// the queue, dispatches them against the beachline status tree, and at the end hands the
// still-unbounded DCEL to the boundary package for clipping, then optionally collapses
// zero-length edges. Grounded on
// original_source/voronoi.py's Voronoi class.
package sweep

import (
	"math"

	"github.com/tkbush/voronoi2d/beachline"
	"github.com/tkbush/voronoi2d/boundary"
	"github.com/tkbush/voronoi2d/dcel"
	"github.com/tkbush/voronoi2d/event"
	"github.com/tkbush/voronoi2d/point"
)

// debugLogger is satisfied by both *log.Logger (voronoidebug build) and the no-op stand-in.
type debugLogger interface {
	Printf(format string, args ...interface{})
}

// State holds everything the sweep driver owns for the duration of one construction: the
// status tree root, the event queue, the arena, and the running sweep-line position. Per §5
// this is single-threaded, owned exclusively by Run for its whole call.
type State struct {
	Root      *beachline.Node
	Queue     *event.Queue
	Arena     *dcel.Arena
	Sweepline float64

	// Edges is the "one representative half-edge per pair" convention used throughout
	// construction (§4.5's "append L.edge to the edge list", never its twin).
	Edges []*dcel.HalfEdge

	// CircleVertices are the Voronoi vertices created by circle events, tracked separately
	// from polygon-corner and edge-clip vertices so FinishPolygonBorders can filter just
	// these against the bounding polygon per §4.8.
	CircleVertices []*dcel.Vertex
}

// Diagram is the sweep's finished, clipped output.
type Diagram struct {
	Arena    *dcel.Arena
	Sites    []*dcel.Site
	Edges    []*dcel.HalfEdge
	Vertices []*dcel.Vertex
	Polygon  boundary.Polygon
}

// Run executes the full driver pseudocode of §4.4 against sites, clips against poly, and
// returns the finished Diagram. When collapse is false, the §4.9 zero-length-edge merge is
// skipped (the Python original's remove_zero_length_edges=False mode).
func Run(sites []point.Point, poly boundary.Polygon, collapse bool) *Diagram {
	arena := &dcel.Arena{}
	queue := event.NewQueue()
	s := &State{Arena: arena, Queue: queue, Sweepline: math.Inf(1)}

	siteList := make([]*dcel.Site, len(sites))
	for i, p := range sites {
		site := arena.NewSite(dcel.SiteID(i), p)
		siteList[i] = site
		queue.Push(&event.SiteEvent{Site: site})
	}

	nextIndex := 0
	for {
		e, ok := queue.Pop()
		if !ok {
			break
		}
		if ce, isCircle := e.(*event.CircleEvent); isCircle && !ce.IsValid {
			continue
		}
		s.Sweepline = e.Y()

		switch ev := e.(type) {
		case *event.SiteEvent:
			ev.Site.ID = dcel.SiteID(nextIndex)
			nextIndex++
			debugLog.Printf("site event: id=%d coord=%v", ev.Site.ID, ev.Site.Coordinate)
			s.handleSite(ev)
		case *event.CircleEvent:
			debugLog.Printf("circle event: center=%v radius=%v", ev.Center, ev.Radius)
			s.handleCircle(ev)
		}
	}

	clipper := boundary.NewClipper(poly, arena)
	edges := clipper.FinishEdges(s.Edges, arena)
	edges, vertices := clipper.FinishPolygonBorders(edges, s.CircleVertices, siteList, arena)
	if collapse {
		edges, vertices = collapseZeroLength(edges, vertices)
	}

	return &Diagram{
		Arena:    arena,
		Sites:    siteList,
		Edges:    edges,
		Vertices: vertices,
		Polygon:  poly,
	}
}
