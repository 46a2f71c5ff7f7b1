// Package voronoi is the facade over the full construction pipeline: given a set of sites
// and an optional convex bounding polygon, BuildDiagram runs the sweep and returns the
// clipped DCEL. Grounded on original_source/main.py's Voronoi(...).execute() entry point and
// voronoi.py's Voronoi.__init__ defaults, adapted to a single validating function call per
// spec §6 ("the facade is a single function call").
package voronoi

import (
	"fmt"
	"math"

	"github.com/tkbush/voronoi2d/boundary"
	"github.com/tkbush/voronoi2d/dcel"
	"github.com/tkbush/voronoi2d/point"
	"github.com/tkbush/voronoi2d/sweep"
)

// boundingBoxMargin is the default polygon's expansion beyond the sites' bounding box,
// fixed by §6's external interface contract.
const boundingBoxMargin = 2.0

// Diagram is the finished, clipped Voronoi diagram. Every non-removed half-edge's origins
// are Vertex values in or on Polygon (§8 invariant 1); each site's cell boundary is reachable
// as a closed loop via dcel.(*Site).Boundary (§8 invariant 3).
type Diagram struct {
	Sites    []*dcel.Site
	Vertices []*dcel.Vertex
	Edges    []*dcel.HalfEdge
	Polygon  boundary.Polygon
}

// BuildDiagram constructs the Voronoi diagram of sites, clipped to the polygon supplied via
// WithPolygon, or — absent one — to the axis-aligned bounding box of sites expanded by
// boundingBoxMargin units on every side. It returns a construction error for degenerate input
// (§7) rather than attempting partial output: an empty site list, a duplicate site, or an
// explicit polygon with fewer than three corners.
func BuildDiagram(sites []point.Point, opts ...Option) (*Diagram, error) {
	if err := validateSites(sites); err != nil {
		return nil, err
	}

	cfg := applyOptions(opts...)

	var poly boundary.Polygon
	switch {
	case len(cfg.polygon) > 0 && len(cfg.polygon) < 3:
		return nil, fmt.Errorf("voronoi: bounding polygon must have at least 3 points, got %d", len(cfg.polygon))
	case len(cfg.polygon) > 0:
		poly = boundary.NewPolygon(cfg.polygon)
	default:
		poly = defaultPolygon(sites)
	}

	result := sweep.Run(sites, poly, cfg.collapseZeroLength)
	return &Diagram{
		Sites:    result.Sites,
		Vertices: result.Vertices,
		Edges:    result.Edges,
		Polygon:  result.Polygon,
	}, nil
}

// defaultPolygon synthesizes the §6 default: the sites' axis-aligned bounding box expanded
// by boundingBoxMargin units on every side.
func defaultPolygon(sites []point.Point) boundary.Polygon {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range sites {
		minX = math.Min(minX, p.X())
		minY = math.Min(minY, p.Y())
		maxX = math.Max(maxX, p.X())
		maxY = math.Max(maxY, p.Y())
	}
	minX, minY = minX-boundingBoxMargin, minY-boundingBoxMargin
	maxX, maxY = maxX+boundingBoxMargin, maxY+boundingBoxMargin
	return boundary.NewPolygon([]point.Point{
		point.New(minX, minY),
		point.New(maxX, minY),
		point.New(maxX, maxY),
		point.New(minX, maxY),
	})
}

// validateSites rejects the degenerate inputs named in §7: no sites at all, or any exact
// duplicate coordinate (the spec's Open Questions decision: reject rather than silently
// de-duplicate).
func validateSites(sites []point.Point) error {
	if len(sites) == 0 {
		return fmt.Errorf("voronoi: at least one site is required")
	}
	seen := make(map[point.Point]bool, len(sites))
	for _, p := range sites {
		if seen[p] {
			return fmt.Errorf("voronoi: duplicate site at (%g, %g)", p.X(), p.Y())
		}
		seen[p] = true
	}
	return nil
}
