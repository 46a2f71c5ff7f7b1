// Package boundary implements the convex bounding polygon and the clipper that intersects
// the (otherwise unbounded) Voronoi diagram against it: clockwise ordering, point-in-polygon,
// ray-segment intersection, and the edge/border finishing passes of §4.8. Grounded on
// original_source/polygon.py, the Python program this spec was distilled from.
package boundary

import (
	"math"
	"sort"

	"github.com/tkbush/voronoi2d/point"
)

// epsilon is the fixed tolerance for the ray/segment near-parallel test. The external
// interface contract fixes this at 1e-10 and does not expose it as caller-configurable.
const epsilon = 1e-10

// Polygon is a convex bounding polygon, re-ordered clockwise about its centroid.
type Polygon struct {
	Points                 []point.Point
	Center                 point.Point
	MinX, MinY, MaxX, MaxY float64
}

// NewPolygon builds a Polygon from an arbitrarily-ordered list of corner coordinates,
// computing its bounding extents and centroid and sorting the corners clockwise.
func NewPolygon(points []point.Point) Polygon {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range points {
		minX = math.Min(minX, p.X())
		minY = math.Min(minY, p.Y())
		maxX = math.Max(maxX, p.X())
		maxY = math.Max(maxY, p.Y())
	}
	center := point.New((minX+maxX)/2, (minY+maxY)/2)
	return Polygon{
		Points: orderPointsClockwise(points, center),
		Center: center,
		MinX:   minX, MinY: minY, MaxX: maxX, MaxY: maxY,
	}
}

// mod360 mimics Python's always-non-negative `% 360`.
func mod360(deg float64) float64 {
	m := math.Mod(deg, 360)
	if m < 0 {
		m += 360
	}
	return m
}

func calculateAngle(p, center point.Point) float64 {
	dx := p.X() - center.X()
	dy := p.Y() - center.Y()
	return mod360(math.Atan2(dy, dx) * 180 / math.Pi)
}

// clockwiseKey is the sort key from §4.8: (-180 - angle) mod 360, ascending.
func clockwiseKey(p, center point.Point) float64 {
	return mod360(-180 - calculateAngle(p, center))
}

func orderPointsClockwise(points []point.Point, center point.Point) []point.Point {
	ordered := append([]point.Point(nil), points...)
	sort.Slice(ordered, func(i, j int) bool {
		return clockwiseKey(ordered[i], center) < clockwiseKey(ordered[j], center)
	})
	return ordered
}

// Inside reports whether p lies within the polygon, via standard ray-casting.
func (poly Polygon) Inside(p point.Point) bool {
	n := len(poly.Points)
	inside := false
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		xi, yi := poly.Points[i].X(), poly.Points[i].Y()
		xj, yj := poly.Points[j].X(), poly.Points[j].Y()
		intersect := ((yi > p.Y()) != (yj > p.Y())) &&
			(p.X() < (xj-xi)*(p.Y()-yi)/(yj-yi)+xi)
		if intersect {
			inside = !inside
		}
	}
	return inside
}

// Area computes the polygon's area via the shoelace formula, used by the cell-area-sum
// testable property.
func (poly Polygon) Area() float64 {
	sum := 0.0
	n := len(poly.Points)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		sum += poly.Points[i].X()*poly.Points[j].Y() - poly.Points[j].X()*poly.Points[i].Y()
	}
	if sum < 0 {
		sum = -sum
	}
	return 0.5 * sum
}

// rayLineIntersection treats the ray from orig toward dir = normalize(end-orig) and
// intersects it against the segment p1-p2, via the standard 2-D cross-product method.
// Valid only when t1 > 0 (strictly ahead of the ray origin) and 0 <= t2 <= 1 (within the
// segment).
func rayLineIntersection(orig, end, p1, p2 point.Point) (point.Point, bool) {
	dx, dy := end.X()-orig.X(), end.Y()-orig.Y()
	mag := math.Hypot(dx, dy)
	if mag < epsilon {
		return point.Point{}, false
	}
	dirX, dirY := dx/mag, dy/mag

	v1x, v1y := orig.X()-p1.X(), orig.Y()-p1.Y()
	v2x, v2y := p2.X()-p1.X(), p2.Y()-p1.Y()
	v3x, v3y := -dirY, dirX

	dot := v2x*v3x + v2y*v3y
	if math.Abs(dot) < epsilon {
		return point.Point{}, false
	}

	t1 := (v2x*v1y - v2y*v1x) / dot
	t2 := (v1x*v3x + v1y*v3y) / dot

	if t1 > 0 && t2 >= 0 && t2 <= 1 {
		return point.New(orig.X()+t1*dirX, orig.Y()+t1*dirY), true
	}
	return point.Point{}, false
}

// intersectionPoint intersects the ray from orig toward dest against every polygon edge and
// returns the farthest valid hit within the orig-dest distance, matching the original's
// "pick the farthest intersection that does not overshoot the segment" rule.
func (poly Polygon) intersectionPoint(orig, dest point.Point) (point.Point, bool) {
	n := len(poly.Points)
	maxDist := orig.DistanceToPoint(dest)
	best := point.Point{}
	bestDist := -1.0
	found := false
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		hit, ok := rayLineIntersection(orig, dest, poly.Points[i], poly.Points[j])
		if !ok {
			continue
		}
		d := orig.DistanceToPoint(hit)
		if d > maxDist {
			continue
		}
		if d > bestDist {
			bestDist = d
			best = hit
			found = true
		}
	}
	return best, found
}
