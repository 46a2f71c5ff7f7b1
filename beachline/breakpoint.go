package beachline

import (
	"math"

	"github.com/tkbush/voronoi2d/dcel"
	"github.com/tkbush/voronoi2d/point"
)

// epsilon is the fixed tolerance used throughout the beachline's geometric formulas. The
// external interface contract (spec §6) fixes this at 1e-10 and does not expose it as a
// caller-configurable option.
const epsilon = 1e-10

// Breakpoint is the ordered pair (i, j) of adjacent arc foci that the spec's data model
// describes: it owns the half-edge currently being traced out as the breakpoint moves
// with the sweep-line. (i, j) and (j, i) denote the two opposite breakpoints between the
// same arc pair.
type Breakpoint struct {
	Left, Right *dcel.Site
	Edge        *dcel.HalfEdge
}

// OriginKind implements [dcel.Origin].
func (b *Breakpoint) OriginKind() dcel.OriginKind { return dcel.OriginPending }

// Resolve implements [dcel.Origin], evaluating the breakpoint's position under sweepline.
// maxY is the cap applied in the degenerate equal-y, wrong-order case; pass math.Inf(1)
// when the caller has no polygon extent to cap against.
func (b *Breakpoint) Resolve(sweepline, maxY float64) (point.Point, bool) {
	return b.Intersection(sweepline, maxY), true
}

// DoesIntersect reports whether (i, j) has a real intersection under any sweep-line: it
// fails only when the two foci share a y-coordinate and are in the "wrong" order.
func (b *Breakpoint) DoesIntersect() bool {
	i, j := b.Left, b.Right
	return !(i.Y() == j.Y() && j.X() < i.X())
}

// X returns only the x-coordinate of the breakpoint's intersection under sweepline; this is
// the value the status tree descends on, so it never needs a max_y cap.
func (b *Breakpoint) X(sweepline float64) float64 {
	return b.Intersection(sweepline, math.Inf(1)).X()
}

// Intersection computes the breakpoint's position for the sweep-line l, following the
// geometry-primitives formulas: the equal-y special case, the two single-degenerate-focus
// cases, and the general discriminant form (clamped to zero if slightly negative), falling
// back to the symmetric midpoint when |u-v| < epsilon to avoid division blow-up.
func (b *Breakpoint) Intersection(l, maxY float64) point.Point {
	i, j := b.Left, b.Right
	p := i
	a, bb, c, d := i.X(), i.Y(), j.X(), j.Y()
	u := 2 * (bb - l)
	v := 2 * (d - l)

	var resultX float64
	switch {
	case i.Y() == j.Y():
		resultX = (i.X() + j.X()) / 2
		if j.X() < i.X() {
			return point.New(resultX, maxY)
		}
	case i.Y() == l:
		resultX = i.X()
		p = j
	case j.Y() == l:
		resultX = j.X()
	default:
		if math.Abs(u-v) < epsilon {
			resultX = (a + c) / 2
		} else {
			discriminant := v*(a*a*u-2*a*c*u+bb*bb*(u-v)+c*c*u) + d*d*u*(v-u) + l*l*(u-v)*(u-v)
			if discriminant < 0 {
				discriminant = 0
			}
			resultX = -(math.Sqrt(discriminant) + a*v - c*u) / (u - v)
		}
	}

	pa, pb := p.X(), p.Y()
	pu := 2 * (pb - l)
	if math.Abs(pu) < epsilon {
		return point.New(resultX, math.Inf(1))
	}
	resultY := 1 / pu * (resultX*resultX - 2*pa*resultX + pa*pa + pb*pb - l*l)
	return point.New(resultX, resultY)
}
