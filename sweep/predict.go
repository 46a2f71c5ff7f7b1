package sweep

import (
	"math"

	"github.com/tkbush/voronoi2d/beachline"
	"github.com/tkbush/voronoi2d/circle"
	"github.com/tkbush/voronoi2d/dcel"
	"github.com/tkbush/voronoi2d/event"
	"github.com/tkbush/voronoi2d/options"
	"github.com/tkbush/voronoi2d/point"
)

// circleEpsilon is the fixed colinearity tolerance for circumcircle construction (§6: not
// caller-configurable in the core).
const circleEpsilon = 1e-10

// mod360 mimics Python's always-non-negative `% 360`, used by the orientation guard.
func mod360(deg float64) float64 {
	m := math.Mod(deg, 360)
	if m < 0 {
		m += 360
	}
	return m
}

func angleAround(p, center point.Point) float64 {
	return mod360(math.Atan2(p.Y()-center.Y(), p.X()-center.X()) * 180 / math.Pi)
}

// clockwise implements the §4.7 orientation guard: a->b->c must traverse the circumcircle
// clockwise, else the triple predicts a spurious event on the wrong side of the beachline.
func clockwise(a, b, c, center point.Point) bool {
	angleA := angleAround(a, center)
	angleB := angleAround(b, center)
	angleC := angleAround(c, center)
	return mod360(angleC-angleA) <= mod360(angleC-angleB)
}

// testCircleEvent implements §4.7: given three consecutive arc leaves, compute the
// circumcircle of their foci, apply the orientation guard, and — if valid — push a
// CircleEvent and record it as the middle arc's pending event for later invalidation.
func (s *State) testCircleEvent(predLeaf, midLeaf, succLeaf *beachline.Node) {
	if predLeaf == nil || midLeaf == nil || succLeaf == nil {
		return
	}
	a, b, c := predLeaf.Arc.Focus, midLeaf.Arc.Focus, succLeaf.Arc.Focus
	if a == nil || b == nil || c == nil {
		return
	}

	circ, ok := circle.FromThreePoints(a.Coordinate, b.Coordinate, c.Coordinate, options.WithEpsilon(circleEpsilon))
	if !ok {
		return
	}
	if !clockwise(a.Coordinate, b.Coordinate, c.Coordinate, circ.Center()) {
		return
	}

	ev := &event.CircleEvent{
		Center:  circ.Center(),
		Radius:  circ.Radius(),
		ArcLeaf: midLeaf,
		Sites:   [3]*dcel.Site{a, b, c},
		Arcs:    [3]*beachline.Arc{predLeaf.Arc, midLeaf.Arc, succLeaf.Arc},
		IsValid: true,
	}

	midLeaf.Arc.InvalidatePending()
	midLeaf.Arc.Pending = ev
	s.Queue.Push(ev)
}
