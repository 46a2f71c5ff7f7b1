package sweep

import (
	"github.com/tkbush/voronoi2d/beachline"
	"github.com/tkbush/voronoi2d/event"
)

// handleSite implements §4.5: split the arc above the new site into left | new | right,
// wire the new breakpoint pair's edge, and test circle events on the two new triples.
func (s *State) handleSite(e *event.SiteEvent) {
	p := e.Site

	if s.Root == nil {
		s.Root = beachline.NewLeaf(&beachline.Arc{Focus: p})
		return
	}

	arcLeaf := beachline.FindArcAbove(s.Root, p.X(), s.Sweepline)
	arcLeaf.Arc.InvalidatePending()
	q := arcLeaf.Arc.Focus

	left := &beachline.Breakpoint{Left: q, Right: p}
	right := &beachline.Breakpoint{Left: p, Right: q}

	leftEdge, rightEdge := s.Arena.NewHalfEdgePair(p, q, left, right)
	left.Edge = leftEdge
	right.Edge = rightEdge
	s.Arena.AppendEdge(leftEdge)
	s.Edges = append(s.Edges, leftEdge)
	if p.FirstEdge == nil {
		p.FirstEdge = leftEdge
	}
	if q.FirstEdge == nil {
		q.FirstEdge = rightEdge
	}

	qLeftLeaf := beachline.NewLeaf(&beachline.Arc{Focus: q})
	pLeaf := beachline.NewLeaf(&beachline.Arc{Focus: p})

	var subtreeRoot *beachline.Node
	var qRightLeaf *beachline.Node
	if right.DoesIntersect() {
		qRightLeaf = beachline.NewLeaf(&beachline.Arc{Focus: q})
		rightInternal := beachline.NewInternal(right, pLeaf, qRightLeaf)
		subtreeRoot = beachline.NewInternal(left, qLeftLeaf, rightInternal)
	} else {
		subtreeRoot = beachline.NewInternal(left, qLeftLeaf, pLeaf)
	}

	beachline.ReplaceLeaf(s.Root, arcLeaf, subtreeRoot)
	s.Root = beachline.BalanceAndPropagate(subtreeRoot)

	if right.DoesIntersect() {
		s.testCircleEvent(qLeftLeaf.Predecessor(), qLeftLeaf, pLeaf)
		s.testCircleEvent(pLeaf, qRightLeaf, qRightLeaf.Successor())
	}
}
