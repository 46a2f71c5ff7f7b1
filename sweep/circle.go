package sweep

import (
	"github.com/tkbush/voronoi2d/beachline"
	"github.com/tkbush/voronoi2d/dcel"
	"github.com/tkbush/voronoi2d/event"
)

// handleCircle implements §4.6: splice the disappearing arc out of the tree, fix the two
// edges it bordered at the new vertex, fuse its two breakpoints into one continuing edge, and
// test circle events on the triples now centered on its former neighbors.
func (s *State) handleCircle(e *event.CircleEvent) {
	midLeaf := e.ArcLeaf
	if midLeaf == nil {
		return
	}

	predLeaf := midLeaf.Predecessor()
	succLeaf := midLeaf.Successor()
	var predFocus, succFocus *dcel.Site
	if predLeaf != nil {
		predFocus = predLeaf.Arc.Focus
	}
	if succLeaf != nil {
		succFocus = succLeaf.Arc.Focus
	}

	root, updated, _, left, right := s.updateBreakpoints(midLeaf, predFocus, succFocus)
	s.Root = root
	if updated == nil {
		// Stale event: the breakpoint this circle event was predicated on no longer exists.
		return
	}

	if predLeaf != nil {
		predLeaf.Arc.InvalidatePending()
	}
	if succLeaf != nil {
		succLeaf.Arc.InvalidatePending()
	}

	v := s.Arena.NewVertex(e.Center)
	s.CircleVertices = append(s.CircleVertices, v)

	left.Edge.Origin = v
	v.ConnectedEdges = append(v.ConnectedEdges, left.Edge)
	right.Edge.Origin = v
	v.ConnectedEdges = append(v.ConnectedEdges, right.Edge)

	newEdge, newTwin := s.Arena.NewHalfEdgePair(updated.Left, updated.Right, v, updated)
	left.Edge.Twin.SetNext(newEdge)
	right.Edge.Twin.SetNext(left.Edge)
	newTwin.SetNext(right.Edge)
	updated.Edge = newTwin

	s.Arena.AppendEdge(newEdge)
	s.Edges = append(s.Edges, newEdge)
	v.ConnectedEdges = append(v.ConnectedEdges, newEdge)

	if predLeaf != nil {
		s.testCircleEvent(predLeaf.Predecessor(), predLeaf, predLeaf.Successor())
	}
	if succLeaf != nil {
		s.testCircleEvent(succLeaf.Predecessor(), succLeaf, succLeaf.Successor())
	}
}

// updateBreakpoints implements §4.6.1: splice arcLeaf's parent breakpoint out of the tree
// (promoting arcLeaf's sibling in its place), then locate the *other* breakpoint that
// bounded arcLeaf — by value, via FindValue, since structurally it may sit anywhere on the
// ancestor chain — and rewrite it to bound the arc's old neighbors directly. left and right
// are the two original bounding breakpoints in spatial order, for the caller to wire edges.
func (s *State) updateBreakpoints(
	arcLeaf *beachline.Node,
	predFocus, succFocus *dcel.Site,
) (root *beachline.Node, updated, removed, left, right *beachline.Breakpoint) {
	parent := arcLeaf.Parent
	if parent == nil {
		return s.Root, nil, nil, nil, nil
	}

	isLeftChild := parent.Left == arcLeaf
	var sibling *beachline.Node
	if isLeftChild {
		sibling = parent.Right
	} else {
		sibling = parent.Left
	}

	removedBreakpoint := parent.Breakpoint
	beachline.ReplaceLeaf(s.Root, parent, sibling)
	root = beachline.BalanceAndPropagate(sibling)

	removedFocus := arcLeaf.Arc.Focus
	equals := func(bp, _ *beachline.Breakpoint) bool {
		if isLeftChild {
			return bp.Right == removedFocus
		}
		return bp.Left == removedFocus
	}
	updatedNode := beachline.FindValue(root, nil, equals, s.Sweepline)
	if updatedNode == nil {
		return root, nil, removedBreakpoint, nil, nil
	}
	updated = updatedNode.Breakpoint

	if isLeftChild {
		updated.Right = succFocus
		left, right = updated, removedBreakpoint
	} else {
		updated.Left = predFocus
		left, right = removedBreakpoint, updated
	}
	return root, updated, removedBreakpoint, left, right
}
