// Package beachline implements the status tree of Fortune's sweep: a balanced binary
// search tree whose leaves are parabolic Arcs and whose internal nodes are Breakpoints
// between adjacent arcs. Grounded on wanghanting-voronoi/tree.go's parent/left/right node
// shape and PrevArc/NextArc parent-chain walks, generalized here with explicit AVL
// rebalancing and the leaf/internal payload split the spec's status tree requires.
package beachline

import "github.com/tkbush/voronoi2d/dcel"

// PendingCircleEvent is the minimal interface an Arc needs in order to invalidate whatever
// circle event currently predicts its disappearance. It is satisfied by *event.CircleEvent
// without this package importing the event package, which itself must reference arcs and
// tree leaves (a back-reference the spec's data model names explicitly).
type PendingCircleEvent interface {
	Invalidate()
}

// Arc is a parabolic segment of the beachline, focused at a site under the current
// sweep-line. Pending holds a back-reference to a circle event that would cause this arc's
// disappearance, cleared before any circle event at this arc is processed.
type Arc struct {
	Focus   *dcel.Site
	Pending PendingCircleEvent
}

// InvalidatePending invalidates and clears any circle event currently predicted for this arc.
func (a *Arc) InvalidatePending() {
	if a.Pending != nil {
		a.Pending.Invalidate()
		a.Pending = nil
	}
}
