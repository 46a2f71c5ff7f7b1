// Package event implements the sweep's priority queue: SiteEvent and CircleEvent variants
// ordered by descending y, then ascending x, then circle-before-site at exact ties, backed
// by a github.com/google/btree.BTreeG, generalized here from segment-sweep events to
// Fortune's site/circle events.
package event

import (
	"github.com/tkbush/voronoi2d/beachline"
	"github.com/tkbush/voronoi2d/dcel"
	"github.com/tkbush/voronoi2d/point"
)

// Kind distinguishes the two event variants.
type Kind uint8

const (
	// KindSite marks a SiteEvent.
	KindSite Kind = iota
	// KindCircle marks a CircleEvent.
	KindCircle
)

// Event is either a SiteEvent or a CircleEvent, ordered per the priority rule in §3.
type Event interface {
	Kind() Kind
	X() float64
	Y() float64
}

// SiteEvent carries the site to be inserted into the beachline.
type SiteEvent struct {
	Site *dcel.Site
}

// Kind implements Event.
func (e *SiteEvent) Kind() Kind { return KindSite }

// X implements Event.
func (e *SiteEvent) X() float64 { return e.Site.X() }

// Y implements Event.
func (e *SiteEvent) Y() float64 { return e.Site.Y() }

// CircleEvent predicts the disappearance of a middle arc among three consecutive arcs. Its
// priority y is center.y - radius, the lowest point of the circle. IsValid implements lazy
// invalidation: a stale CircleEvent stays physically in the queue and is discarded by the
// driver on dequeue rather than being removed from the heap.
type CircleEvent struct {
	Center  point.Point
	Radius  float64
	ArcLeaf *beachline.Node
	Sites   [3]*dcel.Site
	Arcs    [3]*beachline.Arc
	IsValid bool
}

// Kind implements Event.
func (e *CircleEvent) Kind() Kind { return KindCircle }

// X implements Event.
func (e *CircleEvent) X() float64 { return e.Center.X() }

// Y implements Event.
func (e *CircleEvent) Y() float64 { return e.Center.Y() - e.Radius }

// Invalidate implements [beachline.PendingCircleEvent].
func (e *CircleEvent) Invalidate() { e.IsValid = false }
