package event

import (
	"github.com/emirpasic/gods/sets/hashset"
	"github.com/google/btree"
)

// queueItem pairs an Event with an insertion sequence number so that two distinct events
// sharing identical priority (the same (x, y) and kind — e.g. two circle events predicted
// at the same convergence point from different arc triples) remain distinguishable entries
// in the tree rather than overwriting one another.
type queueItem struct {
	event Event
	seq   int64
}

func less(a, b queueItem) bool {
	if ay, by := a.event.Y(), b.event.Y(); ay != by {
		return ay > by // descending y
	}
	if ax, bx := a.event.X(), b.event.X(); ax != bx {
		return ax < bx // ascending x
	}
	aCircle, bCircle := a.event.Kind() == KindCircle, b.event.Kind() == KindCircle
	if aCircle != bCircle {
		return aCircle // circle precedes site at an exact tie
	}
	return a.seq < b.seq
}

// Queue is the sweep's min-priority event queue.
type Queue struct {
	tree *btree.BTreeG[queueItem]
	seq  int64

	// pending tracks the (arc leaf, y) of every live CircleEvent still in the tree, so that
	// two triples predicting the same convergence point for the same middle arc (§4.7's
	// "if two triples would emit events with equal priority and same back-pointer, emit only
	// one") collapse to a single queue entry instead of two.
	pending *hashset.Set
}

// circleDedupKey identifies a CircleEvent by the arc it would remove and its priority y —
// the pair the spec singles out for deduplication.
type circleDedupKey struct {
	arcLeaf any
	y       float64
}

// NewQueue constructs an empty event queue.
func NewQueue() *Queue {
	return &Queue{tree: btree.NewG(32, less), pending: hashset.New()}
}

// Push enqueues e. A CircleEvent whose (arc leaf, y) duplicates one already queued is
// silently dropped rather than inserted a second time.
func (q *Queue) Push(e Event) {
	if ce, ok := e.(*CircleEvent); ok {
		key := circleDedupKey{arcLeaf: ce.ArcLeaf, y: ce.Y()}
		if q.pending.Contains(key) {
			return
		}
		q.pending.Add(key)
	}
	q.tree.ReplaceOrInsert(queueItem{event: e, seq: q.seq})
	q.seq++
}

// Pop removes and returns the highest-priority event. ok is false iff the queue is empty.
// Pop does not filter invalidated CircleEvents; the driver is responsible for discarding
// them (cheap lazy deletion, per §4.3).
func (q *Queue) Pop() (Event, bool) {
	item, ok := q.tree.DeleteMin()
	if !ok {
		return nil, false
	}
	if ce, isCircle := item.event.(*CircleEvent); isCircle {
		q.pending.Remove(circleDedupKey{arcLeaf: ce.ArcLeaf, y: ce.Y()})
	}
	return item.event, true
}

// Len returns the number of events still queued.
func (q *Queue) Len() int {
	return q.tree.Len()
}
