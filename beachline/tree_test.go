package beachline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNode_IsLeaf(t *testing.T) {
	leaf := NewLeaf(&Arc{Focus: site(0, 0)})
	assert.True(t, leaf.IsLeaf())

	bp := &Breakpoint{Left: site(0, 0), Right: site(1, 0)}
	internal := NewInternal(bp, leaf, NewLeaf(&Arc{Focus: site(1, 0)}))
	assert.False(t, internal.IsLeaf())
}

func TestFindArcAbove(t *testing.T) {
	// Three sites at y=0, x=0,1,2. Sweepline far below, so the beachline is effectively the
	// sites' x-order: each breakpoint sits midway between its two foci, so any query x picks
	// the arc whose focus is nearest to it.
	left := NewLeaf(&Arc{Focus: site(0, 0)})
	mid := NewLeaf(&Arc{Focus: site(1, 0)})
	right := NewLeaf(&Arc{Focus: site(2, 0)})

	bpLM := &Breakpoint{Left: site(0, 0), Right: site(1, 0)}
	bpMR := &Breakpoint{Left: site(1, 0), Right: site(2, 0)}

	midRight := NewInternal(bpMR, mid, right)
	root := NewInternal(bpLM, left, midRight)

	found := FindArcAbove(root, -10, -100)
	assert.Same(t, left, found)

	found = FindArcAbove(root, 10, -100)
	assert.Same(t, right, found)
}

func TestReplaceLeaf(t *testing.T) {
	left := NewLeaf(&Arc{Focus: site(0, 0)})
	right := NewLeaf(&Arc{Focus: site(1, 0)})
	bp := &Breakpoint{Left: site(0, 0), Right: site(1, 0)}
	root := NewInternal(bp, left, right)

	replacement := NewLeaf(&Arc{Focus: site(2, 0)})
	newRoot := ReplaceLeaf(root, left, replacement)

	require.Same(t, root, newRoot)
	assert.Same(t, replacement, root.Left)
	assert.Same(t, root, replacement.Parent)
}

func TestReplaceLeaf_AtRoot(t *testing.T) {
	leaf := NewLeaf(&Arc{Focus: site(0, 0)})
	replacement := NewLeaf(&Arc{Focus: site(1, 0)})
	newRoot := ReplaceLeaf(leaf, leaf, replacement)
	assert.Same(t, replacement, newRoot)
	assert.Nil(t, newRoot.Parent)
}

func TestPredecessorSuccessor(t *testing.T) {
	a := NewLeaf(&Arc{Focus: site(0, 0)})
	b := NewLeaf(&Arc{Focus: site(1, 0)})
	c := NewLeaf(&Arc{Focus: site(2, 0)})

	bpAB := &Breakpoint{Left: site(0, 0), Right: site(1, 0)}
	bpBC := &Breakpoint{Left: site(1, 0), Right: site(2, 0)}

	bcInternal := NewInternal(bpBC, b, c)
	NewInternal(bpAB, a, bcInternal)

	assert.Nil(t, a.Predecessor())
	assert.Same(t, b, a.Successor())
	assert.Same(t, a, b.Predecessor())
	assert.Same(t, c, b.Successor())
	assert.Same(t, b, c.Predecessor())
	assert.Nil(t, c.Successor())
}

func TestFindValue(t *testing.T) {
	a := NewLeaf(&Arc{Focus: site(0, 0)})
	b := NewLeaf(&Arc{Focus: site(1, 0)})
	bp := &Breakpoint{Left: site(0, 0), Right: site(1, 0)}
	root := NewInternal(bp, a, b)

	equals := func(x, _ *Breakpoint) bool { return x == bp }
	found := FindValue(root, nil, equals, 0)
	require.NotNil(t, found)
	assert.Same(t, bp, found.Breakpoint)

	missing := func(x, _ *Breakpoint) bool { return false }
	assert.Nil(t, FindValue(root, nil, missing, 0))
}

func TestBalanceAndPropagate_RotatesLeftHeavyChain(t *testing.T) {
	// Build a left-heavy chain of four leaves via successive single-leaf replacements,
	// the way handleSite's repeated splits do (each split replaces an existing leaf with a
	// subtree of fresh leaves), and check the result stays height-balanced.
	leaves := make([]*Node, 4)
	for i := range leaves {
		leaves[i] = NewLeaf(&Arc{Focus: site(float64(i), 0)})
	}

	bp2 := &Breakpoint{Left: site(2, 0), Right: site(3, 0)}
	split2 := NewLeaf(&Arc{Focus: site(2, 0)})
	root := NewInternal(bp2, split2, leaves[3])

	bp1 := &Breakpoint{Left: site(1, 0), Right: site(2, 0)}
	split1 := NewLeaf(&Arc{Focus: site(1, 0)})
	sub := NewInternal(bp1, split1, leaves[2])
	root = ReplaceLeaf(root, split2, sub)
	root = BalanceAndPropagate(sub)

	bp0 := &Breakpoint{Left: site(0, 0), Right: site(1, 0)}
	sub0 := NewInternal(bp0, leaves[0], leaves[1])
	root = ReplaceLeaf(root, split1, sub0)
	root = BalanceAndPropagate(sub0)

	assert.LessOrEqual(t, abs(balanceFactor(root)), 1)
	// In-order traversal must still visit the four leaves left to right.
	var order []*Node
	var walk func(n *Node)
	walk = func(n *Node) {
		if n == nil {
			return
		}
		if n.IsLeaf() {
			order = append(order, n)
			return
		}
		walk(n.Left)
		walk(n.Right)
	}
	walk(root)
	require.Len(t, order, 4)
	for i, leaf := range order {
		assert.Same(t, leaves[i], leaf)
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
