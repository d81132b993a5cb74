package sll

import (
	"runtime"
	"testing"
	"weak"

	"github.com/stretchr/testify/require"
)

type node struct {
	links Links[node]
	idx   int
}

func (n *node) Sibling() *Links[node] { return &n.links }
func (n *node) Index() int            { return n.idx }
func (n *node) SetIndex(i int)        { n.idx = i }

func TestLinkSingle(t *testing.T) {
	var first weak.Pointer[node]
	a := &node{idx: 0}

	got := Link[node](&first, a)
	require.Same(t, a, got)
	require.Same(t, a, first.Value())
}

func TestLinkDedup(t *testing.T) {
	var first weak.Pointer[node]
	a := &node{idx: 0}
	Link[node](&first, a)

	b := &node{idx: 0}
	got := Link[node](&first, b)
	require.Same(t, a, got, "linking a node with a colliding index must return the existing live node")
}

func TestLinkMultipleAndUnlink(t *testing.T) {
	var first weak.Pointer[node]
	a := &node{idx: 0}
	b := &node{idx: 1}
	c := &node{idx: 2}

	Link[node](&first, a)
	Link[node](&first, b)
	Link[node](&first, c)

	seen := map[int]bool{}
	cur := first.Value()
	start := cur
	for {
		seen[cur.idx] = true
		cur = cur.links.next.Value()
		if cur == start {
			break
		}
	}
	require.Len(t, seen, 3)
	require.True(t, seen[0] && seen[1] && seen[2])

	Unlink[node](&first, b)
	require.Nil(t, b.links.next.Value())
	require.Nil(t, b.links.prev.Value())

	cur = first.Value()
	start = cur
	remaining := map[int]bool{}
	for {
		remaining[cur.idx] = true
		cur = cur.links.next.Value()
		if cur == start {
			break
		}
	}
	require.Len(t, remaining, 2)
	require.False(t, remaining[1])
}

func TestUnlinkSoleMember(t *testing.T) {
	var first weak.Pointer[node]
	a := &node{idx: 0}
	Link[node](&first, a)

	Unlink[node](&first, a)
	require.Nil(t, first.Value())
}

func TestUnlinkAnchorReassignsFirst(t *testing.T) {
	var first weak.Pointer[node]
	a := &node{idx: 0}
	b := &node{idx: 1}
	Link[node](&first, a)
	Link[node](&first, b)

	Unlink[node](&first, a)
	require.Same(t, b, first.Value())
}

func TestAdjust(t *testing.T) {
	var first weak.Pointer[node]
	a := &node{idx: 0}
	b := &node{idx: 1}
	c := &node{idx: 2}
	Link[node](&first, a)
	Link[node](&first, b)
	Link[node](&first, c)

	Adjust[node](first, func(i int) int { return i + 10 })

	require.Equal(t, 10, a.idx)
	require.Equal(t, 11, b.idx)
	require.Equal(t, 12, c.idx)
}

func TestWeakDoesNotKeepAlive(t *testing.T) {
	var first weak.Pointer[node]
	a := &node{idx: 0}
	Link[node](&first, a)
	require.NotNil(t, first.Value())

	a = nil
	runtime.GC()
	require.Nil(t, first.Value(), "the ring's weak links must not keep a dropped node alive")
}
