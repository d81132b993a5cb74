package red

import (
	"fmt"

	"github.com/gloudx/treecore/green"
	"github.com/gloudx/treecore/internal/sll"
)

// InsertChild inserts a pure child into t's underlying tree at index,
// updating every ancestor's pure data up to the root and reindexing any
// live sibling handles materialized at or after index. index may equal
// t.NumChildren() to append; any other out-of-range index is a structural
// fault and panics, matching green.Tree.InsertChild.
func (t SyntaxTree) InsertChild(index int, child green.Child) {
	d := t.data
	d.treeData = d.treeData.InsertChild(index, child)

	sll.Adjust[syntaxData](d.first, func(i int) int {
		if i >= index {
			return i + 1
		}
		return i
	})

	d.propagateUp()
}

// RemoveChild removes the pure child at index from t's underlying tree,
// releasing the red layer's strong claim on any live handle materialized
// there. Any other live sibling handles at a greater index are reindexed.
// A live handle at index ends up detached, exactly as if Detach had been
// called on it.
func (t SyntaxTree) RemoveChild(index int) {
	d := t.data
	n := d.treeData.NumChildren()
	if index < 0 || index >= n {
		panic(fmt.Errorf("red: remove index %d out of range [0,%d)", index, n))
	}

	c, _ := t.GetChild(index)
	detachData(c.data)
	c.Release()
}

// ReplaceChild replaces the pure child at index in t's underlying tree.
// The materialized red child at that index, if any, is not refreshed: it
// stays in the sibling cache with the old pure data, and GetChild(index)
// returns that same node for as long as a handle to it is live.
func (t SyntaxTree) ReplaceChild(index int, child green.Child) {
	d := t.data
	d.treeData = d.treeData.ReplaceChild(index, child)
	d.propagateUp()
}

// Detach removes t from its parent, turning t into the root of its own
// standalone tree. t's own pure subtree is unchanged; only the parent's
// pure tree loses this child. Detaching a node that has no parent (it is
// already a root) is a structural fault and panics.
func (t SyntaxTree) Detach() {
	detachData(t.data)
}

func (t SyntaxToken) Detach() {
	detachData(t.data)
}

func (c SyntaxChild) Detach() {
	detachData(c.data)
}

func detachData(d *syntaxData) {
	parent := d.parent
	if parent == nil {
		panic(fmt.Errorf("red: cannot detach a root node"))
	}
	index := d.index

	parent.treeData = parent.treeData.RemoveChild(index)

	sll.Unlink[syntaxData](&parent.first, d)
	sll.Adjust[syntaxData](parent.first, func(i int) int {
		if i > index {
			return i - 1
		}
		return i
	})

	parent.propagateUp()

	d.parent = nil
	d.index = -1
	parent.release()
}

// propagateUp replaces d's own pure data inside its parent's pure tree, and
// recurses to the parent, all the way to the root. It is called after any
// edit to d's own treeData so ancestors stay consistent with the new
// subtree, without rebuilding any red-layer identity along the way.
func (d *syntaxData) propagateUp() {
	if d.parent == nil {
		return
	}
	parent := d.parent
	if d.isToken {
		parent.treeData = parent.treeData.ReplaceChild(d.index, green.TokenChild(d.tokenData))
	} else {
		parent.treeData = parent.treeData.ReplaceChild(d.index, green.TreeChild(d.treeData))
	}
	parent.propagateUp()
}
