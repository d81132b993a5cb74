package green

import (
	"fmt"
	"slices"

	"github.com/gloudx/treecore/internal/delta"
)

// InsertChild returns a new Tree with child inserted at index, shifting
// existing children at and after index one position to the right. index
// may equal NumChildren() to append. The receiver is left untouched — this
// clones the spine (this node's child slice) but shares every existing
// child value structurally, since Child/Tree/Token are themselves
// immutable.
//
// index out of [0, NumChildren()] is a structural fault and panics.
func (t Tree) InsertChild(index int, child Child) Tree {
	n := len(t.data.children)
	if index < 0 || index > n {
		panic(fmt.Errorf("green: insert index %d out of range [0,%d]", index, n))
	}

	offset := t.data.textLen
	if index < n {
		offset = t.data.children[index].Offset
	}
	child.Offset = offset

	children := slices.Clone(t.data.children)
	children = slices.Insert(children, index, child)

	d := delta.Add(child.TextLen())
	for i := index + 1; i < len(children); i++ {
		children[i].Offset = d.Apply(children[i].Offset)
	}

	return Tree{data: &treeData{
		kind:     t.data.kind,
		textLen:  d.Apply(t.data.textLen),
		children: children,
	}}
}

// RemoveChild returns a new Tree with the child at index removed. index out
// of [0, NumChildren()) is a structural fault and panics.
func (t Tree) RemoveChild(index int) Tree {
	n := len(t.data.children)
	if index < 0 || index >= n {
		panic(fmt.Errorf("green: remove index %d out of range [0,%d)", index, n))
	}

	removed := t.data.children[index]
	d := delta.Sub(removed.TextLen())

	children := slices.Clone(t.data.children)
	children = slices.Delete(children, index, index+1)
	for i := index; i < len(children); i++ {
		children[i].Offset = d.Apply(children[i].Offset)
	}

	return Tree{data: &treeData{
		kind:     t.data.kind,
		textLen:  d.Apply(t.data.textLen),
		children: children,
	}}
}

// ReplaceChild returns a new Tree with the child at index replaced, at the
// same offset the old child occupied. index out of [0, NumChildren()) is a
// structural fault and panics.
func (t Tree) ReplaceChild(index int, child Child) Tree {
	n := len(t.data.children)
	if index < 0 || index >= n {
		panic(fmt.Errorf("green: replace index %d out of range [0,%d)", index, n))
	}

	old := t.data.children[index]
	child.Offset = old.Offset
	d := delta.New(old.TextLen(), child.TextLen())

	children := slices.Clone(t.data.children)
	children[index] = child
	for i := index + 1; i < len(children); i++ {
		children[i].Offset = d.Apply(children[i].Offset)
	}

	return Tree{data: &treeData{
		kind:     t.data.kind,
		textLen:  d.Apply(t.data.textLen),
		children: children,
	}}
}
