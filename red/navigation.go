package red

import (
	"iter"

	"github.com/gloudx/treecore/internal/sll"
)

// GetChild materializes (or reuses, if already live) the child at index,
// returning a new strong handle to it. Asking for an index the pure tree
// doesn't have is a navigation miss, not a structural fault.
func (t SyntaxTree) GetChild(index int) (SyntaxChild, bool) {
	pc, ok := t.data.treeData.GetChild(index)
	if !ok {
		return SyntaxChild{}, false
	}

	candidate := &syntaxData{
		isToken: pc.IsToken(),
		parent:  t.data,
		index:   index,
	}
	if pc.IsTree() {
		candidate.treeData = pc.Tree()
	} else {
		candidate.tokenData = pc.Token()
	}

	linked := sll.Link[syntaxData](&t.data.first, candidate)
	if linked == candidate {
		linked.refcount.Store(1)
		t.data.refcount.Inc()
	} else {
		linked.retain()
	}
	return SyntaxChild{data: linked}, true
}

// NumChildren returns the number of children in the underlying pure tree.
func (t SyntaxTree) NumChildren() int { return t.data.treeData.NumChildren() }

// FirstChild is a convenience for GetChild(0).
func (t SyntaxTree) FirstChild() (SyntaxChild, bool) { return t.GetChild(0) }

// Children yields a strong handle to every child in order. Each yielded
// handle must eventually be Released by the consumer, exactly as if it had
// called GetChild itself.
func (t SyntaxTree) Children() iter.Seq[SyntaxChild] {
	return func(yield func(SyntaxChild) bool) {
		for i := 0; i < t.NumChildren(); i++ {
			c, ok := t.GetChild(i)
			if !ok {
				return
			}
			if !yield(c) {
				return
			}
		}
	}
}

// siblingData returns the next/previous live sibling of d by asking
// d's parent for d.index±1, or (nil, false) if d is a root or sits at the
// boundary of its parent's children.
func siblingData(d *syntaxData, delta int) (*syntaxData, bool) {
	if d.parent == nil {
		return nil, false
	}
	parentTree := SyntaxTree{data: d.parent}
	child, ok := parentTree.GetChild(d.index + delta)
	if !ok {
		return nil, false
	}
	return child.data, true
}

// NextSibling returns a strong handle to the sibling immediately after t,
// or a navigation miss if t is a root or the last child of its parent.
func (t SyntaxTree) NextSibling() (SyntaxChild, bool) {
	d, ok := siblingData(t.data, 1)
	if !ok {
		return SyntaxChild{}, false
	}
	return SyntaxChild{data: d}, true
}

func (t SyntaxTree) PrevSibling() (SyntaxChild, bool) {
	d, ok := siblingData(t.data, -1)
	if !ok {
		return SyntaxChild{}, false
	}
	return SyntaxChild{data: d}, true
}

func (t SyntaxToken) NextSibling() (SyntaxChild, bool) {
	d, ok := siblingData(t.data, 1)
	if !ok {
		return SyntaxChild{}, false
	}
	return SyntaxChild{data: d}, true
}

func (t SyntaxToken) PrevSibling() (SyntaxChild, bool) {
	d, ok := siblingData(t.data, -1)
	if !ok {
		return SyntaxChild{}, false
	}
	return SyntaxChild{data: d}, true
}

func (c SyntaxChild) NextSibling() (SyntaxChild, bool) {
	d, ok := siblingData(c.data, 1)
	if !ok {
		return SyntaxChild{}, false
	}
	return SyntaxChild{data: d}, true
}

func (c SyntaxChild) PrevSibling() (SyntaxChild, bool) {
	d, ok := siblingData(c.data, -1)
	if !ok {
		return SyntaxChild{}, false
	}
	return SyntaxChild{data: d}, true
}

// Parent returns a strong handle to t's parent, or a navigation miss if t
// is a root.
func (t SyntaxTree) Parent() (SyntaxTree, bool) {
	if t.data.parent == nil {
		return SyntaxTree{}, false
	}
	t.data.parent.retain()
	return SyntaxTree{data: t.data.parent}, true
}

func (t SyntaxToken) Parent() (SyntaxTree, bool) {
	if t.data.parent == nil {
		return SyntaxTree{}, false
	}
	t.data.parent.retain()
	return SyntaxTree{data: t.data.parent}, true
}

func (c SyntaxChild) Parent() (SyntaxTree, bool) {
	if c.data.parent == nil {
		return SyntaxTree{}, false
	}
	c.data.parent.retain()
	return SyntaxTree{data: c.data.parent}, true
}
