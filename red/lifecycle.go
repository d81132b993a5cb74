package red

import "github.com/gloudx/treecore/green"

// SyntaxTree is a strong handle to a branch node.
type SyntaxTree struct{ data *syntaxData }

// SyntaxToken is a strong handle to a leaf node.
type SyntaxToken struct{ data *syntaxData }

// SyntaxChild is a strong handle to a node of unknown shape, as returned by
// navigation; call FindTree or FindToken to recover the concrete type.
type SyntaxChild struct{ data *syntaxData }

// NewRoot wraps pure as the root of a fresh red tree, with no parent. The
// returned SyntaxTree is a strong handle; the caller owns it and must call
// Release on it when done. Releasing the handles obtained from it only
// drops their own claims, not this one.
func NewRoot(pure green.Tree) SyntaxTree {
	d := &syntaxData{isToken: false, treeData: pure, index: -1}
	d.refcount.Store(1)
	return SyntaxTree{data: d}
}

// Retain returns a second strong handle to the same node, bumping its
// reference count. Use this whenever a handle needs to outlive the scope
// that first produced it.
func (t SyntaxTree) Retain() SyntaxTree {
	t.data.retain()
	return t
}

// Release drops this handle's claim on the node. Once every strong handle
// to a node (and every child materialized under it) has been released, the
// node unlinks itself from its parent's sibling cache and releases its own
// claim on the parent in turn.
func (t SyntaxTree) Release() { t.data.release() }

func (t SyntaxToken) Retain() SyntaxToken {
	t.data.retain()
	return t
}

func (t SyntaxToken) Release() { t.data.release() }

func (c SyntaxChild) Retain() SyntaxChild {
	c.data.retain()
	return c
}

func (c SyntaxChild) Release() { c.data.release() }

// Kind returns the underlying pure node's kind string.
func (t SyntaxTree) Kind() string  { return t.data.kind() }
func (t SyntaxToken) Kind() string { return t.data.kind() }
func (c SyntaxChild) Kind() string { return c.data.kind() }

// TextLen returns the byte length of the underlying pure subtree or token.
func (t SyntaxTree) TextLen() int  { return t.data.textLen() }
func (t SyntaxToken) TextLen() int { return t.data.textLen() }
func (c SyntaxChild) TextLen() int { return c.data.textLen() }

// Text returns the leaf's raw text.
func (t SyntaxToken) Text() string { return t.data.tokenData.Text() }

// Index returns the node's position among its parent's children, or -1 for
// a root.
func (t SyntaxTree) Index() int  { return t.data.index }
func (t SyntaxToken) Index() int { return t.data.index }
func (c SyntaxChild) Index() int { return c.data.index }

// Offset returns the node's absolute byte offset from the root.
func (t SyntaxTree) Offset() int  { return t.data.offset() }
func (t SyntaxToken) Offset() int { return t.data.offset() }
func (c SyntaxChild) Offset() int { return c.data.offset() }

// Pure returns the underlying immutable green.Tree snapshot.
func (t SyntaxTree) Pure() green.Tree { return t.data.treeData }

// Pure returns the underlying immutable green.Token value.
func (t SyntaxToken) Pure() green.Token { return t.data.tokenData }

// IsTree reports whether c wraps a branch.
func (c SyntaxChild) IsTree() bool { return !c.data.isToken }

// IsToken reports whether c wraps a leaf.
func (c SyntaxChild) IsToken() bool { return c.data.isToken }

// FindTree returns c as a SyntaxTree if c wraps a branch; a navigation miss
// (not a structural fault) if it wraps a token.
func (c SyntaxChild) FindTree() (SyntaxTree, bool) {
	if c.data.isToken {
		return SyntaxTree{}, false
	}
	return SyntaxTree{data: c.data}, true
}

// FindToken returns c as a SyntaxToken if c wraps a leaf.
func (c SyntaxChild) FindToken() (SyntaxToken, bool) {
	if !c.data.isToken {
		return SyntaxToken{}, false
	}
	return SyntaxToken{data: c.data}, true
}

// AsChild widens t into the unified SyntaxChild handle, retaining it.
func (t SyntaxTree) AsChild() SyntaxChild {
	t.data.retain()
	return SyntaxChild{data: t.data}
}

func (t SyntaxToken) AsChild() SyntaxChild {
	t.data.retain()
	return SyntaxChild{data: t.data}
}
