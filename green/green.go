// Package green implements the pure, immutable half of the red-green tree
// pair: structurally-shared branches (Tree) and leaves (Token), with
// copy-on-write edits that never mutate a node reachable from another tree.
//
// A Tree never knows about its parent or its position in any larger
// document; it knows only its own kind, its own children, and the byte
// length those children cover. Everything identity-shaped — "where am I",
// "who is my parent" — belongs to package red.
package green

import (
	"fmt"
	"iter"
)

// ChildKind distinguishes a branch child from a leaf child.
type ChildKind int

const (
	KindTree ChildKind = iota
	KindToken
)

// Token is a leaf: a kind tag plus the raw text it covers. Tokens are
// plain values, not reference-counted or shared by pointer — copying a
// Token copies its text.
type Token struct {
	kind string
	text string
}

// NewToken builds a leaf token.
func NewToken(kind, text string) Token { return Token{kind: kind, text: text} }

func (t Token) Kind() string  { return t.kind }
func (t Token) Text() string  { return t.text }
func (t Token) TextLen() int  { return len(t.text) }
func (t Token) String() string {
	return fmt.Sprintf("%q: %s", t.text, t.kind)
}

// Child is one entry in a Tree's children slice: either a nested Tree or a
// Token, tagged with the byte offset at which it starts within its parent.
// Offset is maintained internally by Builder and the edit operations; it is
// never set directly by callers.
type Child struct {
	Offset int

	kind  ChildKind
	tree  Tree
	token Token
}

// TreeChild wraps a Tree as a child, offset 0 (the real offset is assigned
// when the child is placed into a parent by Builder.PushTree or an edit).
func TreeChild(t Tree) Child { return Child{kind: KindTree, tree: t} }

// TokenChild wraps a Token as a child.
func TokenChild(t Token) Child { return Child{kind: KindToken, token: t} }

func (c Child) Kind() ChildKind { return c.kind }
func (c Child) IsTree() bool    { return c.kind == KindTree }
func (c Child) IsToken() bool   { return c.kind == KindToken }

// Tree panics if c does not wrap a Tree; callers should check IsTree first
// when the shape is not already known from context.
func (c Child) Tree() Tree {
	if c.kind != KindTree {
		panic(fmt.Errorf("green: child is a token, not a tree"))
	}
	return c.tree
}

// Token panics if c does not wrap a Token.
func (c Child) Token() Token {
	if c.kind != KindToken {
		panic(fmt.Errorf("green: child is a tree, not a token"))
	}
	return c.token
}

// NodeKind returns the kind string of whichever node c wraps.
func (c Child) NodeKind() string {
	if c.kind == KindTree {
		return c.tree.Kind()
	}
	return c.token.Kind()
}

// TextLen returns the byte length covered by whichever node c wraps.
func (c Child) TextLen() int {
	if c.kind == KindTree {
		return c.tree.TextLen()
	}
	return c.token.TextLen()
}

// treeData is the shared, structurally-addressed payload of a Tree. Tree
// values are thin handles around a *treeData; cloning a Tree never
// duplicates the payload, only the pointer — structural sharing falls out
// of Go's normal value semantics plus the garbage collector, with no
// reference count of our own needed at this layer.
type treeData struct {
	kind     string
	textLen  int
	children []Child
}

// Tree is an immutable branch node: a kind tag and an ordered list of
// children, each annotated with its starting offset.
type Tree struct {
	data *treeData
}

func (t Tree) Kind() string  { return t.data.kind }
func (t Tree) TextLen() int  { return t.data.textLen }
func (t Tree) NumChildren() int {
	return len(t.data.children)
}

// IsZero reports whether t is the zero Tree value (no underlying payload).
func (t Tree) IsZero() bool { return t.data == nil }

// GetChild returns the child at index and true, or the zero Child and
// false if index is out of range. This is a navigation lookup, not a
// structural fault: out-of-range indices are an expected, silent miss.
func (t Tree) GetChild(index int) (Child, bool) {
	if index < 0 || index >= len(t.data.children) {
		return Child{}, false
	}
	return t.data.children[index], true
}

// Children returns a lazy iterator over t's children in order.
func (t Tree) Children() iter.Seq[Child] {
	return func(yield func(Child) bool) {
		for _, c := range t.data.children {
			if !yield(c) {
				return
			}
		}
	}
}

func (t Tree) String() string { return t.Kind() }
