// Package red implements the ephemeral, identity-bearing half of the
// red-green tree pair: reference-counted SyntaxTree/SyntaxToken handles
// wrapping an immutable green.Tree/green.Token, each carrying a parent
// back-pointer, its index within that parent, and a slot in the parent's
// intrusive sibling cache so that asking for the same child twice returns
// the same identity instead of materializing a duplicate.
//
// Unlike green, red is not safe to share across goroutines: the sibling
// cache and the reference counts are meant for single-threaded tree
// editing, matching the library's explicit non-goal of a thread-safe red
// layer.
package red

import (
	"fmt"
	"weak"

	"go.uber.org/atomic"

	"github.com/gloudx/treecore/green"
	"github.com/gloudx/treecore/internal/sll"
)

// syntaxData is the single node representation shared by SyntaxTree and
// SyntaxToken; isToken says which pure value (treeData or tokenData) is
// live. A node holds a strong reference to its parent for as long as its
// own refcount is above zero: creating a child node increments the
// parent's refcount once, regardless of how many independent SyntaxTree/
// SyntaxToken handles later alias that same child through GetChild.
type syntaxData struct {
	isToken   bool
	treeData  green.Tree
	tokenData green.Token

	parent *syntaxData
	index  int

	refcount atomic.Int32

	first weak.Pointer[syntaxData]
	links sll.Links[syntaxData]
}

func (d *syntaxData) Sibling() *sll.Links[syntaxData] { return &d.links }
func (d *syntaxData) Index() int                      { return d.index }
func (d *syntaxData) SetIndex(i int)                  { d.index = i }

func (d *syntaxData) kind() string {
	if d.isToken {
		return d.tokenData.Kind()
	}
	return d.treeData.Kind()
}

func (d *syntaxData) textLen() int {
	if d.isToken {
		return d.tokenData.TextLen()
	}
	return d.treeData.TextLen()
}

// offset recomputes d's absolute byte position by walking to the root and
// summing each ancestor's local child offset. It is intentionally not
// cached: caching it would mean invalidating it on every ancestor edit,
// which is exactly the bookkeeping the red layer's ephemerality is meant
// to avoid.
func (d *syntaxData) offset() int {
	if d.parent == nil {
		return 0
	}
	pc, ok := d.parent.treeData.GetChild(d.index)
	if !ok {
		panic(fmt.Errorf("red: node's index %d no longer present in parent", d.index))
	}
	return d.parent.offset() + pc.Offset
}

func (d *syntaxData) retain() { d.refcount.Inc() }

// release drops d's own strong count by one. If it reaches zero, d unlinks
// itself from its parent's sibling cache and releases its own strong claim
// on the parent, which may cascade: a parent whose last child just
// released, and which has no other outstanding handle, drops to zero too.
// Reaching zero while a child is still live in d's sibling cache is a
// structural fault and panics.
func (d *syntaxData) release() {
	if d.refcount.Dec() != 0 {
		return
	}
	if d.first.Value() != nil {
		panic(fmt.Errorf("red: node released while a child is still live"))
	}
	if d.parent == nil {
		return
	}
	sll.Unlink[syntaxData](&d.parent.first, d)
	d.parent.release()
}
