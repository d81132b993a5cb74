package green

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInsertChildMiddle(t *testing.T) {
	tr := NewBuilder("EXPR").
		PushToken(NewToken("A", "a")).
		PushToken(NewToken("B", "bb")).
		Finish()

	edited := tr.InsertChild(1, TokenChild(NewToken("X", "xxx")))

	require.Equal(t, 3, edited.NumChildren())
	require.Equal(t, 1+2+3, edited.TextLen())

	c0, _ := edited.GetChild(0)
	c1, _ := edited.GetChild(1)
	c2, _ := edited.GetChild(2)
	require.Equal(t, 0, c0.Offset)
	require.Equal(t, 1, c1.Offset)
	require.Equal(t, "X", c1.NodeKind())
	require.Equal(t, 4, c2.Offset)
	require.Equal(t, "B", c2.NodeKind())

	// the original is untouched (copy-on-write)
	require.Equal(t, 2, tr.NumChildren())
	require.Equal(t, 3, tr.TextLen())
}

func TestInsertChildAtEnd(t *testing.T) {
	tr := NewBuilder("EXPR").PushToken(NewToken("A", "a")).Finish()
	edited := tr.InsertChild(tr.NumChildren(), TokenChild(NewToken("B", "bb")))

	require.Equal(t, 2, edited.NumChildren())
	c1, _ := edited.GetChild(1)
	require.Equal(t, 1, c1.Offset)
}

func TestInsertChildOutOfRangePanics(t *testing.T) {
	tr := NewBuilder("EXPR").Finish()
	require.Panics(t, func() { tr.InsertChild(-1, TokenChild(NewToken("A", "a"))) })
	require.Panics(t, func() { tr.InsertChild(1, TokenChild(NewToken("A", "a"))) })
}

func TestRemoveChild(t *testing.T) {
	tr := NewBuilder("EXPR").
		PushToken(NewToken("A", "a")).
		PushToken(NewToken("B", "bb")).
		PushToken(NewToken("C", "ccc")).
		Finish()

	edited := tr.RemoveChild(1)

	require.Equal(t, 2, edited.NumChildren())
	require.Equal(t, 1+3, edited.TextLen())

	c0, _ := edited.GetChild(0)
	c1, _ := edited.GetChild(1)
	require.Equal(t, "A", c0.NodeKind())
	require.Equal(t, 0, c0.Offset)
	require.Equal(t, "C", c1.NodeKind())
	require.Equal(t, 1, c1.Offset)

	// original untouched
	require.Equal(t, 3, tr.NumChildren())
}

func TestRemoveChildOutOfRangePanics(t *testing.T) {
	tr := NewBuilder("EXPR").Finish()
	require.Panics(t, func() { tr.RemoveChild(0) })
}

func TestReplaceChild(t *testing.T) {
	tr := NewBuilder("EXPR").
		PushToken(NewToken("A", "a")).
		PushToken(NewToken("B", "bb")).
		PushToken(NewToken("C", "ccc")).
		Finish()

	edited := tr.ReplaceChild(1, TokenChild(NewToken("B2", "bbbb")))

	require.Equal(t, 3, edited.NumChildren())
	require.Equal(t, 1+4+3, edited.TextLen())

	c1, _ := edited.GetChild(1)
	require.Equal(t, "B2", c1.NodeKind())
	require.Equal(t, 1, c1.Offset)

	c2, _ := edited.GetChild(2)
	require.Equal(t, 5, c2.Offset)

	// original untouched
	require.Equal(t, 6, tr.TextLen())
	oc1, _ := tr.GetChild(1)
	require.Equal(t, "B", oc1.NodeKind())
}

func TestReplaceChildOutOfRangePanics(t *testing.T) {
	tr := NewBuilder("EXPR").Finish()
	require.Panics(t, func() { tr.ReplaceChild(0, TokenChild(NewToken("A", "a"))) })
}

func TestEditsShareUnaffectedChildren(t *testing.T) {
	shared := NewBuilder("PAREN").PushToken(NewToken("N", "1")).Finish()
	tr := NewBuilder("EXPR").
		PushTree(shared).
		PushToken(NewToken("PLUS", "+")).
		Finish()

	edited := tr.InsertChild(1, TokenChild(NewToken("X", "x")))

	c0Before, _ := tr.GetChild(0)
	c0After, _ := edited.GetChild(0)
	require.Equal(t, c0Before.Tree().Fingerprint().String(), c0After.Tree().Fingerprint().String())
}
