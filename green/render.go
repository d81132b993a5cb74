package green

import (
	"fmt"
	"strings"
)

// RenderIndented produces a multi-line debug dump: one line per node, tree
// kinds indented two spaces per level, tokens rendered as "text": kind.
func (t Tree) RenderIndented() string {
	var sb strings.Builder
	renderRec(&sb, 0, t)
	return sb.String()
}

func renderRec(sb *strings.Builder, lvl int, t Tree) {
	fmt.Fprintf(sb, "%s%s\n", strings.Repeat("  ", lvl), t.Kind())
	for _, c := range t.data.children {
		if c.kind == KindTree {
			renderRec(sb, lvl+1, c.tree)
		} else {
			fmt.Fprintf(sb, "%s%s\n", strings.Repeat("  ", lvl+1), c.token.String())
		}
	}
}

// RenderCompact produces the one-line form: just the tree's own kind, with
// no children walked. Matches the non-alternate Debug rendering of a pure
// tree value.
func (t Tree) RenderCompact() string { return t.Kind() }
