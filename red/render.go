package red

// RenderIndented dumps t's current pure subtree in the same indented debug
// form as green.Tree.RenderIndented. The red layer adds no rendering of its
// own: identity (parent, index, refcount) is not part of the dump.
func (t SyntaxTree) RenderIndented() string { return t.data.treeData.RenderIndented() }

// RenderCompact dumps just t's own kind.
func (t SyntaxTree) RenderCompact() string { return t.data.treeData.RenderCompact() }
