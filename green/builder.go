package green

// BuilderOption configures a Builder at construction time. The library has
// no other configuration surface: no env vars, no config files, just
// constructor arguments, matching the rest of this module's constructors.
type BuilderOption func(*Builder)

// WithCapacityHint preallocates room for n children, for callers that know
// their child count up front and want to avoid reallocation during Push.
func WithCapacityHint(n int) BuilderOption {
	return func(b *Builder) {
		if n > 0 {
			b.children = make([]Child, 0, n)
		}
	}
}

// Builder assembles a Tree bottom-up: push children in order, then Finish.
// It is not reusable after Finish; call NewBuilder again for the next tree.
type Builder struct {
	kind     string
	children []Child
	textLen  int
}

// NewBuilder starts building a tree of the given kind.
func NewBuilder(kind string, opts ...BuilderOption) *Builder {
	b := &Builder{kind: kind}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// PushTree appends a nested tree as the next child, assigning it the
// correct offset from the text accumulated so far.
func (b *Builder) PushTree(t Tree) *Builder {
	b.push(TreeChild(t))
	return b
}

// PushToken appends a leaf token as the next child.
func (b *Builder) PushToken(t Token) *Builder {
	b.push(TokenChild(t))
	return b
}

func (b *Builder) push(c Child) {
	c.Offset = b.textLen
	b.textLen += c.TextLen()
	b.children = append(b.children, c)
}

// Finish produces the built Tree. The Builder should not be used afterward.
func (b *Builder) Finish() Tree {
	return Tree{data: &treeData{
		kind:     b.kind,
		textLen:  b.textLen,
		children: b.children,
	}}
}
