package green

import (
	"encoding/json"
	"fmt"

	"github.com/samber/lo"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// ToDebugMap converts t into a generic map/slice tree suitable for
// encoding/json, gjson, or sjson. This is a debug surface only, not a wire
// format: no parser ever reads it back into a Tree.
func (t Tree) ToDebugMap() map[string]any {
	children := lo.Map(t.data.children, func(c Child, _ int) any {
		return childDebugMap(c)
	})
	return map[string]any{
		"kind":     t.Kind(),
		"textLen":  t.TextLen(),
		"children": children,
	}
}

func childDebugMap(c Child) map[string]any {
	if c.kind == KindTree {
		m := c.tree.ToDebugMap()
		m["offset"] = c.Offset
		return m
	}
	return map[string]any{
		"kind":   c.token.Kind(),
		"text":   c.token.Text(),
		"offset": c.Offset,
		"token":  true,
	}
}

// ToDebugJSON renders t's debug map as indented JSON text.
func (t Tree) ToDebugJSON() (string, error) {
	data, err := json.MarshalIndent(t.ToDebugMap(), "", "  ")
	if err != nil {
		return "", fmt.Errorf("green: marshal debug json: %w", err)
	}
	return string(data), nil
}

// QueryDebugJSON runs a gjson path query against t's debug JSON and returns
// the matched value's raw JSON text.
func (t Tree) QueryDebugJSON(path string) (string, error) {
	doc, err := t.ToDebugJSON()
	if err != nil {
		return "", err
	}
	return gjson.Get(doc, path).Raw, nil
}

// PatchDebugJSON sets path to value within t's debug JSON and returns the
// patched document text. It does not feed back into t: the debug JSON tree
// is read-only with respect to the actual green Tree.
func (t Tree) PatchDebugJSON(path string, value any) (string, error) {
	doc, err := t.ToDebugJSON()
	if err != nil {
		return "", err
	}
	out, err := sjson.Set(doc, path, value)
	if err != nil {
		return "", fmt.Errorf("green: patch debug json: %w", err)
	}
	return out, nil
}
