package template

import (
	"reflect"
	"strings"

	"github.com/menoncello/nimata-sub006/pkg/registry"
)

// renderer walks a block tree and writes output. All fallbacks happen
// here: an unknown helper emits its source text, a failing helper emits
// nothing, a null variable keeps its placeholder, a missing one vanishes.
type renderer struct {
	helpers registry.Registry[HelperFunc]
}

func (r *renderer) renderNodes(sb *strings.Builder, nodes []node, ctx Context) {
	for i := range nodes {
		r.renderNode(sb, &nodes[i], ctx)
	}
}

func (r *renderer) renderNode(sb *strings.Builder, n *node, ctx Context) {
	switch n.kind {
	case nodeLiteral:
		sb.WriteString(n.raw)

	case nodeVar:
		value, found := ctx.Resolve(n.path)
		if !found {
			return
		}
		if value == nil {
			// Explicit null keeps the placeholder as written
			sb.WriteString(n.raw)
			return
		}
		sb.WriteString(Format(value))

	case nodeIf:
		// Only the taken branch is rendered; the other branch's
		// placeholders are never evaluated.
		if evalCondition(n.expr, ctx) {
			r.renderNodes(sb, n.children, ctx)
		} else {
			r.renderNodes(sb, n.alt, ctx)
		}

	case nodeEach:
		value, found := ctx.Resolve(n.path)
		if !found {
			return
		}
		items, ok := asList(value)
		if !ok {
			return
		}
		for i, item := range items {
			child := ctx.Child(map[string]any{"this": item, "@index": i})
			r.renderNodes(sb, n.children, child)
		}

	case nodeHelper:
		fn, err := r.helpers.Get(n.name)
		if err != nil {
			sb.WriteString(n.raw)
			return
		}
		result, ok := callHelper(fn, resolveArgs(n.args, ctx))
		if !ok {
			return
		}
		sb.WriteString(Format(result))
	}
}

// asList converts a value to a slice of elements. Strings and maps are not
// lists here, matching loop semantics where only ordered collections expand.
func asList(v any) ([]any, bool) {
	if items, ok := v.([]any); ok {
		return items, true
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false
	}
	items := make([]any, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		items[i] = rv.Index(i).Interface()
	}
	return items, true
}
