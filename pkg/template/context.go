package template

import (
	"reflect"
	"strings"
)

// Context supplies the data a template is rendered against. Values may be
// strings, numbers, booleans, nil, slices, or nested mappings; dotted paths
// address nested fields. A Context is read-only during a render.
type Context map[string]any

// Resolve descends the context along a dotted path. The second return value
// reports whether the path exists: a present key holding nil returns
// (nil, true), a missing key or missing intermediate returns (nil, false).
// Callers depend on that distinction to tell explicit null from undefined.
func (c Context) Resolve(path string) (any, bool) {
	if path == "" {
		return nil, false
	}

	var current any = c
	for _, key := range strings.Split(path, ".") {
		value, ok := lookupKey(current, key)
		if !ok {
			return nil, false
		}
		current = value
	}
	return current, true
}

// Child derives a new context for a loop iteration: all parent fields remain
// visible, shadowed only by the given bindings. The parent is not modified.
func (c Context) Child(bindings map[string]any) Context {
	child := make(Context, len(c)+len(bindings))
	for k, v := range c {
		child[k] = v
	}
	for k, v := range bindings {
		child[k] = v
	}
	return child
}

// lookupKey fetches a single key from a mapping value. Non-mapping values
// (including nil) have no keys.
func lookupKey(v any, key string) (any, bool) {
	switch m := v.(type) {
	case Context:
		value, ok := m[key]
		return value, ok
	case map[string]any:
		value, ok := m[key]
		return value, ok
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Map && rv.Type().Key().Kind() == reflect.String {
		mv := rv.MapIndex(reflect.ValueOf(key))
		if !mv.IsValid() {
			return nil, false
		}
		return mv.Interface(), true
	}
	return nil, false
}
