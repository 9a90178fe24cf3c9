package template

import (
	"strconv"
	"strings"
)

// Analysis lists the references a template makes, in first-reference order.
// Required holds the variables referenced at least once outside any
// conditional branch or loop body; templates render fine without them, but
// the output would carry empty fragments.
type Analysis struct {
	Variables []string
	Required  []string
	Helpers   []string
}

// Analyze inspects template source without rendering it. Loop-local
// bindings (this, @index) are not reported as variables.
func Analyze(source string) Analysis {
	a := &analyzer{
		vars:    make(map[string]bool),
		helpers: make(map[string]bool),
	}
	a.walk(parse(lex(source)), false)

	out := Analysis{Variables: a.varOrder, Helpers: a.helperOrder}
	for _, name := range a.varOrder {
		if a.vars[name] {
			out.Required = append(out.Required, name)
		}
	}
	return out
}

type analyzer struct {
	varOrder    []string
	vars        map[string]bool // path -> referenced unguarded
	helperOrder []string
	helpers     map[string]bool
}

// walk records references. guarded marks positions whose rendering depends
// on context values: conditional branches and loop bodies.
func (a *analyzer) walk(nodes []node, guarded bool) {
	for i := range nodes {
		n := &nodes[i]
		switch n.kind {
		case nodeVar:
			a.recordVar(n.path, guarded)
		case nodeIf:
			for _, path := range conditionPaths(n.expr) {
				a.recordVar(path, true)
			}
			a.walk(n.children, true)
			a.walk(n.alt, true)
		case nodeEach:
			a.recordVar(n.path, guarded)
			a.walk(n.children, true)
		case nodeHelper:
			a.recordHelper(n.name)
			for _, tok := range splitArgs(n.args) {
				if path, ok := tokenPath(tok); ok {
					a.recordVar(path, guarded)
				}
			}
		}
	}
}

func (a *analyzer) recordVar(path string, guarded bool) {
	if path == "" || isLoopLocal(path) {
		return
	}
	if _, seen := a.vars[path]; !seen {
		a.varOrder = append(a.varOrder, path)
	}
	a.vars[path] = a.vars[path] || !guarded
}

func (a *analyzer) recordHelper(name string) {
	if name == "" || a.helpers[name] {
		return
	}
	a.helpers[name] = true
	a.helperOrder = append(a.helperOrder, name)
}

func isLoopLocal(path string) bool {
	return path == "this" || strings.HasPrefix(path, "this.") || strings.HasPrefix(path, "@")
}

// conditionPaths extracts the variable paths from a conditional expression,
// skipping literal operands.
func conditionPaths(expr string) []string {
	operands, _ := splitCondition(expr)
	var paths []string
	for _, operand := range operands {
		if path, ok := tokenPath(operand); ok {
			paths = append(paths, path)
		}
	}
	return paths
}

// tokenPath reports whether an argument token is a variable path rather
// than a quoted or integer literal.
func tokenPath(tok string) (string, bool) {
	if tok == "" {
		return "", false
	}
	if len(tok) >= 2 {
		first := tok[0]
		if (first == '\'' || first == '"') && tok[len(tok)-1] == first {
			return "", false
		}
	}
	if _, err := strconv.Atoi(tok); err == nil {
		return "", false
	}
	return tok, true
}
