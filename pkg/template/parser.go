package template

type nodeKind int

const (
	nodeLiteral nodeKind = iota
	nodeVar
	nodeIf
	nodeEach
	nodeHelper
)

// node is one element of the parsed block tree. raw keeps the original
// source text so malformed constructs can be emitted back unchanged.
type node struct {
	kind     nodeKind
	raw      string
	path     string // nodeVar, nodeEach
	expr     string // nodeIf
	name     string // nodeHelper
	args     string // nodeHelper
	children []node // nodeIf then-branch, nodeEach body
	alt      []node // nodeIf else-branch
}

// parse builds a block tree from a token stream. Parsing never fails:
// a block opener without a matching closer is downgraded to literal text
// and its interior is re-parsed as if the opener were plain text, and
// closers without an opener become literal text as well.
func parse(tokens []token) []node {
	nodes, _, _, _ := parseSequence(tokens, 0)
	return nodes
}

// parseSequence parses tokens from pos until it runs out or hits a token
// whose kind is in stopAt. It returns the parsed nodes, the index of the
// stop token, its kind, and whether a stop token was found. Stray closers
// not listed in stopAt are emitted as literals.
func parseSequence(tokens []token, pos int, stopAt ...tokenKind) ([]node, int, tokenKind, bool) {
	var nodes []node

	for pos < len(tokens) {
		t := tokens[pos]

		for _, s := range stopAt {
			if t.kind == s {
				return nodes, pos, t.kind, true
			}
		}

		switch t.kind {
		case tokenText:
			nodes = append(nodes, node{kind: nodeLiteral, raw: t.raw})
			pos++
		case tokenVar:
			nodes = append(nodes, node{kind: nodeVar, raw: t.raw, path: t.path})
			pos++
		case tokenHelper:
			nodes = append(nodes, node{kind: nodeHelper, raw: t.raw, name: t.name, args: t.args})
			pos++
		case tokenIfOpen:
			if n, next, ok := parseIf(tokens, pos); ok {
				nodes = append(nodes, n)
				pos = next
				continue
			}
			nodes = append(nodes, node{kind: nodeLiteral, raw: t.raw})
			pos++
		case tokenEachOpen:
			if n, next, ok := parseEach(tokens, pos); ok {
				nodes = append(nodes, n)
				pos = next
				continue
			}
			nodes = append(nodes, node{kind: nodeLiteral, raw: t.raw})
			pos++
		default:
			// Orphan {{else}}, {{/if}}, or {{/each}}
			nodes = append(nodes, node{kind: nodeLiteral, raw: t.raw})
			pos++
		}
	}

	return nodes, pos, 0, false
}

// parseIf parses a conditional block starting at the {{#if}} token.
// It reports failure when no matching {{/if}} exists.
func parseIf(tokens []token, pos int) (node, int, bool) {
	open := tokens[pos]

	thenNodes, next, stopped, ok := parseSequence(tokens, pos+1, tokenElse, tokenIfClose)
	if !ok {
		return node{}, 0, false
	}

	n := node{kind: nodeIf, raw: open.raw, expr: open.expr, children: thenNodes}
	if stopped == tokenIfClose {
		return n, next + 1, true
	}

	elseNodes, next, _, ok := parseSequence(tokens, next+1, tokenIfClose)
	if !ok {
		return node{}, 0, false
	}
	n.alt = elseNodes
	return n, next + 1, true
}

// parseEach parses a loop block starting at the {{#each}} token.
// It reports failure when no matching {{/each}} exists.
func parseEach(tokens []token, pos int) (node, int, bool) {
	open := tokens[pos]

	body, next, _, ok := parseSequence(tokens, pos+1, tokenEachClose)
	if !ok {
		return node{}, 0, false
	}

	return node{kind: nodeEach, raw: open.raw, path: open.path, children: body}, next + 1, true
}
