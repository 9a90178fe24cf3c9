package template

import (
	"strconv"
	"strings"
	"unicode"
)

// splitArgs splits helper argument text on whitespace, keeping single- and
// double-quoted runs together. Quotes are preserved in the returned tokens
// so resolveToken can tell literals from paths.
func splitArgs(argtext string) []string {
	var args []string
	var current strings.Builder
	var quote rune

	flush := func() {
		if current.Len() > 0 {
			args = append(args, current.String())
			current.Reset()
		}
	}

	for _, r := range argtext {
		switch {
		case quote != 0:
			current.WriteRune(r)
			if r == quote {
				quote = 0
				flush()
			}
		case r == '\'' || r == '"':
			flush()
			quote = r
			current.WriteRune(r)
		case unicode.IsSpace(r):
			flush()
		default:
			current.WriteRune(r)
		}
	}
	flush()
	return args
}

// resolveToken turns one argument token into a value: quoted tokens are
// string literals, integer tokens are numbers, and anything else is a
// dotted path resolved against the context (missing paths become nil).
func resolveToken(tok string, ctx Context) any {
	if len(tok) >= 2 {
		first := tok[0]
		if (first == '\'' || first == '"') && tok[len(tok)-1] == first {
			return tok[1 : len(tok)-1]
		}
	}

	if n, err := strconv.Atoi(tok); err == nil {
		return n
	}

	value, _ := ctx.Resolve(tok)
	return value
}

// resolveArgs parses helper argument text into a positional value list.
func resolveArgs(argtext string, ctx Context) []any {
	tokens := splitArgs(argtext)
	values := make([]any, len(tokens))
	for i, tok := range tokens {
		values[i] = resolveToken(tok, ctx)
	}
	return values
}

// evalCondition evaluates a conditional expression: one or more references
// combined with && and ||, folded strictly left to right with no precedence
// or parentheses. Operands resolve like helper arguments, so literals and
// paths are both accepted.
func evalCondition(expr string, ctx Context) bool {
	operands, operators := splitCondition(expr)

	result := Truthy(resolveToken(operands[0], ctx))
	for i, op := range operators {
		operand := Truthy(resolveToken(operands[i+1], ctx))
		if op == "&&" {
			result = result && operand
		} else {
			result = result || operand
		}
	}
	return result
}

// splitCondition splits an expression on && and || in source order.
// It always returns at least one operand.
func splitCondition(expr string) (operands, operators []string) {
	rest := expr
	for {
		and := strings.Index(rest, "&&")
		or := strings.Index(rest, "||")

		idx := and
		if idx < 0 || (or >= 0 && or < idx) {
			idx = or
		}
		if idx < 0 {
			operands = append(operands, strings.TrimSpace(rest))
			return operands, operators
		}

		operands = append(operands, strings.TrimSpace(rest[:idx]))
		operators = append(operators, rest[idx:idx+2])
		rest = rest[idx+2:]
	}
}
