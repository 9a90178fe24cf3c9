package template

import (
	"strings"
	"unicode"
)

type tokenKind int

const (
	tokenText tokenKind = iota
	tokenVar
	tokenIfOpen
	tokenElse
	tokenIfClose
	tokenEachOpen
	tokenEachClose
	tokenHelper
)

// token is one element of the flat stream a template is split into. raw is
// always the exact source text, so any token can be emitted back verbatim.
type token struct {
	kind tokenKind
	raw  string
	path string // tokenVar, tokenEachOpen
	expr string // tokenIfOpen
	name string // tokenHelper
	args string // tokenHelper
}

// lex splits a template into literal text and placeholder tokens with a
// single left-to-right scan. An opening {{ without a closing }} makes the
// remainder of the template literal text.
func lex(source string) []token {
	var tokens []token
	rest := source

	for {
		open := strings.Index(rest, "{{")
		if open < 0 {
			break
		}
		end := strings.Index(rest[open+2:], "}}")
		if end < 0 {
			break
		}

		if open > 0 {
			tokens = append(tokens, token{kind: tokenText, raw: rest[:open]})
		}
		content := rest[open+2 : open+2+end]
		tokens = append(tokens, classify(content))
		rest = rest[open+2+end+2:]
	}

	if rest != "" {
		tokens = append(tokens, token{kind: tokenText, raw: rest})
	}
	return tokens
}

// classify determines a placeholder's kind from the token immediately
// following the opening braces. Anything unrecognized is a variable whose
// path is the trimmed content.
func classify(content string) token {
	raw := "{{" + content + "}}"

	switch content {
	case "else":
		return token{kind: tokenElse, raw: raw}
	case "/if":
		return token{kind: tokenIfClose, raw: raw}
	case "/each":
		return token{kind: tokenEachClose, raw: raw}
	}

	switch {
	case strings.HasPrefix(content, "#if "):
		return token{kind: tokenIfOpen, raw: raw, expr: strings.TrimSpace(content[len("#if "):])}
	case strings.HasPrefix(content, "#each "):
		return token{kind: tokenEachOpen, raw: raw, path: strings.TrimSpace(content[len("#each "):])}
	case strings.HasPrefix(content, "helper:"):
		name, args := splitHelperCall(content[len("helper:"):])
		return token{kind: tokenHelper, raw: raw, name: name, args: args}
	}

	return token{kind: tokenVar, raw: raw, path: strings.TrimSpace(content)}
}

func splitHelperCall(call string) (name, args string) {
	idx := strings.IndexFunc(call, unicode.IsSpace)
	if idx < 0 {
		return call, ""
	}
	return call[:idx], strings.TrimSpace(call[idx:])
}
