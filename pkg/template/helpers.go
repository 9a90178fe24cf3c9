package template

import (
	"strings"
	"unicode"
)

// HelperFunc is a template helper: it receives already-resolved argument
// values and returns a value that is coerced with Format. Helpers must be
// pure functions of their arguments; a returned error or a panic renders
// as the empty string.
type HelperFunc func(args ...any) (any, error)

// callHelper invokes a helper, converting panics into the empty-string
// fallback so one bad helper cannot abort a render.
func callHelper(fn HelperFunc, args []any) (result any, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			log.Debug().Interface("panic", r).Msg("Helper panicked, rendering empty string")
			result, ok = nil, false
		}
	}()

	value, err := fn(args...)
	if err != nil {
		log.Debug().Err(err).Msg("Helper returned error, rendering empty string")
		return nil, false
	}
	return value, true
}

// builtinHelpers returns the helper set every engine starts with. All of
// them are pure string transforms, keeping renders deterministic.
func builtinHelpers() map[string]HelperFunc {
	return map[string]HelperFunc{
		"uppercase":  func(args ...any) (any, error) { return strings.ToUpper(argString(args, 0)), nil },
		"lowercase":  func(args ...any) (any, error) { return strings.ToLower(argString(args, 0)), nil },
		"trim":       func(args ...any) (any, error) { return strings.TrimSpace(argString(args, 0)), nil },
		"capitalize": func(args ...any) (any, error) { return capitalize(argString(args, 0)), nil },
		"camelCase":  func(args ...any) (any, error) { return camelCase(argString(args, 0)), nil },
		"pascalCase": func(args ...any) (any, error) { return pascalCase(argString(args, 0)), nil },
		"kebabCase":  func(args ...any) (any, error) { return joinWords(argString(args, 0), "-"), nil },
		"snakeCase":  func(args ...any) (any, error) { return joinWords(argString(args, 0), "_"), nil },
		"join": func(args ...any) (any, error) {
			sep := ", "
			if len(args) > 1 {
				sep = argString(args, 1)
			}
			if len(args) == 0 {
				return "", nil
			}
			return strings.Join(formatList(args[0]), sep), nil
		},
		"default": func(args ...any) (any, error) {
			if len(args) == 0 {
				return "", nil
			}
			if args[0] == nil || Format(args[0]) == "" {
				if len(args) > 1 {
					return args[1], nil
				}
				return "", nil
			}
			return args[0], nil
		},
	}
}

// argString fetches a positional argument as its formatted string, empty
// when absent.
func argString(args []any, i int) string {
	if i >= len(args) {
		return ""
	}
	return Format(args[i])
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(s)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

func camelCase(s string) string {
	words := splitWords(s)
	if len(words) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(strings.ToLower(words[0]))
	for _, w := range words[1:] {
		b.WriteString(capitalize(strings.ToLower(w)))
	}
	return b.String()
}

func pascalCase(s string) string {
	words := splitWords(s)
	var b strings.Builder
	for _, w := range words {
		b.WriteString(capitalize(strings.ToLower(w)))
	}
	return b.String()
}

func joinWords(s, sep string) string {
	words := splitWords(s)
	for i, w := range words {
		words[i] = strings.ToLower(w)
	}
	return strings.Join(words, sep)
}

// splitWords breaks an identifier into words on separators and on
// lower-to-upper case boundaries, so "my-projectName" becomes
// ["my", "project", "Name"].
func splitWords(s string) []string {
	var words []string
	var current strings.Builder

	flush := func() {
		if current.Len() > 0 {
			words = append(words, current.String())
			current.Reset()
		}
	}

	runes := []rune(s)
	for i, r := range runes {
		switch {
		case r == ' ' || r == '-' || r == '_' || r == '.' || r == '/':
			flush()
		case unicode.IsUpper(r) && i > 0 && unicode.IsLower(runes[i-1]):
			flush()
			current.WriteRune(r)
		default:
			current.WriteRune(r)
		}
	}
	flush()
	return words
}

// formatList renders each element of a slice value, or the single
// formatted value when it is not a slice.
func formatList(v any) []string {
	items, ok := asList(v)
	if !ok {
		return []string{Format(v)}
	}
	parts := make([]string, len(items))
	for i, item := range items {
		parts[i] = Format(item)
	}
	return parts
}
