package template

import (
	"testing"
)

func TestLex(t *testing.T) {
	tests := []struct {
		name   string
		source string
		want   []token
	}{
		{
			name:   "plain_text",
			source: "hello world",
			want:   []token{{kind: tokenText, raw: "hello world"}},
		},
		{
			name:   "variable",
			source: "a{{name}}b",
			want: []token{
				{kind: tokenText, raw: "a"},
				{kind: tokenVar, raw: "{{name}}", path: "name"},
				{kind: tokenText, raw: "b"},
			},
		},
		{
			name:   "variable_trims_path",
			source: "{{ a.b }}",
			want:   []token{{kind: tokenVar, raw: "{{ a.b }}", path: "a.b"}},
		},
		{
			name:   "conditional_tokens",
			source: "{{#if x && y}}A{{else}}B{{/if}}",
			want: []token{
				{kind: tokenIfOpen, raw: "{{#if x && y}}", expr: "x && y"},
				{kind: tokenText, raw: "A"},
				{kind: tokenElse, raw: "{{else}}"},
				{kind: tokenText, raw: "B"},
				{kind: tokenIfClose, raw: "{{/if}}"},
			},
		},
		{
			name:   "loop_tokens",
			source: "{{#each items}}{{this}}{{/each}}",
			want: []token{
				{kind: tokenEachOpen, raw: "{{#each items}}", path: "items"},
				{kind: tokenVar, raw: "{{this}}", path: "this"},
				{kind: tokenEachClose, raw: "{{/each}}"},
			},
		},
		{
			name:   "helper_with_args",
			source: `{{helper:join tags ", "}}`,
			want: []token{
				{kind: tokenHelper, raw: `{{helper:join tags ", "}}`, name: "join", args: `tags ", "`},
			},
		},
		{
			name:   "helper_without_args",
			source: "{{helper:now}}",
			want:   []token{{kind: tokenHelper, raw: "{{helper:now}}", name: "now"}},
		},
		{
			name:   "unterminated_is_literal",
			source: "a{{b",
			want:   []token{{kind: tokenText, raw: "a{{b"}},
		},
		{
			name:   "if_without_space_is_variable",
			source: "{{#ifx}}",
			want:   []token{{kind: tokenVar, raw: "{{#ifx}}", path: "#ifx"}},
		},
		{
			name:   "marker_must_follow_braces",
			source: "{{ #if x}}",
			want:   []token{{kind: tokenVar, raw: "{{ #if x}}", path: "#if x"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := lex(tt.source)
			if len(got) != len(tt.want) {
				t.Fatalf("lex(%q) = %d tokens, want %d: %+v", tt.source, len(got), len(tt.want), got)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("token %d = %+v, want %+v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestLexRoundTrip(t *testing.T) {
	// Concatenating raw token text must reproduce the source exactly,
	// otherwise literal fallbacks would corrupt output.
	sources := []string{
		"plain",
		"{{a}} {{#if b}}c{{/if}} {{#each d}}e{{/each}} {{helper:f g}}",
		"broken {{#if x}}no close",
		"{{}}{{else}}{{/each}}",
	}

	for _, source := range sources {
		var rebuilt string
		for _, tok := range lex(source) {
			rebuilt += tok.raw
		}
		if rebuilt != source {
			t.Errorf("round trip of %q produced %q", source, rebuilt)
		}
	}
}
