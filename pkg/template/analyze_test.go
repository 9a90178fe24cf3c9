// pkg/template/analyze_test.go
// TEST TYPE: Unit Tests
// DEPENDENCIES: None
// PURPOSE: Test static analysis of template references

package template_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/menoncello/nimata-sub006/pkg/template"
)

func TestAnalyze(t *testing.T) {
	t.Run("collects_references_in_order", func(t *testing.T) {
		source := "{{name}} {{#if flag}}{{opt}}{{/if}} {{#each items}}{{this}} {{extra}}{{/each}}"
		a := template.Analyze(source)

		assert.Equal(t, []string{"name", "flag", "opt", "items", "extra"}, a.Variables)
		assert.Equal(t, []string{"name", "items"}, a.Required)
		assert.Empty(t, a.Helpers)
	})

	t.Run("deduplicates_references", func(t *testing.T) {
		a := template.Analyze("{{name}}{{name}}{{name}}")
		assert.Equal(t, []string{"name"}, a.Variables)
	})

	t.Run("unguarded_reference_makes_required", func(t *testing.T) {
		a := template.Analyze("{{#if flag}}{{x}}{{/if}}{{x}}")
		assert.Equal(t, []string{"x"}, a.Required)
	})

	t.Run("condition_operands_are_not_required", func(t *testing.T) {
		a := template.Analyze("{{#if hasAuth && isOAuth}}y{{/if}}")
		assert.Equal(t, []string{"hasAuth", "isOAuth"}, a.Variables)
		assert.Empty(t, a.Required)
	})

	t.Run("literal_operands_skipped", func(t *testing.T) {
		a := template.Analyze(`{{#if 1 && flag}}y{{/if}}{{helper:join tags "x" 42}}`)
		assert.Equal(t, []string{"flag", "tags"}, a.Variables)
		assert.Equal(t, []string{"join"}, a.Helpers)
	})

	t.Run("loop_locals_not_reported", func(t *testing.T) {
		a := template.Analyze("{{#each items}}{{this.name}} {{@index}}{{/each}}")
		assert.Equal(t, []string{"items"}, a.Variables)
		assert.Equal(t, []string{"items"}, a.Required)
	})

	t.Run("helpers_deduplicated", func(t *testing.T) {
		a := template.Analyze("{{helper:uppercase a}}{{helper:uppercase b}}{{helper:join c}}")
		assert.Equal(t, []string{"uppercase", "join"}, a.Helpers)
		assert.Equal(t, []string{"a", "b", "c"}, a.Variables)
	})

	t.Run("else_branch_is_guarded", func(t *testing.T) {
		a := template.Analyze("{{#if flag}}{{a}}{{else}}{{b}}{{/if}}")
		assert.Equal(t, []string{"flag", "a", "b"}, a.Variables)
		assert.Empty(t, a.Required)
	})

	t.Run("plain_text_has_no_references", func(t *testing.T) {
		a := template.Analyze("no placeholders here")
		assert.Empty(t, a.Variables)
		assert.Empty(t, a.Required)
		assert.Empty(t, a.Helpers)
	})
}
