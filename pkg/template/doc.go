// Package template implements the nimata template engine.
//
// Templates are plain text with four placeholder forms: variables
// ({{path}}), conditionals ({{#if expr}}...{{else}}...{{/if}}), loops
// ({{#each path}}...{{/each}}), and helper calls ({{helper:name args}}).
// A template is tokenized into a flat stream, parsed into a block tree,
// and rendered by walking the tree against a Context.
//
// Rendering is fail-soft: malformed blocks and unknown helpers are left
// as literal text, helper failures and missing variables render as the
// empty string, and a variable that resolves to an explicit null keeps
// its original placeholder text. Render never returns an error; only
// loading a template file can fail.
package template
