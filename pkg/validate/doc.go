// Package validate checks templates against a render context before use.
//
// Rendering never fails: missing variables become empty strings, null values
// and unknown helpers pass through as raw placeholders. Callers that want
// stricter guarantees run a Validator first and decide what to do with its
// findings. Validation is opt-in and separate from the render path.
package validate
