// Package testutil provides utilities for testing nimata components.
//
// Key components:
//   - File and directory builders (CreateFile, CreateDir, CreateTemplateTree)
//   - Assertion helpers that keep test call sites terse
//   - Mtime manipulation (Touch, SetMtime) for incremental-rescan tests
//
// Usage guidelines:
//   - All test data should be defined inline, not in external files
//   - Each test should be completely isolated with no shared state
package testutil
