package testutil

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

// TemplateTree maps template-root-relative paths to file contents.
type TemplateTree map[string]string

// CreateTemplateTree materializes a template tree under root and returns root.
// Nested paths are created as needed.
func CreateTemplateTree(t *testing.T, root string, tree TemplateTree) string {
	t.Helper()

	for rel, content := range tree {
		CreateFile(t, root, rel, content)
	}

	return root
}

// Touch bumps a file's modification time past the given reference instant,
// so incremental rescans see it as changed.
func Touch(t *testing.T, path string, after time.Time) {
	t.Helper()

	mtime := after.Add(2 * time.Second)
	if err := os.Chtimes(path, mtime, mtime); err != nil {
		t.Fatalf("Failed to touch %s: %v", path, err)
	}
}

// SetMtime pins a file's modification time to an exact instant.
func SetMtime(t *testing.T, path string, mtime time.Time) {
	t.Helper()

	if err := os.Chtimes(path, mtime, mtime); err != nil {
		t.Fatalf("Failed to set mtime on %s: %v", path, err)
	}
}

// WriteManifest writes a template.yaml manifest next to the templates in dir.
func WriteManifest(t *testing.T, dir, content string) string {
	t.Helper()

	return CreateFile(t, dir, "template.yaml", content)
}

// RemoveFile deletes a file, failing the test on error. Useful for
// exercising deleted-file detection in rescans.
func RemoveFile(t *testing.T, path string) {
	t.Helper()

	if err := os.Remove(path); err != nil {
		t.Fatalf("Failed to remove %s: %v", path, err)
	}
}

// RelPath joins path elements below a root, mirroring how scanners report paths.
func RelPath(root string, elems ...string) string {
	return filepath.Join(append([]string{root}, elems...)...)
}
