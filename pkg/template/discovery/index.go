package discovery

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
)

// Normalize converts any path form to the canonical absolute one the index
// is keyed by, so differently-formed references to the same file always
// collide.
func Normalize(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return filepath.Clean(path)
	}
	return abs
}

// Index maps canonical template paths to metadata. Every operation
// normalizes its path argument, so the index never holds two entries that
// disagree about the same underlying file: updates replace, never append.
type Index struct {
	mu      sync.RWMutex
	entries map[string]Metadata
}

func NewIndex() *Index {
	return &Index{entries: make(map[string]Metadata)}
}

// Put inserts or replaces the entry for the metadata's file.
func (ix *Index) Put(meta Metadata) {
	key := Normalize(meta.Path)
	meta.Path = key

	ix.mu.Lock()
	defer ix.mu.Unlock()
	ix.entries[key] = meta
}

// Get looks up a file by any path form.
func (ix *Index) Get(path string) (Metadata, bool) {
	ix.mu.RLock()
	defer ix.mu.RUnlock()
	meta, ok := ix.entries[Normalize(path)]
	return meta, ok
}

// Remove deletes a file's entry, reporting whether one existed.
func (ix *Index) Remove(path string) bool {
	key := Normalize(path)

	ix.mu.Lock()
	defer ix.mu.Unlock()
	_, ok := ix.entries[key]
	delete(ix.entries, key)
	return ok
}

// Len returns the number of indexed templates.
func (ix *Index) Len() int {
	ix.mu.RLock()
	defer ix.mu.RUnlock()
	return len(ix.entries)
}

// Paths returns all indexed paths, sorted.
func (ix *Index) Paths() []string {
	ix.mu.RLock()
	defer ix.mu.RUnlock()

	paths := make([]string, 0, len(ix.entries))
	for path := range ix.entries {
		paths = append(paths, path)
	}
	sort.Strings(paths)
	return paths
}

// PathsUnder returns the indexed paths beneath a root directory, sorted.
func (ix *Index) PathsUnder(root string) []string {
	prefix := Normalize(root) + string(os.PathSeparator)

	ix.mu.RLock()
	defer ix.mu.RUnlock()

	var paths []string
	for path := range ix.entries {
		if strings.HasPrefix(path, prefix) {
			paths = append(paths, path)
		}
	}
	sort.Strings(paths)
	return paths
}

// Entries returns all metadata records, sorted by path.
func (ix *Index) Entries() []Metadata {
	ix.mu.RLock()
	defer ix.mu.RUnlock()

	entries := make([]Metadata, 0, len(ix.entries))
	for _, meta := range ix.entries {
		entries = append(entries, meta)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Path < entries[j].Path })
	return entries
}
