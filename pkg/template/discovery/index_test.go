package discovery_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/menoncello/nimata-sub006/pkg/template/discovery"
)

func TestIndex(t *testing.T) {
	t.Run("put_replaces_never_appends", func(t *testing.T) {
		ix := discovery.NewIndex()
		ix.Put(discovery.Metadata{Path: "/tmp/x.tmpl", Size: 1})
		ix.Put(discovery.Metadata{Path: "/tmp/x.tmpl", Size: 2})

		assert.Equal(t, 1, ix.Len())
		meta, ok := ix.Get("/tmp/x.tmpl")
		require.True(t, ok)
		assert.Equal(t, int64(2), meta.Size)
	})

	t.Run("lookup_accepts_any_path_form", func(t *testing.T) {
		dir := t.TempDir()
		abs := filepath.Join(dir, "tpl", "x.tmpl")

		ix := discovery.NewIndex()
		ix.Put(discovery.Metadata{Path: abs})

		// Absolute with redundant segments
		dotted := filepath.Join(dir, "tpl", ".", "x.tmpl")
		_, ok := ix.Get(dotted)
		assert.True(t, ok)

		// Relative to the working directory
		wd, err := os.Getwd()
		require.NoError(t, err)
		rel, err := filepath.Rel(wd, abs)
		require.NoError(t, err)
		_, ok = ix.Get(rel)
		assert.True(t, ok)
	})

	t.Run("differently_formed_puts_collide", func(t *testing.T) {
		dir := t.TempDir()
		abs := filepath.Join(dir, "x.tmpl")

		ix := discovery.NewIndex()
		ix.Put(discovery.Metadata{Path: abs})
		ix.Put(discovery.Metadata{Path: filepath.Join(dir, ".", "x.tmpl")})

		assert.Equal(t, 1, ix.Len())
	})

	t.Run("remove", func(t *testing.T) {
		ix := discovery.NewIndex()
		ix.Put(discovery.Metadata{Path: "/tmp/x.tmpl"})

		assert.True(t, ix.Remove("/tmp/x.tmpl"))
		assert.False(t, ix.Remove("/tmp/x.tmpl"))
		assert.Equal(t, 0, ix.Len())
	})

	t.Run("paths_under_root", func(t *testing.T) {
		ix := discovery.NewIndex()
		ix.Put(discovery.Metadata{Path: "/roots/a/one.tmpl"})
		ix.Put(discovery.Metadata{Path: "/roots/a/sub/two.tmpl"})
		ix.Put(discovery.Metadata{Path: "/roots/b/other.tmpl"})

		under := ix.PathsUnder("/roots/a")
		assert.Equal(t, []string{"/roots/a/one.tmpl", "/roots/a/sub/two.tmpl"}, under)
	})

	t.Run("entries_sorted_by_path", func(t *testing.T) {
		ix := discovery.NewIndex()
		ix.Put(discovery.Metadata{Path: "/z.tmpl"})
		ix.Put(discovery.Metadata{Path: "/a.tmpl"})

		entries := ix.Entries()
		require.Len(t, entries, 2)
		assert.Equal(t, "/a.tmpl", entries[0].Path)
		assert.Equal(t, "/z.tmpl", entries[1].Path)
	})
}

func TestNormalize(t *testing.T) {
	dir := t.TempDir()

	abs := discovery.Normalize(filepath.Join(dir, "a", "..", "b.tmpl"))
	assert.Equal(t, filepath.Join(dir, "b.tmpl"), abs)
	assert.True(t, filepath.IsAbs(discovery.Normalize("relative/path.tmpl")))
}
