package discovery_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gofrs/flock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/menoncello/nimata-sub006/pkg/errors"
	"github.com/menoncello/nimata-sub006/pkg/template/discovery"
)

func TestIndexCache(t *testing.T) {
	t.Run("round_trip", func(t *testing.T) {
		dir := t.TempDir()
		cachePath := filepath.Join(dir, "index.json")
		lockPath := filepath.Join(dir, "index.lock")

		ix := discovery.NewIndex()
		ix.Put(discovery.Metadata{
			Path:      "/templates/pkg.tmpl",
			Name:      "pkg",
			Size:      42,
			ModTime:   time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC),
			Variables: []string{"name"},
			Required:  []string{"name"},
		})
		lastScan := time.Date(2026, 2, 1, 12, 30, 0, 0, time.UTC)

		require.NoError(t, discovery.SaveIndex(ix, lastScan, cachePath, lockPath))

		loaded, loadedScan, err := discovery.LoadIndex(cachePath, lockPath)
		require.NoError(t, err)
		assert.True(t, lastScan.Equal(loadedScan))
		require.Equal(t, 1, loaded.Len())

		meta, ok := loaded.Get("/templates/pkg.tmpl")
		require.True(t, ok)
		assert.Equal(t, "pkg", meta.Name)
		assert.Equal(t, int64(42), meta.Size)
		assert.Equal(t, []string{"name"}, meta.Variables)
	})

	t.Run("missing_cache_yields_empty_index", func(t *testing.T) {
		dir := t.TempDir()
		ix, lastScan, err := discovery.LoadIndex(
			filepath.Join(dir, "nope.json"), filepath.Join(dir, "nope.lock"))
		require.NoError(t, err)
		assert.Equal(t, 0, ix.Len())
		assert.True(t, lastScan.IsZero())
	})

	t.Run("corrupt_cache_errors", func(t *testing.T) {
		dir := t.TempDir()
		cachePath := filepath.Join(dir, "index.json")
		require.NoError(t, os.WriteFile(cachePath, []byte("{not json"), 0644))

		_, _, err := discovery.LoadIndex(cachePath, filepath.Join(dir, "index.lock"))
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrIndexCache))
		assert.NotEmpty(t, errors.GetSuggestion(err))
	})

	t.Run("held_lock_blocks_save", func(t *testing.T) {
		dir := t.TempDir()
		cachePath := filepath.Join(dir, "index.json")
		lockPath := filepath.Join(dir, "index.lock")

		other := flock.New(lockPath)
		require.NoError(t, other.Lock())
		defer func() { _ = other.Unlock() }()

		err := discovery.SaveIndex(discovery.NewIndex(), time.Now(), cachePath, lockPath)
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrIndexLocked))
	})

	t.Run("save_creates_cache_directory", func(t *testing.T) {
		dir := t.TempDir()
		cachePath := filepath.Join(dir, "nested", "cache", "index.json")
		lockPath := filepath.Join(dir, "nested", "cache", "index.lock")

		require.NoError(t, discovery.SaveIndex(discovery.NewIndex(), time.Now(), cachePath, lockPath))
		_, err := os.Stat(cachePath)
		assert.NoError(t, err)
	})
}
