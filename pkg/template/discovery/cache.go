package discovery

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"

	"github.com/menoncello/nimata-sub006/pkg/errors"
)

// indexSnapshot is the JSON layout of the persisted index cache.
type indexSnapshot struct {
	LastScan time.Time  `json:"last_scan"`
	Entries  []Metadata `json:"entries"`
}

// SaveIndex persists the index and its scan time to cachePath, guarded by
// an exclusive cross-process lock at lockPath. The file is written to a
// temporary name and renamed so readers never see a partial cache.
func SaveIndex(ix *Index, lastScan time.Time, cachePath, lockPath string) error {
	if err := os.MkdirAll(filepath.Dir(cachePath), 0755); err != nil {
		return errors.Wrapf(err, errors.ErrIndexCache,
			"cannot create cache directory for %s", cachePath)
	}

	lock := flock.New(lockPath)
	locked, err := lock.TryLock()
	if err != nil {
		return errors.Wrap(err, errors.ErrIndexCache, "failed to acquire index lock")
	}
	if !locked {
		return errors.New(errors.ErrIndexLocked,
			"template index is locked by another process").
			WithSuggestion("wait for other nimata commands to finish and retry")
	}
	defer func() { _ = lock.Unlock() }()

	snapshot := indexSnapshot{LastScan: lastScan, Entries: ix.Entries()}
	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return errors.Wrap(err, errors.ErrIndexCache, "failed to encode index cache")
	}

	tmp := cachePath + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return errors.Wrapf(err, errors.ErrIndexCache, "failed to write %s", tmp)
	}
	if err := os.Rename(tmp, cachePath); err != nil {
		return errors.Wrapf(err, errors.ErrIndexCache, "failed to replace %s", cachePath)
	}

	log.Debug().Str("path", cachePath).Int("entries", ix.Len()).Msg("Index cache saved")
	return nil
}

// LoadIndex restores a persisted index. A missing cache file is not an
// error; it yields an empty index and a zero scan time, forcing a full
// discovery.
func LoadIndex(cachePath, lockPath string) (*Index, time.Time, error) {
	if _, err := os.Stat(cachePath); os.IsNotExist(err) {
		return NewIndex(), time.Time{}, nil
	}

	lock := flock.New(lockPath)
	locked, err := lock.TryRLock()
	if err != nil {
		return nil, time.Time{}, errors.Wrap(err, errors.ErrIndexCache,
			"failed to acquire index lock")
	}
	if !locked {
		return nil, time.Time{}, errors.New(errors.ErrIndexLocked,
			"template index is locked by another process").
			WithSuggestion("wait for other nimata commands to finish and retry")
	}
	defer func() { _ = lock.Unlock() }()

	data, err := os.ReadFile(cachePath)
	if err != nil {
		return nil, time.Time{}, errors.Wrapf(err, errors.ErrIndexCache,
			"cannot read index cache %s", cachePath)
	}

	var snapshot indexSnapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return nil, time.Time{}, errors.Wrapf(err, errors.ErrIndexCache,
			"corrupt index cache %s", cachePath).
			WithSuggestion("delete the cache file and run 'nimata templates scan'")
	}

	ix := NewIndex()
	for _, meta := range snapshot.Entries {
		ix.Put(meta)
	}
	return ix, snapshot.LastScan, nil
}
