package discovery

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/menoncello/nimata-sub006/pkg/errors"
)

// ChangeKind classifies a watch event after it was applied to the index.
type ChangeKind int

const (
	ChangeNew ChangeKind = iota
	ChangeModified
	ChangeDeleted
)

func (k ChangeKind) String() string {
	switch k {
	case ChangeNew:
		return "new"
	case ChangeModified:
		return "modified"
	case ChangeDeleted:
		return "deleted"
	}
	return "unknown"
}

// Change is one index update applied by a watch. Meta is zero for
// ChangeDeleted.
type Change struct {
	Kind ChangeKind
	Path string
	Meta Metadata
}

// Watch keeps the index synchronized with root until ctx is done. Every
// applied change is passed to onChange when non-nil. Watch does not build
// the initial index; run Discover first. The return value is ctx.Err()
// after a clean shutdown, or a watch setup failure.
func (s *Service) Watch(ctx context.Context, root string, onChange func(Change)) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.Wrap(err, errors.ErrWatchFailed, "cannot create filesystem watcher")
	}
	defer func() { _ = fsw.Close() }()

	if err := s.watchTree(fsw, root); err != nil {
		return errors.Wrapf(err, errors.ErrWatchFailed, "cannot watch %s", root)
	}
	log.Info().Str("root", root).Msg("Watching templates")

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			s.handleEvent(fsw, event, onChange)
		case watchErr, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			log.Warn().Err(watchErr).Msg("Watcher error")
		}
	}
}

// watchTree registers root and every non-ignored directory beneath it.
func (s *Service) watchTree(fsw *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == root {
				return err
			}
			return nil
		}
		if !d.IsDir() {
			return nil
		}
		if path != root && s.scanner.IsIgnoredDir(d.Name()) {
			return filepath.SkipDir
		}
		return fsw.Add(path)
	})
}

func (s *Service) handleEvent(fsw *fsnotify.Watcher, event fsnotify.Event, onChange func(Change)) {
	if event.Op&fsnotify.Chmod != 0 {
		return
	}
	path := event.Name
	base := filepath.Base(path)

	switch {
	case event.Op&fsnotify.Create != 0:
		if info, err := os.Stat(path); err == nil && info.IsDir() {
			if s.scanner.IsIgnoredDir(base) {
				return
			}
			// A moved-in directory may already contain templates
			if err := s.watchTree(fsw, path); err != nil {
				log.Warn().Str("path", path).Err(err).Msg("Cannot watch new directory")
			}
			s.indexDir(path, onChange)
			return
		}
		s.applyFileEvent(path, onChange)

	case event.Op&fsnotify.Write != 0:
		s.applyFileEvent(path, onChange)

	case event.Op&(fsnotify.Remove|fsnotify.Rename) != 0:
		s.applyRemoval(path, onChange)
	}
}

// applyFileEvent re-indexes one file after a create or write. Manifest
// edits re-index the whole directory, since every template next to the
// manifest inherits its declarations.
func (s *Service) applyFileEvent(path string, onChange func(Change)) {
	base := filepath.Base(path)
	if base == manifestName {
		s.indexDir(filepath.Dir(path), onChange)
		return
	}
	if !s.scanner.IsCandidateName(base) {
		return
	}

	info, err := os.Stat(path)
	if err != nil {
		// Racing with a delete; the removal event follows
		return
	}

	meta, err := ParseMetadata(Candidate{Path: path, Size: info.Size(), ModTime: info.ModTime()})
	if err != nil {
		log.Warn().Str("path", path).Err(err).Msg("Skipping template")
		return
	}

	kind := ChangeNew
	if _, existed := s.index.Get(path); existed {
		kind = ChangeModified
	}
	s.index.Put(meta)
	s.emit(onChange, Change{Kind: kind, Path: meta.Path, Meta: meta})
}

// applyRemoval drops index entries for a removed file, or for everything
// beneath a removed directory.
func (s *Service) applyRemoval(path string, onChange func(Change)) {
	if nested := s.index.PathsUnder(path); len(nested) > 0 {
		for _, p := range nested {
			s.index.Remove(p)
			s.emit(onChange, Change{Kind: ChangeDeleted, Path: p})
		}
		return
	}
	if s.index.Remove(path) {
		s.emit(onChange, Change{Kind: ChangeDeleted, Path: Normalize(path)})
	}
}

// indexDir indexes every candidate directly inside and beneath dir.
func (s *Service) indexDir(dir string, onChange func(Change)) {
	candidates, err := s.scanner.Scan(dir)
	if err != nil {
		log.Warn().Str("dir", dir).Err(err).Msg("Cannot scan directory")
		return
	}
	for _, cand := range candidates {
		s.applyFileEvent(cand.Path, onChange)
	}
}

func (s *Service) emit(onChange func(Change), change Change) {
	log.Debug().Stringer("kind", change.Kind).Str("path", change.Path).Msg("Template change")
	if onChange != nil {
		onChange(change)
	}
}
