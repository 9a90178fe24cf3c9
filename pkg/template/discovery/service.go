package discovery

import (
	"context"
	"sort"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/menoncello/nimata-sub006/pkg/logging"
)

var log = logging.GetLogger("template.discovery")

// DefaultWorkers bounds concurrent metadata extraction when the caller
// configures nothing.
const DefaultWorkers = 8

// Options configures a discovery service. Zero values fall back to the
// package defaults.
type Options struct {
	Extensions []string
	IgnoreDirs []string
	Workers    int
}

// Service owns a template index and keeps it in sync with the filesystem.
// Discovery passes over the same service must be serialized by the caller;
// the index itself is safe for concurrent reads.
type Service struct {
	scanner *Scanner
	index   *Index
	workers int
}

func NewService(opts Options) *Service {
	workers := opts.Workers
	if workers <= 0 {
		workers = DefaultWorkers
	}
	return &Service{
		scanner: NewScanner(opts.Extensions, opts.IgnoreDirs),
		index:   NewIndex(),
		workers: workers,
	}
}

// Index exposes the service's template index.
func (s *Service) Index() *Index {
	return s.index
}

// Discover walks root, extracts metadata for every candidate file, and
// indexes the results. Files whose metadata cannot be extracted are
// skipped and logged; only a failed walk aborts the discovery.
func (s *Service) Discover(ctx context.Context, root string) ([]Metadata, error) {
	started := time.Now()

	candidates, err := s.scanner.Scan(root)
	if err != nil {
		return nil, err
	}

	metas := s.extractAll(ctx, candidates)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	for _, meta := range metas {
		s.index.Put(meta)
	}

	sortByPath(metas)
	log.Debug().
		Str("root", root).
		Int("candidates", len(candidates)).
		Int("indexed", len(metas)).
		Dur("elapsed", time.Since(started)).
		Msg("Discovery complete")
	return metas, nil
}

// RescanResult classifies the outcome of an incremental rescan.
type RescanResult struct {
	New      []Metadata
	Modified []Metadata
	Deleted  []string
}

// Rescan re-walks root and updates the index incrementally: files without
// an index entry are new, indexed files with mtime later than lastScan are
// modified, and indexed files no longer on disk are deleted. Unchanged
// files are not re-parsed.
func (s *Service) Rescan(ctx context.Context, root string, lastScan time.Time) (*RescanResult, error) {
	candidates, err := s.scanner.Scan(root)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool, len(candidates))
	var fresh, changed []Candidate
	for _, cand := range candidates {
		key := Normalize(cand.Path)
		seen[key] = true

		if _, ok := s.index.Get(key); !ok {
			fresh = append(fresh, cand)
		} else if cand.ModTime.After(lastScan) {
			changed = append(changed, cand)
		}
	}

	result := &RescanResult{
		New:      s.extractAll(ctx, fresh),
		Modified: s.extractAll(ctx, changed),
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	for _, meta := range result.New {
		s.index.Put(meta)
	}
	for _, meta := range result.Modified {
		s.index.Put(meta)
	}

	// Deleted files are a separate pass: prior index keys minus the
	// current enumeration.
	for _, path := range s.index.PathsUnder(root) {
		if !seen[path] {
			s.index.Remove(path)
			result.Deleted = append(result.Deleted, path)
		}
	}

	sortByPath(result.New)
	sortByPath(result.Modified)
	sort.Strings(result.Deleted)

	log.Debug().
		Str("root", root).
		Time("last_scan", lastScan).
		Int("new", len(result.New)).
		Int("modified", len(result.Modified)).
		Int("deleted", len(result.Deleted)).
		Msg("Rescan complete")
	return result, nil
}

// extractAll runs metadata extraction over candidates with bounded
// concurrency. Per-file failures are logged and dropped so one corrupt
// template cannot fail the batch; completion order does not matter because
// results are sorted by callers.
func (s *Service) extractAll(ctx context.Context, candidates []Candidate) []Metadata {
	if len(candidates) == 0 {
		return nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)

	var mu sync.Mutex
	metas := make([]Metadata, 0, len(candidates))

	for _, cand := range candidates {
		g.Go(func() error {
			if gctx.Err() != nil {
				return nil
			}
			meta, err := ParseMetadata(cand)
			if err != nil {
				log.Warn().Str("path", cand.Path).Err(err).Msg("Skipping template")
				return nil
			}
			mu.Lock()
			metas = append(metas, meta)
			mu.Unlock()
			return nil
		})
	}

	// Workers never return errors; failures are isolated per file
	_ = g.Wait()
	return metas
}

func sortByPath(metas []Metadata) {
	sort.Slice(metas, func(i, j int) bool { return metas[i].Path < metas[j].Path })
}
