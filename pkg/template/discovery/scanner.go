package discovery

import (
	"io/fs"
	"path/filepath"
	"strings"
	"time"

	"github.com/menoncello/nimata-sub006/pkg/errors"
)

// DefaultExtensions is the template file allow-list used when the caller
// configures none. It mirrors the embedded configuration defaults.
var DefaultExtensions = []string{".tmpl", ".tpl", ".template", ".hbs"}

// DefaultIgnoreDirs lists directory names a scan never descends into.
var DefaultIgnoreDirs = []string{
	"node_modules", ".git", "dist", "build", "out", "coverage", "vendor", ".next",
}

// Candidate is a template file found by a scan, before metadata extraction.
type Candidate struct {
	Path    string
	Size    int64
	ModTime time.Time
}

// Scanner enumerates candidate template files under a root directory.
type Scanner struct {
	extensions map[string]struct{}
	ignoreDirs map[string]struct{}
}

// NewScanner builds a scanner; empty slices fall back to the defaults.
func NewScanner(extensions, ignoreDirs []string) *Scanner {
	if len(extensions) == 0 {
		extensions = DefaultExtensions
	}
	if len(ignoreDirs) == 0 {
		ignoreDirs = DefaultIgnoreDirs
	}

	s := &Scanner{
		extensions: make(map[string]struct{}, len(extensions)),
		ignoreDirs: make(map[string]struct{}, len(ignoreDirs)),
	}
	for _, ext := range extensions {
		s.extensions[strings.ToLower(ext)] = struct{}{}
	}
	for _, dir := range ignoreDirs {
		s.ignoreDirs[dir] = struct{}{}
	}
	return s
}

// Scan walks root and returns every candidate file in lexical order:
// extension on the allow-list, name not starting with a dot, and not under
// an ignored directory. Unreadable entries below the root are skipped.
func (s *Scanner) Scan(root string) ([]Candidate, error) {
	var candidates []Candidate

	walkErr := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == root {
				return err
			}
			log.Warn().Str("path", path).Err(err).Msg("Skipping unreadable entry")
			return nil
		}

		if d.IsDir() {
			if path != root && s.IsIgnoredDir(d.Name()) {
				return filepath.SkipDir
			}
			return nil
		}

		if !s.IsCandidateName(d.Name()) {
			return nil
		}

		info, err := d.Info()
		if err != nil {
			log.Warn().Str("path", path).Err(err).Msg("Skipping file without stat info")
			return nil
		}

		candidates = append(candidates, Candidate{
			Path:    path,
			Size:    info.Size(),
			ModTime: info.ModTime(),
		})
		return nil
	})

	if walkErr != nil {
		return nil, errors.Wrapf(walkErr, errors.ErrScanFailed,
			"failed to scan templates under %s", root).
			WithSuggestion("check that the templates directory exists and is readable")
	}
	return candidates, nil
}

// IsCandidateName reports whether a file name qualifies as a template.
func (s *Scanner) IsCandidateName(name string) bool {
	if strings.HasPrefix(name, ".") {
		return false
	}
	_, ok := s.extensions[strings.ToLower(filepath.Ext(name))]
	return ok
}

// IsIgnoredDir reports whether a directory name is excluded from scans.
func (s *Scanner) IsIgnoredDir(name string) bool {
	_, ok := s.ignoreDirs[name]
	return ok
}
