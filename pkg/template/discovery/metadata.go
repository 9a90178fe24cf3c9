package discovery

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/menoncello/nimata-sub006/pkg/errors"
	"github.com/menoncello/nimata-sub006/pkg/template"
)

// manifestName is the optional per-directory file declaring template
// metadata the source itself cannot express.
const manifestName = "template.yaml"

// Metadata describes one discovered template file. Path is always the
// canonical absolute form.
type Metadata struct {
	Path        string    `json:"path"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Size        int64     `json:"size"`
	ModTime     time.Time `json:"mod_time"`
	Variables   []string  `json:"variables,omitempty"`
	Required    []string  `json:"required,omitempty"`
	Helpers     []string  `json:"helpers,omitempty"`
}

// Manifest is one entry of a template.yaml file, keyed by template file
// name in the directory it sits in.
type Manifest struct {
	Description string   `yaml:"description"`
	Required    []string `yaml:"required"`
}

// ParseMetadata builds the metadata record for one candidate: it analyzes
// the template source for referenced variables and helpers, then overlays
// declarations from the directory's manifest when one exists. Required
// combines the implied set (variables referenced outside conditional
// contexts) with the declared one.
func ParseMetadata(cand Candidate) (Metadata, error) {
	data, err := os.ReadFile(cand.Path)
	if err != nil {
		return Metadata{}, errors.Wrapf(err, errors.ErrTemplateUnreadable,
			"cannot read template %s", cand.Path)
	}

	manifest, err := loadManifest(filepath.Dir(cand.Path))
	if err != nil {
		return Metadata{}, err
	}

	analysis := template.Analyze(string(data))
	base := filepath.Base(cand.Path)

	meta := Metadata{
		Path:      Normalize(cand.Path),
		Name:      strings.TrimSuffix(base, filepath.Ext(base)),
		Size:      cand.Size,
		ModTime:   cand.ModTime,
		Variables: analysis.Variables,
		Required:  analysis.Required,
		Helpers:   analysis.Helpers,
	}

	if declared, ok := manifest[base]; ok {
		meta.Description = declared.Description
		meta.Required = mergeRequired(analysis.Required, declared.Required)
	}
	return meta, nil
}

// loadManifest reads a directory's template.yaml. A missing manifest is
// not an error; an unparsable one is, and poisons metadata extraction for
// every template in that directory.
func loadManifest(dir string) (map[string]Manifest, error) {
	path := filepath.Join(dir, manifestName)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.Wrapf(err, errors.ErrFileAccess,
			"cannot read template manifest %s", path)
	}

	var manifest map[string]Manifest
	if err := yaml.Unmarshal(data, &manifest); err != nil {
		return nil, errors.Wrapf(err, errors.ErrManifestInvalid,
			"invalid template manifest %s", path).
			WithSuggestion("fix the YAML syntax in template.yaml")
	}
	return manifest, nil
}

// mergeRequired unions implied and declared required variables, implied
// first, preserving order within each.
func mergeRequired(implied, declared []string) []string {
	seen := make(map[string]bool, len(implied)+len(declared))
	merged := make([]string, 0, len(implied)+len(declared))
	for _, list := range [][]string{implied, declared} {
		for _, name := range list {
			if name == "" || seen[name] {
				continue
			}
			seen[name] = true
			merged = append(merged, name)
		}
	}
	return merged
}
