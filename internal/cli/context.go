package cli

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/menoncello/nimata-sub006/pkg/errors"
	"github.com/menoncello/nimata-sub006/pkg/template"
)

// loadContext builds the template context for ad-hoc rendering. Values come
// from an optional YAML or JSON context file, with --set key=value pairs
// applied on top.
func loadContext(contextFile string, sets []string) (template.Context, error) {
	ctx := make(template.Context)

	if contextFile != "" {
		data, err := os.ReadFile(contextFile)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrFileAccess,
				"cannot read context file %s", contextFile)
		}
		switch strings.ToLower(filepath.Ext(contextFile)) {
		case ".json":
			if err := json.Unmarshal(data, &ctx); err != nil {
				return nil, errors.Wrapf(err, errors.ErrInvalidInput,
					"cannot parse context file %s", contextFile)
			}
		default:
			// YAML is the default; it also accepts JSON input.
			if err := yaml.Unmarshal(data, &ctx); err != nil {
				return nil, errors.Wrapf(err, errors.ErrInvalidInput,
					"cannot parse context file %s", contextFile)
			}
		}
	}

	for _, pair := range sets {
		key, value, ok := strings.Cut(pair, "=")
		if !ok || key == "" {
			return nil, errors.Newf(errors.ErrInvalidInput, "invalid --set value %q", pair).
				WithSuggestion("use --set key=value")
		}
		ctx[key] = value
	}

	return ctx, nil
}
