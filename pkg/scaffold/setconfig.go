package scaffold

import (
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/menoncello/nimata-sub006/pkg/errors"
)

// SetConfigFile is the optional per-set configuration file at the root of a
// template type directory.
const SetConfigFile = "scaffold.toml"

// SetConfig carries the options a template set declares for itself: file
// name patterns to leave out of plans, and context values its templates can
// rely on when the project does not supply them.
type SetConfig struct {
	Ignore  []string       `toml:"ignore"`
	Context map[string]any `toml:"context"`
}

// LoadSetConfig reads the scaffold.toml under root. Template sets without
// one get the zero config.
func LoadSetConfig(root string) (SetConfig, error) {
	data, err := os.ReadFile(filepath.Join(root, SetConfigFile))
	if os.IsNotExist(err) {
		return SetConfig{}, nil
	}
	if err != nil {
		return SetConfig{}, errors.Wrapf(err, errors.ErrConfigLoad,
			"failed to read %s under %s", SetConfigFile, root)
	}

	var cfg SetConfig
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return SetConfig{}, errors.Wrapf(err, errors.ErrConfigParse,
			"failed to parse %s under %s", SetConfigFile, root).
			WithSuggestion("check the file for TOML syntax errors")
	}
	return cfg, nil
}

// Ignored checks if a template file name matches one of the set's ignore
// patterns.
func (c SetConfig) Ignored(filename string) bool {
	for _, pattern := range c.Ignore {
		if matched, _ := filepath.Match(pattern, filename); matched {
			return true
		}
	}
	return false
}
