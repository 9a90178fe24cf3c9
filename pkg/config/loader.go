package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/menoncello/nimata-sub006/pkg/errors"
	"github.com/menoncello/nimata-sub006/pkg/paths"
)

// envPrefix is the prefix for configuration environment variables.
// Nesting uses a double underscore: NIMATA_DEFAULTS__PROJECT_TYPE maps to
// defaults.project_type, leaving single underscores inside key names intact.
const envPrefix = "NIMATA_"

// LoadOptions selects which optional layers participate in a Load.
type LoadOptions struct {
	// UserConfigPath points at the user config file; skipped when empty
	// or when the file does not exist.
	UserConfigPath string

	// ProjectDir is searched for a .nimata.toml; skipped when empty or
	// when the file does not exist.
	ProjectDir string
}

// Load resolves the layered configuration: embedded defaults, then the user
// config file, then the project .nimata.toml, then NIMATA_* environment
// variables.
func Load(opts LoadOptions) (*Config, error) {
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load embedded defaults")
	}

	// 2. User config file
	if opts.UserConfigPath != "" {
		if _, err := os.Stat(opts.UserConfigPath); err == nil {
			if err := k.Load(file.Provider(opts.UserConfigPath), toml.Parser()); err != nil {
				return nil, errors.Wrapf(err, errors.ErrConfigParse,
					"failed to parse user config %s", opts.UserConfigPath).
					WithSuggestion("check the file for TOML syntax errors")
			}
		}
	}

	// 3. Project config file
	if opts.ProjectDir != "" {
		projectConfig := filepath.Join(opts.ProjectDir, paths.ProjectConfigFile)
		if _, err := os.Stat(projectConfig); err == nil {
			if err := k.Load(file.Provider(projectConfig), toml.Parser()); err != nil {
				return nil, errors.Wrapf(err, errors.ErrConfigParse,
					"failed to parse project config %s", projectConfig).
					WithSuggestion("check the file for TOML syntax errors")
			}
		}
	}

	// 4. Environment variables
	if err := k.Load(env.Provider(envPrefix, ".", envKeyTransform), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment variables")
	}

	return unmarshal(k)
}

// Default returns the embedded defaults without any overlay. It is the
// configuration used when no config files exist.
func Default() *Config {
	cfg, err := Load(LoadOptions{})
	if err != nil {
		// The embedded defaults are compiled in; failing to parse them is a
		// programming error.
		panic(err)
	}
	return cfg
}

func envKeyTransform(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, envPrefix))
	return strings.ReplaceAll(s, "__", ".")
}

func unmarshal(k *koanf.Koanf) (*Config, error) {
	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToSliceHookFunc(","),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal configuration")
	}

	return &cfg, nil
}
