package config

// Config is nimata's layered configuration, resolved from embedded defaults,
// the user config file, the project .nimata.toml, and NIMATA_* environment
// variables, in that order.
type Config struct {
	Templates TemplatesConfig `koanf:"templates"`
	Defaults  DefaultsConfig  `koanf:"defaults"`
}

// TemplatesConfig controls template discovery and engine caching.
type TemplatesConfig struct {
	// Extensions is the allow-list of template file extensions.
	Extensions []string `koanf:"extensions"`

	// IgnoreDirs lists directory names skipped during scans.
	IgnoreDirs []string `koanf:"ignore_dirs"`

	// ScanWorkers bounds concurrent metadata extraction during discovery.
	ScanWorkers int `koanf:"scan_workers"`

	// CacheSize is the number of parsed templates kept in the engine's LRU cache.
	CacheSize int `koanf:"cache_size"`
}

// DefaultsConfig supplies wizard defaults and generator context values.
type DefaultsConfig struct {
	ProjectType    string   `koanf:"project_type"`
	Quality        string   `koanf:"quality"`
	Assistants     []string `koanf:"assistants"`
	PackageManager string   `koanf:"package_manager"`
	License        string   `koanf:"license"`
	Author         string   `koanf:"author"`
}
