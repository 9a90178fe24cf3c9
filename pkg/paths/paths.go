// Package paths provides centralized path handling for nimata.
// It implements XDG Base Directory specification compliance and
// provides a consistent API for all path operations in the codebase.
package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"

	"github.com/menoncello/nimata-sub006/pkg/errors"
)

// Environment variable names
const (
	// EnvTemplatesRoot is the primary environment variable for the user template root
	EnvTemplatesRoot = "NIMATA_TEMPLATES_DIR"

	// EnvNimataDataDir overrides the XDG data directory for nimata
	EnvNimataDataDir = "NIMATA_DATA_DIR"

	// EnvNimataConfigDir overrides the XDG config directory for nimata
	EnvNimataConfigDir = "NIMATA_CONFIG_DIR"

	// EnvNimataCacheDir overrides the XDG cache directory for nimata
	EnvNimataCacheDir = "NIMATA_CACHE_DIR"

	// EnvHome is the standard home directory variable
	EnvHome = "HOME"
)

// Default directories and files
// IMPORTANT: These constants define nimata's on-disk layout and are NOT
// user-configurable. User-configurable paths belong in pkg/config instead.
const (
	// NimataDirName is the directory name for nimata-specific files
	NimataDirName = "nimata"

	// TemplatesDirName is the subdirectory holding user template packs
	TemplatesDirName = "templates"

	// ProjectConfigFile is the name of the per-project configuration file
	ProjectConfigFile = ".nimata.toml"

	// ConfigFileName is the name of the user configuration file
	ConfigFileName = "config.toml"

	// IndexCacheFile holds the persisted template index between runs
	IndexCacheFile = "index.json"

	// IndexLockFile serializes concurrent CLI processes touching the index cache
	IndexLockFile = "index.lock"

	// LogFileName is the name of the log file
	LogFileName = "nimata.log"
)

// Paths provides centralized path management for nimata
type Paths interface {
	TemplatesRoot() string
	DataDir() string
	ConfigDir() string
	CacheDir() string
	StateDir() string
	ConfigFilePath() string
	IndexCachePath() string
	IndexLockPath() string
	LogFilePath() string
	ProjectConfigPath(projectDir string) string
}

// paths provides centralized path management for nimata
type paths struct {
	// templatesRoot is the root directory for user template packs
	templatesRoot string

	// xdgData is the XDG data directory
	xdgData string

	// xdgConfig is the XDG config directory
	xdgConfig string

	// xdgCache is the XDG cache directory
	xdgCache string

	// xdgState is the XDG state directory
	xdgState string
}

// New creates a new Paths instance with the given template root.
// If templatesRoot is empty, it will be determined from environment
// variables or XDG defaults.
func New(templatesRoot string) (Paths, error) {
	p := &paths{}

	if err := p.setupXDGDirs(); err != nil {
		return nil, err
	}

	// Set up templates root
	if templatesRoot == "" {
		p.templatesRoot = findTemplatesRoot(p.xdgData)
	} else {
		p.templatesRoot = expandHome(templatesRoot)
	}

	// Ensure templates root is absolute
	absRoot, err := filepath.Abs(p.templatesRoot)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "failed to get absolute path for templates root")
	}
	p.templatesRoot = absRoot

	return p, nil
}

// setupXDGDirs initializes XDG directories, respecting environment overrides
func (p *paths) setupXDGDirs() error {
	// Data directory
	if dataDir := os.Getenv(EnvNimataDataDir); dataDir != "" {
		p.xdgData = expandHome(dataDir)
	} else {
		p.xdgData = filepath.Join(xdg.DataHome, NimataDirName)
	}

	// Config directory
	if configDir := os.Getenv(EnvNimataConfigDir); configDir != "" {
		p.xdgConfig = expandHome(configDir)
	} else {
		p.xdgConfig = filepath.Join(xdg.ConfigHome, NimataDirName)
	}

	// Cache directory
	if cacheDir := os.Getenv(EnvNimataCacheDir); cacheDir != "" {
		p.xdgCache = expandHome(cacheDir)
	} else {
		p.xdgCache = filepath.Join(xdg.CacheHome, NimataDirName)
	}

	// State directory - XDG doesn't provide StateHome, so we check manually
	if stateDir := os.Getenv("XDG_STATE_HOME"); stateDir != "" {
		p.xdgState = filepath.Join(stateDir, NimataDirName)
	} else {
		homeDir, _ := os.UserHomeDir()
		p.xdgState = filepath.Join(homeDir, ".local", "state", NimataDirName)
	}

	return nil
}

// findTemplatesRoot determines the user template root using the following priority:
// 1. NIMATA_TEMPLATES_DIR environment variable (if set)
// 2. <XDG data dir>/templates (default)
func findTemplatesRoot(dataDir string) string {
	if root := os.Getenv(EnvTemplatesRoot); root != "" {
		return expandHome(root)
	}

	return filepath.Join(dataDir, TemplatesDirName)
}

// expandHome expands ~ to the home directory
func expandHome(path string) string {
	if path == "" {
		return path
	}

	if path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			// Fallback to HOME env var
			homeDir = os.Getenv(EnvHome)
			if homeDir == "" {
				// Can't expand, return as-is
				return path
			}
		}

		if len(path) == 1 {
			return homeDir
		}

		// Handle both ~/ and ~
		if path[1] == '/' || path[1] == filepath.Separator {
			return filepath.Join(homeDir, path[2:])
		}

		// ~something (not the user's home)
		return path
	}

	return path
}

// TemplatesRoot returns the root directory for user template packs
func (p *paths) TemplatesRoot() string {
	return p.templatesRoot
}

// DataDir returns the XDG data directory for nimata
func (p *paths) DataDir() string {
	return p.xdgData
}

// ConfigDir returns the XDG config directory for nimata
func (p *paths) ConfigDir() string {
	return p.xdgConfig
}

// CacheDir returns the XDG cache directory for nimata
func (p *paths) CacheDir() string {
	return p.xdgCache
}

// StateDir returns the XDG state directory for nimata
func (p *paths) StateDir() string {
	return p.xdgState
}

// ConfigFilePath returns the path to the user configuration file
func (p *paths) ConfigFilePath() string {
	return filepath.Join(p.xdgConfig, ConfigFileName)
}

// IndexCachePath returns the path to the persisted template index
func (p *paths) IndexCachePath() string {
	return filepath.Join(p.xdgCache, IndexCacheFile)
}

// IndexLockPath returns the path to the index cache lock file
func (p *paths) IndexLockPath() string {
	return filepath.Join(p.xdgCache, IndexLockFile)
}

// LogFilePath returns the path to the log file
func (p *paths) LogFilePath() string {
	return filepath.Join(p.xdgState, LogFileName)
}

// ProjectConfigPath returns the path to a project's .nimata.toml
func (p *paths) ProjectConfigPath(projectDir string) string {
	return filepath.Join(projectDir, ProjectConfigFile)
}

// GetHomeDirectory returns the user's home directory
func GetHomeDirectory() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = os.Getenv(EnvHome)
		if homeDir == "" {
			return "", errors.Wrap(err, errors.ErrFileAccess, "cannot determine home directory")
		}
	}
	return homeDir, nil
}
