// Package paths provides centralized path handling for nimata.
//
// This package implements the XDG Base Directory specification and provides
// a consistent API for all path operations throughout the nimata codebase.
// It handles:
//
//   - User template root discovery and configuration
//   - XDG directory structure (data, config, cache, state)
//   - Home expansion for user-supplied paths
//   - Index cache and lock file locations
//
// # Environment Variables
//
// The package respects the following environment variables:
//
//   - NIMATA_TEMPLATES_DIR: Location of user template packs (default: $XDG_DATA_HOME/nimata/templates)
//   - NIMATA_DATA_DIR: Override XDG data directory (default: $XDG_DATA_HOME/nimata)
//   - NIMATA_CONFIG_DIR: Override XDG config directory (default: $XDG_CONFIG_HOME/nimata)
//   - NIMATA_CACHE_DIR: Override XDG cache directory (default: $XDG_CACHE_HOME/nimata)
//
// # XDG Base Directory Structure
//
// nimata follows the XDG Base Directory specification:
//
//   - Data: $XDG_DATA_HOME/nimata (user template packs)
//   - Config: $XDG_CONFIG_HOME/nimata (user configuration)
//   - Cache: $XDG_CACHE_HOME/nimata (template index cache)
//   - State: $XDG_STATE_HOME/nimata (log files)
//
// # Usage
//
//	import "github.com/menoncello/nimata-sub006/pkg/paths"
//
//	// Create a new Paths instance
//	p, err := paths.New("")  // Resolve template root from env/XDG
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Get various paths
//	root := p.TemplatesRoot()   // /home/user/.local/share/nimata/templates
//	cache := p.IndexCachePath() // /home/user/.cache/nimata/index.json
package paths
