// Package config handles configuration management for nimata.
// It layers embedded defaults, the user config file, the project
// .nimata.toml, and NIMATA_* environment variables.
package config
