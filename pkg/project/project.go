package project

import (
	"strings"

	"github.com/menoncello/nimata-sub006/pkg/config"
	"github.com/menoncello/nimata-sub006/pkg/template"
)

// Config describes one project to scaffold.
type Config struct {
	// Name is the project name, used for the target directory and the
	// package.json name field.
	Name string

	// Dir is the target directory the project is scaffolded into.
	Dir string

	Type           Type
	Quality        Quality
	Assistants     []Assistant
	PackageManager PackageManager

	// License is an SPDX identifier such as MIT. Empty means unlicensed.
	License string

	// Author goes into package.json and generated instruction files.
	Author string
}

// FromDefaults seeds a Config from layered configuration defaults. The
// wizard and command flags refine it afterwards; Validate reports values
// the configuration got wrong.
func FromDefaults(d config.DefaultsConfig) Config {
	cfg := Config{
		Type:           Type(normalize(d.ProjectType)),
		Quality:        Quality(normalize(d.Quality)),
		PackageManager: PackageManager(normalize(d.PackageManager)),
		License:        strings.TrimSpace(d.License),
		Author:         strings.TrimSpace(d.Author),
	}
	for _, name := range d.Assistants {
		cfg.Assistants = append(cfg.Assistants, Assistant(normalize(name)))
	}
	return cfg
}

// HasAssistant reports whether the project includes instruction files
// for the given assistant.
func (c Config) HasAssistant(a Assistant) bool {
	for _, have := range c.Assistants {
		if have == a {
			return true
		}
	}
	return false
}

// InstallCommand returns the shell command that installs dependencies
// with the configured package manager.
func (c Config) InstallCommand() string {
	switch c.PackageManager {
	case PackageManagerPnpm:
		return "pnpm install"
	case PackageManagerYarn:
		return "yarn"
	case PackageManagerBun:
		return "bun install"
	default:
		return "npm install"
	}
}

// RunCommand returns the shell command that runs a package.json script
// with the configured package manager.
func (c Config) RunCommand(script string) string {
	switch c.PackageManager {
	case PackageManagerPnpm:
		return "pnpm " + script
	case PackageManagerYarn:
		return "yarn " + script
	case PackageManagerBun:
		return "bun run " + script
	default:
		return "npm run " + script
	}
}

// TemplateContext builds the render context the scaffolder feeds to the
// template engine. Conditions cannot compare strings, so every choice a
// template may branch on is exposed as a boolean.
func (c Config) TemplateContext() template.Context {
	assistants := make([]string, len(c.Assistants))
	for i, a := range c.Assistants {
		assistants[i] = string(a)
	}

	return template.Context{
		"name":           c.Name,
		"projectType":    string(c.Type),
		"isBasic":        c.Type == TypeBasic,
		"isCli":          c.Type == TypeCLI,
		"isWeb":          c.Type == TypeWeb,
		"quality":        string(c.Quality),
		"strict":         c.Quality == QualityStrict,
		"standard":       c.Quality == QualityStandard,
		"light":          c.Quality == QualityLight,
		"assistants":     assistants,
		"hasClaude":      c.HasAssistant(AssistantClaude),
		"hasCopilot":     c.HasAssistant(AssistantCopilot),
		"packageManager": string(c.PackageManager),
		"installCommand": c.InstallCommand(),
		"testCommand":    c.RunCommand("test"),
		"license":        c.License,
		"author":         c.Author,
	}
}
