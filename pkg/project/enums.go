package project

import (
	"strings"

	"github.com/menoncello/nimata-sub006/pkg/errors"
)

// Type is the kind of project being scaffolded. It selects which template
// set discovery looks for.
type Type string

const (
	// TypeBasic is a plain TypeScript library or package.
	TypeBasic Type = "basic"

	// TypeCLI adds an executable entry point and argument parsing scaffolding.
	TypeCLI Type = "cli"

	// TypeWeb adds a web server entry point and static asset layout.
	TypeWeb Type = "web"
)

// Quality selects how strict the generated tooling configuration is.
type Quality string

const (
	// QualityLight keeps generated configs minimal.
	QualityLight Quality = "light"

	// QualityStandard is the default linting and compiler strictness.
	QualityStandard Quality = "standard"

	// QualityStrict turns on every strictness option the generators know.
	QualityStrict Quality = "strict"
)

// Assistant is an AI coding assistant the project carries instruction
// files for.
type Assistant string

const (
	AssistantClaude  Assistant = "claude"
	AssistantCopilot Assistant = "copilot"
)

// PackageManager is the JavaScript package manager the project is set up for.
type PackageManager string

const (
	PackageManagerNpm  PackageManager = "npm"
	PackageManagerPnpm PackageManager = "pnpm"
	PackageManagerYarn PackageManager = "yarn"
	PackageManagerBun  PackageManager = "bun"
)

// Valid reports whether t is a known project type.
func (t Type) Valid() bool {
	switch t {
	case TypeBasic, TypeCLI, TypeWeb:
		return true
	}
	return false
}

// Valid reports whether q is a known quality level.
func (q Quality) Valid() bool {
	switch q {
	case QualityLight, QualityStandard, QualityStrict:
		return true
	}
	return false
}

// Valid reports whether a is a known assistant.
func (a Assistant) Valid() bool {
	switch a {
	case AssistantClaude, AssistantCopilot:
		return true
	}
	return false
}

// Valid reports whether p is a known package manager.
func (p PackageManager) Valid() bool {
	switch p {
	case PackageManagerNpm, PackageManagerPnpm, PackageManagerYarn, PackageManagerBun:
		return true
	}
	return false
}

// Types lists the known project types in wizard display order.
func Types() []Type {
	return []Type{TypeBasic, TypeCLI, TypeWeb}
}

// Qualities lists the known quality levels from loosest to strictest.
func Qualities() []Quality {
	return []Quality{QualityLight, QualityStandard, QualityStrict}
}

// Assistants lists the known assistants.
func Assistants() []Assistant {
	return []Assistant{AssistantClaude, AssistantCopilot}
}

// PackageManagers lists the known package managers.
func PackageManagers() []PackageManager {
	return []PackageManager{PackageManagerNpm, PackageManagerPnpm, PackageManagerYarn, PackageManagerBun}
}

// ParseType parses user input into a project type, case-insensitively.
func ParseType(s string) (Type, error) {
	t := Type(normalize(s))
	if !t.Valid() {
		return "", errors.Newf(errors.ErrProjectInvalid, "unknown project type %q", s).
			WithDetail("valid", Types())
	}
	return t, nil
}

// ParseQuality parses user input into a quality level, case-insensitively.
func ParseQuality(s string) (Quality, error) {
	q := Quality(normalize(s))
	if !q.Valid() {
		return "", errors.Newf(errors.ErrProjectInvalid, "unknown quality level %q", s).
			WithDetail("valid", Qualities())
	}
	return q, nil
}

// ParseAssistant parses user input into an assistant, case-insensitively.
func ParseAssistant(s string) (Assistant, error) {
	a := Assistant(normalize(s))
	if !a.Valid() {
		return "", errors.Newf(errors.ErrProjectInvalid, "unknown assistant %q", s).
			WithDetail("valid", Assistants())
	}
	return a, nil
}

// ParsePackageManager parses user input into a package manager,
// case-insensitively.
func ParsePackageManager(s string) (PackageManager, error) {
	p := PackageManager(normalize(s))
	if !p.Valid() {
		return "", errors.Newf(errors.ErrProjectInvalid, "unknown package manager %q", s).
			WithDetail("valid", PackageManagers())
	}
	return p, nil
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
