// pkg/project/project_test.go
// TEST TYPE: Unit Tests
// DEPENDENCIES: None
// PURPOSE: Project model validation, defaults seeding, and render context

package project_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/menoncello/nimata-sub006/pkg/config"
	"github.com/menoncello/nimata-sub006/pkg/errors"
	"github.com/menoncello/nimata-sub006/pkg/project"
	"github.com/menoncello/nimata-sub006/pkg/template"
	"github.com/menoncello/nimata-sub006/pkg/testutil"
)

func validConfig() project.Config {
	return project.Config{
		Name:           "my-app",
		Dir:            "/tmp/my-app",
		Type:           project.TypeBasic,
		Quality:        project.QualityStandard,
		Assistants:     []project.Assistant{project.AssistantClaude},
		PackageManager: project.PackageManagerNpm,
		License:        "MIT",
		Author:         "Ana",
	}
}

func TestValidateName(t *testing.T) {
	valid := []string{
		"app",
		"my-app",
		"app2",
		"a.b_c",
		"@scope/pkg",
		"2fast",
	}
	for _, name := range valid {
		t.Run("valid_"+name, func(t *testing.T) {
			assert.NoError(t, project.ValidateName(name))
		})
	}

	invalid := []string{
		"",
		"My-App",
		".hidden",
		"_private",
		"-leading",
		"has space",
		"@/pkg",
		"@Scope/pkg",
		strings.Repeat("a", 215),
	}
	for _, name := range invalid {
		t.Run("invalid_"+name, func(t *testing.T) {
			err := project.ValidateName(name)
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, errors.ErrProjectInvalid))
		})
	}
}

func TestConfigValidate(t *testing.T) {
	t.Run("valid_config_passes", func(t *testing.T) {
		assert.NoError(t, validConfig().Validate())
	})

	t.Run("unknown_enum_values_fail", func(t *testing.T) {
		cases := map[string]func(*project.Config){
			"type":            func(c *project.Config) { c.Type = "desktop" },
			"quality":         func(c *project.Config) { c.Quality = "extreme" },
			"package_manager": func(c *project.Config) { c.PackageManager = "cargo" },
			"assistant":       func(c *project.Config) { c.Assistants = []project.Assistant{"cortana"} },
		}
		for name, mutate := range cases {
			t.Run(name, func(t *testing.T) {
				cfg := validConfig()
				mutate(&cfg)
				err := cfg.Validate()
				require.Error(t, err)
				assert.True(t, errors.IsErrorCode(err, errors.ErrProjectInvalid))
			})
		}
	})

	t.Run("no_assistants_is_fine", func(t *testing.T) {
		cfg := validConfig()
		cfg.Assistants = nil
		assert.NoError(t, cfg.Validate())
	})
}

func TestParseHelpers(t *testing.T) {
	typ, err := project.ParseType("  CLI ")
	require.NoError(t, err)
	assert.Equal(t, project.TypeCLI, typ)

	quality, err := project.ParseQuality("Strict")
	require.NoError(t, err)
	assert.Equal(t, project.QualityStrict, quality)

	_, err = project.ParseType("desktop")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrProjectInvalid))

	pm, err := project.ParsePackageManager("PNPM")
	require.NoError(t, err)
	assert.Equal(t, project.PackageManagerPnpm, pm)
}

func TestFromDefaults(t *testing.T) {
	cfg := project.FromDefaults(config.DefaultsConfig{
		ProjectType:    "CLI",
		Quality:        "standard",
		Assistants:     []string{"Claude", "copilot"},
		PackageManager: "pnpm",
		License:        " MIT ",
		Author:         "Ana",
	})

	assert.Equal(t, project.TypeCLI, cfg.Type)
	assert.Equal(t, project.QualityStandard, cfg.Quality)
	assert.Equal(t, []project.Assistant{project.AssistantClaude, project.AssistantCopilot}, cfg.Assistants)
	assert.Equal(t, project.PackageManagerPnpm, cfg.PackageManager)
	assert.Equal(t, "MIT", cfg.License)

	// Bad defaults are kept so Validate can report them.
	bad := project.FromDefaults(config.DefaultsConfig{ProjectType: "desktop"})
	assert.Error(t, bad.Validate())
}

func TestCheckTarget(t *testing.T) {
	t.Run("missing_directory_is_fine", func(t *testing.T) {
		cfg := validConfig()
		cfg.Dir = testutil.RelPath(t.TempDir(), "not-there-yet")
		assert.NoError(t, cfg.CheckTarget(false))
	})

	t.Run("empty_directory_is_fine", func(t *testing.T) {
		cfg := validConfig()
		cfg.Dir = t.TempDir()
		assert.NoError(t, cfg.CheckTarget(false))
	})

	t.Run("existing_file_fails", func(t *testing.T) {
		dir := t.TempDir()
		cfg := validConfig()
		cfg.Dir = testutil.CreateFile(t, dir, "my-app", "not a directory")

		err := cfg.CheckTarget(false)
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrProjectExists))
	})

	t.Run("non_empty_directory_needs_force", func(t *testing.T) {
		dir := t.TempDir()
		testutil.CreateFile(t, dir, "README.md", "existing")
		cfg := validConfig()
		cfg.Dir = dir

		err := cfg.CheckTarget(false)
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrTargetNotEmpty))
		assert.Contains(t, errors.GetSuggestion(err), "--force")

		assert.NoError(t, cfg.CheckTarget(true))
	})
}

func TestCommands(t *testing.T) {
	cfg := validConfig()
	assert.Equal(t, "npm install", cfg.InstallCommand())
	assert.Equal(t, "npm run test", cfg.RunCommand("test"))

	cfg.PackageManager = project.PackageManagerYarn
	assert.Equal(t, "yarn", cfg.InstallCommand())
	assert.Equal(t, "yarn build", cfg.RunCommand("build"))

	cfg.PackageManager = project.PackageManagerBun
	assert.Equal(t, "bun install", cfg.InstallCommand())
	assert.Equal(t, "bun run lint", cfg.RunCommand("lint"))
}

func TestTemplateContext(t *testing.T) {
	cfg := validConfig()
	cfg.Quality = project.QualityStrict
	ctx := cfg.TemplateContext()

	assert.Equal(t, "my-app", ctx["name"])
	assert.Equal(t, "basic", ctx["projectType"])
	assert.Equal(t, true, ctx["isBasic"])
	assert.Equal(t, false, ctx["isCli"])
	assert.Equal(t, true, ctx["strict"])
	assert.Equal(t, true, ctx["hasClaude"])
	assert.Equal(t, false, ctx["hasCopilot"])
	assert.Equal(t, []string{"claude"}, ctx["assistants"])
	assert.Equal(t, "npm install", ctx["installCommand"])

	// The context renders the way templates expect.
	eng := template.New(0)
	out := eng.Render("{{name}} ({{projectType}}/{{quality}}){{#if hasClaude}} +claude{{/if}}", ctx)
	assert.Equal(t, "my-app (basic/strict) +claude", out)

	out = eng.Render("{{#each assistants}}[{{this}}]{{/each}}", ctx)
	assert.Equal(t, "[claude]", out)
}
