// pkg/scaffold/scaffold_test.go
// TEST TYPE: Unit Tests
// DEPENDENCIES: None
// PURPOSE: Plan assembly ordering/overrides and synthfs execution (incl. dry run)

package scaffold_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/menoncello/nimata-sub006/pkg/errors"
	"github.com/menoncello/nimata-sub006/pkg/project"
	"github.com/menoncello/nimata-sub006/pkg/scaffold"
	"github.com/menoncello/nimata-sub006/pkg/template"
	"github.com/menoncello/nimata-sub006/pkg/template/discovery"
	"github.com/menoncello/nimata-sub006/pkg/testutil"
)

func scaffoldProject(dir string) project.Config {
	return project.Config{
		Name:           "my-app",
		Dir:            filepath.Join(dir, "my-app"),
		Type:           project.TypeBasic,
		Quality:        project.QualityStandard,
		Assistants:     []project.Assistant{project.AssistantClaude},
		PackageManager: project.PackageManagerNpm,
		License:        "MIT",
		Author:         "Ana",
	}
}

func metadataFor(paths ...string) []discovery.Metadata {
	metas := make([]discovery.Metadata, len(paths))
	for i, p := range paths {
		metas[i] = discovery.Metadata{Path: p}
	}
	return metas
}

func TestBuildPlan(t *testing.T) {
	builder := scaffold.NewBuilder(template.New(0), nil)

	t.Run("orders_dirs_before_files", func(t *testing.T) {
		tmp := t.TempDir()
		root := testutil.RelPath(tmp, "templates", "basic")
		index := testutil.CreateFile(t, testutil.RelPath(root, "src"), "index.ts.tmpl",
			"export const name = \"{{name}}\";\n")
		readme := testutil.CreateFile(t, root, "README.md.tmpl", "# {{name}}\n")

		cfg := scaffoldProject(tmp)
		plan, err := builder.Build(cfg, root, metadataFor(index, readme))
		require.NoError(t, err)
		assert.NotEmpty(t, plan.ID)

		var targets []string
		for _, action := range plan.Actions {
			if action.Type == scaffold.ActionCreateDir {
				targets = append(targets, action.Target)
			}
		}
		assert.Equal(t, []string{cfg.Dir, filepath.Join(cfg.Dir, "src")}, targets)

		var files []string
		for _, action := range plan.Actions {
			if action.Type == scaffold.ActionWriteFile {
				files = append(files, action.Target)
			}
		}
		assert.Equal(t, []string{
			filepath.Join(cfg.Dir, ".eslintrc.json"),
			filepath.Join(cfg.Dir, "CLAUDE.md"),
			filepath.Join(cfg.Dir, "README.md"),
			filepath.Join(cfg.Dir, "package.json"),
			filepath.Join(cfg.Dir, "src", "index.ts"),
			filepath.Join(cfg.Dir, "tsconfig.json"),
		}, files)

		dirs, fileCount := plan.Summary()
		assert.Equal(t, 2, dirs)
		assert.Equal(t, 6, fileCount)
	})

	t.Run("templates_render_with_project_context", func(t *testing.T) {
		tmp := t.TempDir()
		root := testutil.RelPath(tmp, "templates", "basic")
		index := testutil.CreateFile(t, root, "index.ts.tmpl", "export const name = \"{{name}}\";\n")

		plan, err := builder.Build(scaffoldProject(tmp), root, metadataFor(index))
		require.NoError(t, err)

		action := findFile(t, plan, "index.ts")
		assert.Equal(t, "export const name = \"my-app\";\n", action.Content)
		assert.Equal(t, "template:"+index, action.Source)
	})

	t.Run("template_overrides_generator_on_same_path", func(t *testing.T) {
		tmp := t.TempDir()
		root := testutil.RelPath(tmp, "templates", "basic")
		override := testutil.CreateFile(t, root, "package.json.tmpl", "{\"name\": \"{{name}}-custom\"}\n")

		plan, err := builder.Build(scaffoldProject(tmp), root, metadataFor(override))
		require.NoError(t, err)

		action := findFile(t, plan, "package.json")
		assert.Contains(t, action.Content, "my-app-custom")
		assert.Equal(t, "template:"+override, action.Source)
	})

	t.Run("template_outside_root_fails", func(t *testing.T) {
		tmp := t.TempDir()
		root := testutil.RelPath(tmp, "templates", "basic")
		stray := testutil.CreateFile(t, tmp, "evil.tmpl", "x")

		_, err := builder.Build(scaffoldProject(tmp), root, metadataFor(stray))
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrScaffoldPlan))
	})

	t.Run("unreadable_template_fails", func(t *testing.T) {
		tmp := t.TempDir()
		root := testutil.RelPath(tmp, "templates", "basic")

		_, err := builder.Build(scaffoldProject(tmp), root,
			metadataFor(testutil.RelPath(root, "gone.tmpl")))
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrScaffoldPlan))
	})

	t.Run("invalid_project_fails", func(t *testing.T) {
		tmp := t.TempDir()
		cfg := scaffoldProject(tmp)
		cfg.Name = "Bad Name"

		_, err := builder.Build(cfg, tmp, nil)
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrProjectInvalid))
	})
}

func TestSetConfig(t *testing.T) {
	builder := scaffold.NewBuilder(template.New(0), nil)

	t.Run("missing_file_is_zero_config", func(t *testing.T) {
		set, err := scaffold.LoadSetConfig(t.TempDir())
		require.NoError(t, err)
		assert.Empty(t, set.Ignore)
		assert.Empty(t, set.Context)
	})

	t.Run("bad_toml_fails", func(t *testing.T) {
		tmp := t.TempDir()
		testutil.CreateFile(t, tmp, scaffold.SetConfigFile, "ignore = [\n")

		_, err := scaffold.LoadSetConfig(tmp)
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigParse))
	})

	t.Run("ignored_templates_stay_out_of_the_plan", func(t *testing.T) {
		tmp := t.TempDir()
		root := testutil.RelPath(tmp, "templates", "basic")
		keep := testutil.CreateFile(t, root, "README.md.tmpl", "# {{name}}\n")
		skip := testutil.CreateFile(t, root, "NOTES.md.tmpl", "internal\n")
		testutil.CreateFile(t, root, scaffold.SetConfigFile, "ignore = [\"NOTES.*\"]\n")

		plan, err := builder.Build(scaffoldProject(tmp), root, metadataFor(keep, skip))
		require.NoError(t, err)

		for _, action := range plan.Actions {
			assert.NotEqual(t, "template:"+skip, action.Source)
		}
		findFile(t, plan, "README.md")
	})

	t.Run("set_context_fills_missing_keys_only", func(t *testing.T) {
		tmp := t.TempDir()
		root := testutil.RelPath(tmp, "templates", "basic")
		tmpl := testutil.CreateFile(t, root, "README.md.tmpl", "# {{name}} ({{channel}})\n")
		testutil.CreateFile(t, root, scaffold.SetConfigFile,
			"[context]\nchannel = \"stable\"\nname = \"shadowed\"\n")

		plan, err := builder.Build(scaffoldProject(tmp), root, metadataFor(tmpl))
		require.NoError(t, err)

		action := findFile(t, plan, "README.md")
		assert.Equal(t, "# my-app (stable)\n", action.Content)
	})
}

func findFile(t *testing.T, plan *scaffold.Plan, base string) scaffold.Action {
	t.Helper()
	for _, action := range plan.Actions {
		if action.Type == scaffold.ActionWriteFile && filepath.Base(action.Target) == base {
			return action
		}
	}
	t.Fatalf("no write_file action for %s in plan", base)
	return scaffold.Action{}
}

func TestExecute(t *testing.T) {
	builder := scaffold.NewBuilder(template.New(0), nil)

	buildPlan := func(t *testing.T, tmp string) *scaffold.Plan {
		t.Helper()
		root := testutil.RelPath(tmp, "templates", "basic")
		index := testutil.CreateFile(t, testutil.RelPath(root, "src"), "index.ts.tmpl",
			"export const name = \"{{name}}\";\n")
		plan, err := builder.Build(scaffoldProject(tmp), root, metadataFor(index))
		require.NoError(t, err)
		return plan
	}

	t.Run("dry_run_writes_nothing", func(t *testing.T) {
		tmp := t.TempDir()
		plan := buildPlan(t, tmp)

		err := scaffold.NewExecutor(true).Execute(context.Background(), plan)
		require.NoError(t, err)

		_, statErr := os.Stat(plan.Project.Dir)
		assert.True(t, os.IsNotExist(statErr), "dry run must not create the project directory")
	})

	t.Run("materializes_the_plan", func(t *testing.T) {
		tmp := t.TempDir()
		plan := buildPlan(t, tmp)

		err := scaffold.NewExecutor(false).Execute(context.Background(), plan)
		require.NoError(t, err)

		content, readErr := os.ReadFile(filepath.Join(plan.Project.Dir, "src", "index.ts"))
		require.NoError(t, readErr)
		assert.Equal(t, "export const name = \"my-app\";\n", string(content))

		for _, name := range []string{"package.json", "tsconfig.json", ".eslintrc.json", "CLAUDE.md"} {
			assert.FileExists(t, filepath.Join(plan.Project.Dir, name))
		}
	})

	t.Run("existing_directories_are_reused", func(t *testing.T) {
		tmp := t.TempDir()
		plan := buildPlan(t, tmp)
		require.NoError(t, os.MkdirAll(filepath.Join(plan.Project.Dir, "src"), 0o755))

		err := scaffold.NewExecutor(false).Execute(context.Background(), plan)
		require.NoError(t, err)
		assert.FileExists(t, filepath.Join(plan.Project.Dir, "src", "index.ts"))
	})

	t.Run("force_overwrites_existing_files", func(t *testing.T) {
		tmp := t.TempDir()
		plan := buildPlan(t, tmp)
		testutil.CreateFile(t, plan.Project.Dir, "package.json", "{\"stale\": true}")

		err := scaffold.NewExecutor(false).EnableForce(true).Execute(context.Background(), plan)
		require.NoError(t, err)

		content, readErr := os.ReadFile(filepath.Join(plan.Project.Dir, "package.json"))
		require.NoError(t, readErr)
		assert.Contains(t, string(content), "\"my-app\"")
		assert.NotContains(t, string(content), "stale")
	})

	t.Run("escaping_target_fails_before_writing", func(t *testing.T) {
		tmp := t.TempDir()
		plan := buildPlan(t, tmp)
		plan.Actions = append(plan.Actions, scaffold.Action{
			Type:   scaffold.ActionWriteFile,
			Target: filepath.Join(tmp, "outside.txt"),
			Mode:   0o644,
		})

		err := scaffold.NewExecutor(false).Execute(context.Background(), plan)
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrScaffoldExecute))
		assert.NoFileExists(t, filepath.Join(tmp, "outside.txt"))
		_, statErr := os.Stat(plan.Project.Dir)
		assert.True(t, os.IsNotExist(statErr), "validation failures must precede writes")
	})
}
