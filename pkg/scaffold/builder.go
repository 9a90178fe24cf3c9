package scaffold

import (
	"path/filepath"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/menoncello/nimata-sub006/pkg/errors"
	"github.com/menoncello/nimata-sub006/pkg/generators"
	"github.com/menoncello/nimata-sub006/pkg/logging"
	"github.com/menoncello/nimata-sub006/pkg/project"
	"github.com/menoncello/nimata-sub006/pkg/template"
	"github.com/menoncello/nimata-sub006/pkg/template/discovery"
)

var log = logging.GetLogger("scaffold.builder")

// Builder assembles scaffold plans.
type Builder struct {
	engine     *template.Engine
	extensions map[string]bool
}

// NewBuilder creates a plan builder rendering through eng. The extension
// list tells the builder which suffix to strip from template file names;
// nil means the discovery defaults.
func NewBuilder(eng *template.Engine, extensions []string) *Builder {
	if len(extensions) == 0 {
		extensions = discovery.DefaultExtensions
	}
	set := make(map[string]bool, len(extensions))
	for _, ext := range extensions {
		set[strings.ToLower(ext)] = true
	}
	return &Builder{engine: eng, extensions: set}
}

// Build assembles the plan for cfg. Builtin generators that apply to the
// project go in first; discovered templates under templatesRoot are
// rendered with the project context and win over generators when both
// produce the same path. A scaffold.toml at the set root can exclude
// templates and seed context defaults. Build never writes to disk.
func (b *Builder) Build(cfg project.Config, templatesRoot string, templates []discovery.Metadata) (*Plan, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	set, err := LoadSetConfig(templatesRoot)
	if err != nil {
		return nil, err
	}

	ctx := cfg.TemplateContext()
	// Project values win over set defaults.
	for key, value := range set.Context {
		if _, ok := ctx[key]; !ok {
			ctx[key] = value
		}
	}

	files := make(map[string]Action)

	for _, gen := range generators.ForProject(cfg) {
		rel := filepath.FromSlash(gen.Path)
		files[rel] = Action{
			Type:    ActionWriteFile,
			Target:  filepath.Join(cfg.Dir, rel),
			Content: gen.Render(b.engine, cfg),
			Mode:    0o644,
			Source:  "generator:" + gen.Name,
		}
	}

	for _, meta := range templates {
		if set.Ignored(filepath.Base(meta.Path)) {
			log.Debug().Str("template", meta.Path).Msg("Template ignored by scaffold.toml")
			continue
		}
		rel, err := b.outputPath(templatesRoot, meta.Path)
		if err != nil {
			return nil, err
		}
		content, err := b.engine.RenderFile(meta.Path, ctx)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrScaffoldPlan,
				"cannot render template %s", meta.Path)
		}
		files[rel] = Action{
			Type:    ActionWriteFile,
			Target:  filepath.Join(cfg.Dir, rel),
			Content: content,
			Mode:    0o644,
			Source:  "template:" + meta.Path,
		}
	}

	plan := &Plan{ID: uuid.NewString(), Project: cfg}
	plan.Actions = append(plan.Actions, dirActions(cfg.Dir, files)...)
	plan.Actions = append(plan.Actions, fileActions(files)...)

	dirs, fileCount := plan.Summary()
	log.Debug().
		Str("plan", plan.ID).
		Str("project", cfg.Name).
		Int("dirs", dirs).
		Int("files", fileCount).
		Msg("Assembled scaffold plan")

	return plan, nil
}

// outputPath maps a template file to its project-relative output path,
// stripping the template extension. Templates outside the root would
// escape the project directory, so they are rejected.
func (b *Builder) outputPath(root, path string) (string, error) {
	rel, err := filepath.Rel(root, path)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", errors.Newf(errors.ErrScaffoldPlan,
			"template %s is outside the template root %s", path, root)
	}
	if ext := filepath.Ext(rel); b.extensions[strings.ToLower(ext)] {
		rel = strings.TrimSuffix(rel, ext)
	}
	return rel, nil
}

// dirActions returns create_dir actions for the project root and every
// parent directory a file needs, parents before children.
func dirActions(projectDir string, files map[string]Action) []Action {
	dirSet := make(map[string]bool)
	for rel := range files {
		for dir := filepath.Dir(rel); dir != "." && dir != string(filepath.Separator); dir = filepath.Dir(dir) {
			dirSet[dir] = true
		}
	}

	dirs := make([]string, 0, len(dirSet))
	for dir := range dirSet {
		dirs = append(dirs, dir)
	}
	// Lexicographic order puts each parent before its children.
	sort.Strings(dirs)

	actions := []Action{{Type: ActionCreateDir, Target: projectDir, Mode: 0o755, Source: "project root"}}
	for _, dir := range dirs {
		actions = append(actions, Action{
			Type:   ActionCreateDir,
			Target: filepath.Join(projectDir, dir),
			Mode:   0o755,
			Source: "parent of " + dir,
		})
	}
	return actions
}

func fileActions(files map[string]Action) []Action {
	rels := make([]string, 0, len(files))
	for rel := range files {
		rels = append(rels, rel)
	}
	sort.Strings(rels)

	actions := make([]Action, 0, len(rels))
	for _, rel := range rels {
		actions = append(actions, files[rel])
	}
	return actions
}
