package generators

import (
	"sort"

	"github.com/menoncello/nimata-sub006/pkg/project"
	"github.com/menoncello/nimata-sub006/pkg/registry"
	"github.com/menoncello/nimata-sub006/pkg/template"
)

// Generator builds one project artifact from a template source and the
// project render context.
type Generator struct {
	// Name identifies the generator; it doubles as the registry key.
	Name string

	// Path is the artifact path relative to the project root.
	Path string

	// Source is rendered through the template engine with the project's
	// TemplateContext.
	Source string

	// Applies reports whether the artifact belongs in the given project.
	// Nil means always.
	Applies func(project.Config) bool
}

// Render produces the artifact content for cfg.
func (g Generator) Render(eng *template.Engine, cfg project.Config) string {
	return eng.Render(g.Source, cfg.TemplateContext())
}

// builtin holds every generator compiled into nimata. Files in this
// package register theirs from init.
var builtin = registry.New[Generator]()

// Register adds or replaces a generator under its name.
func Register(g Generator) error {
	return builtin.Put(g.Name, g)
}

// Get returns a registered generator by name.
func Get(name string) (Generator, error) {
	return builtin.Get(name)
}

// Names lists registered generator names in sorted order.
func Names() []string {
	return builtin.List()
}

// ForProject returns the generators that apply to cfg, ordered by
// artifact path so scaffold plans are stable.
func ForProject(cfg project.Config) []Generator {
	var out []Generator
	for _, name := range builtin.List() {
		g, err := builtin.Get(name)
		if err != nil {
			continue
		}
		if g.Applies == nil || g.Applies(cfg) {
			out = append(out, g)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Path < out[j].Path })
	return out
}
