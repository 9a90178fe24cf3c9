package generators

import (
	"github.com/menoncello/nimata-sub006/pkg/project"
	"github.com/menoncello/nimata-sub006/pkg/registry"
)

const claudeSource = `# {{name}}

A {{projectType}} TypeScript project.

## Commands

- ` + "`{{installCommand}}`" + ` installs dependencies
- ` + "`{{testCommand}}`" + ` runs the test suite
- the build output goes to ` + "`dist/`" + `; never edit generated files

## Conventions

- quality level: {{quality}}
{{#if strict}}- the compiler and linter run in strict mode; keep ` + "`any`" + ` out of new code
{{/if}}- source lives in ` + "`src/`" + `, tests sit next to the code they cover
- use {{packageManager}} for every package operation
{{#if license}}
## License

{{license}}
{{/if}}`

const copilotSource = `# Instructions for {{name}}

This is a {{projectType}} TypeScript project using {{packageManager}}.

- Install dependencies with ` + "`{{installCommand}}`" + `.
- Run tests with ` + "`{{testCommand}}`" + ` before suggesting a change is done.
- Keep code in ` + "`src/`" + ` and tests alongside the files they test.
{{#if strict}}- Strict mode is on: avoid ` + "`any`" + ` and add explicit return types.
{{/if}}`

func init() {
	registry.MustRegister(builtin, "claude-instructions", Generator{
		Name:   "claude-instructions",
		Path:   "CLAUDE.md",
		Source: claudeSource,
		Applies: func(cfg project.Config) bool {
			return cfg.HasAssistant(project.AssistantClaude)
		},
	})

	registry.MustRegister(builtin, "copilot-instructions", Generator{
		Name:   "copilot-instructions",
		Path:   ".github/copilot-instructions.md",
		Source: copilotSource,
		Applies: func(cfg project.Config) bool {
			return cfg.HasAssistant(project.AssistantCopilot)
		},
	})
}
