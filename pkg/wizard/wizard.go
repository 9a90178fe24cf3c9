// Package wizard collects project settings interactively. Every answer
// is preseeded from the configuration defaults, and runs without a
// terminal fall back to those defaults so scripted invocations never
// block on a prompt.
package wizard

import (
	"os"

	"github.com/mattn/go-isatty"
	"github.com/pterm/pterm"

	"github.com/menoncello/nimata-sub006/pkg/errors"
	"github.com/menoncello/nimata-sub006/pkg/logging"
	"github.com/menoncello/nimata-sub006/pkg/project"
)

var log = logging.GetLogger("wizard")

// Wizard drives the interactive project setup.
type Wizard struct {
	interactive bool
}

// New creates a wizard that prompts only when stdin and stdout are both
// terminals.
func New() *Wizard {
	return &Wizard{
		interactive: isatty.IsTerminal(os.Stdin.Fd()) && isatty.IsTerminal(os.Stdout.Fd()),
	}
}

// WithInteractive overrides terminal detection. The new command uses it
// for --yes.
func (w *Wizard) WithInteractive(on bool) *Wizard {
	w.interactive = on
	return w
}

// Interactive reports whether Run will prompt.
func (w *Wizard) Interactive() bool {
	return w.interactive
}

// Run prompts for every project setting, preselecting what seed carries.
// Without a terminal the seed comes back unchanged; validation stays
// with the caller either way.
func (w *Wizard) Run(seed project.Config) (project.Config, error) {
	if !w.interactive {
		log.Debug().Msg("Non-interactive run, keeping seed configuration")
		return seed, nil
	}

	cfg := seed

	name, err := w.askName(cfg.Name)
	if err != nil {
		return cfg, err
	}
	cfg.Name = name

	typ, err := askSelect("Project type", typeOptions(), string(cfg.Type))
	if err != nil {
		return cfg, err
	}
	cfg.Type = project.Type(typ)

	quality, err := askSelect("Quality level", qualityOptions(), string(cfg.Quality))
	if err != nil {
		return cfg, err
	}
	cfg.Quality = project.Quality(quality)

	assistants, err := pterm.DefaultInteractiveMultiselect.
		WithOptions(assistantOptions()).
		WithDefaultOptions(assistantStrings(cfg.Assistants)).
		Show("AI assistants")
	if err != nil {
		return cfg, wrapPrompt(err)
	}
	cfg.Assistants = nil
	for _, a := range assistants {
		cfg.Assistants = append(cfg.Assistants, project.Assistant(a))
	}

	pm, err := askSelect("Package manager", packageManagerOptions(), string(cfg.PackageManager))
	if err != nil {
		return cfg, err
	}
	cfg.PackageManager = project.PackageManager(pm)

	license, err := pterm.DefaultInteractiveTextInput.
		WithDefaultValue(cfg.License).
		Show("License (empty for none)")
	if err != nil {
		return cfg, wrapPrompt(err)
	}
	cfg.License = license

	author, err := pterm.DefaultInteractiveTextInput.
		WithDefaultValue(cfg.Author).
		Show("Author")
	if err != nil {
		return cfg, wrapPrompt(err)
	}
	cfg.Author = author

	log.Debug().
		Str("name", cfg.Name).
		Str("type", string(cfg.Type)).
		Str("quality", string(cfg.Quality)).
		Msg("Wizard answers collected")

	return cfg, nil
}

// askName keeps prompting until the answer passes name validation.
func (w *Wizard) askName(current string) (string, error) {
	for {
		input, err := pterm.DefaultInteractiveTextInput.
			WithDefaultValue(current).
			Show("Project name")
		if err != nil {
			return "", wrapPrompt(err)
		}
		if err := project.ValidateName(input); err != nil {
			pterm.Warning.Println(err.Error())
			continue
		}
		return input, nil
	}
}

func askSelect(label string, options []string, current string) (string, error) {
	prompt := pterm.DefaultInteractiveSelect.WithOptions(options)
	if current != "" {
		prompt = prompt.WithDefaultOption(current)
	}
	value, err := prompt.Show(label)
	if err != nil {
		return "", wrapPrompt(err)
	}
	return value, nil
}

func wrapPrompt(err error) error {
	return errors.Wrap(err, errors.ErrInvalidInput, "prompt aborted")
}

func typeOptions() []string {
	types := project.Types()
	out := make([]string, len(types))
	for i, t := range types {
		out[i] = string(t)
	}
	return out
}

func qualityOptions() []string {
	qualities := project.Qualities()
	out := make([]string, len(qualities))
	for i, q := range qualities {
		out[i] = string(q)
	}
	return out
}

func assistantOptions() []string {
	assistants := project.Assistants()
	out := make([]string, len(assistants))
	for i, a := range assistants {
		out[i] = string(a)
	}
	return out
}

func packageManagerOptions() []string {
	managers := project.PackageManagers()
	out := make([]string, len(managers))
	for i, p := range managers {
		out[i] = string(p)
	}
	return out
}

func assistantStrings(assistants []project.Assistant) []string {
	out := make([]string, len(assistants))
	for i, a := range assistants {
		out[i] = string(a)
	}
	return out
}
