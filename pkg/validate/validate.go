package validate

import (
	"fmt"
	"sort"
	"strings"

	"github.com/menoncello/nimata-sub006/pkg/template"
	"github.com/menoncello/nimata-sub006/pkg/template/discovery"
)

// Severity classifies a finding.
type Severity string

const (
	// SeverityError marks findings that would make a render produce wrong
	// output, such as a required variable the context does not supply.
	SeverityError Severity = "error"
	// SeverityWarning marks findings that render fine but look unintended.
	SeverityWarning Severity = "warning"
)

// Issue is a single finding from checking a template against a context.
type Issue struct {
	// Template is the name or path of the checked template, when known.
	Template string `json:"template,omitempty"`
	// Variable is the dotted path that caused the finding, if any.
	Variable string `json:"variable,omitempty"`
	// Helper is the helper name that caused the finding, if any.
	Helper string `json:"helper,omitempty"`
	// Message is a human-readable description of the finding.
	Message string `json:"message"`
	// Severity is SeverityError or SeverityWarning.
	Severity Severity `json:"severity"`
}

func (i Issue) String() string {
	return fmt.Sprintf("%s: %s", i.Severity, i.Message)
}

// Result collects every finding for one template.
type Result struct {
	Template string  `json:"template,omitempty"`
	Issues   []Issue `json:"issues"`
}

// OK reports whether the result carries no error-severity issues.
// Warnings alone do not fail validation.
func (r Result) OK() bool {
	for _, issue := range r.Issues {
		if issue.Severity == SeverityError {
			return false
		}
	}
	return true
}

// Errors returns the error-severity issues in reporting order.
func (r Result) Errors() []Issue {
	return r.filter(SeverityError)
}

// Warnings returns the warning-severity issues in reporting order.
func (r Result) Warnings() []Issue {
	return r.filter(SeverityWarning)
}

func (r Result) filter(sev Severity) []Issue {
	var out []Issue
	for _, issue := range r.Issues {
		if issue.Severity == sev {
			out = append(out, issue)
		}
	}
	return out
}

// Validator checks templates against render contexts. It snapshots the
// helper names known to an engine at construction time, so helpers
// registered later are not visible to it.
type Validator struct {
	helpers map[string]bool
}

// New builds a Validator that treats the engine's registered helpers as
// known. A nil engine means no helpers are known.
func New(eng *template.Engine) *Validator {
	v := &Validator{helpers: make(map[string]bool)}
	if eng != nil {
		for _, name := range eng.Helpers() {
			v.helpers[name] = true
		}
	}
	return v
}

// Validate analyzes source and checks it against ctx. The name is carried
// into the result and its issues for reporting and may be empty.
func (v *Validator) Validate(name, source string, ctx template.Context) Result {
	analysis := template.Analyze(source)
	return v.check(name, analysis.Variables, analysis.Required, analysis.Helpers, ctx)
}

// ValidateMetadata checks an indexed template against ctx using the
// analysis captured at discovery time. Requirements declared by the
// template's manifest are enforced even when the source never references
// the variable.
func (v *Validator) ValidateMetadata(meta discovery.Metadata, ctx template.Context) Result {
	return v.check(meta.Path, meta.Variables, meta.Required, meta.Helpers, ctx)
}

func (v *Validator) check(name string, vars, required, helpers []string, ctx template.Context) Result {
	res := Result{Template: name}

	req := make(map[string]bool, len(required))
	for _, path := range required {
		req[path] = true
	}

	seen := make(map[string]bool, len(vars))
	for _, path := range vars {
		seen[path] = true
		value, found := ctx.Resolve(path)
		switch {
		case !found && req[path]:
			res.Issues = append(res.Issues, Issue{
				Template: name,
				Variable: path,
				Message:  fmt.Sprintf("required variable %q is not supplied in the render context", path),
				Severity: SeverityError,
			})
		case found && value == nil:
			res.Issues = append(res.Issues, Issue{
				Template: name,
				Variable: path,
				Message:  fmt.Sprintf("variable %q is null and renders as its raw placeholder", path),
				Severity: SeverityWarning,
			})
		}
	}

	// Manifest-declared requirements that the source never references.
	for _, path := range required {
		if seen[path] {
			continue
		}
		seen[path] = true
		if _, found := ctx.Resolve(path); !found {
			res.Issues = append(res.Issues, Issue{
				Template: name,
				Variable: path,
				Message:  fmt.Sprintf("required variable %q is not supplied in the render context", path),
				Severity: SeverityError,
			})
		}
	}

	for _, helper := range helpers {
		if v.helpers[helper] {
			continue
		}
		res.Issues = append(res.Issues, Issue{
			Template: name,
			Helper:   helper,
			Message:  fmt.Sprintf("helper %q is not registered and renders as its raw placeholder", helper),
			Severity: SeverityError,
		})
	}

	for _, key := range unusedKeys(seen, ctx) {
		res.Issues = append(res.Issues, Issue{
			Template: name,
			Variable: key,
			Message:  fmt.Sprintf("context value %q is never referenced by the template", key),
			Severity: SeverityWarning,
		})
	}

	return res
}

// unusedKeys returns the top-level context keys that no referenced or
// required path starts from, sorted for stable reporting.
func unusedKeys(seen map[string]bool, ctx template.Context) []string {
	used := make(map[string]bool, len(seen))
	for path := range seen {
		root, _, _ := strings.Cut(path, ".")
		used[root] = true
	}

	var unused []string
	for key := range ctx {
		if !used[key] {
			unused = append(unused, key)
		}
	}
	sort.Strings(unused)
	return unused
}
