package style

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/pterm/pterm"

	"github.com/menoncello/nimata-sub006/pkg/errors"
	"github.com/menoncello/nimata-sub006/pkg/scaffold"
	"github.com/menoncello/nimata-sub006/pkg/template/discovery"
	"github.com/menoncello/nimata-sub006/pkg/validate"
)

// Renderer defines the interface for rendering various output types
type Renderer interface {
	RenderTemplateList(templates []discovery.Metadata, long bool) string
	RenderPlan(plan *scaffold.Plan) string
	RenderRescan(result *discovery.RescanResult) string
	RenderValidation(result validate.Result) string
	RenderError(err error) string
	RenderProgress(current, total int, message string) string
}

// TerminalRenderer implements Renderer with rich terminal output
type TerminalRenderer struct {
	width int
}

// NewTerminalRenderer creates a new terminal renderer
func NewTerminalRenderer() *TerminalRenderer {
	return &TerminalRenderer{
		width: 80, // Default width, can be updated
	}
}

// SetWidth updates the terminal width for rendering
func (r *TerminalRenderer) SetWidth(width int) {
	r.width = width
}

// RenderTemplateList renders the discovered templates
func (r *TerminalRenderer) RenderTemplateList(templates []discovery.Metadata, long bool) string {
	if len(templates) == 0 {
		return MutedStyle.Render("No templates found")
	}

	var result strings.Builder
	result.WriteString(TitleStyle.Render("Available Templates") + "\n\n")

	for _, meta := range templates {
		// Template name with icon
		nameLine := fmt.Sprintf("%s %s", pterm.Info.Prefix.Text, Bold(meta.Name))
		result.WriteString(nameLine + "\n")

		// Template path (indented and muted)
		if meta.Path != "" {
			result.WriteString(Indent(MutedStyle.Render(meta.Path), 1) + "\n")
		}

		if long {
			if meta.Description != "" {
				result.WriteString(Indent(NormalStyle.Render(meta.Description), 1) + "\n")
			}

			detail := fmt.Sprintf("%d bytes, modified %s", meta.Size, meta.ModTime.Format("2006-01-02 15:04"))
			result.WriteString(Indent(MutedStyle.Render(detail), 1) + "\n")

			if len(meta.Required) > 0 {
				required := RequiredStyle.Render("requires:") + " " + strings.Join(meta.Required, ", ")
				result.WriteString(Indent(required, 1) + "\n")
			}
			if len(meta.Helpers) > 0 {
				helpers := InfoStyle.Render("helpers:") + " " + strings.Join(meta.Helpers, ", ")
				result.WriteString(Indent(helpers, 1) + "\n")
			}
		}

		// Add spacing between templates
		result.WriteString("\n")
	}

	return strings.TrimRight(result.String(), "\n")
}

// RenderPlan renders the actions a scaffold run would perform
func (r *TerminalRenderer) RenderPlan(plan *scaffold.Plan) string {
	if plan == nil || len(plan.Actions) == 0 {
		return MutedStyle.Render("Nothing to scaffold")
	}

	var result strings.Builder
	result.WriteString(TitleStyle.Render("Scaffold plan for "+plan.Project.Name) + "\n\n")

	for _, action := range plan.Actions {
		result.WriteString(r.renderAction(action) + "\n")
	}

	dirs, files := plan.Summary()
	result.WriteString("\n" + MutedStyle.Render(fmt.Sprintf("%d directories, %d files", dirs, files)))

	return result.String()
}

// renderAction renders a single planned action
func (r *TerminalRenderer) renderAction(action scaffold.Action) string {
	// Choose style based on action type and artifact source
	var typeStyle lipgloss.Style
	var typeName string
	switch action.Type {
	case scaffold.ActionCreateDir:
		typeStyle = InfoStyle
		typeName = "dir"
	case scaffold.ActionWriteFile:
		typeName = "file"
		if strings.HasPrefix(action.Source, "template:") {
			typeStyle = TemplateStyle
		} else {
			typeStyle = GeneratorStyle
		}
	default:
		typeStyle = NormalStyle
		typeName = string(action.Type)
	}

	// Pad before styling so the escape codes don't skew the columns
	actionType := typeStyle.Render(fmt.Sprintf("%-4s", typeName))

	line := fmt.Sprintf("%s %s %s", PendingIndicator, actionType, PathStyle.Render(action.Target))
	if action.Type == scaffold.ActionWriteFile && action.Source != "" {
		line += " " + MutedStyle.Render("("+action.Source+")")
	}
	return line
}

// RenderRescan renders the changes an incremental rescan found
func (r *TerminalRenderer) RenderRescan(result *discovery.RescanResult) string {
	if result == nil || len(result.New)+len(result.Modified)+len(result.Deleted) == 0 {
		return MutedStyle.Render("No template changes")
	}

	var out strings.Builder
	for _, meta := range result.New {
		out.WriteString(fmt.Sprintf("%s %s %s\n", SuccessIndicator, SuccessStyle.Render("new"), PathStyle.Render(meta.Path)))
	}
	for _, meta := range result.Modified {
		out.WriteString(fmt.Sprintf("%s %s %s\n", WarningIndicator, WarningStyle.Render("modified"), PathStyle.Render(meta.Path)))
	}
	for _, path := range result.Deleted {
		out.WriteString(fmt.Sprintf("%s %s %s\n", ErrorIndicator, ErrorStyle.Render("deleted"), PathStyle.Render(path)))
	}

	return strings.TrimRight(out.String(), "\n")
}

// RenderValidation renders the findings for a single template
func (r *TerminalRenderer) RenderValidation(result validate.Result) string {
	if len(result.Issues) == 0 {
		return fmt.Sprintf("%s %s", SuccessIndicator, SuccessStyle.Render("template renders cleanly"))
	}

	var out strings.Builder
	out.WriteString(SubtitleStyle.Render(result.Template) + "\n")

	for _, issue := range result.Issues {
		subject := issue.Variable
		if subject == "" {
			subject = issue.Helper
		}
		out.WriteString(RenderStatusLine(SeverityStatus(issue.Severity), subject, issue.Message) + "\n")
	}

	summary := fmt.Sprintf("%d error(s), %d warning(s)", len(result.Errors()), len(result.Warnings()))
	out.WriteString(MutedStyle.Render(summary))

	return out.String()
}

// RenderError renders an error message
func (r *TerminalRenderer) RenderError(err error) string {
	if err == nil {
		return ""
	}

	// NimataError messages already carry their code prefix
	line := fmt.Sprintf("%s %s", pterm.Error.Prefix.Text, pterm.Error.MessageStyle.Sprint(err.Error()))

	if suggestion := errors.GetSuggestion(err); suggestion != "" {
		line += "\n" + Indent(MutedStyle.Render(suggestion), 1)
	}

	return line
}

// RenderProgress renders a progress indicator
func (r *TerminalRenderer) RenderProgress(current, total int, message string) string {
	// Progress bar
	percentage := float64(current) / float64(total)
	barWidth := 20
	filled := int(percentage * float64(barWidth))

	bar := strings.Repeat("█", filled) + strings.Repeat("░", barWidth-filled)

	return fmt.Sprintf("%s [%s] %d/%d %s",
		ProgressIndicator,
		pterm.Info.MessageStyle.Sprint(bar),
		current,
		total,
		message)
}

// PlainRenderer implements Renderer with plain text output (no styling)
type PlainRenderer struct{}

// NewPlainRenderer creates a new plain text renderer
func NewPlainRenderer() *PlainRenderer {
	return &PlainRenderer{}
}

// RenderTemplateList renders a plain list of templates
func (r *PlainRenderer) RenderTemplateList(templates []discovery.Metadata, long bool) string {
	if len(templates) == 0 {
		return "No templates found"
	}

	var result strings.Builder
	result.WriteString("Available Templates:\n")

	for _, meta := range templates {
		result.WriteString(fmt.Sprintf("  - %s\n", meta.Name))
		if long {
			result.WriteString(fmt.Sprintf("    %s\n", meta.Path))
			if len(meta.Required) > 0 {
				result.WriteString(fmt.Sprintf("    requires: %s\n", strings.Join(meta.Required, ", ")))
			}
		}
	}

	return strings.TrimRight(result.String(), "\n")
}

// RenderPlan renders a plain scaffold plan
func (r *PlainRenderer) RenderPlan(plan *scaffold.Plan) string {
	if plan == nil || len(plan.Actions) == 0 {
		return "Nothing to scaffold"
	}

	var result strings.Builder
	for _, action := range plan.Actions {
		if action.Source != "" {
			result.WriteString(fmt.Sprintf("%s: %s (%s)\n", action.Type, action.Target, action.Source))
		} else {
			result.WriteString(fmt.Sprintf("%s: %s\n", action.Type, action.Target))
		}
	}

	dirs, files := plan.Summary()
	result.WriteString(fmt.Sprintf("%d directories, %d files", dirs, files))

	return result.String()
}

// RenderRescan renders plain rescan changes
func (r *PlainRenderer) RenderRescan(result *discovery.RescanResult) string {
	if result == nil || len(result.New)+len(result.Modified)+len(result.Deleted) == 0 {
		return "No template changes"
	}

	var out strings.Builder
	for _, meta := range result.New {
		out.WriteString(fmt.Sprintf("new: %s\n", meta.Path))
	}
	for _, meta := range result.Modified {
		out.WriteString(fmt.Sprintf("modified: %s\n", meta.Path))
	}
	for _, path := range result.Deleted {
		out.WriteString(fmt.Sprintf("deleted: %s\n", path))
	}

	return strings.TrimRight(out.String(), "\n")
}

// RenderValidation renders plain validation findings
func (r *PlainRenderer) RenderValidation(result validate.Result) string {
	if len(result.Issues) == 0 {
		return "template renders cleanly"
	}

	var out strings.Builder
	for _, issue := range result.Issues {
		out.WriteString(issue.String() + "\n")
	}
	out.WriteString(fmt.Sprintf("%d error(s), %d warning(s)", len(result.Errors()), len(result.Warnings())))

	return out.String()
}

// RenderError renders a plain error message
func (r *PlainRenderer) RenderError(err error) string {
	if err == nil {
		return ""
	}

	line := fmt.Sprintf("Error: %s", err.Error())
	if suggestion := errors.GetSuggestion(err); suggestion != "" {
		line += "\nhint: " + suggestion
	}
	return line
}

// RenderProgress renders plain progress
func (r *PlainRenderer) RenderProgress(current, total int, message string) string {
	return fmt.Sprintf("Progress: %d/%d - %s", current, total, message)
}
