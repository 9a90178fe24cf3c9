package cli

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Scaffold TypeScript and JavaScript projects from templates"
	MsgNewShort        = "Scaffold a new project"
	MsgRenderShort     = "Render a single template"
	MsgTemplatesShort  = "Manage the template library"
	MsgListShort       = "List indexed templates"
	MsgScanShort       = "Rebuild the template index from disk"
	MsgWatchShort      = "Keep the template index synchronized while editing"
	MsgValidateShort   = "Check a template against a render context"
	MsgInitShort       = "Write a starter .nimata.toml to the current directory"
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"
	MsgManShort        = "Generate man pages"

	// Status messages
	MsgDryRunNotice   = "\nDRY RUN MODE - No files were written"
	MsgProjectCreated = "\nProject '%s' created in %s\n"
	MsgNextSteps      = "\nNext steps:\n  cd %s\n  %s\n"
	MsgScanSummary    = "Indexed %d template(s) under %s in %s\n"
	MsgWatchStarted   = "Watching %s for template changes (ctrl-c to stop)\n"
	MsgIndexEmpty     = "No templates indexed yet; scanning %s\n"
	MsgConfigCreated  = "Created %s\n"

	// Flag descriptions
	MsgFlagVerbose        = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagDryRun         = "Preview changes without executing them"
	MsgFlagForce          = "Overwrite existing files and scaffold into non-empty directories"
	MsgFlagLong           = "Show metadata, required variables, and helpers per template"
	MsgFlagFormat         = "Output format (text or json)"
	MsgFlagFullScan       = "Rebuild the index from scratch instead of rescanning incrementally"
	MsgFlagOutput         = "Write the rendered output to a file instead of stdout"
	MsgFlagContextFile    = "YAML or JSON file with render context values"
	MsgFlagSet            = "Set a context value as key=value (repeatable)"
	MsgFlagType           = "Project type (basic, cli, web)"
	MsgFlagQuality        = "Quality level (light, standard, strict)"
	MsgFlagAssistants     = "AI assistants to generate instruction files for (claude, copilot)"
	MsgFlagPackageManager = "Package manager (npm, pnpm, yarn, bun)"
	MsgFlagLicense        = "SPDX license identifier for package.json"
	MsgFlagAuthor         = "Author name for package.json"
	MsgFlagDir            = "Target directory (defaults to ./<name>)"
	MsgFlagYes            = "Skip the wizard and accept configured defaults"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/new-long.txt
	msgNewLongRaw string
	MsgNewLong    = strings.TrimSpace(msgNewLongRaw)

	//go:embed msgs/new-example.txt
	msgNewExampleRaw string
	MsgNewExample    = strings.TrimRight(msgNewExampleRaw, "\n")

	//go:embed msgs/render-long.txt
	msgRenderLongRaw string
	MsgRenderLong    = strings.TrimSpace(msgRenderLongRaw)

	//go:embed msgs/render-example.txt
	msgRenderExampleRaw string
	MsgRenderExample    = strings.TrimRight(msgRenderExampleRaw, "\n")

	//go:embed msgs/templates-long.txt
	msgTemplatesLongRaw string
	MsgTemplatesLong    = strings.TrimSpace(msgTemplatesLongRaw)

	//go:embed msgs/init-long.txt
	msgInitLongRaw string
	MsgInitLong    = strings.TrimSpace(msgInitLongRaw)

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)
)
