package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/menoncello/nimata-sub006/pkg/project"
	"github.com/menoncello/nimata-sub006/pkg/scaffold"
	"github.com/menoncello/nimata-sub006/pkg/template/discovery"
	"github.com/menoncello/nimata-sub006/pkg/wizard"
)

func newNewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "new [name]",
		Short:   MsgNewShort,
		Long:    MsgNewLong,
		Example: MsgNewExample,
		Args:    cobra.MaximumNArgs(1),
		RunE:    runNew,
	}

	cmd.Flags().StringP("type", "t", "", MsgFlagType)
	cmd.Flags().StringP("quality", "q", "", MsgFlagQuality)
	cmd.Flags().StringSliceP("assistants", "a", nil, MsgFlagAssistants)
	cmd.Flags().StringP("package-manager", "p", "", MsgFlagPackageManager)
	cmd.Flags().String("license", "", MsgFlagLicense)
	cmd.Flags().String("author", "", MsgFlagAuthor)
	cmd.Flags().StringP("dir", "d", "", MsgFlagDir)
	cmd.Flags().BoolP("yes", "y", false, MsgFlagYes)

	return cmd
}

func runNew(cmd *cobra.Command, args []string) error {
	p, err := initPaths()
	if err != nil {
		return err
	}
	cfg, err := loadConfig(p)
	if err != nil {
		return err
	}

	dryRun, _ := cmd.Root().PersistentFlags().GetBool("dry-run")
	force, _ := cmd.Root().PersistentFlags().GetBool("force")
	yes, _ := cmd.Flags().GetBool("yes")

	seed := project.FromDefaults(cfg.Defaults)
	if len(args) > 0 {
		seed.Name = args[0]
	}
	if err := applyProjectFlags(cmd, &seed); err != nil {
		return err
	}

	// The wizard only runs when something is still missing. A complete
	// seed (name argument plus valid defaults) scaffolds directly, and
	// --yes skips prompting even for an incomplete one.
	wiz := wizard.New()
	if yes || seed.Validate() == nil {
		wiz = wiz.WithInteractive(false)
	}
	proj, err := wiz.Run(seed)
	if err != nil {
		return err
	}
	if err := proj.Validate(); err != nil {
		return err
	}

	dir, _ := cmd.Flags().GetString("dir")
	if dir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("cannot determine working directory: %w", err)
		}
		dir = filepath.Join(cwd, proj.Name)
	}
	proj.Dir, err = filepath.Abs(dir)
	if err != nil {
		return fmt.Errorf("cannot resolve target directory: %w", err)
	}

	if err := proj.CheckTarget(force); err != nil {
		return err
	}

	log.Info().
		Str("project", proj.Name).
		Str("type", string(proj.Type)).
		Str("dir", proj.Dir).
		Bool("dry_run", dryRun).
		Msg("Scaffolding project")

	// Templates for a project type live in a subdirectory of the
	// templates root named after the type. A missing subdirectory means
	// the plan comes from builtin generators alone.
	scaffoldRoot := filepath.Join(p.TemplatesRoot(), string(proj.Type))
	var metas []discovery.Metadata
	if _, err := os.Stat(scaffoldRoot); err == nil {
		metas, err = newDiscovery(cfg).Discover(cmd.Context(), scaffoldRoot)
		if err != nil {
			return err
		}
	}

	builder := scaffold.NewBuilder(newEngine(cfg), cfg.Templates.Extensions)
	plan, err := builder.Build(proj, scaffoldRoot, metas)
	if err != nil {
		return err
	}

	if dryRun {
		fmt.Fprintln(cmd.OutOrStdout(), newRenderer().RenderPlan(plan))
		fmt.Fprintln(cmd.OutOrStdout(), MsgDryRunNotice)
		return nil
	}

	executor := scaffold.NewExecutor(false).EnableForce(force)
	if err := executor.Execute(cmd.Context(), plan); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), MsgProjectCreated, proj.Name, proj.Dir)
	fmt.Fprintf(cmd.OutOrStdout(), MsgNextSteps, proj.Name, proj.InstallCommand())
	return nil
}

// applyProjectFlags overlays explicitly set flags on the seed. Unset flags
// leave the configured defaults alone.
func applyProjectFlags(cmd *cobra.Command, seed *project.Config) error {
	flags := cmd.Flags()

	if flags.Changed("type") {
		raw, _ := flags.GetString("type")
		typ, err := project.ParseType(raw)
		if err != nil {
			return err
		}
		seed.Type = typ
	}
	if flags.Changed("quality") {
		raw, _ := flags.GetString("quality")
		quality, err := project.ParseQuality(raw)
		if err != nil {
			return err
		}
		seed.Quality = quality
	}
	if flags.Changed("assistants") {
		raw, _ := flags.GetStringSlice("assistants")
		seed.Assistants = nil
		for _, name := range raw {
			if strings.TrimSpace(name) == "" {
				continue
			}
			assistant, err := project.ParseAssistant(name)
			if err != nil {
				return err
			}
			seed.Assistants = append(seed.Assistants, assistant)
		}
	}
	if flags.Changed("package-manager") {
		raw, _ := flags.GetString("package-manager")
		pm, err := project.ParsePackageManager(raw)
		if err != nil {
			return err
		}
		seed.PackageManager = pm
	}
	if flags.Changed("license") {
		seed.License, _ = flags.GetString("license")
	}
	if flags.Changed("author") {
		seed.Author, _ = flags.GetString("author")
	}

	return nil
}
