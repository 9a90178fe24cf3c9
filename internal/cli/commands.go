package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"

	"github.com/menoncello/nimata-sub006/internal/version"
	"github.com/menoncello/nimata-sub006/pkg/cobrax/topics"
	"github.com/menoncello/nimata-sub006/pkg/config"
	"github.com/menoncello/nimata-sub006/pkg/logging"
	"github.com/menoncello/nimata-sub006/pkg/paths"
	"github.com/menoncello/nimata-sub006/pkg/template"
	"github.com/menoncello/nimata-sub006/pkg/template/discovery"
)

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	// Initialize custom template formatting functions
	initTemplateFormatting()

	var (
		verbosity int
		dryRun    bool
		force     bool
	)

	rootCmd := &cobra.Command{
		Use:     "nimata",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Setup logging based on verbosity
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// If we get here, no subcommand was provided
			// Show help but return an error to indicate incorrect usage
			_ = cmd.Help()
			return fmt.Errorf("no command specified")
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().BoolVar(&dryRun, "dry-run", false, MsgFlagDryRun)
	rootCmd.PersistentFlags().BoolVar(&force, "force", false, MsgFlagForce)

	// Disable automatic help command (we'll use our custom one from topics)
	rootCmd.SetHelpCommand(&cobra.Command{Hidden: true})

	// Set custom help template
	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	// Add all commands
	rootCmd.AddCommand(newNewCmd())
	rootCmd.AddCommand(newRenderCmd())
	rootCmd.AddCommand(newTemplatesCmd())
	rootCmd.AddCommand(newInitCmd())
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())
	rootCmd.AddCommand(newManCmd())

	// Initialize topic-based help system
	// Try to find help topics relative to the executable location
	exe, err := os.Executable()
	if err == nil {
		// Look for help topics in various locations
		possiblePaths := []string{
			filepath.Join(filepath.Dir(exe), "topics"),                              // Same directory as binary (production)
			filepath.Join(filepath.Dir(exe), "..", "..", "cmd", "nimata", "topics"), // Development
			"cmd/nimata/topics", // Current directory fallback
		}

		for _, helpPath := range possiblePaths {
			if _, err := os.Stat(helpPath); err == nil {
				// Initialize topics with .txt and .md extensions
				opts := topics.Options{
					Extensions: []string{".txt", ".md"},
					// Always use Glamour renderer for markdown files
					Renderer: topics.NewGlamourRenderer(),
				}

				if err := topics.InitializeWithOptions(rootCmd, helpPath, opts); err == nil {
					break
				}
			}
		}
	}

	return rootCmd
}

// initPaths resolves the nimata directory layout. The templates root comes
// from NIMATA_TEMPLATES_DIR when set, otherwise from the XDG data directory.
func initPaths() (paths.Paths, error) {
	p, err := paths.New("")
	if err != nil {
		return nil, fmt.Errorf("failed to initialize paths: %w", err)
	}
	return p, nil
}

// loadConfig resolves the layered configuration as seen from the current
// directory: embedded defaults, user config, project .nimata.toml, NIMATA_*
// environment variables.
func loadConfig(p paths.Paths) (*config.Config, error) {
	cwd, err := os.Getwd()
	if err != nil {
		cwd = ""
	}
	return config.Load(config.LoadOptions{
		UserConfigPath: p.ConfigFilePath(),
		ProjectDir:     cwd,
	})
}

func newEngine(cfg *config.Config) *template.Engine {
	return template.New(cfg.Templates.CacheSize)
}

func newDiscovery(cfg *config.Config) *discovery.Service {
	return discovery.NewService(discovery.Options{
		Extensions: cfg.Templates.Extensions,
		IgnoreDirs: cfg.Templates.IgnoreDirs,
		Workers:    cfg.Templates.ScanWorkers,
	})
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: MsgVersionShort,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("nimata version %s\n", version.Version)
			if version.Commit != "" {
				fmt.Printf("  commit: %s\n", version.Commit)
			}
			if version.Date != "" {
				fmt.Printf("  built:  %s\n", version.Date)
			}
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		Run: func(cmd *cobra.Command, args []string) {
			switch args[0] {
			case "bash":
				if err := cmd.Root().GenBashCompletion(cmd.OutOrStdout()); err != nil {
					log.Error().Err(err).Msg("Failed to generate bash completion")
				}
			case "zsh":
				if err := cmd.Root().GenZshCompletion(cmd.OutOrStdout()); err != nil {
					log.Error().Err(err).Msg("Failed to generate zsh completion")
				}
			case "fish":
				if err := cmd.Root().GenFishCompletion(cmd.OutOrStdout(), true); err != nil {
					log.Error().Err(err).Msg("Failed to generate fish completion")
				}
			case "powershell":
				if err := cmd.Root().GenPowerShellCompletionWithDesc(cmd.OutOrStdout()); err != nil {
					log.Error().Err(err).Msg("Failed to generate powershell completion")
				}
			}
		},
	}
}

func newManCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "man [dir]",
		Short: MsgManShort,
		Long:  `Generate man pages for nimata and write them to the given directory (default /tmp)`,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "/tmp"
			if len(args) > 0 {
				dir = args[0]
			}
			header := &doc.GenManHeader{
				Title:   "NIMATA",
				Section: "1",
			}
			return doc.GenManTree(cmd.Root(), header, dir)
		},
	}
}
