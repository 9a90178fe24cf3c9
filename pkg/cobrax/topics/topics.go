// Package topics provides a pluggable, topic-based help system for Cobra CLI
// applications. It extends the default Cobra help functionality to support
// arbitrary help topics loaded from files, making CLIs self-documenting.
package topics

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/menoncello/nimata-sub006/pkg/errors"
)

// Topic is one help topic, loaded from a file in the topics directory.
// The topic name is the file name without its extension.
type Topic struct {
	Name     string
	FilePath string
	Content  string
}

// Options configures the Manager
type Options struct {
	// Extensions is the list of file extensions to consider as topics.
	// Defaults to [".txt", ".md"] if not specified.
	Extensions []string

	// Renderer formats topic content for display.
	// Defaults to PlainRenderer if not specified.
	Renderer Renderer
}

// Manager loads help topics from a directory and answers lookups for them
type Manager struct {
	topicsDir    string
	topics       map[string]*Topic
	extensions   map[string]bool
	renderer     Renderer
	originalHelp func(*cobra.Command, []string)
}

// New creates a new Manager with default options
func New(topicsDir string) *Manager {
	return NewWithOptions(topicsDir, Options{})
}

// NewWithOptions creates a new Manager with custom options
func NewWithOptions(topicsDir string, opts Options) *Manager {
	extensions := opts.Extensions
	if len(extensions) == 0 {
		extensions = []string{".txt", ".md"}
	}

	set := make(map[string]bool, len(extensions))
	for _, ext := range extensions {
		set[strings.ToLower(ext)] = true
	}

	renderer := opts.Renderer
	if renderer == nil {
		renderer = &PlainRenderer{}
	}

	return &Manager{
		topicsDir:  topicsDir,
		topics:     make(map[string]*Topic),
		extensions: set,
		renderer:   renderer,
	}
}

// Load scans the topics directory. A missing directory is not an error, it
// just means no topics are available.
func (m *Manager) Load() error {
	if _, err := os.Stat(m.topicsDir); os.IsNotExist(err) {
		return nil
	}

	err := filepath.WalkDir(m.topicsDir, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if entry.IsDir() {
			return nil
		}

		ext := filepath.Ext(path)
		if !m.extensions[strings.ToLower(ext)] {
			return nil
		}

		content, err := os.ReadFile(path)
		if err != nil {
			return err
		}

		// Subdirectories only organize files; the topic name is flat
		name := strings.TrimSuffix(filepath.Base(path), ext)
		m.topics[name] = &Topic{
			Name:     name,
			FilePath: path,
			Content:  string(content),
		}
		return nil
	})
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileAccess, "cannot scan help topics in %s", m.topicsDir)
	}
	return nil
}

// Get retrieves a topic by name. Flag-style lookups work too: "--dry-run"
// and "dry-run" both find a topic file named "option-dry-run".
func (m *Manager) Get(name string) (*Topic, bool) {
	name = strings.TrimPrefix(name, "--")
	name = strings.TrimPrefix(name, "-")

	if topic, ok := m.topics[name]; ok {
		return topic, true
	}

	topic, ok := m.topics["option-"+name]
	return topic, ok
}

// List returns all topic names in sorted order
func (m *Manager) List() []string {
	names := make([]string, 0, len(m.topics))
	for name := range m.topics {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// renderList formats the "help topics" listing, splitting general topics
// from option topics.
func (m *Manager) renderList(appName string) string {
	names := m.List()
	if len(names) == 0 {
		return "No help topics available.\n"
	}

	var options []string
	var general []string
	for _, name := range names {
		if strings.HasPrefix(name, "option-") {
			options = append(options, strings.TrimPrefix(name, "option-"))
		} else {
			general = append(general, name)
		}
	}

	var out strings.Builder
	out.WriteString("Available help topics:\n")
	if len(general) > 0 {
		out.WriteString("\nGeneral topics:\n")
		for _, name := range general {
			fmt.Fprintf(&out, "  %s\n", name)
		}
	}
	if len(options) > 0 {
		out.WriteString("\nOption topics:\n")
		for _, name := range options {
			fmt.Fprintf(&out, "  --%s\n", name)
		}
	}
	fmt.Fprintf(&out, "\nUse '%s help <topic>' to read about a specific topic.\n", appName)
	return out.String()
}

// show renders a single topic through the configured renderer
func (m *Manager) show(topic *Topic) {
	fmt.Print(m.renderer.Render(topic))
}

// Initialize sets up the topic-based help system with default options
func Initialize(rootCmd *cobra.Command, topicsDir string) error {
	return InitializeWithOptions(rootCmd, topicsDir, Options{})
}

// InitializeWithOptions loads topics and replaces the root command's help
// command and help function with topic-aware versions. Unknown arguments
// fall back to Cobra's regular command help.
func InitializeWithOptions(rootCmd *cobra.Command, topicsDir string, opts Options) error {
	m := NewWithOptions(topicsDir, opts)
	if err := m.Load(); err != nil {
		return err
	}

	m.originalHelp = rootCmd.HelpFunc()

	helpCmd := &cobra.Command{
		Use:   "help [command or topic]",
		Short: "Help about any command or topic",
		Long: `Help provides help for any command or topic in the application.
Simply type ` + rootCmd.Name() + ` help [path to command or topic] for full details.

To see all available help topics:
  ` + rootCmd.Name() + ` help topics`,
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			completions := []string{"topics"}
			for _, c := range rootCmd.Commands() {
				if !c.Hidden {
					completions = append(completions, c.Name())
				}
			}
			completions = append(completions, m.List()...)
			return completions, cobra.ShellCompDirectiveNoFileComp
		},
		Run: func(cmd *cobra.Command, args []string) {
			if len(args) == 0 {
				m.originalHelp(rootCmd, []string{})
				return
			}

			if args[0] == "topics" {
				fmt.Print(m.renderList(rootCmd.Name()))
				return
			}

			if topic, ok := m.Get(args[0]); ok {
				m.show(topic)
				return
			}

			// Not a topic, fall back to command help
			m.originalHelp(rootCmd, args)
		},
	}

	// Replace any existing help command
	for _, cmd := range rootCmd.Commands() {
		if cmd.Name() == "help" {
			rootCmd.RemoveCommand(cmd)
			break
		}
	}
	rootCmd.AddCommand(helpCmd)

	// The --help flag goes through the help function, so topics work there too
	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		if len(args) > 0 {
			if topic, ok := m.Get(args[0]); ok {
				m.show(topic)
				return
			}
		}
		m.originalHelp(cmd, args)
	})

	return nil
}
