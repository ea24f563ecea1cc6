// Package topics adds topic based help to a Cobra command tree. Topics are
// text or markdown files read from a filesystem, usually one embedded in the
// binary, and are shown by "help <topic>" next to the regular command help.
package topics

import (
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/spf13/cobra"
)

// Topic is one help document
type Topic struct {
	Name    string
	Ext     string
	Content string
}

// Options configures a Manager
type Options struct {
	// Extensions are the file extensions read as topics, [".txt", ".md"]
	// when empty
	Extensions []string

	// Renderer formats topic content, PlainRenderer when nil
	Renderer Renderer
}

// Manager holds the topics of an application
type Manager struct {
	topics   map[string]*Topic
	renderer Renderer
}

// Load reads every topic file below the root of fsys. The topic name is the
// file name without its extension.
func Load(fsys fs.FS, opts Options) (*Manager, error) {
	exts := opts.Extensions
	if len(exts) == 0 {
		exts = []string{".txt", ".md"}
	}
	m := &Manager{topics: make(map[string]*Topic), renderer: opts.Renderer}
	if m.renderer == nil {
		m.renderer = &PlainRenderer{}
	}

	err := fs.WalkDir(fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		ext := path.Ext(p)
		if !hasExt(exts, ext) {
			return nil
		}
		data, err := fs.ReadFile(fsys, p)
		if err != nil {
			return err
		}
		name := strings.ToLower(strings.TrimSuffix(path.Base(p), ext))
		m.topics[name] = &Topic{Name: name, Ext: ext, Content: string(data)}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan topics: %w", err)
	}
	return m, nil
}

func hasExt(exts []string, ext string) bool {
	for _, e := range exts {
		if strings.EqualFold(e, ext) {
			return true
		}
	}
	return false
}

// Get returns a topic by name. Flag style names such as --update-type find
// the update-type topic.
func (m *Manager) Get(name string) (*Topic, bool) {
	name = strings.ToLower(strings.TrimLeft(strings.TrimSpace(name), "-"))
	t, ok := m.topics[name]
	return t, ok
}

// Names returns the sorted topic names
func (m *Manager) Names() []string {
	names := make([]string, 0, len(m.topics))
	for name := range m.topics {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Render formats a topic for display
func (m *Manager) Render(t *Topic) string {
	return m.renderer.Render(t.Content, t.Ext)
}

// Install replaces the help command of root with one that also knows the
// topics. "help topics" lists them.
func Install(root *cobra.Command, m *Manager) {
	originalHelp := root.HelpFunc()

	helpCmd := &cobra.Command{
		Use:   "help [command or topic]",
		Short: "Help about any command or topic",
		Long: `Help provides help for any command or topic in the application.

To see all available help topics:
  ` + root.Name() + ` help topics`,
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			completions := []string{"topics"}
			for _, c := range root.Commands() {
				if !c.Hidden {
					completions = append(completions, c.Name())
				}
			}
			completions = append(completions, m.Names()...)
			return completions, cobra.ShellCompDirectiveNoFileComp
		},
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			if len(args) == 0 {
				originalHelp(root, nil)
				return
			}
			if args[0] == "topics" {
				names := m.Names()
				if len(names) == 0 {
					fmt.Fprintln(out, "No help topics available.")
					return
				}
				fmt.Fprintln(out, "Available help topics:")
				for _, name := range names {
					fmt.Fprintf(out, "  %s\n", name)
				}
				fmt.Fprintf(out, "\nUse '%s help <topic>' to read about a specific topic.\n", root.Name())
				return
			}
			if t, ok := m.Get(args[0]); ok {
				fmt.Fprint(out, m.Render(t))
				return
			}
			if c, _, err := root.Find(args); err == nil && c != root {
				originalHelp(c, nil)
				return
			}
			originalHelp(root, args)
		},
	}

	for _, c := range root.Commands() {
		if c.Name() == "help" {
			root.RemoveCommand(c)
			break
		}
	}
	root.SetHelpCommand(helpCmd)
}
