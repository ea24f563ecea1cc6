// pkg/cobrax/topics/topics_test.go
// TEST TYPE: Unit Tests
// DEPENDENCIES: fstest.MapFS
// PURPOSE: Test topic loading, lookup and the help command

package topics_test

import (
	"bytes"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/johnmorse/rhinoinsertcommand/pkg/cobrax/topics"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func topicFS() fstest.MapFS {
	return fstest.MapFS{
		"update-types.md":   {Data: []byte("# Update types\n\nStatic definitions never change.")},
		"matching.txt":      {Data: []byte("Files are matched by path.")},
		"nested/layers.md":  {Data: []byte("# Layers")},
		"notes.json":        {Data: []byte("{}")},
		"Configuration.txt": {Data: []byte("Settings live in config.toml.")},
	}
}

func TestLoad(t *testing.T) {
	m, err := topics.Load(topicFS(), topics.Options{})
	require.NoError(t, err)

	assert.Equal(t, []string{"configuration", "layers", "matching", "update-types"}, m.Names())

	tests := []struct {
		name    string
		lookup  string
		found   bool
		content string
	}{
		{"exact", "matching", true, "Files are matched by path."},
		{"flag_style", "--update-type", false, ""},
		{"flag_style_full", "--update-types", true, "# Update types\n\nStatic definitions never change."},
		{"case_insensitive", "CONFIGURATION", true, "Settings live in config.toml."},
		{"unsupported_extension", "notes", false, ""},
		{"missing", "nothing", false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			topic, ok := m.Get(tt.lookup)
			assert.Equal(t, tt.found, ok)
			if ok {
				assert.Equal(t, tt.content, topic.Content)
			}
		})
	}
}

func TestLoadCustomExtensions(t *testing.T) {
	m, err := topics.Load(topicFS(), topics.Options{Extensions: []string{".json"}})
	require.NoError(t, err)
	assert.Equal(t, []string{"notes"}, m.Names())
}

func TestGlamourRenderer(t *testing.T) {
	r := &topics.GlamourRenderer{Style: "notty", Width: 60}

	assert.Equal(t, "plain text", r.Render("plain text", ".txt"))
	rendered := r.Render("# Update types\n\nStatic definitions never change.", ".md")
	assert.Contains(t, rendered, "Update types")
	assert.Contains(t, rendered, "Static definitions never change.")
}

func newRoot(t *testing.T) (*cobra.Command, *bytes.Buffer) {
	t.Helper()
	m, err := topics.Load(topicFS(), topics.Options{})
	require.NoError(t, err)

	root := &cobra.Command{Use: "tool", Short: "A tool", Run: func(*cobra.Command, []string) {}}
	root.AddCommand(&cobra.Command{Use: "list", Short: "List things", Run: func(*cobra.Command, []string) {}})
	topics.Install(root, m)

	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	return root, &out
}

func TestHelpCommand(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		contains string
	}{
		{"topic", []string{"help", "matching"}, "Files are matched by path."},
		{"topic_list", []string{"help", "topics"}, "update-types"},
		{"command", []string{"help", "list"}, "List things"},
		{"unknown_falls_back", []string{"help", "nothing"}, "A tool"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root, out := newRoot(t)
			root.SetArgs(tt.args)
			require.NoError(t, root.Execute())
			assert.Contains(t, out.String(), tt.contains)
		})
	}
}

func TestHelpTopicsListing(t *testing.T) {
	root, out := newRoot(t)
	root.SetArgs([]string{"help", "topics"})
	require.NoError(t, root.Execute())

	lines := strings.Split(out.String(), "\n")
	require.GreaterOrEqual(t, len(lines), 5)
	assert.Equal(t, "Available help topics:", lines[0])
	assert.Equal(t, "  configuration", lines[1])
	assert.Contains(t, out.String(), "Use 'tool help <topic>'")
}
