// pkg/ui/format_test.go
// TEST TYPE: Unit Tests
// DEPENDENCIES: Temp files
// PURPOSE: Test format parsing and detection

package ui_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/johnmorse/rhinoinsertcommand/pkg/ui"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatString(t *testing.T) {
	tests := []struct {
		format   ui.Format
		expected string
	}{
		{ui.FormatAuto, "auto"},
		{ui.FormatTerminal, "term"},
		{ui.FormatText, "text"},
		{ui.FormatJSON, "json"},
		{ui.Format(999), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.format.String())
		})
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected ui.Format
		wantErr  bool
	}{
		{"auto", "auto", ui.FormatAuto, false},
		{"empty_is_auto", "", ui.FormatAuto, false},
		{"term", "term", ui.FormatTerminal, false},
		{"terminal", "terminal", ui.FormatTerminal, false},
		{"text", "text", ui.FormatText, false},
		{"plain", "plain", ui.FormatText, false},
		{"json", "json", ui.FormatJSON, false},
		{"uppercase", "TERM", ui.FormatTerminal, false},
		{"mixed_case", "Json", ui.FormatJSON, false},
		{"invalid", "invalid", ui.FormatAuto, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			format, err := ui.ParseFormat(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), "unknown format")
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, format)
		})
	}
}

func TestDetectFormat(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "out.txt"))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	t.Run("redirected output is plain", func(t *testing.T) {
		assert.Equal(t, ui.FormatText, ui.DetectFormat(f))
	})

	t.Run("NO_COLOR wins", func(t *testing.T) {
		t.Setenv("NO_COLOR", "1")
		assert.Equal(t, ui.FormatText, ui.DetectFormat(f))
	})
}
