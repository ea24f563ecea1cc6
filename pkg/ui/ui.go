// Package ui provides a unified interface for rendering output in different formats.
// It supports terminal (rich), text (plain), and JSON output formats.
package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/johnmorse/rhinoinsertcommand/pkg/ui/display"
	"github.com/johnmorse/rhinoinsertcommand/pkg/ui/json"
	"github.com/johnmorse/rhinoinsertcommand/pkg/ui/terminal"
	"github.com/johnmorse/rhinoinsertcommand/pkg/ui/text"
)

// Renderer is the common interface for all output renderers.
type Renderer interface {
	// RenderBlocks renders the block list of a document
	RenderBlocks(list *display.BlockList) error

	// RenderResolution renders how a file resolves against the table
	RenderResolution(res *display.Resolution) error

	// RenderCommit renders the result of an insert
	RenderCommit(result *display.CommitResult) error

	// RenderError renders an error with appropriate formatting
	RenderError(err error) error

	// RenderMessage renders a simple message
	RenderMessage(msg string) error
}

// NewRenderer creates a new renderer based on the specified format.
// It automatically detects terminal capabilities when format is Auto.
func NewRenderer(format Format, output io.Writer) (Renderer, error) {
	switch format {
	case FormatAuto:
		if file, ok := output.(*os.File); ok {
			return NewRenderer(DetectFormat(file), output)
		}
		// Buffers and pipes get plain text
		return NewRenderer(FormatText, output)
	case FormatTerminal:
		return terminal.New(output)
	case FormatText:
		return text.New(output)
	case FormatJSON:
		return json.New(output)
	default:
		return nil, fmt.Errorf("unknown format: %v", format)
	}
}
