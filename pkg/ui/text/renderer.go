// Package text provides plain text output without any styling
package text

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/johnmorse/rhinoinsertcommand/pkg/ui/display"
)

// Renderer provides plain text output without colors or styling
type Renderer struct {
	output io.Writer
}

// New creates a new text renderer
func New(output io.Writer) (*Renderer, error) {
	return &Renderer{output: output}, nil
}

// RenderBlocks renders one tab aligned line per block
func (r *Renderer) RenderBlocks(list *display.BlockList) error {
	if len(list.Blocks) == 0 {
		_, err := fmt.Fprintln(r.output, "No blocks in document")
		return err
	}

	tw := tabwriter.NewWriter(r.output, 0, 4, 2, ' ', 0)
	for _, b := range list.Blocks {
		marker := " "
		if b.Selected {
			marker = "*"
		}
		if _, err := fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", marker, b.Name, b.UpdateType, b.Description); err != nil {
			return err
		}
	}
	return tw.Flush()
}

// RenderResolution renders the proposed name, the match and the candidates
func (r *Renderer) RenderResolution(res *display.Resolution) error {
	match := "none"
	if res.Match != nil {
		match = res.Match.Name
	}
	if _, err := fmt.Fprintf(r.output, "file: %s\nname: %s\nmatch: %s\n", res.File, res.ProposedName, match); err != nil {
		return err
	}
	for _, c := range res.Candidates {
		if _, err := fmt.Fprintf(r.output, "  %s (%s, %s)\n", c.Name, c.UpdateType, c.LayerStyle); err != nil {
			return err
		}
	}
	return nil
}

// RenderCommit renders the insert result
func (r *Renderer) RenderCommit(result *display.CommitResult) error {
	if result.Message != "" {
		if _, err := fmt.Fprintln(r.output, result.Message); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(r.output, "%s: %s as %s\n", result.Outcome, result.Block.Name, result.InsertAs)
	return err
}

// RenderError renders an error as plain text
func (r *Renderer) RenderError(err error) error {
	_, err2 := fmt.Fprintf(r.output, "Error: %v\n", err)
	return err2
}

// RenderMessage renders a simple message
func (r *Renderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.output, msg)
	return err
}
