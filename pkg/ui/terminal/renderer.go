// Package terminal provides rich terminal output with colors and styling
package terminal

import (
	"fmt"
	"io"
	"strings"

	"github.com/johnmorse/rhinoinsertcommand/pkg/errors"
	"github.com/johnmorse/rhinoinsertcommand/pkg/style"
	"github.com/johnmorse/rhinoinsertcommand/pkg/ui/display"
	"github.com/pterm/pterm"
)

// Renderer provides rich terminal output using pterm tables and lipgloss styles
type Renderer struct {
	output io.Writer
}

// New creates a new terminal renderer
func New(w io.Writer) (*Renderer, error) {
	return &Renderer{output: w}, nil
}

// RenderBlocks renders the block list as a table
func (r *Renderer) RenderBlocks(list *display.BlockList) error {
	title := style.TitleStyle.Render(fmt.Sprintf("Blocks in %s", list.Document))
	if _, err := fmt.Fprintln(r.output, title); err != nil {
		return err
	}
	if len(list.Blocks) == 0 {
		_, err := fmt.Fprintln(r.output, style.MutedStyle.Render("No blocks in document"))
		return err
	}

	data := pterm.TableData{{"", "Name", "Update", "Layers", "Link"}}
	for _, b := range list.Blocks {
		marker := style.PendingIndicator
		if b.Selected {
			marker = style.InfoIndicator
		}
		name := style.BlockNameStyle.Render(b.Name)
		if b.FromFile {
			name = style.FileStyle.Render(b.Name)
		}
		data = append(data, []string{
			marker,
			name,
			style.UpdateTypeStyle(b.UpdateType).Render(b.UpdateType.String()),
			b.LayerStyle.String(),
			style.MutedStyle.Render(b.Description),
		})
	}

	table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(r.output, table)
	return err
}

// RenderResolution renders the proposed name, the match and the candidates
func (r *Renderer) RenderResolution(res *display.Resolution) error {
	var b strings.Builder
	b.WriteString(style.TitleStyle.Render(res.File) + "\n")
	b.WriteString(fmt.Sprintf("%s proposed name %s\n", style.InfoIndicator, style.BlockNameStyle.Render(res.ProposedName)))
	if res.Match != nil {
		b.WriteString(fmt.Sprintf("%s reuses %s %s\n", style.SuccessIndicator, style.BlockNameStyle.Render(res.Match.Name), style.Badge(res.Match.UpdateType)))
	} else {
		b.WriteString(fmt.Sprintf("%s creates a new definition\n", style.PendingIndicator))
	}
	for _, c := range res.Candidates {
		b.WriteString(style.Indent(fmt.Sprintf("%s %s %s", style.Badge(c.UpdateType), c.Name, style.MutedStyle.Render(c.LayerStyle.String())), 1) + "\n")
	}
	_, err := fmt.Fprint(r.output, b.String())
	return err
}

// RenderCommit renders the insert result in a box
func (r *Renderer) RenderCommit(result *display.CommitResult) error {
	var lines []string
	if result.Message != "" {
		lines = append(lines, result.Message)
	}

	indicator := style.SuccessIndicator
	if result.Outcome != "committed" {
		indicator = style.WarningIndicator
	}
	lines = append(lines, fmt.Sprintf("%s %s %s as %s", indicator,
		style.BlockNameStyle.Render(result.Block.Name), style.Badge(result.Block.UpdateType), result.InsertAs))
	if result.Block.Description != "" {
		lines = append(lines, style.MutedStyle.Render(result.Block.Description))
	}
	for _, d := range result.Decisions {
		lines = append(lines, style.RenderDecision(d.ID, d.Decision))
	}

	_, err := fmt.Fprintln(r.output, style.BoxStyle.Render(strings.Join(lines, "\n")))
	return err
}

// RenderError renders an error with its code
func (r *Renderer) RenderError(err error) error {
	msg := err.Error()
	if code := errors.GetErrorCode(err); code != errors.ErrUnknown {
		msg = fmt.Sprintf("%s %s", style.MutedStyle.Render("["+string(code)+"]"), msg)
	}
	_, err2 := fmt.Fprintf(r.output, "%s %s\n", style.ErrorIndicator, style.ErrorStyle.Render("Error:")+" "+msg)
	return err2
}

// RenderMessage renders a simple message
func (r *Renderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.output, style.Render(msg))
	return err
}
