package style

import (
	"fmt"
	"strings"

	"github.com/johnmorse/rhinoinsertcommand/pkg/types"
	"github.com/pterm/pterm"
)

// BadgeStyle returns the pterm style used for an update type badge
func BadgeStyle(u types.UpdateType) *pterm.Style {
	switch u {
	case types.UpdateEmbedded:
		return pterm.NewStyle(pterm.BgGreen, pterm.FgBlack)
	case types.UpdateLinked:
		return pterm.NewStyle(pterm.BgCyan, pterm.FgBlack)
	case types.UpdateLinkedAndEmbedded:
		return pterm.NewStyle(pterm.BgMagenta, pterm.FgWhite)
	default:
		return pterm.NewStyle(pterm.FgGray)
	}
}

// DecisionStyle returns the pterm style for a confirmation answer
func DecisionStyle(d types.Decision) *pterm.Style {
	switch d {
	case types.DecisionYes:
		return pterm.NewStyle(pterm.FgGreen, pterm.Bold)
	case types.DecisionNo:
		return pterm.NewStyle(pterm.FgYellow)
	default:
		return pterm.NewStyle(pterm.FgRed)
	}
}

// Badge renders a fixed width update type badge
func Badge(u types.UpdateType) string {
	return BadgeStyle(u).Sprint(fmt.Sprintf(" %-19s ", u.String()))
}

// RenderCandidate renders one block list line: marker, name, badge and the
// link description.
func RenderCandidate(opt *types.InsertionOptionSet, selected bool, description string) string {
	if opt == nil {
		return ""
	}
	marker := PendingIndicator
	if selected {
		marker = InfoIndicator
	}

	name := BlockNameStyle.Render(opt.BlockName)
	if opt.NeedsOptionsDialog {
		name = FileStyle.Render(opt.BlockName)
	}

	line := fmt.Sprintf("%s %s %s", marker, Badge(opt.UpdateType), name)
	if description = strings.TrimSpace(description); description != "" {
		line += " " + MutedStyle.Render(description)
	}
	return line
}

// RenderDecision renders a recorded answer
func RenderDecision(id string, d types.Decision) string {
	return fmt.Sprintf("%s: %s", id, DecisionStyle(d).Sprint(d.String()))
}
