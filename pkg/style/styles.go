package style

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/johnmorse/rhinoinsertcommand/pkg/types"
)

// Base styles
var (
	// Headers and titles
	TitleStyle = lipgloss.NewStyle().
			Foreground(HeadingColor).
			Bold(true).
			MarginBottom(1)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(HeadingColor).
			Bold(true)

	// Text styles
	NormalStyle = lipgloss.NewStyle().
			Foreground(TextColor)

	MutedStyle = lipgloss.NewStyle().
			Foreground(MutedColor)

	// Status styles
	SuccessStyle = lipgloss.NewStyle().
			Foreground(SuccessColor).
			Bold(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Bold(true)

	WarningStyle = lipgloss.NewStyle().
			Foreground(WarningColor).
			Bold(true)

	InfoStyle = lipgloss.NewStyle().
			Foreground(InfoColor)

	// Box and container styles
	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(BorderColor).
			Padding(0, 1)

	// Code and path styles
	CodeStyle = lipgloss.NewStyle().
			Foreground(PrimaryColor).
			Background(SurfaceColor).
			Padding(0, 1)

	PathStyle = lipgloss.NewStyle().
			Foreground(SecondaryColor).
			Italic(true)
)

// Definition styles
var (
	BlockNameStyle = lipgloss.NewStyle().
			Foreground(PrimaryColor).
			Bold(true)

	StaticStyle = lipgloss.NewStyle().
			Foreground(StaticColor)

	EmbeddedStyle = lipgloss.NewStyle().
			Foreground(EmbeddedColor)

	LinkedStyle = lipgloss.NewStyle().
			Foreground(LinkedColor).
			Bold(true)

	LinkedAndEmbeddedStyle = lipgloss.NewStyle().
				Foreground(LinkedAndEmbeddedColor).
				Bold(true)

	FileStyle = lipgloss.NewStyle().
			Foreground(FileColor).
			Italic(true)
)

// Operation indicator styles
var (
	SuccessIndicator = SuccessStyle.Render("✓")
	ErrorIndicator   = ErrorStyle.Render("✗")
	WarningIndicator = WarningStyle.Render("!")
	InfoIndicator    = InfoStyle.Render("•")
	PendingIndicator = MutedStyle.Render("○")
)

// UpdateTypeStyle returns the style used to show an update type
func UpdateTypeStyle(u types.UpdateType) lipgloss.Style {
	switch u {
	case types.UpdateEmbedded:
		return EmbeddedStyle
	case types.UpdateLinked:
		return LinkedStyle
	case types.UpdateLinkedAndEmbedded:
		return LinkedAndEmbeddedStyle
	default:
		return StaticStyle
	}
}

// Helper functions
func Indent(s string, level int) string {
	return lipgloss.NewStyle().PaddingLeft(level * 2).Render(s)
}

func Bold(s string) string {
	return lipgloss.NewStyle().Bold(true).Render(s)
}

func Italic(s string) string {
	return lipgloss.NewStyle().Italic(true).Render(s)
}

func Underline(s string) string {
	return lipgloss.NewStyle().Underline(true).Render(s)
}
