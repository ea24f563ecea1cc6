package types

import (
	"image"

	"github.com/google/uuid"
)

// DocumentTable is the read side of a document's instance definition table
type DocumentTable interface {
	// AllRecords returns a snapshot of every record, in table order
	AllRecords() []DefinitionRecord

	// FindByName looks a record up by case-insensitive name, skipping deleted
	// records and, when ignoreReference is true, reference records
	FindByName(name string, ignoreReference bool) *DefinitionRecord

	// FindByID looks a record up by id, skipping deleted records
	FindByID(id uuid.UUID) *DefinitionRecord

	// GenerateUnusedName returns a name no visible record uses, derived from
	// seed when it is not blank
	GenerateUnusedName(seed string) string

	// Path returns the full path of the document the table belongs to
	Path() string
}

// ConfirmationPrompt asks the user to decide something before the workflow
// continues. Implementations block until the user answers.
type ConfirmationPrompt interface {
	// AskYesNoCancel presents a three way question
	AskYesNoCancel(req ConfirmationRequest) (Decision, error)

	// Notify shows an informational message the user must acknowledge
	Notify(title, message string) error
}

// PreviewRenderer produces thumbnails for the preview pane
type PreviewRenderer interface {
	// RenderDefinitionThumbnail renders a definition at exactly size
	RenderDefinitionThumbnail(id uuid.UUID, projection Projection, mode DisplayMode, size image.Point) (image.Image, error)

	// ExtractFileThumbnail reads the preview image embedded in a model file
	ExtractFileThumbnail(path string) (image.Image, error)
}

// FileProbe answers file existence questions
type FileProbe interface {
	Exists(path string) bool
}

// PropertiesForm edits the properties of a definition about to be created
// from a file. Edit returns false when the user cancels the form.
type PropertiesForm interface {
	Edit(candidate *InsertionOptionSet) (bool, error)
}
