package types

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// InsertionOptionSet is the working state of one candidate insertion: one row
// of the selectable block list, or the candidate being edited by the
// properties form.
type InsertionOptionSet struct {
	// ID identifies the row in the block list; it is unrelated to BlockID
	ID uuid.UUID
	// BlockID is the target definition, uuid.Nil means "create new"
	BlockID          uuid.UUID
	BlockName        string
	BlockDescription string
	URL              string
	URLDescription   string
	// SourceArchive is the file the definition is created from or linked to
	SourceArchive string
	// InsertSourceArchive requests a definition be created or redefined from
	// SourceArchive instead of just referencing BlockID
	InsertSourceArchive         bool
	UpdateType                  UpdateType
	LayerStyle                  LayerStyle
	SkipNestedLinkedDefinitions bool
	// NeedsOptionsDialog stays true until the properties form has been shown
	// once for a new-from-file candidate
	NeedsOptionsDialog bool
	// DocumentID names the document that owns BlockID
	DocumentID string
}

// NewInsertionOptionSet creates an option set with the defaults used for new
// definitions.
func NewInsertionOptionSet() *InsertionOptionSet {
	return &InsertionOptionSet{
		ID:         uuid.New(),
		UpdateType: UpdateStatic,
		LayerStyle: LayerActive,
	}
}

// NewOptionSetFromDefinition creates a list row seeded from a table record
func NewOptionSetFromDefinition(rec *DefinitionRecord, documentID string) *InsertionOptionSet {
	o := NewInsertionOptionSet()
	o.DocumentID = documentID
	o.FromDefinition(rec)
	return o
}

// FromDefinition seeds every field from rec. A nil record resets the option
// set to an unbound "create new" state.
func (o *InsertionOptionSet) FromDefinition(rec *DefinitionRecord) {
	if rec == nil {
		o.BlockID = uuid.Nil
		o.BlockName = ""
		o.BlockDescription = ""
		o.URL = ""
		o.URLDescription = ""
		o.SourceArchive = ""
		o.InsertSourceArchive = false
		return
	}

	o.BlockID = rec.ID
	o.BlockName = rec.Name
	o.BlockDescription = rec.Description
	o.URL = rec.URL
	o.URLDescription = rec.URLDescription
	o.SourceArchive = ""
	if rec.UpdateType.IsLinked() {
		o.SourceArchive = rec.SourceArchive
	}
	o.UpdateType = rec.UpdateType
	switch {
	case rec.UpdateType != UpdateLinked:
		o.LayerStyle = LayerNone
	case rec.LayerStyle == LayerReference:
		o.LayerStyle = LayerReference
	default:
		o.LayerStyle = LayerActive
	}
	o.SkipNestedLinkedDefinitions = rec.SkipNestedLinkedDefinitions
	o.InsertSourceArchive = false
}

// FromFile seeds a candidate that creates a definition from fileName.
// Layer style is kept as given so the default for linked blocks survives; it
// is validated when the definition is committed.
func (o *InsertionOptionSet) FromFile(fileName, blockName string, updateType UpdateType, layerStyle LayerStyle, skipNested bool) {
	o.InsertSourceArchive = strings.TrimSpace(fileName) != ""
	o.SourceArchive = fileName
	o.BlockName = blockName
	o.BlockID = uuid.Nil
	o.UpdateType = updateType
	o.LayerStyle = layerStyle
	o.SkipNestedLinkedDefinitions = skipNested
}

// CopyFrom copies every field from source, including the list id
func (o *InsertionOptionSet) CopyFrom(source *InsertionOptionSet) {
	if source == nil {
		return
	}
	*o = *source
}

// Clone returns an independent copy
func (o *InsertionOptionSet) Clone() *InsertionOptionSet {
	if o == nil {
		return nil
	}
	c := *o
	return &c
}

// IsBound reports whether the option set targets an existing definition
func (o *InsertionOptionSet) IsBound() bool {
	return o != nil && o.BlockID != uuid.Nil
}

// HasSource reports whether a source archive path is set
func (o *InsertionOptionSet) HasSource() bool {
	return o != nil && strings.TrimSpace(o.SourceArchive) != ""
}

// Validate checks the option set invariants
func (o *InsertionOptionSet) Validate() error {
	if o.InsertSourceArchive && !o.HasSource() {
		return fmt.Errorf("insert source archive requested for %q without a source archive", o.BlockName)
	}
	return nil
}

// String returns the block name; unnamed rows render as ""
func (o *InsertionOptionSet) String() string {
	if o == nil {
		return ""
	}
	return o.BlockName
}

// CompareByName orders option sets by block name, nil first
func CompareByName(a, b *InsertionOptionSet) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return -1
	case b == nil:
		return 1
	}
	return strings.Compare(a.BlockName, b.BlockName)
}

// BaseName returns the file name without directory and extension, the seed
// for a definition created from that file.
// Both separators are honored so Windows paths stored in a table resolve the
// same way on every platform.
func BaseName(fileName string) string {
	base := strings.TrimSpace(fileName)
	if i := strings.LastIndexAny(base, `/\`); i >= 0 {
		base = base[i+1:]
	}
	return strings.TrimSuffix(base, filepath.Ext(base))
}
