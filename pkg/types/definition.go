package types

import (
	"strings"

	"github.com/google/uuid"
)

// HiddenPrefix marks anonymous definitions that are left out of the block
// list unless hidden definitions are shown.
const HiddenPrefix = "*"

// DefinitionRecord describes one instance definition as seen in a document's
// definition table. Records are owned by the table; the engine only reads them.
type DefinitionRecord struct {
	ID             uuid.UUID  `toml:"id" yaml:"id"`
	Name           string     `toml:"name" yaml:"name"`
	Description    string     `toml:"description,omitempty" yaml:"description,omitempty"`
	URL            string     `toml:"url,omitempty" yaml:"url,omitempty"`
	URLDescription string     `toml:"url_description,omitempty" yaml:"url_description,omitempty"`
	UpdateType     UpdateType `toml:"update_type" yaml:"update_type"`
	LayerStyle     LayerStyle `toml:"layer_style" yaml:"layer_style"`
	// SourceArchive is only meaningful for linked update types
	SourceArchive               string `toml:"source_archive,omitempty" yaml:"source_archive,omitempty"`
	SkipNestedLinkedDefinitions bool   `toml:"skip_nested_linked_definitions,omitempty" yaml:"skip_nested_linked_definitions,omitempty"`

	Deleted   bool `toml:"deleted,omitempty" yaml:"deleted,omitempty"`
	Reference bool `toml:"reference,omitempty" yaml:"reference,omitempty"`
	// Tenuous records are only known through a nested linked file
	Tenuous bool `toml:"tenuous,omitempty" yaml:"tenuous,omitempty"`
}

// HasName reports whether the record carries a usable name. Updating a
// referenced file can leave unnamed placeholder entries in a table; those are
// treated as absent everywhere.
func (r *DefinitionRecord) HasName() bool {
	return r != nil && r.Name != ""
}

// IsLinked returns true for Linked and LinkedAndEmbedded definitions
func (r *DefinitionRecord) IsLinked() bool {
	return r != nil && r.UpdateType.IsLinked()
}

// IsHidden returns true for anonymous definitions whose name starts with '*'
func (r *DefinitionRecord) IsHidden() bool {
	return r.HasName() && strings.HasPrefix(r.Name, HiddenPrefix)
}

// Visible reports whether the record takes part in name lookups: it must be
// named, not deleted and not a reference definition.
func (r *DefinitionRecord) Visible() bool {
	return r.HasName() && !r.Deleted && !r.Reference
}

// Listable decides if the record should be offered in the block list
func (r *DefinitionRecord) Listable(showHidden bool) bool {
	if r == nil || r.Deleted || r.ID == uuid.Nil || r.Name == "" || r.Tenuous || r.Reference {
		return false
	}
	if !showHidden && r.IsHidden() {
		return false
	}
	return true
}

// NameEquals compares a record name case-insensitively after trimming
func NameEquals(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}
