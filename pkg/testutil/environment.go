package testutil

import (
	"testing"

	"github.com/google/uuid"
	"github.com/johnmorse/rhinoinsertcommand/pkg/document"
	"github.com/johnmorse/rhinoinsertcommand/pkg/filesystem"
	"github.com/johnmorse/rhinoinsertcommand/pkg/types"
	"github.com/spf13/afero"
)

// DocumentPath is the host document used by fixtures
const DocumentPath = "/models/host.3dm"

// NewMemoryProbe creates a probe over an in-memory filesystem holding files
func NewMemoryProbe(t *testing.T, files ...string) *filesystem.Probe {
	t.Helper()
	fs := afero.NewMemMapFs()
	for _, f := range files {
		if err := afero.WriteFile(fs, f, []byte("model"), 0644); err != nil {
			t.Fatalf("failed to create %s: %v", f, err)
		}
	}
	return filesystem.NewProbe(fs)
}

// TableBuilder declares the records of a test document table
type TableBuilder struct {
	path    string
	records []types.DefinitionRecord
}

// NewTableBuilder starts a table for the document at DocumentPath
func NewTableBuilder() *TableBuilder {
	return &TableBuilder{path: DocumentPath}
}

// AtPath sets the document path
func (b *TableBuilder) AtPath(path string) *TableBuilder {
	b.path = path
	return b
}

// Static adds a static definition
func (b *TableBuilder) Static(name string) *TableBuilder {
	return b.Record(types.DefinitionRecord{Name: name, UpdateType: types.UpdateStatic})
}

// Linked adds a linked definition of source
func (b *TableBuilder) Linked(name, source string, layerStyle types.LayerStyle) *TableBuilder {
	return b.Record(types.DefinitionRecord{
		Name:          name,
		UpdateType:    types.UpdateLinked,
		LayerStyle:    layerStyle,
		SourceArchive: source,
	})
}

// Record adds rec, assigning an id when it has none
func (b *TableBuilder) Record(rec types.DefinitionRecord) *TableBuilder {
	if rec.ID == uuid.Nil {
		rec.ID = uuid.New()
	}
	b.records = append(b.records, rec)
	return b
}

// Build creates the table
func (b *TableBuilder) Build() *document.Table {
	return document.NewTable(b.path, b.records...)
}
