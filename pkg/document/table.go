// Package document provides an in-memory instance definition table. It
// implements types.DocumentTable for the resolution engine and carries the
// commit step that materializes a committed InsertionOptionSet as a record.
package document

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/johnmorse/rhinoinsertcommand/pkg/errors"
	"github.com/johnmorse/rhinoinsertcommand/pkg/logging"
	"github.com/johnmorse/rhinoinsertcommand/pkg/types"
)

// DefaultNameSeed is used by GenerateUnusedName when no seed is given
const DefaultNameSeed = "Block"

// Table is a document's definition table. It is driven by a single modal
// workflow at a time and does no locking.
type Table struct {
	path    string
	records []types.DefinitionRecord
}

// NewTable creates a table for the document at path
func NewTable(path string, records ...types.DefinitionRecord) *Table {
	t := &Table{path: path}
	t.records = append(t.records, records...)
	return t
}

// Path returns the full path of the owning document
func (t *Table) Path() string {
	return t.path
}

// AllRecords returns a copy of every record in table order
func (t *Table) AllRecords() []types.DefinitionRecord {
	out := make([]types.DefinitionRecord, len(t.records))
	copy(out, t.records)
	return out
}

// Len returns the number of records, deleted ones included
func (t *Table) Len() int {
	return len(t.records)
}

// FindByName returns the first non-deleted record whose name matches
// case-insensitively. Reference records are skipped when ignoreReference.
func (t *Table) FindByName(name string, ignoreReference bool) *types.DefinitionRecord {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil
	}
	for i := range t.records {
		r := &t.records[i]
		if !r.HasName() || r.Deleted || (ignoreReference && r.Reference) {
			continue
		}
		if strings.EqualFold(r.Name, name) {
			rec := *r
			return &rec
		}
	}
	return nil
}

// FindByID returns the non-deleted record with the given id
func (t *Table) FindByID(id uuid.UUID) *types.DefinitionRecord {
	if id == uuid.Nil {
		return nil
	}
	if i := t.indexOf(id); i >= 0 {
		rec := t.records[i]
		return &rec
	}
	return nil
}

// GenerateUnusedName returns "<seed> 01", "<seed> 02", ... picking the first
// one no visible record uses.
func (t *Table) GenerateUnusedName(seed string) string {
	seed = strings.TrimSpace(seed)
	if seed == "" {
		seed = DefaultNameSeed
	}
	for n := 1; ; n++ {
		candidate := fmt.Sprintf("%s %02d", seed, n)
		if t.FindByName(candidate, true) == nil {
			return candidate
		}
	}
}

// Add appends a record, assigning an id when it has none
func (t *Table) Add(rec types.DefinitionRecord) (types.DefinitionRecord, error) {
	if rec.Visible() {
		if existing := t.FindByName(rec.Name, true); existing != nil {
			return types.DefinitionRecord{}, errors.Newf(errors.ErrAlreadyExists, "definition %q already exists", rec.Name).
				WithDetail("id", existing.ID.String())
		}
	}
	if rec.ID == uuid.Nil {
		rec.ID = uuid.New()
	}
	t.records = append(t.records, rec)
	return rec, nil
}

// Apply is the commit step. It materializes the committed candidate:
//   - bound and InsertSourceArchive: the bound record is redefined from the
//     candidate, keeping its id
//   - bound without a source: nothing changes, the existing definition is used
//   - unbound: a new record is added
//
// Inserting a file as loose objects never touches the table.
func (t *Table) Apply(cfg *types.CommandConfiguration) (*types.DefinitionRecord, error) {
	logger := logging.GetLogger("document.Table")
	opt := &cfg.Options

	if err := opt.Validate(); err != nil {
		return nil, errors.Wrap(err, errors.ErrInvalidInput, "cannot apply insertion")
	}

	if cfg.InsertAs != types.InsertAsBlock && opt.InsertSourceArchive {
		logger.Debug().Str("source", opt.SourceArchive).Str("insertAs", cfg.InsertAs.String()).
			Msg("Inserting file as objects, definition table unchanged")
		return nil, nil
	}

	if opt.IsBound() {
		i := t.indexOf(opt.BlockID)
		if i < 0 {
			return nil, errors.Newf(errors.ErrNotFound, "definition %s not found", opt.BlockID)
		}
		if !opt.InsertSourceArchive {
			rec := t.records[i]
			return &rec, nil
		}
		if other := t.FindByName(opt.BlockName, true); other != nil && other.ID != opt.BlockID {
			return nil, errors.Newf(errors.ErrAlreadyExists, "definition %q already exists", opt.BlockName)
		}
		t.records[i] = recordFromOptions(opt.BlockID, opt)
		logger.Info().Str("block", opt.BlockName).Str("id", opt.BlockID.String()).Msg("Redefined block definition")
		rec := t.records[i]
		return &rec, nil
	}

	if !opt.HasSource() {
		return nil, errors.New(errors.ErrNoTargetSelected, "nothing to insert")
	}
	rec, err := t.Add(recordFromOptions(uuid.New(), opt))
	if err != nil {
		return nil, err
	}
	logger.Info().Str("block", rec.Name).Str("id", rec.ID.String()).Msg("Created block definition")
	return &rec, nil
}

func (t *Table) indexOf(id uuid.UUID) int {
	for i := range t.records {
		if t.records[i].ID == id && !t.records[i].Deleted {
			return i
		}
	}
	return -1
}

// recordFromOptions builds the record a committed candidate describes. Only
// Linked definitions keep a layer style, only linked ones keep the archive.
func recordFromOptions(id uuid.UUID, opt *types.InsertionOptionSet) types.DefinitionRecord {
	rec := types.DefinitionRecord{
		ID:                          id,
		Name:                        strings.TrimSpace(opt.BlockName),
		Description:                 opt.BlockDescription,
		URL:                         opt.URL,
		URLDescription:              opt.URLDescription,
		UpdateType:                  opt.UpdateType,
		LayerStyle:                  types.LayerNone,
		SkipNestedLinkedDefinitions: opt.SkipNestedLinkedDefinitions,
	}
	if opt.UpdateType.IsLinked() {
		rec.SourceArchive = opt.SourceArchive
	}
	if opt.UpdateType == types.UpdateLinked {
		rec.LayerStyle = opt.LayerStyle
		if rec.LayerStyle == types.LayerNone {
			rec.LayerStyle = types.LayerActive
		}
	}
	return rec
}
