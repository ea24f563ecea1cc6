// Package resolve decides whether a file being inserted can reuse a
// definition already in the document, and what a new definition from that
// file should be called.
//
// Every scan skips records that are deleted, reference-only or unnamed. An
// unnamed record is a placeholder left behind by a nested linked update and
// must never be matched, returned or counted toward name uniqueness.
package resolve

import (
	"fmt"
	"strings"

	"github.com/johnmorse/rhinoinsertcommand/pkg/errors"
	"github.com/johnmorse/rhinoinsertcommand/pkg/logging"
	"github.com/johnmorse/rhinoinsertcommand/pkg/types"
	"github.com/rs/zerolog"
)

// Resolution is the outcome of resolving a file against the table
type Resolution struct {
	// ProposedName is the unique name a new definition would get. It is empty
	// when Match is set.
	ProposedName string
	// Match is the existing definition to reuse, nil to create a new one
	Match *types.DefinitionRecord
	// Candidates are the linked definitions already referencing the file
	Candidates []types.DefinitionRecord
}

// Engine resolves files and names against a document table
type Engine struct {
	table  types.DocumentTable
	logger zerolog.Logger
}

// NewEngine creates an engine reading table
func NewEngine(table types.DocumentTable) *Engine {
	return &Engine{
		table:  table,
		logger: logging.GetLogger("resolve.Engine"),
	}
}

// Table returns the table the engine reads
func (e *Engine) Table() types.DocumentTable {
	return e.table
}

func (e *Engine) visibleRecords() []types.DefinitionRecord {
	all := e.table.AllRecords()
	out := make([]types.DefinitionRecord, 0, len(all))
	for _, rec := range all {
		if rec.Visible() {
			out = append(out, rec)
		}
	}
	return out
}

// FindDefinitionsReferencing returns the linked definitions whose source
// archive is file, compared case-insensitively after trimming.
func (e *Engine) FindDefinitionsReferencing(file string) []types.DefinitionRecord {
	file = strings.TrimSpace(file)
	if file == "" {
		return nil
	}

	var found []types.DefinitionRecord
	for _, rec := range e.visibleRecords() {
		if !rec.IsLinked() {
			continue
		}
		if strings.EqualFold(strings.TrimSpace(rec.SourceArchive), file) {
			found = append(found, rec)
		}
	}
	return found
}

// FindFirstLinked returns the first record whose update type is exactly
// Linked. LinkedAndEmbedded records do not qualify.
func (e *Engine) FindFirstLinked(records []types.DefinitionRecord) *types.DefinitionRecord {
	for i := range records {
		if records[i].UpdateType == types.UpdateLinked {
			rec := records[i]
			return &rec
		}
	}
	return nil
}

// OptionsMatch reports whether rec could be reused for opts without
// changing how it updates, how its layers are styled or how nested links are
// treated.
func (e *Engine) OptionsMatch(opts *types.InsertionOptionSet, rec *types.DefinitionRecord) bool {
	if opts == nil || rec == nil {
		return false
	}
	return opts.UpdateType == rec.UpdateType &&
		opts.LayerStyle == rec.LayerStyle &&
		opts.SkipNestedLinkedDefinitions == rec.SkipNestedLinkedDefinitions
}

// ResolveNameAndMatch looks for a definition that already references file
// and could serve opts. A Linked request takes the first Linked candidate
// whatever its other options; anything else needs OptionsMatch. Without a
// match the file's base name is proposed, made unique against the table.
func (e *Engine) ResolveNameAndMatch(file string, opts *types.InsertionOptionSet) (Resolution, error) {
	file = strings.TrimSpace(file)
	if file == "" {
		return Resolution{}, errors.New(errors.ErrInvalidInput, "file name is required")
	}
	if opts == nil {
		opts = types.NewInsertionOptionSet()
	}

	res := Resolution{Candidates: e.FindDefinitionsReferencing(file)}

	if opts.UpdateType == types.UpdateLinked {
		res.Match = e.FindFirstLinked(res.Candidates)
	}
	if res.Match == nil {
		for i := range res.Candidates {
			if e.OptionsMatch(opts, &res.Candidates[i]) {
				rec := res.Candidates[i]
				res.Match = &rec
				break
			}
		}
	}

	if res.Match != nil {
		e.logger.Debug().
			Str("file", file).
			Str("match", res.Match.Name).
			Int("candidates", len(res.Candidates)).
			Msg("Reusing existing definition")
		return res, nil
	}

	res.ProposedName = e.ProposeName(file)
	e.logger.Debug().
		Str("file", file).
		Str("proposed", res.ProposedName).
		Int("candidates", len(res.Candidates)).
		Msg("No reusable definition, proposing new name")
	return res, nil
}

// SeedFromFile resolves file and seeds opts from the result: a match is
// copied over entirely, otherwise opts becomes a new-from-file candidate
// named after the proposal. The candidate's update type, layer style and
// nested link setting are kept.
func (e *Engine) SeedFromFile(file string, opts *types.InsertionOptionSet) (Resolution, error) {
	res, err := e.ResolveNameAndMatch(file, opts)
	if err != nil {
		return res, err
	}
	if res.Match != nil {
		opts.FromDefinition(res.Match)
		return res, nil
	}
	opts.FromFile(strings.TrimSpace(file), res.ProposedName, opts.UpdateType, opts.LayerStyle, opts.SkipNestedLinkedDefinitions)
	return res, nil
}

// FindDefinitionByName returns the visible record named name, compared
// case-insensitively after trimming.
func (e *Engine) FindDefinitionByName(name string) *types.DefinitionRecord {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil
	}
	for _, rec := range e.visibleRecords() {
		if types.NameEquals(rec.Name, name) {
			r := rec
			return &r
		}
	}
	return nil
}

// ProposeName derives a definition name from file and makes it unique
func (e *Engine) ProposeName(file string) string {
	base := strings.TrimSpace(types.BaseName(file))
	if base != "" && e.FindDefinitionByName(base) == nil {
		return base
	}
	return e.UniqueName(base)
}

// UniqueName returns a name no visible record uses. The table's generator
// is tried first; its answer is checked against the scan and numeric
// suffixes are used when it collides.
func (e *Engine) UniqueName(seed string) string {
	seed = strings.TrimSpace(seed)
	if generated := strings.TrimSpace(e.table.GenerateUnusedName(seed)); generated != "" &&
		e.FindDefinitionByName(generated) == nil {
		return generated
	}

	if seed == "" {
		seed = "Block"
	}
	for n := 1; ; n++ {
		name := fmt.Sprintf("%s %02d", seed, n)
		if e.FindDefinitionByName(name) == nil {
			return name
		}
	}
}
