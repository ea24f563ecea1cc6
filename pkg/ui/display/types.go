// Package display holds the view models shared by the output renderers.
package display

import (
	"github.com/google/uuid"
	"github.com/johnmorse/rhinoinsertcommand/pkg/resolve"
	"github.com/johnmorse/rhinoinsertcommand/pkg/types"
	"github.com/johnmorse/rhinoinsertcommand/pkg/workflow"
)

// BlockRow is one entry of the block list
type BlockRow struct {
	BlockID     uuid.UUID        `json:"blockId"`
	Name        string           `json:"name"`
	UpdateType  types.UpdateType `json:"updateType"`
	LayerStyle  types.LayerStyle `json:"layerStyle"`
	Source      string           `json:"source,omitempty"`
	Description string           `json:"description,omitempty"`
	Selected    bool             `json:"selected,omitempty"`
	FromFile    bool             `json:"fromFile,omitempty"`
}

// BlockList is the block list of a document
type BlockList struct {
	Document string         `json:"document"`
	InsertAs types.InsertAs `json:"insertAs"`
	Blocks   []BlockRow     `json:"blocks"`
}

// Resolution is the outcome of resolving a file against the table
type Resolution struct {
	File         string     `json:"file"`
	ProposedName string     `json:"proposedName"`
	Match        *BlockRow  `json:"match,omitempty"`
	Candidates   []BlockRow `json:"candidates"`
}

// CommitResult describes what an insert did
type CommitResult struct {
	Outcome   string                       `json:"outcome"`
	Block     BlockRow                     `json:"block"`
	InsertAs  types.InsertAs               `json:"insertAs"`
	Created   bool                         `json:"created,omitempty"`
	Redefined bool                         `json:"redefined,omitempty"`
	Decisions []types.ConfirmationResponse `json:"decisions,omitempty"`
	Message   string                       `json:"message,omitempty"`
}

// NewBlockRow builds a row from a candidate
func NewBlockRow(opt *types.InsertionOptionSet, insertAs types.InsertAs) BlockRow {
	return BlockRow{
		BlockID:     opt.BlockID,
		Name:        opt.BlockName,
		UpdateType:  opt.UpdateType,
		LayerStyle:  opt.LayerStyle,
		Source:      opt.SourceArchive,
		Description: workflow.Describe(opt, insertAs),
		FromFile:    opt.NeedsOptionsDialog,
	}
}

// RecordRow builds a row from a table record
func RecordRow(rec *types.DefinitionRecord, insertAs types.InsertAs) BlockRow {
	opt := types.NewOptionSetFromDefinition(rec, "")
	return NewBlockRow(opt, insertAs)
}

// NewBlockList builds the list shown by a workflow
func NewBlockList(w *workflow.Workflow, document string) *BlockList {
	insertAs := w.Settings().InsertAs
	list := &BlockList{Document: document, InsertAs: insertAs, Blocks: []BlockRow{}}
	for _, b := range w.Blocks() {
		row := NewBlockRow(b, insertAs)
		row.Selected = b == w.Selected()
		list.Blocks = append(list.Blocks, row)
	}
	return list
}

// NewResolution builds the view of a resolution
func NewResolution(file string, res resolve.Resolution) *Resolution {
	view := &Resolution{File: file, ProposedName: res.ProposedName, Candidates: []BlockRow{}}
	if res.Match != nil {
		row := RecordRow(res.Match, types.InsertAsBlock)
		view.Match = &row
	}
	for i := range res.Candidates {
		view.Candidates = append(view.Candidates, RecordRow(&res.Candidates[i], types.InsertAsBlock))
	}
	return view
}

// NewCommitResult builds the view of a finished workflow. rec is the table
// record the insert used, nil when objects were inserted from a file.
func NewCommitResult(outcome workflow.Outcome, cfg *types.CommandConfiguration, rec *types.DefinitionRecord, created bool, log *types.ConfirmationLog) *CommitResult {
	result := &CommitResult{
		Outcome:  outcome.String(),
		Block:    NewBlockRow(&cfg.Options, cfg.InsertAs),
		InsertAs: cfg.InsertAs,
		Created:  created,
	}
	if rec != nil {
		result.Block.BlockID = rec.ID
		result.Redefined = !created && cfg.Options.InsertSourceArchive
	}
	if log != nil {
		result.Decisions = log.Responses
	}
	return result
}
