package workflow

import (
	"fmt"
	"image"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/johnmorse/rhinoinsertcommand/pkg/errors"
	"github.com/johnmorse/rhinoinsertcommand/pkg/filesystem"
	"github.com/johnmorse/rhinoinsertcommand/pkg/logging"
	"github.com/johnmorse/rhinoinsertcommand/pkg/preview"
	"github.com/johnmorse/rhinoinsertcommand/pkg/resolve"
	"github.com/johnmorse/rhinoinsertcommand/pkg/types"
	"github.com/rs/zerolog"
)

// Confirmation ids recorded in the workflow's confirmation log
const (
	ConfirmOverwrite = "overwrite"
)

const (
	msgInvalidValueTitle = "Invalid Insert Value"
	msgFileNotFound      = "File %q not found"
	msgSelfInsertion     = "You can not insert a model into itself"
	msgNoTarget          = "You must select a block or file to insert"
	msgEmptyName         = "Please enter a block name to insert"
	msgRedefineTitle     = "Redefine Block"
	msgRedefine          = "The %q block definition already exists. Do you want to replace it?"
)

// Deps are the collaborators a workflow talks to
type Deps struct {
	Table    types.DocumentTable
	Prompt   types.ConfirmationPrompt
	Probe    types.FileProbe
	Renderer types.PreviewRenderer
	Form     types.PropertiesForm
}

// Option configures a Workflow
type Option func(*Workflow)

// WithSubFlow marks the workflow as a properties sub-flow
func WithSubFlow() Option {
	return func(w *Workflow) {
		w.subFlow = true
	}
}

// WithLogger replaces the component logger
func WithLogger(logger zerolog.Logger) Option {
	return func(w *Workflow) {
		w.logger = logger
	}
}

// WithPreviewStore shares a preview store instead of creating one
func WithPreviewStore(store *preview.Store) Option {
	return func(w *Workflow) {
		w.previews = store
	}
}

// Workflow is one insert interaction. It is not safe for concurrent use;
// exactly one workflow runs per document at a time.
type Workflow struct {
	deps   Deps
	engine *resolve.Engine

	// cfg is the caller's configuration, written only on commit
	cfg *types.CommandConfiguration
	// staged is the copy the caller edits
	staged *types.CommandConfiguration

	blocks   []*types.InsertionOptionSet
	selected *types.InsertionOptionSet

	state        State
	subFlow      bool
	confirmation types.ConfirmationLog
	previews     *preview.Store
	logger       zerolog.Logger
}

// New creates a workflow seeded from cfg and the document table. The block
// list holds every listable definition sorted by name; the definition last
// committed is selected, or the first one.
func New(deps Deps, cfg *types.CommandConfiguration, opts ...Option) *Workflow {
	if cfg == nil {
		cfg = types.DefaultCommandConfiguration()
	}
	w := &Workflow{
		deps:   deps,
		engine: resolve.NewEngine(deps.Table),
		cfg:    cfg,
		staged: cfg.Clone(),
		state:  StateCollecting,
		logger: logging.GetLogger("workflow.Workflow"),
	}
	for _, opt := range opts {
		opt(w)
	}

	if w.previews == nil {
		store, err := preview.NewStore(0, deps.Renderer, deps.Probe)
		if err != nil {
			w.logger.Warn().Err(err).Msg("Preview store unavailable")
		}
		w.previews = store
	}

	if !w.subFlow {
		w.loadBlocks()
	}
	return w
}

func (w *Workflow) loadBlocks() {
	records := w.deps.Table.AllRecords()
	docPath := w.deps.Table.Path()

	for i := range records {
		if !records[i].Listable(w.staged.ShowHiddenDefinitions) {
			continue
		}
		w.blocks = append(w.blocks, types.NewOptionSetFromDefinition(&records[i], docPath))
	}
	sort.SliceStable(w.blocks, func(i, j int) bool {
		return types.CompareByName(w.blocks[i], w.blocks[j]) < 0
	})

	if last := w.cfg.Options.BlockID; last != uuid.Nil {
		for _, b := range w.blocks {
			if b.BlockID == last {
				w.selected = b
				break
			}
		}
	}
	if w.selected == nil && len(w.blocks) > 0 {
		w.selected = w.blocks[0]
	}

	w.logger.Debug().
		Int("blocks", len(w.blocks)).
		Str("selected", w.selected.String()).
		Msg("Block list loaded")
}

// Engine returns the resolution engine reading the document table
func (w *Workflow) Engine() *resolve.Engine {
	return w.engine
}

// Settings returns the staged configuration. Edits to it take effect only
// when a commit succeeds.
func (w *Workflow) Settings() *types.CommandConfiguration {
	return w.staged
}

// State returns the current state
func (w *Workflow) State() State {
	return w.state
}

// Confirmations returns the answers given so far
func (w *Workflow) Confirmations() *types.ConfirmationLog {
	return &w.confirmation
}

// Blocks returns the selectable block list
func (w *Workflow) Blocks() []*types.InsertionOptionSet {
	return w.blocks
}

// Selected returns the selected candidate, nil when nothing is selected
func (w *Workflow) Selected() *types.InsertionOptionSet {
	return w.selected
}

// Select selects the row with the given list id
func (w *Workflow) Select(id uuid.UUID) error {
	for _, b := range w.blocks {
		if b.ID == id {
			w.selected = b
			return nil
		}
	}
	return errors.Newf(errors.ErrNotFound, "no block list entry %s", id)
}

// SelectByName selects the row whose block name matches name
func (w *Workflow) SelectByName(name string) error {
	for _, b := range w.blocks {
		if types.NameEquals(b.BlockName, name) {
			w.selected = b
			return nil
		}
	}
	return errors.Newf(errors.ErrNotFound, "block %q not found", strings.TrimSpace(name))
}

// Preview returns the thumbnail of opt at the default preview size
func (w *Workflow) Preview(opt *types.InsertionOptionSet, projection types.Projection, mode types.DisplayMode) image.Image {
	return w.PreviewAt(opt, projection, mode, preview.DefaultSize)
}

// PreviewAt returns the thumbnail of opt at size
func (w *Workflow) PreviewAt(opt *types.InsertionOptionSet, projection types.Projection, mode types.DisplayMode, size image.Point) image.Image {
	if w.previews == nil {
		return nil
	}
	return w.previews.Preview(opt, projection, mode, size)
}

// BrowseFile adds a candidate that creates a definition from path and
// selects it. A blank path does nothing. The new candidate is named after
// the file, made unique, and takes the configured definition defaults.
func (w *Workflow) BrowseFile(path string) (*types.InsertionOptionSet, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, nil
	}

	if w.deps.Probe != nil && !w.deps.Probe.Exists(path) {
		w.notify(fmt.Sprintf(msgFileNotFound, path))
		return nil, errors.Newf(errors.ErrFileNotFound, "file %q not found", path).WithDetail("path", path)
	}

	if err := w.checkSelfReference(path, w.staged.InsertAs); err != nil {
		return nil, err
	}

	d := w.staged.Defaults
	opt := types.NewInsertionOptionSet()
	opt.DocumentID = w.deps.Table.Path()
	opt.FromFile(path, w.engine.ProposeName(path), d.UpdateType, d.LayerStyle, d.SkipNestedLinkedDefinitions)
	opt.NeedsOptionsDialog = true

	w.blocks = append(w.blocks, opt)
	w.selected = opt

	w.logger.Debug().
		Str("source", path).
		Str("block", opt.BlockName).
		Msg("Added candidate from file")
	return opt, nil
}

// Commit tries to finish the interaction with the selected candidate.
//
// OutcomeEditing means the attempt stopped before anything changed and the
// user may edit and retry; the error says why, and is nil when the user
// declined to replace an existing definition. OutcomeAborted ends the
// interaction. On OutcomeCommitted the configuration passed to New holds
// the staged settings and the final candidate.
func (w *Workflow) Commit() (Outcome, error) {
	if w.state.Terminal() {
		return w.outcomeForState(), errors.Newf(errors.ErrInvalidInput, "workflow already %s", w.state)
	}
	done := logging.LogOperationStart(w.logger, "commit")
	defer done()

	w.transition(StateCollecting, w.selected)

	candidate := w.selected
	if candidate == nil || (!candidate.IsBound() && !candidate.HasSource()) {
		w.notify(msgNoTarget)
		return OutcomeEditing, errors.New(errors.ErrNoTargetSelected, "no block or file selected")
	}

	insertAs := w.staged.InsertAs
	if insertAs == types.InsertAsBlock && candidate.InsertSourceArchive && candidate.NeedsOptionsDialog {
		w.transition(StateCreatingSubDialog, candidate)
		result, err := w.runSubFlow(candidate)
		if err != nil {
			if errors.Recoverable(err) {
				w.transition(StateCollecting, candidate)
				return OutcomeEditing, err
			}
			return w.abort(candidate, err)
		}
		w.applySubFlowResult(candidate, result)
	}

	work := candidate.Clone()

	w.transition(StateValidatingName, work)
	name := strings.TrimSpace(work.BlockName)
	if name == "" {
		w.notify(msgEmptyName)
		w.transition(StateCollecting, work)
		return OutcomeEditing, errors.New(errors.ErrEmptyName, "block name is required")
	}
	work.BlockName = name

	w.transition(StateCheckingSelfReference, work)
	if work.InsertSourceArchive {
		if err := w.checkSelfReference(work.SourceArchive, insertAs); err != nil {
			return w.abort(work, err)
		}
	}

	if insertAs == types.InsertAsBlock {
		w.transition(StateCheckingOverwrite, work)
		decision, err := w.confirmOverwrite(work)
		if err != nil {
			return w.abort(work, err)
		}
		switch decision {
		case types.DecisionNo:
			w.transition(StateCollecting, work)
			return OutcomeEditing, nil
		case types.DecisionCancel:
			return w.abort(work, errors.Newf(errors.ErrOverwriteDeclined, "replacing %q declined", work.BlockName))
		}
	}

	if err := w.staged.Placement.Validate(); err != nil {
		w.notify(err.Error())
		w.transition(StateCollecting, work)
		return OutcomeEditing, errors.Wrap(err, errors.ErrInvalidInput, "invalid placement")
	}

	final := w.staged.Clone()
	final.Options = *work
	w.cfg.CopyFrom(final)
	candidate.CopyFrom(work)

	w.transition(StateCommitted, work)
	w.logger.Info().
		Str("block", work.BlockName).
		Str("blockId", work.BlockID.String()).
		Str("source", work.SourceArchive).
		Str("insertAs", insertAs.String()).
		Msg("Insert committed")
	return OutcomeCommitted, nil
}

// Cancel ends the interaction without touching the configuration
func (w *Workflow) Cancel() {
	if !w.state.Terminal() {
		w.transition(StateAborted, w.selected)
	}
}

func (w *Workflow) abort(opt *types.InsertionOptionSet, err error) (Outcome, error) {
	w.transition(StateAborted, opt)
	return OutcomeAborted, err
}

func (w *Workflow) outcomeForState() Outcome {
	if w.state == StateCommitted {
		return OutcomeCommitted
	}
	return OutcomeAborted
}

// checkSelfReference rejects inserting the document into itself as a block
func (w *Workflow) checkSelfReference(source string, insertAs types.InsertAs) error {
	if insertAs != types.InsertAsBlock {
		return nil
	}
	docPath := w.deps.Table.Path()
	if !filesystem.SamePath(source, docPath) {
		return nil
	}
	w.notify(msgSelfInsertion)
	return errors.Newf(errors.ErrSelfInsertion, "cannot insert %q into itself", docPath).
		WithDetail("path", docPath)
}

// confirmOverwrite asks before a candidate takes the name of a definition
// it is not bound to. Replacing binds the candidate to that definition.
// Yes is returned when there is nothing to ask.
func (w *Workflow) confirmOverwrite(opt *types.InsertionOptionSet) (types.Decision, error) {
	existing := w.engine.FindDefinitionByName(opt.BlockName)
	if existing == nil || existing.ID == opt.BlockID {
		return types.DecisionYes, nil
	}
	if w.deps.Prompt == nil {
		return types.DecisionCancel, errors.New(errors.ErrInternal, "no confirmation prompt configured")
	}

	decision, err := w.deps.Prompt.AskYesNoCancel(types.ConfirmationRequest{
		ID:          ConfirmOverwrite,
		Title:       msgRedefineTitle,
		Description: fmt.Sprintf(msgRedefine, opt.BlockName),
		Items:       []string{existing.Name},
		Default:     types.DecisionNo,
	})
	if err != nil {
		return types.DecisionCancel, errors.Wrap(err, errors.ErrInternal, "confirmation failed")
	}
	w.confirmation.Record(ConfirmOverwrite, decision)

	w.logger.Debug().
		Str("block", opt.BlockName).
		Str("existing", existing.ID.String()).
		Str("decision", decision.String()).
		Msg("Overwrite confirmation")

	if decision == types.DecisionYes {
		opt.BlockID = existing.ID
	}
	return decision, nil
}

func (w *Workflow) notify(message string) {
	if w.deps.Prompt == nil {
		return
	}
	if err := w.deps.Prompt.Notify(msgInvalidValueTitle, message); err != nil {
		w.logger.Debug().Err(err).Msg("Notification failed")
	}
}

func (w *Workflow) transition(to State, opt *types.InsertionOptionSet) {
	from := w.state
	w.state = to
	ev := w.logger.Debug().
		Str("from", from.String()).
		Str("state", to.String()).
		Bool("subflow", w.subFlow)
	if opt != nil {
		ev = ev.Str("block", opt.BlockName).Str("source", opt.SourceArchive)
	}
	ev.Msg("Workflow transition")
}
