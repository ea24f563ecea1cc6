package workflow

import (
	"strings"

	"github.com/google/uuid"
	"github.com/johnmorse/rhinoinsertcommand/pkg/errors"
	"github.com/johnmorse/rhinoinsertcommand/pkg/types"
)

// runSubFlow shows the properties form for a candidate created from a file
// and returns the candidate the form produced. The outer candidate is not
// touched.
func (w *Workflow) runSubFlow(candidate *types.InsertionOptionSet) (*types.InsertionOptionSet, error) {
	if w.deps.Form == nil {
		return nil, errors.New(errors.ErrInternal, "no properties form configured")
	}
	return newSubFlow(w, candidate.SourceArchive, candidate).Run()
}

// newSubFlow builds the properties sub-flow for file. Its only candidate is
// resolved against the table: an existing definition of the file seeds the
// options, the name is the file's unique name, and the candidate always
// creates or redefines from the file.
func newSubFlow(parent *Workflow, file string, seed *types.InsertionOptionSet) *Workflow {
	file = strings.TrimSpace(file)
	sub := New(parent.deps, parent.staged.Clone(),
		WithSubFlow(),
		WithPreviewStore(parent.previews),
		WithLogger(parent.logger.With().Str("subflowSource", file).Logger()),
	)

	c := types.NewInsertionOptionSet()
	c.DocumentID = parent.deps.Table.Path()
	c.BlockDescription = seed.BlockDescription
	c.URL = seed.URL
	c.URLDescription = seed.URLDescription
	c.UpdateType = seed.UpdateType
	c.LayerStyle = parent.staged.Defaults.LayerStyle
	c.SkipNestedLinkedDefinitions = seed.SkipNestedLinkedDefinitions

	res, err := sub.engine.SeedFromFile(file, c)
	if err != nil {
		sub.logger.Debug().Err(err).Msg("Could not resolve properties source")
	} else if res.Match == nil && len(res.Candidates) > 0 {
		name := c.BlockName
		c.FromDefinition(&res.Candidates[0])
		c.BlockName = name
	}

	if strings.TrimSpace(c.BlockName) == "" {
		c.BlockName = sub.engine.UniqueName("")
	}
	c.BlockID = uuid.Nil
	c.SourceArchive = file
	c.InsertSourceArchive = true
	c.NeedsOptionsDialog = true

	sub.blocks = []*types.InsertionOptionSet{c}
	sub.selected = c
	return sub
}

// Run loops the properties form until its candidate passes the same name,
// self-reference and overwrite rules as an outer commit. A linked candidate
// whose options match a definition already referencing the file reuses that
// definition. Closing the form, or cancelling at the overwrite question,
// returns an ErrCancelled error. A form that confirms a blank name it was
// given blank returns ErrEmptyName.
func (w *Workflow) Run() (*types.InsertionOptionSet, error) {
	if !w.subFlow || w.selected == nil {
		return nil, errors.New(errors.ErrInternal, "run is only available on a properties sub-flow")
	}
	c := w.selected
	referencing := w.engine.FindDefinitionsReferencing(c.SourceArchive)

	for {
		w.transition(StateCollecting, c)
		wasBlank := strings.TrimSpace(c.BlockName) == ""
		ok, err := w.deps.Form.Edit(c)
		if err != nil {
			w.transition(StateAborted, c)
			return nil, errors.Wrap(err, errors.ErrInternal, "properties form failed")
		}
		if !ok {
			w.transition(StateAborted, c)
			return nil, errors.New(errors.ErrCancelled, "block properties cancelled")
		}

		w.transition(StateValidatingName, c)
		name := strings.TrimSpace(c.BlockName)
		if name == "" {
			w.notify(msgEmptyName)
			if wasBlank {
				w.transition(StateCollecting, c)
				return nil, errors.New(errors.ErrEmptyName, "block name is required")
			}
			continue
		}
		c.BlockName = name

		if c.UpdateType.IsLinked() {
			if w.reuseMatching(c, referencing) {
				w.transition(StateCommitted, c)
				return c.Clone(), nil
			}
		}

		w.transition(StateCheckingSelfReference, c)
		if err := w.checkSelfReference(c.SourceArchive, types.InsertAsBlock); err != nil {
			w.transition(StateAborted, c)
			return nil, err
		}

		w.transition(StateCheckingOverwrite, c)
		decision, err := w.confirmOverwrite(c)
		if err != nil {
			w.transition(StateAborted, c)
			return nil, err
		}
		switch decision {
		case types.DecisionNo:
			continue
		case types.DecisionCancel:
			w.transition(StateAborted, c)
			return nil, errors.Newf(errors.ErrCancelled, "replacing %q declined", c.BlockName).
				WithDetail("reason", errors.ErrOverwriteDeclined)
		}

		c.NeedsOptionsDialog = false
		w.transition(StateCommitted, c)
		return c.Clone(), nil
	}
}

func (w *Workflow) reuseMatching(c *types.InsertionOptionSet, referencing []types.DefinitionRecord) bool {
	for i := range referencing {
		if w.engine.OptionsMatch(c, &referencing[i]) {
			c.FromDefinition(&referencing[i])
			c.NeedsOptionsDialog = false
			w.logger.Debug().
				Str("block", c.BlockName).
				Msg("Reusing definition with matching options")
			return true
		}
	}
	return false
}

// applySubFlowResult copies the sub-flow candidate into the list row,
// keeping the row's identity.
func (w *Workflow) applySubFlowResult(row, result *types.InsertionOptionSet) {
	id := row.ID
	row.CopyFrom(result)
	row.ID = id
	row.DocumentID = w.deps.Table.Path()
	row.NeedsOptionsDialog = false
	if w.previews != nil {
		w.previews.Forget(id)
	}
}
