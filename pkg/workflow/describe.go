package workflow

import (
	"fmt"

	"github.com/johnmorse/rhinoinsertcommand/pkg/filesystem"
	"github.com/johnmorse/rhinoinsertcommand/pkg/types"
)

const (
	msgCreatingFromFile  = "Creating block from file %q"
	msgInsertingFile     = "Inserting file %q"
	msgLinkedToFile      = "Linked to file %q"
	msgEmbeddedAndLinked = "Embedded and linked to file %q"
	msgEmbeddedBlock     = "Embedded block"
)

// Describe returns the link description shown under the block list for
// opt, given how it is about to be inserted.
func Describe(opt *types.InsertionOptionSet, insertAs types.InsertAs) string {
	if opt == nil || opt.BlockName == "" {
		return ""
	}

	source := filesystem.NormalizePath(opt.SourceArchive)
	switch {
	case opt.NeedsOptionsDialog && insertAs == types.InsertAsBlock:
		return fmt.Sprintf(msgCreatingFromFile, source)
	case opt.NeedsOptionsDialog:
		return fmt.Sprintf(msgInsertingFile, source)
	case opt.UpdateType == types.UpdateLinked:
		return fmt.Sprintf(msgLinkedToFile, source)
	case opt.UpdateType == types.UpdateLinkedAndEmbedded:
		return fmt.Sprintf(msgEmbeddedAndLinked, source)
	default:
		return msgEmbeddedBlock
	}
}

// Describe returns the link description of opt under the staged insert mode
func (w *Workflow) Describe(opt *types.InsertionOptionSet) string {
	return Describe(opt, w.staged.InsertAs)
}
