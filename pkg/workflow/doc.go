// Package workflow drives one insert interaction from the block list to a
// committed configuration.
//
// A Workflow owns the selectable block list and a staged copy of the
// command configuration. The caller edits the staged copy and the selected
// candidate, then calls Commit. Commit runs the candidate through
//
//	Collecting → [CreatingSubDialog] → ValidatingName →
//	CheckingSelfReference → CheckingOverwrite → Committed | Aborted
//
// and only writes to the caller's configuration on Committed. The document
// table is never written; applying the committed candidate is the caller's
// job (see document.Table.Apply).
//
// Candidates created from a file get a properties sub-flow before their
// first commit. The sub-flow is itself a Workflow built with WithSubFlow and
// applies the same name, self-reference and overwrite rules to its own
// candidate.
package workflow
