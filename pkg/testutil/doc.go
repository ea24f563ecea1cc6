// Package testutil provides fakes for the collaborators the insertion
// workflow depends on.
//
// Key components:
//   - MockRenderer: PreviewRenderer with optional funcs and call counters
//   - ScriptedPrompt: ConfirmationPrompt answering from a queue of decisions
//   - ScriptedForm: PropertiesForm applying a queue of edits
//   - NewMemoryProbe: FileProbe over an in-memory filesystem
//   - TableBuilder: declarative document table setup
//
// All fakes are plain values; each test builds its own.
package testutil
