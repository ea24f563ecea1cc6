// Package types defines the core types and interfaces used throughout the
// block insertion engine. This includes the definition records read from a
// document's definition table, the mutable InsertionOptionSet that describes
// one candidate insertion, the CommandConfiguration carried across command
// invocations, and the collaborator interfaces (DocumentTable,
// ConfirmationPrompt, PreviewRenderer, FileProbe) the engine is driven by.
package types
