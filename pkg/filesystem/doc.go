// Package filesystem answers the file questions the insertion workflow asks:
// does a source archive exist, and is it the document being edited. Probes
// run over afero so tests can use an in-memory filesystem.
package filesystem
