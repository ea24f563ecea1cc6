// Package preview keeps the thumbnail shown for each row of the block list.
//
// A row's image is reused until the request changes. Size is always part of
// the comparison. Projection and display mode only matter for thumbnails
// rendered from a definition, since a file's embedded thumbnail ignores
// them. Switching between file and definition sources, or pointing a row at
// a different file or definition, always renders again.
//
// Failures never reach the caller: they become "no image" and the request is
// remembered so an identical request does not retry.
package preview
