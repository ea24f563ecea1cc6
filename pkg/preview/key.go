package preview

import (
	"image"
	"strings"

	"github.com/johnmorse/rhinoinsertcommand/pkg/types"
)

// DefaultSize is the preview box used by the block list
var DefaultSize = image.Pt(200, 120)

// SourceKind says where a thumbnail comes from
type SourceKind int

const (
	// FromDefinition renders a definition already in the table
	FromDefinition SourceKind = iota
	// FromFile extracts the thumbnail embedded in a model file
	FromFile
)

// String returns the string representation of the source kind
func (k SourceKind) String() string {
	if k == FromFile {
		return "file"
	}
	return "definition"
}

// SourceKindFor classifies an option set. It previews its file when it is
// not bound to a definition or is about to be created from the file, and the
// file is set.
func SourceKindFor(opt *types.InsertionOptionSet) SourceKind {
	if opt == nil {
		return FromDefinition
	}
	if (!opt.IsBound() || opt.InsertSourceArchive) && opt.HasSource() {
		return FromFile
	}
	return FromDefinition
}

// Key records what a cached image was produced from
type Key struct {
	Kind       SourceKind
	Projection types.Projection
	Mode       types.DisplayMode
	Size       image.Point
	// Source is the file path or definition id the image came from
	Source string
}

// KeyFor builds the key for rendering opt with the given view settings
func KeyFor(opt *types.InsertionOptionSet, projection types.Projection, mode types.DisplayMode, size image.Point) Key {
	k := Key{
		Kind:       SourceKindFor(opt),
		Projection: projection,
		Mode:       mode,
		Size:       size,
	}
	if opt == nil {
		return k
	}
	if k.Kind == FromFile {
		k.Source = strings.TrimSpace(opt.SourceArchive)
	} else {
		k.Source = opt.BlockID.String()
	}
	return k
}

// Satisfies reports whether an image produced for k can be shown for want
func (k Key) Satisfies(want Key) bool {
	if k.Kind != want.Kind || k.Size != want.Size || !strings.EqualFold(k.Source, want.Source) {
		return false
	}
	if k.Kind == FromFile {
		return true
	}
	return k.Projection == want.Projection && k.Mode == want.Mode
}
