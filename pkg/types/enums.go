package types

import (
	"fmt"
	"strings"
)

// UpdateType controls where an instance definition's geometry comes from
type UpdateType int

const (
	// UpdateStatic copies the geometry into the document once
	UpdateStatic UpdateType = iota
	// UpdateEmbedded stores the geometry in the document
	UpdateEmbedded
	// UpdateLinked reads the geometry live from the source archive
	UpdateLinked
	// UpdateLinkedAndEmbedded embeds the geometry and keeps the link for updates
	UpdateLinkedAndEmbedded
)

var updateTypeNames = map[UpdateType]string{
	UpdateStatic:            "static",
	UpdateEmbedded:          "embedded",
	UpdateLinked:            "linked",
	UpdateLinkedAndEmbedded: "linked_and_embedded",
}

// String returns the string representation of the update type
func (u UpdateType) String() string {
	if s, ok := updateTypeNames[u]; ok {
		return s
	}
	return "unknown"
}

// IsLinked reports whether the update type references a source archive
func (u UpdateType) IsLinked() bool {
	return u == UpdateLinked || u == UpdateLinkedAndEmbedded
}

// ParseUpdateType parses a string into an UpdateType value
func ParseUpdateType(s string) (UpdateType, error) {
	switch normalizeEnum(s) {
	case "static", "":
		return UpdateStatic, nil
	case "embedded":
		return UpdateEmbedded, nil
	case "linked":
		return UpdateLinked, nil
	case "linkedandembedded", "embeddedandlinked":
		return UpdateLinkedAndEmbedded, nil
	default:
		return UpdateStatic, fmt.Errorf("unknown update type: %s", s)
	}
}

// MarshalText implements encoding.TextMarshaler
func (u UpdateType) MarshalText() ([]byte, error) {
	return []byte(u.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (u *UpdateType) UnmarshalText(text []byte) error {
	v, err := ParseUpdateType(string(text))
	if err != nil {
		return err
	}
	*u = v
	return nil
}

// LayerStyle controls how a linked definition's layers merge into the document
type LayerStyle int

const (
	// LayerNone applies to definitions that are not linked
	LayerNone LayerStyle = iota
	// LayerActive merges linked layers as ordinary document layers
	LayerActive
	// LayerReference keeps linked layers as reference layers
	LayerReference
)

// String returns the string representation of the layer style
func (l LayerStyle) String() string {
	switch l {
	case LayerNone:
		return "none"
	case LayerActive:
		return "active"
	case LayerReference:
		return "reference"
	default:
		return "unknown"
	}
}

// ParseLayerStyle parses a string into a LayerStyle value
func ParseLayerStyle(s string) (LayerStyle, error) {
	switch normalizeEnum(s) {
	case "none":
		return LayerNone, nil
	case "active", "":
		return LayerActive, nil
	case "reference":
		return LayerReference, nil
	default:
		return LayerActive, fmt.Errorf("unknown layer style: %s", s)
	}
}

// MarshalText implements encoding.TextMarshaler
func (l LayerStyle) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (l *LayerStyle) UnmarshalText(text []byte) error {
	v, err := ParseLayerStyle(string(text))
	if err != nil {
		return err
	}
	*l = v
	return nil
}

// InsertAs controls what kind of geometry an insert produces
type InsertAs int

const (
	// InsertAsBlock inserts an instance of a definition (block)
	InsertAsBlock InsertAs = iota
	// InsertAsObjectsInGroup inserts individual objects grouped together
	InsertAsObjectsInGroup
	// InsertAsObjects inserts individual objects
	InsertAsObjects
)

// String returns the string representation of the insert mode
func (i InsertAs) String() string {
	switch i {
	case InsertAsBlock:
		return "block"
	case InsertAsObjectsInGroup:
		return "objects_in_group"
	case InsertAsObjects:
		return "objects"
	default:
		return "unknown"
	}
}

// ParseInsertAs parses a string into an InsertAs value
func ParseInsertAs(s string) (InsertAs, error) {
	switch normalizeEnum(s) {
	case "block", "":
		return InsertAsBlock, nil
	case "objectsingroup", "group":
		return InsertAsObjectsInGroup, nil
	case "objects":
		return InsertAsObjects, nil
	default:
		return InsertAsBlock, fmt.Errorf("unknown insert mode: %s", s)
	}
}

// MarshalText implements encoding.TextMarshaler
func (i InsertAs) MarshalText() ([]byte, error) {
	return []byte(i.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (i *InsertAs) UnmarshalText(text []byte) error {
	v, err := ParseInsertAs(string(text))
	if err != nil {
		return err
	}
	*i = v
	return nil
}

// Projection is the viewport projection used to render a definition preview
type Projection int

const (
	ProjectionTop Projection = iota
	ProjectionBottom
	ProjectionLeft
	ProjectionRight
	ProjectionFront
	ProjectionBack
	ProjectionPerspective
)

// DefaultProjection is used until the user picks another one
const DefaultProjection = ProjectionPerspective

var projectionNames = []string{"top", "bottom", "left", "right", "front", "back", "perspective"}

// String returns the string representation of the projection
func (p Projection) String() string {
	if int(p) >= 0 && int(p) < len(projectionNames) {
		return projectionNames[p]
	}
	return "unknown"
}

// ParseProjection parses a string into a Projection value
func ParseProjection(s string) (Projection, error) {
	n := normalizeEnum(s)
	if n == "" {
		return DefaultProjection, nil
	}
	for i, name := range projectionNames {
		if name == n {
			return Projection(i), nil
		}
	}
	return DefaultProjection, fmt.Errorf("unknown projection: %s", s)
}

// DisplayMode is the shading mode used to render a definition preview
type DisplayMode int

const (
	DisplayWireframe DisplayMode = iota
	DisplayShaded
	DisplayRenderPreview
)

// DefaultDisplayMode is used until the user picks another one
const DefaultDisplayMode = DisplayWireframe

// String returns the string representation of the display mode
func (d DisplayMode) String() string {
	switch d {
	case DisplayWireframe:
		return "wireframe"
	case DisplayShaded:
		return "shaded"
	case DisplayRenderPreview:
		return "rendered"
	default:
		return "unknown"
	}
}

// ParseDisplayMode parses a string into a DisplayMode value
func ParseDisplayMode(s string) (DisplayMode, error) {
	switch normalizeEnum(s) {
	case "wireframe", "":
		return DisplayWireframe, nil
	case "shaded":
		return DisplayShaded, nil
	case "rendered", "renderpreview":
		return DisplayRenderPreview, nil
	default:
		return DefaultDisplayMode, fmt.Errorf("unknown display mode: %s", s)
	}
}

// normalizeEnum lowercases and strips separators so "Linked-And-Embedded",
// "linked_and_embedded" and "LinkedAndEmbedded" parse the same way.
func normalizeEnum(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.NewReplacer("_", "", "-", "", " ", "").Replace(s)
}
