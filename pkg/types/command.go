package types

import (
	"fmt"
	"math"
)

// Point3d is a point or per-axis scale in model space
type Point3d struct {
	X float64 `koanf:"x" toml:"x"`
	Y float64 `koanf:"y" toml:"y"`
	Z float64 `koanf:"z" toml:"z"`
}

// Origin is the world origin
var Origin = Point3d{}

// UnitScale is the identity scale
var UnitScale = Point3d{X: 1, Y: 1, Z: 1}

// IsValid reports whether every coordinate is a real number
func (p Point3d) IsValid() bool {
	return !math.IsNaN(p.X) && !math.IsNaN(p.Y) && !math.IsNaN(p.Z)
}

// DefinitionDefaults are the update settings offered for a definition created
// from a browsed file.
type DefinitionDefaults struct {
	UpdateType                  UpdateType `koanf:"update_type" toml:"update_type"`
	LayerStyle                  LayerStyle `koanf:"layer_style" toml:"layer_style"`
	SkipNestedLinkedDefinitions bool       `koanf:"skip_nested_linked_definitions" toml:"skip_nested_linked_definitions"`
}

// Placement holds the dialog's insertion point, scale and rotation values
type Placement struct {
	InsertAs                InsertAs `koanf:"insert_as" toml:"insert_as"`
	PromptForInsertionPoint bool     `koanf:"prompt_for_insertion_point" toml:"prompt_for_insertion_point"`
	InsertionPoint          Point3d  `koanf:"insertion_point" toml:"insertion_point"`
	PromptForScale          bool     `koanf:"prompt_for_scale" toml:"prompt_for_scale"`
	UniformlyScale          bool     `koanf:"uniformly_scale" toml:"uniformly_scale"`
	Scale                   Point3d  `koanf:"scale" toml:"scale"`
	PromptForRotationAngle  bool     `koanf:"prompt_for_rotation_angle" toml:"prompt_for_rotation_angle"`
	// RotationAngle is stored in radians
	RotationAngle float64 `koanf:"rotation_angle" toml:"rotation_angle"`
}

// DefaultPlacement returns the values used the first time the command runs
func DefaultPlacement() Placement {
	return Placement{
		InsertAs:                InsertAsBlock,
		PromptForInsertionPoint: true,
		InsertionPoint:          Origin,
		UniformlyScale:          true,
		Scale:                   UnitScale,
	}
}

// EffectiveScale collapses the scale to what the dialog would submit: axes
// whose controls are disabled by a prompt or by uniform scaling fall back to 1
// or to the X value.
func (p Placement) EffectiveScale() Point3d {
	x := 1.0
	if !p.PromptForScale {
		x = p.Scale.X
	}
	if p.UniformlyScale {
		return Point3d{X: x, Y: x, Z: x}
	}
	y, z := 1.0, 1.0
	if !p.PromptForScale {
		y, z = p.Scale.Y, p.Scale.Z
	}
	return Point3d{X: x, Y: y, Z: z}
}

// Validate rejects values the placement controls refuse: NaN coordinates and
// zero scale factors.
func (p Placement) Validate() error {
	if !p.PromptForInsertionPoint && !p.InsertionPoint.IsValid() {
		return fmt.Errorf("insertion point is not a number")
	}
	s := p.EffectiveScale()
	if !s.IsValid() || s.X == 0 || s.Y == 0 || s.Z == 0 {
		return fmt.Errorf("scale must be non-zero, got (%g, %g, %g)", s.X, s.Y, s.Z)
	}
	if math.IsNaN(p.RotationAngle) {
		return fmt.Errorf("rotation angle is not a number")
	}
	return nil
}

// CommandConfiguration holds the last used insert settings. It seeds the next
// workflow and receives the committed candidate.
type CommandConfiguration struct {
	Placement
	// Options is the last committed candidate
	Options InsertionOptionSet
	// Defaults seed definitions created from a browsed file
	Defaults DefinitionDefaults
	// ShowHiddenDefinitions includes '*' definitions in the block list
	ShowHiddenDefinitions bool
}

// DefaultCommandConfiguration returns the configuration used before any
// insert has been committed.
func DefaultCommandConfiguration() *CommandConfiguration {
	return &CommandConfiguration{
		Placement: DefaultPlacement(),
		Options:   *NewInsertionOptionSet(),
		Defaults: DefinitionDefaults{
			UpdateType: UpdateStatic,
			LayerStyle: LayerActive,
		},
	}
}

// CopyFrom copies every field from source
func (c *CommandConfiguration) CopyFrom(source *CommandConfiguration) {
	if source == nil {
		return
	}
	*c = *source
}

// Clone returns an independent copy
func (c *CommandConfiguration) Clone() *CommandConfiguration {
	clone := *c
	return &clone
}

// RotationDegrees returns the rotation angle in degrees
func (p Placement) RotationDegrees() float64 {
	return p.RotationAngle * 180 / math.Pi
}

// SetRotationDegrees stores a rotation given in degrees
func (p *Placement) SetRotationDegrees(deg float64) {
	p.RotationAngle = deg * math.Pi / 180
}
