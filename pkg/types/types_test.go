// pkg/types/types_test.go
// TEST TYPE: Unit Tests
// DEPENDENCIES: None
// PURPOSE: Test enum parsing, record predicates and placement validation

package types_test

import (
	"math"
	"testing"

	"github.com/google/uuid"
	"github.com/johnmorse/rhinoinsertcommand/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseUpdateType(t *testing.T) {
	tests := []struct {
		in      string
		want    types.UpdateType
		wantErr bool
	}{
		{"static", types.UpdateStatic, false},
		{"", types.UpdateStatic, false},
		{"Embedded", types.UpdateEmbedded, false},
		{"linked", types.UpdateLinked, false},
		{"linked_and_embedded", types.UpdateLinkedAndEmbedded, false},
		{"LinkedAndEmbedded", types.UpdateLinkedAndEmbedded, false},
		{"bogus", types.UpdateStatic, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := types.ParseUpdateType(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEnumTextRoundTrip(t *testing.T) {
	for _, u := range []types.UpdateType{types.UpdateStatic, types.UpdateEmbedded, types.UpdateLinked, types.UpdateLinkedAndEmbedded} {
		text, err := u.MarshalText()
		require.NoError(t, err)
		var back types.UpdateType
		require.NoError(t, back.UnmarshalText(text))
		assert.Equal(t, u, back)
	}

	var l types.LayerStyle
	require.NoError(t, l.UnmarshalText([]byte("reference")))
	assert.Equal(t, types.LayerReference, l)

	var i types.InsertAs
	require.NoError(t, i.UnmarshalText([]byte("objects-in-group")))
	assert.Equal(t, types.InsertAsObjectsInGroup, i)
	assert.Error(t, i.UnmarshalText([]byte("sideways")))
}

func TestParsePreviewEnums(t *testing.T) {
	p, err := types.ParseProjection("Front")
	require.NoError(t, err)
	assert.Equal(t, types.ProjectionFront, p)

	p, err = types.ParseProjection("")
	require.NoError(t, err)
	assert.Equal(t, types.DefaultProjection, p)

	_, err = types.ParseProjection("isometric")
	assert.Error(t, err)

	m, err := types.ParseDisplayMode("shaded")
	require.NoError(t, err)
	assert.Equal(t, types.DisplayShaded, m)
	assert.Equal(t, "rendered", types.DisplayRenderPreview.String())
}

func TestDefinitionRecordPredicates(t *testing.T) {
	named := types.DefinitionRecord{ID: uuid.New(), Name: "Chair"}
	hidden := types.DefinitionRecord{ID: uuid.New(), Name: "*anon"}
	unnamed := types.DefinitionRecord{ID: uuid.New()}
	deleted := types.DefinitionRecord{ID: uuid.New(), Name: "Gone", Deleted: true}
	reference := types.DefinitionRecord{ID: uuid.New(), Name: "Ref", Reference: true}
	tenuous := types.DefinitionRecord{ID: uuid.New(), Name: "Nested", Tenuous: true}
	nilID := types.DefinitionRecord{Name: "Orphan"}

	assert.True(t, named.Visible())
	assert.False(t, unnamed.Visible())
	assert.False(t, deleted.Visible())
	assert.False(t, reference.Visible())
	assert.True(t, tenuous.Visible())

	assert.True(t, named.Listable(false))
	assert.False(t, hidden.Listable(false))
	assert.True(t, hidden.Listable(true))
	assert.False(t, unnamed.Listable(true))
	assert.False(t, tenuous.Listable(true))
	assert.False(t, nilID.Listable(true))

	var none *types.DefinitionRecord
	assert.False(t, none.HasName())
	assert.False(t, none.IsLinked())
}

func TestPlacementEffectiveScale(t *testing.T) {
	p := types.DefaultPlacement()
	p.Scale = types.Point3d{X: 2, Y: 3, Z: 4}

	assert.Equal(t, types.Point3d{X: 2, Y: 2, Z: 2}, p.EffectiveScale())

	p.UniformlyScale = false
	assert.Equal(t, types.Point3d{X: 2, Y: 3, Z: 4}, p.EffectiveScale())

	p.PromptForScale = true
	assert.Equal(t, types.UnitScale, p.EffectiveScale())
}

func TestPlacementValidate(t *testing.T) {
	p := types.DefaultPlacement()
	require.NoError(t, p.Validate())

	p.Scale = types.Point3d{X: 0, Y: 1, Z: 1}
	assert.Error(t, p.Validate())

	p = types.DefaultPlacement()
	p.PromptForInsertionPoint = false
	p.InsertionPoint = types.Point3d{X: math.NaN()}
	assert.Error(t, p.Validate())
}

func TestRotationDegrees(t *testing.T) {
	cfg := types.DefaultCommandConfiguration()
	cfg.SetRotationDegrees(90)

	assert.InDelta(t, math.Pi/2, cfg.RotationAngle, 1e-12)
	assert.InDelta(t, 90, cfg.RotationDegrees(), 1e-9)
}

func TestConfirmationLog(t *testing.T) {
	var log types.ConfirmationLog
	_, ok := log.Last("overwrite")
	assert.False(t, ok)

	log.Record("overwrite", types.DecisionNo)
	log.Record("overwrite", types.DecisionYes)

	d, ok := log.Last("overwrite")
	assert.True(t, ok)
	assert.Equal(t, types.DecisionYes, d)
	assert.Equal(t, "cancel", types.DecisionCancel.String())
}
