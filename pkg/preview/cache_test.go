// pkg/preview/cache_test.go
// TEST TYPE: Unit Tests
// DEPENDENCIES: Mock renderer, in-memory probe
// PURPOSE: Test thumbnail reuse, invalidation and failure handling

package preview_test

import (
	"fmt"
	"image"
	"testing"

	"github.com/google/uuid"
	"github.com/johnmorse/rhinoinsertcommand/pkg/preview"
	"github.com/johnmorse/rhinoinsertcommand/pkg/testutil"
	"github.com/johnmorse/rhinoinsertcommand/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func definitionOptions() *types.InsertionOptionSet {
	o := types.NewInsertionOptionSet()
	o.BlockID = uuid.New()
	o.BlockName = "Chair"
	return o
}

func fileOptions(path string) *types.InsertionOptionSet {
	o := types.NewInsertionOptionSet()
	o.FromFile(path, "box", types.UpdateStatic, types.LayerActive, false)
	return o
}

func TestSourceKindFor(t *testing.T) {
	bound := definitionOptions()

	boundWithSource := definitionOptions()
	boundWithSource.SourceArchive = "/lib/chair.3dm"

	redefine := definitionOptions()
	redefine.SourceArchive = "/lib/chair.3dm"
	redefine.InsertSourceArchive = true

	tests := []struct {
		name string
		opt  *types.InsertionOptionSet
		want preview.SourceKind
	}{
		{"bound definition", bound, preview.FromDefinition},
		{"linked definition", boundWithSource, preview.FromDefinition},
		{"redefine from file", redefine, preview.FromFile},
		{"new from file", fileOptions("/models/box.3dm"), preview.FromFile},
		{"unbound without file", types.NewInsertionOptionSet(), preview.FromDefinition},
		{"nil", nil, preview.FromDefinition},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, preview.SourceKindFor(tt.opt))
		})
	}
}

func TestCacheReusesIdenticalRequest(t *testing.T) {
	renderer := &testutil.MockRenderer{}
	cache := preview.NewCache()
	opt := definitionOptions()

	first := cache.GetOrRender(opt, renderer, nil, types.ProjectionTop, types.DisplayShaded, preview.DefaultSize)
	second := cache.GetOrRender(opt, renderer, nil, types.ProjectionTop, types.DisplayShaded, preview.DefaultSize)

	require.NotNil(t, first)
	assert.Same(t, first, second)
	assert.Equal(t, 1, renderer.RenderCalls)
}

func TestCacheSizeChangeRerenders(t *testing.T) {
	t.Run("definition", func(t *testing.T) {
		renderer := &testutil.MockRenderer{}
		cache := preview.NewCache()
		opt := definitionOptions()

		big := cache.GetOrRender(opt, renderer, nil, types.DefaultProjection, types.DefaultDisplayMode, image.Pt(200, 120))
		small := cache.GetOrRender(opt, renderer, nil, types.DefaultProjection, types.DefaultDisplayMode, image.Pt(100, 80))

		assert.Equal(t, 2, renderer.RenderCalls)
		assert.Equal(t, image.Pt(200, 120), big.Bounds().Size())
		assert.Equal(t, image.Pt(100, 80), small.Bounds().Size())
	})

	t.Run("file", func(t *testing.T) {
		renderer := &testutil.MockRenderer{FileSize: image.Pt(400, 300)}
		probe := testutil.NewMemoryProbe(t, "/models/box.3dm")
		cache := preview.NewCache()
		opt := fileOptions("/models/box.3dm")

		big := cache.GetOrRender(opt, renderer, probe, types.DefaultProjection, types.DefaultDisplayMode, image.Pt(200, 120))
		small := cache.GetOrRender(opt, renderer, probe, types.DefaultProjection, types.DefaultDisplayMode, image.Pt(100, 80))

		assert.Equal(t, 2, renderer.ExtractCalls)
		assert.Equal(t, image.Pt(160, 120), big.Bounds().Size())
		assert.Equal(t, image.Pt(100, 75), small.Bounds().Size())
	})
}

func TestCacheViewChanges(t *testing.T) {
	t.Run("definition rerenders on projection and mode", func(t *testing.T) {
		renderer := &testutil.MockRenderer{}
		cache := preview.NewCache()
		opt := definitionOptions()

		cache.GetOrRender(opt, renderer, nil, types.ProjectionTop, types.DisplayWireframe, preview.DefaultSize)
		cache.GetOrRender(opt, renderer, nil, types.ProjectionFront, types.DisplayWireframe, preview.DefaultSize)
		cache.GetOrRender(opt, renderer, nil, types.ProjectionFront, types.DisplayShaded, preview.DefaultSize)

		assert.Equal(t, 3, renderer.RenderCalls)
	})

	t.Run("file ignores projection and mode", func(t *testing.T) {
		renderer := &testutil.MockRenderer{}
		probe := testutil.NewMemoryProbe(t, "/models/box.3dm")
		cache := preview.NewCache()
		opt := fileOptions("/models/box.3dm")

		cache.GetOrRender(opt, renderer, probe, types.ProjectionTop, types.DisplayWireframe, preview.DefaultSize)
		cache.GetOrRender(opt, renderer, probe, types.ProjectionFront, types.DisplayRenderPreview, preview.DefaultSize)

		assert.Equal(t, 1, renderer.ExtractCalls)
	})
}

func TestCacheSourceChangeRecomputes(t *testing.T) {
	renderer := &testutil.MockRenderer{}
	probe := testutil.NewMemoryProbe(t, "/models/box.3dm", "/models/lamp.3dm")
	cache := preview.NewCache()
	opt := fileOptions("/models/box.3dm")

	cache.GetOrRender(opt, renderer, probe, types.DefaultProjection, types.DefaultDisplayMode, preview.DefaultSize)
	opt.SourceArchive = "/models/lamp.3dm"
	cache.GetOrRender(opt, renderer, probe, types.DefaultProjection, types.DefaultDisplayMode, preview.DefaultSize)
	assert.Equal(t, 2, renderer.ExtractCalls)

	opt.InsertSourceArchive = false
	opt.BlockID = uuid.New()
	cache.GetOrRender(opt, renderer, probe, types.DefaultProjection, types.DefaultDisplayMode, preview.DefaultSize)
	assert.Equal(t, 1, renderer.RenderCalls)
}

func TestCacheFailureIsRemembered(t *testing.T) {
	renderer := &testutil.MockRenderer{
		RenderFunc: func(uuid.UUID, types.Projection, types.DisplayMode, image.Point) (image.Image, error) {
			return nil, fmt.Errorf("render crashed")
		},
	}
	cache := preview.NewCache()
	opt := definitionOptions()

	assert.Nil(t, cache.GetOrRender(opt, renderer, nil, types.DefaultProjection, types.DefaultDisplayMode, preview.DefaultSize))
	assert.Nil(t, cache.GetOrRender(opt, renderer, nil, types.DefaultProjection, types.DefaultDisplayMode, preview.DefaultSize))
	assert.Equal(t, 1, renderer.RenderCalls)

	_, ok := cache.Key()
	assert.True(t, ok)
}

func TestCacheMissingFileNotExtracted(t *testing.T) {
	renderer := &testutil.MockRenderer{}
	probe := testutil.NewMemoryProbe(t)
	cache := preview.NewCache()

	img := cache.GetOrRender(fileOptions("/models/gone.3dm"), renderer, probe, types.DefaultProjection, types.DefaultDisplayMode, preview.DefaultSize)

	assert.Nil(t, img)
	assert.Equal(t, 0, renderer.ExtractCalls)
}

func TestCacheInvalidate(t *testing.T) {
	renderer := &testutil.MockRenderer{}
	cache := preview.NewCache()
	opt := definitionOptions()

	cache.GetOrRender(opt, renderer, nil, types.DefaultProjection, types.DefaultDisplayMode, preview.DefaultSize)
	cache.Invalidate()
	cache.GetOrRender(opt, renderer, nil, types.DefaultProjection, types.DefaultDisplayMode, preview.DefaultSize)

	assert.Equal(t, 2, renderer.RenderCalls)
}
