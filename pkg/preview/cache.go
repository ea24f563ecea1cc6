package preview

import (
	"image"

	"github.com/google/uuid"
	"github.com/johnmorse/rhinoinsertcommand/pkg/logging"
	"github.com/johnmorse/rhinoinsertcommand/pkg/types"
	"github.com/rs/zerolog"
)

// Cache holds the last thumbnail produced for one option set
type Cache struct {
	key    Key
	valid  bool
	image  image.Image
	logger zerolog.Logger
}

// NewCache creates an empty cache
func NewCache() *Cache {
	return &Cache{logger: logging.GetLogger("preview.Cache")}
}

// Key returns the key of the cached entry, if any
func (c *Cache) Key() (Key, bool) {
	return c.key, c.valid
}

// Invalidate drops the cached entry
func (c *Cache) Invalidate() {
	c.key = Key{}
	c.valid = false
	c.image = nil
}

// GetOrRender returns the thumbnail for opt, reusing the cached one when it
// was produced for an equivalent request. File thumbnails are only
// extracted when probe reports the file exists and are scaled down to fit
// size; definition thumbnails are rendered at exactly size.
func (c *Cache) GetOrRender(opt *types.InsertionOptionSet, renderer types.PreviewRenderer, probe types.FileProbe,
	projection types.Projection, mode types.DisplayMode, size image.Point) image.Image {
	want := KeyFor(opt, projection, mode, size)
	if c.valid && c.key.Satisfies(want) {
		return c.image
	}

	c.Invalidate()
	c.image = c.produce(want, opt, renderer, probe)
	c.key = want
	c.valid = true
	return c.image
}

func (c *Cache) produce(key Key, opt *types.InsertionOptionSet, renderer types.PreviewRenderer, probe types.FileProbe) image.Image {
	if opt == nil || renderer == nil {
		return nil
	}

	switch key.Kind {
	case FromFile:
		if probe != nil && !probe.Exists(key.Source) {
			c.logger.Debug().Str("source", key.Source).Msg("Preview source file missing")
			return nil
		}
		img, err := renderer.ExtractFileThumbnail(key.Source)
		if err != nil {
			c.logger.Debug().Err(err).Str("source", key.Source).Msg("Thumbnail extraction failed")
			return nil
		}
		return FitInside(img, key.Size)
	default:
		if opt.BlockID == uuid.Nil {
			return nil
		}
		img, err := renderer.RenderDefinitionThumbnail(opt.BlockID, key.Projection, key.Mode, key.Size)
		if err != nil {
			c.logger.Debug().Err(err).Str("block", opt.BlockName).Msg("Thumbnail render failed")
			return nil
		}
		return img
	}
}
