package config

import (
	"fmt"
	"image"
	"strings"

	"github.com/google/uuid"
	"github.com/johnmorse/rhinoinsertcommand/pkg/types"
)

// Config is the persisted form of the insert settings
type Config struct {
	Insert                types.Placement          `koanf:"insert" toml:"insert"`
	Defaults              types.DefinitionDefaults `koanf:"defaults" toml:"defaults"`
	ShowHiddenDefinitions bool                     `koanf:"show_hidden_definitions" toml:"show_hidden_definitions"`
	// LastBlock is the id of the definition last inserted, used to select it
	// again next time
	LastBlock string  `koanf:"last_block" toml:"last_block,omitempty"`
	Preview   Preview `koanf:"preview" toml:"preview"`
}

// Preview holds the thumbnail settings
type Preview struct {
	Width       int    `koanf:"width" toml:"width"`
	Height      int    `koanf:"height" toml:"height"`
	Projection  string `koanf:"projection" toml:"projection"`
	DisplayMode string `koanf:"display_mode" toml:"display_mode"`
	CacheSize   int    `koanf:"cache_size" toml:"cache_size"`
	// ThumbnailDir holds rendered definition thumbnails named <id>.png
	ThumbnailDir string `koanf:"thumbnail_dir" toml:"thumbnail_dir"`
}

// Size returns the preview size
func (p Preview) Size() image.Point {
	return image.Pt(p.Width, p.Height)
}

// ParsedProjection returns the configured projection
func (p Preview) ParsedProjection() types.Projection {
	v, _ := types.ParseProjection(p.Projection)
	return v
}

// ParsedDisplayMode returns the configured display mode
func (p Preview) ParsedDisplayMode() types.DisplayMode {
	v, _ := types.ParseDisplayMode(p.DisplayMode)
	return v
}

// Validate checks the values a loaded file may get wrong
func (c *Config) Validate() error {
	if err := c.Insert.Validate(); err != nil {
		return err
	}
	if c.Preview.Width <= 0 || c.Preview.Height <= 0 {
		return fmt.Errorf("preview size must be positive, got %dx%d", c.Preview.Width, c.Preview.Height)
	}
	if _, err := types.ParseProjection(c.Preview.Projection); err != nil {
		return err
	}
	if _, err := types.ParseDisplayMode(c.Preview.DisplayMode); err != nil {
		return err
	}
	if c.LastBlock != "" {
		if _, err := uuid.Parse(c.LastBlock); err != nil {
			return fmt.Errorf("last_block is not a valid id: %w", err)
		}
	}
	return nil
}

// CommandConfiguration returns the settings that seed a workflow
func (c *Config) CommandConfiguration() *types.CommandConfiguration {
	cfg := types.DefaultCommandConfiguration()
	cfg.Placement = c.Insert
	cfg.Defaults = c.Defaults
	cfg.ShowHiddenDefinitions = c.ShowHiddenDefinitions
	if id, err := uuid.Parse(strings.TrimSpace(c.LastBlock)); err == nil {
		cfg.Options.BlockID = id
	}
	return cfg
}

// Remember copies a committed configuration back so it is saved for the
// next run.
func (c *Config) Remember(cfg *types.CommandConfiguration) {
	if cfg == nil {
		return
	}
	c.Insert = cfg.Placement
	c.Defaults = cfg.Defaults
	c.ShowHiddenDefinitions = cfg.ShowHiddenDefinitions
	c.LastBlock = ""
	if cfg.Options.IsBound() {
		c.LastBlock = cfg.Options.BlockID.String()
	}
}
