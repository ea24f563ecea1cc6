// pkg/config/loader_test.go
// TEST TYPE: Unit Tests
// DEPENDENCIES: Temp directories, environment variables
// PURPOSE: Test configuration layering, validation and persistence

package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/johnmorse/rhinoinsertcommand/pkg/config"
	"github.com/johnmorse/rhinoinsertcommand/pkg/errors"
	"github.com/johnmorse/rhinoinsertcommand/pkg/paths"
	"github.com/johnmorse/rhinoinsertcommand/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points the default config location at an empty directory
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv(paths.EnvConfigDir, dir)
	t.Setenv(paths.EnvStateDir, dir)
	return dir
}

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestDefaultMatchesCommandDefaults(t *testing.T) {
	cfg := config.Default()
	expected := types.DefaultCommandConfiguration()

	assert.Equal(t, expected.Placement, cfg.Insert)
	assert.Equal(t, expected.Defaults, cfg.Defaults)
	assert.False(t, cfg.ShowHiddenDefinitions)
	assert.Equal(t, 200, cfg.Preview.Width)
	assert.Equal(t, 120, cfg.Preview.Height)
	assert.Equal(t, types.DefaultProjection, cfg.Preview.ParsedProjection())
	assert.Equal(t, types.DefaultDisplayMode, cfg.Preview.ParsedDisplayMode())
	assert.NoError(t, cfg.Validate())
}

func TestLoadWithoutUserFile(t *testing.T) {
	isolate(t)

	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestLoadUserFile(t *testing.T) {
	dir := isolate(t)
	writeConfig(t, dir, `
show_hidden_definitions = true

[insert]
insert_as = "objects"
scale = { x = 2.0, y = 2.0, z = 2.0 }

[defaults]
update_type = "linked_and_embedded"
layer_style = "reference"
`)

	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.True(t, cfg.ShowHiddenDefinitions)
	assert.Equal(t, types.InsertAsObjects, cfg.Insert.InsertAs)
	assert.Equal(t, types.Point3d{X: 2, Y: 2, Z: 2}, cfg.Insert.Scale)
	assert.True(t, cfg.Insert.PromptForInsertionPoint)
	assert.Equal(t, types.UpdateLinkedAndEmbedded, cfg.Defaults.UpdateType)
	assert.Equal(t, types.LayerReference, cfg.Defaults.LayerStyle)
}

func TestLoadPrecedence(t *testing.T) {
	dir := isolate(t)
	path := writeConfig(t, dir, `
[insert]
insert_as = "objects"

[preview]
width = 100
`)
	t.Setenv("BLOCKINSERT_INSERT__INSERT_AS", "objects_in_group")
	t.Setenv("BLOCKINSERT_PREVIEW__WIDTH", "320")
	t.Setenv("BLOCKINSERT_DEFAULTS__SKIP_NESTED_LINKED_DEFINITIONS", "true")

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, types.InsertAsObjectsInGroup, cfg.Insert.InsertAs)
	assert.Equal(t, 320, cfg.Preview.Width)
	assert.True(t, cfg.Defaults.SkipNestedLinkedDefinitions)

	cfg, err = config.LoadWithOverrides(path, map[string]interface{}{
		"insert.insert_as":     "block",
		"defaults.update_type": "linked",
	})
	require.NoError(t, err)
	assert.Equal(t, types.InsertAsBlock, cfg.Insert.InsertAs)
	assert.Equal(t, types.UpdateLinked, cfg.Defaults.UpdateType)
	assert.Equal(t, 320, cfg.Preview.Width)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		code    errors.ErrorCode
	}{
		{"bad_toml", "[insert\n", errors.ErrConfigParse},
		{"unknown_enum", "[insert]\ninsert_as = \"sideways\"\n", errors.ErrConfigParse},
		{"zero_scale", "[insert]\nuniformly_scale = true\nscale = { x = 0.0, y = 1.0, z = 1.0 }\n", errors.ErrConfigValid},
		{"bad_preview_size", "[preview]\nwidth = 0\n", errors.ErrConfigValid},
		{"bad_projection", "[preview]\nprojection = \"isometric\"\n", errors.ErrConfigValid},
		{"bad_last_block", "last_block = \"nope\"\n", errors.ErrConfigValid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, isolate(t), tt.content)
			_, err := config.Load(path)
			assert.True(t, errors.IsErrorCode(err, tt.code), "got %v", err)
		})
	}

	t.Run("explicit_missing", func(t *testing.T) {
		_, err := config.Load(filepath.Join(isolate(t), "missing.toml"))
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigLoad))
	})
}

func TestSaveAndReload(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "nested", "config.toml")

	committed := types.DefaultCommandConfiguration()
	committed.InsertAs = types.InsertAsObjectsInGroup
	committed.PromptForInsertionPoint = false
	committed.InsertionPoint = types.Point3d{X: 1.5, Y: -2, Z: 3}
	committed.SetRotationDegrees(90)
	committed.Defaults.UpdateType = types.UpdateLinked
	committed.Options.BlockID = uuid.New()

	cfg := config.Default()
	cfg.Remember(committed)
	require.NoError(t, config.Save(path, cfg))

	loaded, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)

	seeded := loaded.CommandConfiguration()
	assert.Equal(t, committed.Placement, seeded.Placement)
	assert.Equal(t, committed.Defaults, seeded.Defaults)
	assert.Equal(t, committed.Options.BlockID, seeded.Options.BlockID)
}

func TestRememberUnboundClearsLastBlock(t *testing.T) {
	cfg := config.Default()
	cfg.LastBlock = uuid.NewString()

	cfg.Remember(types.DefaultCommandConfiguration())
	assert.Empty(t, cfg.LastBlock)
	assert.Equal(t, uuid.Nil, cfg.CommandConfiguration().Options.BlockID)

	cfg.Remember(nil)
	assert.Empty(t, cfg.LastBlock)
}
