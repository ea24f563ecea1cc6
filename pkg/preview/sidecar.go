package preview

import (
	"bytes"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/johnmorse/rhinoinsertcommand/pkg/errors"
	"github.com/johnmorse/rhinoinsertcommand/pkg/paths"
	"github.com/johnmorse/rhinoinsertcommand/pkg/types"
	"github.com/spf13/afero"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

// sidecarExts are tried in order next to a model file
var sidecarExts = []string{".png", ".jpg", ".jpeg", ".bmp", ".webp"}

// SidecarRenderer implements types.PreviewRenderer from image files stored
// next to model files. A model "chair.3dm" is previewed by "chair.3dm.png"
// or "chair.png" (any of the supported image extensions). Definitions are
// previewed by "<id>.png" in the thumbnail directory, falling back to the
// sidecar of their source archive.
type SidecarRenderer struct {
	fs       afero.Fs
	table    types.DocumentTable
	thumbDir string
}

// NewSidecarRenderer creates a renderer reading from fs
func NewSidecarRenderer(fs afero.Fs, table types.DocumentTable, thumbDir string) *SidecarRenderer {
	return &SidecarRenderer{fs: fs, table: table, thumbDir: thumbDir}
}

// ExtractFileThumbnail decodes the first sidecar image found for path
func (r *SidecarRenderer) ExtractFileThumbnail(path string) (image.Image, error) {
	path = paths.ExpandHome(strings.TrimSpace(path))
	if path == "" {
		return nil, errors.New(errors.ErrInvalidInput, "path is required")
	}

	stem := strings.TrimSuffix(path, filepath.Ext(path))
	var candidates []string
	for _, ext := range sidecarExts {
		candidates = append(candidates, path+ext)
	}
	for _, ext := range sidecarExts {
		candidates = append(candidates, stem+ext)
	}
	return r.decodeFirst(candidates)
}

// RenderDefinitionThumbnail returns the stored thumbnail of a definition
// resized to exactly size. Projection and display mode cannot be honored by
// stored images and are ignored.
func (r *SidecarRenderer) RenderDefinitionThumbnail(id uuid.UUID, _ types.Projection, _ types.DisplayMode, size image.Point) (image.Image, error) {
	var candidates []string
	if r.thumbDir != "" {
		for _, ext := range sidecarExts {
			candidates = append(candidates, filepath.Join(r.thumbDir, id.String()+ext))
		}
	}

	img, err := r.decodeFirst(candidates)
	if err != nil && r.table != nil {
		if rec := r.table.FindByID(id); rec != nil && rec.IsLinked() && rec.SourceArchive != "" {
			img, err = r.ExtractFileThumbnail(rec.SourceArchive)
		}
	}
	if err != nil {
		return nil, err
	}
	return Resize(img, size), nil
}

func (r *SidecarRenderer) decodeFirst(candidates []string) (image.Image, error) {
	for _, candidate := range candidates {
		data, err := afero.ReadFile(r.fs, candidate)
		if err != nil {
			continue
		}
		img, _, err := image.Decode(bytes.NewReader(data))
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrInvalidInput, "cannot decode thumbnail %s", candidate)
		}
		return img, nil
	}
	return nil, errors.New(errors.ErrFileNotFound, "no thumbnail found").
		WithDetail("candidates", candidates)
}
