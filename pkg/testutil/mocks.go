package testutil

import (
	"image"
	"image/color"

	"github.com/google/uuid"
	"github.com/johnmorse/rhinoinsertcommand/pkg/types"
)

// MockRenderer is a mock implementation of types.PreviewRenderer. Without
// funcs it returns a solid image of the requested size for definitions and
// FileSize for files.
type MockRenderer struct {
	RenderFunc  func(id uuid.UUID, projection types.Projection, mode types.DisplayMode, size image.Point) (image.Image, error)
	ExtractFunc func(path string) (image.Image, error)

	// FileSize is the size of the default file thumbnail
	FileSize image.Point

	RenderCalls  int
	ExtractCalls int
}

// RenderDefinitionThumbnail runs the mock's render function
func (m *MockRenderer) RenderDefinitionThumbnail(id uuid.UUID, projection types.Projection, mode types.DisplayMode, size image.Point) (image.Image, error) {
	m.RenderCalls++
	if m.RenderFunc != nil {
		return m.RenderFunc(id, projection, mode, size)
	}
	return SolidImage(size, color.Gray{Y: 128}), nil
}

// ExtractFileThumbnail runs the mock's extract function
func (m *MockRenderer) ExtractFileThumbnail(path string) (image.Image, error) {
	m.ExtractCalls++
	if m.ExtractFunc != nil {
		return m.ExtractFunc(path)
	}
	size := m.FileSize
	if size == (image.Point{}) {
		size = image.Pt(400, 300)
	}
	return SolidImage(size, color.White), nil
}

// SolidImage returns an image of size filled with c
func SolidImage(size image.Point, c color.Color) image.Image {
	img := image.NewRGBA(image.Rectangle{Max: size})
	for y := 0; y < size.Y; y++ {
		for x := 0; x < size.X; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}
