package preview

import (
	"image"

	"golang.org/x/image/draw"
)

// FitInside scales img down proportionally so it fits inside box. Images
// that already fit are returned unchanged; nothing is scaled up.
func FitInside(img image.Image, box image.Point) image.Image {
	if img == nil || box.X <= 0 || box.Y <= 0 {
		return img
	}
	src := img.Bounds()
	w, h := src.Dx(), src.Dy()
	if w <= box.X && h <= box.Y {
		return img
	}

	scale := float64(w) / float64(box.X)
	if s := float64(h) / float64(box.Y); s > scale {
		scale = s
	}
	dw := int(float64(w) / scale)
	dh := int(float64(h) / scale)
	if dw < 1 {
		dw = 1
	}
	if dh < 1 {
		dh = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, dw, dh))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, src, draw.Over, nil)
	return dst
}

// Resize scales img to exactly size
func Resize(img image.Image, size image.Point) image.Image {
	if img == nil || size.X <= 0 || size.Y <= 0 || img.Bounds().Size() == size {
		return img
	}
	dst := image.NewRGBA(image.Rectangle{Max: size})
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Over, nil)
	return dst
}
