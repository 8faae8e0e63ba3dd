package stdimg

import (
	"image"

	"github.com/disintegration/imaging"
)

// TrimTransparent crops away fully transparent rows and columns around the image,
// typically the area RemoveBorder has just cleared. If every pixel is transparent
// the image is returned uncropped (as a copy).
func TrimTransparent(src *image.NRGBA) *image.NRGBA {
	if src == nil {
		return nil
	}
	b := src.Bounds()
	if b.Empty() {
		return CloneNRGBA(src)
	}

	minX := b.Max.X
	minY := b.Max.Y
	maxX := b.Min.X - 1
	maxY := b.Min.Y - 1

	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if src.Pix[src.PixOffset(x, y)+3] == 0 {
				continue
			}
			if x < minX {
				minX = x
			}
			if x > maxX {
				maxX = x
			}
			if y < minY {
				minY = y
			}
			if y > maxY {
				maxY = y
			}
		}
	}

	// nothing opaque at all
	if maxX < minX || maxY < minY {
		return CloneNRGBA(src)
	}

	return imaging.Crop(src, image.Rect(minX, minY, maxX+1, maxY+1))
}
