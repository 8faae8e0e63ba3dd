package stdimg

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

// ToNRGBA converts any image.Image to a fresh *image.NRGBA (non-premultiplied RGBA)
// whose bounds start at (0,0). The source is never aliased, so callers may mutate
// the result in place.
func ToNRGBA(src image.Image) *image.NRGBA {
	if src == nil {
		return nil
	}
	return imaging.Clone(src)
}

// CloneNRGBA returns a copy of the provided image.NRGBA
func CloneNRGBA(src *image.NRGBA) *image.NRGBA {
	if src == nil {
		return nil
	}
	out := image.NewNRGBA(src.Rect)
	rowLen := src.Rect.Dx() * 4
	for y := src.Rect.Min.Y; y < src.Rect.Max.Y; y++ {
		copy(out.Pix[out.PixOffset(src.Rect.Min.X, y):][:rowLen], src.Pix[src.PixOffset(src.Rect.Min.X, y):][:rowLen])
	}
	return out
}

// clampInt clamps v to [lo,hi]
func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// pixelAt returns the color at (x,y). The caller guarantees the point is in bounds.
func pixelAt(img *image.NRGBA, x, y int) color.NRGBA {
	i := img.PixOffset(x, y)
	return color.NRGBA{img.Pix[i+0], img.Pix[i+1], img.Pix[i+2], img.Pix[i+3]}
}

// setPixel replaces all four channels at (x,y).
func setPixel(img *image.NRGBA, x, y int, c color.NRGBA) {
	i := img.PixOffset(x, y)
	img.Pix[i+0] = c.R
	img.Pix[i+1] = c.G
	img.Pix[i+2] = c.B
	img.Pix[i+3] = c.A
}

// samplePixelClamped returns the color.NRGBA at integer coords clamped to image.
func samplePixelClamped(img *image.NRGBA, x, y int) color.NRGBA {
	b := img.Bounds()
	x = clampInt(x, b.Min.X, b.Max.X-1)
	y = clampInt(y, b.Min.Y, b.Max.Y-1)
	return pixelAt(img, x, y)
}
