package stdimg

import (
	"fmt"
	"image"
	"image/color"
)

// Sample is a labelled pixel read from a fixed location.
type Sample struct {
	Label string
	Point image.Point
	Color color.NRGBA
}

// SampleCornersAndCenter reads the four corners and the center pixel
// (integer floor of width/2, height/2). The image is not modified.
func SampleCornersAndCenter(img *image.NRGBA) ([]Sample, error) {
	if img == nil {
		return nil, fmt.Errorf("sample: nil image: %w", ErrInvalidArgument)
	}
	b := img.Bounds()
	if b.Empty() {
		return nil, fmt.Errorf("sample: empty image: %w", ErrInvalidArgument)
	}
	w := b.Dx()
	h := b.Dy()
	locs := []struct {
		label string
		x, y  int
	}{
		{"Top-left", 0, 0},
		{"Top-right", w - 1, 0},
		{"Bottom-left", 0, h - 1},
		{"Bottom-right", w - 1, h - 1},
		{"Center", w / 2, h / 2},
	}
	out := make([]Sample, 0, len(locs))
	for _, l := range locs {
		p := image.Pt(b.Min.X+l.x, b.Min.Y+l.y)
		out = append(out, Sample{Label: l.label, Point: p, Color: samplePixelClamped(img, p.X, p.Y)})
	}
	return out, nil
}

// FormatPixel renders c as "(r, g, b, a)".
func FormatPixel(c color.NRGBA) string {
	return fmt.Sprintf("(%d, %d, %d, %d)", c.R, c.G, c.B, c.A)
}

// String renders a sample as "Label (x, y): (r, g, b, a)".
func (s Sample) String() string {
	return fmt.Sprintf("%s (%d, %d): %s", s.Label, s.Point.X, s.Point.Y, FormatPixel(s.Color))
}
