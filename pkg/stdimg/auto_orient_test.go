package stdimg

import (
	"image/color"
	"testing"
)

func TestAutoOrient(t *testing.T) {
	// 3x2 with a marker at the top-left
	mark := color.NRGBA{255, 0, 0, 255}
	src := makeSolidNRGBA(3, 2, white)
	setPixel(src, 0, 0, mark)

	cases := []struct {
		orientation int
		w, h        int
		x, y        int // expected marker position
	}{
		{1, 3, 2, 0, 0},
		{2, 3, 2, 2, 0},
		{3, 3, 2, 2, 1},
		{4, 3, 2, 0, 1},
		{5, 2, 3, 0, 0},
		{6, 2, 3, 1, 0},
		{7, 2, 3, 1, 2},
		{8, 2, 3, 0, 2},
		{42, 3, 2, 0, 0},
	}
	for _, c := range cases {
		out := AutoOrient(src, c.orientation)
		if out.Bounds().Dx() != c.w || out.Bounds().Dy() != c.h {
			t.Fatalf("orientation %d: expected %dx%d, got %v", c.orientation, c.w, c.h, out.Bounds())
		}
		if got := pixelAt(out, c.x, c.y); got != mark {
			t.Fatalf("orientation %d: expected marker at %d,%d got %v", c.orientation, c.x, c.y, got)
		}
	}
	if AutoOrient(nil, 6) != nil {
		t.Fatalf("expected nil for nil input")
	}
}
