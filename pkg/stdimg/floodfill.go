package stdimg

import (
	"errors"
	"fmt"
	"image"
	"image/color"
)

// DefaultThreshold is the channel value below which a pixel counts as dark.
const DefaultThreshold = 30

// ErrInvalidArgument is returned when a buffer or threshold cannot be processed.
var ErrInvalidArgument = errors.New("invalid argument")

// transparent is written over every removed border pixel.
var transparent = color.NRGBA{0, 0, 0, 0}

// BorderReport describes what RemoveBorderReport did to an image.
type BorderReport struct {
	Seeds   []image.Point // corners that started the fill
	Cleared int           // pixels made transparent
}

// Changed reports whether any pixel was modified.
func (r BorderReport) Changed() bool { return len(r.Seeds) > 0 }

// IsDark reports whether the red, green and blue channels of c are all strictly
// below threshold. Alpha is ignored.
func IsDark(c color.NRGBA, threshold int) bool {
	return int(c.R) < threshold && int(c.G) < threshold && int(c.B) < threshold
}

// Corners returns the four corner points of b in the order top-left, top-right,
// bottom-left, bottom-right. Coinciding corners (width or height of 1) appear once.
func Corners(b image.Rectangle) []image.Point {
	if b.Empty() {
		return nil
	}
	all := [4]image.Point{
		{b.Min.X, b.Min.Y},
		{b.Max.X - 1, b.Min.Y},
		{b.Min.X, b.Max.Y - 1},
		{b.Max.X - 1, b.Max.Y - 1},
	}
	out := make([]image.Point, 0, 4)
	for _, p := range all {
		dup := false
		for _, q := range out {
			if p == q {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, p)
		}
	}
	return out
}

// RemoveBorder makes the dark region connected to the image corners transparent.
// It returns false, leaving img untouched, when no corner is dark.
func RemoveBorder(img *image.NRGBA, threshold int) (bool, error) {
	rep, err := RemoveBorderReport(img, threshold)
	if err != nil {
		return false, err
	}
	return rep.Changed(), nil
}

// RemoveBorderReport is RemoveBorder with details about the seeds and the number
// of pixels cleared.
//
// Every dark corner seeds a breadth-first fill over 4-connected dark pixels.
// Pixels are marked visited when enqueued so that each one is queued and
// rewritten at most once; darkness is judged on the original colour because a
// pixel is only overwritten after it has been marked.
func RemoveBorderReport(img *image.NRGBA, threshold int) (BorderReport, error) {
	var rep BorderReport
	if img == nil {
		return rep, fmt.Errorf("remove border: nil image: %w", ErrInvalidArgument)
	}
	b := img.Bounds()
	w := b.Dx()
	h := b.Dy()
	if w <= 0 || h <= 0 {
		return rep, fmt.Errorf("remove border: empty image %dx%d: %w", w, h, ErrInvalidArgument)
	}
	if threshold < 0 || threshold > 255 {
		return rep, fmt.Errorf("remove border: threshold %d outside [0,255]: %w", threshold, ErrInvalidArgument)
	}

	for _, p := range Corners(b) {
		if IsDark(pixelAt(img, p.X, p.Y), threshold) {
			rep.Seeds = append(rep.Seeds, p)
		}
	}
	if len(rep.Seeds) == 0 {
		return rep, nil
	}

	visited := newBitmask(w * h)
	idxOf := func(px, py int) int { return (py-b.Min.Y)*w + (px - b.Min.X) }

	queue := make([]image.Point, 0, 1024)
	for _, p := range rep.Seeds {
		visited.set(idxOf(p.X, p.Y))
		queue = append(queue, p)
	}

	neighbours := [4]image.Point{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	for head := 0; head < len(queue); head++ {
		cur := queue[head]
		setPixel(img, cur.X, cur.Y, transparent)
		rep.Cleared++

		for _, d := range neighbours {
			n := cur.Add(d)
			if !n.In(b) {
				continue
			}
			i := idxOf(n.X, n.Y)
			if visited.get(i) {
				continue
			}
			if !IsDark(pixelAt(img, n.X, n.Y), threshold) {
				continue
			}
			visited.set(i)
			queue = append(queue, n)
		}
	}
	return rep, nil
}

// bitmask holds one bit per pixel.
type bitmask []byte

func newBitmask(size int) bitmask {
	return make(bitmask, (size+7)/8)
}

func (m bitmask) get(i int) bool {
	return (m[i>>3]>>(uint(i)&7))&1 == 1
}

func (m bitmask) set(i int) {
	m[i>>3] |= 1 << (uint(i) & 7)
}
