package stdimg

import (
	"errors"
	"image"
	"image/color"
	"testing"
)

func TestSampleCornersAndCenter(t *testing.T) {
	img := makeSolidNRGBA(5, 4, white)
	setPixel(img, 0, 0, color.NRGBA{1, 2, 3, 4})
	setPixel(img, 4, 0, color.NRGBA{5, 6, 7, 8})
	setPixel(img, 0, 3, color.NRGBA{9, 10, 11, 12})
	setPixel(img, 4, 3, color.NRGBA{13, 14, 15, 16})
	setPixel(img, 2, 2, color.NRGBA{17, 18, 19, 20})
	before := CloneNRGBA(img)

	got, err := SampleCornersAndCenter(img)
	if err != nil {
		t.Fatalf("SampleCornersAndCenter failed: %v", err)
	}
	want := []string{
		"Top-left (0, 0): (1, 2, 3, 4)",
		"Top-right (4, 0): (5, 6, 7, 8)",
		"Bottom-left (0, 3): (9, 10, 11, 12)",
		"Bottom-right (4, 3): (13, 14, 15, 16)",
		"Center (2, 2): (17, 18, 19, 20)",
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d samples, got %d", len(want), len(got))
	}
	for i := range want {
		if s := got[i].String(); s != want[i] {
			t.Fatalf("sample %d = %q; want %q", i, s, want[i])
		}
	}
	for i := range img.Pix {
		if img.Pix[i] != before.Pix[i] {
			t.Fatalf("sampling modified the image")
		}
	}
}

func TestSampleSinglePixel(t *testing.T) {
	img := makeSolidNRGBA(1, 1, color.NRGBA{7, 7, 7, 255})
	got, err := SampleCornersAndCenter(img)
	if err != nil {
		t.Fatalf("SampleCornersAndCenter failed: %v", err)
	}
	for _, s := range got {
		if s.Point != image.Pt(0, 0) {
			t.Fatalf("expected every sample at 0,0, got %v", s.Point)
		}
	}
}

func TestSampleEmptyImage(t *testing.T) {
	if _, err := SampleCornersAndCenter(image.NewNRGBA(image.Rect(0, 0, 0, 0))); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}
}

func TestFormatPixel(t *testing.T) {
	if s := FormatPixel(color.NRGBA{255, 0, 16, 128}); s != "(255, 0, 16, 128)" {
		t.Fatalf("unexpected format %q", s)
	}
}
