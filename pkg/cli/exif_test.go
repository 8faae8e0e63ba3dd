package cli

import (
	"bytes"
	"encoding/binary"
	"image"
	"image/color"
	"image/jpeg"
	"os"
	"path/filepath"
	"testing"
)

// makeExifPayload builds a minimal EXIF APP1 payload (starting with "Exif\x00\x00")
// containing a single Orientation tag (0x0112) in IFD0 with the provided value.
func makeExifPayload(order binary.ByteOrder, orientation uint16) []byte {
	buf := &bytes.Buffer{}
	buf.Write([]byte("Exif\x00\x00"))
	if order == binary.BigEndian {
		buf.Write([]byte{'M', 'M'})
	} else {
		buf.Write([]byte{'I', 'I'})
	}
	_ = binary.Write(buf, order, uint16(0x2A))
	_ = binary.Write(buf, order, uint32(8))
	// IFD0: 1 entry
	_ = binary.Write(buf, order, uint16(1))
	// tag, type SHORT (3), count 1
	_ = binary.Write(buf, order, uint16(tagOrientation))
	_ = binary.Write(buf, order, uint16(3))
	_ = binary.Write(buf, order, uint32(1))
	_ = binary.Write(buf, order, orientation)
	_ = binary.Write(buf, order, uint16(0))
	// next IFD offset = 0
	_ = binary.Write(buf, order, uint32(0))
	return buf.Bytes()
}

// insertAPP1 places payload in an APP1 segment right after the SOI marker.
func insertAPP1(t *testing.T, jpegBytes, payload []byte) []byte {
	t.Helper()
	if len(jpegBytes) < 2 || jpegBytes[0] != 0xFF || jpegBytes[1] != 0xD8 {
		t.Fatalf("not a JPEG")
	}
	segLen := len(payload) + 2
	out := make([]byte, 0, len(jpegBytes)+segLen+2)
	out = append(out, 0xFF, 0xD8, 0xFF, 0xE1, byte(segLen>>8), byte(segLen))
	out = append(out, payload...)
	return append(out, jpegBytes[2:]...)
}

// makeTestJPEG encodes a 16x8 image whose left half is red and right half blue.
func makeTestJPEG(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 16, 8))
	for y := 0; y < 8; y++ {
		for x := 0; x < 16; x++ {
			c := color.RGBA{255, 0, 0, 255}
			if x >= 8 {
				c = color.RGBA{0, 0, 255, 255}
			}
			img.Set(x, y, c)
		}
	}
	buf := &bytes.Buffer{}
	if err := jpeg.Encode(buf, img, &jpeg.Options{Quality: 95}); err != nil {
		t.Fatalf("jpeg encode failed: %v", err)
	}
	return buf.Bytes()
}

func TestExtractJPEGOrientation(t *testing.T) {
	base := makeTestJPEG(t)
	for _, order := range []binary.ByteOrder{binary.LittleEndian, binary.BigEndian} {
		for o := uint16(1); o <= 8; o++ {
			data := insertAPP1(t, base, makeExifPayload(order, o))
			got, err := extractJPEGOrientation(data)
			if err != nil {
				t.Fatalf("%v orientation %d: %v", order, o, err)
			}
			if got != int(o) {
				t.Fatalf("%v: expected orientation %d, got %d", order, o, got)
			}
		}
	}
}

func TestExtractJPEGOrientationErrors(t *testing.T) {
	base := makeTestJPEG(t)
	if _, err := extractJPEGOrientation(base); err == nil {
		t.Fatalf("expected error for JPEG without EXIF")
	}
	if _, err := extractJPEGOrientation(insertAPP1(t, base, makeExifPayload(binary.LittleEndian, 9))); err == nil {
		t.Fatalf("expected error for orientation 9")
	}
	if _, err := extractJPEGOrientation([]byte{0xFF}); err == nil {
		t.Fatalf("expected error for truncated data")
	}
}

func TestLoadImageAppliesOrientation(t *testing.T) {
	data := insertAPP1(t, makeTestJPEG(t), makeExifPayload(binary.LittleEndian, 6))
	path := filepath.Join(t.TempDir(), "rotated.jpg")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	img, format, err := LoadImage(path)
	if err != nil {
		t.Fatalf("LoadImage failed: %v", err)
	}
	if format != "jpeg" {
		t.Fatalf("expected format jpeg, got %q", format)
	}
	if img.Bounds().Dx() != 8 || img.Bounds().Dy() != 16 {
		t.Fatalf("expected 8x16 after orientation 6, got %v", img.Bounds())
	}
	// a quarter turn clockwise moves the red left half to the top
	top := img.NRGBAAt(4, 3)
	bottom := img.NRGBAAt(4, 12)
	if top.R < 200 || top.B > 60 {
		t.Fatalf("expected red at top, got %v", top)
	}
	if bottom.B < 200 || bottom.R > 60 {
		t.Fatalf("expected blue at bottom, got %v", bottom)
	}
}
