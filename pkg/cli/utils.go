package cli

import (
	"bufio"
	"bytes"
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ftrvxmtrx/tga"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	"golang.org/x/image/webp"

	"github.com/Fepozopo/unborder/pkg/stdimg"
)

// PromptLine displays a prompt and reads a full line of input from the user.
// The returned string is trimmed of surrounding whitespace (including the newline).
func PromptLine(prompt string) (string, error) {
	fmt.Print(prompt)
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

var decoders = map[string]func(io.Reader) (image.Image, error){
	"png":  png.Decode,
	"jpeg": jpeg.Decode,
	"gif":  gif.Decode,
	"bmp":  bmp.Decode,
	"tiff": tiff.Decode,
	"webp": webp.Decode,
	"tga":  tga.Decode,
}

// detectFormat identifies the container from its magic bytes. TGA has no magic
// and is recognized by extension only.
func detectFormat(b []byte, path string) string {
	switch {
	case len(b) >= 3 && bytes.Equal(b[:3], []byte{0xFF, 0xD8, 0xFF}):
		return "jpeg"
	case len(b) >= 8 && bytes.Equal(b[:8], []byte("\x89PNG\r\n\x1a\n")):
		return "png"
	case len(b) >= 6 && (bytes.Equal(b[:6], []byte("GIF87a")) || bytes.Equal(b[:6], []byte("GIF89a"))):
		return "gif"
	case len(b) >= 2 && bytes.Equal(b[:2], []byte("BM")):
		return "bmp"
	case len(b) >= 4 && (bytes.Equal(b[:4], []byte("II*\x00")) || bytes.Equal(b[:4], []byte("MM\x00*"))):
		return "tiff"
	case len(b) >= 12 && bytes.Equal(b[:4], []byte("RIFF")) && bytes.Equal(b[8:12], []byte("WEBP")):
		return "webp"
	}
	if strings.ToLower(filepath.Ext(path)) == ".tga" {
		return "tga"
	}
	return ""
}

// LoadImage reads a file from disk into a fresh *image.NRGBA and reports the
// detected format. JPEG files are rotated according to their EXIF orientation.
func LoadImage(path string) (*image.NRGBA, string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, "", err
	}
	format := detectFormat(b, path)
	decode, ok := decoders[format]
	if !ok {
		return nil, "", fmt.Errorf("%s: unsupported or unrecognized image format", path)
	}
	img, err := decode(bytes.NewReader(b))
	if err != nil {
		return nil, format, fmt.Errorf("decode %s as %s: %w", path, format, err)
	}
	if img.Bounds().Empty() {
		return nil, format, fmt.Errorf("%s: image has no pixels", path)
	}

	orientation := 1
	if format == "jpeg" {
		if o, err := extractJPEGOrientation(b); err == nil {
			orientation = o
		}
	}
	if orientation != 1 {
		debugf("applying EXIF orientation %d to %s", orientation, path)
	}
	return stdimg.AutoOrient(img, orientation), format, nil
}

// alphaPNG makes png.Encode keep the alpha channel even when every pixel is
// opaque, so the output is always colour type 6 (RGBA).
type alphaPNG struct {
	*image.NRGBA
}

func (alphaPNG) Opaque() bool { return false }

// SaveImage writes img to path as an 8-bit RGBA PNG. The data goes to a
// temporary file in the same directory which is renamed over path only after a
// complete encode, so a failed write never leaves a truncated file behind.
func SaveImage(path string, img image.Image) (err error) {
	if img == nil {
		return fmt.Errorf("nil image")
	}
	f, err := os.CreateTemp(filepath.Dir(path), ".unborder-*.png")
	if err != nil {
		return err
	}
	tmp := f.Name()
	defer func() {
		if err != nil {
			f.Close()
			os.Remove(tmp)
		}
	}()

	nrgba, ok := img.(*image.NRGBA)
	if !ok {
		nrgba = stdimg.ToNRGBA(img)
	}
	if err = png.Encode(f, alphaPNG{nrgba}); err != nil {
		return fmt.Errorf("png encode: %w", err)
	}
	if err = f.Chmod(0o644); err != nil {
		return err
	}
	if err = f.Close(); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

// GetImageInfoImage returns a short info string for an image.Image
func GetImageInfoImage(img image.Image, format string) (string, error) {
	if img == nil {
		return "", fmt.Errorf("nil image")
	}
	b := img.Bounds()
	if format == "" {
		format = "unknown"
	}
	return fmt.Sprintf("Format: %s, Width: %d, Height: %d", strings.ToUpper(format), b.Dx(), b.Dy()), nil
}
