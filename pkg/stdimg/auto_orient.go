package stdimg

import (
	"image"

	"github.com/disintegration/imaging"
)

// AutoOrient applies EXIF orientation to an image.Image and returns a new *image.NRGBA.
// orientation is the EXIF tag value (1..8). If orientation is 1 or unknown, the image is
// only converted.
func AutoOrient(img image.Image, orientation int) *image.NRGBA {
	if img == nil {
		return nil
	}
	switch orientation {
	case 2:
		return imaging.FlipH(img)
	case 3:
		return imaging.Rotate180(img)
	case 4:
		return imaging.FlipV(img)
	case 5:
		return imaging.Transpose(img)
	case 6:
		// imaging rotates counter-clockwise
		return imaging.Rotate270(img)
	case 7:
		return imaging.Transverse(img)
	case 8:
		return imaging.Rotate90(img)
	default:
		return ToNRGBA(img)
	}
}
