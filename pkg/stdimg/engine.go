package stdimg

import (
	"fmt"
	"image"
	"strconv"
)

// Result is the outcome of one ApplyCommand call.
type Result struct {
	Image   *image.NRGBA
	Changed bool
	Border  BorderReport // removeBorder only
	Samples []Sample     // sample only
}

// ApplyCommand runs a registered command on a copy of img. The source image is
// never modified.
func ApplyCommand(img image.Image, commandName string, args []string) (Result, error) {
	if img == nil {
		return Result{}, fmt.Errorf("source image is nil")
	}
	src := ToNRGBA(img)
	switch commandName {
	case "removeBorder":
		// removeBorder [threshold]
		if len(args) > 1 {
			return Result{}, fmt.Errorf("removeBorder takes at most 1 arg: threshold")
		}
		threshold := DefaultThreshold
		if len(args) == 1 && args[0] != "" {
			v, err := strconv.Atoi(args[0])
			if err != nil {
				return Result{}, fmt.Errorf("invalid threshold %q: %w", args[0], ErrInvalidArgument)
			}
			threshold = v
		}
		rep, err := RemoveBorderReport(src, threshold)
		if err != nil {
			return Result{}, err
		}
		return Result{Image: src, Changed: rep.Changed(), Border: rep}, nil

	case "trim":
		if len(args) != 0 {
			return Result{}, fmt.Errorf("trim takes no args")
		}
		out := TrimTransparent(src)
		return Result{Image: out, Changed: !out.Rect.Eq(src.Rect)}, nil

	case "sample":
		if len(args) != 0 {
			return Result{}, fmt.Errorf("sample takes no args")
		}
		samples, err := SampleCornersAndCenter(src)
		if err != nil {
			return Result{}, err
		}
		return Result{Image: src, Samples: samples}, nil

	default:
		return Result{}, fmt.Errorf("unsupported command: %s", commandName)
	}
}
