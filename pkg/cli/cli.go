package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"

	"github.com/Fepozopo/unborder/pkg/stdimg"
)

// Exit codes returned by the Run functions.
const (
	ExitOK    = 0
	ExitError = 1
	ExitUsage = 2
)

func removeUsage(w io.Writer, fs *flag.FlagSet) {
	fmt.Fprintln(w, "Usage: unborder [flags] <input> <output>")
	fmt.Fprintln(w, "Makes the dark border connected to the image corners transparent and writes a PNG.")
	fmt.Fprintln(w, "Flags:")
	fs.PrintDefaults()
}

func sampleUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: pixelprobe <input>")
	fmt.Fprintln(w, "Prints the four corner pixels, the center pixel and the image size.")
}

// RunRemoveBorder implements the unborder command. Every failure is reported on
// stderr and turned into a non-zero exit code.
func RunRemoveBorder(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("unborder", flag.ContinueOnError)
	fs.SetOutput(stderr)
	threshold := fs.Int("threshold", stdimg.DefaultThreshold, "darkness threshold 0-255; r, g and b must all be below it")
	trim := fs.Bool("trim", false, "crop transparent rows and columns after removal")
	preview := fs.Bool("preview", false, "show the result inline in supported terminals")
	verbose := fs.Bool("v", false, "print diagnostics to stderr")
	showVersion := fs.Bool("version", false, "print the version and exit")
	update := fs.Bool("update", false, "check for a newer release and offer to install it")
	fs.Usage = func() { removeUsage(stderr, fs) }

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return ExitOK
		}
		return ExitUsage
	}

	if *showVersion {
		fmt.Fprintf(stdout, "unborder %s\n", Version)
		return ExitOK
	}
	if *update {
		if err := CheckForUpdates(stdout); err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return ExitError
		}
		return ExitOK
	}

	if fs.NArg() < 2 {
		removeUsage(stderr, fs)
		return ExitUsage
	}

	cfg, err := LoadConfig()
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return ExitError
	}
	flags := Flags{Threshold: *threshold, Trim: *trim, Preview: *preview, Verbose: *verbose}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "threshold":
			flags.ThresholdSet = true
		case "trim":
			flags.TrimSet = true
		case "preview":
			flags.PreviewSet = true
		case "v":
			flags.VerboseSet = true
		}
	})
	if err := cfg.Resolve(flags); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return ExitUsage
	}
	setDebug(cfg.Debug, stderr)

	if err := processImage(fs.Arg(0), fs.Arg(1), cfg, stdout, stderr); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return ExitError
	}
	return ExitOK
}

// processImage loads input, removes its border and writes output as PNG. When no
// corner is dark the decoded image is written unchanged.
func processImage(input, output string, cfg Config, stdout, stderr io.Writer) error {
	img, format, err := LoadImage(input)
	if err != nil {
		return fmt.Errorf("load %s: %w", input, err)
	}
	debugf("loaded %s (%s, %dx%d), threshold %d", input, format, img.Bounds().Dx(), img.Bounds().Dy(), cfg.Threshold)

	args, err := NormalizeArgs("removeBorder", []string{strconv.Itoa(cfg.Threshold)})
	if err != nil {
		return err
	}
	res, err := stdimg.ApplyCommand(img, "removeBorder", args)
	if err != nil {
		return err
	}
	out := res.Image

	if !res.Changed {
		corner := out.NRGBAAt(out.Rect.Min.X, out.Rect.Min.Y)
		fmt.Fprintf(stdout, "Corners are not dark (top-left %s), skipping flood fill.\n", stdimg.FormatPixel(corner))
	} else {
		debugf("seeds %v, cleared %d pixels", res.Border.Seeds, res.Border.Cleared)
		if cfg.Trim {
			trimmed, err := stdimg.ApplyCommand(out, "trim", nil)
			if err != nil {
				return err
			}
			debugf("trimmed %v -> %v", out.Bounds(), trimmed.Image.Bounds())
			out = trimmed.Image
		}
	}

	if err := SaveImage(output, out); err != nil {
		return fmt.Errorf("save %s: %w", output, err)
	}
	if res.Changed {
		fmt.Fprintf(stdout, "Successfully processed %s to %s\n", input, output)
	}
	// the info line is a -v diagnostic; stdout carries only the result line
	if info, ierr := GetImageInfoImage(out, "png"); ierr == nil {
		debugf("%s", info)
	}

	if cfg.Preview {
		if !PreviewSupported() {
			debugf("preview requested but no terminal backend is available")
		} else if perr := PreviewImage(stdout, out); perr != nil {
			// preview is best effort; the file is already written
			fmt.Fprintf(stderr, "preview failed: %v\n", perr)
		}
	}
	return nil
}

// RunSample implements the pixelprobe command: it prints the corner and center
// pixels of an image followed by its size. The image is not modified.
func RunSample(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("pixelprobe", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() { sampleUsage(stderr) }
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return ExitOK
		}
		return ExitUsage
	}
	if fs.NArg() < 1 {
		sampleUsage(stderr)
		return ExitUsage
	}

	path := fs.Arg(0)
	img, _, err := LoadImage(path)
	if err != nil {
		fmt.Fprintf(stderr, "Error: load %s: %v\n", path, err)
		return ExitError
	}
	res, err := stdimg.ApplyCommand(img, "sample", nil)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return ExitError
	}
	for _, s := range res.Samples {
		fmt.Fprintln(stdout, s.String())
	}
	fmt.Fprintf(stdout, "Size: %dx%d\n", img.Bounds().Dx(), img.Bounds().Dy())
	return ExitOK
}
