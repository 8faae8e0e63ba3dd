package cli

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/png"
	"io"
	"math"
	"os"
	"os/exec"
	"strings"
)

// Terminal preview helper for the kitty and iTerm2 inline-image protocols.
//
//   - kitty (KITTY_WINDOW_ID, TERM containing "kitty"/"ghostty") gets chunked base64
//     PNG inside ESC _G ... ESC \.
//   - iTerm2-compatible terminals (TERM_PROGRAM iTerm.app, WezTerm, vscode, ...) get
//     the OSC 1337 inline file sequence.
//   - Otherwise chafa, when on PATH, renders a character-cell approximation.
//
// PREVIEW_BACKEND=kitty|iterm|chafa forces a backend.

func isKitty() bool {
	if os.Getenv("KITTY_WINDOW_ID") != "" {
		return true
	}
	term := strings.ToLower(os.Getenv("TERM"))
	return strings.Contains(term, "kitty") || strings.Contains(term, "ghostty")
}

func isInlineImageCapable() bool {
	switch os.Getenv("TERM_PROGRAM") {
	case "iTerm.app", "WezTerm", "Warp", "Hyper", "vscode", "Tabby":
		return true
	}
	return os.Getenv("ITERM_SESSION_ID") != ""
}

func hasChafa() bool {
	_, err := exec.LookPath("chafa")
	return err == nil
}

// previewBackend picks the backend for the current terminal, or "" if none.
func previewBackend() string {
	switch b := strings.ToLower(os.Getenv("PREVIEW_BACKEND")); b {
	case "kitty", "iterm", "chafa":
		return b
	}
	switch {
	case isKitty():
		return "kitty"
	case isInlineImageCapable():
		return "iterm"
	case hasChafa():
		return "chafa"
	}
	return ""
}

// PreviewSupported returns true if the running environment likely supports a terminal inline preview.
func PreviewSupported() bool {
	b := previewBackend()
	debugf("preview backend: %q", b)
	return b != ""
}

// PreviewSize conveys a target placement for terminal preview backends.
type PreviewSize struct {
	Cols int // terminal character columns
	Rows int // terminal character rows
}

// computePreviewSize maps an image's pixel dimensions into terminal character
// cells, preserving aspect ratio, never scaling up, and clamping to sane bounds.
func computePreviewSize(img image.Image) PreviewSize {
	w := img.Bounds().Dx()
	h := img.Bounds().Dy()

	const charW = 8
	const charH = 16
	const minCols, minRows = 6, 3
	const maxCols, maxRows = 80, 40

	scale := math.Min(1.0, math.Min(float64(maxCols*charW)/float64(w), float64(maxRows*charH)/float64(h)))
	cols := int(math.Round(float64(w) * scale / charW))
	rows := int(math.Round(float64(h) * scale / charH))
	return PreviewSize{
		Cols: clamp(cols, minCols, maxCols),
		Rows: clamp(rows, minRows, maxRows),
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// PreviewImage shows img inline in the terminal attached to w.
func PreviewImage(w io.Writer, img image.Image) error {
	if img == nil {
		return fmt.Errorf("nil image")
	}
	backend := previewBackend()
	if backend == "" {
		return fmt.Errorf("no supported terminal preview backend")
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return fmt.Errorf("png encode failed: %w", err)
	}
	size := computePreviewSize(img)
	switch backend {
	case "kitty":
		return writeKitty(w, buf.Bytes(), size)
	case "iterm":
		return writeITerm(w, buf.Bytes(), size)
	default:
		return runChafa(w, buf.Bytes(), size)
	}
}

// writeKitty sends PNG data with the kitty graphics protocol in 4096-byte chunks.
func writeKitty(w io.Writer, data []byte, size PreviewSize) error {
	enc := base64.StdEncoding.EncodeToString(data)
	const chunk = 4096
	for i := 0; i < len(enc); i += chunk {
		end := i + chunk
		if end > len(enc) {
			end = len(enc)
		}
		more := 0
		if end < len(enc) {
			more = 1
		}
		var ctrl string
		if i == 0 {
			ctrl = fmt.Sprintf("a=T,f=100,c=%d,r=%d,m=%d", size.Cols, size.Rows, more)
		} else {
			ctrl = fmt.Sprintf("m=%d", more)
		}
		if _, err := fmt.Fprintf(w, "\x1b_G%s;%s\x1b\\", ctrl, enc[i:end]); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "\n")
	return err
}

// writeITerm sends PNG data with the iTerm2 OSC 1337 inline file sequence.
func writeITerm(w io.Writer, data []byte, size PreviewSize) error {
	enc := base64.StdEncoding.EncodeToString(data)
	_, err := fmt.Fprintf(w, "\x1b]1337;File=inline=1;size=%d;width=%d;height=%d;preserveAspectRatio=1:%s\a\n",
		len(data), size.Cols, size.Rows, enc)
	return err
}

func runChafa(w io.Writer, data []byte, size PreviewSize) error {
	cmd := exec.Command("chafa", fmt.Sprintf("--size=%dx%d", size.Cols, size.Rows), "-")
	cmd.Stdin = bytes.NewReader(data)
	cmd.Stdout = w
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("chafa failed: %w", err)
	}
	return nil
}
