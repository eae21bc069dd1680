// Package imaging holds the pixel-level helpers shared by the capture
// pipeline: encoding, downscaling, and blank-frame detection.
package imaging

import (
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"math"
	"path/filepath"
	"strings"

	"golang.org/x/image/draw"
)

// Supported output formats.
const (
	FormatPNG  = "png"
	FormatJPEG = "jpg"
)

// ParseFormat normalizes a format flag value.
func ParseFormat(s string) (string, error) {
	switch strings.ToLower(s) {
	case "png":
		return FormatPNG, nil
	case "jpg", "jpeg":
		return FormatJPEG, nil
	default:
		return "", fmt.Errorf("unsupported format: %q (supported: png, jpg)", s)
	}
}

// FormatFromPath infers the output format from a file extension.
// Unknown or missing extensions return "".
func FormatFromPath(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return FormatPNG
	case ".jpg", ".jpeg":
		return FormatJPEG
	}
	return ""
}

// Encode writes img to w in the given format. Quality applies to JPEG
// only and is ignored for PNG.
func Encode(w io.Writer, img image.Image, format string, quality int) error {
	switch format {
	case FormatJPEG:
		return jpeg.Encode(w, img, &jpeg.Options{Quality: quality})
	case FormatPNG:
		return png.Encode(w, img)
	default:
		return fmt.Errorf("unsupported format: %q (supported: png, jpg)", format)
	}
}

// Scale resizes img by factor using Catmull-Rom interpolation. Factor 1
// returns img unchanged. Results never collapse below 1x1.
func Scale(img *image.RGBA, factor float64) *image.RGBA {
	if factor == 1 {
		return img
	}
	width := int(math.Round(float64(img.Bounds().Dx()) * factor))
	height := int(math.Round(float64(img.Bounds().Dy()) * factor))
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Over, nil)
	return dst
}

// IsBlank reports whether every pixel carries the same color. A fully
// uniform capture of a real window almost always means the window's GPU
// surface did not render into the bitmap.
func IsBlank(img *image.RGBA) bool {
	pix := img.Pix
	if len(pix) < 8 {
		return true
	}
	r, g, b, a := pix[0], pix[1], pix[2], pix[3]
	for i := 4; i+3 < len(pix); i += 4 {
		if pix[i] != r || pix[i+1] != g || pix[i+2] != b || pix[i+3] != a {
			return false
		}
	}
	return true
}
