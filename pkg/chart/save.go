package chart

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/jetplot/jetplot/pkg/errors"
	"github.com/jetplot/jetplot/pkg/render"
)

// Output formats understood by Encode and Save.
const (
	FormatSVG = "svg"
	FormatPNG = "png"
	FormatPDF = "pdf"
)

// pngScale renders PNGs at 2x for high-DPI displays.
const pngScale = 2.0

// Formats lists the supported output formats.
func Formats() []string { return []string{FormatSVG, FormatPNG, FormatPDF} }

// FormatFromPath returns the output format implied by path's extension.
func FormatFromPath(path string) (string, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	switch ext {
	case FormatSVG, FormatPNG, FormatPDF:
		return ext, nil
	default:
		return "", errors.New(errors.ErrCodeInvalidFormat, "unsupported output extension %q (must be .svg, .png or .pdf)", filepath.Ext(path))
	}
}

// Encode renders f in the given format. PNG and PDF need rsvg-convert.
func Encode(f *Figure, format string) ([]byte, error) {
	svg := RenderSVG(f)
	switch format {
	case FormatSVG:
		return svg, nil
	case FormatPNG:
		return render.ToPNG(svg, pngScale)
	case FormatPDF:
		return render.ToPDF(svg)
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "unknown format %q", format)
	}
}

// Save writes f to path in the format implied by its extension, creating
// parent directories as needed.
func (f *Figure) Save(path string) error {
	if err := errors.ValidateOutputPath(path); err != nil {
		return err
	}
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	data, err := Encode(f, format)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, data, 0644)
}
