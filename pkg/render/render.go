// Package render turns identicon descriptors into encoded image bytes.
//
// Two formats are supported: PNG (rasterized on a 2D canvas) and SVG
// (vector output). The geometric model is always 250×250; requesting a
// different output size scales the rendered image, never the model, so
// the cell layout is identical at every size.
package render

import (
	"github.com/matzehuels/identicon/pkg/errors"
	"github.com/matzehuels/identicon/pkg/identicon"
)

// Format constants for output formats.
const (
	FormatPNG = "png"
	FormatSVG = "svg"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatPNG: true,
	FormatSVG: true,
}

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat,
			"invalid format: %q (must be one of: png, svg)", format)
	}
	return nil
}

// Options configures rendering.
type Options struct {
	// Format selects the output encoding, FormatPNG by default.
	Format string

	// Size is the output edge length in pixels. Zero means the native
	// canvas size. Sizes other than the native size scale the rendered
	// output.
	Size int
}

// Render encodes the identicon in the requested format and size.
func Render(img identicon.Image, opts Options) ([]byte, error) {
	format := opts.Format
	if format == "" {
		format = FormatPNG
	}
	if err := ValidateFormat(format); err != nil {
		return nil, err
	}
	if opts.Size < 0 {
		return nil, errors.New(errors.ErrCodeInvalidSize, "invalid size: %d", opts.Size)
	}

	switch format {
	case FormatSVG:
		return SVG(img, opts.Size), nil
	default:
		return PNG(img, opts.Size)
	}
}
