// Package bitmap converts grids to and from uncompressed 24-bit BMP images,
// one pixel per cell.
package bitmap

import (
	"errors"
	"fmt"
	"image"
	"io"
	"strings"

	"pixgrid/colors"
	"pixgrid/grid"
	"pixgrid/palette"

	"golang.org/x/image/bmp"
)

// MaxImportSide bounds PolicyAllow imports.
const MaxImportSide = 4096

var ErrOutOfRange = errors.New("image size out of range")

// Policy decides what Decode does with images larger than an editable grid.
type Policy int

const (
	// PolicyReject refuses images outside the editing limits.
	PolicyReject Policy = iota
	// PolicyFit downscales oversized images to fit the editing limits.
	PolicyFit
	// PolicyAllow keeps the image size, up to MaxImportSide.
	PolicyAllow
)

var policyNames = []string{"reject", "fit", "allow"}

func (p Policy) String() string {
	if p < 0 || int(p) >= len(policyNames) {
		return fmt.Sprintf("Policy(%d)", int(p))
	}
	return policyNames[p]
}

// ParsePolicy reads a policy name as printed by String.
func ParsePolicy(s string) (Policy, error) {
	for i, name := range policyNames {
		if strings.EqualFold(s, name) {
			return Policy(i), nil
		}
	}
	return 0, fmt.Errorf("unknown import policy %q, should be one of %s", s, strings.Join(policyNames, ", "))
}

type Options struct {
	Policy Policy
	// Snap, when not empty, replaces every imported color with its closest
	// palette entry.
	Snap palette.Palette
}

// Encode writes g as an opaque image where pixel (x, y) is cell (y, x).
func Encode(w io.Writer, g *grid.Model) error {
	if err := bmp.Encode(w, ToImage(g)); err != nil {
		return fmt.Errorf("could not encode BMP: %w", err)
	}
	return nil
}

// ToImage renders g with one pixel per cell.
func ToImage(g *grid.Model) *image.RGBA {
	img := image.NewRGBA(g.Bounds())
	for y := range g.Height() {
		for x := range g.Width() {
			c := g.At(y, x)
			i := img.PixOffset(x, y)
			img.Pix[i+0] = c.R
			img.Pix[i+1] = c.G
			img.Pix[i+2] = c.B
			img.Pix[i+3] = 0xff
		}
	}
	return img
}

// Decode reads a BMP image into a new grid of the image size, subject to
// opts.Policy. The grid has no fill anchor.
func Decode(r io.Reader, opts Options) (*grid.Model, error) {
	img, err := bmp.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("could not decode BMP: %w", err)
	}

	return FromImage(img, opts)
}

// FromImage builds a grid from img, subject to opts.Policy.
func FromImage(img image.Image, opts Options) (*grid.Model, error) {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()

	switch opts.Policy {
	case PolicyReject:
		if !grid.ValidSize(w, h) {
			return nil, fmt.Errorf("%w: %dx%d, editable sizes are %d to %d", ErrOutOfRange, w, h, grid.MinSide, grid.MaxSide)
		}
	case PolicyFit:
		if w < 1 || h < 1 {
			return nil, fmt.Errorf("%w: %dx%d", ErrOutOfRange, w, h)
		}
		img = fit(img, grid.MaxSide, grid.MaxSide)
		b = img.Bounds()
		w, h = b.Dx(), b.Dy()
	case PolicyAllow:
		if w < 1 || h < 1 || w > MaxImportSide || h > MaxImportSide {
			return nil, fmt.Errorf("%w: %dx%d, limit is %d", ErrOutOfRange, w, h, MaxImportSide)
		}
	default:
		return nil, fmt.Errorf("unsupported import policy: %s", opts.Policy)
	}

	return grid.Fill(w, h, func(row, col int) colors.RGB {
		c := colors.From(img.At(b.Min.X+col, b.Min.Y+row))
		if len(opts.Snap) > 0 {
			c = opts.Snap.Convert(c)
		}
		return c
	}), nil
}
