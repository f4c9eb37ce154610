package editor

import (
	"fmt"
	"log/slog"

	"pixgrid/bitmap"
	"pixgrid/palette"
)

// LoadFlags are the command line settings shared by every command reading
// bitmaps.
type LoadFlags struct {
	Palette string `help:"Palette name (default, gray8, level, vga16) or RIFF PAL file" default:"${palette}"`
	Policy  string `help:"What to do with images outside the 1-30 editing range" enum:"reject,fit,allow" default:"${policy}"`
	Snap    bool   `help:"Snap loaded colors to the nearest palette entry" default:"false"`
}

// Import resolves the flags into decoding options and the palette.
func (f *LoadFlags) Import() (bitmap.Options, palette.Palette, error) {
	pal, err := palette.Load(f.Palette)
	if err != nil {
		return bitmap.Options{}, nil, err
	}

	policy, err := bitmap.ParsePolicy(f.Policy)
	if err != nil {
		return bitmap.Options{}, nil, err
	}

	opts := bitmap.Options{Policy: policy}
	if f.Snap {
		opts.Snap = pal
	}
	return opts, pal, nil
}

// Session starts an editor session configured from the flags.
func (f *LoadFlags) Session(width, height int, logger *slog.Logger) (*Session, error) {
	imp, pal, err := f.Import()
	if err != nil {
		return nil, fmt.Errorf("invalid load settings: %w", err)
	}

	return New(Options{
		Width:   width,
		Height:  height,
		Palette: pal,
		Import:  imp,
		Logger:  logger,
	}), nil
}
