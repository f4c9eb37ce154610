package colors

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// RGB is an opaque 24-bit color. It is the only color representation kept
// by the grid; names and hex strings are converted at the boundary.
type RGB struct {
	R, G, B uint8
}

var _ color.Color = RGB{}

func (c RGB) RGBA() (uint32, uint32, uint32, uint32) {
	r := uint32(c.R)
	g := uint32(c.G)
	b := uint32(c.B)
	return r | r<<8, g | g<<8, b | b<<8, 0xffff
}

// String formats the color as #rrggbb.
func (c RGB) String() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Model converts any color to RGB, dropping alpha without premultiplying.
var Model = color.ModelFunc(rgbConvert)

func rgbConvert(c color.Color) color.Color {
	if rgb, ok := c.(RGB); ok {
		return rgb
	}

	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return RGB{R: n.R, G: n.G, B: n.B}
}

// From converts c to RGB.
func From(c color.Color) RGB {
	return Model.Convert(c).(RGB)
}

// Parse reads a color given as #rgb, #rrggbb, #rrrrggggbbbb or a color name.
// 16-bit channels are quantized to their high byte.
func Parse(s string) (RGB, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return RGB{}, fmt.Errorf("empty color")
	}

	if s[0] != '#' {
		if c, ok := Lookup(s); ok {
			return c, nil
		}
		return RGB{}, fmt.Errorf("unknown color name %q", s)
	}

	var width int
	switch len(s) {
	case 4:
		width = 1
	case 7:
		width = 2
	case 13:
		width = 4
	default:
		return RGB{}, fmt.Errorf("invalid color %q, should be #RGB, #RRGGBB, #RRRRGGGGBBBB or a name", s)
	}

	var ch [3]uint8
	for i := range ch {
		field := s[1+i*width : 1+(i+1)*width]
		v, err := strconv.ParseUint(field, 16, 16)
		if err != nil {
			return RGB{}, fmt.Errorf("could not read color %q: %w", s, err)
		}
		switch width {
		case 1:
			ch[i] = uint8(v | v<<4)
		case 2:
			ch[i] = uint8(v)
		case 4:
			ch[i] = uint8(v >> 8)
		}
	}

	return RGB{R: ch[0], G: ch[1], B: ch[2]}, nil
}

// MustParse is Parse for package-level tables; it panics on error.
func MustParse(s string) RGB {
	c, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return c
}
