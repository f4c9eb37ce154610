package colors

import (
	"image/color"
	"strings"

	"golang.org/x/image/colornames"
)

// The editor palette, in SVG 1.1 values.
var (
	Black  = fromRGBA(colornames.Black)
	White  = fromRGBA(colornames.White)
	Red    = fromRGBA(colornames.Red)
	Orange = fromRGBA(colornames.Orange)
	Yellow = fromRGBA(colornames.Yellow)
	Green  = fromRGBA(colornames.Green)
	Blue   = fromRGBA(colornames.Blue)
	Indigo = fromRGBA(colornames.Indigo)
	Violet = fromRGBA(colornames.Violet)

	// Lime is pure green, the checkpoint color of platformer levels.
	Lime = fromRGBA(colornames.Lime)
)

// Names picked by Name when a value has several. Without an entry the
// alphabetically first SVG name wins ("gray" over "grey").
var preferred = []string{
	"black", "white", "red", "orange", "yellow", "green", "blue", "indigo", "violet",
	"cyan", "magenta",
}

var byColor = reverseNames()

func reverseNames() map[RGB]string {
	m := make(map[RGB]string, len(colornames.Names))
	for _, name := range preferred {
		m[fromRGBA(colornames.Map[name])] = name
	}
	for _, name := range colornames.Names {
		c := fromRGBA(colornames.Map[name])
		if _, ok := m[c]; !ok {
			m[c] = name
		}
	}
	return m
}

func fromRGBA(c color.RGBA) RGB {
	return RGB{R: c.R, G: c.G, B: c.B}
}

// Lookup resolves an SVG color name, ignoring case and spaces ("Dark Green").
func Lookup(name string) (RGB, bool) {
	key := strings.ToLower(strings.ReplaceAll(name, " ", ""))
	c, ok := colornames.Map[key]
	if !ok {
		return RGB{}, false
	}
	return fromRGBA(c), true
}

// Name returns the color name of c, if any.
func Name(c RGB) (string, bool) {
	name, ok := byColor[c]
	return name, ok
}
