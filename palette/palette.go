package palette

import (
	"fmt"
	"image/color"
	"math"
	"os"
	"strings"

	"pixgrid/colors"
	"pixgrid/okcolor"
)

// Palette is an ordered set of selectable colors.
type Palette []colors.RGB

// Default holds the editor palette buttons, in display order.
var Default = Palette{
	colors.Black,
	colors.White,
	colors.Red,
	colors.Orange,
	colors.Yellow,
	colors.Green,
	colors.Blue,
	colors.Indigo,
	colors.Violet,
}

var builtin = map[string]Palette{
	"default": Default,
	"gray8":   grays(8),
	"level":   {colors.Black, colors.White, colors.Blue, colors.Lime, colors.Red},
	"vga16": {
		colors.MustParse("#000000"), colors.MustParse("#0000aa"), colors.MustParse("#00aa00"), colors.MustParse("#00aaaa"),
		colors.MustParse("#aa0000"), colors.MustParse("#aa00aa"), colors.MustParse("#aa5500"), colors.MustParse("#aaaaaa"),
		colors.MustParse("#555555"), colors.MustParse("#5555ff"), colors.MustParse("#55ff55"), colors.MustParse("#55ffff"),
		colors.MustParse("#ff5555"), colors.MustParse("#ff55ff"), colors.MustParse("#ffff55"), colors.MustParse("#ffffff"),
	},
}

func grays(n int) Palette {
	p := make(Palette, n)
	for i := range p {
		v := uint8(i * 255 / (n - 1))
		p[i] = colors.RGB{R: v, G: v, B: v}
	}
	return p
}

// Names lists the built-in palettes.
func Names() []string {
	return []string{"default", "gray8", "level", "vga16"}
}

// Load returns a built-in palette by name, or reads a RIFF PAL file.
func Load(name string) (Palette, error) {
	if name == "" {
		return Default, nil
	}
	if p, ok := builtin[strings.ToLower(name)]; ok {
		return p, nil
	}

	f, err := os.Open(name)
	if err != nil {
		return nil, fmt.Errorf("unknown palette %q: %w", name, err)
	}
	defer f.Close()

	pals, err := ReadFrom(f)
	if err != nil {
		return nil, fmt.Errorf("could not read palette file %q: %w", name, err)
	}

	var res Palette
	for _, p := range pals {
		res = append(res, p...)
	}
	if len(res) == 0 {
		return nil, fmt.Errorf("palette file %q has no colors", name)
	}
	return res, nil
}

// Index returns the position of the entry perceptually closest to c.
func (p Palette) Index(c color.Color) int {
	lc := okcolor.ToLab(c)
	ret, bestSum := 0, math.MaxFloat64
	for i, v := range p {
		sum := okcolor.Distance(lc, okcolor.ToLab(v))
		if sum < bestSum {
			if sum == 0 {
				return i
			}
			ret, bestSum = i, sum
		}
	}
	return ret
}

// Convert snaps c to the nearest palette entry. An empty palette returns c.
func (p Palette) Convert(c colors.RGB) colors.RGB {
	if len(p) == 0 {
		return c
	}
	return p[p.Index(c)]
}

// Contrast returns black or white, whichever reads better over c.
func Contrast(c colors.RGB) colors.RGB {
	if okcolor.ToLab(c).L > 0.6 {
		return colors.Black
	}
	return colors.White
}
