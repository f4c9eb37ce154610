// based on:
// https://bottosson.github.io/posts/oklab/

package okcolor

import (
	"image/color"
	"math"
)

// Lab is a color in the OkLab space. Alpha is not kept: every color handled
// by the editor is opaque.
type Lab struct {
	L float64 // perceived lightness
	A float64 // how green/red the color is
	B float64 // how blue/yellow the color is
}

var LabModel = color.ModelFunc(labConvert)

func labConvert(c color.Color) color.Color {
	if _, ok := c.(Lab); ok {
		return c
	}

	col := linearRGBConvert(c).(LinearRGB)

	var l, m, s float64
	l = math.Cbrt(0.4122214708*col.R + 0.5363325363*col.G + 0.0514459929*col.B)
	m = math.Cbrt(0.2119034982*col.R + 0.6806995451*col.G + 0.1073969566*col.B)
	s = math.Cbrt(0.0883024619*col.R + 0.2817188376*col.G + 0.6299787005*col.B)

	return Lab{
		L: 0.2104542553*l + 0.7936177850*m - 0.0040720468*s,
		A: 1.9779984951*l - 2.4285922050*m + 0.4505937099*s,
		B: 0.0259040371*l + 0.7827717662*m - 0.8086757660*s,
	}
}

// ToLab converts any color to OkLab.
func ToLab(c color.Color) Lab {
	return labConvert(c).(Lab)
}

// RGBA converts back to sRGB, clamping channels that fall outside the gamut.
func (lc Lab) RGBA() (uint32, uint32, uint32, uint32) {
	return linearRGBToSRGB(lc.LinearRGB()).RGBA()
}

func (lc Lab) LinearRGB() LinearRGB {
	var l, m, s float64
	l = lc.L + 0.3963377774*lc.A + 0.2158037573*lc.B
	l = l * l * l
	m = lc.L - 0.1055613458*lc.A - 0.0638541728*lc.B
	m = m * m * m
	s = lc.L - 0.0894841775*lc.A - 1.2914855480*lc.B
	s = s * s * s

	return LinearRGB{
		R: +4.0767416621*l - 3.3077115913*m + 0.2309699292*s,
		G: -1.2684380046*l + 2.6097574011*m - 0.3413193965*s,
		B: -0.0041960863*l - 0.7034186147*m + 1.7076147010*s,
	}
}

// Distance is the squared euclidean distance between two OkLab colors.
func Distance(a, b Lab) float64 {
	dL := a.L - b.L
	da := a.A - b.A
	db := a.B - b.B
	return dL*dL + da*da + db*db
}
