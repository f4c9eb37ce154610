package okcolor

import (
	"image/color"
	"math"
)

// LinearRGB holds linear-light sRGB channels in [0, 1].
type LinearRGB struct {
	R float64
	G float64
	B float64
}

var LinearRGBModel = color.ModelFunc(linearRGBConvert)

func linearRGBConvert(c color.Color) color.Color {
	if _, ok := c.(LinearRGB); ok {
		return c
	}

	return sRGBToLinearRGB(color.NRGBA64Model.Convert(c).(color.NRGBA64))
}

func (lc LinearRGB) RGBA() (uint32, uint32, uint32, uint32) {
	return linearRGBToSRGB(lc).RGBA()
}

func linearRGBToSRGB(lc LinearRGB) color.RGBA64 {
	return color.RGBA64{
		R: uint16(math.Round(fromLinear(clamp(lc.R)) * 65535)),
		G: uint16(math.Round(fromLinear(clamp(lc.G)) * 65535)),
		B: uint16(math.Round(fromLinear(clamp(lc.B)) * 65535)),
		A: 0xffff,
	}
}

func sRGBToLinearRGB(c color.NRGBA64) LinearRGB {
	return LinearRGB{
		R: toLinear(float64(c.R) / 65535),
		G: toLinear(float64(c.G) / 65535),
		B: toLinear(float64(c.B) / 65535),
	}
}

func toLinear(x float64) float64 {
	if x >= 0.04045 {
		return math.Pow((x+0.055)/1.055, 2.4)
	} else {
		return x / 12.92
	}
}

const pow float64 = 1.0 / 2.4

func fromLinear(x float64) float64 {
	if x >= 0.0031308 {
		return math.Pow(x, pow)*1.055 - 0.055
	} else {
		return x * 12.92
	}
}

func clamp(x float64) float64 {
	return math.Max(0, math.Min(1, x))
}
