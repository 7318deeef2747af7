package colour

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// ANSIColor represents a standard ANSI terminal colour and its typical RGB value.
type ANSIColor struct {
	Name     string
	R, G, B  uint8
	IsBright bool
}

// Standard ANSI palette (xterm basic 16 colours), indexed 0-15.
// These are the typical values; actual terminals may vary slightly.
var ansiColors = []ANSIColor{
	// Normal colours, foreground codes 30-37.
	{Name: "black", R: 0, G: 0, B: 0},
	{Name: "red", R: 205, G: 49, B: 49},
	{Name: "green", R: 13, G: 188, B: 121},
	{Name: "yellow", R: 229, G: 229, B: 16},
	{Name: "blue", R: 36, G: 114, B: 200},
	{Name: "magenta", R: 188, G: 63, B: 188},
	{Name: "cyan", R: 17, G: 168, B: 205},
	{Name: "white", R: 229, G: 229, B: 229},

	// Bright colours, foreground codes 90-97.
	{Name: "brightblack", R: 102, G: 102, B: 102, IsBright: true},
	{Name: "brightred", R: 241, G: 76, B: 76, IsBright: true},
	{Name: "brightgreen", R: 35, G: 209, B: 139, IsBright: true},
	{Name: "brightyellow", R: 245, G: 245, B: 67, IsBright: true},
	{Name: "brightblue", R: 59, G: 142, B: 234, IsBright: true},
	{Name: "brightmagenta", R: 214, G: 112, B: 214, IsBright: true},
	{Name: "brightcyan", R: 41, G: 184, B: 219, IsBright: true},
	{Name: "brightwhite", R: 255, G: 255, B: 255, IsBright: true},
}

const (
	ansiNormalBase = 30
	ansiBrightBase = 90
	ansiCubeStart  = 16
	ansiGrayStart  = 232
)

// ansi16Index maps an ansi16 foreground code to its palette index.
func ansi16Index(code int) (int, bool) {
	switch {
	case code >= ansiNormalBase && code < ansiNormalBase+8:
		return code - ansiNormalBase, true
	case code >= ansiBrightBase && code < ansiBrightBase+8:
		return code - ansiBrightBase + 8, true
	}
	return 0, false
}

// ansi16Code is the inverse of ansi16Index.
func ansi16Code(index int) int {
	if index < 8 {
		return ansiNormalBase + index
	}
	return ansiBrightBase + index - 8
}

func paletteColor(index int) colorful.Color {
	a := ansiColors[index]
	return colorful.Color{R: float64(a.R) / max8Bit, G: float64(a.G) / max8Bit, B: float64(a.B) / max8Bit}
}

func ansi16ToRGB(code int) (colorful.Color, bool) {
	index, ok := ansi16Index(code)
	if !ok {
		return colorful.Color{}, false
	}
	return paletteColor(index), true
}

// rgbToANSI16 returns the code of the perceptually closest palette entry.
func rgbToANSI16(c colorful.Color) int {
	r, g, b := c.RGB255()
	best := 0
	minDistance := math.MaxFloat64
	for i, a := range ansiColors {
		if d := colorDistance(r, g, b, a.R, a.G, a.B); d < minDistance {
			best, minDistance = i, d
		}
	}
	return ansi16Code(best)
}

func ansi256ToRGB(code int) (colorful.Color, bool) {
	switch {
	case code < 0 || code > maxANSI:
		return colorful.Color{}, false
	case code < ansiCubeStart:
		return paletteColor(code), true
	case code >= ansiGrayStart:
		v := float64((code-ansiGrayStart)*10+8) / max8Bit
		return colorful.Color{R: v, G: v, B: v}, true
	}

	n := code - ansiCubeStart
	level := func(x int) float64 { return float64(x) / 5 }
	return colorful.Color{R: level(n / 36), G: level(n % 36 / 6), B: level(n % 6)}, true
}

// rgbToANSI256 maps grays onto the 24-step gray ramp and everything else
// onto the 6x6x6 cube.
func rgbToANSI256(c colorful.Color) int {
	r, g, b := c.RGB255()
	if r == g && g == b {
		switch {
		case r < 8:
			return ansiCubeStart
		case r > 248:
			return ansiGrayStart - 1
		}
		return int(math.Round((float64(r)-8)/247*24)) + ansiGrayStart
	}

	step := func(x uint8) int { return int(math.Round(float64(x) / max8Bit * 5)) }
	return ansiCubeStart + 36*step(r) + 6*step(g) + step(b)
}

// colorDistance calculates perceptual colour distance using a weighted
// Euclidean distance in RGB space, which emphasises green like human vision.
func colorDistance(r1, g1, b1, r2, g2, b2 uint8) float64 {
	dr := float64(r1) - float64(r2)
	dg := float64(g1) - float64(g2)
	db := float64(b1) - float64(b2)

	return math.Sqrt(2*dr*dr + 4*dg*dg + 3*db*db)
}
