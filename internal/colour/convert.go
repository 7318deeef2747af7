package colour

import (
	"fmt"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Channel limits for the modes whose inputs are bounded.
const (
	max8Bit   = 255
	maxApple  = 65535
	maxANSI   = 255
	hueDegree = 360
)

// rgb returns the colour as a go-colorful value, quantised to 8 bits per
// channel so conversions start from the colour a terminal would show.
func (c Color) rgb() colorful.Color {
	r, g, b := colorful.Hsl(c.hsl[0], c.hsl[1]/MaxPercent, c.hsl[2]/MaxPercent).Clamped().RGB255()
	return colorful.Color{R: float64(r) / max8Bit, G: float64(g) / max8Bit, B: float64(b) / max8Bit}
}

// RGB returns the colour as 8-bit RGB. It returns false for unset colours.
func (c Color) RGB() (RGB, bool) {
	if !c.set {
		return RGB{}, false
	}
	r, g, b := c.rgb().Clamped().RGB255()
	return RGB{R: r, G: g, B: b}, true
}

// toRGB converts a value in any non-HSL mode to a go-colorful colour.
func toRGB(v Value) (colorful.Color, bool) {
	if v.Mode.MultiChannel() && !channelsOK(v) {
		return colorful.Color{}, false
	}

	ch := v.Channels
	switch v.Mode {
	case ModeRGB:
		return colorful.Color{R: ch[0] / max8Bit, G: ch[1] / max8Bit, B: ch[2] / max8Bit}, true
	case ModeApple:
		return colorful.Color{R: ch[0] / maxApple, G: ch[1] / maxApple, B: ch[2] / maxApple}, true
	case ModeHSV:
		return colorful.Hsv(ch[0], ch[1]/MaxPercent, ch[2]/MaxPercent), true
	case ModeHWB:
		return hwbToRGB(ch[0], ch[1]/MaxPercent, ch[2]/MaxPercent), true
	case ModeHCG:
		return hcgToRGB(ch[0], ch[1]/MaxPercent, ch[2]/MaxPercent), true
	case ModeCMYK:
		return cmykToRGB(ch[0]/MaxPercent, ch[1]/MaxPercent, ch[2]/MaxPercent, ch[3]/MaxPercent), true
	case ModeXYZ:
		return colorful.Xyz(ch[0]/MaxPercent, ch[1]/MaxPercent, ch[2]/MaxPercent).Clamped(), true
	case ModeLab:
		return colorful.Lab(ch[0]/MaxPercent, ch[1]/MaxPercent, ch[2]/MaxPercent).Clamped(), true
	case ModeLCH:
		return colorful.Hcl(ch[2], ch[1]/MaxPercent, ch[0]/MaxPercent).Clamped(), true
	case ModeHex:
		if !hexPattern.MatchString(v.Token) {
			return colorful.Color{}, false
		}
		c, err := colorful.Hex("#" + v.Token[len(v.Token)-6:])
		return c, err == nil
	case ModeKeyword:
		return keywordToRGB(v.Token)
	case ModeANSI16:
		return ansi16ToRGB(v.Code)
	case ModeANSI256:
		return ansi256ToRGB(v.Code)
	}
	return colorful.Color{}, false
}

// fromRGB renders c in mode. Channels are rounded to integers.
func fromRGB(c colorful.Color, mode Mode) Value {
	c = c.Clamped()
	v := Value{Mode: mode}
	switch mode {
	case ModeRGB:
		v.Channels = scaled(max8Bit, c.R, c.G, c.B)
	case ModeApple:
		v.Channels = scaled(maxApple, c.R, c.G, c.B)
	case ModeHSL:
		h, s, l := c.Hsl()
		v.Channels = []float64{round(h), round(s * MaxPercent), round(l * MaxPercent)}
	case ModeHSV:
		h, s, val := c.Hsv()
		v.Channels = []float64{round(h), round(s * MaxPercent), round(val * MaxPercent)}
	case ModeHWB:
		h, w, b := rgbToHWB(c)
		v.Channels = []float64{round(h), round(w * MaxPercent), round(b * MaxPercent)}
	case ModeHCG:
		h, chroma, gray := rgbToHCG(c)
		v.Channels = []float64{round(h), round(chroma * MaxPercent), round(gray * MaxPercent)}
	case ModeCMYK:
		v.Channels = scaled(MaxPercent, rgbToCMYK(c)...)
	case ModeXYZ:
		x, y, z := c.Xyz()
		v.Channels = scaled(MaxPercent, x, y, z)
	case ModeLab:
		l, a, b := c.Lab()
		v.Channels = scaled(MaxPercent, l, a, b)
	case ModeLCH:
		h, chroma, l := c.Hcl()
		v.Channels = []float64{round(l * MaxPercent), round(chroma * MaxPercent), round(h)}
	case ModeHex:
		r, g, b := c.RGB255()
		v.Token = fmt.Sprintf("%02X%02X%02X", r, g, b)
	case ModeKeyword:
		v.Token = nearestKeyword(c)
	case ModeANSI16:
		v.Code = rgbToANSI16(c)
	case ModeANSI256:
		v.Code = rgbToANSI256(c)
	}
	return v
}

// channelsOK checks the channel count and the per-mode input ranges.
func channelsOK(v Value) bool {
	if len(v.Channels) != v.Mode.Channels() {
		return false
	}
	for _, ch := range v.Channels {
		if math.IsNaN(ch) || math.IsInf(ch, 0) {
			return false
		}
	}

	within := func(x, lo, hi float64) bool { return x >= lo && x <= hi }
	ch := v.Channels
	switch v.Mode {
	case ModeRGB:
		return within(ch[0], 0, max8Bit) && within(ch[1], 0, max8Bit) && within(ch[2], 0, max8Bit)
	case ModeApple:
		return within(ch[0], 0, maxApple) && within(ch[1], 0, maxApple) && within(ch[2], 0, maxApple)
	case ModeHSV, ModeHWB, ModeHCG:
		return within(ch[0], 0, hueDegree) && within(ch[1], 0, MaxPercent) && within(ch[2], 0, MaxPercent)
	case ModeCMYK:
		for _, x := range ch {
			if !within(x, 0, MaxPercent) {
				return false
			}
		}
	}
	return true
}

func scaled(factor float64, values ...float64) []float64 {
	out := make([]float64, len(values))
	for i, x := range values {
		out[i] = round(x * factor)
	}
	return out
}

// hwbToRGB converts hue, whiteness and blackness (0-1) to RGB.
func hwbToRGB(h, w, b float64) colorful.Color {
	if w+b >= 1 {
		gray := w / (w + b)
		return colorful.Color{R: gray, G: gray, B: gray}
	}
	v := 1 - b
	return colorful.Hsv(h, 1-w/v, v)
}

func rgbToHWB(c colorful.Color) (h, w, b float64) {
	h, _, _ = c.Hsv()
	w = math.Min(c.R, math.Min(c.G, c.B))
	b = 1 - math.Max(c.R, math.Max(c.G, c.B))
	return h, w, b
}

// hcgToRGB converts hue, chroma and grayness (0-1) to RGB.
func hcgToRGB(h, chroma, gray float64) colorful.Color {
	if chroma == 0 {
		return colorful.Color{R: gray, G: gray, B: gray}
	}

	hi := math.Mod(h/hueDegree, 1) * 6
	v := math.Mod(hi, 1)
	w := 1 - v

	var pure [3]float64
	switch int(math.Floor(hi)) {
	case 0:
		pure = [3]float64{1, v, 0}
	case 1:
		pure = [3]float64{w, 1, 0}
	case 2:
		pure = [3]float64{0, 1, v}
	case 3:
		pure = [3]float64{0, w, 1}
	case 4:
		pure = [3]float64{v, 0, 1}
	default:
		pure = [3]float64{1, 0, w}
	}

	mg := (1 - chroma) * gray
	return colorful.Color{
		R: chroma*pure[0] + mg,
		G: chroma*pure[1] + mg,
		B: chroma*pure[2] + mg,
	}
}

func rgbToHCG(c colorful.Color) (h, chroma, gray float64) {
	maxV := math.Max(c.R, math.Max(c.G, c.B))
	minV := math.Min(c.R, math.Min(c.G, c.B))
	chroma = maxV - minV
	if chroma < 1 {
		gray = minV / (1 - chroma)
	}
	h, _, _ = c.Hsv()
	return h, chroma, gray
}

func cmykToRGB(cy, m, y, k float64) colorful.Color {
	return colorful.Color{
		R: (1 - cy) * (1 - k),
		G: (1 - m) * (1 - k),
		B: (1 - y) * (1 - k),
	}
}

func rgbToCMYK(c colorful.Color) []float64 {
	k := 1 - math.Max(c.R, math.Max(c.G, c.B))
	if k == 1 {
		return []float64{0, 0, 0, 1}
	}
	return []float64{
		(1 - c.R - k) / (1 - k),
		(1 - c.G - k) / (1 - k),
		(1 - c.B - k) / (1 - k),
		k,
	}
}
