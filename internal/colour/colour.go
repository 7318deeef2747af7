// Package colour provides the HSL colour model used by the codec, its
// conversions to and from other colour modes, and the tuple codec that packs
// saturation and luminosity into a single integer.
package colour

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

const (
	// MaxHue is the largest hue channel value.
	MaxHue = 360

	// MaxPercent is the largest saturation or luminosity channel value.
	MaxPercent = 100

	// MaxSLTuple is the number of distinct (saturation, luminosity) pairs.
	MaxSLTuple = (MaxPercent + 1) * (MaxPercent + 1)

	// Pivot splits the saturation/luminosity space in two halves: one word
	// score can encode any value below it, and the word order selects the
	// half. It is half of MaxSLTuple plus one, rounded up, and is therefore
	// also the number of distinct scores a database needs to encode any colour.
	//
	// The encoder folds with "mod Pivot" and the decoder unfolds with
	// "+ Pivot"; both must read this constant.
	Pivot = 5102
)

// Color is a colour held in HSL form: hue in [0,360], saturation and
// luminosity in [0,100]. The zero value is unset and not valid.
type Color struct {
	hsl [3]float64
	set bool
}

// Value is a colour rendered in a particular mode. Multi-channel modes fill
// Channels, hex and keyword fill Token, and the ANSI modes fill Code.
type Value struct {
	Mode     Mode
	Channels []float64
	Token    string
	Code     int
}

// HSL returns the colour with the given channels, stored as-is.
func HSL(h, s, l int) Color {
	return Color{hsl: [3]float64{float64(h), float64(s), float64(l)}, set: true}
}

// New builds a colour from channel values in the given mode. HSL channels
// are stored as-is without validation. Other modes are converted, and input
// that cannot be converted yields an unset colour. ANSI modes read their code
// from the first channel.
func New(channels []float64, mode Mode) Color {
	v := Value{Mode: mode, Channels: channels}
	if (mode == ModeANSI16 || mode == ModeANSI256) && len(channels) == 1 {
		v = Value{Mode: mode, Code: int(channels[0])}
	}
	return FromValue(v)
}

// Parse builds a colour from its textual form in the given mode: "#RRGGBB"
// for hex, a CSS name for keyword, an integer code for the ANSI modes, and
// "c0,c1,c2" or "mode(c0, c1, c2)" for multi-channel modes. Malformed input
// yields an unset colour.
func Parse(input string, mode Mode) Color {
	v, err := ParseValue(input, mode)
	if err != nil {
		return Color{}
	}
	return FromValue(v)
}

// FromValue converts v to HSL. HSL values are kept as-is; values that are
// malformed or out of their mode's range yield an unset colour.
func FromValue(v Value) Color {
	if v.Mode == ModeHSL {
		if len(v.Channels) != 3 {
			return Color{}
		}
		return Color{hsl: [3]float64(v.Channels), set: true}
	}

	rgb, ok := toRGB(v)
	if !ok {
		return Color{}
	}

	h, s, l := rgb.Clamped().Hsl()
	if math.IsNaN(h) {
		h = 0
	}
	return Color{
		hsl: [3]float64{round(h), round(s * MaxPercent), round(l * MaxPercent)},
		set: true,
	}
}

// Valid reports whether the colour has three finite non-negative channels
// within the HSL ranges.
func (c Color) Valid() bool {
	if !c.set {
		return false
	}
	limits := [3]float64{MaxHue, MaxPercent, MaxPercent}
	for i, ch := range c.hsl {
		if math.IsNaN(ch) || math.IsInf(ch, 0) || ch < 0 || ch > limits[i] {
			return false
		}
	}
	return true
}

// Hue returns the hue channel, rounded to an integer.
func (c Color) Hue() int {
	return int(math.Round(c.hsl[0]))
}

// Saturation returns the saturation channel, rounded to an integer.
func (c Color) Saturation() int {
	return int(math.Round(c.hsl[1]))
}

// Luminosity returns the luminosity channel, rounded to an integer.
func (c Color) Luminosity() int {
	return int(math.Round(c.hsl[2]))
}

// Channels returns the raw HSL channels.
func (c Color) Channels() [3]float64 {
	return c.hsl
}

// To converts the colour to the given mode. It returns false for unknown
// modes and unset colours; no range validation happens here.
func (c Color) To(mode Mode) (Value, bool) {
	if !c.set || !mode.Known() {
		return Value{}, false
	}
	if mode == ModeHSL {
		return Value{Mode: ModeHSL, Channels: c.hsl[:]}, true
	}
	return fromRGB(c.rgb(), mode), true
}

// Format converts the colour to mode and renders it.
func (c Color) Format(mode Mode) (string, error) {
	if !mode.Known() {
		return "", fmt.Errorf("%w: %q", ErrInvalidFormat, mode)
	}
	v, ok := c.To(mode)
	if !ok {
		return "", ErrInvalidColor
	}
	return FormatValue(v)
}

// String renders the colour in HSL notation.
func (c Color) String() string {
	s, err := c.Format(ModeHSL)
	if err != nil {
		return "hsl(invalid)"
	}
	return s
}

// FormatValue renders v without converting it: "mode(c0, c1, c2)" for
// multi-channel modes, "#RRGGBB" for hex and the bare token for keyword and
// ANSI modes.
func FormatValue(v Value) (string, error) {
	mode := Mode(strings.ToLower(string(v.Mode)))
	switch {
	case mode.MultiChannel():
		parts := make([]string, len(v.Channels))
		for i, ch := range v.Channels {
			parts[i] = strconv.FormatFloat(ch, 'f', -1, 64)
		}
		return fmt.Sprintf("%s(%s)", mode, strings.Join(parts, ", ")), nil
	case mode == ModeHex:
		if strings.HasPrefix(v.Token, "#") {
			return v.Token, nil
		}
		return "#" + v.Token, nil
	case mode == ModeKeyword:
		return v.Token, nil
	case mode == ModeANSI16, mode == ModeANSI256:
		return strconv.Itoa(v.Code), nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidFormat, v.Mode)
}

var (
	hexPattern     = regexp.MustCompile(`(?i)^#?[a-f0-9]{6}$`)
	functionPrefix = regexp.MustCompile(`^[a-z]{3,5}\(`)
)

// ParseValue parses the textual form of a colour in mode, without converting it.
func ParseValue(input string, mode Mode) (Value, error) {
	input = strings.TrimSpace(input)
	switch {
	case mode == ModeHex:
		if !hexPattern.MatchString(input) {
			return Value{}, fmt.Errorf("%w: %q is not a 6-digit hex colour", ErrInvalidColor, input)
		}
		return Value{Mode: mode, Token: strings.ToUpper(strings.TrimPrefix(input, "#"))}, nil
	case mode == ModeKeyword:
		name := strings.ToLower(input)
		if !IsKeyword(name) {
			return Value{}, fmt.Errorf("%w: %q is not a CSS colour keyword", ErrInvalidColor, input)
		}
		return Value{Mode: mode, Token: name}, nil
	case mode == ModeANSI16, mode == ModeANSI256:
		code, err := strconv.Atoi(input)
		if err != nil {
			return Value{}, fmt.Errorf("%w: %q is not an ANSI code", ErrInvalidColor, input)
		}
		return Value{Mode: mode, Code: code}, nil
	case mode.MultiChannel():
		channels, err := parseChannels(input, mode)
		if err != nil {
			return Value{}, err
		}
		return Value{Mode: mode, Channels: channels}, nil
	}
	return Value{}, fmt.Errorf("%w: %q", ErrUnknownMode, mode)
}

// parseChannels accepts "c0,c1,c2" and "mode(c0, c1, c2)".
func parseChannels(input string, mode Mode) ([]float64, error) {
	s := strings.ToLower(input)
	if functionPrefix.MatchString(s) {
		s = strings.TrimSuffix(strings.TrimSuffix(s, ";"), ")")
		s = s[strings.IndexByte(s, '(')+1:]
	}

	fields := strings.Split(s, ",")
	if len(fields) != mode.Channels() {
		return nil, fmt.Errorf("%w: %s expects %d channels, got %d", ErrInvalidColor, mode, mode.Channels(), len(fields))
	}

	channels := make([]float64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return nil, fmt.Errorf("%w: channel %q: %v", ErrInvalidColor, f, err)
		}
		channels[i] = v
	}
	return channels, nil
}

// round rounds half away from zero and never returns negative zero.
func round(v float64) float64 {
	r := math.Round(v)
	if r == 0 {
		return 0
	}
	return r
}
