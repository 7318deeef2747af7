package colour

import (
	"fmt"
	"slices"
	"strings"
)

// Mode names a colour representation.
type Mode string

// Supported colour modes. HSL is the canonical internal representation.
const (
	ModeANSI16  Mode = "ansi16"
	ModeANSI256 Mode = "ansi256"
	ModeApple   Mode = "apple"
	ModeCMYK    Mode = "cmyk"
	ModeHCG     Mode = "hcg"
	ModeHex     Mode = "hex"
	ModeHSL     Mode = "hsl"
	ModeHSV     Mode = "hsv"
	ModeHWB     Mode = "hwb"
	ModeKeyword Mode = "keyword"
	ModeLab     Mode = "lab"
	ModeLCH     Mode = "lch"
	ModeRGB     Mode = "rgb"
	ModeXYZ     Mode = "xyz"
)

var modes = []Mode{
	ModeRGB, ModeHSL, ModeHSV, ModeHWB, ModeCMYK, ModeXYZ, ModeLab, ModeLCH,
	ModeHex, ModeKeyword, ModeANSI16, ModeANSI256, ModeHCG, ModeApple,
}

func init() {
	slices.Sort(modes)
}

// Modes returns the supported colour modes, sorted by name.
func Modes() []Mode {
	return slices.Clone(modes)
}

// ModeNames returns the supported mode names joined by ", ", for help text.
func ModeNames() string {
	names := make([]string, len(modes))
	for i, m := range modes {
		names[i] = string(m)
	}
	return strings.Join(names, ", ")
}

// ParseMode returns the mode matching name, ignoring case and surrounding space.
func ParseMode(name string) (Mode, error) {
	m := Mode(strings.ToLower(strings.TrimSpace(name)))
	if !m.Known() {
		return "", fmt.Errorf("%w: %q (supported: %s)", ErrUnknownMode, name, ModeNames())
	}
	return m, nil
}

// Known reports whether m is a supported mode.
func (m Mode) Known() bool {
	return slices.Contains(modes, m)
}

// MultiChannel reports whether values in m are rendered as "mode(c0, c1, ...)".
func (m Mode) MultiChannel() bool {
	switch m {
	case ModeRGB, ModeHSL, ModeHSV, ModeHWB, ModeCMYK, ModeXYZ, ModeLab, ModeLCH, ModeHCG, ModeApple:
		return true
	}
	return false
}

// Channels returns the number of channels a multi-channel mode carries,
// or 0 for token modes.
func (m Mode) Channels() int {
	switch {
	case m == ModeCMYK:
		return 4
	case m.MultiChannel():
		return 3
	}
	return 0
}

// String implements fmt.Stringer.
func (m Mode) String() string {
	return string(m)
}
