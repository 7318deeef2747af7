package colour

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/lucasb-eyer/go-colorful"
)

// ANSI escape codes for terminal colours.
const (
	ansiReset    = "\033[0m"
	ansiFgPrefix = "\033[38;2;"
	ansiBgPrefix = "\033[48;2;"
	ansiSuffix   = "m"
	defaultWidth = 8
)

// RGB is a colour in 8-bit RGB, as written to terminals.
type RGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// String returns the colour in the format "rgb(r, g, b)".
func (rgb RGB) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", rgb.R, rgb.G, rgb.B)
}

// Hex returns the colour as a lowercase hex string (e.g., "#1a2b3c").
func (rgb RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", rgb.R, rgb.G, rgb.B)
}

// DisableColourOutput disables every escape sequence produced by this file.
var DisableColourOutput = false

// Preview returns a solid swatch of width cells for c. Unset colours and
// disabled colour output yield an empty string.
func Preview(c Color, width int) string {
	rgb, ok := c.RGB()
	if !ok || DisableColourOutput {
		return ""
	}
	if width <= 0 {
		width = defaultWidth
	}
	return background(rgb) + strings.Repeat(" ", width) + ansiReset
}

// PreviewWithText returns a swatch with text centred on it. The text colour
// is black or white, whichever contrasts better with the background.
func PreviewWithText(c Color, text string, width int) string {
	if width <= 0 {
		width = defaultWidth
	}

	displayText := text
	if n := utf8.RuneCountInString(text); n > width {
		displayText = string([]rune(text)[:width])
	} else if n < width {
		padding := (width - n) / 2
		displayText = strings.Repeat(" ", padding) + text + strings.Repeat(" ", width-n-padding)
	}

	rgb, ok := c.RGB()
	if !ok || DisableColourOutput {
		return displayText
	}

	fg := RGB{R: 255, G: 255, B: 255}
	if isLight(rgb) {
		fg = RGB{}
	}
	return background(rgb) + foreground(fg) + displayText + ansiReset
}

// ColourString returns text in the colour c, or plain text when colour
// output is disabled or c is unset.
func ColourString(c Color, text string) string {
	rgb, ok := c.RGB()
	if !ok || DisableColourOutput {
		return text
	}
	return foreground(rgb) + text + ansiReset
}

func background(c RGB) string {
	return fmt.Sprintf("%s%d;%d;%d%s", ansiBgPrefix, c.R, c.G, c.B, ansiSuffix)
}

func foreground(c RGB) string {
	return fmt.Sprintf("%s%d;%d;%d%s", ansiFgPrefix, c.R, c.G, c.B, ansiSuffix)
}

// isLight reports whether the CIE lightness of c is above the midpoint.
func isLight(c RGB) bool {
	l, _, _ := colorful.Color{
		R: float64(c.R) / max8Bit,
		G: float64(c.G) / max8Bit,
		B: float64(c.B) / max8Bit,
	}.Lab()
	return l > 0.5
}
