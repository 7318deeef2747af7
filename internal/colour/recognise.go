package colour

import (
	"regexp"
	"strconv"
	"strings"
)

var functionalPattern = regexp.MustCompile(`^([a-z]{3,5})\((\d+(?:\.\d+)?(?:,\s*\d+(?:\.\d+)?){2,3})\);?$`)

// Recognise guesses the mode of unannotated colour input. It accepts a CSS
// keyword, a 6-digit hex colour with optional '#', or functional notation
// such as "rgb(12, 34, 56)" naming a known multi-channel mode. Ambiguous or
// unrecognised input returns false.
func Recognise(input string) (Value, bool) {
	s := strings.ToLower(strings.TrimSpace(input))

	if IsKeyword(s) {
		return Value{Mode: ModeKeyword, Token: s}, true
	}

	if hexPattern.MatchString(s) {
		return Value{Mode: ModeHex, Token: strings.ToUpper(strings.TrimPrefix(s, "#"))}, true
	}

	m := functionalPattern.FindStringSubmatch(s)
	if m == nil {
		return Value{}, false
	}
	mode := Mode(m[1])
	if !mode.MultiChannel() {
		return Value{}, false
	}

	fields := strings.Split(m[2], ",")
	if len(fields) != mode.Channels() {
		return Value{}, false
	}
	channels := make([]float64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return Value{}, false
		}
		channels[i] = v
	}
	return Value{Mode: mode, Channels: channels}, true
}
