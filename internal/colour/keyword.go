package colour

import (
	"math"
	"slices"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

// Keywords returns the CSS colour keywords, sorted.
func Keywords() []string {
	return slices.Clone(colornames.Names)
}

// IsKeyword reports whether name is a CSS colour keyword. Names are lowercase.
func IsKeyword(name string) bool {
	_, ok := colornames.Map[name]
	return ok
}

func keywordToRGB(name string) (colorful.Color, bool) {
	c, ok := colornames.Map[name]
	if !ok {
		return colorful.Color{}, false
	}
	return colorful.Color{
		R: float64(c.R) / max8Bit,
		G: float64(c.G) / max8Bit,
		B: float64(c.B) / max8Bit,
	}, true
}

// nearestKeyword returns the keyword with the smallest squared RGB distance
// to c. Ties go to the alphabetically first name.
func nearestKeyword(c colorful.Color) string {
	r, g, b := c.RGB255()
	best := ""
	bestDist := math.MaxInt
	for _, name := range colornames.Names {
		k := colornames.Map[name]
		dr := int(k.R) - int(r)
		dg := int(k.G) - int(g)
		db := int(k.B) - int(b)
		dist := dr*dr + dg*dg + db*db
		if dist < bestDist {
			best, bestDist = name, dist
			if dist == 0 {
				break
			}
		}
	}
	return best
}
