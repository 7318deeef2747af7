package codec

import (
	"fmt"
	"strings"
	"sync"
	"unicode"

	"github.com/jmylchreest/colorcue/internal/colour"
	"github.com/jmylchreest/colorcue/internal/words"
)

// Decoder converts word tuples to colours. It needs only the descriptor
// list; decoded tuples are cached.
type Decoder struct {
	repo   *words.Repository
	scorer *words.Scorer

	mu    sync.Mutex
	cache map[string]colour.Color
}

// NewDecoder returns a decoder reading descriptors from repo.
func NewDecoder(repo *words.Repository) *Decoder {
	// Words score as they do in the database. The range is constant and
	// valid, so NewScorer cannot fail.
	scorer, _ := words.NewScorer(nil, 0, colour.Pivot)
	return &Decoder{
		repo:   repo,
		scorer: scorer,
		cache:  make(map[string]colour.Color),
	}
}

// Tokenize splits a tuple on whitespace, dots, underscores and commas and
// lowercases the tokens.
func Tokenize(input string) []string {
	tokens := strings.FieldsFunc(input, func(r rune) bool {
		return unicode.IsSpace(r) || r == '.' || r == '_' || r == ','
	})
	for i, t := range tokens {
		tokens[i] = words.Fold(t)
	}
	return tokens
}

// Decode returns the colour named by a two-word tuple.
func (d *Decoder) Decode(input string) (colour.Color, error) {
	tokens := Tokenize(input)
	if len(tokens) != 2 || hasDigit(tokens[0]) || hasDigit(tokens[1]) {
		return colour.Color{}, fmt.Errorf("%w: %q", ErrNotTuple, input)
	}

	key := tokens[0] + " " + tokens[1]
	d.mu.Lock()
	c, ok := d.cache[key]
	d.mu.Unlock()
	if ok {
		return c, nil
	}

	c, err := d.decode(tokens[0], tokens[1])
	if err != nil {
		return colour.Color{}, err
	}

	d.mu.Lock()
	d.cache[key] = c
	d.mu.Unlock()
	return c, nil
}

func (d *Decoder) decode(first, second string) (colour.Color, error) {
	firstIsDescriptor := d.repo.Includes(first)
	secondIsDescriptor := d.repo.Includes(second)

	var descriptor, word string
	switch {
	case firstIsDescriptor && secondIsDescriptor:
		return colour.Color{}, fmt.Errorf("%w: %q and %q", ErrTwoDescriptors, first, second)
	case firstIsDescriptor:
		descriptor, word = first, second
	case secondIsDescriptor:
		descriptor, word = second, first
	default:
		return colour.Color{}, fmt.Errorf("%w: %q and %q", ErrNoDescriptor, first, second)
	}

	value := d.repo.IndexOf(descriptor)
	if value < 0 {
		return colour.Color{}, fmt.Errorf("%w: %q", ErrUnknownDescriptor, descriptor)
	}

	score, err := d.scorer.Score(word)
	if err != nil {
		return colour.Color{}, err
	}

	var c colour.Color
	if value > colour.MaxHue {
		c = colour.HSL(0, 0, score)
	} else {
		if firstIsDescriptor {
			score += colour.Pivot
		}
		s, l, err := colour.DecodeTuple(score, colour.MaxPercent)
		if err != nil {
			return colour.Color{}, fmt.Errorf("%w: %q scores %d", colour.ErrInvalidColor, word, score)
		}
		c = colour.HSL(value, s, l)
	}

	if !c.Valid() {
		return colour.Color{}, fmt.Errorf("%w: %q decodes to %s", colour.ErrInvalidColor, word, c)
	}
	return c, nil
}

func hasDigit(s string) bool {
	return strings.ContainsFunc(s, unicode.IsDigit)
}
