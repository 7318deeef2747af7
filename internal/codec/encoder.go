// Package codec turns colours into two-word tuples and back.
//
// A tuple pairs a descriptor word, whose index in the descriptor list gives
// the hue, with a database word whose score gives saturation and luminosity.
// Word order tells which half of the saturation/luminosity space the score
// belongs to.
package codec

import (
	"context"
	"fmt"
	"math/rand/v2"

	"github.com/hashicorp/go-hclog"

	"github.com/jmylchreest/colorcue/internal/colour"
	"github.com/jmylchreest/colorcue/internal/words"
)

// WordFinder looks database words up by score.
type WordFinder interface {
	AllWordsByScore(ctx context.Context, score int) ([]string, error)
	OneWordByScore(ctx context.Context, score int) (string, error)
	ClosestWordByScore(ctx context.Context, score int) (string, error)
}

// EncodeOptions selects how many tuples Encode returns.
type EncodeOptions struct {
	// AllResults returns every word and gray descriptor combination.
	AllResults bool

	// FindClosest uses the word with the nearest score. It wins over
	// AllResults for the word.
	FindClosest bool
}

// Encoder converts colours to word tuples.
type Encoder struct {
	repo   *words.Repository
	finder WordFinder
	logger hclog.Logger
	rng    *rand.Rand
}

// EncoderOption configures an Encoder.
type EncoderOption func(*Encoder)

// WithLogger sets the encoder's logger.
func WithLogger(l hclog.Logger) EncoderOption {
	return func(e *Encoder) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithRand sets the random source used to pick a gray descriptor.
func WithRand(r *rand.Rand) EncoderOption {
	return func(e *Encoder) {
		e.rng = r
	}
}

// NewEncoder returns an encoder drawing descriptors from repo and words
// from finder.
func NewEncoder(repo *words.Repository, finder WordFinder, opts ...EncoderOption) *Encoder {
	e := &Encoder{
		repo:   repo,
		finder: finder,
		logger: hclog.NewNullLogger(),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.logger = e.logger.Named("encoder")
	return e
}

// Encode returns the tuples naming c. Grays (saturation 0) use a gray
// descriptor and a word scored by luminosity, so their hue is lost.
func (e *Encoder) Encode(ctx context.Context, c colour.Color, opts EncodeOptions) ([]string, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("%w: %s", colour.ErrInvalidColor, c)
	}

	num, err := colour.EncodeTuple(c.Saturation(), c.Luminosity(), colour.MaxPercent)
	if err != nil {
		return nil, err
	}
	descriptorFirst := num >= colour.Pivot
	score := num % colour.Pivot

	var descriptors []string
	gray := c.Saturation() == 0
	if gray {
		score = c.Luminosity()
		descriptors, err = e.grayDescriptors(opts.AllResults)
	} else {
		var d string
		d, err = e.repo.HueDescriptor(c.Hue())
		descriptors = []string{d}
	}
	if err != nil {
		return nil, err
	}

	found, err := e.lookup(ctx, score, opts)
	if err != nil {
		return nil, err
	}

	tuples := make([]string, 0, len(found)*len(descriptors))
	for _, w := range found {
		for _, d := range descriptors {
			if descriptorFirst {
				tuples = append(tuples, d+" "+w)
			} else {
				tuples = append(tuples, w+" "+d)
			}
		}
	}

	e.logger.Debug("encoded colour", "colour", c.String(), "score", score, "gray", gray, "descriptor_first", descriptorFirst, "tuples", len(tuples))
	return tuples, nil
}

func (e *Encoder) grayDescriptors(all bool) ([]string, error) {
	if all {
		grays := e.repo.GrayDescriptors()
		if len(grays) == 0 {
			return nil, ErrNoGrayDescriptors
		}
		return grays, nil
	}
	d, ok := e.repo.RandomGray(e.rng)
	if !ok {
		return nil, ErrNoGrayDescriptors
	}
	return []string{d}, nil
}

func (e *Encoder) lookup(ctx context.Context, score int, opts EncodeOptions) ([]string, error) {
	switch {
	case opts.FindClosest:
		w, err := e.finder.ClosestWordByScore(ctx, score)
		if err != nil {
			return nil, err
		}
		return []string{w}, nil
	case opts.AllResults:
		return e.finder.AllWordsByScore(ctx, score)
	default:
		w, err := e.finder.OneWordByScore(ctx, score)
		if err != nil {
			return nil, err
		}
		return []string{w}, nil
	}
}
