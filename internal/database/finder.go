package database

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"slices"
	"sync"
	"unicode/utf8"
)

// Finder looks words up by score.
type Finder struct {
	*Accessor
	searcher Searcher

	mu  sync.Mutex
	rng *rand.Rand
}

// NewFinder returns a finder reading the database at path.
func NewFinder(path string, opts ...Option) *Finder {
	o := newOptions(opts)
	return &Finder{
		Accessor: newAccessor(path, o, "finder"),
		searcher: o.searcher,
		rng:      o.rng,
	}
}

// errStop ends a scan early without reporting a failure.
var errStop = errors.New("stop")

// AllWordsByScore returns every word recorded under score, in file order.
// The accelerated searcher runs first; if it fails or finds nothing the
// database is scanned. ErrNoWords is returned when neither finds a word.
func (f *Finder) AllWordsByScore(ctx context.Context, score int) ([]string, error) {
	if f.searcher != nil {
		found, err := f.searcher.Search(ctx, f.path, f.separator, score)
		switch {
		case err != nil:
			f.logger.Debug("accelerated search failed, scanning database", "score", score, "error", err)
		case len(found) == 0:
			f.logger.Debug("accelerated search found nothing, scanning database", "score", score)
		default:
			return found, nil
		}
	}

	var found []string
	err := f.Each(ctx, func(r Record) error {
		if r.Score == score {
			found = append(found, r.Word)
		}
		return nil
	}, true)
	if err != nil {
		return nil, err
	}
	if len(found) == 0 {
		return nil, fmt.Errorf("%w: score %d", ErrNoWords, score)
	}
	return found, nil
}

// OneWordByScore returns one word recorded under score. Among several,
// shorter words are more likely: see weightedPick.
func (f *Finder) OneWordByScore(ctx context.Context, score int) (string, error) {
	found, err := f.AllWordsByScore(ctx, score)
	if err != nil {
		return "", err
	}
	if len(found) == 1 {
		return found[0], nil
	}
	return weightedPick(found, f.intN), nil
}

// ClosestWordByScore returns the word whose score is nearest to score. The
// scan stops at the first word with the same score or one away from it;
// otherwise ties go to the word found first.
func (f *Finder) ClosestWordByScore(ctx context.Context, score int) (string, error) {
	best := ""
	bestDiff := -1
	err := f.Each(ctx, func(r Record) error {
		diff := r.Score - score
		if diff < 0 {
			diff = -diff
		}
		if diff <= 1 {
			best = r.Word
			return errStop
		}
		if bestDiff < 0 || diff < bestDiff {
			best, bestDiff = r.Word, diff
		}
		return nil
	}, true)
	if err != nil && !errors.Is(err, errStop) {
		return "", err
	}
	if best == "" {
		return "", fmt.Errorf("%w: database is empty", ErrNoWords)
	}
	return best, nil
}

func (f *Finder) intN(n int) int {
	if f.rng == nil {
		return rand.IntN(n)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.rng.IntN(n)
}

// weightedPick chooses one word with weight L²+L-len², where L is the
// longest word's length, so every word has a positive weight and shorter
// words weigh more. draw(n) must return a uniform integer in [0,n).
func weightedPick(list []string, draw func(n int) int) string {
	sorted := slices.Clone(list)
	slices.SortStableFunc(sorted, func(a, b string) int {
		return utf8.RuneCountInString(a) - utf8.RuneCountInString(b)
	})

	longest := utf8.RuneCountInString(sorted[len(sorted)-1])
	weights := make([]int, len(sorted))
	total := 0
	for i, w := range sorted {
		n := utf8.RuneCountInString(w)
		weights[i] = longest*longest + longest - n*n
		total += weights[i]
	}
	if total <= 0 {
		return sorted[0]
	}

	x := draw(total)
	sum := 0
	for i, w := range weights {
		sum += w
		if x < sum {
			return sorted[i]
		}
	}
	return sorted[len(sorted)-1]
}
