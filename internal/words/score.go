package words

import "fmt"

// DefaultStartIndex is the position weight of a word's first letter.
const DefaultStartIndex = 97

// Scorer maps words to integer scores in [0,max).
type Scorer struct {
	repo          *Repository
	min, max      int
	startIndex    int
	caseSensitive bool
}

// ScorerOption configures a Scorer.
type ScorerOption func(*Scorer)

// WithStartIndex sets the weight of the first letter position.
func WithStartIndex(n int) ScorerOption {
	return func(s *Scorer) {
		s.startIndex = n
	}
}

// WithCaseSensitive disables lowercasing before scoring.
func WithCaseSensitive() ScorerOption {
	return func(s *Scorer) {
		s.caseSensitive = true
	}
}

// NewScorer returns a scorer that offsets sums by min and wraps them at max.
// Words in repo cannot be scored.
func NewScorer(repo *Repository, min, max int, opts ...ScorerOption) (*Scorer, error) {
	if min < 0 || max <= 0 {
		return nil, fmt.Errorf("%w: [%d, %d)", ErrInvalidRange, min, max)
	}

	s := &Scorer{
		repo:       repo,
		min:        min,
		max:        max,
		startIndex: DefaultStartIndex,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Score returns the score of word: the sum over each rune of its alphabet
// position times (its index + start index), plus min, modulo max. Only
// letters are meaningful; callers filter everything else out beforehand.
func (s *Scorer) Score(word string) (int, error) {
	if s.repo != nil && s.repo.Includes(word) {
		return 0, fmt.Errorf("%w: %q", ErrReservedWord, word)
	}

	if !s.caseSensitive {
		word = Fold(word)
	}

	sum := 0
	i := 0
	for _, r := range word {
		sum += int(r-'a') * (i + s.startIndex)
		i++
	}

	score := (s.min + sum) % s.max
	if score < 0 {
		score += s.max
	}
	return score, nil
}

// ScoreAll scores every word, stopping at the first failure.
func (s *Scorer) ScoreAll(words []string) ([]int, error) {
	scores := make([]int, len(words))
	for i, w := range words {
		score, err := s.Score(w)
		if err != nil {
			return nil, err
		}
		scores[i] = score
	}
	return scores, nil
}
