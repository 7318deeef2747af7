package database

import (
	"context"
	"math"
)

// DataChecker measures how well a database covers the score range.
type DataChecker struct {
	*Accessor
	pivot int
}

// NewDataChecker returns a checker for the database at path.
func NewDataChecker(path string, opts ...Option) *DataChecker {
	o := newOptions(opts)
	return &DataChecker{
		Accessor: newAccessor(path, o, "checker"),
		pivot:    o.pivot,
	}
}

// Check scans the database once. Scores counts the distinct scores inside
// [0,pivot); the database covers the range when every one of them has at
// least one word.
func (c *DataChecker) Check(ctx context.Context) (Report, error) {
	counts := make(map[int]int)
	r := Report{
		Database:       c.path,
		RequiredScores: c.pivot,
	}

	err := c.Each(ctx, func(rec Record) error {
		if r.Words == 0 || rec.Score < r.MinScore {
			r.MinScore = rec.Score
		}
		if rec.Score > r.MaxScore {
			r.MaxScore = rec.Score
		}
		r.Words++
		counts[rec.Score]++
		return nil
	}, true)
	if err != nil {
		return Report{}, err
	}

	for score, n := range counts {
		if score < c.pivot {
			r.Scores++
		}
		if r.MinWordsPerScore == 0 || n < r.MinWordsPerScore {
			r.MinWordsPerScore = n
		}
		if n > r.MaxWordsPerScore {
			r.MaxWordsPerScore = n
		}
	}
	r.MissingScores = c.pivot - r.Scores
	r.WordsPerScore = math.Round(float64(r.Words)/float64(c.pivot)*100) / 100
	r.Covered = r.Scores >= c.pivot

	c.logger.Debug("checked database", "path", c.path, "words", r.Words, "scores", r.Scores, "covered", r.Covered)
	return r, nil
}
