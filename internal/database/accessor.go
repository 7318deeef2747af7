// Package database reads and writes the colorcue word database: a text file
// of "score<sep>word" lines sorted by score.
package database

import (
	"bufio"
	"context"
	"fmt"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/hashicorp/go-hclog"

	"github.com/jmylchreest/colorcue/internal/colour"
	"github.com/jmylchreest/colorcue/internal/errs"
)

// DefaultSeparator separates the score from the word on each line.
const DefaultSeparator = ","

// defaultPivot is the number of scores a database spreads its words over.
const defaultPivot = colour.Pivot

// ctxCheckInterval is how many lines a scan reads between context checks.
const ctxCheckInterval = 4096

// Record is one database line.
type Record struct {
	Score int    `json:"score" yaml:"score"`
	Word  string `json:"word" yaml:"word"`
}

// options holds the settings shared by every database component.
type options struct {
	separator string
	cache     *Cache
	logger    hclog.Logger
	searcher  Searcher
	rng       *rand.Rand
	pivot     int
}

// Option configures a database component.
type Option func(*options)

// WithSeparator sets the score/word separator.
func WithSeparator(sep string) Option {
	return func(o *options) {
		if sep != "" {
			o.separator = sep
		}
	}
}

// WithCache sets the record cache. The default is SharedCache.
func WithCache(c *Cache) Option {
	return func(o *options) {
		if c != nil {
			o.cache = c
		}
	}
}

// WithLogger sets the logger.
func WithLogger(l hclog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithSearcher sets the accelerated search used by a Finder. Nil disables it.
func WithSearcher(s Searcher) Option {
	return func(o *options) {
		o.searcher = s
	}
}

// WithRand sets the random source a Finder uses to pick among words.
func WithRand(r *rand.Rand) Option {
	return func(o *options) {
		o.rng = r
	}
}

// WithPivot overrides the number of scores words are spread over.
func WithPivot(pivot int) Option {
	return func(o *options) {
		if pivot > 0 {
			o.pivot = pivot
		}
	}
}

func newOptions(opts []Option) options {
	o := options{
		separator: DefaultSeparator,
		cache:     SharedCache(),
		logger:    hclog.NewNullLogger(),
		searcher:  NewGrepSearcher(NewRealProcessRunner()),
		pivot:     defaultPivot,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Accessor is the file access layer shared by the Initializer, the Finder
// and the DataChecker.
type Accessor struct {
	path      string
	separator string
	cache     *Cache
	logger    hclog.Logger
	setUp     bool
}

func newAccessor(path string, o options, name string) *Accessor {
	return &Accessor{
		path:      path,
		separator: o.separator,
		cache:     o.cache,
		logger:    o.logger.Named(name),
	}
}

// Path returns the database file path.
func (a *Accessor) Path() string {
	return a.path
}

// Separator returns the score/word separator.
func (a *Accessor) Separator() string {
	return a.separator
}

// SetUp creates the parent directories of the database file.
func (a *Accessor) SetUp() error {
	if err := os.MkdirAll(filepath.Dir(a.path), 0o755); err != nil {
		return errs.IO("create database directory", err)
	}
	a.setUp = true
	return nil
}

// Each calls fn for every record in file order, stopping at the first error.
// With useCache, a populated cache is served instead of the file. A complete
// file scan populates the cache.
func (a *Accessor) Each(ctx context.Context, fn func(Record) error, useCache bool) error {
	if useCache {
		if records, ok := a.cache.Records(); ok {
			for _, r := range records {
				if err := fn(r); err != nil {
					return err
				}
			}
			return nil
		}
	}

	f, err := os.Open(a.path)
	if err != nil {
		return errs.IO("open database", err)
	}
	defer f.Close()

	var records []Record
	scanner := bufio.NewScanner(f)
	line := 0
	for scanner.Scan() {
		line++
		if line%ctxCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}

		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		r, err := a.parse(text)
		if err != nil {
			return fmt.Errorf("%s:%d: %w", a.path, line, err)
		}
		records = append(records, r)
		if err := fn(r); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return errs.IO("read database", err)
	}

	if a.cache.Populate(records) {
		a.logger.Debug("cached database", "path", a.path, "records", len(records))
	}
	return nil
}

// All returns every record, from the cache when populated.
func (a *Accessor) All(ctx context.Context) ([]Record, error) {
	if records, ok := a.cache.Records(); ok {
		return records, nil
	}
	if err := a.Each(ctx, func(Record) error { return nil }, false); err != nil {
		return nil, err
	}
	records, _ := a.cache.Records()
	return records, nil
}

func (a *Accessor) parse(line string) (Record, error) {
	scoreText, word, ok := strings.Cut(line, a.separator)
	if !ok || word == "" {
		return Record{}, fmt.Errorf("%w: %q", ErrMalformedRecord, line)
	}
	score, err := strconv.Atoi(scoreText)
	if err != nil || score < 0 {
		return Record{}, fmt.Errorf("%w: bad score %q", ErrMalformedRecord, scoreText)
	}
	return Record{Score: score, Word: word}, nil
}
