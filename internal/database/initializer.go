package database

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"

	"github.com/jmylchreest/colorcue/internal/errs"
	"github.com/jmylchreest/colorcue/internal/words"
)

// Initializer scores a cleaned word list and writes it as a database.
type Initializer struct {
	*Accessor
	repo  *words.Repository
	pivot int
}

// NewInitializer returns an initializer writing to path. Words are scored
// into [0,pivot) and must not be descriptors in repo.
func NewInitializer(path string, repo *words.Repository, opts ...Option) *Initializer {
	o := newOptions(opts)
	return &Initializer{
		Accessor: newAccessor(path, o, "initializer"),
		repo:     repo,
		pivot:    o.pivot,
	}
}

// Score returns the records for list sorted by score. Words sharing a score
// keep their input order.
func (in *Initializer) Score(list []string) ([]Record, error) {
	scorer, err := words.NewScorer(in.repo, 0, in.pivot)
	if err != nil {
		return nil, err
	}

	records := make([]Record, len(list))
	for i, w := range list {
		score, err := scorer.Score(w)
		if err != nil {
			return nil, err
		}
		records[i] = Record{Score: score, Word: w}
	}

	slices.SortStableFunc(records, func(a, b Record) int {
		return a.Score - b.Score
	})
	return records, nil
}

// Populate replaces the database file with the scored list. The file is
// written next to its destination and renamed into place, and the cache is
// reset so later scans read the new content.
func (in *Initializer) Populate(ctx context.Context, list []string) error {
	if !in.setUp {
		return ErrNotSetUp
	}

	records, err := in.Score(list)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(in.path), "."+filepath.Base(in.path)+".*")
	if err != nil {
		return errs.IO("create database", err)
	}
	defer func() {
		_ = os.Remove(tmp.Name())
	}()

	w := bufio.NewWriter(tmp)
	for i, r := range records {
		if i%ctxCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				_ = tmp.Close()
				return err
			}
		}
		if _, err := fmt.Fprint(w, strconv.Itoa(r.Score), in.separator, r.Word, "\n"); err != nil {
			_ = tmp.Close()
			return errs.IO("write database", err)
		}
	}
	if err := w.Flush(); err != nil {
		_ = tmp.Close()
		return errs.IO("write database", err)
	}
	if err := tmp.Close(); err != nil {
		return errs.IO("write database", err)
	}
	if err := os.Rename(tmp.Name(), in.path); err != nil {
		return errs.IO("replace database", err)
	}

	in.cache.Reset()
	in.logger.Debug("wrote database", "path", in.path, "records", len(records))
	return nil
}
