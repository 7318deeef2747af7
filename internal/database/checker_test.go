package database

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"path/filepath"
	"slices"
	"strconv"
	"testing"

	"github.com/google/go-cmp/cmp"
	"gopkg.in/yaml.v3"

	"github.com/jmylchreest/colorcue/internal/colour"
	"github.com/jmylchreest/colorcue/internal/database/dbtest"
	"github.com/jmylchreest/colorcue/internal/errs"
)

// scoreLines returns one line per score in [0,colour.Pivot) except skip.
func scoreLines(skip ...int) []string {
	var lines []string
	for score := range colour.Pivot {
		if slices.Contains(skip, score) {
			continue
		}
		lines = append(lines, strconv.Itoa(score)+",w"+strconv.Itoa(score))
	}
	return lines
}

func TestDataCheckerCheck(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		want  Report
	}{
		{
			name:  "covered",
			lines: append(scoreLines(), "10,extra"),
			want: Report{
				Words:            colour.Pivot + 1,
				Scores:           colour.Pivot,
				RequiredScores:   colour.Pivot,
				MinScore:         0,
				MaxScore:         colour.Pivot - 1,
				WordsPerScore:    1,
				MinWordsPerScore: 1,
				MaxWordsPerScore: 2,
				Covered:          true,
			},
		},
		{
			name:  "one score missing",
			lines: scoreLines(2500),
			want: Report{
				Words:            colour.Pivot - 1,
				Scores:           colour.Pivot - 1,
				RequiredScores:   colour.Pivot,
				MissingScores:    1,
				MaxScore:         colour.Pivot - 1,
				WordsPerScore:    1,
				MinWordsPerScore: 1,
				MaxWordsPerScore: 1,
			},
		},
		{
			name:  "scores beyond the pivot",
			lines: []string{"7000,far", "3,near", "3,close"},
			want: Report{
				Words:            3,
				Scores:           1,
				RequiredScores:   colour.Pivot,
				MissingScores:    colour.Pivot - 1,
				MinScore:         3,
				MaxScore:         7000,
				MinWordsPerScore: 1,
				MaxWordsPerScore: 2,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := dbtest.WriteFile(t, "db.data", tt.lines)
			tt.want.Database = path

			got, err := NewDataChecker(path, WithCache(NewCache())).Check(context.Background())
			if err != nil {
				t.Fatalf("Check() error = %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Check() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDataCheckerGeneratedDatabase(t *testing.T) {
	repo := defaultRepo(t)
	byScore := dbtest.CoveringWords(repo, colour.Pivot)

	var list []string
	for score, w := range byScore {
		if w == "" {
			t.Fatalf("no fixture word for score %d", score)
		}
		list = append(list, w)
	}

	path := filepath.Join(t.TempDir(), "words.data")
	cache := NewCache()
	in := NewInitializer(path, repo, WithCache(cache))
	if err := in.SetUp(); err != nil {
		t.Fatal(err)
	}
	if err := in.Populate(context.Background(), list); err != nil {
		t.Fatalf("Populate() error = %v", err)
	}

	r, err := NewDataChecker(path, WithCache(cache)).Check(context.Background())
	if err != nil {
		t.Fatalf("Check() error = %v", err)
	}
	if !r.Covered || r.MissingScores != 0 || r.Words != colour.Pivot {
		t.Errorf("Check() = %+v, want a covered database of %d words", r, colour.Pivot)
	}
}

func TestReportWrite(t *testing.T) {
	r := Report{
		Database:         "words.data",
		Words:            12,
		Scores:           10,
		RequiredScores:   colour.Pivot,
		MissingScores:    colour.Pivot - 10,
		MinScore:         2,
		MaxScore:         4000,
		WordsPerScore:    0.01,
		MinWordsPerScore: 1,
		MaxWordsPerScore: 3,
	}

	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		if err := r.Write(&buf, FormatJSON); err != nil {
			t.Fatalf("Write() error = %v", err)
		}
		var got Report
		if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
			t.Fatalf("invalid JSON %q: %v", buf.String(), err)
		}
		if diff := cmp.Diff(r, got); diff != "" {
			t.Errorf("JSON report mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("yaml", func(t *testing.T) {
		var buf bytes.Buffer
		if err := r.Write(&buf, FormatYAML); err != nil {
			t.Fatalf("Write() error = %v", err)
		}
		if !bytes.Contains(buf.Bytes(), []byte("missing_scores: 5092\n")) {
			t.Errorf("YAML report lacks missing_scores:\n%s", buf.String())
		}
		var got Report
		if err := yaml.Unmarshal(buf.Bytes(), &got); err != nil {
			t.Fatalf("invalid YAML: %v", err)
		}
		if diff := cmp.Diff(r, got); diff != "" {
			t.Errorf("YAML report mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("unsupported", func(t *testing.T) {
		if err := r.Write(&bytes.Buffer{}, "xml"); !errors.Is(err, errs.ErrInvalidInput) {
			t.Errorf("Write(xml) error = %v, want ErrInvalidInput", err)
		}
	})
}

func TestReportRows(t *testing.T) {
	r := Report{Words: 5, Scores: 4, RequiredScores: 5102, MissingScores: 5098, MinScore: 1, MaxScore: 9, WordsPerScore: 0.5, MinWordsPerScore: 1, MaxWordsPerScore: 2}
	want := [][]string{
		{"Number of words", "5"},
		{"Number of scores", "4"},
		{"Number of required scores", "5102"},
		{"Missing scores", "5098"},
		{"Score range", "[1,9]"},
		{"Words per (required) score", "~0.5 ([1,2])"},
	}
	if diff := cmp.Diff(want, r.Rows()); diff != "" {
		t.Errorf("Rows() mismatch (-want +got):\n%s", diff)
	}
}
