package database

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/jmylchreest/colorcue/internal/errs"
)

// Report summarises a database check.
type Report struct {
	Database         string  `json:"database" yaml:"database"`
	Words            int     `json:"words" yaml:"words"`
	Scores           int     `json:"scores" yaml:"scores"`
	RequiredScores   int     `json:"required_scores" yaml:"required_scores"`
	MissingScores    int     `json:"missing_scores" yaml:"missing_scores"`
	MinScore         int     `json:"min_score" yaml:"min_score"`
	MaxScore         int     `json:"max_score" yaml:"max_score"`
	WordsPerScore    float64 `json:"words_per_score" yaml:"words_per_score"`
	MinWordsPerScore int     `json:"min_words_per_score" yaml:"min_words_per_score"`
	MaxWordsPerScore int     `json:"max_words_per_score" yaml:"max_words_per_score"`
	Covered          bool    `json:"covered" yaml:"covered"`
}

// Report output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// ReportFormats lists the formats Write accepts.
func ReportFormats() []string {
	return []string{FormatText, FormatJSON, FormatYAML}
}

// Rows returns the report as label/value pairs for tabular output.
func (r Report) Rows() [][]string {
	return [][]string{
		{"Number of words", strconv.Itoa(r.Words)},
		{"Number of scores", strconv.Itoa(r.Scores)},
		{"Number of required scores", strconv.Itoa(r.RequiredScores)},
		{"Missing scores", strconv.Itoa(r.MissingScores)},
		{"Score range", fmt.Sprintf("[%d,%d]", r.MinScore, r.MaxScore)},
		{"Words per (required) score", fmt.Sprintf("~%s ([%d,%d])",
			strconv.FormatFloat(r.WordsPerScore, 'f', -1, 64), r.MinWordsPerScore, r.MaxWordsPerScore)},
	}
}

// Write encodes the report as JSON or YAML. Text output is left to the
// caller, which renders Rows.
func (r Report) Write(w io.Writer, format string) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(r); err != nil {
			return errs.IO("write report", err)
		}
		return nil
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return errs.IO("write report", err)
		}
		if err := enc.Close(); err != nil {
			return errs.IO("write report", err)
		}
		return nil
	}
	return fmt.Errorf("%w: unsupported report format %q", errs.ErrInvalidInput, format)
}
