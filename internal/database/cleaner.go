package database

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"regexp"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/hashicorp/go-hclog"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/jmylchreest/colorcue/internal/compression"
	"github.com/jmylchreest/colorcue/internal/errs"
	"github.com/jmylchreest/colorcue/internal/words"
)

// Cleaning rule names.
const (
	RuleEmpty        = "empty"
	RuleTooShort     = "tooShort"
	RuleAbbreviation = "abbreviation"
	RuleSpecialChars = "specialChars"
	RuleReserved     = "reserved"

	// RuleAll disables every rule that can be disabled.
	RuleAll = "ALL"
)

var latinWord = regexp.MustCompile(`^[A-Za-z\x{00C0}-\x{017F}]+$`)

// rule reports whether a line must be rejected.
type rule struct {
	name   string
	reject func(line string) bool
}

// Cleaner filters a raw word list down to the words a database may hold.
type Cleaner struct {
	rules    []rule
	maxBytes int64
	logger   hclog.Logger
}

// CleanerOption configures a Cleaner.
type CleanerOption func(*Cleaner)

// WithCleanerLogger sets the cleaner's logger.
func WithCleanerLogger(l hclog.Logger) CleanerOption {
	return func(c *Cleaner) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithMaxBytes limits how much decompressed input CleanFile reads.
func WithMaxBytes(n int64) CleanerOption {
	return func(c *Cleaner) {
		c.maxBytes = n
	}
}

// RuleNames returns the rule names in evaluation order.
func RuleNames() []string {
	return []string{RuleEmpty, RuleTooShort, RuleAbbreviation, RuleSpecialChars, RuleReserved}
}

// NewCleaner returns a cleaner running every rule except the disabled ones.
// The reserved rule always runs, since descriptor words in a database would
// make tuples ambiguous.
func NewCleaner(repo *words.Repository, disabled []string, opts ...CleanerOption) (*Cleaner, error) {
	all := []rule{
		{RuleEmpty, func(line string) bool { return strings.TrimSpace(line) == "" }},
		{RuleTooShort, func(line string) bool { return utf8.RuneCountInString(line) < 2 }},
		{RuleAbbreviation, isAbbreviation},
		{RuleSpecialChars, func(line string) bool { return !latinWord.MatchString(line) }},
		{RuleReserved, repo.Includes},
	}

	off := make(map[string]bool, len(disabled))
	for _, name := range disabled {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		if name != RuleAll && !slices.Contains(RuleNames(), name) {
			return nil, fmt.Errorf("%w: %q (available: %s)", ErrUnknownRule, name, strings.Join(RuleNames(), ", "))
		}
		off[name] = true
	}

	c := &Cleaner{logger: hclog.NewNullLogger()}
	for _, r := range all {
		if r.name != RuleReserved && (off[RuleAll] || off[r.name]) {
			continue
		}
		c.rules = append(c.rules, r)
	}
	for _, opt := range opts {
		opt(c)
	}
	c.logger = c.logger.Named("cleaner")
	return c, nil
}

// ActiveRules returns the names of the rules that run.
func (c *Cleaner) ActiveRules() []string {
	names := make([]string, len(c.rules))
	for i, r := range c.rules {
		names[i] = r.name
	}
	return names
}

// Keep reports whether line passes every active rule.
func (c *Cleaner) Keep(line string) bool {
	for _, r := range c.rules {
		if r.reject(line) {
			return false
		}
	}
	return true
}

// Clean returns the lines of rd that pass every active rule, in input order.
func (c *Cleaner) Clean(ctx context.Context, rd io.Reader) ([]string, error) {
	var kept []string
	rejected := 0
	scanner := bufio.NewScanner(rd)
	line := 0
	for scanner.Scan() {
		line++
		if line%ctxCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
		text := strings.TrimRight(scanner.Text(), "\r")
		if c.Keep(text) {
			kept = append(kept, text)
		} else {
			rejected++
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errs.IO("read word list", err)
	}

	c.logger.Debug("cleaned word list", "kept", len(kept), "rejected", rejected, "rules", c.ActiveRules())
	return kept, nil
}

// CleanFile cleans the word list at path, which may be compressed or archived.
func (c *Cleaner) CleanFile(ctx context.Context, path string) ([]string, error) {
	rc, err := compression.Open(path, c.maxBytes)
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return c.Clean(ctx, rc)
}

// isAbbreviation reports whether line has no lowercase letters, such as
// "NASA" or "USA".
func isAbbreviation(line string) bool {
	return cases.Upper(language.Und).String(line) == line
}
