// Package dbtest builds word databases for tests.
package dbtest

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/jmylchreest/colorcue/internal/words"
)

const maxWordLength = 5

// CoveringWords returns, for every score in [0,pivot), a lowercase word of
// two to five letters with that score, skipping descriptors in repo. The
// words are indexed by score; a score with no word found is left empty.
func CoveringWords(repo *words.Repository, pivot int) []string {
	found := make([]string, pivot)
	missing := pivot
	letters := make([]byte, 0, maxWordLength)

	var walk func(sum int) bool
	walk = func(sum int) bool {
		n := len(letters)
		if n >= 2 {
			score := sum % pivot
			if found[score] == "" && !repo.Includes(string(letters)) {
				found[score] = string(letters)
				missing--
				if missing == 0 {
					return true
				}
			}
		}
		if n == cap(letters) {
			return false
		}
		for c := 0; c < 26; c++ {
			letters = append(letters, byte('a'+c))
			done := walk(sum + c*(n+words.DefaultStartIndex))
			letters = letters[:n]
			if done {
				return true
			}
		}
		return false
	}

	// Search shorter words first so fixtures stay small.
	for length := 2; length <= maxWordLength && missing > 0; length++ {
		letters = make([]byte, 0, length)
		walk(0)
	}
	return found
}

// Lines renders score-indexed words as database lines, skipping empty slots.
func Lines(byScore []string, sep string) []string {
	var lines []string
	for score, w := range byScore {
		if w != "" {
			lines = append(lines, strconv.Itoa(score)+sep+w)
		}
	}
	return lines
}

// WriteFile writes lines to name inside a new temporary directory and
// returns the file path.
func WriteFile(tb testing.TB, name string, lines []string) string {
	tb.Helper()
	path := filepath.Join(tb.TempDir(), name)
	content := strings.Join(lines, "\n")
	if len(lines) > 0 {
		content += "\n"
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		tb.Fatalf("write %s: %v", path, err)
	}
	return path
}
