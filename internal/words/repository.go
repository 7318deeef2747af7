// Package words holds the descriptor word repository and the word score
// function shared by the encoder, the decoder and the database pipeline.
package words

import (
	"bufio"
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"slices"
	"strings"
	"sync"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/jmylchreest/colorcue/internal/colour"
	"github.com/jmylchreest/colorcue/internal/errs"
)

// HueDescriptors is the number of descriptors indexed by hue, one per degree.
const HueDescriptors = colour.MaxHue + 1

//go:embed data/descriptors.txt
var descriptorsData []byte

// Repository is an immutable, ordered list of descriptor words. The word at
// index i in [0,360] describes hue i; words after index 360 describe grays.
type Repository struct {
	words []string
	index map[string]int
}

// NewRepository builds a repository from words in index order.
func NewRepository(words []string) (*Repository, error) {
	if len(words) < HueDescriptors {
		return nil, fmt.Errorf("%w: got %d, need at least %d", ErrTooFewWords, len(words), HueDescriptors)
	}

	r := &Repository{
		words: slices.Clone(words),
		index: make(map[string]int, len(words)),
	}
	for i, w := range r.words {
		key := Fold(w)
		if _, ok := r.index[key]; !ok {
			r.index[key] = i
		}
	}
	return r, nil
}

// LoadRepository reads one word per line. Blank lines and lines whose first
// non-space character is '#' are skipped.
func LoadRepository(rd io.Reader) (*Repository, error) {
	var words []string
	scanner := bufio.NewScanner(rd)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		words = append(words, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, errs.IO("read descriptor words", err)
	}
	return NewRepository(words)
}

// LoadRepositoryFile reads a descriptor list from path.
func LoadRepositoryFile(path string) (*Repository, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errs.IO("open descriptor words", err)
	}
	defer f.Close()

	repo, err := LoadRepository(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return repo, nil
}

// Default returns the built-in repository, loaded on first use.
var Default = sync.OnceValues(func() (*Repository, error) {
	return LoadRepository(bytes.NewReader(descriptorsData))
})

// Words returns a copy of the words in index order.
func (r *Repository) Words() []string {
	return slices.Clone(r.words)
}

// Len returns the number of words.
func (r *Repository) Len() int {
	return len(r.words)
}

// At returns the word at index i.
func (r *Repository) At(i int) (string, bool) {
	if i < 0 || i >= len(r.words) {
		return "", false
	}
	return r.words[i], true
}

// Includes reports whether word is a descriptor, ignoring case.
func (r *Repository) Includes(word string) bool {
	_, ok := r.index[Fold(word)]
	return ok
}

// IndexOf returns the index of word ignoring case, or -1.
func (r *Repository) IndexOf(word string) int {
	if i, ok := r.index[Fold(word)]; ok {
		return i
	}
	return -1
}

// HueDescriptor returns the word describing hue.
func (r *Repository) HueDescriptor(hue int) (string, error) {
	if hue < 0 || hue > colour.MaxHue {
		return "", fmt.Errorf("%w: %d", ErrHueOutOfRange, hue)
	}
	return r.words[hue], nil
}

// GrayDescriptors returns every word after the hue descriptors.
func (r *Repository) GrayDescriptors() []string {
	return slices.Clone(r.words[HueDescriptors:])
}

// RandomGray returns one gray descriptor chosen uniformly with rng, or with
// the global source when rng is nil. It returns false when there are no grays.
func (r *Repository) RandomGray(rng *rand.Rand) (string, bool) {
	grays := r.words[HueDescriptors:]
	if len(grays) == 0 {
		return "", false
	}
	if rng == nil {
		return grays[rand.IntN(len(grays))], true
	}
	return grays[rng.IntN(len(grays))], true
}

// Fold lowercases s for case-insensitive comparison.
func Fold(s string) string {
	return cases.Lower(language.Und).String(s)
}
