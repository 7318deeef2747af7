package words

import (
	"errors"
	"math/rand/v2"
	"slices"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/jmylchreest/colorcue/internal/errs"
)

// fixtureWords returns n distinct alphabetic words: "da", "db", ... "dza", ...
func fixtureWords(n int) []string {
	out := make([]string, n)
	for i := range out {
		var sb strings.Builder
		sb.WriteByte('d')
		for v := i; ; v = v/26 - 1 {
			sb.WriteByte(byte('a' + v%26))
			if v < 26 {
				break
			}
		}
		out[i] = sb.String()
	}
	return out
}

func TestDefaultRepository(t *testing.T) {
	repo, err := Default()
	if err != nil {
		t.Fatalf("Default() error = %v", err)
	}

	again, _ := Default()
	if repo != again {
		t.Error("Default() returned a different instance on second call")
	}

	if repo.Len() <= HueDescriptors {
		t.Fatalf("Len() = %d, want more than %d", repo.Len(), HueDescriptors)
	}

	seen := make(map[string]bool)
	for i, w := range repo.Words() {
		if w == "" || strings.ToLower(w) != w {
			t.Errorf("word %d %q is not a lowercase word", i, w)
		}
		if seen[w] {
			t.Errorf("word %q appears twice", w)
		}
		seen[w] = true
	}

	if got, _ := repo.HueDescriptor(0); got != "red" {
		t.Errorf("HueDescriptor(0) = %q, want red", got)
	}
	if got := repo.GrayDescriptors()[0]; got != "gray" {
		t.Errorf("GrayDescriptors()[0] = %q, want gray", got)
	}
}

func TestIncludesIgnoresCase(t *testing.T) {
	repo, err := Default()
	if err != nil {
		t.Fatalf("Default() error = %v", err)
	}

	for _, w := range []string{"teal", "TEAL", "Teal"} {
		if !repo.Includes(w) {
			t.Errorf("Includes(%q) = false, want true", w)
		}
	}
	if repo.Includes("xylophone") {
		t.Error("Includes(xylophone) = true, want false")
	}

	if got := repo.IndexOf("CYAN"); got != 180 {
		t.Errorf("IndexOf(CYAN) = %d, want 180", got)
	}
	if got := repo.IndexOf("xylophone"); got != -1 {
		t.Errorf("IndexOf(xylophone) = %d, want -1", got)
	}
}

func TestLoadRepository(t *testing.T) {
	var sb strings.Builder
	sb.WriteString("# header\n\n")
	for i, w := range fixtureWords(HueDescriptors + 2) {
		if i == 5 {
			sb.WriteString("   # indented comment\n")
		}
		sb.WriteString(w + "\r\n")
	}

	repo, err := LoadRepository(strings.NewReader(sb.String()))
	if err != nil {
		t.Fatalf("LoadRepository() error = %v", err)
	}
	if diff := cmp.Diff(fixtureWords(HueDescriptors+2), repo.Words()); diff != "" {
		t.Errorf("Words() mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(fixtureWords(HueDescriptors + 2)[HueDescriptors:], repo.GrayDescriptors()); diff != "" {
		t.Errorf("GrayDescriptors() mismatch (-want +got):\n%s", diff)
	}
}

func TestNewRepositoryTooFewWords(t *testing.T) {
	_, err := NewRepository(fixtureWords(HueDescriptors - 1))
	if !errors.Is(err, ErrTooFewWords) {
		t.Fatalf("NewRepository() error = %v, want ErrTooFewWords", err)
	}
	if !errors.Is(err, errs.ErrInvalidInput) {
		t.Error("Expected ErrTooFewWords to be an invalid input error")
	}
}

func TestRepositoryIsImmutable(t *testing.T) {
	words := fixtureWords(HueDescriptors)
	repo, err := NewRepository(words)
	if err != nil {
		t.Fatalf("NewRepository() error = %v", err)
	}

	words[0] = "changed"
	got := repo.Words()
	got[1] = "changed"

	if w, _ := repo.At(0); w != "da" {
		t.Errorf("At(0) = %q after mutating input, want da", w)
	}
	if w, _ := repo.At(1); w != "db" {
		t.Errorf("At(1) = %q after mutating Words(), want db", w)
	}
	if _, ok := repo.At(HueDescriptors); ok {
		t.Error("At(past end) returned true")
	}
}

func TestHueDescriptorRange(t *testing.T) {
	repo, err := NewRepository(fixtureWords(HueDescriptors))
	if err != nil {
		t.Fatalf("NewRepository() error = %v", err)
	}
	for _, hue := range []int{-1, 361} {
		if _, err := repo.HueDescriptor(hue); !errors.Is(err, ErrHueOutOfRange) {
			t.Errorf("HueDescriptor(%d) error = %v, want ErrHueOutOfRange", hue, err)
		}
	}
	if _, ok := repo.RandomGray(nil); ok {
		t.Error("RandomGray() on a repository without grays returned true")
	}
}

func TestRandomGray(t *testing.T) {
	repo, err := NewRepository(fixtureWords(HueDescriptors + 3))
	if err != nil {
		t.Fatalf("NewRepository() error = %v", err)
	}
	grays := repo.GrayDescriptors()
	rng := rand.New(rand.NewPCG(1, 2))
	for range 50 {
		got, ok := repo.RandomGray(rng)
		if !ok || !slices.Contains(grays, got) {
			t.Fatalf("RandomGray() = %q, %v; want one of %v", got, ok, grays)
		}
	}
}

func TestScore(t *testing.T) {
	repo, err := Default()
	if err != nil {
		t.Fatalf("Default() error = %v", err)
	}

	tests := []struct {
		name     string
		min, max int
		word     string
		want     int
	}{
		{"dog", 0, 5102, "dog", 2257},
		{"foobar", 0, 5102, "foobar", 5077},
		{"mixed case", 0, 5102, "FoObaR", 5077},
		{"single a", 0, 5102, "a", 0},
		{"second position weight", 0, 5102, "ba", 97},
		{"wraps at max", 0, 1000, "dog", 257},
		{"offset by min", 10, 100, "dog", 67},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := NewScorer(repo, tt.min, tt.max)
			if err != nil {
				t.Fatalf("NewScorer() error = %v", err)
			}
			got, err := s.Score(tt.word)
			if err != nil {
				t.Fatalf("Score(%q) error = %v", tt.word, err)
			}
			if got != tt.want {
				t.Errorf("Score(%q) = %d, want %d", tt.word, got, tt.want)
			}
		})
	}
}

func TestScoreBounds(t *testing.T) {
	for _, max := range []int{1, 7, 100, 5102} {
		s, err := NewScorer(nil, 0, max)
		if err != nil {
			t.Fatalf("NewScorer() error = %v", err)
		}
		for _, w := range []string{"lorem", "ipsum", "dolor", "sit", "amet", "zzzzzzzzzz", "Éclair"} {
			got, err := s.Score(w)
			if err != nil {
				t.Fatalf("Score(%q) error = %v", w, err)
			}
			if got < 0 || got >= max {
				t.Errorf("Score(%q) = %d, outside [0, %d)", w, got, max)
			}
			again, _ := s.Score(w)
			if again != got {
				t.Errorf("Score(%q) is not deterministic: %d then %d", w, got, again)
			}
		}
	}
}

func TestScoreCaseSensitive(t *testing.T) {
	s, err := NewScorer(nil, 0, 5102, WithCaseSensitive())
	if err != nil {
		t.Fatalf("NewScorer() error = %v", err)
	}
	lower, _ := s.Score("foobar")
	mixed, _ := s.Score("FoObaR")
	if lower == mixed {
		t.Errorf("Score() ignored case with WithCaseSensitive: both %d", lower)
	}
	if mixed < 0 {
		t.Errorf("Score(FoObaR) = %d, want non-negative", mixed)
	}
}

func TestScoreStartIndex(t *testing.T) {
	s, err := NewScorer(nil, 0, 5102, WithStartIndex(1))
	if err != nil {
		t.Fatalf("NewScorer() error = %v", err)
	}
	// d*1 + o*2 + g*3 = 3 + 28 + 18
	if got, _ := s.Score("dog"); got != 49 {
		t.Errorf("Score(dog) = %d, want 49", got)
	}
}

func TestScoreReservedWord(t *testing.T) {
	repo, err := Default()
	if err != nil {
		t.Fatalf("Default() error = %v", err)
	}
	s, err := NewScorer(repo, 0, 5102)
	if err != nil {
		t.Fatalf("NewScorer() error = %v", err)
	}

	for _, w := range []string{"red", "Red", "GRAY"} {
		if _, err := s.Score(w); !errors.Is(err, ErrReservedWord) {
			t.Errorf("Score(%q) error = %v, want ErrReservedWord", w, err)
		}
	}

	if _, err := s.ScoreAll([]string{"dog", "teal"}); !errors.Is(err, ErrReservedWord) {
		t.Errorf("ScoreAll() error = %v, want ErrReservedWord", err)
	}

	got, err := s.ScoreAll([]string{"dog", "foobar"})
	if err != nil {
		t.Fatalf("ScoreAll() error = %v", err)
	}
	if diff := cmp.Diff([]int{2257, 5077}, got); diff != "" {
		t.Errorf("ScoreAll() mismatch (-want +got):\n%s", diff)
	}
}

func TestNewScorerInvalidRange(t *testing.T) {
	for _, r := range [][2]int{{0, 0}, {-1, 10}, {0, -5}} {
		if _, err := NewScorer(nil, r[0], r[1]); !errors.Is(err, ErrInvalidRange) {
			t.Errorf("NewScorer(%d, %d) error = %v, want ErrInvalidRange", r[0], r[1], err)
		}
	}
}
