package cli_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/jmylchreest/colorcue/internal/cli"
	"github.com/jmylchreest/colorcue/internal/colour"
	"github.com/jmylchreest/colorcue/internal/database/dbtest"
	"github.com/jmylchreest/colorcue/internal/words"
)

var (
	wordListOnce sync.Once
	wordList     []string
)

// run executes one colorcue invocation and returns its output streams.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := cli.NewRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

// setupEnv points the configuration at a fresh database path.
func setupEnv(t *testing.T) string {
	t.Helper()
	db := filepath.Join(t.TempDir(), "data", "db.data")
	t.Setenv("COLORCUE_DATABASE", db)
	t.Setenv("COLORCUE_ACCELERATED_SEARCH", "false")
	t.Setenv("NO_COLOR", "1")
	return db
}

// coveringWordList writes a word list that yields a fully covered database,
// plus lines the cleaner drops.
func coveringWordList(t *testing.T) string {
	t.Helper()
	wordListOnce.Do(func() {
		repo, err := words.Default()
		if err != nil {
			panic(err)
		}
		wordList = dbtest.CoveringWords(repo, colour.Pivot)
	})
	lines := append([]string{"NASA", "red", "x", "don't"}, wordList...)
	return dbtest.WriteFile(t, "words.txt", lines)
}

func TestCommands(t *testing.T) {
	db := setupEnv(t)
	list := coveringWordList(t)

	t.Run("gendb", func(t *testing.T) {
		out, _, err := run(t, "gendb", list)
		if err != nil {
			t.Fatalf("gendb error = %v", err)
		}
		if !strings.Contains(out, "Kept 5102 words") {
			t.Errorf("gendb output = %q, want the kept word count", out)
		}
		if _, err := os.Stat(db); err != nil {
			t.Errorf("database not written: %v", err)
		}
	})

	t.Run("gendb refuses to overwrite", func(t *testing.T) {
		_, _, err := run(t, "gendb", list)
		if err == nil || !strings.Contains(err.Error(), "--force") {
			t.Errorf("gendb error = %v, want a hint about --force", err)
		}
		if _, _, err := run(t, "gendb", "--force", list); err != nil {
			t.Errorf("gendb --force error = %v", err)
		}
	})

	t.Run("check", func(t *testing.T) {
		out, _, err := run(t, "check")
		if err != nil {
			t.Fatalf("check error = %v", err)
		}
		for _, want := range []string{"Missing scores", "covers all 5102 scores"} {
			if !strings.Contains(out, want) {
				t.Errorf("check output lacks %q:\n%s", want, out)
			}
		}

		out, _, err = run(t, "check", "--output", "json", db)
		if err != nil {
			t.Fatalf("check --output json error = %v", err)
		}
		var report struct {
			Covered bool `json:"covered"`
			Words   int  `json:"words"`
		}
		if err := json.Unmarshal([]byte(out), &report); err != nil {
			t.Fatalf("check output is not JSON: %v\n%s", err, out)
		}
		if !report.Covered || report.Words != colour.Pivot {
			t.Errorf("check report = %+v", report)
		}
	})

	t.Run("encode and decode", func(t *testing.T) {
		for _, input := range []string{"hsl(120, 40, 60)", "#3A7BD5", "teal", "hsl(10, 0, 35)"} {
			out, _, err := run(t, "encode", "-q", input)
			if err != nil {
				t.Fatalf("encode %q error = %v", input, err)
			}
			tuple := strings.TrimSpace(out)
			if len(strings.Fields(tuple)) != 2 {
				t.Fatalf("encode %q = %q, want one tuple", input, out)
			}

			want := colour.Parse(input, detectMode(t, input))
			if want.Saturation() == 0 {
				want = colour.HSL(0, 0, want.Luminosity())
			}
			wantText, _ := want.Format(colour.ModeHSL)

			out, _, err = run(t, "decode", "-q", "--format", "hsl", tuple)
			if err != nil {
				t.Fatalf("decode %q error = %v", tuple, err)
			}
			if got := strings.TrimSpace(out); got != wantText {
				t.Errorf("decode %q = %q, want %q", tuple, got, wantText)
			}
		}
	})

	t.Run("encode all tuples of a gray", func(t *testing.T) {
		out, _, err := run(t, "encode", "-q", "--all-tuples", "hsl(0, 0, 50)")
		if err != nil {
			t.Fatalf("encode error = %v", err)
		}
		repo, _ := words.Default()
		if got := len(strings.Split(strings.TrimSpace(out), "\n")); got != len(repo.GrayDescriptors()) {
			t.Errorf("encode returned %d tuples, want %d", got, len(repo.GrayDescriptors()))
		}
	})

	t.Run("encode warns about format mismatch", func(t *testing.T) {
		_, errOut, err := run(t, "encode", "--format", "hsl", "rgb(1, 2, 3)")
		if err != nil {
			t.Fatalf("encode error = %v", err)
		}
		if !strings.Contains(errOut, "looks like a rgb colour") {
			t.Errorf("stderr = %q, want a format warning", errOut)
		}
	})

	t.Run("replace", func(t *testing.T) {
		out, _, err := run(t, "encode", "-q", "hsl(120, 40, 60)")
		if err != nil {
			t.Fatal(err)
		}
		ref := "cc:" + strings.Replace(strings.TrimSpace(out), " ", ".", 1)
		src := dbtest.WriteFile(t, "theme.css.in", []string{"a { color: " + ref + "; }"})

		out, _, err = run(t, "replace", "-q", src)
		if err != nil {
			t.Fatalf("replace error = %v", err)
		}
		hex, _ := colour.HSL(120, 40, 60).Format(colour.ModeHex)
		if want := "a { color: " + hex + "; }\n"; out != want {
			t.Errorf("replace output = %q, want %q", out, want)
		}
	})
}

func TestEncodeForce(t *testing.T) {
	setupEnv(t)
	db := dbtest.WriteFile(t, "sparse.data", []string{"10,ab"})

	_, _, err := run(t, "encode", "-q", "-d", db, "hsl(120, 40, 60)")
	if err == nil || !strings.Contains(err.Error(), "NOWORDS") {
		t.Fatalf("encode error = %v, want NOWORDS", err)
	}

	out, _, err := run(t, "encode", "-q", "--force", "-d", db, "hsl(120, 40, 60)")
	if err != nil {
		t.Fatalf("encode --force error = %v", err)
	}
	if fields := strings.Fields(out); len(fields) != 2 || fields[0] != "ab" {
		t.Errorf("encode --force = %q, want the closest word ab", out)
	}
}

func TestCommandErrors(t *testing.T) {
	setupEnv(t)
	sparse := dbtest.WriteFile(t, "sparse.data", []string{"10,ab"})

	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{"unrecognised colour", []string{"encode", "notacolour"}, "cannot recognise"},
		{"unknown format", []string{"encode", "--format", "pantone", "red"}, "unknown color mode"},
		{"missing database", []string{"encode", "red"}, "colorcue gendb"},
		{"decode two descriptors", []string{"decode", "red", "cyan"}, "two descriptor words"},
		{"decode digits", []string{"decode", "foo1", "bar2"}, "two words"},
		{"check uncovered", []string{"check", sparse}, "5101 of 5102 scores"},
		{"check bad output", []string{"check", "--output", "xml", sparse}, "unsupported report format"},
		{"gendb unknown rule", []string{"gendb", "-d", "tooLong", sparse}, "unknown cleaning rule"},
		{"gendb missing list", []string{"gendb", filepath.Join(t.TempDir(), "missing.txt")}, "no such file"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := run(t, tt.args...)
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %v, want it to contain %q", err, tt.wantErr)
			}
		})
	}

	_, _, err := run(t, "check", sparse)
	if !errors.Is(err, cli.ErrNotCovered) {
		t.Errorf("check error = %v, want ErrNotCovered", err)
	}
}

func TestVersionCommand(t *testing.T) {
	setupEnv(t)
	out, _, err := run(t, "version")
	if err != nil {
		t.Fatalf("version error = %v", err)
	}
	if !strings.HasPrefix(out, "colorcue version ") {
		t.Errorf("version output = %q", out)
	}
}

func detectMode(t *testing.T, input string) colour.Mode {
	t.Helper()
	v, ok := colour.Recognise(input)
	if !ok {
		t.Fatalf("cannot recognise %q", input)
	}
	return v.Mode
}
