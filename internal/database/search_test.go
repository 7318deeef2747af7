package database

import (
	"context"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestGrepSearcherCommand(t *testing.T) {
	tests := []struct {
		goos     string
		sep      string
		wantName string
		wantArgs []string
	}{
		{"linux", ",", "grep", []string{"-E", "^12,", "/db/words.data"}},
		{"darwin", "|", "grep", []string{"-E", `^12\|`, "/db/words.data"}},
		{"windows", ",", "findstr", []string{"/B", "/L", "/C:12,", "/db/words.data"}},
	}

	for _, tt := range tests {
		t.Run(tt.goos, func(t *testing.T) {
			g := &GrepSearcher{runner: NewMockProcessRunner(), goos: tt.goos}
			name, args := g.Command("/db/words.data", tt.sep, 12)
			if name != tt.wantName {
				t.Errorf("Command() name = %q, want %q", name, tt.wantName)
			}
			if diff := cmp.Diff(tt.wantArgs, args); diff != "" {
				t.Errorf("Command() args mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestGrepSearcherSearch(t *testing.T) {
	runner := NewSuccessMockProcessRunner([]byte("12,dog\r\n12,cat\n\n"))
	g := linuxGrep(runner)

	got, err := g.Search(context.Background(), "/db/words.data", ",", 12)
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if diff := cmp.Diff([]string{"dog", "cat"}, got); diff != "" {
		t.Errorf("Search() mismatch (-want +got):\n%s", diff)
	}

	path, args := runner.LastCall()
	if path != "grep" || args[len(args)-1] != "/db/words.data" {
		t.Errorf("ran %s %v", path, args)
	}
}

func TestGrepSearcherErrors(t *testing.T) {
	tests := []struct {
		name    string
		runner  *MockProcessRunner
		wantErr string
	}{
		{"command fails", NewErrorMockProcessRunner("grep: words.data: No such file or directory"), "No such file"},
		{"unexpected output", NewSuccessMockProcessRunner([]byte("garbage\n")), "unexpected output"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := linuxGrep(tt.runner).Search(context.Background(), "words.data", ",", 1)
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Search() error = %v, want it to contain %q", err, tt.wantErr)
			}
		})
	}
}
