package database

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"regexp"
	"runtime"
	"strconv"
	"strings"
)

// Searcher finds the words recorded under one score without a full scan.
type Searcher interface {
	Search(ctx context.Context, path, separator string, score int) ([]string, error)
}

// ProcessRunner defines an interface for running external processes.
// This abstraction allows for dependency injection and easier testing.
type ProcessRunner interface {
	// Run executes a command with the given context, arguments, stdin, and returns stdout/stderr.
	Run(ctx context.Context, path string, args []string, stdin io.Reader) (stdout, stderr []byte, err error)
}

// RealProcessRunner implements ProcessRunner using actual os/exec commands.
type RealProcessRunner struct{}

// Run executes a real external process.
func (r *RealProcessRunner) Run(ctx context.Context, path string, args []string, stdin io.Reader) ([]byte, []byte, error) {
	cmd := exec.CommandContext(ctx, path, args...)
	cmd.Stdin = stdin

	stdout, err := cmd.Output()
	if err != nil {
		// Output() returns stderr in the error if it's an ExitError
		exitErr := &exec.ExitError{}
		if errors.As(err, &exitErr) {
			return stdout, exitErr.Stderr, err
		}
		return stdout, nil, err
	}

	return stdout, nil, nil
}

// NewRealProcessRunner creates a new real process runner.
func NewRealProcessRunner() *RealProcessRunner {
	return &RealProcessRunner{}
}

// GrepSearcher matches the anchored prefix "score<sep>" with grep, or
// findstr on Windows.
type GrepSearcher struct {
	runner ProcessRunner
	goos   string
}

// NewGrepSearcher returns a searcher running its commands through runner.
func NewGrepSearcher(runner ProcessRunner) *GrepSearcher {
	return &GrepSearcher{runner: runner, goos: runtime.GOOS}
}

// Command returns the program and arguments used to search path.
func (g *GrepSearcher) Command(path, separator string, score int) (string, []string) {
	prefix := strconv.Itoa(score) + separator
	if g.goos == "windows" {
		return "findstr", []string{"/B", "/L", "/C:" + prefix, path}
	}
	return "grep", []string{"-E", "^" + regexp.QuoteMeta(prefix), path}
}

// Search runs the search command. A command failure, including grep's
// "no match" exit status, is returned as an error.
func (g *GrepSearcher) Search(ctx context.Context, path, separator string, score int) ([]string, error) {
	name, args := g.Command(path, separator, score)
	stdout, stderr, err := g.runner.Run(ctx, name, args, nil)
	if err != nil {
		if msg := strings.TrimSpace(string(stderr)); msg != "" {
			return nil, fmt.Errorf("%s: %w: %s", name, err, msg)
		}
		return nil, fmt.Errorf("%s: %w", name, err)
	}

	var found []string
	for line := range bytes.Lines(stdout) {
		text := strings.TrimRight(string(line), "\r\n")
		if text == "" {
			continue
		}
		_, word, ok := strings.Cut(text, separator)
		if !ok || word == "" {
			return nil, fmt.Errorf("%s: unexpected output line %q", name, text)
		}
		found = append(found, word)
	}
	return found, nil
}
